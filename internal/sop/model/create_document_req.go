package model

import "strings"

// CreateDocumentReq proposes a new document. The file itself is staged by
// the upload collaborator; this carries the metadata for the approval gate.
type CreateDocumentReq struct {
	FileName           string `json:"file_name" validate:"required"`
	FilePath           string `json:"file_path" validate:"required"`
	FileSize           int64  `json:"file_size" validate:"gte=0"`
	Category           string `json:"category" validate:"required"`
	Brand              string `json:"brand" validate:"required"`
	UploadedBy         string `json:"uploaded_by" validate:"required"`
	Version            string `json:"version"`
	AssignedApproverID string `json:"assigned_approver_id"`
	Comments           string `json:"comments"`
}

func (r *CreateDocumentReq) Validate() error {
	r.FileName = strings.TrimSpace(r.FileName)
	r.FilePath = strings.TrimSpace(r.FilePath)
	r.Category = strings.TrimSpace(r.Category)
	r.Brand = strings.TrimSpace(r.Brand)
	r.UploadedBy = strings.TrimSpace(r.UploadedBy)
	r.Version = strings.TrimSpace(r.Version)
	if r.Version == "" {
		r.Version = "v1.0"
	}

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

// ToPayload builds the CREATE variant of the operation payload.
func (r *CreateDocumentReq) ToPayload() *CreatePayload {
	return &CreatePayload{
		FileName:   r.FileName,
		FilePath:   r.FilePath,
		FileSize:   r.FileSize,
		Category:   r.Category,
		Brand:      r.Brand,
		UploadedBy: r.UploadedBy,
		Version:    r.Version,
	}
}
