package model

import "strings"

// DeleteDocumentReq proposes removal of an existing document. The engine
// captures the snapshot itself; the caller only states who and why.
type DeleteDocumentReq struct {
	RequestedBy        string `json:"requested_by" validate:"required"`
	AssignedApproverID string `json:"assigned_approver_id"`
	Comments           string `json:"comments"`
}

func (r *DeleteDocumentReq) Validate() error {
	r.RequestedBy = strings.TrimSpace(r.RequestedBy)

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}
