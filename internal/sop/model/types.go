package model

import "time"

// Document is a stored SOP document record. It is only ever created,
// modified or deleted as the effect of an approved pending operation.
type Document struct {
	ID         string    `bson:"_id,omitempty" json:"id"`
	FileName   string    `bson:"file_name" json:"file_name"`
	FilePath   string    `bson:"file_path" json:"file_path"`
	FileSize   int64     `bson:"file_size" json:"file_size"`
	Category   string    `bson:"category" json:"category"`
	Brand      string    `bson:"brand" json:"brand"`
	Version    string    `bson:"version" json:"version"`
	UploadedBy string    `bson:"uploaded_by" json:"uploaded_by"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
	ModifiedAt time.Time `bson:"modified_at" json:"modified_at"`
}

// Snapshot returns a copy of the document's current state for DELETE
// proposals, so history stays reconstructable after the record is gone.
func (d *Document) Snapshot() *DocumentSnapshot {
	return &DocumentSnapshot{
		ID:         d.ID,
		FileName:   d.FileName,
		FilePath:   d.FilePath,
		FileSize:   d.FileSize,
		Category:   d.Category,
		Brand:      d.Brand,
		Version:    d.Version,
		UploadedBy: d.UploadedBy,
	}
}

// CreatePayload holds the full set of fields for a proposed new document.
type CreatePayload struct {
	FileName   string `bson:"file_name" json:"fileName"`
	FilePath   string `bson:"file_path" json:"filePath"`
	FileSize   int64  `bson:"file_size" json:"fileSize"`
	Category   string `bson:"category" json:"category"`
	Brand      string `bson:"brand" json:"brand"`
	UploadedBy string `bson:"uploaded_by" json:"uploadedBy"`
	Version    string `bson:"version" json:"version"`
}

// FieldChange is one old/new pair in a MODIFY change-set.
type FieldChange struct {
	Old string `bson:"old" json:"old"`
	New string `bson:"new" json:"new"`
}

// ModifyPayload carries the named field changes of a MODIFY proposal.
type ModifyPayload struct {
	Changes map[string]FieldChange `bson:"changes" json:"changes"`
}

// DocumentSnapshot is the captured prior state stored on DELETE proposals.
type DocumentSnapshot struct {
	ID         string `bson:"id" json:"id"`
	FileName   string `bson:"file_name" json:"fileName"`
	FilePath   string `bson:"file_path" json:"filePath"`
	FileSize   int64  `bson:"file_size" json:"fileSize"`
	Category   string `bson:"category" json:"category"`
	Brand      string `bson:"brand" json:"brand"`
	Version    string `bson:"version" json:"version"`
	UploadedBy string `bson:"uploaded_by" json:"uploadedBy"`
}

// DeletePayload holds the snapshot and the stated reason for a DELETE proposal.
type DeletePayload struct {
	Snapshot *DocumentSnapshot `bson:"snapshot" json:"snapshot"`
	Reason   string            `bson:"reason,omitempty" json:"reason,omitempty"`
}

// OperationPayload is a tagged union: exactly one variant is non-nil and it
// must match the operation kind. Validated at proposal time.
type OperationPayload struct {
	Create *CreatePayload `bson:"create,omitempty" json:"create,omitempty"`
	Modify *ModifyPayload `bson:"modify,omitempty" json:"modify,omitempty"`
	Delete *DeletePayload `bson:"delete,omitempty" json:"delete,omitempty"`
}

// PendingOperation is an in-flight change request awaiting a decision.
type PendingOperation struct {
	ID                 string           `bson:"_id,omitempty" json:"id"`
	Kind               string           `bson:"kind" json:"kind"`
	DocumentID         string           `bson:"document_id,omitempty" json:"document_id,omitempty"`
	Status             string           `bson:"status" json:"status"`
	AssignedApproverID string           `bson:"assigned_approver_id,omitempty" json:"assigned_approver_id,omitempty"`
	Payload            OperationPayload `bson:"payload" json:"payload"`

	RequestedBy string    `bson:"requested_by" json:"requested_by"`
	RequestedAt time.Time `bson:"requested_at" json:"requested_at"`

	// Set atomically with the status flip, never independently.
	ReviewedBy string     `bson:"reviewed_by,omitempty" json:"reviewed_by,omitempty"`
	ReviewedAt *time.Time `bson:"reviewed_at,omitempty" json:"reviewed_at,omitempty"`
	Comments   string     `bson:"comments,omitempty" json:"comments,omitempty"`
}

// Approver identity. The engine reads it, never mutates it.
type Approver struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Username     string    `bson:"username" json:"username"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email,omitempty" json:"email,omitempty"`
	Active       bool      `bson:"active" json:"active"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// AuditEntry 審計日誌記錄 (append-only, read-only after creation)
type AuditEntry struct {
	ID         string `bson:"_id,omitempty" json:"id"`
	ActionType string `bson:"action_type" json:"action_type"`

	// Nullable, deleted documents won't have a live record anymore
	DocumentID  string `bson:"document_id,omitempty" json:"document_id,omitempty"`
	OperationID string `bson:"operation_id,omitempty" json:"operation_id,omitempty"`

	// Denormalized so history stays readable after deletion
	FileName string `bson:"file_name,omitempty" json:"file_name,omitempty"`
	Brand    string `bson:"brand,omitempty" json:"brand,omitempty"`
	Category string `bson:"category,omitempty" json:"category,omitempty"`

	ActorName string    `bson:"actor_name" json:"actor_name"`
	Comments  string    `bson:"comments,omitempty" json:"comments,omitempty"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

// DocumentFilter narrows document listings.
type DocumentFilter struct {
	Brand    string
	Category string
}

// ErrorResponse for consistent error handling
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

func (e *ErrorDetail) Error() string {
	return e.Message
}
