package repository

import (
	"context"
	"errors"
	"time"

	"sopdocs/internal/sop/model"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
	// ErrNotPending means the guarded status flip matched nothing because the
	// operation was already decided, the caller lost the race.
	ErrNotPending = errors.New("operation is not pending")
)

type DocumentRepository interface {
	// Create a new document record
	CreateDocument(ctx context.Context, doc *model.Document) error
	// Find a document by id; ErrNotFound when absent
	FindDocument(ctx context.Context, id string) (*model.Document, error)
	// Persist field changes to an existing document
	UpdateDocument(ctx context.Context, doc *model.Document) error
	// Hard delete; the audit trail is the only remaining record
	DeleteDocument(ctx context.Context, id string) error
	// List documents with optional brand/category filter, newest first
	FindDocuments(ctx context.Context, filter model.DocumentFilter) ([]*model.Document, error)
}

type PendingOperationRepository interface {
	// Persist a new PENDING operation
	CreateOperation(ctx context.Context, op *model.PendingOperation) error
	// Find an operation by id; ErrNotFound when absent
	FindOperation(ctx context.Context, id string) (*model.PendingOperation, error)
	// All operations with the given status, oldest request first
	FindOperationsByStatus(ctx context.Context, status string) ([]*model.PendingOperation, error)
	// Operations with the given status assigned to a specific approver
	FindOperationsForApprover(ctx context.Context, status, approverID string) ([]*model.PendingOperation, error)
	// Operations with the given status requested before the cutoff (sweeper feed)
	FindOperationsOlderThan(ctx context.Context, status string, cutoff time.Time) ([]*model.PendingOperation, error)
	// Conditional flip guarded by status=PENDING. Status, reviewed_by and
	// reviewed_at change together or not at all. ErrNotPending when the
	// guard fails, ErrNotFound when the id is unknown.
	MarkReviewed(ctx context.Context, id, status, reviewedBy string, reviewedAt time.Time, comments string) error
	// Link the created document id back onto a CREATE operation
	SetOperationDocumentID(ctx context.Context, id, documentID string) error
	// Remove a decided operation from the live collection
	DeleteOperation(ctx context.Context, id string) error
}

type ApproverRepository interface {
	// Find an approver by unique username; ErrNotFound when absent
	FindApproverByUsername(ctx context.Context, username string) (*model.Approver, error)
	// All active approvers (assignment dropdowns, round-robin hints)
	FindActiveApprovers(ctx context.Context) ([]*model.Approver, error)
	// Total approver count (bootstrap seeding check)
	CountApprovers(ctx context.Context) (int64, error)
	// Create an approver; ErrDuplicate on username collision
	CreateApprover(ctx context.Context, approver *model.Approver) error
}

// AuditRepository is append-only: entries are never updated or deleted.
type AuditRepository interface {
	AppendAudit(ctx context.Context, entry *model.AuditEntry) error
	FindRecentAudit(ctx context.Context, limit int64) ([]*model.AuditEntry, error)
	FindAuditByDocument(ctx context.Context, documentID string) ([]*model.AuditEntry, error)
}

// TransactionRunner scopes a function to one storage transaction. Collection
// operations made with the callback's context join the transaction; an error
// aborts every write inside it.
type TransactionRunner interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Repository is the full contract the service layer is wired against.
type Repository interface {
	DocumentRepository
	PendingOperationRepository
	ApproverRepository
	AuditRepository
	TransactionRunner
	EnsureIndexes(ctx context.Context) error
}
