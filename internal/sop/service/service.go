package service

import (
	"context"
	"errors"

	"sopdocs/internal/sop/model"
	"sopdocs/internal/sop/notify"
	"sopdocs/internal/sop/repository"
)

var (
	ErrUnauthorized    = errors.New("unauthorized")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict: operation already decided")
	ErrBadRequest      = errors.New("bad request")
	ErrExecutionFailed = errors.New("failed to execute approved operation")
)

type ApprovalService interface {
	ProposeCreate(ctx context.Context, req model.CreateDocumentReq) (*model.PendingOperation, error)
	ProposeModify(ctx context.Context, documentID string, req model.ModifyDocumentReq) (*model.PendingOperation, error)
	ProposeDelete(ctx context.Context, documentID string, req model.DeleteDocumentReq) (*model.PendingOperation, error)

	Approve(ctx context.Context, operationID, actor, comments string) error
	Reject(ctx context.Context, operationID, actor, comments string) error
	AutoApprove(ctx context.Context, op *model.PendingOperation) error

	PendingOperations(ctx context.Context) ([]*model.PendingOperation, error)
	PendingOperationsForApprover(ctx context.Context, approverID string) ([]*model.PendingOperation, error)
	GetOperation(ctx context.Context, operationID string) (*model.PendingOperation, error)

	ListDocuments(ctx context.Context, filter model.DocumentFilter) ([]*model.Document, error)
	GetDocument(ctx context.Context, documentID string) (*model.Document, error)

	RecentHistory(ctx context.Context) ([]*model.AuditEntry, error)
	DocumentHistory(ctx context.Context, documentID string) ([]*model.AuditEntry, error)
}

// ApproverAssigner supplies a fallback approver for proposals that do not
// name one.
type ApproverAssigner interface {
	NextAvailableApprover(ctx context.Context) (*model.Approver, error)
}

type Service struct {
	Repo     repository.Repository
	Notifier notify.Notifier
	Assigner ApproverAssigner

	AutoApproveDays int
	NotifyRecipient string
}

func NewService(repo repository.Repository, notifier notify.Notifier, autoApproveDays int, notifyRecipient string) *Service {
	return &Service{
		Repo:            repo,
		Notifier:        notifier,
		AutoApproveDays: autoApproveDays,
		NotifyRecipient: notifyRecipient,
	}
}
