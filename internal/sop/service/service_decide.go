package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"sopdocs/internal/sop/model"
	"sopdocs/internal/sop/repository"
)

// Approve flips a pending operation to APPROVED and executes its mutation.
// The status flip, the document mutation and the removal of the pending
// record commit as one transaction: a failed execution aborts the whole
// decision and the record stays PENDING for retry. The flip itself is
// guarded by status=PENDING, so of two concurrent decisions exactly one
// succeeds and the other observes ErrConflict.
func (s *Service) Approve(ctx context.Context, operationID, actor, comments string) error {
	op, err := s.Repo.FindOperation(ctx, operationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	now := time.Now()
	err = s.Repo.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.Repo.MarkReviewed(txCtx, op.ID, model.StatusApproved, actor, now, comments); err != nil {
			return err
		}
		if err := s.executeApproved(txCtx, op); err != nil {
			return fmt.Errorf("%w: %v", ErrExecutionFailed, err)
		}
		return s.Repo.DeleteOperation(txCtx, op.ID)
	})
	if err != nil {
		return mapDecideError(err)
	}

	fileName, brand, category := s.operationDetails(ctx, op)
	s.recordAudit(&model.AuditEntry{
		ActionType:  actionForApproval(op.Kind),
		DocumentID:  op.DocumentID,
		OperationID: op.ID,
		FileName:    fileName,
		Brand:       brand,
		Category:    category,
		ActorName:   actor,
		Comments:    comments,
	})

	slog.Info("Operation approved and cleaned up", "operation", op.ID, "approver", actor)
	return nil
}

// Reject discards a pending operation. No document mutation ever happens on
// rejection; comments are mandatory and whitespace-only counts as missing.
func (s *Service) Reject(ctx context.Context, operationID, actor, comments string) error {
	if strings.TrimSpace(comments) == "" {
		return ErrBadRequest
	}

	op, err := s.Repo.FindOperation(ctx, operationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	now := time.Now()
	err = s.Repo.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.Repo.MarkReviewed(txCtx, op.ID, model.StatusRejected, actor, now, comments); err != nil {
			return err
		}
		return s.Repo.DeleteOperation(txCtx, op.ID)
	})
	if err != nil {
		return mapDecideError(err)
	}

	fileName, brand, category := s.operationDetails(ctx, op)
	s.recordAudit(&model.AuditEntry{
		ActionType:  actionForRejection(op.Kind),
		DocumentID:  op.DocumentID,
		OperationID: op.ID,
		FileName:    fileName,
		Brand:       brand,
		Category:    category,
		ActorName:   actor,
		Comments:    comments,
	})
	s.sendNotification("Operation Rejected - "+op.Kind, map[string]string{
		"operation":   op.ID,
		"kind":        op.Kind,
		"reviewedBy":  actor,
		"requestedBy": op.RequestedBy,
		"comments":    comments,
	})

	slog.Info("Operation rejected and cleaned up", "operation", op.ID, "approver", actor)
	return nil
}

// AutoApprove is the sweeper's entry point: the same execution path as
// Approve with the fixed "system" actor and no authentication. The guarded
// flip re-checks PENDING inside the transaction, closing the race with a
// concurrent human decision.
func (s *Service) AutoApprove(ctx context.Context, op *model.PendingOperation) error {
	comments := fmt.Sprintf("Auto-approved after %d days", s.AutoApproveDays)

	now := time.Now()
	err := s.Repo.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.Repo.MarkReviewed(txCtx, op.ID, model.StatusApproved, model.ActorSystem, now, comments); err != nil {
			return err
		}
		if err := s.executeApproved(txCtx, op); err != nil {
			return fmt.Errorf("%w: %v", ErrExecutionFailed, err)
		}
		return s.Repo.DeleteOperation(txCtx, op.ID)
	})
	if err != nil {
		return mapDecideError(err)
	}

	fileName, brand, category := s.operationDetails(ctx, op)
	s.recordAudit(&model.AuditEntry{
		ActionType:  actionForAutoApproval(op.Kind),
		DocumentID:  op.DocumentID,
		OperationID: op.ID,
		FileName:    fileName,
		Brand:       brand,
		Category:    category,
		ActorName:   model.ActorSystem,
		Comments:    comments,
	})
	s.sendNotification("Operation Auto-Approved - "+op.Kind, map[string]string{
		"operation":   op.ID,
		"kind":        op.Kind,
		"requestedBy": op.RequestedBy,
		"requestedAt": op.RequestedAt.Format(time.RFC3339),
	})

	slog.Info("Operation auto-approved and cleaned up", "operation", op.ID)
	return nil
}

// executeApproved applies the kind-specific mutation. Runs inside the
// decision transaction; any error aborts the decision.
func (s *Service) executeApproved(ctx context.Context, op *model.PendingOperation) error {
	switch op.Kind {
	case model.KindCreate:
		return s.executeCreate(ctx, op)
	case model.KindModify:
		return s.executeModify(ctx, op)
	case model.KindDelete:
		return s.executeDelete(ctx, op)
	default:
		return fmt.Errorf("unknown operation kind: %s", op.Kind)
	}
}

func (s *Service) executeCreate(ctx context.Context, op *model.PendingOperation) error {
	p := op.Payload.Create
	if p == nil {
		return fmt.Errorf("create operation %s has no create payload", op.ID)
	}

	doc := &model.Document{
		FileName:   p.FileName,
		FilePath:   p.FilePath,
		FileSize:   p.FileSize,
		Category:   p.Category,
		Brand:      p.Brand,
		Version:    p.Version,
		UploadedBy: p.UploadedBy,
	}
	if err := s.Repo.CreateDocument(ctx, doc); err != nil {
		return err
	}

	// Link the new document onto the operation so the audit entry carries it
	if err := s.Repo.SetOperationDocumentID(ctx, op.ID, doc.ID); err != nil {
		return err
	}
	op.DocumentID = doc.ID

	slog.Info("Created document from approved operation", "document", doc.ID, "operation", op.ID)
	return nil
}

func (s *Service) executeModify(ctx context.Context, op *model.PendingOperation) error {
	p := op.Payload.Modify
	if p == nil {
		return fmt.Errorf("modify operation %s has no change-set", op.ID)
	}

	// Target vanished since proposal: abort so the record stays PENDING
	doc, err := s.Repo.FindDocument(ctx, op.DocumentID)
	if err != nil {
		return err
	}

	for field, change := range p.Changes {
		applyFieldChange(doc, field, change.New)
	}
	if err := s.Repo.UpdateDocument(ctx, doc); err != nil {
		return err
	}

	slog.Info("Updated document from approved operation", "document", doc.ID, "operation", op.ID)
	return nil
}

func (s *Service) executeDelete(ctx context.Context, op *model.PendingOperation) error {
	// Hard delete; the snapshot captured at proposal time is the only
	// surviving description of the document
	if err := s.Repo.DeleteDocument(ctx, op.DocumentID); err != nil {
		return err
	}

	slog.Info("Deleted document from approved operation", "document", op.DocumentID, "operation", op.ID)
	return nil
}

func applyFieldChange(doc *model.Document, field, value string) {
	switch field {
	case "fileName":
		doc.FileName = value
	case "category":
		doc.Category = value
	case "brand":
		doc.Brand = value
	case "version":
		doc.Version = value
	case "uploadedBy":
		doc.UploadedBy = value
	}
}

func mapDecideError(err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, repository.ErrNotPending):
		return ErrConflict
	default:
		return err
	}
}

func actionForApproval(kind string) string {
	switch kind {
	case model.KindCreate:
		return model.ActionCreateApproved
	case model.KindModify:
		return model.ActionModifyApproved
	default:
		return model.ActionDeleteApproved
	}
}

func actionForRejection(kind string) string {
	switch kind {
	case model.KindCreate:
		return model.ActionCreateRejected
	case model.KindModify:
		return model.ActionModifyRejected
	default:
		return model.ActionDeleteRejected
	}
}

func actionForAutoApproval(kind string) string {
	switch kind {
	case model.KindCreate:
		return model.ActionCreateAutoApproved
	case model.KindModify:
		return model.ActionModifyAutoApproved
	default:
		return model.ActionDeleteAutoApproved
	}
}
