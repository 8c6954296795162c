package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"sopdocs/internal/sop/model"
	"sopdocs/internal/sop/repository"
)

// ProposeCreate stages a new document behind the approval gate. No document
// record exists until the operation is approved.
func (s *Service) ProposeCreate(ctx context.Context, req model.CreateDocumentReq) (*model.PendingOperation, error) {
	payload := req.ToPayload()

	op := &model.PendingOperation{
		Kind:               model.KindCreate,
		Status:             model.StatusPending,
		AssignedApproverID: s.assignedApprover(ctx, req.AssignedApproverID),
		Payload:            model.OperationPayload{Create: payload},
		RequestedBy:        req.UploadedBy,
		RequestedAt:        time.Now(),
	}

	if err := s.Repo.CreateOperation(ctx, op); err != nil {
		return nil, err
	}

	comments := req.Comments
	if comments == "" {
		comments = "Create requested for: " + req.FileName
	}
	s.recordAudit(&model.AuditEntry{
		ActionType:  model.ActionCreateRequested,
		OperationID: op.ID,
		FileName:    payload.FileName,
		Brand:       payload.Brand,
		Category:    payload.Category,
		ActorName:   req.UploadedBy,
		Comments:    comments,
	})
	s.sendNotification("Approval Required - "+model.KindCreate, map[string]string{
		"operation":   op.ID,
		"kind":        op.Kind,
		"requestedBy": op.RequestedBy,
		"fileName":    payload.FileName,
	})

	slog.Info("Created pending create operation", "operation", op.ID, "file", payload.FileName)
	return op, nil
}

// ProposeModify stages a change-set against an existing document. The target
// must exist at proposal time.
func (s *Service) ProposeModify(ctx context.Context, documentID string, req model.ModifyDocumentReq) (*model.PendingOperation, error) {
	doc, err := s.Repo.FindDocument(ctx, documentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	changes := req.Changes
	if req.VersionUpdateType != "" {
		// The engine computes the bump from the live version so the
		// change-set records the real old/new pair.
		changes = make(map[string]model.FieldChange, len(req.Changes)+1)
		for field, change := range req.Changes {
			changes[field] = change
		}
		changes["version"] = model.FieldChange{
			Old: doc.Version,
			New: model.NextVersion(doc.Version, req.VersionUpdateType),
		}
	}

	op := &model.PendingOperation{
		Kind:               model.KindModify,
		DocumentID:         documentID,
		Status:             model.StatusPending,
		AssignedApproverID: s.assignedApprover(ctx, req.AssignedApproverID),
		Payload:            model.OperationPayload{Modify: &model.ModifyPayload{Changes: changes}},
		RequestedBy:        req.RequestedBy,
		RequestedAt:        time.Now(),
	}

	if err := s.Repo.CreateOperation(ctx, op); err != nil {
		return nil, err
	}

	comments := req.Comments
	if comments == "" {
		comments = "Modify requested for: " + doc.FileName
	}
	s.recordAudit(&model.AuditEntry{
		ActionType:  model.ActionModifyRequested,
		DocumentID:  documentID,
		OperationID: op.ID,
		FileName:    doc.FileName,
		Brand:       doc.Brand,
		Category:    doc.Category,
		ActorName:   req.RequestedBy,
		Comments:    comments,
	})
	s.sendNotification("Approval Required - "+model.KindModify, map[string]string{
		"operation":   op.ID,
		"kind":        op.Kind,
		"requestedBy": op.RequestedBy,
		"fileName":    doc.FileName,
	})

	slog.Info("Created pending modify operation", "operation", op.ID, "document", documentID)
	return op, nil
}

// ProposeDelete stages removal of an existing document. The document's
// current state is captured as a snapshot now, so history can still be
// reconstructed after the record is gone.
func (s *Service) ProposeDelete(ctx context.Context, documentID string, req model.DeleteDocumentReq) (*model.PendingOperation, error) {
	doc, err := s.Repo.FindDocument(ctx, documentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	reason := req.Comments
	if reason == "" {
		reason = "Delete requested"
	}

	op := &model.PendingOperation{
		Kind:               model.KindDelete,
		DocumentID:         documentID,
		Status:             model.StatusPending,
		AssignedApproverID: s.assignedApprover(ctx, req.AssignedApproverID),
		Payload: model.OperationPayload{Delete: &model.DeletePayload{
			Snapshot: doc.Snapshot(),
			Reason:   reason,
		}},
		RequestedBy: req.RequestedBy,
		RequestedAt: time.Now(),
	}

	if err := s.Repo.CreateOperation(ctx, op); err != nil {
		return nil, err
	}

	comments := req.Comments
	if comments == "" {
		comments = "Delete requested for: " + doc.FileName
	}
	s.recordAudit(&model.AuditEntry{
		ActionType:  model.ActionDeleteRequested,
		DocumentID:  documentID,
		OperationID: op.ID,
		FileName:    doc.FileName,
		Brand:       doc.Brand,
		Category:    doc.Category,
		ActorName:   req.RequestedBy,
		Comments:    comments,
	})
	s.sendNotification("Approval Required - "+model.KindDelete, map[string]string{
		"operation":   op.ID,
		"kind":        op.Kind,
		"requestedBy": op.RequestedBy,
		"fileName":    doc.FileName,
	})

	slog.Info("Created pending delete operation", "operation", op.ID, "document", documentID)
	return op, nil
}

// assignedApprover returns the requested approver id, falling back to the
// round-robin assigner when the proposal names none. Assignment is a routing
// hint only; failing to pick one never blocks the proposal.
func (s *Service) assignedApprover(ctx context.Context, requested string) string {
	if requested != "" || s.Assigner == nil {
		return requested
	}

	approver, err := s.Assigner.NextAvailableApprover(ctx)
	if err != nil {
		slog.Warn("No approver available for auto-assignment", "error", err)
		return ""
	}
	return approver.ID
}
