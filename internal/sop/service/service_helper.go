package service

import (
	"context"
	"log/slog"
	"time"

	"sopdocs/internal/sop/model"
)

// recordAudit is a helper to record history asynchronously (fire-and-forget).
// Audit failures are logged and never surfaced; they must not block a
// decided operation's primary effect.
func (s *Service) recordAudit(entry *model.AuditEntry) {
	entry.Timestamp = time.Now()
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Repo.AppendAudit(ctx, entry); err != nil {
			slog.Error("Failed to record audit entry", "action", entry.ActionType, "operation", entry.OperationID, "error", err)
		}
	}()
}

// sendNotification delivers best-effort, never propagating errors.
func (s *Service) sendNotification(subject string, vars map[string]string) {
	if s.Notifier == nil {
		return
	}
	recipient := s.NotifyRecipient
	go func() {
		if err := s.Notifier.Notify(recipient, subject, vars); err != nil {
			slog.Error("Failed to send notification", "subject", subject, "error", err)
		}
	}()
}

// operationDetails extracts fileName/brand/category for audit entries. For
// MODIFY the live document is consulted; for CREATE and DELETE the payload
// itself carries the details (the document may not exist on either side).
func (s *Service) operationDetails(ctx context.Context, op *model.PendingOperation) (fileName, brand, category string) {
	switch op.Kind {
	case model.KindCreate:
		if p := op.Payload.Create; p != nil {
			return p.FileName, p.Brand, p.Category
		}
	case model.KindModify:
		if op.DocumentID != "" {
			if doc, err := s.Repo.FindDocument(ctx, op.DocumentID); err == nil {
				return doc.FileName, doc.Brand, doc.Category
			}
		}
	case model.KindDelete:
		if p := op.Payload.Delete; p != nil && p.Snapshot != nil {
			return p.Snapshot.FileName, p.Snapshot.Brand, p.Snapshot.Category
		}
	}
	return "", "", ""
}
