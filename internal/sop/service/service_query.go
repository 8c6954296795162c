package service

import (
	"context"
	"errors"

	"sopdocs/internal/sop/model"
	"sopdocs/internal/sop/repository"
)

const recentHistoryLimit = 100

func (s *Service) PendingOperations(ctx context.Context) ([]*model.PendingOperation, error) {
	return s.Repo.FindOperationsByStatus(ctx, model.StatusPending)
}

func (s *Service) PendingOperationsForApprover(ctx context.Context, approverID string) ([]*model.PendingOperation, error) {
	return s.Repo.FindOperationsForApprover(ctx, model.StatusPending, approverID)
}

func (s *Service) GetOperation(ctx context.Context, operationID string) (*model.PendingOperation, error) {
	op, err := s.Repo.FindOperation(ctx, operationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return op, nil
}

func (s *Service) ListDocuments(ctx context.Context, filter model.DocumentFilter) ([]*model.Document, error) {
	return s.Repo.FindDocuments(ctx, filter)
}

func (s *Service) GetDocument(ctx context.Context, documentID string) (*model.Document, error) {
	doc, err := s.Repo.FindDocument(ctx, documentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

func (s *Service) RecentHistory(ctx context.Context) ([]*model.AuditEntry, error) {
	return s.Repo.FindRecentAudit(ctx, recentHistoryLimit)
}

func (s *Service) DocumentHistory(ctx context.Context, documentID string) ([]*model.AuditEntry, error) {
	return s.Repo.FindAuditByDocument(ctx, documentID)
}
