package tests

import (
	"context"
	"time"

	"sopdocs/internal/sop/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockRepository is a shared mock implementation of repository.Repository
// for testing.
type MockRepository struct {
	mock.Mock
}

// Document methods

func (m *MockRepository) CreateDocument(ctx context.Context, doc *model.Document) error {
	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockRepository) FindDocument(ctx context.Context, id string) (*model.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockRepository) UpdateDocument(ctx context.Context, doc *model.Document) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockRepository) DeleteDocument(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) FindDocuments(ctx context.Context, filter model.DocumentFilter) ([]*model.Document, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Document), args.Error(1)
}

// Pending operation methods

func (m *MockRepository) CreateOperation(ctx context.Context, op *model.PendingOperation) error {
	if op.ID == "" {
		op.ID = uuid.New().String()
	}
	args := m.Called(ctx, op)
	return args.Error(0)
}

func (m *MockRepository) FindOperation(ctx context.Context, id string) (*model.PendingOperation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PendingOperation), args.Error(1)
}

func (m *MockRepository) FindOperationsByStatus(ctx context.Context, status string) ([]*model.PendingOperation, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.PendingOperation), args.Error(1)
}

func (m *MockRepository) FindOperationsForApprover(ctx context.Context, status, approverID string) ([]*model.PendingOperation, error) {
	args := m.Called(ctx, status, approverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.PendingOperation), args.Error(1)
}

func (m *MockRepository) FindOperationsOlderThan(ctx context.Context, status string, cutoff time.Time) ([]*model.PendingOperation, error) {
	args := m.Called(ctx, status, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.PendingOperation), args.Error(1)
}

func (m *MockRepository) MarkReviewed(ctx context.Context, id, status, reviewedBy string, reviewedAt time.Time, comments string) error {
	args := m.Called(ctx, id, status, reviewedBy, reviewedAt, comments)
	return args.Error(0)
}

func (m *MockRepository) SetOperationDocumentID(ctx context.Context, id, documentID string) error {
	args := m.Called(ctx, id, documentID)
	return args.Error(0)
}

func (m *MockRepository) DeleteOperation(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Approver methods

func (m *MockRepository) FindApproverByUsername(ctx context.Context, username string) (*model.Approver, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Approver), args.Error(1)
}

func (m *MockRepository) FindActiveApprovers(ctx context.Context) ([]*model.Approver, error) {
	// Also reached via round-robin auto-assignment on proposals; only
	// consult the mock when a test set an expectation.
	for _, call := range m.ExpectedCalls {
		if call.Method == "FindActiveApprovers" {
			args := m.Called(ctx)
			if args.Get(0) == nil {
				return nil, args.Error(1)
			}
			return args.Get(0).([]*model.Approver), args.Error(1)
		}
	}
	return nil, nil
}

func (m *MockRepository) CountApprovers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) CreateApprover(ctx context.Context, approver *model.Approver) error {
	args := m.Called(ctx, approver)
	return args.Error(0)
}

// Audit methods

func (m *MockRepository) AppendAudit(ctx context.Context, entry *model.AuditEntry) error {
	// Use Maybe pattern - this method is called asynchronously by recordAudit.
	// Don't fail tests if not explicitly expected.
	for _, call := range m.ExpectedCalls {
		if call.Method == "AppendAudit" {
			args := m.Called(ctx, entry)
			return args.Error(0)
		}
	}
	return nil
}

func (m *MockRepository) FindRecentAudit(ctx context.Context, limit int64) ([]*model.AuditEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.AuditEntry), args.Error(1)
}

func (m *MockRepository) FindAuditByDocument(ctx context.Context, documentID string) ([]*model.AuditEntry, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.AuditEntry), args.Error(1)
}

// Transaction support: run the callback directly, as one logical unit.

func (m *MockRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (m *MockRepository) EnsureIndexes(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
