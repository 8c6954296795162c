package tests

import (
	"net/http"
	"testing"

	"sopdocs/internal/sop/model"
	"sopdocs/internal/sop/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDocumentQueries(t *testing.T) {
	t.Run("list documents filtered by brand and return 200", func(t *testing.T) {
		mockRepo := new(MockRepository)
		e := SetupServer(mockRepo)

		docs := []*model.Document{DocumentFixture()}
		mockRepo.On("FindDocuments", mock.Anything, model.DocumentFilter{Brand: "acme"}).Return(docs, nil)

		rec := PerformRequest(e, http.MethodGet, "/api/v1/documents?brand=acme", nil, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "safety")
		mockRepo.AssertExpectations(t)
	})

	t.Run("get document by id and return 200", func(t *testing.T) {
		mockRepo := new(MockRepository)
		e := SetupServer(mockRepo)

		mockRepo.On("FindDocument", mock.Anything, "doc_1").Return(DocumentFixture(), nil)

		rec := PerformRequest(e, http.MethodGet, "/api/v1/documents/doc_1", nil, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "doc_1")
	})

	t.Run("get unknown document and return 404", func(t *testing.T) {
		mockRepo := new(MockRepository)
		e := SetupServer(mockRepo)

		mockRepo.On("FindDocument", mock.Anything, "missing").Return(nil, repository.ErrNotFound)

		rec := PerformRequest(e, http.MethodGet, "/api/v1/documents/missing", nil, nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestApprovalQueries(t *testing.T) {
	t.Run("list pending operations and return 200", func(t *testing.T) {
		mockRepo := new(MockRepository)
		e := SetupServer(mockRepo)

		ops := []*model.PendingOperation{PendingCreateOp("op_1"), PendingModifyOp("op_2", "doc_1")}
		mockRepo.On("FindOperationsByStatus", mock.Anything, model.StatusPending).Return(ops, nil)

		rec := PerformRequest(e, http.MethodGet, "/api/v1/approvals/pending", nil, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "op_1")
		assert.Contains(t, rec.Body.String(), "op_2")
	})

	t.Run("list pending operations for an approver and return 200", func(t *testing.T) {
		mockRepo := new(MockRepository)
		e := SetupServer(mockRepo)

		ops := []*model.PendingOperation{PendingCreateOp("op_1")}
		mockRepo.On("FindOperationsForApprover", mock.Anything, model.StatusPending, "appr_1").Return(ops, nil)

		rec := PerformRequest(e, http.MethodGet, "/api/v1/approvals/pending?approver_id=appr_1", nil, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		mockRepo.AssertNotCalled(t, "FindOperationsByStatus", mock.Anything, mock.Anything)
	})

	t.Run("get single pending operation and return 200", func(t *testing.T) {
		mockRepo := new(MockRepository)
		e := SetupServer(mockRepo)

		mockRepo.On("FindOperation", mock.Anything, "op_1").Return(PendingDeleteOp("op_1", "doc_1"), nil)

		rec := PerformRequest(e, http.MethodGet, "/api/v1/approvals/op_1", nil, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), model.KindDelete)
	})

	t.Run("get unknown pending operation and return 404", func(t *testing.T) {
		mockRepo := new(MockRepository)
		e := SetupServer(mockRepo)

		mockRepo.On("FindOperation", mock.Anything, "missing").Return(nil, repository.ErrNotFound)

		rec := PerformRequest(e, http.MethodGet, "/api/v1/approvals/missing", nil, nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("list active approvers without password hashes and return 200", func(t *testing.T) {
		mockRepo := new(MockRepository)
		e := SetupServer(mockRepo)

		approvers := []*model.Approver{ApproverFixture()}
		mockRepo.On("FindActiveApprovers", mock.Anything).Return(approvers, nil)

		rec := PerformRequest(e, http.MethodGet, "/api/v1/approvers", nil, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "alice")
		assert.NotContains(t, rec.Body.String(), approvers[0].PasswordHash)
	})
}

func TestHistoryQueries(t *testing.T) {
	t.Run("list recent history and return 200", func(t *testing.T) {
		mockRepo := new(MockRepository)
		e := SetupServer(mockRepo)

		entries := []*model.AuditEntry{
			{ID: "h_1", ActionType: model.ActionCreateApproved, FileName: "safety", ActorName: "Alice Approver"},
			{ID: "h_2", ActionType: model.ActionCreateRequested, FileName: "safety", ActorName: "john.doe"},
		}
		mockRepo.On("FindRecentAudit", mock.Anything, int64(100)).Return(entries, nil)

		rec := PerformRequest(e, http.MethodGet, "/api/v1/history", nil, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), model.ActionCreateApproved)
		mockRepo.AssertExpectations(t)
	})

	t.Run("list history for one document and return 200", func(t *testing.T) {
		mockRepo := new(MockRepository)
		e := SetupServer(mockRepo)

		entries := []*model.AuditEntry{
			{ID: "h_1", ActionType: model.ActionDeleteApproved, DocumentID: "doc_1", FileName: "safety"},
		}
		mockRepo.On("FindAuditByDocument", mock.Anything, "doc_1").Return(entries, nil)

		rec := PerformRequest(e, http.MethodGet, "/api/v1/history/documents/doc_1", nil, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), model.ActionDeleteApproved)
	})
}

func TestHealthCheck(t *testing.T) {
	t.Run("health check returns 200", func(t *testing.T) {
		mockRepo := new(MockRepository)
		e := SetupServer(mockRepo)

		rec := PerformRequest(e, http.MethodGet, "/health", nil, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
