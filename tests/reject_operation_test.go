package tests

import (
	"context"
	"net/http"
	"testing"

	"sopdocs/internal/sop/model"
	"sopdocs/internal/sop/repository"
	"sopdocs/internal/sop/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRejectOperation(t *testing.T) {
	t.Run("reject create operation success and return 200", func(t *testing.T) {
		mockRepo := new(MockRepository)
		e := SetupServer(mockRepo)

		op := PendingCreateOp("op_1")
		mockRepo.On("FindApproverByUsername", mock.Anything, "alice").Return(ApproverFixture(), nil)
		mockRepo.On("FindOperation", mock.Anything, "op_1").Return(op, nil)
		mockRepo.On("MarkReviewed", mock.Anything, "op_1", model.StatusRejected, "Alice Approver", mock.Anything, "missing signature page").Return(nil)
		mockRepo.On("DeleteOperation", mock.Anything, "op_1").Return(nil)

		reqBody := model.DecisionReq{Username: "alice", Password: testApproverPassword, Comments: "missing signature page"}
		rec := PerformRequest(e, http.MethodPost, "/api/v1/approvals/op_1/reject", reqBody, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "success")
		mockRepo.AssertExpectations(t)

		// Rejection never touches documents
		mockRepo.AssertNotCalled(t, "CreateDocument", mock.Anything, mock.Anything)
		mockRepo.AssertNotCalled(t, "UpdateDocument", mock.Anything, mock.Anything)
		mockRepo.AssertNotCalled(t, "DeleteDocument", mock.Anything, mock.Anything)
	})

	t.Run("reject delete operation keeps document and return 200", func(t *testing.T) {
		mockRepo := new(MockRepository)
		e := SetupServer(mockRepo)

		op := PendingDeleteOp("op_2", "doc_1")
		mockRepo.On("FindApproverByUsername", mock.Anything, "alice").Return(ApproverFixture(), nil)
		mockRepo.On("FindOperation", mock.Anything, "op_2").Return(op, nil)
		mockRepo.On("MarkReviewed", mock.Anything, "op_2", model.StatusRejected, "Alice Approver", mock.Anything, "still in use").Return(nil)
		mockRepo.On("DeleteOperation", mock.Anything, "op_2").Return(nil)

		reqBody := model.DecisionReq{Username: "alice", Password: testApproverPassword, Comments: "still in use"}
		rec := PerformRequest(e, http.MethodPost, "/api/v1/approvals/op_2/reject", reqBody, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		mockRepo.AssertNotCalled(t, "DeleteDocument", mock.Anything, mock.Anything)
		mockRepo.AssertExpectations(t)
	})

	t.Run("reject without comments and return 400", func(t *testing.T) {
		mockRepo := new(MockRepository)
		e := SetupServer(mockRepo)

		mockRepo.On("FindApproverByUsername", mock.Anything, "alice").Return(ApproverFixture(), nil)

		reqBody := model.DecisionReq{Username: "alice", Password: testApproverPassword}
		rec := PerformRequest(e, http.MethodPost, "/api/v1/approvals/op_3/reject", reqBody, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "bad_request")
		mockRepo.AssertNotCalled(t, "MarkReviewed", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("reject with whitespace-only comments fails at the service", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := service.NewService(mockRepo, nil, 7, "")

		err := svc.Reject(context.TODO(), "op_3", "Alice Approver", "   \t ")
		assert.ErrorIs(t, err, service.ErrBadRequest)

		err = svc.Reject(context.TODO(), "op_3", "Alice Approver", "")
		assert.ErrorIs(t, err, service.ErrBadRequest)

		mockRepo.AssertNotCalled(t, "FindOperation", mock.Anything, mock.Anything)
		mockRepo.AssertNotCalled(t, "MarkReviewed", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		mockRepo.AssertNotCalled(t, "DeleteOperation", mock.Anything, mock.Anything)
	})

	t.Run("reject unknown operation and return 404", func(t *testing.T) {
		mockRepo := new(MockRepository)
		e := SetupServer(mockRepo)

		mockRepo.On("FindApproverByUsername", mock.Anything, "alice").Return(ApproverFixture(), nil)
		mockRepo.On("FindOperation", mock.Anything, "missing").Return(nil, repository.ErrNotFound)

		reqBody := model.DecisionReq{Username: "alice", Password: testApproverPassword, Comments: "nope"}
		rec := PerformRequest(e, http.MethodPost, "/api/v1/approvals/missing/reject", reqBody, nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("reject already decided operation and return 409", func(t *testing.T) {
		mockRepo := new(MockRepository)
		e := SetupServer(mockRepo)

		op := PendingCreateOp("op_4")
		mockRepo.On("FindApproverByUsername", mock.Anything, "alice").Return(ApproverFixture(), nil)
		mockRepo.On("FindOperation", mock.Anything, "op_4").Return(op, nil)
		mockRepo.On("MarkReviewed", mock.Anything, "op_4", model.StatusRejected, "Alice Approver", mock.Anything, "late").Return(repository.ErrNotPending)

		reqBody := model.DecisionReq{Username: "alice", Password: testApproverPassword, Comments: "late"}
		rec := PerformRequest(e, http.MethodPost, "/api/v1/approvals/op_4/reject", reqBody, nil)

		assert.Equal(t, http.StatusConflict, rec.Code)
		mockRepo.AssertNotCalled(t, "DeleteOperation", mock.Anything, mock.Anything)
	})
}
