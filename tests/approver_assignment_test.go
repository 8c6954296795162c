package tests

import (
	"context"
	"net/http"
	"testing"

	"sopdocs/internal/sop/model"
	"sopdocs/internal/sop/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestApproverAssignment(t *testing.T) {
	t.Run("proposal without approver gets one auto-assigned and return 202", func(t *testing.T) {
		mockRepo := new(MockRepository)
		e := SetupServer(mockRepo)

		mockRepo.On("FindActiveApprovers", mock.Anything).Return([]*model.Approver{ApproverFixture()}, nil)
		mockRepo.On("CreateOperation", mock.Anything, mock.MatchedBy(func(op *model.PendingOperation) bool {
			return op.AssignedApproverID == "appr_1"
		})).Return(nil)

		reqBody := model.CreateDocumentReq{
			FileName:   "cleaning",
			FilePath:   "/data/sops/acme/cleaning.pdf",
			Category:   "Hygiene",
			Brand:      "acme",
			UploadedBy: "john.doe",
		}
		rec := PerformRequest(e, http.MethodPost, "/api/v1/documents", reqBody, nil)

		assert.Equal(t, http.StatusAccepted, rec.Code)
		mockRepo.AssertExpectations(t)
	})

	t.Run("explicitly named approver is kept and return 202", func(t *testing.T) {
		mockRepo := new(MockRepository)
		e := SetupServer(mockRepo)

		mockRepo.On("CreateOperation", mock.Anything, mock.MatchedBy(func(op *model.PendingOperation) bool {
			return op.AssignedApproverID == "appr_9"
		})).Return(nil)

		reqBody := model.CreateDocumentReq{
			FileName:           "cleaning",
			FilePath:           "/data/sops/acme/cleaning.pdf",
			Category:           "Hygiene",
			Brand:              "acme",
			UploadedBy:         "john.doe",
			AssignedApproverID: "appr_9",
		}
		rec := PerformRequest(e, http.MethodPost, "/api/v1/documents", reqBody, nil)

		assert.Equal(t, http.StatusAccepted, rec.Code)
		mockRepo.AssertNotCalled(t, "FindActiveApprovers", mock.Anything)
	})

	t.Run("proposal still accepted when no approver is available", func(t *testing.T) {
		mockRepo := new(MockRepository)
		e := SetupServer(mockRepo)

		mockRepo.On("FindActiveApprovers", mock.Anything).Return([]*model.Approver{}, nil)
		mockRepo.On("CreateOperation", mock.Anything, mock.MatchedBy(func(op *model.PendingOperation) bool {
			return op.AssignedApproverID == ""
		})).Return(nil)

		reqBody := model.CreateDocumentReq{
			FileName:   "cleaning",
			FilePath:   "/data/sops/acme/cleaning.pdf",
			Category:   "Hygiene",
			Brand:      "acme",
			UploadedBy: "john.doe",
		}
		rec := PerformRequest(e, http.MethodPost, "/api/v1/documents", reqBody, nil)

		assert.Equal(t, http.StatusAccepted, rec.Code)
		mockRepo.AssertExpectations(t)
	})
}

func TestNextAvailableApprover(t *testing.T) {
	t.Run("rotates round-robin through active approvers", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := newApproverService(mockRepo)
		ctx := context.TODO()

		bob := ApproverFixture()
		bob.ID = "appr_2"
		bob.Username = "bob"
		mockRepo.On("FindActiveApprovers", mock.Anything).Return([]*model.Approver{ApproverFixture(), bob}, nil)

		var picked []string
		for i := 0; i < 4; i++ {
			approver, err := svc.NextAvailableApprover(ctx)
			assert.NoError(t, err)
			picked = append(picked, approver.ID)
		}
		assert.Equal(t, []string{"appr_1", "appr_2", "appr_1", "appr_2"}, picked)
	})

	t.Run("errors when no approver is active", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := newApproverService(mockRepo)

		mockRepo.On("FindActiveApprovers", mock.Anything).Return([]*model.Approver{}, nil)

		_, err := svc.NextAvailableApprover(context.TODO())
		assert.ErrorIs(t, err, service.ErrNotFound)
	})
}
