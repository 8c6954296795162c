package tests

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"sopdocs/internal/sop/handler"
	"sopdocs/internal/sop/model"
	"sopdocs/internal/sop/repository"
	"sopdocs/internal/sop/router"
	"sopdocs/internal/sop/security"
	"sopdocs/internal/sop/service"

	"github.com/labstack/echo/v4"
)

// SetupServer wires real services over the given repository, with the
// default limiter policy and notifications off.
func SetupServer(repo repository.Repository) *echo.Echo {
	e := echo.New()

	svc := service.NewService(repo, nil, 7, "approvals@localhost")
	limiter := security.NewAttemptLimiter(5, 15*time.Minute)
	approvers := service.NewApproverService(repo, limiter)
	svc.Assigner = approvers
	h := handler.NewHandler(svc, approvers)

	router.RegisterRoutes(e, h)
	return e
}

func PerformRequest(e *echo.Echo, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var bodyReader *strings.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		bodyReader = strings.NewReader(string(b))
	} else {
		bodyReader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

const testApproverPassword = "correct-horse"

var (
	testApproverHash     string
	testApproverHashOnce sync.Once
)

// ApproverFixture returns an active approver whose password is
// testApproverPassword. The bcrypt hash is computed once per test run.
func ApproverFixture() *model.Approver {
	testApproverHashOnce.Do(func() {
		hash, err := service.HashPassword(testApproverPassword)
		if err != nil {
			panic(err)
		}
		testApproverHash = hash
	})
	return &model.Approver{
		ID:           "appr_1",
		Username:     "alice",
		PasswordHash: testApproverHash,
		Name:         "Alice Approver",
		Active:       true,
	}
}

// DocumentFixture returns a document fixture.
func DocumentFixture() *model.Document {
	return &model.Document{
		ID:         "doc_1",
		FileName:   "safety",
		FilePath:   "/data/sops/acme/safety.pdf",
		FileSize:   2048,
		Category:   "Safety",
		Brand:      "acme",
		Version:    "v1.0",
		UploadedBy: "john.doe",
	}
}

// PendingCreateOp returns a PENDING CREATE operation fixture.
func PendingCreateOp(id string) *model.PendingOperation {
	return &model.PendingOperation{
		ID:     id,
		Kind:   model.KindCreate,
		Status: model.StatusPending,
		Payload: model.OperationPayload{Create: &model.CreatePayload{
			FileName:   "safety",
			FilePath:   "/data/sops/acme/safety.pdf",
			FileSize:   2048,
			Category:   "Safety",
			Brand:      "acme",
			UploadedBy: "john.doe",
			Version:    "v1.0",
		}},
		RequestedBy: "john.doe",
		RequestedAt: time.Now().Add(-time.Hour),
	}
}

// PendingModifyOp returns a PENDING MODIFY operation fixture changing brand.
func PendingModifyOp(id, documentID string) *model.PendingOperation {
	return &model.PendingOperation{
		ID:         id,
		Kind:       model.KindModify,
		DocumentID: documentID,
		Status:     model.StatusPending,
		Payload: model.OperationPayload{Modify: &model.ModifyPayload{
			Changes: map[string]model.FieldChange{
				"brand": {Old: "acme", New: "acme-plus"},
			},
		}},
		RequestedBy: "john.doe",
		RequestedAt: time.Now().Add(-time.Hour),
	}
}

// PendingDeleteOp returns a PENDING DELETE operation fixture with snapshot.
func PendingDeleteOp(id, documentID string) *model.PendingOperation {
	doc := DocumentFixture()
	doc.ID = documentID
	return &model.PendingOperation{
		ID:         id,
		Kind:       model.KindDelete,
		DocumentID: documentID,
		Status:     model.StatusPending,
		Payload: model.OperationPayload{Delete: &model.DeletePayload{
			Snapshot: doc.Snapshot(),
			Reason:   "obsolete",
		}},
		RequestedBy: "john.doe",
		RequestedAt: time.Now().Add(-time.Hour),
	}
}
