package handler

import (
	"net/http"

	"sopdocs/internal/sop/model"

	"github.com/labstack/echo/v4"
)

// GetPendingOperations handles GET /approvals/pending, optionally filtered
// by assigned approver.
func (h *Handler) GetPendingOperations(c echo.Context) error {
	approverID := c.QueryParam("approver_id")

	var ops []*model.PendingOperation
	var err error
	if approverID != "" {
		ops, err = h.Service.PendingOperationsForApprover(c.Request().Context(), approverID)
	} else {
		ops, err = h.Service.PendingOperations(c.Request().Context())
	}
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, ops)
}

// GetPendingOperation handles GET /approvals/:id.
func (h *Handler) GetPendingOperation(c echo.Context) error {
	op, err := h.Service.GetOperation(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, op)
}

// PostApprove handles POST /approvals/:id/approve. The approver is
// authenticated from the request body before the decision runs.
func (h *Handler) PostApprove(c echo.Context) error {
	return h.decide(c, true)
}

// PostReject handles POST /approvals/:id/reject. Comments are mandatory;
// the service enforces that so the rule also covers non-HTTP callers.
func (h *Handler) PostReject(c echo.Context) error {
	return h.decide(c, false)
}

func (h *Handler) decide(c echo.Context, approve bool) error {
	operationID := c.Param("id")

	var req model.DecisionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid body"},
		})
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	approver, err := h.Approvers.Authenticate(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	if approve {
		err = h.Service.Approve(c.Request().Context(), operationID, approver.Name, req.Comments)
	} else {
		err = h.Service.Reject(c.Request().Context(), operationID, approver.Name, req.Comments)
	}
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}

// GetApprovers handles GET /approvers, listing active approvers for assignment.
func (h *Handler) GetApprovers(c echo.Context) error {
	approvers, err := h.Approvers.ActiveApprovers(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, approvers)
}
