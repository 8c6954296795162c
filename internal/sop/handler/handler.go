package handler

import (
	"net/http"

	"sopdocs/internal/sop/service"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	Service   service.ApprovalService
	Approvers *service.ApproverService
}

func NewHandler(s service.ApprovalService, approvers *service.ApproverService) *Handler {
	return &Handler{Service: s, Approvers: approvers}
}

func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
