package router

import (
	"sopdocs/internal/sop/handler"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func RegisterRoutes(e *echo.Echo, h *handler.Handler) {
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.PUT, echo.POST, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Health Check
	e.GET("/health", handler.HealthCheck)

	v1 := e.Group("/api/v1")
	v1.Use(handler.RequestIDMiddleware)

	// Document routes, mutations go through the approval gate
	v1.POST("/documents", h.PostDocument)
	v1.GET("/documents", h.GetDocuments)
	v1.GET("/documents/:id", h.GetDocument)
	v1.PUT("/documents/:id", h.PutDocument)
	v1.DELETE("/documents/:id", h.DeleteDocument)

	// Approval routes
	v1.GET("/approvals/pending", h.GetPendingOperations)
	v1.GET("/approvals/:id", h.GetPendingOperation)
	v1.POST("/approvals/:id/approve", h.PostApprove)
	v1.POST("/approvals/:id/reject", h.PostReject)

	// History routes (append-only audit trail)
	v1.GET("/history", h.GetHistory)
	v1.GET("/history/documents/:id", h.GetDocumentHistory)

	// Approver listing for assignment dropdowns
	v1.GET("/approvers", h.GetApprovers)
}
