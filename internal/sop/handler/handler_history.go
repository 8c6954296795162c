package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// GetHistory handles GET /history, most recent entries first.
func (h *Handler) GetHistory(c echo.Context) error {
	entries, err := h.Service.RecentHistory(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, entries)
}

// GetDocumentHistory handles GET /history/documents/:id. Works for deleted
// documents too: history outlives the record it describes.
func (h *Handler) GetDocumentHistory(c echo.Context) error {
	entries, err := h.Service.DocumentHistory(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, entries)
}
