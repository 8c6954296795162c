package handler

import (
	"net/http"

	"sopdocs/internal/sop/model"

	"github.com/labstack/echo/v4"
)

// PostDocument handles POST /documents, proposing a CREATE operation.
func (h *Handler) PostDocument(c echo.Context) error {
	var req model.CreateDocumentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid body"},
		})
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	op, err := h.Service.ProposeCreate(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusAccepted, op)
}

// PutDocument handles PUT /documents/:id, proposing a MODIFY operation.
func (h *Handler) PutDocument(c echo.Context) error {
	documentID := c.Param("id")

	var req model.ModifyDocumentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid body"},
		})
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	op, err := h.Service.ProposeModify(c.Request().Context(), documentID, req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusAccepted, op)
}

// DeleteDocument handles DELETE /documents/:id, proposing a DELETE operation.
func (h *Handler) DeleteDocument(c echo.Context) error {
	documentID := c.Param("id")

	var req model.DeleteDocumentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid body"},
		})
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	op, err := h.Service.ProposeDelete(c.Request().Context(), documentID, req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusAccepted, op)
}

// GetDocuments handles GET /documents with optional brand/category filters.
func (h *Handler) GetDocuments(c echo.Context) error {
	var req model.ListDocumentsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid parameters"},
		})
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	docs, err := h.Service.ListDocuments(c.Request().Context(), req.ToFilter())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, docs)
}

// GetDocument handles GET /documents/:id.
func (h *Handler) GetDocument(c echo.Context) error {
	doc, err := h.Service.GetDocument(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, doc)
}
