package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	request "suprimentos/internal/adapter/http/dto/request"
	"suprimentos/internal/usecase"
	"suprimentos/pkg"
)

var (
	errInvalidExportPayload = pkg.NewDomainErrorSimple("INVALID_EXPORT_INPUT", "Invalid export payload", http.StatusBadRequest)
)

// OrderExportHandler streams purchase order reports as csv, xlsx or pdf.
type OrderExportHandler struct {
	usecase usecase.IOrderExportUseCase
}

func NewOrderExportHandler(uc usecase.IOrderExportUseCase) *OrderExportHandler {
	return &OrderExportHandler{usecase: uc}
}

func (h *OrderExportHandler) ExportOrders(c *gin.Context) {
	var payload request.OrderExportRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidExportPayload.HTTPStatus, errInvalidExportPayload.ToHTTPError())
		return
	}

	filter, err := payload.ToFilter()
	if err != nil {
		c.JSON(errInvalidExportPayload.HTTPStatus, errInvalidExportPayload.ToHTTPError())
		return
	}

	file, err := h.usecase.ExportOrders(c.Request.Context(), filter, payload.Format)
	if err != nil {
		appErr := mapOrderExportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", file.FileName))
	c.Header("X-Total-Count", strconv.Itoa(file.Rows))
	c.Data(http.StatusOK, file.ContentType, file.Content)
}

func mapOrderExportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnsupportedExportFormat):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_EXPORT_FORMAT", "Supported formats: csv, xlsx, pdf", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidExportFilter):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
