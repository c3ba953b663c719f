package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "suprimentos/internal/adapter/http/dto/request"
	response "suprimentos/internal/adapter/http/dto/response"
	"suprimentos/internal/usecase"
	"suprimentos/pkg"
)

var (
	errInvalidReservationPayload = pkg.NewDomainErrorSimple("INVALID_RESERVATION_INPUT", "Invalid reservation payload", http.StatusBadRequest)
)

// ReservationHandler exposes the reservation ledger (reserva orçamentária)
// and the requisition history it writes.
type ReservationHandler struct {
	usecase usecase.IReservationUseCase
}

func NewReservationHandler(uc usecase.IReservationUseCase) *ReservationHandler {
	return &ReservationHandler{usecase: uc}
}

func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var payload request.CreateReservationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReservationPayload.HTTPStatus, errInvalidReservationPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateReservation(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapReservationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromReservation(created))
}

func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	var payload request.CancelReservationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReservationPayload.HTTPStatus, errInvalidReservationPayload.ToHTTPError())
		return
	}

	cancelled, err := h.usecase.CancelReservation(c.Request.Context(), c.Param("id"), payload.Reason)
	if err != nil {
		appErr := mapReservationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReservation(cancelled))
}

func (h *ReservationHandler) ConfirmReservation(c *gin.Context) {
	var payload request.ConfirmReservationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReservationPayload.HTTPStatus, errInvalidReservationPayload.ToHTTPError())
		return
	}

	confirmed, err := h.usecase.ConfirmReservation(c.Request.Context(), c.Param("id"), *payload.RealizedAmount)
	if err != nil {
		appErr := mapReservationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReservation(confirmed))
}

func (h *ReservationHandler) GetReservation(c *gin.Context) {
	r, err := h.usecase.GetReservation(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapReservationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReservation(r))
}

func (h *ReservationHandler) ListByRequisition(c *gin.Context) {
	reservations, err := h.usecase.ListByRequisition(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapReservationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReservations(reservations))
}

func (h *ReservationHandler) ListHistory(c *gin.Context) {
	entries, err := h.usecase.ListHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapReservationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRequisitionHistory(entries))
}

func mapReservationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidReservationID), errors.Is(err, usecase.ErrInvalidRequisitionID),
		errors.Is(err, usecase.ErrInvalidReservationAmount), errors.Is(err, usecase.ErrInvalidRealizedAmount),
		errors.Is(err, usecase.ErrInvalidCancelReason), errors.Is(err, usecase.ErrInvalidCostCenter):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrReservationNotFound):
		return pkg.NewDomainErrorSimple("RESERVATION_NOT_FOUND", "Reservation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBudgetNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_FOUND", "No budget for this cost center in the current year", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInsufficientBudget):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_BUDGET", "Insufficient budget available", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidReservationTransition):
		return pkg.NewDomainErrorSimple("INVALID_RESERVATION_STATUS", "Reservation is not active", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
