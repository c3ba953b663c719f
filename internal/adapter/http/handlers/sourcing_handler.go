package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "suprimentos/internal/adapter/http/dto/request"
	"suprimentos/internal/domain/sourcing"
	"suprimentos/internal/usecase"
	"suprimentos/pkg"
)

var (
	errInvalidSourcingPayload = pkg.NewDomainErrorSimple("INVALID_SOURCING_INPUT", "Invalid sourcing payload", http.StatusBadRequest)
)

// SourcingHandler compares supplier proposals and runs the 3-bids auto award.
type SourcingHandler struct {
	usecase usecase.ISourcingUseCase
}

func NewSourcingHandler(uc usecase.ISourcingUseCase) *SourcingHandler {
	return &SourcingHandler{usecase: uc}
}

func (h *SourcingHandler) Compare(c *gin.Context) {
	var payload request.SourcingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSourcingPayload.HTTPStatus, errInvalidSourcingPayload.ToHTTPError())
		return
	}

	cmp, err := h.usecase.Compare(c.Request.Context(), payload.ToProposals(), payload.RFPItems())
	if err != nil {
		appErr := mapSourcingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, cmp)
}

func (h *SourcingHandler) AutoAward(c *gin.Context) {
	var payload request.SourcingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSourcingPayload.HTTPStatus, errInvalidSourcingPayload.ToHTTPError())
		return
	}

	award, err := h.usecase.AutoAward(c.Request.Context(), payload.ToProposals(), payload.RFPItems())
	if err != nil {
		appErr := mapSourcingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, award)
}

func mapSourcingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, sourcing.ErrNoItems):
		return pkg.NewDomainErrorSimple("RFP_WITHOUT_ITEMS", "The RFP has no items", http.StatusBadRequest)
	case errors.Is(err, sourcing.ErrNotEnoughBids):
		return pkg.NewDomainErrorSimple("NOT_ENOUGH_BIDS", "Not enough complete bids to award", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
