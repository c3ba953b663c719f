package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	request "suprimentos/internal/adapter/http/dto/request"
	response "suprimentos/internal/adapter/http/dto/response"
	"suprimentos/internal/usecase"
	"suprimentos/pkg"
)

var (
	errInvalidBudgetPayload = pkg.NewDomainErrorSimple("INVALID_BUDGET_INPUT", "Invalid budget payload", http.StatusBadRequest)
)

// BudgetHandler serves budget balances (saldo) and budget administration.
type BudgetHandler struct {
	usecase usecase.IBudgetUseCase
}

func NewBudgetHandler(uc usecase.IBudgetUseCase) *BudgetHandler {
	return &BudgetHandler{usecase: uc}
}

// GetBalance returns the current-year balance for the cost center slice given
// in the query string. A missing budget answers 200 with found=false and
// status critico.
func (h *BudgetHandler) GetBalance(c *gin.Context) {
	balance, err := h.usecase.GetBalance(c.Request.Context(),
		c.Query("cost_center"), c.Query("project"), c.Query("category"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBalance(balance))
}

func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	var payload request.CreateBudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateBudget(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBudget(created))
}

func (h *BudgetHandler) UpdateBudgetTotal(c *gin.Context) {
	var payload request.UpdateBudgetTotalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateBudgetTotal(c.Request.Context(), c.Param("id"), *payload.Total)
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudget(updated))
}

func (h *BudgetHandler) GetBudget(c *gin.Context) {
	b, err := h.usecase.GetBudget(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudget(b))
}

// ListBudgets lists a year's budgets, optionally for one cost center. An
// omitted year means the current one.
func (h *BudgetHandler) ListBudgets(c *gin.Context) {
	year := 0
	if raw := strings.TrimSpace(c.Query("year")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			appErr := mapBudgetError(usecase.ErrInvalidBudgetYear)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		year = parsed
	}

	budgets, err := h.usecase.ListBudgets(c.Request.Context(), year, c.Query("cost_center"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudgets(budgets))
}

func mapBudgetError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBudgetID), errors.Is(err, usecase.ErrInvalidCostCenter),
		errors.Is(err, usecase.ErrInvalidBudgetYear), errors.Is(err, usecase.ErrInvalidBudgetTotal):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBudgetNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_FOUND", "Budget not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBudgetAlreadyExists):
		return pkg.NewDomainErrorSimple("BUDGET_ALREADY_EXISTS", "Budget already exists for this cost center and year", http.StatusConflict)
	case errors.Is(err, usecase.ErrBudgetBelowCommitted):
		return pkg.NewDomainErrorSimple("BUDGET_BELOW_COMMITTED", "Budget total is below used plus reserved", http.StatusConflict)
	case errors.Is(err, usecase.ErrBudgetConcurrentUpdate):
		return pkg.NewDomainErrorSimple("BUDGET_CONCURRENT_UPDATE", "Budget changed concurrently, retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
