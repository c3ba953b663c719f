package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	request "suprimentos/internal/adapter/http/dto/request"
	response "suprimentos/internal/adapter/http/dto/response"
	"suprimentos/internal/domain/entities"
	"suprimentos/internal/usecase"
	"suprimentos/pkg"
)

var (
	errInvalidBudgetRulePayload = pkg.NewDomainErrorSimple("INVALID_BUDGET_RULE_INPUT", "Invalid budget rule payload", http.StatusBadRequest)
)

type BudgetRuleHandler struct {
	usecase usecase.IBudgetRuleUseCase
}

func NewBudgetRuleHandler(uc usecase.IBudgetRuleUseCase) *BudgetRuleHandler {
	return &BudgetRuleHandler{usecase: uc}
}

// CheckBudgetControl answers whether a requisition falls under budget control.
func (h *BudgetRuleHandler) CheckBudgetControl(c *gin.Context) {
	var payload request.BudgetControlCheckRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetRulePayload.HTTPStatus, errInvalidBudgetRulePayload.ToHTTPError())
		return
	}

	apply, err := h.usecase.ShouldApplyBudgetControl(c.Request.Context(), payload.ToControlInput())
	if err != nil {
		appErr := mapBudgetRuleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.BudgetControlCheckResponse{ApplyBudgetControl: apply})
}

func (h *BudgetRuleHandler) CreateRule(c *gin.Context) {
	var payload request.BudgetRuleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetRulePayload.HTTPStatus, errInvalidBudgetRulePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateRule(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapBudgetRuleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBudgetRule(created))
}

func (h *BudgetRuleHandler) UpdateRule(c *gin.Context) {
	var payload request.BudgetRuleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetRulePayload.HTTPStatus, errInvalidBudgetRulePayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateRule(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		appErr := mapBudgetRuleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudgetRule(updated))
}

func (h *BudgetRuleHandler) SetRuleActive(c *gin.Context) {
	var payload request.SetRuleActiveRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetRulePayload.HTTPStatus, errInvalidBudgetRulePayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.SetRuleActive(c.Request.Context(), c.Param("id"), *payload.Active)
	if err != nil {
		appErr := mapBudgetRuleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudgetRule(updated))
}

func (h *BudgetRuleHandler) GetRule(c *gin.Context) {
	rule, err := h.usecase.GetRule(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBudgetRuleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudgetRule(rule))
}

// ListRules lists every rule; ?active=true keeps only the active ones.
func (h *BudgetRuleHandler) ListRules(c *gin.Context) {
	onlyActive := false
	if raw := c.Query("active"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
			return
		}
		onlyActive = parsed
	}

	rules, err := h.usecase.ListRules(c.Request.Context(), onlyActive)
	if err != nil {
		appErr := mapBudgetRuleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudgetRules(rules))
}

func (h *BudgetRuleHandler) DeleteRule(c *gin.Context) {
	if err := h.usecase.DeleteRule(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapBudgetRuleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapBudgetRuleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBudgetRuleID), errors.Is(err, usecase.ErrInvalidBudgetRuleName):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, entities.ErrUnknownRuleKind):
		return pkg.NewDomainErrorSimple("UNKNOWN_RULE_KIND", "Unknown budget rule kind", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidRuleCondition):
		return pkg.NewDomainErrorSimple("INVALID_RULE_CONDITION", "Condition does not match the rule kind", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBudgetRuleNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_RULE_NOT_FOUND", "Budget rule not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
