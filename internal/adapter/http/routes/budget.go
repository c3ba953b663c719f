package routes

import (
	"suprimentos/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBudgets       = "/budgets"
	PathReservations  = "/reservations"
	PathRequisitions  = "/requisitions"
	PathBudgetControl = "/budget-control"
	PathBudgetRules   = "/budget-rules"
)

func addBudgetRoutes(rg *gin.RouterGroup, budgetHandler *handlers.BudgetHandler) {
	budgets := rg.Group(PathBudgets)
	{
		budgets.GET("/balance", budgetHandler.GetBalance)
		budgets.POST("", budgetHandler.CreateBudget)
		budgets.GET("", budgetHandler.ListBudgets)
		budgets.GET("/:id", budgetHandler.GetBudget)
		budgets.PATCH("/:id", budgetHandler.UpdateBudgetTotal)
	}
}

func addReservationRoutes(rg *gin.RouterGroup, reservationHandler *handlers.ReservationHandler) {
	reservations := rg.Group(PathReservations)
	{
		reservations.POST("", reservationHandler.CreateReservation)
		reservations.GET("/:id", reservationHandler.GetReservation)
		reservations.PATCH("/:id/cancel", reservationHandler.CancelReservation)
		reservations.PATCH("/:id/confirm", reservationHandler.ConfirmReservation)
	}

	requisitions := rg.Group(PathRequisitions)
	{
		requisitions.GET("/:id/reservations", reservationHandler.ListByRequisition)
		requisitions.GET("/:id/history", reservationHandler.ListHistory)
	}
}

func addBudgetRuleRoutes(rg *gin.RouterGroup, ruleHandler *handlers.BudgetRuleHandler) {
	rg.POST(PathBudgetControl+"/check", ruleHandler.CheckBudgetControl)

	rules := rg.Group(PathBudgetRules)
	{
		rules.POST("", ruleHandler.CreateRule)
		rules.GET("", ruleHandler.ListRules)
		rules.GET("/:id", ruleHandler.GetRule)
		rules.PUT("/:id", ruleHandler.UpdateRule)
		rules.PATCH("/:id/active", ruleHandler.SetRuleActive)
		rules.DELETE("/:id", ruleHandler.DeleteRule)
	}
}
