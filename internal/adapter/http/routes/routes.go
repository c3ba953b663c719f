package routes

import (
	_ "suprimentos/docs"
	"suprimentos/internal/adapter/http/handlers"
	"suprimentos/internal/adapter/http/middleware"
	"suprimentos/internal/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers groups what the router serves. OrderExport and OrderPayment are
// nil when the relational store is disabled, and their routes are skipped.
type Handlers struct {
	Budget       *handlers.BudgetHandler
	Reservation  *handlers.ReservationHandler
	BudgetRule   *handlers.BudgetRuleHandler
	Sourcing     *handlers.SourcingHandler
	OrderExport  *handlers.OrderExportHandler
	OrderPayment *handlers.OrderPaymentHandler
}

// NewRouter builds the gin engine with middlewares, swagger and the /v1 API.
func NewRouter(cfg *config.Config, h Handlers, logger *zap.Logger) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	router := gin.New()
	setMiddlewares(router, cfg, logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBudgetRoutes(v1, h.Budget)
	addReservationRoutes(v1, h.Reservation)
	addBudgetRuleRoutes(v1, h.BudgetRule)
	addSourcingRoutes(v1, h.Sourcing)
	addOrderRoutes(v1, h.OrderExport, h.OrderPayment)

	return router
}

func setMiddlewares(router *gin.Engine, cfg *config.Config, logger *zap.Logger) {
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS(cfg.CORS.AllowOrigins))
}
