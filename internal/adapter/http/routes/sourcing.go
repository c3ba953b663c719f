package routes

import (
	"suprimentos/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathSourcing = "/sourcing"

func addSourcingRoutes(rg *gin.RouterGroup, sourcingHandler *handlers.SourcingHandler) {
	sourcing := rg.Group(PathSourcing)
	{
		sourcing.POST("/comparisons", sourcingHandler.Compare)
		sourcing.POST("/auto-award", sourcingHandler.AutoAward)
	}
}
