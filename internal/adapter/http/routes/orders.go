package routes

import (
	"suprimentos/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathOrders = "/orders"

func addOrderRoutes(rg *gin.RouterGroup, exportHandler *handlers.OrderExportHandler, paymentHandler *handlers.OrderPaymentHandler) {
	if exportHandler == nil && paymentHandler == nil {
		return
	}
	orders := rg.Group(PathOrders)
	if exportHandler != nil {
		orders.POST("/export", exportHandler.ExportOrders)
	}
	if paymentHandler != nil {
		orders.POST("/:order_id/payments", paymentHandler.PayOrder)
		orders.GET("/:order_id/payments", paymentHandler.ListOrderPayments)
	}
}
