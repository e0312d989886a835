package http

import (
	"tableside/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// RegisterRoutes wires the customer and staff routes onto the echo instance.
// Customer routes are open; everything under /api/v1/staff requires a valid
// staff token.
func RegisterRoutes(e *echo.Echo, server *Server, authorizer ports.Authorizer) {
	api := e.Group("/api/v1")

	api.GET("/menu/categories", server.GetCategories)
	api.GET("/menu/categories/:category/items", server.GetCategoryItems)
	api.POST("/orders", server.SubmitOrder)
	api.GET("/orders/:id", server.GetOrder)
	api.GET("/orders/:id/poll", server.PollOrder)

	staff := api.Group("/staff", StaffAuth(authorizer))
	staff.GET("/orders", server.GetBoard)
	staff.GET("/dashboard", server.GetDashboard)
	staff.PATCH("/orders/:id/status", server.UpdateOrderStatus)
	staff.DELETE("/orders/completed", server.ClearCompletedOrders)
}
