package http

import (
	"net/http"
	"strconv"

	"tableside/internal/core/application/usecases/commands"
	"tableside/internal/core/application/usecases/queries"
	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/menu"
	"tableside/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Server implements the HTTP handlers for the customer and staff surfaces.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	catalog menu.Catalog

	// Command handlers
	submitOrderHandler    commands.SubmitOrderCommandHandler
	updateStatusHandler   commands.UpdateOrderStatusCommandHandler
	clearCompletedHandler commands.ClearCompletedOrdersCommandHandler

	// Query handlers
	listCategoriesHandler    queries.ListCategoriesQueryHandler
	listCategoryItemsHandler queries.ListCategoryItemsQueryHandler
	getOrderHandler          queries.GetOrderQueryHandler
	pollOrderHandler         queries.PollOrderQueryHandler
	listOrdersHandler        queries.ListOrdersQueryHandler
	dashboardHandler         queries.DashboardCountsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	catalog menu.Catalog,
	submitOrderHandler commands.SubmitOrderCommandHandler,
	updateStatusHandler commands.UpdateOrderStatusCommandHandler,
	clearCompletedHandler commands.ClearCompletedOrdersCommandHandler,
	listCategoriesHandler queries.ListCategoriesQueryHandler,
	listCategoryItemsHandler queries.ListCategoryItemsQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	pollOrderHandler queries.PollOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	dashboardHandler queries.DashboardCountsQueryHandler,
) *Server {
	return &Server{
		catalog:                  catalog,
		submitOrderHandler:       submitOrderHandler,
		updateStatusHandler:      updateStatusHandler,
		clearCompletedHandler:    clearCompletedHandler,
		listCategoriesHandler:    listCategoriesHandler,
		listCategoryItemsHandler: listCategoryItemsHandler,
		getOrderHandler:          getOrderHandler,
		pollOrderHandler:         pollOrderHandler,
		listOrdersHandler:        listOrdersHandler,
		dashboardHandler:         dashboardHandler,
	}
}

// GetCategories handles GET /api/v1/menu/categories.
func (s *Server) GetCategories(ctx echo.Context) error {
	categories, err := s.listCategoriesHandler.Handle(ctx.Request().Context(), queries.NewListCategoriesQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, categories)
}

// GetCategoryItems handles GET /api/v1/menu/categories/:category/items.
func (s *Server) GetCategoryItems(ctx echo.Context) error {
	query, err := queries.NewListCategoryItemsQuery(ctx.Param("category"))
	if err != nil {
		return writeError(ctx, err)
	}

	items, err := s.listCategoryItemsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]MenuItemResponse, len(items))
	for i, item := range items {
		response[i] = MenuItemResponse{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price.StringFixed(2),
			Spicy:    item.Spicy,
			Veg:      item.Veg,
			Popular:  item.Popular,
			ImageURL: item.ImageURL,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// SubmitOrder handles POST /api/v1/orders.
// Names and prices come from the loaded catalog, never from the client.
func (s *Server) SubmitOrder(ctx echo.Context) error {
	var req SubmitOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	table, err := kernel.NewTableNumber(req.TableNumber)
	if err != nil {
		return writeError(ctx, err)
	}

	cart := order.NewCart()
	for _, requested := range req.Items {
		item, itemErr := s.catalog.Item(requested.ItemID)
		if itemErr != nil {
			return writeError(ctx, itemErr)
		}

		line, lineErr := order.NewCartLine(item.ID(), item.Name(), item.Price(), requested.Quantity)
		if lineErr != nil {
			return writeError(ctx, lineErr)
		}

		if addErr := cart.Add(line); addErr != nil {
			return writeError(ctx, addErr)
		}
	}

	cmd, err := commands.NewSubmitOrderCommand(table, cart.Lines())
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.submitOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, SubmitOrderResponse{
		OrderID:       result.OrderID,
		Status:        string(result.Status),
		Total:         result.Total.StringFixed(2),
		BonusEligible: result.BonusEligible,
	})
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := parseOrderID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	lines := make([]OrderLineResponse, len(resp.Lines))
	for i, line := range resp.Lines {
		lines[i] = OrderLineResponse{
			ItemID:   line.ItemID,
			Name:     line.Name,
			Price:    line.Price.StringFixed(2),
			Quantity: line.Quantity,
			Subtotal: line.Subtotal.StringFixed(2),
		}
	}

	return ctx.JSON(http.StatusOK, OrderResponse{
		OrderID:     resp.ID,
		TableNumber: resp.TableNumber,
		Status:      string(resp.Status),
		Progress:    resp.Progress,
		Lines:       lines,
		Total:       resp.Total.StringFixed(2),
		CreatedAt:   resp.CreatedAt,
	})
}

// PollOrder handles GET /api/v1/orders/:id/poll.
// The optional last_seen query parameter carries the status the caller saw
// on its previous poll.
func (s *Server) PollOrder(ctx echo.Context) error {
	id, err := parseOrderID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewPollOrderQuery(id, order.Status(ctx.QueryParam("last_seen")))
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.pollOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	pollResp := PollOrderResponse{
		OrderID:  resp.ID,
		Status:   string(resp.Status),
		Progress: resp.Progress,
	}
	if resp.Changed != nil {
		pollResp.Change = &StatusChange{
			From: string(resp.Changed.From),
			To:   string(resp.Changed.To),
		}
	}

	return ctx.JSON(http.StatusOK, pollResp)
}

// GetBoard handles GET /api/v1/staff/orders.
// The optional status query parameter narrows the board to one stage.
func (s *Server) GetBoard(ctx echo.Context) error {
	var query queries.ListOrdersQuery
	if status := ctx.QueryParam("status"); status != "" {
		filtered, err := queries.NewListOrdersInStatusQuery(order.Status(status))
		if err != nil {
			return writeError(ctx, err)
		}
		query = filtered
	} else {
		query = queries.NewListOrdersQuery()
	}

	board, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]BoardRowResponse, len(board))
	for i, row := range board {
		response[i] = BoardRowResponse{
			OrderID:     row.ID,
			TableNumber: row.TableNumber,
			Status:      string(row.Status),
			ItemCount:   row.ItemCount,
			Total:       row.Total.StringFixed(2),
			CreatedAt:   row.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDashboard handles GET /api/v1/staff/dashboard.
func (s *Server) GetDashboard(ctx echo.Context) error {
	resp, err := s.dashboardHandler.Handle(ctx.Request().Context(), queries.NewDashboardCountsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	byStatus := make(map[string]int64, len(resp.ByStatus))
	for status, count := range resp.ByStatus {
		byStatus[string(status)] = count
	}

	return ctx.JSON(http.StatusOK, DashboardResponse{
		Total:    resp.Total,
		ByStatus: byStatus,
	})
}

// UpdateOrderStatus handles PATCH /api/v1/staff/orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	id, err := parseOrderID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req UpdateStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(id, order.Status(req.Status))
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ClearCompletedOrders handles DELETE /api/v1/staff/orders/completed.
func (s *Server) ClearCompletedOrders(ctx echo.Context) error {
	removed, err := s.clearCompletedHandler.Handle(
		ctx.Request().Context(), commands.NewClearCompletedOrdersCommand())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ClearCompletedResponse{Removed: removed})
}

func parseOrderID(ctx echo.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "order id must be a number")
	}
	return id, nil
}
