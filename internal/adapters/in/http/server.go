// Package http exposes the REST surface for orders and their line items.
// Handlers translate HTTP requests into commands and queries, and map the
// typed errors coming back into the error taxonomy of the API: 404 for
// unknown identifiers, 400 for validation failures, 415 for wrong media
// types on mutating requests.
package http

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"
	"time"
	"unicode"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler commands.CreateOrderCommandHandler
	updateOrderHandler commands.UpdateOrderCommandHandler
	deleteOrderHandler commands.DeleteOrderCommandHandler
	addItemHandler     commands.AddItemCommandHandler
	updateItemHandler  commands.UpdateItemCommandHandler
	removeItemHandler  commands.RemoveItemCommandHandler

	// Query handlers
	listOrdersHandler            queries.ListOrdersQueryHandler
	getOrderHandler              queries.GetOrderQueryHandler
	listOrderItemsHandler        queries.ListOrderItemsQueryHandler
	getItemHandler               queries.GetItemQueryHandler
	getOrdersByDateHandler       queries.GetOrdersByDateQueryHandler
	getOrdersByPriceRangeHandler queries.GetOrdersByPriceRangeQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	addItemHandler commands.AddItemCommandHandler,
	updateItemHandler commands.UpdateItemCommandHandler,
	removeItemHandler commands.RemoveItemCommandHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrderItemsHandler queries.ListOrderItemsQueryHandler,
	getItemHandler queries.GetItemQueryHandler,
	getOrdersByDateHandler queries.GetOrdersByDateQueryHandler,
	getOrdersByPriceRangeHandler queries.GetOrdersByPriceRangeQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:           createOrderHandler,
		updateOrderHandler:           updateOrderHandler,
		deleteOrderHandler:           deleteOrderHandler,
		addItemHandler:               addItemHandler,
		updateItemHandler:            updateItemHandler,
		removeItemHandler:            removeItemHandler,
		listOrdersHandler:            listOrdersHandler,
		getOrderHandler:              getOrderHandler,
		listOrderItemsHandler:        listOrderItemsHandler,
		getItemHandler:               getItemHandler,
		getOrdersByDateHandler:       getOrdersByDateHandler,
		getOrdersByPriceRangeHandler: getOrdersByPriceRangeHandler,
	}
}

// RegisterRoutes binds all routes onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	e.GET("/orders", s.ListOrders)
	e.POST("/orders", s.CreateOrder)
	e.GET("/orders/date/:date", s.GetOrdersByDate)
	e.GET("/orders/prices", s.GetOrdersByPriceRange)
	e.GET("/orders/:id", s.GetOrder)
	e.PUT("/orders/:id", s.UpdateOrder)
	e.DELETE("/orders/:id", s.DeleteOrder)

	e.GET("/orders/:id/items", s.ListItems)
	e.POST("/orders/:id/items", s.AddItem)
	e.GET("/orders/:id/items/:item_id", s.GetItem)
	e.PUT("/orders/:id/items/:item_id", s.UpdateItem)
	e.DELETE("/orders/:id/items/:item_id", s.RemoveItem)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "OK"})
}

// ListOrders handles GET /orders - retrieves all orders, optionally filtered
// by exact name via the ?name= parameter.
func (s *Server) ListOrders(ctx echo.Context) error {
	query := queries.NewListOrdersQuery()
	if name := ctx.QueryParam("name"); name != "" {
		query = queries.NewListOrdersQueryWithName(name)
	}

	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponsesFromReadModels(orders))
}

// CreateOrder handles POST /orders - creates a new order, optionally with
// nested items, and returns it with a Location header.
func (s *Server) CreateOrder(ctx echo.Context) error {
	if !s.requireJSON(ctx) {
		return nil
	}

	var payload OrderRequest
	if err := ctx.Bind(&payload); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := payload.toCreateOrderCommand()
	if err != nil {
		return s.respondError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/orders/%d", created.ID()))
	return ctx.JSON(http.StatusCreated, orderResponseFromAggregate(created))
}

// GetOrder handles GET /orders/{id} - retrieves one order with its items.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, ok := s.bindOrderID(ctx)
	if !ok {
		return nil
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	model, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromReadModel(model))
}

// UpdateOrder handles PUT /orders/{id} - overwrites an order's fields.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	if !s.requireJSON(ctx) {
		return nil
	}

	orderID, ok := s.bindOrderID(ctx)
	if !ok {
		return nil
	}

	var payload OrderRequest
	if err := ctx.Bind(&payload); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := payload.toUpdateOrderCommand(orderID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromAggregate(updated))
}

// DeleteOrder handles DELETE /orders/{id} - removes an order and its items.
// Idempotent: unknown identifiers still yield 204.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || orderID <= 0 {
		// Nothing to delete under a malformed identifier.
		return ctx.NoContent(http.StatusNoContent)
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListItems handles GET /orders/{id}/items - retrieves an order's items,
// optionally filtered by the ?product_id= parameter.
func (s *Server) ListItems(ctx echo.Context) error {
	orderID, ok := s.bindOrderID(ctx)
	if !ok {
		return nil
	}

	var query queries.ListOrderItemsQuery
	var err error

	var productID *int
	if bindErr := runtime.BindQueryParameter(
		"form", true, false, "product_id", ctx.QueryParams(), &productID,
	); bindErr != nil {
		return s.badRequest(ctx, "Invalid query parameter 'product_id'")
	}

	if productID != nil {
		query, err = queries.NewListOrderItemsQueryWithProductID(orderID, *productID)
	} else {
		query, err = queries.NewListOrderItemsQuery(orderID)
	}
	if err != nil {
		return s.respondError(ctx, err)
	}

	items, err := s.listOrderItemsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, itemResponsesFromReadModels(items))
}

// AddItem handles POST /orders/{id}/items - creates an item under an order.
func (s *Server) AddItem(ctx echo.Context) error {
	if !s.requireJSON(ctx) {
		return nil
	}

	orderID, ok := s.bindOrderID(ctx)
	if !ok {
		return nil
	}

	var payload ItemRequest
	if err := ctx.Bind(&payload); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	spec, err := payload.toItemSpec()
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewAddItemCommand(orderID, spec)
	if err != nil {
		return s.respondError(ctx, err)
	}

	created, err := s.addItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, itemResponseFromEntity(created))
}

// GetItem handles GET /orders/{id}/items/{item_id} - retrieves one item.
func (s *Server) GetItem(ctx echo.Context) error {
	orderID, ok := s.bindOrderID(ctx)
	if !ok {
		return nil
	}
	itemID, ok := s.bindItemID(ctx)
	if !ok {
		return nil
	}

	query, err := queries.NewGetItemQuery(orderID, itemID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	model, err := s.getItemHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, itemResponseFromReadModel(model))
}

// UpdateItem handles PUT /orders/{id}/items/{item_id} - overwrites an item's
// fields. The item stays in its order regardless of payload content.
func (s *Server) UpdateItem(ctx echo.Context) error {
	if !s.requireJSON(ctx) {
		return nil
	}

	orderID, ok := s.bindOrderID(ctx)
	if !ok {
		return nil
	}
	itemID, ok := s.bindItemID(ctx)
	if !ok {
		return nil
	}

	var payload ItemRequest
	if err := ctx.Bind(&payload); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	spec, err := payload.toItemSpec()
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateItemCommand(orderID, itemID, spec)
	if err != nil {
		return s.respondError(ctx, err)
	}

	updated, err := s.updateItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, itemResponseFromEntity(updated))
}

// RemoveItem handles DELETE /orders/{id}/items/{item_id} - deletes an item.
// The order must exist; the item delete itself is idempotent.
func (s *Server) RemoveItem(ctx echo.Context) error {
	orderID, ok := s.bindOrderID(ctx)
	if !ok {
		return nil
	}

	itemID, err := strconv.Atoi(ctx.Param("item_id"))
	if err != nil || itemID <= 0 {
		return ctx.NoContent(http.StatusNoContent)
	}

	cmd, err := commands.NewRemoveItemCommand(orderID, itemID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.removeItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrdersByDate handles GET /orders/date/{date} - retrieves the orders
// created on the exact calendar date. 404 when none match.
func (s *Server) GetOrdersByDate(ctx echo.Context) error {
	raw := ctx.Param("date")
	date, err := time.Parse(dateLayout, raw)
	if err != nil {
		return s.badRequest(ctx, fmt.Sprintf("Invalid date '%s', expected YYYY-MM-DD", raw))
	}

	query, err := queries.NewGetOrdersByDateQuery(date)
	if err != nil {
		return s.respondError(ctx, err)
	}

	orders, err := s.getOrdersByDateHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}
	if len(orders) == 0 {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: fmt.Sprintf("No orders were found for date '%s'.", raw),
		})
	}

	return ctx.JSON(http.StatusOK, orderResponsesFromReadModels(orders))
}

// GetOrdersByPriceRange handles GET /orders/prices?min_price&max_price -
// retrieves the orders holding items inside the inclusive price range, each
// order nesting only its matching items. 404 when none match.
func (s *Server) GetOrdersByPriceRange(ctx echo.Context) error {
	var minPrice, maxPrice float64
	if err := runtime.BindQueryParameter(
		"form", true, true, "min_price", ctx.QueryParams(), &minPrice,
	); err != nil {
		return s.badRequest(ctx, "Query parameter 'min_price' is required and must be a number")
	}
	if err := runtime.BindQueryParameter(
		"form", true, true, "max_price", ctx.QueryParams(), &maxPrice,
	); err != nil {
		return s.badRequest(ctx, "Query parameter 'max_price' is required and must be a number")
	}

	query, err := queries.NewGetOrdersByPriceRangeQuery(minPrice, maxPrice)
	if err != nil {
		return s.respondError(ctx, err)
	}

	orders, err := s.getOrdersByPriceRangeHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}
	if len(orders) == 0 {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: fmt.Sprintf("No orders were found with items priced between %v and %v.", minPrice, maxPrice),
		})
	}

	return ctx.JSON(http.StatusOK, orderResponsesFromReadModels(orders))
}

// bindOrderID parses the {id} path parameter. A non-integer identifier can
// never match a stored order, so it reports 404 directly.
func (s *Server) bindOrderID(ctx echo.Context) (int, bool) {
	raw := ctx.Param("id")
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		_ = ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: fmt.Sprintf("Order with id '%s' was not found.", raw),
		})
		return 0, false
	}

	return id, true
}

// bindItemID parses the {item_id} path parameter, 404 on malformed values.
func (s *Server) bindItemID(ctx echo.Context) (int, bool) {
	raw := ctx.Param("item_id")
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		_ = ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: fmt.Sprintf("Item with id '%s' was not found.", raw),
		})
		return 0, false
	}

	return id, true
}

// requireJSON rejects mutating requests without a JSON content type. The
// check runs before any payload parsing or persistence call.
func (s *Server) requireJSON(ctx echo.Context) bool {
	contentType := ctx.Request().Header.Get(echo.HeaderContentType)
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || mediaType != echo.MIMEApplicationJSON {
		_ = ctx.JSON(http.StatusUnsupportedMediaType, Error{
			Code:    http.StatusUnsupportedMediaType,
			Message: fmt.Sprintf("Content-Type must be %s", echo.MIMEApplicationJSON),
		})
		return false
	}

	return true
}

func (s *Server) badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// respondError maps typed application errors onto the API error taxonomy.
func (s *Server) respondError(ctx echo.Context, err error) error {
	var notFoundErr *errs.ObjectNotFoundError
	if errors.As(err, &notFoundErr) {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: fmt.Sprintf("%s with id '%v' was not found.", title(notFoundErr.ParamName), notFoundErr.ID),
		})
	}

	if errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsOutOfRange) {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: "Internal server error",
	})
}

func title(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
