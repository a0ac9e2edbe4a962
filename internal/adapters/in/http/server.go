// Package http exposes the REST API of the storefront.
package http

import (
	"errors"
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler         commands.CreateOrderCommandHandler
	changeOrderStatusHandler   commands.ChangeOrderStatusCommandHandler
	changePaymentStatusHandler commands.ChangePaymentStatusCommandHandler
	createSubscriberHandler    commands.CreateSubscriberCommandHandler
	updateSubscriberHandler    commands.UpdateSubscriberCommandHandler
	removeSubscriberHandler    commands.RemoveSubscriberCommandHandler
	sendPromotionHandler       commands.SendPromotionCommandHandler

	// Query handlers
	getOrderHandler          queries.GetOrderQueryHandler
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler
	getAllSubscribersHandler queries.GetAllSubscribersQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	changePaymentStatusHandler commands.ChangePaymentStatusCommandHandler,
	createSubscriberHandler commands.CreateSubscriberCommandHandler,
	updateSubscriberHandler commands.UpdateSubscriberCommandHandler,
	removeSubscriberHandler commands.RemoveSubscriberCommandHandler,
	sendPromotionHandler commands.SendPromotionCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	getAllSubscribersHandler queries.GetAllSubscribersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		changeOrderStatusHandler:   changeOrderStatusHandler,
		changePaymentStatusHandler: changePaymentStatusHandler,
		createSubscriberHandler:    createSubscriberHandler,
		updateSubscriberHandler:    updateSubscriberHandler,
		removeSubscriberHandler:    removeSubscriberHandler,
		sendPromotionHandler:       sendPromotionHandler,
		getOrderHandler:            getOrderHandler,
		getCustomerOrdersHandler:   getCustomerOrdersHandler,
		getAllSubscribersHandler:   getAllSubscribersHandler,
	}
}

// RegisterRoutes binds all API routes on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.PATCH("/orders/:id/status", s.ChangeOrderStatus)
	api.PATCH("/orders/:id/payment", s.ChangePaymentStatus)
	api.GET("/customers/:email/orders", s.GetCustomerOrders)

	api.GET("/subscribers", s.GetSubscribers)
	api.POST("/subscribers", s.CreateSubscriber)
	api.PUT("/subscribers/:id", s.UpdateSubscriber)
	api.DELETE("/subscribers/:id", s.RemoveSubscriber)

	api.POST("/promotions/dispatch", s.DispatchPromotion)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	email, err := kernel.NewEmail(req.CustomerEmail)
	if err != nil {
		return badRequest(ctx, "Invalid customer email: "+err.Error())
	}

	items := make([]order.Item, 0, len(req.Items))
	for _, line := range req.Items {
		item, err := order.NewItem(line.ProductID, line.ProductName, line.Quantity, line.UnitPrice)
		if err != nil {
			return badRequest(ctx, "Invalid order item: "+err.Error())
		}
		items = append(items, item)
	}

	address, err := order.NewAddress(
		req.ShippingAddress.Street,
		req.ShippingAddress.City,
		req.ShippingAddress.State,
		req.ShippingAddress.PostalCode,
		req.ShippingAddress.Country,
	)
	if err != nil {
		return badRequest(ctx, "Invalid shipping address: "+err.Error())
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), email, req.CustomerName, items, address)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderFromDomain(created))
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromReadModel(result))
}

// GetCustomerOrders handles GET /api/v1/customers/:email/orders.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	email, err := kernel.NewEmail(ctx.Param("email"))
	if err != nil {
		return badRequest(ctx, "Invalid customer email: "+err.Error())
	}

	query, err := queries.NewGetCustomerOrdersQuery(email)
	if err != nil {
		return badRequest(ctx, "Invalid customer email")
	}

	result, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]OrderResponse, 0, len(result.Orders))
	for _, o := range result.Orders {
		response = append(response, orderFromReadModel(o))
	}

	return ctx.JSON(http.StatusOK, response)
}

// ChangeOrderStatus handles PATCH /api/v1/orders/:id/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req ChangeOrderStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid order status: "+err.Error())
	}

	updated, err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(updated))
}

// ChangePaymentStatus handles PATCH /api/v1/orders/:id/payment.
func (s *Server) ChangePaymentStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req ChangePaymentStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewChangePaymentStatusCommand(orderID, req.PaymentStatus)
	if err != nil {
		return badRequest(ctx, "Invalid payment status: "+err.Error())
	}

	updated, err := s.changePaymentStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(updated))
}

// GetSubscribers handles GET /api/v1/subscribers - lists active subscribers.
// The optional wantsPromotions query parameter narrows the list to opted-in
// or opted-out subscribers.
func (s *Server) GetSubscribers(ctx echo.Context) error {
	var wantsPromotions *bool
	switch ctx.QueryParam("wantsPromotions") {
	case "":
	case "true":
		v := true
		wantsPromotions = &v
	case "false":
		v := false
		wantsPromotions = &v
	default:
		return badRequest(ctx, "Invalid wantsPromotions filter")
	}

	query := queries.NewGetAllSubscribersQuery(wantsPromotions)

	result, err := s.getAllSubscribersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]SubscriberResponse, 0, len(result.Subscribers))
	for _, sub := range result.Subscribers {
		response = append(response, subscriberFromReadModel(sub))
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateSubscriber handles POST /api/v1/subscribers.
func (s *Server) CreateSubscriber(ctx echo.Context) error {
	var req CreateSubscriberRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	email, err := kernel.NewEmail(req.Email)
	if err != nil {
		return badRequest(ctx, "Invalid email: "+err.Error())
	}

	cmd, err := commands.NewCreateSubscriberCommand(
		kernel.NewUUID(), email, req.FirstName, req.LastName, req.WantsPromotions)
	if err != nil {
		return badRequest(ctx, "Invalid subscriber data: "+err.Error())
	}

	created, err := s.createSubscriberHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, subscriberFromDomain(created))
}

// UpdateSubscriber handles PUT /api/v1/subscribers/:id.
func (s *Server) UpdateSubscriber(ctx echo.Context) error {
	subscriberID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid subscriber id")
	}

	var req UpdateSubscriberRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateSubscriberCommand(
		subscriberID, req.FirstName, req.LastName, req.IsActive, req.WantsPromotions)
	if err != nil {
		return badRequest(ctx, "Invalid subscriber data: "+err.Error())
	}

	updated, err := s.updateSubscriberHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, subscriberFromDomain(updated))
}

// RemoveSubscriber handles DELETE /api/v1/subscribers/:id - deactivates the
// subscriber, keeping the record.
func (s *Server) RemoveSubscriber(ctx echo.Context) error {
	subscriberID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid subscriber id")
	}

	cmd, err := commands.NewRemoveSubscriberCommand(subscriberID)
	if err != nil {
		return badRequest(ctx, "Invalid subscriber id")
	}

	if err := s.removeSubscriberHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DispatchPromotion handles POST /api/v1/promotions/dispatch - sends the
// promotional campaign to the requested subscribers.
func (s *Server) DispatchPromotion(ctx echo.Context) error {
	var req SendPromotionRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	subscriberIDs := make([]kernel.UUID, 0, len(req.SubscriberIDs))
	for _, raw := range req.SubscriberIDs {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid subscriber id: "+raw)
		}
		subscriberIDs = append(subscriberIDs, id)
	}

	cmd, err := commands.NewSendPromotionCommand(subscriberIDs)
	if err != nil {
		return badRequest(ctx, "Invalid dispatch request: "+err.Error())
	}

	result, err := s.sendPromotionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DispatchResponse{
		Total:  result.Total,
		Sent:   result.Sent,
		Failed: result.Failed(),
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// fail maps application errors to HTTP status codes.
func fail(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}
