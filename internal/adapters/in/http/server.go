package http

import (
	"errors"
	"net/http"

	"catertrack/internal/core/application/usecases/commands"
	"catertrack/internal/core/application/usecases/queries"
	"catertrack/internal/core/domain/model/kernel"
	"catertrack/internal/generated/servers"
	"catertrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler commands.PlaceOrderCommandHandler

	// Query handlers
	trackOrderHandler      queries.TrackOrderQueryHandler
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	trackOrderHandler queries.TrackOrderQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:      placeOrderHandler,
		trackOrderHandler:      trackOrderHandler,
		getActiveOrdersHandler: getActiveOrdersHandler,
	}
}

// CreateOrder handles POST /api/v1/orders - places a new catering order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	email, err := kernel.NewEmail(string(newOrder.CustomerEmail))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid customer email: " + err.Error(),
		})
	}

	trackingNumber := kernel.NewTrackingNumber()

	cmd, err := commands.NewPlaceOrderCommand(trackingNumber, email, newOrder.Items)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	if handleErr := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to place order",
		})
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedOrder{
		TrackingNumber: trackingNumber.String(),
	})
}

// TrackOrder handles GET /api/v1/orders/track - looks up an order by its credentials.
// Malformed credentials are indistinguishable from unknown ones: both yield 404.
func (s *Server) TrackOrder(ctx echo.Context, params servers.TrackOrderParams) error {
	number, err := kernel.TrackingNumberFromString(params.Number)
	if err != nil {
		return s.orderNotFound(ctx)
	}

	email, err := kernel.NewEmail(string(params.Email))
	if err != nil {
		return s.orderNotFound(ctx)
	}

	query, err := queries.NewTrackOrderQuery(number, email)
	if err != nil {
		return s.orderNotFound(ctx)
	}

	record, err := s.trackOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return s.orderNotFound(ctx)
		}
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to track order",
		})
	}

	response := servers.TrackedOrder{
		TrackingNumber:    record.TrackingNumber.String(),
		CustomerEmail:     params.Email,
		PlacedAt:          record.PlacedAt,
		Items:             record.Items,
		Status:            servers.TrackedOrderStatus(record.Status.String()),
		Progress:          record.Progress,
		EstimatedDelivery: record.EstimatedDelivery,
		History:           make([]servers.TrackingEvent, 0, len(record.History)),
	}

	if record.Location != nil {
		response.Location = &servers.GeoLocation{
			Latitude:  record.Location.Latitude(),
			Longitude: record.Location.Longitude(),
			Address:   record.Location.Address(),
		}
	}

	for _, event := range record.History {
		response.History = append(response.History, servers.TrackingEvent{
			Status:     servers.TrackingEventStatus(event.Status.String()),
			OccurredAt: event.OccurredAt,
			Location:   event.LocationLabel,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetActiveOrders handles GET /api/v1/orders/active - retrieves all undelivered orders.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]servers.OrderSummary, len(orders))
	for i, activeOrder := range orders {
		response[i] = servers.OrderSummary{
			TrackingNumber:    activeOrder.TrackingNumber.String(),
			Status:            servers.OrderSummaryStatus(activeOrder.Status.String()),
			Progress:          activeOrder.Progress,
			PlacedAt:          activeOrder.PlacedAt,
			EstimatedDelivery: activeOrder.EstimatedDelivery,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) orderNotFound(ctx echo.Context) error {
	return ctx.JSON(http.StatusNotFound, servers.Error{
		Code:    http.StatusNotFound,
		Message: "Order not found",
	})
}
