// Package http exposes the application's use cases over a REST API.
// Handlers translate JSON payloads into commands and queries, and map the
// application error taxonomy onto HTTP status codes: validation and
// malformed-payload errors become 400, missing objects 404, illegal state
// transitions 409, everything else 500.
package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"deliveryconnect/internal/core/application/usecases/commands"
	"deliveryconnect/internal/core/application/usecases/queries"
	"deliveryconnect/internal/core/domain/model/courier"
	"deliveryconnect/internal/core/domain/model/delivery"
	"deliveryconnect/internal/core/domain/model/handoff"
	"deliveryconnect/internal/core/domain/model/kernel"
	"deliveryconnect/internal/core/ports"
	"deliveryconnect/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CreateDeliveryHandler processes delivery creation.
type CreateDeliveryHandler interface {
	Handle(ctx context.Context, command commands.CreateDeliveryCommand) (*delivery.Delivery, error)
}

// CollectDeliveryHandler processes a courier's claim on a pending delivery.
type CollectDeliveryHandler interface {
	Handle(ctx context.Context, command commands.CollectDeliveryCommand) error
}

// CompleteDeliveryHandler processes the final delivery confirmation.
type CompleteDeliveryHandler interface {
	Handle(ctx context.Context, command commands.CompleteDeliveryCommand) error
}

// RegisterCourierHandler processes courier registration.
type RegisterCourierHandler interface {
	Handle(ctx context.Context, command commands.RegisterCourierCommand) (*courier.Courier, error)
}

// SetCourierOnlineHandler processes courier presence toggles.
type SetCourierOnlineHandler interface {
	Handle(ctx context.Context, command commands.SetCourierOnlineCommand) error
}

// GetDeliveryHandler reads a single delivery.
type GetDeliveryHandler interface {
	Handle(ctx context.Context, query queries.GetDeliveryQuery) (*delivery.Delivery, error)
}

// GetAvailableCouriersHandler reads the ranked courier listing.
type GetAvailableCouriersHandler interface {
	Handle(ctx context.Context, query queries.GetAvailableCouriersQuery) ([]queries.GetAvailableCouriersQueryResponse, error)
}

// GetCommerceDeliveriesHandler reads a commerce's delivery history.
type GetCommerceDeliveriesHandler interface {
	Handle(ctx context.Context, query queries.GetCommerceDeliveriesQuery) ([]queries.GetCommerceDeliveriesQueryResponse, error)
}

// GetCourierDeliveriesHandler reads a courier's workload and history.
type GetCourierDeliveriesHandler interface {
	Handle(ctx context.Context, query queries.GetCourierDeliveriesQuery) (queries.GetCourierDeliveriesQueryResponse, error)
}

// TransitScheduler defers the in-transit transition of a collected delivery.
type TransitScheduler interface {
	Schedule(deliveryID delivery.ID)
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createDeliveryHandler   CreateDeliveryHandler
	collectDeliveryHandler  CollectDeliveryHandler
	completeDeliveryHandler CompleteDeliveryHandler
	registerCourierHandler  RegisterCourierHandler
	setCourierOnlineHandler SetCourierOnlineHandler

	// Query handlers
	getDeliveryHandler           GetDeliveryHandler
	getAvailableCouriersHandler  GetAvailableCouriersHandler
	getCommerceDeliveriesHandler GetCommerceDeliveriesHandler
	getCourierDeliveriesHandler  GetCourierDeliveriesHandler

	// Collaborators
	transitScheduler TransitScheduler
	locationFeed     ports.LocationFeed
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createDeliveryHandler CreateDeliveryHandler,
	collectDeliveryHandler CollectDeliveryHandler,
	completeDeliveryHandler CompleteDeliveryHandler,
	registerCourierHandler RegisterCourierHandler,
	setCourierOnlineHandler SetCourierOnlineHandler,
	getDeliveryHandler GetDeliveryHandler,
	getAvailableCouriersHandler GetAvailableCouriersHandler,
	getCommerceDeliveriesHandler GetCommerceDeliveriesHandler,
	getCourierDeliveriesHandler GetCourierDeliveriesHandler,
	transitScheduler TransitScheduler,
	locationFeed ports.LocationFeed,
) *Server {
	return &Server{
		createDeliveryHandler:        createDeliveryHandler,
		collectDeliveryHandler:       collectDeliveryHandler,
		completeDeliveryHandler:      completeDeliveryHandler,
		registerCourierHandler:       registerCourierHandler,
		setCourierOnlineHandler:      setCourierOnlineHandler,
		getDeliveryHandler:           getDeliveryHandler,
		getAvailableCouriersHandler:  getAvailableCouriersHandler,
		getCommerceDeliveriesHandler: getCommerceDeliveriesHandler,
		getCourierDeliveriesHandler:  getCourierDeliveriesHandler,
		transitScheduler:             transitScheduler,
		locationFeed:                 locationFeed,
	}
}

// RegisterRoutes binds all endpoints onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/deliveries", s.CreateDelivery)
	api.GET("/deliveries/:id/handoff", s.GetDeliveryHandoff)
	api.POST("/deliveries/collect", s.CollectDelivery)
	api.POST("/deliveries/:id/complete", s.CompleteDelivery)
	api.GET("/commerces/:id/deliveries", s.GetCommerceDeliveries)
	api.POST("/couriers", s.RegisterCourier)
	api.PUT("/couriers/:id/presence", s.SetCourierPresence)
	api.GET("/couriers/available", s.GetAvailableCouriers)
	api.GET("/couriers/:id/deliveries", s.GetCourierDeliveries)
	api.GET("/couriers/:id/location", s.GetCourierLocation)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateDelivery handles POST /api/v1/deliveries - publishes a new delivery
// and returns it together with the encoded handoff code.
func (s *Server) CreateDelivery(ctx echo.Context) error {
	var request CreateDeliveryRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	commerceID, err := kernel.UUIDFromString(request.CommerceID)
	if err != nil {
		return badRequest(ctx, "Invalid commerce id")
	}

	cmd, err := commands.NewCreateDeliveryCommand(
		commerceID,
		request.CommerceName,
		request.Address,
		request.Description,
		request.Value,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	created, err := s.createDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	code, err := handoff.Encode(created, time.Now())
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateDeliveryResponse{
		Delivery:    deliveryToResponse(created),
		HandoffCode: code,
	})
}

// GetDeliveryHandoff handles GET /api/v1/deliveries/:id/handoff - returns the
// encoded payload for rendering as a scannable code.
func (s *Server) GetDeliveryHandoff(ctx echo.Context) error {
	deliveryID, err := delivery.ParseID(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetDeliveryQuery(deliveryID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	found, err := s.getDeliveryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	code, err := handoff.Encode(found, time.Now())
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, HandoffResponse{
		DeliveryID:  deliveryID.String(),
		HandoffCode: code,
	})
}

// CollectDelivery handles POST /api/v1/deliveries/collect - decodes a scanned
// handoff payload and claims the delivery for the scanning courier. On
// success the in-transit transition is scheduled as a deferred follow-up.
func (s *Server) CollectDelivery(ctx echo.Context) error {
	var request CollectDeliveryRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	payload, err := handoff.Decode(request.Payload)
	if err != nil {
		return errorResponse(ctx, err)
	}

	deliveryID, err := delivery.ParseID(payload.DeliveryID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	courierID, err := kernel.UUIDFromString(request.CourierID)
	if err != nil {
		return badRequest(ctx, "Invalid courier id")
	}

	cmd, err := commands.NewCollectDeliveryCommand(
		deliveryID,
		courierID,
		request.CourierName,
		request.CourierPhone,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.collectDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	s.transitScheduler.Schedule(deliveryID)

	return ctx.JSON(http.StatusOK, CollectDeliveryResponse{
		DeliveryID: deliveryID.String(),
		Status:     delivery.Collected.String(),
	})
}

// CompleteDelivery handles POST /api/v1/deliveries/:id/complete.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	deliveryID, err := delivery.ParseID(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCompleteDeliveryCommand(deliveryID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RegisterCourier handles POST /api/v1/couriers - registers a new courier.
func (s *Server) RegisterCourier(ctx echo.Context) error {
	var request RegisterCourierRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRegisterCourierCommand(
		request.Name,
		request.Phone,
		request.VehicleModel,
		request.LicensePlate,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	registered, err := s.registerCourierHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, courierToResponse(registered))
}

// SetCourierPresence handles PUT /api/v1/couriers/:id/presence.
func (s *Server) SetCourierPresence(ctx echo.Context) error {
	courierID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid courier id")
	}

	var request PresenceRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetCourierOnlineCommand(courierID, request.Online)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.setCourierOnlineHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetAvailableCouriers handles GET /api/v1/couriers/available?lat=&lng= -
// returns online couriers ranked by distance from the given point.
func (s *Server) GetAvailableCouriers(ctx echo.Context) error {
	lat, err := strconv.ParseFloat(ctx.QueryParam("lat"), 64)
	if err != nil {
		return badRequest(ctx, "Invalid lat")
	}

	lng, err := strconv.ParseFloat(ctx.QueryParam("lng"), 64)
	if err != nil {
		return badRequest(ctx, "Invalid lng")
	}

	origin, err := kernel.NewGeoPoint(lat, lng)
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetAvailableCouriersQuery(origin)
	if err != nil {
		return errorResponse(ctx, err)
	}

	couriers, err := s.getAvailableCouriersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]AvailableCourierResponse, len(couriers))
	for i, row := range couriers {
		response[i] = availableCourierToResponse(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCommerceDeliveries handles GET /api/v1/commerces/:id/deliveries.
func (s *Server) GetCommerceDeliveries(ctx echo.Context) error {
	commerceID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid commerce id")
	}

	query, err := queries.NewGetCommerceDeliveriesQuery(commerceID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	deliveries, err := s.getCommerceDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]DeliveryResponse, len(deliveries))
	for i, row := range deliveries {
		response[i] = commerceRowToResponse(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCourierDeliveries handles GET /api/v1/couriers/:id/deliveries.
func (s *Server) GetCourierDeliveries(ctx echo.Context) error {
	courierID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid courier id")
	}

	query, err := queries.NewGetCourierDeliveriesQuery(courierID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	result, err := s.getCourierDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CourierDeliveriesResponse{
		Active:         courierRowsToResponse(result.Active),
		Completed:      courierRowsToResponse(result.Completed),
		TotalCompleted: result.TotalCompleted,
		TotalEarnings:  result.TotalEarnings,
		TodayEarnings:  result.TodayEarnings,
	})
}

// GetCourierLocation handles GET /api/v1/couriers/:id/location - returns the
// courier's live position from the location feed. A courier with no unexpired
// feed entry reads as not found.
func (s *Server) GetCourierLocation(ctx echo.Context) error {
	courierID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid courier id")
	}

	position, found, err := s.locationFeed.Get(ctx.Request().Context(), courierID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if !found {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "No live location for courier",
		})
	}

	return ctx.JSON(http.StatusOK, LocationResponse{
		Lat: position.Lat(),
		Lng: position.Lng(),
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorResponse maps application errors onto HTTP status codes.
func errorResponse(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrMalformedPayload):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidState):
		status = http.StatusConflict
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
