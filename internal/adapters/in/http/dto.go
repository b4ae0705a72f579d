package http

import (
	"time"

	"deliveryconnect/internal/core/application/usecases/queries"
	"deliveryconnect/internal/core/domain/model/courier"
	"deliveryconnect/internal/core/domain/model/delivery"
)

// ErrorResponse is the body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateDeliveryRequest is the body of POST /api/v1/deliveries.
type CreateDeliveryRequest struct {
	CommerceID   string  `json:"commerceId"`
	CommerceName string  `json:"commerceName"`
	Address      string  `json:"address"`
	Description  string  `json:"description"`
	Value        float64 `json:"value"`
}

// DeliveryResponse is the full representation of a delivery.
type DeliveryResponse struct {
	ID               string     `json:"id"`
	Status           string     `json:"status"`
	CommerceID       string     `json:"commerceId"`
	CommerceName     string     `json:"commerceName"`
	Address          string     `json:"address"`
	Description      string     `json:"description,omitempty"`
	Value            float64    `json:"value"`
	MotoboyEarning   float64    `json:"motoboyEarning"`
	CreatedAt        time.Time  `json:"createdAt"`
	MotoboyID        string     `json:"motoboyId,omitempty"`
	MotoboyName      string     `json:"motoboyName,omitempty"`
	MotoboyPhone     string     `json:"motoboyPhone,omitempty"`
	CollectedAt      *time.Time `json:"collectedAt,omitempty"`
	EstimatedArrival string     `json:"estimatedArrival,omitempty"`
	CompletedAt      *time.Time `json:"completedAt,omitempty"`
}

// CreateDeliveryResponse is the body returned after a successful creation.
// It carries the encoded handoff payload so the commerce can render the
// scannable code immediately.
type CreateDeliveryResponse struct {
	Delivery    DeliveryResponse `json:"delivery"`
	HandoffCode string           `json:"handoffCode"`
}

// HandoffResponse is the body of GET /api/v1/deliveries/:id/handoff.
type HandoffResponse struct {
	DeliveryID  string `json:"deliveryId"`
	HandoffCode string `json:"handoffCode"`
}

// CollectDeliveryRequest is the body of POST /api/v1/deliveries/collect.
// Payload is the raw scanned handoff code.
type CollectDeliveryRequest struct {
	Payload      string `json:"payload"`
	CourierID    string `json:"courierId"`
	CourierName  string `json:"courierName"`
	CourierPhone string `json:"courierPhone"`
}

// CollectDeliveryResponse confirms a successful handoff scan.
type CollectDeliveryResponse struct {
	DeliveryID string `json:"deliveryId"`
	Status     string `json:"status"`
}

// RegisterCourierRequest is the body of POST /api/v1/couriers.
type RegisterCourierRequest struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	VehicleModel string `json:"vehicleModel"`
	LicensePlate string `json:"licensePlate"`
}

// CourierResponse is the representation of a registered courier.
type CourierResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	VehicleModel    string `json:"vehicleModel,omitempty"`
	LicensePlate    string `json:"licensePlate,omitempty"`
	Online          bool   `json:"online"`
	TotalDeliveries int    `json:"totalDeliveries"`
}

// PresenceRequest is the body of PUT /api/v1/couriers/:id/presence.
type PresenceRequest struct {
	Online bool `json:"online"`
}

// AvailableCourierResponse is one entry of the ranked courier listing.
type AvailableCourierResponse struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Phone           string            `json:"phone"`
	VehicleModel    string            `json:"vehicleModel,omitempty"`
	LicensePlate    string            `json:"licensePlate,omitempty"`
	TotalDeliveries int               `json:"totalDeliveries"`
	Position        *LocationResponse `json:"position,omitempty"`
	DistanceKm      float64           `json:"distanceKm"`
	Distance        string            `json:"distance,omitempty"`
	HasDistance     bool              `json:"hasDistance"`
}

// LocationResponse carries a pair of coordinates.
type LocationResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// CourierDeliveriesResponse is the body of GET /api/v1/couriers/:id/deliveries.
type CourierDeliveriesResponse struct {
	Active         []DeliveryResponse `json:"active"`
	Completed      []DeliveryResponse `json:"completed"`
	TotalCompleted int                `json:"totalCompleted"`
	TotalEarnings  float64            `json:"totalEarnings"`
	TodayEarnings  float64            `json:"todayEarnings"`
}

func deliveryToResponse(d *delivery.Delivery) DeliveryResponse {
	response := DeliveryResponse{
		ID:               d.ID().String(),
		Status:           d.Status().String(),
		CommerceID:       d.CommerceID().String(),
		CommerceName:     d.CommerceName(),
		Address:          d.Address(),
		Description:      d.Description(),
		Value:            d.Value(),
		MotoboyEarning:   d.MotoboyEarning(),
		CreatedAt:        d.CreatedAt(),
		MotoboyName:      d.MotoboyName(),
		MotoboyPhone:     d.MotoboyPhone(),
		CollectedAt:      d.CollectedAt(),
		EstimatedArrival: d.EstimatedArrival(),
		CompletedAt:      d.CompletedAt(),
	}

	if motoboy := d.Motoboy(); motoboy != nil {
		response.MotoboyID = motoboy.String()
	}

	return response
}

func courierToResponse(c *courier.Courier) CourierResponse {
	return CourierResponse{
		ID:              c.ID().String(),
		Name:            c.Name(),
		Phone:           c.Phone(),
		VehicleModel:    c.VehicleModel(),
		LicensePlate:    c.LicensePlate(),
		Online:          c.IsOnline(),
		TotalDeliveries: c.TotalDeliveries(),
	}
}

func availableCourierToResponse(row queries.GetAvailableCouriersQueryResponse) AvailableCourierResponse {
	response := AvailableCourierResponse{
		ID:              row.ID.String(),
		Name:            row.Name,
		Phone:           row.Phone,
		VehicleModel:    row.VehicleModel,
		LicensePlate:    row.LicensePlate,
		TotalDeliveries: row.TotalDeliveries,
		DistanceKm:      row.DistanceKm,
		Distance:        row.Distance,
		HasDistance:     row.HasDistance,
	}

	if row.Position != nil {
		response.Position = &LocationResponse{
			Lat: row.Position.Lat(),
			Lng: row.Position.Lng(),
		}
	}

	return response
}

func commerceRowToResponse(row queries.GetCommerceDeliveriesQueryResponse) DeliveryResponse {
	return DeliveryResponse{
		ID:               row.ID,
		Status:           row.Status,
		CommerceName:     row.CommerceName,
		Address:          row.Address,
		Description:      row.Description,
		Value:            row.Value,
		MotoboyEarning:   row.MotoboyEarning,
		CreatedAt:        row.CreatedAt,
		MotoboyName:      row.MotoboyName,
		MotoboyPhone:     row.MotoboyPhone,
		CollectedAt:      row.CollectedAt,
		EstimatedArrival: row.EstimatedArrival,
		CompletedAt:      row.CompletedAt,
	}
}

func courierRowToResponse(row queries.CourierDeliveryRow) DeliveryResponse {
	return DeliveryResponse{
		ID:               row.ID,
		Status:           row.Status,
		CommerceName:     row.CommerceName,
		Address:          row.Address,
		Description:      row.Description,
		MotoboyEarning:   row.MotoboyEarning,
		CreatedAt:        row.CreatedAt,
		CollectedAt:      row.CollectedAt,
		EstimatedArrival: row.EstimatedArrival,
		CompletedAt:      row.CompletedAt,
	}
}

func courierRowsToResponse(rows []queries.CourierDeliveryRow) []DeliveryResponse {
	responses := make([]DeliveryResponse, len(rows))
	for i, row := range rows {
		responses[i] = courierRowToResponse(row)
	}
	return responses
}
