package queries

import (
	"context"
	"database/sql"

	"deliveryconnect/internal/core/domain/model/courier"
	"deliveryconnect/internal/core/domain/model/kernel"
	"deliveryconnect/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailableCouriersQueryHandler retrieves online couriers ranked by
// distance from the commerce. Uses direct SQL for the read side and the
// domain ranker for distance ordering, so listing and dispatching agree on
// the same haversine arithmetic.
type GetAvailableCouriersQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableCouriersQueryHandler creates a handler for availability listings.
// Requires a GORM database connection for query execution.
func NewGetAvailableCouriersQueryHandler(db *gorm.DB) GetAvailableCouriersQueryHandler {
	return GetAvailableCouriersQueryHandler{db: db}
}

// Handle executes the availability listing.
// Offline couriers never appear. The result is sorted ascending by distance
// from the query origin, couriers without a known position last.
func (h GetAvailableCouriersQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableCouriersQuery,
) ([]GetAvailableCouriersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			phone,
			vehicle_model,
			license_plate,
			latitude,
			longitude,
			total_deliveries
		FROM couriers
		WHERE online = true
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	couriers := make([]*courier.Courier, 0)

	for rows.Next() {
		var (
			id              uuid.UUID
			name            string
			phone           string
			vehicleModel    string
			licensePlate    string
			latitude        sql.NullFloat64
			longitude       sql.NullFloat64
			totalDeliveries int
		)

		err = rows.Scan(
			&id,
			&name,
			&phone,
			&vehicleModel,
			&licensePlate,
			&latitude,
			&longitude,
			&totalDeliveries,
		)
		if err != nil {
			return nil, err
		}

		courierID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		var position *kernel.GeoPoint
		if latitude.Valid && longitude.Valid {
			point, geoErr := kernel.NewGeoPoint(latitude.Float64, longitude.Float64)
			if geoErr != nil {
				return nil, geoErr
			}
			position = &point
		}

		restored, restoreErr := courier.RestoreCourier(
			courierID, name, phone, vehicleModel, licensePlate, true, position, totalDeliveries)
		if restoreErr != nil {
			return nil, restoreErr
		}

		couriers = append(couriers, restored)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	ranked, err := services.NewCourierRanker().Rank(query.Origin(), couriers)
	if err != nil {
		return nil, err
	}

	responses := make([]GetAvailableCouriersQueryResponse, 0, len(ranked))
	for _, entry := range ranked {
		response := GetAvailableCouriersQueryResponse{
			ID:              entry.Courier.ID(),
			Name:            entry.Courier.Name(),
			Phone:           entry.Courier.Phone(),
			VehicleModel:    entry.Courier.VehicleModel(),
			LicensePlate:    entry.Courier.LicensePlate(),
			TotalDeliveries: entry.Courier.TotalDeliveries(),
			Position:        entry.Courier.Position(),
			DistanceKm:      entry.DistanceKm,
			HasDistance:     entry.HasDistance,
		}
		if entry.HasDistance {
			response.Distance = kernel.FormatDistance(entry.DistanceKm)
		}
		responses = append(responses, response)
	}

	return responses, nil
}
