package queries

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

// GetCommerceDeliveriesQueryHandler retrieves the delivery history of a
// commerce with direct SQL for optimal read performance.
type GetCommerceDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetCommerceDeliveriesQueryHandler creates a handler for commerce listings.
func NewGetCommerceDeliveriesQueryHandler(db *gorm.DB) GetCommerceDeliveriesQueryHandler {
	return GetCommerceDeliveriesQueryHandler{db: db}
}

// Handle executes the query and returns the commerce's deliveries newest first.
func (h GetCommerceDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetCommerceDeliveriesQuery,
) ([]GetCommerceDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			commerce_name,
			address,
			description,
			value,
			motoboy_earning,
			created_at,
			motoboy_name,
			motoboy_phone,
			collected_at,
			estimated_arrival,
			completed_at
		FROM deliveries
		WHERE commerce_id = ?
		ORDER BY created_at DESC
	`, query.CommerceID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	deliveries := make([]GetCommerceDeliveriesQueryResponse, 0)

	for rows.Next() {
		var (
			response    GetCommerceDeliveriesQueryResponse
			collectedAt sql.NullTime
			completedAt sql.NullTime
		)

		err = rows.Scan(
			&response.ID,
			&response.Status,
			&response.CommerceName,
			&response.Address,
			&response.Description,
			&response.Value,
			&response.MotoboyEarning,
			&response.CreatedAt,
			&response.MotoboyName,
			&response.MotoboyPhone,
			&collectedAt,
			&response.EstimatedArrival,
			&completedAt,
		)
		if err != nil {
			return nil, err
		}

		response.CollectedAt = nullableTime(collectedAt)
		response.CompletedAt = nullableTime(completedAt)
		deliveries = append(deliveries, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}

func nullableTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	value := t.Time
	return &value
}
