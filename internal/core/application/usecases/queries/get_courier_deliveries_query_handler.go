package queries

import (
	"context"
	"database/sql"
	"time"

	"deliveryconnect/internal/core/domain/model/delivery"

	"gorm.io/gorm"
)

// transitGracePeriod is how long a delivery may sit in collected status
// before the courier dashboard shows it as already in transit. Covers the
// window where the process restarted between a scan and the scheduled
// transit transition, so the dashboard never shows a permanently stuck row.
const transitGracePeriod = time.Minute

// GetCourierDeliveriesQueryHandler retrieves a courier's deliveries and
// earnings with direct SQL. The stored status is authoritative; only the
// displayed status is adjusted for rows past the transit grace period.
type GetCourierDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetCourierDeliveriesQueryHandler creates a handler for courier dashboards.
func NewGetCourierDeliveriesQueryHandler(db *gorm.DB) GetCourierDeliveriesQueryHandler {
	return GetCourierDeliveriesQueryHandler{db: db}
}

// Handle executes the query.
// Active rows are collected and in-progress deliveries, newest first.
// Completed rows feed the totals: lifetime earnings, today's earnings and the
// completed count.
func (h GetCourierDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetCourierDeliveriesQuery,
) (GetCourierDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCourierDeliveriesQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			commerce_name,
			address,
			description,
			motoboy_earning,
			created_at,
			collected_at,
			estimated_arrival,
			completed_at
		FROM deliveries
		WHERE motoboy_id = ?
		ORDER BY created_at DESC
	`, query.CourierID().Bytes()).Rows()
	if err != nil {
		return GetCourierDeliveriesQueryResponse{}, err
	}
	defer rows.Close()

	response := GetCourierDeliveriesQueryResponse{
		Active:    make([]CourierDeliveryRow, 0),
		Completed: make([]CourierDeliveryRow, 0),
	}
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	for rows.Next() {
		var (
			row         CourierDeliveryRow
			collectedAt sql.NullTime
			completedAt sql.NullTime
		)

		err = rows.Scan(
			&row.ID,
			&row.Status,
			&row.CommerceName,
			&row.Address,
			&row.Description,
			&row.MotoboyEarning,
			&row.CreatedAt,
			&collectedAt,
			&row.EstimatedArrival,
			&completedAt,
		)
		if err != nil {
			return GetCourierDeliveriesQueryResponse{}, err
		}

		row.CollectedAt = nullableTime(collectedAt)
		row.CompletedAt = nullableTime(completedAt)

		switch row.Status {
		case delivery.Completed.String():
			response.Completed = append(response.Completed, row)
			response.TotalCompleted++
			response.TotalEarnings += row.MotoboyEarning
			if row.CompletedAt != nil && !row.CompletedAt.Before(startOfDay) {
				response.TodayEarnings += row.MotoboyEarning
			}
		case delivery.Collected.String():
			if row.CollectedAt != nil && now.Sub(*row.CollectedAt) > transitGracePeriod {
				row.Status = delivery.InProgress.String()
			}
			response.Active = append(response.Active, row)
		default:
			response.Active = append(response.Active, row)
		}
	}

	if err = rows.Err(); err != nil {
		return GetCourierDeliveriesQueryResponse{}, err
	}

	return response, nil
}
