package queries

import (
	"context"
	"database/sql"
	"time"

	"deliveryconnect/internal/core/domain/model/delivery"
	"deliveryconnect/internal/core/domain/model/kernel"
	"deliveryconnect/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliveryQueryHandler loads one delivery and rebuilds the domain
// aggregate, so callers can reuse domain behavior such as payload encoding
// against the stored state.
type GetDeliveryQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryQueryHandler creates a handler for single delivery lookups.
func NewGetDeliveryQueryHandler(db *gorm.DB) GetDeliveryQueryHandler {
	return GetDeliveryQueryHandler{db: db}
}

// Handle executes the query. Returns an object-not-found error when no
// delivery exists under the identifier.
func (h GetDeliveryQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryQuery,
) (*delivery.Delivery, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			commerce_id,
			commerce_name,
			address,
			description,
			value,
			motoboy_earning,
			status,
			created_at,
			motoboy_id,
			motoboy_name,
			motoboy_phone,
			collected_at,
			estimated_arrival,
			completed_at
		FROM deliveries
		WHERE id = ?
	`, query.DeliveryID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, err
		}
		return nil, errs.NewObjectNotFoundError("delivery", query.DeliveryID().String())
	}

	var (
		rawID            string
		rawCommerceID    uuid.UUID
		commerceName     string
		address          string
		description      string
		value            float64
		motoboyEarning   float64
		rawStatus        string
		createdAt        time.Time
		rawMotoboyID     uuid.NullUUID
		motoboyName      sql.NullString
		motoboyPhone     sql.NullString
		collectedAt      sql.NullTime
		estimatedArrival sql.NullString
		completedAt      sql.NullTime
	)

	err = rows.Scan(
		&rawID,
		&rawCommerceID,
		&commerceName,
		&address,
		&description,
		&value,
		&motoboyEarning,
		&rawStatus,
		&createdAt,
		&rawMotoboyID,
		&motoboyName,
		&motoboyPhone,
		&collectedAt,
		&estimatedArrival,
		&completedAt,
	)
	if err != nil {
		return nil, err
	}

	id, err := delivery.ParseID(rawID)
	if err != nil {
		return nil, err
	}

	commerceID, err := kernel.UUIDFromBytes(rawCommerceID[:])
	if err != nil {
		return nil, err
	}

	status, err := delivery.StatusFromString(rawStatus)
	if err != nil {
		return nil, err
	}

	var motoboyID *kernel.UUID
	if rawMotoboyID.Valid {
		parsed, err := kernel.UUIDFromBytes(rawMotoboyID.UUID[:])
		if err != nil {
			return nil, err
		}
		motoboyID = &parsed
	}

	return delivery.RestoreDelivery(
		id,
		commerceID,
		commerceName,
		address,
		description,
		value,
		motoboyEarning,
		status,
		createdAt,
		motoboyID,
		motoboyName.String,
		motoboyPhone.String,
		nullableTime(collectedAt),
		estimatedArrival.String,
		nullableTime(completedAt),
	)
}
