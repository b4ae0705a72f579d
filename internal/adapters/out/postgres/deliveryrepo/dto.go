// Package deliveryrepo provides data transfer objects and mapping functions for delivery persistence.
// This package implements the repository pattern for the delivery domain aggregate, handling
// the conversion between domain entities and database representations.
package deliveryrepo

import (
	"time"

	"deliveryconnect/internal/core/domain/model/delivery"
	"deliveryconnect/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting delivery aggregates.
// The status is stored under its wire name so read-side SQL and API payloads
// agree without a mapping table. Courier columns stay NULL or empty until a
// courier collects the delivery.
type DeliveryDTO struct {
	ID               string     `gorm:"type:varchar(32);primaryKey"`
	CommerceID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	CommerceName     string     `gorm:"type:varchar(255);not null"`
	Address          string     `gorm:"type:varchar(512);not null"`
	Description      string     `gorm:"type:text"`
	Value            float64    `gorm:"type:double precision;not null"`
	MotoboyEarning   float64    `gorm:"type:double precision;not null"`
	Status           string     `gorm:"type:varchar(16);not null;index"`
	CreatedAt        time.Time  `gorm:"not null"`
	MotoboyID        *uuid.UUID `gorm:"type:uuid;index"`
	MotoboyName      string     `gorm:"type:varchar(255)"`
	MotoboyPhone     string     `gorm:"type:varchar(32)"`
	CollectedAt      *time.Time
	EstimatedArrival string `gorm:"type:varchar(16)"`
	CompletedAt      *time.Time
}

// TableName specifies the database table name for delivery entities.
// Overrides GORM's default naming convention to use "deliveries" instead of "delivery_dtos".
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery domain aggregate to its database representation.
func fromDomain(d *delivery.Delivery) DeliveryDTO {
	dto := DeliveryDTO{
		ID:               d.ID().String(),
		CommerceID:       d.CommerceID().Bytes(),
		CommerceName:     d.CommerceName(),
		Address:          d.Address(),
		Description:      d.Description(),
		Value:            d.Value(),
		MotoboyEarning:   d.MotoboyEarning(),
		Status:           d.Status().String(),
		CreatedAt:        d.CreatedAt(),
		MotoboyName:      d.MotoboyName(),
		MotoboyPhone:     d.MotoboyPhone(),
		CollectedAt:      d.CollectedAt(),
		EstimatedArrival: d.EstimatedArrival(),
		CompletedAt:      d.CompletedAt(),
	}

	if motoboy := d.Motoboy(); motoboy != nil {
		raw := motoboy.Bytes()
		dto.MotoboyID = &raw
	}

	return dto
}

// toDomain converts a database DTO to a delivery domain aggregate.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := delivery.ParseID(dto.ID)
	if err != nil {
		return nil, err
	}

	commerceID, err := kernel.UUIDFromBytes(dto.CommerceID[:])
	if err != nil {
		return nil, err
	}

	status, err := delivery.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var motoboyID *kernel.UUID
	if dto.MotoboyID != nil {
		mID, idErr := kernel.UUIDFromBytes((*dto.MotoboyID)[:])
		if idErr != nil {
			return nil, idErr
		}
		motoboyID = &mID
	}

	return delivery.RestoreDelivery(
		id,
		commerceID,
		dto.CommerceName,
		dto.Address,
		dto.Description,
		dto.Value,
		dto.MotoboyEarning,
		status,
		dto.CreatedAt,
		motoboyID,
		dto.MotoboyName,
		dto.MotoboyPhone,
		dto.CollectedAt,
		dto.EstimatedArrival,
		dto.CompletedAt,
	)
}
