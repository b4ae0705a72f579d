// Package courierrepo provides data transfer objects and mapping functions for courier persistence.
// This package implements the repository pattern for the courier domain aggregate, handling
// the conversion between domain entities and database representations.
package courierrepo

import (
	"deliveryconnect/internal/core/domain/model/courier"
	"deliveryconnect/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO represents the database structure for persisting courier aggregates.
// Latitude and longitude are nullable because a freshly registered courier has
// no known position until the first refresh after going online.
type CourierDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string    `gorm:"type:varchar(255);not null"`
	Phone           string    `gorm:"type:varchar(32);not null"`
	VehicleModel    string    `gorm:"type:varchar(255)"`
	LicensePlate    string    `gorm:"type:varchar(16)"`
	Online          bool      `gorm:"not null;index"`
	Latitude        *float64  `gorm:"type:double precision"`
	Longitude       *float64  `gorm:"type:double precision"`
	TotalDeliveries int       `gorm:"type:int;not null;default:0"`
}

// TableName specifies the database table name for courier entities.
// Overrides GORM's default naming convention to use "couriers" instead of "courier_dtos".
func (CourierDTO) TableName() string {
	return "couriers"
}

// fromDomain converts a courier domain aggregate to its database representation.
func fromDomain(courier *courier.Courier) CourierDTO {
	dto := CourierDTO{
		ID:              courier.ID().Bytes(),
		Name:            courier.Name(),
		Phone:           courier.Phone(),
		VehicleModel:    courier.VehicleModel(),
		LicensePlate:    courier.LicensePlate(),
		Online:          courier.IsOnline(),
		TotalDeliveries: courier.TotalDeliveries(),
	}

	if position := courier.Position(); position != nil {
		lat := position.Lat()
		lng := position.Lng()
		dto.Latitude = &lat
		dto.Longitude = &lng
	}

	return dto
}

// toDomain converts a database DTO to a courier domain aggregate.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var position *kernel.GeoPoint
	if dto.Latitude != nil && dto.Longitude != nil {
		point, geoErr := kernel.NewGeoPoint(*dto.Latitude, *dto.Longitude)
		if geoErr != nil {
			return nil, geoErr
		}
		position = &point
	}

	return courier.RestoreCourier(
		id,
		dto.Name,
		dto.Phone,
		dto.VehicleModel,
		dto.LicensePlate,
		dto.Online,
		position,
		dto.TotalDeliveries,
	)
}
