// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"catertrack/internal/core/domain/model/kernel"
	"catertrack/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The tracking number is the natural primary key. The geo position columns are
// nullable: they carry a value only while the order is in transit.
type OrderDTO struct {
	TrackingNumber    string `gorm:"type:varchar(9);primaryKey"`
	CustomerEmail     string `gorm:"type:varchar(320);index"`
	PlacedAt          time.Time
	Items             pq.StringArray `gorm:"type:text[]"`
	Status            int            `gorm:"index"`
	Location          LocationDTO    `gorm:"embedded;embeddedPrefix:location_"`
	EstimatedDelivery time.Time
	History           []TrackingEventDTO `gorm:"foreignKey:OrderTrackingNumber;references:TrackingNumber"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// LocationDTO represents the embedded transit position within the order table.
// All columns are NULL unless the order is currently in transit.
type LocationDTO struct {
	Latitude  *float64
	Longitude *float64
	Address   *string
}

// TrackingEventDTO represents one append-only tracking history entry.
// The lifecycle is linear, so (order, status) is unique per order and the
// history reads back in status order.
type TrackingEventDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderTrackingNumber string    `gorm:"type:varchar(9);uniqueIndex:idx_order_event_status"`
	Status              int       `gorm:"uniqueIndex:idx_order_event_status"`
	OccurredAt          time.Time
	LocationLabel       string
}

// TableName specifies the database table name for tracking history entries.
func (TrackingEventDTO) TableName() string {
	return "order_tracking_events"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including the transit position and history entries.
func fromDomain(aggregate *order.Order) OrderDTO {
	var location LocationDTO
	if point := aggregate.Location(); point != nil {
		latitude := point.Latitude()
		longitude := point.Longitude()
		address := point.Address()
		location = LocationDTO{
			Latitude:  &latitude,
			Longitude: &longitude,
			Address:   &address,
		}
	}

	number := aggregate.TrackingNumber().String()
	history := aggregate.History()
	events := make([]TrackingEventDTO, 0, len(history))
	for _, event := range history {
		events = append(events, TrackingEventDTO{
			ID:                  uuid.New(),
			OrderTrackingNumber: number,
			Status:              int(event.Status()),
			OccurredAt:          event.OccurredAt(),
			LocationLabel:       event.LocationLabel(),
		})
	}

	return OrderDTO{
		TrackingNumber:    number,
		CustomerEmail:     aggregate.CustomerEmail().String(),
		PlacedAt:          aggregate.PlacedAt(),
		Items:             pq.StringArray(aggregate.Items()),
		Status:            int(aggregate.Status()),
		Location:          location,
		EstimatedDelivery: aggregate.EstimatedDelivery(),
		History:           events,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including history using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	number, err := kernel.TrackingNumberFromString(dto.TrackingNumber)
	if err != nil {
		return nil, err
	}

	email, err := kernel.NewEmail(dto.CustomerEmail)
	if err != nil {
		return nil, err
	}

	var location *kernel.GeoPoint
	if dto.Location.Latitude != nil && dto.Location.Longitude != nil && dto.Location.Address != nil {
		point, pointErr := kernel.NewGeoPoint(
			*dto.Location.Latitude,
			*dto.Location.Longitude,
			*dto.Location.Address,
		)
		if pointErr != nil {
			return nil, pointErr
		}
		location = &point
	}

	history := make([]order.TrackingEvent, 0, len(dto.History))
	for _, eventDTO := range dto.History {
		event, eventErr := order.NewTrackingEvent(
			order.Status(eventDTO.Status),
			eventDTO.OccurredAt,
			eventDTO.LocationLabel,
		)
		if eventErr != nil {
			return nil, eventErr
		}
		history = append(history, event)
	}

	return order.RestoreOrder(
		number,
		email,
		dto.PlacedAt,
		dto.Items,
		order.Status(dto.Status),
		location,
		dto.EstimatedDelivery,
		history,
	)
}
