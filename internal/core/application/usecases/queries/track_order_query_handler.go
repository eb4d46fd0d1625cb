package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"catertrack/internal/core/domain/model/kernel"
	"catertrack/internal/core/domain/model/order"
	"catertrack/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// TrackOrderQueryHandler resolves tracker lookups against the database.
// Matching is exact and case-sensitive on both credentials; the single failure
// mode is "not found", regardless of which credential mismatched.
//
// Example:
//
//	handler := NewTrackOrderQueryHandler(db)
//	query, _ := NewTrackOrderQuery(number, email)
//
//	record, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err // errs.ErrObjectNotFound when credentials match nothing
//	}
//	fmt.Printf("%s: %d%%\n", record.Status, record.Progress)
type TrackOrderQueryHandler struct {
	db *gorm.DB
}

// NewTrackOrderQueryHandler creates a handler for tracker lookups.
// Requires a GORM database connection for query execution.
func NewTrackOrderQueryHandler(db *gorm.DB) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{db: db}
}

// Handle executes the credential lookup.
// Returns the full order record including history when both the tracking number
// and the email match exactly, or an ObjectNotFoundError otherwise.
func (h TrackOrderQueryHandler) Handle(
	ctx context.Context,
	query TrackOrderQuery,
) (TrackOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackOrderQueryResponse{}, err
	}

	var (
		statusValue       int
		placedAt          time.Time
		estimatedDelivery time.Time
		items             pq.StringArray
		latitude          sql.NullFloat64
		longitude         sql.NullFloat64
		address           sql.NullString
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			placed_at,
			items,
			status,
			location_latitude,
			location_longitude,
			location_address,
			estimated_delivery
		FROM orders
		WHERE tracking_number = ? AND customer_email = ?
	`, query.TrackingNumber().String(), query.CustomerEmail().String()).Row()

	err := row.Scan(
		&placedAt,
		&items,
		&statusValue,
		&latitude,
		&longitude,
		&address,
		&estimatedDelivery,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TrackOrderQueryResponse{}, errs.NewObjectNotFoundError(
				"order", query.TrackingNumber().String())
		}
		return TrackOrderQueryResponse{}, err
	}

	status := order.Status(statusValue)
	response := TrackOrderQueryResponse{
		TrackingNumber:    query.TrackingNumber(),
		CustomerEmail:     query.CustomerEmail(),
		PlacedAt:          placedAt,
		Items:             items,
		Status:            status,
		Progress:          status.Progress(),
		EstimatedDelivery: estimatedDelivery,
	}

	if latitude.Valid && longitude.Valid && address.Valid {
		location, locErr := kernel.NewGeoPoint(latitude.Float64, longitude.Float64, address.String)
		if locErr != nil {
			return TrackOrderQueryResponse{}, locErr
		}
		response.Location = &location
	}

	history, err := h.loadHistory(ctx, query.TrackingNumber())
	if err != nil {
		return TrackOrderQueryResponse{}, err
	}
	response.History = history

	return response, nil
}

// loadHistory reads the append-only tracking history, oldest entry first.
func (h TrackOrderQueryHandler) loadHistory(
	ctx context.Context,
	number kernel.TrackingNumber,
) ([]TrackOrderHistoryEvent, error) {
	events := make([]TrackOrderHistoryEvent, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			occurred_at,
			location_label
		FROM order_tracking_events
		WHERE order_tracking_number = ?
		ORDER BY status
	`, number.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			statusValue int
			occurredAt  time.Time
			label       string
		)

		if err = rows.Scan(&statusValue, &occurredAt, &label); err != nil {
			return nil, err
		}

		events = append(events, TrackOrderHistoryEvent{
			Status:        order.Status(statusValue),
			OccurredAt:    occurredAt,
			LocationLabel: label,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
