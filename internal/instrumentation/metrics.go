package instrumentation

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	attrMethod = "method"
	attrPath   = "path"
	attrStatus = "status"
	attrResult = "result"
	attrCache  = "cache"
)

// Label values.
const (
	ResultFound    = "found"
	ResultNotFound = "not_found"
	CacheHit       = "hit"
	CacheMiss      = "miss"
)

// Metrics records scheduler metrics. The zero value records nothing.
type Metrics struct {
	httpRequestsTotal   metric.Int64Counter
	httpRequestDuration metric.Float64Histogram

	roomSearchesTotal      metric.Int64Counter
	roomBookingsTotal      metric.Int64Counter
	partyBookingsTotal     metric.Int64Counter
	partyParticipants      metric.Int64Histogram
	commonSlotQueriesTotal metric.Int64Counter
}

// NewMetrics creates every instrument on meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}
	var err error

	m.httpRequestsTotal, err = meter.Int64Counter(
		"http_requests_total",
		metric.WithDescription("Total number of HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create http_requests_total counter: %w", err)
	}

	m.httpRequestDuration, err = meter.Float64Histogram(
		"http_request_duration_seconds",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create http_request_duration_seconds histogram: %w", err)
	}

	m.roomSearchesTotal, err = meter.Int64Counter(
		"room_searches_total",
		metric.WithDescription("Total number of room searches by result"),
		metric.WithUnit("{search}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create room_searches_total counter: %w", err)
	}

	m.roomBookingsTotal, err = meter.Int64Counter(
		"room_bookings_total",
		metric.WithDescription("Total number of room booking requests by status"),
		metric.WithUnit("{booking}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create room_bookings_total counter: %w", err)
	}

	m.partyBookingsTotal, err = meter.Int64Counter(
		"party_bookings_total",
		metric.WithDescription("Total number of meetings booked for a party"),
		metric.WithUnit("{booking}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create party_bookings_total counter: %w", err)
	}

	m.partyParticipants, err = meter.Int64Histogram(
		"party_booking_participants",
		metric.WithDescription("Number of people booked per party meeting"),
		metric.WithUnit("{person}"),
		metric.WithExplicitBucketBoundaries(1, 2, 3, 5, 8, 13, 21),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create party_booking_participants histogram: %w", err)
	}

	m.commonSlotQueriesTotal, err = meter.Int64Counter(
		"common_slot_queries_total",
		metric.WithDescription("Total number of common slot queries by cache outcome"),
		metric.WithUnit("{query}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create common_slot_queries_total counter: %w", err)
	}

	return m, nil
}

// RecordHTTPRequest records an HTTP request with method, route pattern, status
// code, and duration.
func (m *Metrics) RecordHTTPRequest(ctx context.Context, method, path string, statusCode int, duration time.Duration) {
	if m == nil || m.httpRequestsTotal == nil || m.httpRequestDuration == nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String(attrMethod, method),
		attribute.String(attrPath, path),
		attribute.String(attrStatus, strconv.Itoa(statusCode)),
	)
	m.httpRequestsTotal.Add(ctx, 1, attrs)
	m.httpRequestDuration.Record(ctx, duration.Seconds(), attrs)
}

// RecordRoomSearch counts a room search.
func (m *Metrics) RecordRoomSearch(ctx context.Context, found bool) {
	if m == nil || m.roomSearchesTotal == nil {
		return
	}
	result := ResultNotFound
	if found {
		result = ResultFound
	}
	m.roomSearchesTotal.Add(ctx, 1, metric.WithAttributes(attribute.String(attrResult, result)))
}

// RecordRoomBooking counts a room booking request by its final status.
func (m *Metrics) RecordRoomBooking(ctx context.Context, status string) {
	if m == nil || m.roomBookingsTotal == nil {
		return
	}
	m.roomBookingsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String(attrStatus, status)))
}

// RecordPartyBooking counts a party meeting and the number of people booked.
func (m *Metrics) RecordPartyBooking(ctx context.Context, participants int) {
	if m == nil || m.partyBookingsTotal == nil || m.partyParticipants == nil {
		return
	}
	m.partyBookingsTotal.Add(ctx, 1)
	m.partyParticipants.Record(ctx, int64(participants))
}

// RecordCommonSlotQuery counts a common slot query by cache outcome.
func (m *Metrics) RecordCommonSlotQuery(ctx context.Context, cacheHit bool) {
	if m == nil || m.commonSlotQueriesTotal == nil {
		return
	}
	cache := CacheMiss
	if cacheHit {
		cache = CacheHit
	}
	m.commonSlotQueriesTotal.Add(ctx, 1, metric.WithAttributes(attribute.String(attrCache, cache)))
}
