// Package instrumentation wires OpenTelemetry metrics for the scheduler.
//
// A Provider owns the SDK meter provider and, for the Prometheus exporter, a
// dedicated registry served by Handler. Metrics records the business outcomes
// reported by the application services (room searches, room bookings, party
// bookings and common-slot cache use) as well as HTTP request counts and
// latencies.
//
// A disabled provider hands out a Metrics value whose methods do nothing, so
// callers never need to branch on configuration.
package instrumentation
