// Package http provides the JSON adapter for the scheduling engine.
//
// The router exposes the following endpoints:
//   - GET /locations: every location with its rooms.
//   - POST /locations/{id}/room-search: best-fit room for a group. Body:
//     {"participants","date","start","duration_minutes"}.
//   - POST /locations/{id}/bookings: books a specific room. Body:
//     {"room_id","date","start","duration_minutes","reference","description"}.
//     Rejections (unknown room, no capacity) are 200 responses with
//     "success": false.
//   - GET /bookings?location=&from=&to=&week=&month=: room booking report.
//     week and month take any date inside the wanted period.
//   - GET /bookings/stats: booking counts per location.
//   - GET /persons, POST /persons, GET /persons/{email}: person registry.
//   - POST /party/availability, POST /party/bookings,
//     POST /party/day-availability, POST /party/common-slots: operations over
//     a group of people identified by "emails".
//   - GET /healthz: liveness.
//
// Dates are YYYY-MM-DD and times HH:MM. Malformed bodies answer 400, field
// errors 422, unknown locations, rooms or people 404.
//
// Request/response DTOs live alongside their respective handlers so tests and
// documentation share the same ground truth.
package http
