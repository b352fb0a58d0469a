package http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/example/meeting-planner/internal/application"
)

type locationService interface {
	AllLocations(ctx context.Context) []application.LocationSummary
	FindRoom(ctx context.Context, req application.RoomSearchRequest) (application.RoomAvailabilityResult, error)
	BookRoom(ctx context.Context, req application.BookRoomRequest) (application.BookingResult, error)
	ListBookings(ctx context.Context, filter application.BookingFilter) ([]application.BookingInfo, error)
	BookingStats(ctx context.Context) application.BookingStats
}

// LocationHandler serves the location, room and booking report endpoints.
type LocationHandler struct {
	handlerBase
	service locationService
}

func NewLocationHandler(service locationService, logger *slog.Logger) *LocationHandler {
	return &LocationHandler{handlerBase: newHandlerBase("LocationHandler", logger), service: service}
}

func (h *LocationHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	locations := h.service.AllLocations(r.Context())
	h.log(r.Context(), "List").With("result_count", len(locations)).DebugContext(r.Context(), "locations listed")
	h.responder.writeJSON(r.Context(), w, http.StatusOK, listLocationsResponse{Locations: locations})
}

func (h *LocationHandler) FindRoom(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	locationID := r.PathValue("id")
	var req roomSearchRequest
	if !h.decodeBody(w, r, "FindRoom", &req, "location_id", locationID) {
		return
	}

	search, err := req.toSearch(locationID)
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	result, err := h.service.FindRoom(r.Context(), search)
	if err != nil {
		h.log(r.Context(), "FindRoom", "location_id", locationID).WarnContext(r.Context(), "room search failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, result)
}

func (h *LocationHandler) BookRoom(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	locationID := r.PathValue("id")
	var req bookRoomRequest
	if !h.decodeBody(w, r, "BookRoom", &req, "location_id", locationID) {
		return
	}

	booking, err := req.toBooking(locationID)
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger := h.log(r.Context(), "BookRoom", "location_id", locationID, "room_id", booking.RoomID)
	result, err := h.service.BookRoom(r.Context(), booking)
	if err != nil {
		logger.ErrorContext(r.Context(), "room booking failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	status := http.StatusOK
	if result.Success {
		status = http.StatusCreated
	}
	h.responder.writeJSON(r.Context(), w, status, result)
}

func (h *LocationHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	filter, err := bookingFilterFromQuery(r)
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger := h.log(r.Context(), "ListBookings", "location_id", filter.LocationID)
	bookings, err := h.service.ListBookings(r.Context(), filter)
	if err != nil {
		logger.WarnContext(r.Context(), "booking list failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.With("result_count", len(bookings)).DebugContext(r.Context(), "bookings listed")
	h.responder.writeJSON(r.Context(), w, http.StatusOK, listBookingsResponse{Bookings: bookings})
}

func (h *LocationHandler) Stats(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	h.responder.writeJSON(r.Context(), w, http.StatusOK, h.service.BookingStats(r.Context()))
}

// bookingFilterFromQuery reads location, from, to, week and month. week and
// month expand to the period containing the given date and cannot be combined
// with each other or with from/to.
func bookingFilterFromQuery(r *http.Request) (application.BookingFilter, error) {
	query := r.URL.Query()
	var p fieldParser
	filter := application.BookingFilter{LocationID: strings.TrimSpace(query.Get("location"))}

	week, month := query.Get("week"), query.Get("month")
	ranged := query.Get("from") != "" || query.Get("to") != ""
	switch {
	case week != "" && (month != "" || ranged):
		p.fail("week", "week cannot be combined with month, from or to")
	case month != "" && ranged:
		p.fail("month", "month cannot be combined with from or to")
	case week != "":
		if day := p.date("week", week); !day.IsZero() {
			filter.From, filter.To = application.WeekOf(day)
		}
	case month != "":
		if day := p.date("month", month); !day.IsZero() {
			filter.From, filter.To = application.MonthOf(day)
		}
	default:
		filter.From = p.optionalDate("from", query.Get("from"))
		filter.To = p.optionalDate("to", query.Get("to"))
	}

	return filter, p.err()
}

type roomSearchRequest struct {
	Participants    int    `json:"participants"`
	Date            string `json:"date"`
	Start           string `json:"start"`
	DurationMinutes int    `json:"duration_minutes"`
}

func (r roomSearchRequest) toSearch(locationID string) (application.RoomSearchRequest, error) {
	var p fieldParser
	search := application.RoomSearchRequest{
		LocationID:   locationID,
		Participants: r.Participants,
		Day:          p.date("date", r.Date),
		Start:        p.clock("start", r.Start),
		Duration:     p.minutes("duration_minutes", r.DurationMinutes),
	}
	return search, p.err()
}

type bookRoomRequest struct {
	RoomID          string `json:"room_id"`
	Date            string `json:"date"`
	Start           string `json:"start"`
	DurationMinutes int    `json:"duration_minutes"`
	Reference       string `json:"reference"`
	Description     string `json:"description"`
}

func (r bookRoomRequest) toBooking(locationID string) (application.BookRoomRequest, error) {
	var p fieldParser
	roomID := strings.TrimSpace(r.RoomID)
	if roomID == "" {
		p.fail("room_id", "room_id is required")
	}
	booking := application.BookRoomRequest{
		LocationID:  locationID,
		RoomID:      roomID,
		Day:         p.date("date", r.Date),
		Start:       p.clock("start", r.Start),
		Duration:    p.minutes("duration_minutes", r.DurationMinutes),
		Reference:   strings.TrimSpace(r.Reference),
		Description: strings.TrimSpace(r.Description),
	}
	return booking, p.err()
}

type listLocationsResponse struct {
	Locations []application.LocationSummary `json:"locations"`
}

type listBookingsResponse struct {
	Bookings []application.BookingInfo `json:"bookings"`
}
