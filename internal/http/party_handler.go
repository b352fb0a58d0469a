package http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/example/meeting-planner/internal/application"
	"github.com/example/meeting-planner/internal/scheduler"
)

type partyService interface {
	CheckAvailability(ctx context.Context, emails []string, day scheduler.Date, start, end scheduler.TimeOfDay) ([]application.PersonAvailability, error)
	BookForAll(ctx context.Context, emails []string, day scheduler.Date, start, end scheduler.TimeOfDay, title string) ([]string, error)
	AvailabilityForDay(ctx context.Context, emails []string, day scheduler.Date) ([]application.PersonSlots, error)
	FindCommonSlots(ctx context.Context, emails []string, day scheduler.Date, minDuration time.Duration) ([]scheduler.Slot, error)
}

// PartyHandler serves the operations over a group of people.
type PartyHandler struct {
	handlerBase
	service partyService
}

func NewPartyHandler(service partyService, logger *slog.Logger) *PartyHandler {
	return &PartyHandler{handlerBase: newHandlerBase("PartyHandler", logger), service: service}
}

func (h *PartyHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req partySlotRequest
	if !h.decodeBody(w, r, "CheckAvailability", &req) {
		return
	}
	var p fieldParser
	day, start, end := p.date("date", req.Date), p.clock("start", req.Start), p.clock("end", req.End)
	if err := p.err(); err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	result, err := h.service.CheckAvailability(r.Context(), trimAll(req.Emails), day, start, end)
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}
	h.responder.writeJSON(r.Context(), w, http.StatusOK, availabilityResponse{
		AllAvailable: allAvailable(result),
		Persons:      result,
	})
}

func (h *PartyHandler) Book(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req partySlotRequest
	if !h.decodeBody(w, r, "Book", &req) {
		return
	}
	var p fieldParser
	day, start, end := p.date("date", req.Date), p.clock("start", req.Start), p.clock("end", req.End)
	if err := p.err(); err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger := h.log(r.Context(), "Book", "participants", len(req.Emails))
	confirmations, err := h.service.BookForAll(r.Context(), trimAll(req.Emails), day, start, end, strings.TrimSpace(req.Title))
	if err != nil {
		logger.ErrorContext(r.Context(), "party booking failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}
	h.responder.writeJSON(r.Context(), w, http.StatusCreated, bookingConfirmationsResponse{Confirmations: confirmations})
}

func (h *PartyHandler) DayAvailability(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req partyDayRequest
	if !h.decodeBody(w, r, "DayAvailability", &req) {
		return
	}
	var p fieldParser
	day := p.date("date", req.Date)
	if err := p.err(); err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	result, err := h.service.AvailabilityForDay(r.Context(), trimAll(req.Emails), day)
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}
	h.responder.writeJSON(r.Context(), w, http.StatusOK, dayAvailabilityResponse{Date: day, Persons: result})
}

func (h *PartyHandler) CommonSlots(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req partyDayRequest
	if !h.decodeBody(w, r, "CommonSlots", &req) {
		return
	}
	var p fieldParser
	day := p.date("date", req.Date)
	if req.MinDurationMinutes < 0 {
		p.fail("min_duration_minutes", "min_duration_minutes must not be negative")
	}
	if err := p.err(); err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	minDuration := time.Duration(req.MinDurationMinutes) * time.Minute
	slots, err := h.service.FindCommonSlots(r.Context(), trimAll(req.Emails), day, minDuration)
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}
	if slots == nil {
		slots = []scheduler.Slot{}
	}
	h.responder.writeJSON(r.Context(), w, http.StatusOK, commonSlotsResponse{Date: day, Slots: slots})
}

func allAvailable(result []application.PersonAvailability) bool {
	for _, entry := range result {
		if !entry.Available {
			return false
		}
	}
	return true
}

type partySlotRequest struct {
	Emails []string `json:"emails"`
	Date   string   `json:"date"`
	Start  string   `json:"start"`
	End    string   `json:"end"`
	Title  string   `json:"title"`
}

type partyDayRequest struct {
	Emails             []string `json:"emails"`
	Date               string   `json:"date"`
	MinDurationMinutes int      `json:"min_duration_minutes"`
}

type availabilityResponse struct {
	AllAvailable bool                             `json:"all_available"`
	Persons      []application.PersonAvailability `json:"persons"`
}

type bookingConfirmationsResponse struct {
	Confirmations []string `json:"confirmations"`
}

type dayAvailabilityResponse struct {
	Date    scheduler.Date            `json:"date"`
	Persons []application.PersonSlots `json:"persons"`
}

type commonSlotsResponse struct {
	Date  scheduler.Date   `json:"date"`
	Slots []scheduler.Slot `json:"slots"`
}
