package http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/example/meeting-planner/internal/application"
)

type personService interface {
	Register(ctx context.Context, params application.RegisterPersonParams) (application.PersonSummary, error)
	FindByEmail(ctx context.Context, email string) (application.PersonSummary, error)
	ListPersons(ctx context.Context) []application.PersonSummary
}

// PersonHandler serves the person registry endpoints.
type PersonHandler struct {
	handlerBase
	service personService
}

func NewPersonHandler(service personService, logger *slog.Logger) *PersonHandler {
	return &PersonHandler{handlerBase: newHandlerBase("PersonHandler", logger), service: service}
}

func (h *PersonHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	h.responder.writeJSON(r.Context(), w, http.StatusOK, listPersonsResponse{Persons: h.service.ListPersons(r.Context())})
}

func (h *PersonHandler) Register(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req personRequest
	if !h.decodeBody(w, r, "Register", &req) {
		return
	}

	person, err := h.service.Register(r.Context(), application.RegisterPersonParams{Email: req.Email, Name: req.Name})
	if err != nil {
		h.log(r.Context(), "Register").WarnContext(r.Context(), "person registration failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusCreated, personResponse{Person: person})
}

func (h *PersonHandler) Get(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	email := strings.TrimSpace(r.PathValue("email"))
	if email == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errMissingEmail)
		return
	}

	person, err := h.service.FindByEmail(r.Context(), email)
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}
	h.responder.writeJSON(r.Context(), w, http.StatusOK, personResponse{Person: person})
}

type personRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type personResponse struct {
	Person application.PersonSummary `json:"person"`
}

type listPersonsResponse struct {
	Persons []application.PersonSummary `json:"persons"`
}
