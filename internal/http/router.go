package http

import (
	"net/http"
	"strings"
)

type RouterConfig struct {
	Locations  *LocationHandler
	Persons    *PersonHandler
	Party      *PartyHandler
	Metrics    RequestMetrics
	Middleware []func(http.Handler) http.Handler
}

func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			methodNotAllowed(w, http.MethodGet)
			return
		}
		Health(w, r)
	})

	if cfg.Locations != nil {
		mux.HandleFunc("/locations", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				methodNotAllowed(w, http.MethodGet)
				return
			}
			cfg.Locations.List(w, r)
		})
		mux.HandleFunc("/locations/{id}/room-search", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				methodNotAllowed(w, http.MethodPost)
				return
			}
			cfg.Locations.FindRoom(w, r)
		})
		mux.HandleFunc("/locations/{id}/bookings", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				methodNotAllowed(w, http.MethodPost)
				return
			}
			cfg.Locations.BookRoom(w, r)
		})
		mux.HandleFunc("/bookings", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				methodNotAllowed(w, http.MethodGet)
				return
			}
			cfg.Locations.ListBookings(w, r)
		})
		mux.HandleFunc("/bookings/stats", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				methodNotAllowed(w, http.MethodGet)
				return
			}
			cfg.Locations.Stats(w, r)
		})
	}

	if cfg.Persons != nil {
		mux.HandleFunc("/persons", func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				cfg.Persons.List(w, r)
			case http.MethodPost:
				cfg.Persons.Register(w, r)
			default:
				methodNotAllowed(w, http.MethodGet, http.MethodPost)
			}
		})
		mux.HandleFunc("/persons/{email}", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				methodNotAllowed(w, http.MethodGet)
				return
			}
			cfg.Persons.Get(w, r)
		})
	}

	if cfg.Party != nil {
		party := map[string]http.HandlerFunc{
			"/party/availability":     cfg.Party.CheckAvailability,
			"/party/bookings":         cfg.Party.Book,
			"/party/day-availability": cfg.Party.DayAvailability,
			"/party/common-slots":     cfg.Party.CommonSlots,
		}
		for pattern, handle := range party {
			mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost {
					methodNotAllowed(w, http.MethodPost)
					return
				}
				handle(w, r)
			})
		}
	}

	var handler http.Handler = mux
	if cfg.Metrics != nil {
		handler = recordRequests(cfg.Metrics, func(r *http.Request) string {
			if _, pattern := mux.Handler(r); pattern != "" {
				return pattern
			}
			return "unmatched"
		})(handler)
	}
	if len(cfg.Middleware) > 0 {
		for i := len(cfg.Middleware) - 1; i >= 0; i-- {
			if cfg.Middleware[i] != nil {
				handler = cfg.Middleware[i](handler)
			}
		}
	}

	return handler
}

func methodNotAllowed(w http.ResponseWriter, allowed ...string) {
	if len(allowed) > 0 {
		w.Header().Set("Allow", strings.Join(allowed, ", "))
	}
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}
