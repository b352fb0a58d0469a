package http

import "net/http"

// Health answers liveness probes.
func Health(w http.ResponseWriter, r *http.Request) {
	newResponder(nil).writeJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}
