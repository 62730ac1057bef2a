package handler

import (
	"encoding/json"
	"net/http"

	"github.com/felixge/httpsnoop"
)

// LogRequests is a mux.MiddlewareFunc writing one access log line per request.
func LogRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m := httpsnoop.CaptureMetrics(next, w, r)
		log.Infof("%s -- %s -- %s -- %d -- %s", r.RemoteAddr, r.Method, r.URL.Path, m.Code, m.Duration)
	})
}

func logAndReturnError(w http.ResponseWriter, r *http.Request, httpResponseStr string, code int, consoleStr ...string) {
	// consoleStr is optional.
	if len(consoleStr) > 0 {
		log.Warnf("%s -- %s", r.RemoteAddr, consoleStr[0])
	} else {
		log.Warnf("%s -- %s", r.RemoteAddr, httpResponseStr)
	}
	http.Error(w, httpResponseStr, code)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorf("writing response: %v", err)
	}
}
