package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"urlintake/config"
	"urlintake/handler"
	"urlintake/metrics"
)

// allMethods is what a "*" entry in cors.allowed_methods expands to.
var allMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodConnect,
	http.MethodOptions,
	http.MethodTrace,
}

// New builds the service's HTTP handler: the route table wrapped in CORS.
func New(cfg *config.Config, rec *metrics.Recorder) http.Handler {
	router := mux.NewRouter()

	router.Handle("/process_url", handler.NewProcessURLHandler(cfg.MaxBodyBytes, rec)).Methods(http.MethodPost)
	router.HandleFunc("/health", handler.Health).Methods(http.MethodGet, http.MethodHead)
	if cfg.Metrics.Enabled {
		router.Handle(cfg.Metrics.Path, rec.Handler()).Methods(http.MethodGet)
	}

	router.Use(handler.LogRequests, rec.Middleware)

	return newCORS(cfg.CORS).Handler(router)
}

func newCORS(c config.CORSConfig) *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins: c.AllowedOrigins,
		AllowedMethods: expandMethods(c.AllowedMethods),
		AllowedHeaders: c.AllowedHeaders,
	})
}

func expandMethods(methods []string) []string {
	for _, m := range methods {
		if m == "*" {
			return allMethods
		}
	}
	return methods
}
