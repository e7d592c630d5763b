package httpapi

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Router binds the /api routes to the collection handler. Path ids are
// constrained to digits, so a malformed id never reaches a handler.
type Router struct {
	mux     *mux.Router
	handler http.Handler
	logger  *zap.Logger
}

func NewRouter(logger *zap.Logger) *Router {
	r := &Router{
		mux:    mux.NewRouter(),
		logger: logger,
	}
	// The chain wraps the mux itself so CORS preflights are answered even
	// when no route matches the OPTIONS method.
	r.handler = r.requestLogging(corsMiddleware(contentTypeMiddleware(r.mux)))
	return r
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.handler.ServeHTTP(w, req)
}

// RegisterCollectionRoutes registers the healthchecker and the five CRUD
// endpoints under /api.
func (r *Router) RegisterCollectionRoutes(h *CollectionHandler) {
	api := r.mux.PathPrefix("/api").Subrouter()

	api.HandleFunc("/healthchecker", h.HealthCheck).Methods(http.MethodGet)

	api.HandleFunc("/collections", h.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/collections", h.Create).Methods(http.MethodPost)
	api.HandleFunc("/collections/{id:[0-9]+}", h.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/collections/{id:[0-9]+}", h.Update).Methods(http.MethodPatch)
	api.HandleFunc("/collections/{id:[0-9]+}", h.Delete).Methods(http.MethodDelete)
}

// requestLogging tags each request with a generated id and logs method, path,
// and duration.
func (r *Router) requestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()
		next.ServeHTTP(w, req)
		r.logger.Info("request handled",
			zap.String("request_id", requestID),
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

// corsMiddleware permits the four API methods with standard headers and
// credentials, and answers preflight requests directly.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		origin := req.Header.Get("Origin")
		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Accept")
			w.Header().Set("Access-Control-Allow-Credentials", "true")
		}
		if req.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, req)
	})
}

func contentTypeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Add("Content-Type", "application/json")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		next.ServeHTTP(w, req)
	})
}
