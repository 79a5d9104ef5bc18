package api

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/nguyentantai21042004/script-extractor/internal/embedding"
	"github.com/nguyentantai21042004/script-extractor/internal/logger"
	"github.com/nguyentantai21042004/script-extractor/internal/processor"
	"github.com/nguyentantai21042004/script-extractor/internal/storage"
)

const apiKeyHeader = "X-API-Key"

// Deps are the services behind the HTTP routes. Provider and Store may be
// unavailable, in which case /search answers 503.
type Deps struct {
	Processor processor.Processor
	Provider  embedding.Provider
	Store     storage.Store
	APIKey    string
}

type Router struct {
	*mux.Router
	processor processor.Processor
	provider  embedding.Provider
	store     storage.Store
	apiKey    string
	logger    logger.Logger
}

// NewRouter registers the public and key-protected routes. An empty
// APIKey leaves the protected routes open.
func NewRouter(deps Deps, log logger.Logger) *Router {
	r := &Router{
		Router:    mux.NewRouter(),
		processor: deps.Processor,
		provider:  deps.Provider,
		store:     deps.Store,
		apiKey:    deps.APIKey,
		logger:    log,
	}
	if r.provider == nil {
		r.provider = embedding.Unavailable{Reason: "no embedding provider"}
	}

	r.Router.Use(r.requestLogger)
	r.Router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	protected := r.Router.PathPrefix("").Subrouter()
	protected.Use(r.authMiddleware)
	protected.HandleFunc("/extract", r.extract).Methods(http.MethodPost)
	protected.HandleFunc("/extract/stream", r.extractStream).Methods(http.MethodPost)
	protected.HandleFunc("/search", r.search).Methods(http.MethodPost)

	return r
}

func (r *Router) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if r.apiKey == "" {
			next.ServeHTTP(w, req)
			return
		}

		key := req.Header.Get(apiKeyHeader)
		if key == "" {
			writeError(w, ErrUnauthorized("missing API key"))
			return
		}
		if key != r.apiKey {
			writeError(w, ErrUnauthorized("invalid API key"))
			return
		}

		next.ServeHTTP(w, req)
	})
}

type requestIDKey struct{}

// requestLogger tags each request with an id and logs its duration.
func (r *Router) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		id := req.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)

		ctx := context.WithValue(req.Context(), requestIDKey{}, id)
		start := time.Now()
		next.ServeHTTP(w, req.WithContext(ctx))
		r.logger.Info(ctx, "%s %s [%s] %s", req.Method, req.URL.Path, id, time.Since(start))
	})
}
