package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/vbonduro/cashdrop/internal/labelstore"
	"github.com/vbonduro/cashdrop/internal/service"
)

// Services bundles the use cases the HTTP layer dispatches to.
type Services struct {
	Drawers   *service.DrawerService
	Drops     *service.DropService
	Reconcile *service.ReconcileService
	BankDrops *service.BankDropService
}

type Options struct {
	// AuthSecret signs and verifies HS256 bearer tokens.
	AuthSecret string
	// MaxUploadBytes bounds request bodies, label images included.
	MaxUploadBytes int64
}

type Server struct {
	svc        Services
	labelStore labelstore.LabelStore
	opts       Options
	router     chi.Router
	logger     *slog.Logger
}

func NewServer(svc Services, labels labelstore.LabelStore, opts Options, logger *slog.Logger) *Server {
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = 10 << 20
	}
	s := &Server{
		svc:        svc,
		labelStore: labels,
		opts:       opts,
		router:     chi.NewRouter(),
		logger:     logger,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	r := s.router
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Get("/media/{key}", s.handleGetLabel)

	r.Group(func(r chi.Router) {
		r.Use(s.requireActor)

		r.Route("/api/cash-drop-app1", func(r chi.Router) {
			r.Route("/cash-drawer", func(r chi.Router) {
				r.Get("/", s.handleListDrawers)
				r.Post("/", s.handleCreateDrawer)
				r.Get("/{id}", s.handleGetDrawer)
				r.Put("/{id}", s.handleUpdateDrawer)
				r.Delete("/{id}", s.handleDeleteDrawer)
			})
			r.Route("/cash-drop", func(r chi.Router) {
				r.Get("/", s.handleListDrops)
				r.Post("/", s.handleCreateDrop)
				r.Post("/validate", s.handleValidateDrop)
				r.Patch("/ignore", s.handleIgnoreDrop)
				r.Get("/{id}", s.handleGetDrop)
				r.Put("/{id}", s.handleUpdateDrop)
				r.Delete("/{id}", s.handleDeleteDrop)
			})
			r.Get("/cash-drop-reconciler", s.handleListReconcilers)
			r.Patch("/cash-drop-reconciler", s.handleReconcile)
		})

		r.Route("/api/bank-drop", func(r chi.Router) {
			r.Get("/", s.handleBankDropData)
			r.Post("/by-batches", s.handleBankDropDataByBatches)
			r.Get("/history", s.handleBatchHistory)
			r.Get("/cash-drop/{id}", s.handleGetDrop)
			r.Put("/cash-drop/{id}/denominations", s.handleUpdateDenominations)
			r.Post("/summary", s.handleBankDropSummary)
			r.Post("/mark-dropped", s.handleMarkBankDropped)
		})
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// securityHeaders adds defensive HTTP response headers to every response.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy", "default-src 'none'; img-src 'self'; frame-ancestors 'none'")
		next.ServeHTTP(w, r)
	})
}

// statusRecorder wraps http.ResponseWriter to capture the written status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestLogger(s.logger, securityHeaders(s.router)).ServeHTTP(w, r)
}

func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("starting server", "addr", addr)
	srv := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return srv.ListenAndServe()
}
