package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"solitaire/internal/config"
	"solitaire/internal/engine"
	"solitaire/internal/session"
)

// Server ties together HTTP serving and WebSocket handling.
type Server struct {
	handlers *Handlers
	cfg      config.Config
	static   fs.FS
	log      *zap.Logger
}

// New builds a server. static must contain web/static.
func New(cfg config.Config, static fs.FS, results ResultRecorder, logger *zap.Logger) *Server {
	deal := engine.DefaultConfig
	if cfg.DeckSeed != 0 {
		deal = func() engine.GameConfig { return engine.SeededConfig(cfg.DeckSeed) }
	}
	return &Server{
		handlers: NewHandlers(cfg, session.NewManager(deal), results, logger),
		cfg:      cfg,
		static:   static,
		log:      logger,
	}
}

func (s *Server) Handlers() *Handlers { return s.handlers }

// Router returns the HTTP routes.
func (s *Server) Router() (http.Handler, error) {
	sub, err := fs.Sub(s.static, "web/static")
	if err != nil {
		return nil, fmt.Errorf("static fs: %w", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.log))
	r.Use(middleware.Recoverer)

	r.Get("/api/create", s.handlers.HandleCreate)
	r.Get("/api/qr", s.handlers.HandleQR)
	r.Get("/api/state", s.handlers.HandleState)
	r.Get("/api/results", s.handlers.HandleResults)
	r.Get("/api/health", s.handlers.HandleHealth)
	r.Delete("/api/table", s.handlers.HandleClose)
	r.Get("/ws", s.handlers.HandleWS)

	// Static files from embedded FS
	r.Handle("/*", http.FileServer(http.FS(sub)))
	return r, nil
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	handler, err := s.Router()
	if err != nil {
		return err
	}
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.log.Info("solitaire server starting", zap.String("addr", "http://localhost"+srv.Addr))
	s.log.Info("open /api/create to deal a new table")

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.handlers.StopAll()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func requestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.Debug("http",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("took", time.Since(start)),
				zap.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}
