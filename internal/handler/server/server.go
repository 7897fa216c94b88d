package server

import (
	"context"
	"net/http"
	"time"

	"github.com/bagdasarian/transfer-market/internal/handler"
	"github.com/bagdasarian/transfer-market/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

type Server struct {
	server *http.Server
	logger *zap.Logger
}

func NewServer(h *handler.Handler, addr string, logger *zap.Logger, m *metrics.Metrics, gatherer prometheus.Gatherer) *Server {
	return &Server{
		logger: logger,
		server: &http.Server{
			Addr:              addr,
			Handler:           NewHTTPHandler(h, logger, m, gatherer),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// NewHTTPHandler собирает маршруты и middleware
func NewHTTPHandler(h *handler.Handler, logger *zap.Logger, m *metrics.Metrics, gatherer prometheus.Gatherer) http.Handler {
	mux := http.NewServeMux()
	SetupRoutes(mux, h, gatherer)

	return withRequestID(logger, withObservability(logger, m, withRecovery(logger, mux)))
}

func (s *Server) Start() error {
	s.logger.Info("server starting", zap.String("addr", s.server.Addr))
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down")
	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	s.logger.Info("server stopped")
	return nil
}
