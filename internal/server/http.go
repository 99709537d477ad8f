package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/go-awl-bridge/internal/config"
	"github.com/MKhiriev/go-awl-bridge/internal/logger"
)

const readHeaderTimeout = 10 * time.Second

type httpServer struct {
	server *http.Server

	// cancelBase ends the base context of every request, which also closes
	// hijacked WebSocket connections that Shutdown does not track.
	cancelBase context.CancelFunc

	logger *logger.Logger
}

func newHTTPServer(handler http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	baseCtx, cancel := context.WithCancel(context.Background())

	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
			BaseContext:       func(net.Listener) context.Context { return baseCtx },
		},
		cancelBase: cancel,
		logger:     logger,
	}
}

// RunServer listens on the configured address and serves until Shutdown.
func (h *httpServer) RunServer() error {
	ln, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return fmt.Errorf("HTTP server listen on %s: %w", h.server.Addr, err)
	}
	h.logger.Info().Str("address", ln.Addr().String()).Msg("HTTP server listening")

	if err = h.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server Serve: %w", err)
	}
	return nil
}

func (h *httpServer) Shutdown(ctx context.Context) error {
	h.cancelBase()
	if err := h.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("HTTP server Shutdown: %w", err)
	}
	return nil
}
