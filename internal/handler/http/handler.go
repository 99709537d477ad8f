package http

import (
	"time"

	"github.com/gorilla/websocket"

	"github.com/MKhiriev/go-awl-bridge/internal/logger"
	"github.com/MKhiriev/go-awl-bridge/internal/service"
)

// Settings configures the optional parts of the HTTP surface.
type Settings struct {
	// TokenSignKey enables bearer token authentication when non-empty.
	TokenSignKey string
	TokenIssuer  string

	// RequestTimeout bounds REST requests. The WebSocket relay is not
	// subject to it.
	RequestTimeout time.Duration
}

type Handler struct {
	services *service.Services
	settings Settings

	upgrader websocket.Upgrader

	accessLogger *logger.Logger
	logger       *logger.Logger
}

func NewHandler(services *service.Services, settings Settings, accessLogger, logger *logger.Logger) *Handler {
	logger.Info().Bool("auth", settings.TokenSignKey != "").Msg("http handler created")
	return &Handler{
		services: services,
		settings: settings,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
		},
		accessLogger: accessLogger,
		logger:       logger,
	}
}
