package http

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/MKhiriev/go-awl-bridge/internal/app"
	"github.com/MKhiriev/go-awl-bridge/internal/logger"
	"github.com/MKhiriev/go-awl-bridge/internal/utils"
	"github.com/MKhiriev/go-awl-bridge/models"
)

const (
	relayWriteTimeout = 10 * time.Second
	relayMaxInFlight  = 16
	relayMaxFrameSize = 64 << 10
)

// relay serves the WebSocket relay. Every text frame is a [models.RelayRequest];
// requests run concurrently and each is answered with a
// [models.RelayResponse] carrying the client's tid.
func (h *Handler) relay(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// the upgrader has already answered the request
		log.Err(err).Str("func", "*Handler.relay").Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()
	conn.SetReadLimit(relayMaxFrameSize)

	client, _ := utils.GetClientFromContext(r.Context())
	log.Info().Str("client", client).Str("remote_addr", r.RemoteAddr).Msg("relay client connected")

	ctx, cancel := context.WithCancel(r.Context())
	var (
		wg       sync.WaitGroup
		writeMu  sync.Mutex
		inFlight = make(chan struct{}, relayMaxInFlight)
	)
	defer wg.Wait()
	defer cancel()

	// unblocks ReadMessage when the server shuts down
	go func() {
		<-ctx.Done()
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, ""),
			time.Now().Add(time.Second))
		conn.Close()
	}()

	write := func(resp models.RelayResponse) {
		writeMu.Lock()
		defer writeMu.Unlock()

		_ = conn.SetWriteDeadline(time.Now().Add(relayWriteTimeout))
		if err := conn.WriteJSON(resp); err != nil {
			log.Debug().Err(err).Str("func", "*Handler.relay").Int("tid", resp.TID).Msg("error writing relay response")
		}
	}

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Warn().Err(err).Str("func", "*Handler.relay").Msg("relay connection dropped")
			}
			log.Info().Str("client", client).Msg("relay client disconnected")
			return
		}

		var req models.RelayRequest
		if err = json.Unmarshal(message, &req); err != nil {
			write(models.RelayResponse{Err: app.MsgInvalidRelayFrame})
			continue
		}

		select {
		case inFlight <- struct{}{}:
		case <-ctx.Done():
			return
		}

		wg.Go(func() {
			defer func() { <-inFlight }()
			write(h.services.RelayService.Execute(ctx, req))
		})
	}
}
