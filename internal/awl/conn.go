// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package awl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/MKhiriev/go-awl-bridge/internal/logger"
	"github.com/MKhiriev/go-awl-bridge/models"
	"github.com/gorilla/websocket"
)

const (
	// CommandSource is sent as "source" with every command.
	CommandSource = "consumer dashboard"

	// DefaultTransactionTimeout bounds a transaction when Options leaves it
	// unset.
	DefaultTransactionTimeout = time.Hour

	maxTransactionID = 255

	closeWriteTimeout = time.Second
)

// Options configures a [Conn].
type Options struct {
	// TransactionTimeout bounds how long a transaction waits for its
	// response. Zero means DefaultTransactionTimeout.
	TransactionTimeout time.Duration

	// Dialer overrides websocket.DefaultDialer.
	Dialer *websocket.Dialer

	// Header is sent with the handshake request.
	Header http.Header

	Logger *logger.Logger
}

// Conn is an AWL WebSocket connection. It is safe for concurrent use.
type Conn struct {
	ws     *websocket.Conn
	opts   Options
	logger *logger.Logger

	writeMu sync.Mutex

	mu      sync.Mutex
	pending map[int]*Transaction
	lastTID int

	loginMu   sync.RWMutex
	loginData *models.LoginData

	done      chan struct{}
	closeOnce sync.Once
	closeErr  error
}

// Dial opens a WebSocket to uri and starts the receive loop. Handshake
// failures and invalid URIs are reported as [ErrHandshake].
func Dial(ctx context.Context, uri string, opts Options) (*Conn, error) {
	if opts.TransactionTimeout <= 0 {
		opts.TransactionTimeout = DefaultTransactionTimeout
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	dialer := opts.Dialer
	if dialer == nil {
		dialer = websocket.DefaultDialer
	}

	ws, resp, err := dialer.DialContext(ctx, uri, opts.Header)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("%w: %s: %s", ErrHandshake, uri, resp.Status)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrHandshake, uri, err)
	}

	c := &Conn{
		ws:      ws,
		opts:    opts,
		logger:  opts.Logger,
		pending: make(map[int]*Transaction),
		done:    make(chan struct{}),
	}
	go c.receive()

	return c, nil
}

// Command sends cmd with params and returns the pending transaction. The
// transaction is registered before the frame is written so that a fast
// response is never lost.
func (c *Conn) Command(ctx context.Context, cmd string, params map[string]any) (*Transaction, error) {
	select {
	case <-c.done:
		return nil, ErrConnectionClosed
	default:
	}

	t, err := c.begin(cmd)
	if err != nil {
		return nil, err
	}

	payload := make(map[string]any, len(params)+3)
	for k, v := range params {
		payload[k] = v
	}
	payload["cmd"] = cmd
	payload["tid"] = t.TID
	payload["source"] = CommandSource

	frame, err := json.Marshal(payload)
	if err != nil {
		c.finish(t, nil, err)
		return nil, fmt.Errorf("encode %s command: %w", cmd, err)
	}

	if err = c.write(ctx, frame); err != nil {
		c.finish(t, nil, err)
		return nil, err
	}

	return t, nil
}

// Do sends cmd and waits for its response.
func (c *Conn) Do(ctx context.Context, cmd string, params map[string]any) (json.RawMessage, error) {
	t, err := c.Command(ctx, cmd, params)
	if err != nil {
		return nil, err
	}

	data, err := t.Wait(ctx)
	if err != nil {
		var txErr *TransactionError
		if errors.As(err, &txErr) {
			c.logger.Error().Err(err).Str("cmd", cmd).Msg("transaction error")
		}
		return nil, err
	}

	return data, nil
}

// Done is closed when the connection is closed, by either side.
func (c *Conn) Done() <-chan struct{} {
	return c.done
}

// Err returns the error that terminated the receive loop. It is nil while
// the connection is open and after a local Close.
func (c *Conn) Err() error {
	select {
	case <-c.done:
		return c.closeErr
	default:
		return nil
	}
}

// Close sends a close frame and closes the socket. Pending transactions fail
// with [ErrConnectionClosed].
func (c *Conn) Close() error {
	var err error
	c.closeOnce.Do(func() {
		msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
		_ = c.ws.WriteControl(websocket.CloseMessage, msg, time.Now().Add(closeWriteTimeout))
		err = c.ws.Close()
		c.shutdown(nil)
	})
	return err
}

func (c *Conn) write(ctx context.Context, frame []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Time{}
	}
	if err := c.ws.SetWriteDeadline(deadline); err != nil {
		return fmt.Errorf("%w: %w", ErrConnectionClosed, err)
	}

	if e := c.logger.Debug(); e.Enabled() {
		e.RawJSON("frame", redact(frame)).Msg(">")
	}
	if err := c.ws.WriteMessage(websocket.TextMessage, frame); err != nil {
		return fmt.Errorf("%w: %w", ErrConnectionClosed, err)
	}

	return nil
}

func (c *Conn) receive() {
	for {
		_, message, err := c.ws.ReadMessage()
		if err != nil {
			c.closeOnce.Do(func() {
				_ = c.ws.Close()
				if websocket.IsCloseError(err, websocket.CloseNormalClosure) {
					c.logger.Info().Msg("awl websocket closed by server")
					c.shutdown(nil)
					return
				}
				c.logger.Warn().Err(err).Msg("awl websocket connection closed unexpectedly")
				c.shutdown(fmt.Errorf("%w: %w", ErrConnectionClosed, err))
			})
			return
		}

		c.dispatch(message)
	}
}

// dispatch routes one response frame to its transaction. Frames that cannot
// be routed are logged and dropped.
func (c *Conn) dispatch(message []byte) {
	if e := c.logger.Debug(); e.Enabled() {
		e.RawJSON("frame", redact(message)).Msg("<")
	}

	var head struct {
		TID *int `json:"tid"`
		Err any  `json:"err"`
	}
	if err := json.Unmarshal(message, &head); err != nil {
		c.logger.Error().Err(err).Bytes("message", message).Msg("undecodable awl message")
		return
	}
	if head.TID == nil {
		c.logger.Error().Bytes("message", message).Msg("message came in without tid")
		return
	}

	tid := *head.TID
	c.mu.Lock()
	t, ok := c.pending[tid]
	c.mu.Unlock()
	if !ok {
		c.logger.Warn().Int("tid", tid).Bytes("message", message).Msg("unknown transaction id")
		return
	}

	if msg, failed := errorMessage(head.Err); failed {
		c.finish(t, nil, &TransactionError{TID: tid, Message: msg})
		return
	}

	data := make(json.RawMessage, len(message))
	copy(data, message)
	c.finish(t, data, nil)
}

// shutdown marks the connection closed and fails every pending transaction.
// It must run exactly once, under closeOnce.
func (c *Conn) shutdown(err error) {
	c.closeErr = err
	close(c.done)

	c.loginMu.Lock()
	c.loginData = nil
	c.loginMu.Unlock()

	c.failPending(ErrConnectionClosed)
}

// errorMessage reports whether the "err" field of a response is set, using
// the vendor's truthiness: null, false, 0 and "" mean success.
func errorMessage(v any) (string, bool) {
	switch e := v.(type) {
	case nil:
		return "", false
	case string:
		return e, e != ""
	case bool:
		if !e {
			return "", false
		}
	case float64:
		if e == 0 {
			return "", false
		}
	case map[string]any:
		if len(e) == 0 {
			return "", false
		}
	case []any:
		if len(e) == 0 {
			return "", false
		}
	}

	b, _ := json.Marshal(v)
	return string(b), true
}
