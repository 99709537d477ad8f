// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package awl

import (
	"errors"
	"fmt"
)

var (
	// ErrHandshake is returned by Dial when the WebSocket handshake fails or
	// the URI is invalid.
	ErrHandshake = errors.New("unable to connect to awl websocket")
	// ErrTooManyTransactions is returned when all 255 transaction ids are in
	// flight.
	ErrTooManyTransactions = errors.New("maximum 255 transactions in progress")
	// ErrTransactionTimeout is returned when no response arrived within the
	// transaction timeout.
	ErrTransactionTimeout = errors.New("awl transaction timed out")
	// ErrTransactionCancelled is returned for transactions dropped by a new
	// login on the same connection.
	ErrTransactionCancelled = errors.New("awl transaction cancelled")
	// ErrConnectionClosed is returned for commands on, and transactions
	// pending on, a closed connection.
	ErrConnectionClosed = errors.New("awl connection closed")
	// ErrNotLoggedIn is returned by Read before a successful Login.
	ErrNotLoggedIn = errors.New("awl connection not logged in")
)

// TransactionError is the failure reported by the proxy in the "err" field
// of a response.
type TransactionError struct {
	TID     int
	Message string
}

func (e *TransactionError) Error() string {
	return fmt.Sprintf("awl transaction %d failed: %s", e.TID, e.Message)
}
