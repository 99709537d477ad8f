// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package awl

import (
	"context"
	"encoding/json"
	"time"
)

// Transaction is one command awaiting its response.
type Transaction struct {
	TID int
	Cmd string

	conn   *Conn
	timer  *time.Timer
	result chan transactionResult
}

type transactionResult struct {
	data json.RawMessage
	err  error
}

// Wait blocks until the response arrives and returns the raw response frame.
// It returns a [*TransactionError] when the proxy reported a failure,
// [ErrTransactionTimeout] when the transaction timeout expired and
// [ErrConnectionClosed] when the socket closed first. If ctx ends first the
// transaction is abandoned and its id released.
func (t *Transaction) Wait(ctx context.Context) (json.RawMessage, error) {
	select {
	case r := <-t.result:
		return r.data, r.err
	case <-ctx.Done():
		t.conn.finish(t, nil, ctx.Err())
		return nil, ctx.Err()
	}
}

// begin allocates the next free transaction id and registers a pending
// transaction for it.
func (c *Conn) begin(cmd string) (*Transaction, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	tid, err := c.nextTID()
	if err != nil {
		return nil, err
	}

	t := &Transaction{
		TID:    tid,
		Cmd:    cmd,
		conn:   c,
		result: make(chan transactionResult, 1),
	}
	t.timer = time.AfterFunc(c.opts.TransactionTimeout, func() {
		c.finish(t, nil, ErrTransactionTimeout)
	})
	c.pending[tid] = t

	return t, nil
}

// nextTID returns the id after the last one issued, wrapping from 255 to 1
// and skipping ids that are still pending. c.mu must be held.
func (c *Conn) nextTID() (int, error) {
	for range maxTransactionID {
		c.lastTID = c.lastTID%maxTransactionID + 1
		if _, busy := c.pending[c.lastTID]; !busy {
			return c.lastTID, nil
		}
	}

	return 0, ErrTooManyTransactions
}

// finish completes t with the given outcome and releases its id. Only the
// first outcome for a transaction is delivered.
func (c *Conn) finish(t *Transaction, data json.RawMessage, err error) {
	c.mu.Lock()
	current, ok := c.pending[t.TID]
	if !ok || current != t {
		c.mu.Unlock()
		return
	}
	delete(c.pending, t.TID)
	c.mu.Unlock()

	t.timer.Stop()
	t.result <- transactionResult{data: data, err: err}
}

// failPending completes every pending transaction with err.
func (c *Conn) failPending(err error) {
	c.mu.Lock()
	pending := c.pending
	c.pending = make(map[int]*Transaction)
	c.mu.Unlock()

	for tid, t := range pending {
		t.timer.Stop()
		t.result <- transactionResult{err: err}
		c.logger.Debug().Int("tid", tid).Err(err).Msg("transaction dropped")
	}
}

// resetTransactions cancels every pending transaction and restarts ids at 1.
func (c *Conn) resetTransactions() {
	c.failPending(ErrTransactionCancelled)

	c.mu.Lock()
	c.lastTID = 0
	c.mu.Unlock()
}

// Pending returns the number of transactions awaiting a response.
func (c *Conn) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}
