// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package awl is a client for the Aurora Web Link (AWL) WebSocket proxy.
//
// A [Conn] multiplexes request/response transactions over one WebSocket.
// Every request frame carries an 8-bit transaction id ("tid") that the proxy
// echoes in its response; ids run from 1 to 255 and wrap around, skipping ids
// that are still pending. A response carrying "err" fails its transaction
// with a [*TransactionError].
//
// The connection is authenticated with the sessionid cookie of a Symphony
// portal login (see [Conn.Login]); afterwards gateways can be read with
// [Conn.Read].
package awl
