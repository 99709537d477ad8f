// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal monitor application runtime.
//
// It runs the monitor UI against a bridge and turns a user quit into a clean
// exit.
package client
