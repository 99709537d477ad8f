// Package server wires and runs the bridge process.
//
// It owns the lifecycle of the HTTP server, the AWL session and the
// background workers: startup, signal handling, configuration reload on
// SIGHUP, and graceful shutdown.
package server
