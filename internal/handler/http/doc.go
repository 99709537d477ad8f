// Package http implements the HTTP transport layer of the bridge.
//
// It exposes the REST routes over gateways, zones and recorded history, the
// WebSocket relay at /ws, and the version and health endpoints. Request
// tracing, access logging, response compression and optional bearer token
// authentication are handled in this package before requests are delegated
// to the service layer.
package http
