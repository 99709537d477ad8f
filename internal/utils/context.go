// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, trace ids,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and other common operations.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// ClientCtxKey is the key used to store the authenticated API client name
// (the "sub" claim of its bearer token) in the context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.ClientCtxKey, "monitor")
var ClientCtxKey = contextKey("client")

// GetClientFromContext retrieves the authenticated API client name from the
// context.
//
// Returns the client name and an ok flag:
//   - ok == true : value is found and is a non-empty string
//   - ok == false: value is missing, empty or has an unexpected type
func GetClientFromContext(ctx context.Context) (string, bool) {
	client, ok := ctx.Value(ClientCtxKey).(string)
	return client, ok && client != ""
}
