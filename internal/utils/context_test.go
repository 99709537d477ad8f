// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestClientCtxKey(t *testing.T) {
	if ClientCtxKey.String() != "client" {
		t.Errorf("expected 'client', got '%s'", ClientCtxKey.String())
	}
}

func TestGetClientFromContext_Success(t *testing.T) {
	ctx := context.WithValue(context.Background(), ClientCtxKey, "monitor")

	client, ok := GetClientFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if client != "monitor" {
		t.Errorf("expected client=monitor, got %s", client)
	}
}

func TestGetClientFromContext_Missing(t *testing.T) {
	client, ok := GetClientFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if client != "" {
		t.Errorf("expected empty client, got %s", client)
	}
}

func TestGetClientFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), ClientCtxKey, int64(42))

	if _, ok := GetClientFromContext(ctx); ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}

func TestGetClientFromContext_Empty(t *testing.T) {
	ctx := context.WithValue(context.Background(), ClientCtxKey, "")

	if _, ok := GetClientFromContext(ctx); ok {
		t.Fatal("expected ok=false for empty client, got true")
	}
}

func TestGetClientFromContext_DifferentKey(t *testing.T) {
	otherKey := contextKey("otherKey")
	ctx := context.WithValue(context.Background(), otherKey, "monitor")

	if _, ok := GetClientFromContext(ctx); ok {
		t.Fatal("expected ok=false for different key, got true")
	}
}
