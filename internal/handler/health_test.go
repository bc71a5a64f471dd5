package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// mockHealthChecker is a mock implementation of HealthChecker for testing.
type mockHealthChecker struct {
	err error
}

func (m *mockHealthChecker) Ping(ctx context.Context) error {
	return m.err
}

func TestHealth_StoreReachable(t *testing.T) {
	h := NewHealthHandler(&mockHealthChecker{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	h.Health(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}

	var response struct {
		OK       bool   `json:"ok"`
		Database string `json:"database"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if !response.OK {
		t.Error("expected ok true")
	}
	if response.Database != "connected" {
		t.Errorf("expected database 'connected', got %q", response.Database)
	}
}

func TestHealth_StoreUnreachable(t *testing.T) {
	h := NewHealthHandler(&mockHealthChecker{err: errors.New("connection refused")})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	h.Health(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status 503, got %d", rec.Code)
	}

	var response struct {
		OK       bool   `json:"ok"`
		Database string `json:"database"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if response.OK {
		t.Error("expected ok false")
	}
	if response.Database != "disconnected" {
		t.Errorf("expected database 'disconnected', got %q", response.Database)
	}
}
