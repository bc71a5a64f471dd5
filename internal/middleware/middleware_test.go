package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	var captured string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = GetRequestID(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	RequestID(next).ServeHTTP(rec, req)

	if captured == "" {
		t.Fatal("expected a generated request id in context")
	}
	if rec.Header().Get(RequestIDHeader) != captured {
		t.Errorf("response header %q does not match context id %q",
			rec.Header().Get(RequestIDHeader), captured)
	}
}

func TestRequestID_PropagatesHeader(t *testing.T) {
	var captured string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = GetRequestID(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	rec := httptest.NewRecorder()

	RequestID(next).ServeHTTP(rec, req)

	if captured != "req-123" {
		t.Errorf("expected propagated id 'req-123', got %q", captured)
	}
}

func TestLogger_RecordsStatusAndPath(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/students/missing", nil)
	rec := httptest.NewRecorder()

	Logger(logger)(next).ServeHTTP(rec, req)

	line := buf.String()
	if !strings.Contains(line, `"status_code":404`) {
		t.Errorf("expected status_code 404 in log, got %s", line)
	}
	if !strings.Contains(line, "/api/students/missing") {
		t.Errorf("expected path in log, got %s", line)
	}
	if !strings.Contains(line, `"level":"WARN"`) {
		t.Errorf("expected WARN level for 4xx, got %s", line)
	}
}

func TestRecoverer_CatchesPanic(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	Recoverer(logger)(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500 after panic, got %d", rec.Code)
	}
}

func TestMaxBody_CapsReads(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := io.ReadAll(r.Body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("x", 64)))
	rec := httptest.NewRecorder()

	MaxBody(16)(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected oversize body to fail, got %d", rec.Code)
	}
}
