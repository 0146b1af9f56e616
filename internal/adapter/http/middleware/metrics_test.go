package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/execsec/backoffice/internal/infrastructure/metrics"
)

func TestMetricsMiddlewareRecordsRequest(t *testing.T) {
	m := metrics.New()
	mw := NewMetricsMiddleware(m)

	handlerCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusCreated)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/payables", nil)
	rr := httptest.NewRecorder()

	mw.Wrap(next).ServeHTTP(rr, req)

	if !handlerCalled {
		t.Fatalf("next handler was not invoked")
	}

	counter := m.HTTPRequests.WithLabelValues(http.MethodPost, "/api/v1/payables", strconv.Itoa(http.StatusCreated))
	if got := testutil.ToFloat64(counter); got != 1 {
		t.Fatalf("expected counter to be 1, got %v", got)
	}
}

func TestNormalizePath(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "payable path without suffix",
			input:    "/api/v1/payables/42",
			expected: "/api/v1/payables/:id",
		},
		{
			name:     "payable path with suffix",
			input:    "/api/v1/payables/42/document",
			expected: "/api/v1/payables/:id/document",
		},
		{
			name:     "export path with opaque id",
			input:    "/api/v1/exports/01J0000000000000000000000X",
			expected: "/api/v1/exports/:id",
		},
		{
			name:     "non-matching path",
			input:    "/api/v1/health",
			expected: "/api/v1/health",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := normalizePath(tc.input); got != tc.expected {
				t.Fatalf("normalizePath(%q) = %q, expected %q", tc.input, got, tc.expected)
			}
		})
	}
}
