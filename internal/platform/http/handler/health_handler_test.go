package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// mockPinger is a Pinger that returns a fixed error.
type mockPinger struct {
	err error
}

func (m *mockPinger) PingContext(ctx context.Context) error {
	return m.err
}

func TestHealth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		method         string
		expectedStatus int
		expectedBody   string
	}{
		{name: "GET returns ok body", method: http.MethodGet, expectedStatus: http.StatusOK, expectedBody: `{"status":"ok"}`},
		{name: "HEAD returns 200 without body", method: http.MethodHead, expectedStatus: http.StatusOK},
		{name: "OPTIONS returns 204", method: http.MethodOptions, expectedStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router := gin.New()
			router.Handle(tt.method, "/healthz", Health)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, "/healthz", nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			} else {
				assert.Empty(t, w.Body.String())
			}
		})
	}
}

func TestReady(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		pingErr        error
		expectedStatus int
		expectedBody   string
	}{
		{name: "database reachable", expectedStatus: http.StatusOK, expectedBody: `{"status":"ready"}`},
		{name: "database unreachable", pingErr: errors.New("connection refused"), expectedStatus: http.StatusServiceUnavailable, expectedBody: `{"status":"unavailable"}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router := gin.New()
			router.GET("/readyz", Ready(&mockPinger{err: tt.pingErr}))

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
