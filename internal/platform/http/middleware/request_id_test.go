package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), RequestLogger())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ContextRequestID))
	})
	return r
}

func TestRequestID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "generates an ID when none is sent", incoming: "", keep: false},
		{name: "reuses the caller's ID", incoming: "req-123", keep: true},
		{name: "replaces an oversized ID", incoming: strings.Repeat("x", 200), keep: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter()

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
			if tt.incoming != "" {
				req.Header.Set(HeaderRequestID, tt.incoming)
			}

			router.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)
			got := w.Header().Get(HeaderRequestID)
			assert.Equal(t, got, w.Body.String(), "context and header IDs should match")
			if tt.keep {
				assert.Equal(t, tt.incoming, got)
			} else {
				_, err := uuid.Parse(got)
				assert.NoError(t, err, "generated ID should be a UUID")
			}
		})
	}
}

func TestRequestID_UniquePerRequest(t *testing.T) {
	router := newTestRouter()

	ids := map[string]struct{}{}
	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
		router.ServeHTTP(w, req)
		ids[w.Header().Get(HeaderRequestID)] = struct{}{}
	}

	assert.Len(t, ids, 5)
}
