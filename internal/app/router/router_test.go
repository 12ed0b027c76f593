package router

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	userhandler "instagram_backend/internal/feature/user/transport/handler"
	"instagram_backend/internal/feature/user/usecase"
	"instagram_backend/internal/platform/http/middleware"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type stubUsecase struct{}

func (stubUsecase) CreateUser(ctx context.Context, in *usecase.UserDTO) (*usecase.UserDTO, error) {
	out := *in
	out.ID = 1
	out.Password = ""
	return &out, nil
}

func (stubUsecase) UpdateUser(ctx context.Context, in *usecase.UserDTO) (*usecase.UserDTO, error) {
	return in, nil
}

func (stubUsecase) DeleteUser(ctx context.Context, id uint) error { return nil }

func (stubUsecase) FindByID(ctx context.Context, id uint) (*usecase.UserDTO, error) {
	return &usecase.UserDTO{ID: id, FullName: "Paulo Pereira", Username: "paulo", Email: "paulo@ppereira.dev"}, nil
}

func (stubUsecase) FindAll(ctx context.Context) ([]usecase.UserDTO, error) {
	return []usecase.UserDTO{}, nil
}

type stubPinger struct{ err error }

func (p stubPinger) PingContext(ctx context.Context) error { return p.err }

func TestNewRouter_Routes(t *testing.T) {
	t.Parallel()

	r := NewRouter(userhandler.NewUserHandler(stubUsecase{}), stubPinger{})

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		expectedStatus int
	}{
		{name: "healthz", method: http.MethodGet, path: "/healthz", expectedStatus: http.StatusOK},
		{name: "healthz head", method: http.MethodHead, path: "/healthz", expectedStatus: http.StatusOK},
		{name: "readyz", method: http.MethodGet, path: "/readyz", expectedStatus: http.StatusOK},
		{
			name:           "create user",
			method:         http.MethodPost,
			path:           "/users",
			body:           `{"full_name":"Paulo Pereira","username":"paulo","email":"paulo@ppereira.dev","password":"123456"}`,
			expectedStatus: http.StatusCreated,
		},
		{name: "list users", method: http.MethodGet, path: "/users", expectedStatus: http.StatusOK},
		{name: "get user", method: http.MethodGet, path: "/users/1", expectedStatus: http.StatusOK},
		{
			name:           "update user",
			method:         http.MethodPut,
			path:           "/users/1",
			body:           `{"full_name":"Novo Nome","username":"novoUser","email":"novo@email.com"}`,
			expectedStatus: http.StatusOK,
		},
		{name: "delete user", method: http.MethodDelete, path: "/users/1", expectedStatus: http.StatusNoContent},
		{name: "unknown route", method: http.MethodGet, path: "/candles/7203", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			if tt.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID), "request ID header should be set")
		})
	}
}

func TestNewRouter_ReadyzUnavailable(t *testing.T) {
	t.Parallel()

	r := NewRouter(userhandler.NewUserHandler(stubUsecase{}), stubPinger{err: errors.New("connection refused")})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"status":"unavailable"}`, w.Body.String())
}
