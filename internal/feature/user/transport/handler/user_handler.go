// Package handler provides the HTTP handlers for the user feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"instagram_backend/internal/feature/user/transport/http/dto"
	"instagram_backend/internal/feature/user/usecase"
)

// UserUsecase defines the user management operations used by the handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type UserUsecase interface {
	CreateUser(ctx context.Context, in *usecase.UserDTO) (*usecase.UserDTO, error)
	UpdateUser(ctx context.Context, in *usecase.UserDTO) (*usecase.UserDTO, error)
	DeleteUser(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*usecase.UserDTO, error)
	FindAll(ctx context.Context) ([]usecase.UserDTO, error)
}

// UserHandler handles HTTP requests for user accounts.
type UserHandler struct {
	uc UserUsecase
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(uc UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Create handles POST /users and returns 201 with the created user.
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create user validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid request"})
		return
	}

	out, err := h.uc.CreateUser(c.Request.Context(), &usecase.UserDTO{
		FullName:       req.FullName,
		Username:       req.Username,
		Email:          req.Email,
		Password:       req.Password,
		ProfilePicture: req.ProfilePicture,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	slog.Info("user created", "user_id", out.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, toRes(out))
}

// List handles GET /users.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.uc.FindAll(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]dto.UserRes, 0, len(users))
	for i := range users {
		out = append(out, toRes(&users[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Get handles GET /users/:id.
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	out, err := h.uc.FindByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRes(out))
}

// Update handles PUT /users/:id. The ID in the path wins over anything in the body.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update user validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid request"})
		return
	}

	out, err := h.uc.UpdateUser(c.Request.Context(), &usecase.UserDTO{
		ID:       id,
		FullName: req.FullName,
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	slog.Info("user updated", "user_id", out.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, toRes(out))
}

// Delete handles DELETE /users/:id and returns 204 on success.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.uc.DeleteUser(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	slog.Info("user deleted", "user_id", id, "remote_addr", c.ClientIP())
	c.Status(http.StatusNoContent)
}

// parseID reads the :id path parameter and writes a 400 when it is not a positive integer.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid user id"})
		return 0, false
	}
	return uint(id), true
}

// writeError maps usecase errors to HTTP status codes.
// Internal errors are logged and replaced with a generic message.
func writeError(c *gin.Context, err error) {
	var status int
	switch {
	case errors.Is(err, usecase.ErrInvalidArgument):
		status = http.StatusBadRequest
	case errors.Is(err, usecase.ErrUserNotFound):
		status = http.StatusNotFound
	case errors.Is(err, usecase.ErrFieldAlreadyExists):
		status = http.StatusConflict
	default:
		slog.Error("user request failed", "error", err, "path", c.FullPath(), "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "internal server error"})
		return
	}
	slog.Warn("user request rejected", "error", err, "status", status, "remote_addr", c.ClientIP())
	c.JSON(status, dto.ErrorRes{Error: err.Error()})
}

func toRes(u *usecase.UserDTO) dto.UserRes {
	return dto.UserRes{
		ID:             u.ID,
		FullName:       u.FullName,
		Username:       u.Username,
		Email:          u.Email,
		ProfilePicture: u.ProfilePicture,
	}
}
