package router

import (
	userhandler "instagram_backend/internal/feature/user/transport/handler"
	"instagram_backend/internal/platform/http/handler"
	"instagram_backend/internal/platform/http/middleware"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with the platform endpoints and the user routes.
func NewRouter(users *userhandler.UserHandler, db handler.Pinger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger())

	// 導通確認用
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)
	r.GET("/readyz", handler.Ready(db))

	u := r.Group("/users")
	{
		u.POST("", users.Create)
		u.GET("", users.List)
		u.GET("/:id", users.Get)
		u.PUT("/:id", users.Update)
		u.DELETE("/:id", users.Delete)
	}

	return r
}
