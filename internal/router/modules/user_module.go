package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/omaroid/user-service/internal/container"
	handlers "github.com/omaroid/user-service/internal/interface/http"
	"github.com/omaroid/user-service/internal/interface/middleware"
)

// UserModule wires the user CRUD handlers into routes.
// GET    /api/v1/users          list (paginated)
// POST   /api/v1/users          create
// GET    /api/v1/users/:id      get by id
// PUT    /api/v1/users/:id      update
// DELETE /api/v1/users/:id      delete

type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	// Writes are limited harder than reads; limiter is a no-op without redis.
	readLimiter := middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP())
	writeLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIPAndPath())

	users := rg.Group("/users")
	{
		users.GET("", readLimiter, m.Handler.List)
		users.POST("", writeLimiter, m.Handler.Create)
		users.GET("/:id", readLimiter, m.Handler.GetByID)
		users.PUT("/:id", writeLimiter, m.Handler.Update)
		users.DELETE("/:id", writeLimiter, m.Handler.Delete)
	}
}
