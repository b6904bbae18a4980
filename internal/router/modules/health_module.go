package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/omaroid/user-service/internal/interface/http"
)

// HealthModule exposes the liveness endpoint at the server root.
type HealthModule struct {
	Handler *handlers.HealthHandler
}

func NewHealthModule(h *handlers.HealthHandler) *HealthModule {
	return &HealthModule{Handler: h}
}

func (m *HealthModule) Register(rg *gin.RouterGroup) {
	rg.GET("/health", m.Handler.Check)
}
