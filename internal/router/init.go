package router

import (
	userapp "github.com/omaroid/user-service/internal/application"
	"github.com/omaroid/user-service/internal/container"
	pginfra "github.com/omaroid/user-service/internal/infrastructure/postgres"
	handlers "github.com/omaroid/user-service/internal/interface/http"
	"github.com/omaroid/user-service/internal/router/modules"
)

// InitModules builds every feature module from the container singletons
// and registers it with the router registry. Called once at startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	userRepo := pginfra.NewUserRepository(pool)
	userSvc := userapp.NewService(userRepo, logger)
	userHandler := handlers.NewUserHandler(userSvc, logger)

	healthSvc := pginfra.NewHealthService(pool)
	healthHandler := handlers.NewHealthHandler(healthSvc, cfg.AppVersion)

	r.AddRoot(modules.NewHealthModule(healthHandler))
	r.Add(modules.NewUserModule(userHandler))
	if cfg.DebugMetricsEnabled {
		r.AddRoot(modules.NewDebugModule())
	}
}
