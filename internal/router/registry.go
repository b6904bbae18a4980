package router

import "github.com/gin-gonic/gin"

// Registry collects feature modules and registers them on the engine.
// Root modules (health, debug) attach at /, API modules under /api/v1.
type Registry struct {
	Engine      *gin.Engine
	Root        *gin.RouterGroup
	API         *gin.RouterGroup
	middlewares []gin.HandlerFunc
	rootModules []Module
	apiModules  []Module
}

func NewRegistry(engine *gin.Engine) *Registry {
	return &Registry{
		Engine: engine,
		Root:   engine.Group("/"),
		API:    engine.Group("/api/v1"),
	}
}

// Use appends middleware applied to the API group only.
func (r *Registry) Use(mw ...gin.HandlerFunc) {
	r.middlewares = append(r.middlewares, mw...)
}

func (r *Registry) Add(mod Module) {
	r.apiModules = append(r.apiModules, mod)
}

func (r *Registry) AddRoot(mod Module) {
	r.rootModules = append(r.rootModules, mod)
}

func (r *Registry) RegisterAll() {
	if len(r.middlewares) > 0 {
		r.API.Use(r.middlewares...)
	}
	for _, m := range r.rootModules {
		m.Register(r.Root)
	}
	for _, m := range r.apiModules {
		m.Register(r.API)
	}
}
