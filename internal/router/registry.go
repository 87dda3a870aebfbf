package router

import "github.com/gin-gonic/gin"

// Module registers a feature's routes on the group it is mounted on.
type Module interface {
	Register(rg *gin.RouterGroup)
}

// Registry collects modules. API modules mount under /api, page modules at
// the root. Global middleware, the gatekeeper included, is installed on the
// engine before RegisterAll.
type Registry struct {
	Engine  *gin.Engine
	Root    *gin.RouterGroup
	API     *gin.RouterGroup
	modules []Module
	pages   []Module
}

func NewRegistry(engine *gin.Engine) *Registry {
	return &Registry{Engine: engine, Root: &engine.RouterGroup, API: engine.Group("/api")}
}

func (r *Registry) Add(mod Module) {
	r.modules = append(r.modules, mod)
}

func (r *Registry) AddPage(mod Module) {
	r.pages = append(r.pages, mod)
}

func (r *Registry) RegisterAll() {
	for _, m := range r.modules {
		m.Register(r.API)
	}
	for _, m := range r.pages {
		m.Register(r.Root)
	}
}
