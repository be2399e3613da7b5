package router

import (
	"sort"

	"github.com/gin-gonic/gin"
)

// A module implements any of these to be mounted on the matching group.
type APIModule interface{ MountAPI(*gin.RouterGroup) }
type AdminModule interface{ MountAdmin(*gin.RouterGroup) }

// AdminPublicModule is mounted on the admin group before the token check.
type AdminPublicModule interface{ MountAdminPublic(*gin.RouterGroup) }

// Modules mount in ascending Priority; the default is 100.
type prioritizer interface{ Priority() int }

// Registry collects feature modules for the engines.
type Registry struct {
	api         []APIModule
	admin       []AdminModule
	adminPublic []AdminPublicModule
}

// Register dispatches mod to every list whose interface it implements.
func (r *Registry) Register(mods ...any) {
	for _, mod := range mods {
		if m, ok := mod.(APIModule); ok {
			r.api = append(r.api, m)
		}
		if m, ok := mod.(AdminModule); ok {
			r.admin = append(r.admin, m)
		}
		if m, ok := mod.(AdminPublicModule); ok {
			r.adminPublic = append(r.adminPublic, m)
		}
	}
}

func (r *Registry) MountAPI(g *gin.RouterGroup) {
	for _, m := range ordered(r.api) {
		m.MountAPI(g)
	}
}

func (r *Registry) MountAdmin(g *gin.RouterGroup) {
	for _, m := range ordered(r.admin) {
		m.MountAdmin(g)
	}
}

func (r *Registry) MountAdminPublic(g *gin.RouterGroup) {
	for _, m := range ordered(r.adminPublic) {
		m.MountAdminPublic(g)
	}
}

func ordered[M any](mods []M) []M {
	out := append([]M(nil), mods...)
	sort.SliceStable(out, func(i, j int) bool {
		return priorityOf(out[i]) < priorityOf(out[j])
	})
	return out
}

func priorityOf(v any) int {
	if p, ok := v.(prioritizer); ok {
		return p.Priority()
	}
	return 100
}
