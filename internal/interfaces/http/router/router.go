package router

import (
	"github.com/gin-gonic/gin"
)

// RouteRegistrar defines the interface for registering routes
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// AdminRouteRegistrar defines the interface for registering admin routes
type AdminRouteRegistrar interface {
	RegisterAdminRoutes(rg *gin.RouterGroup)
}

// Router manages HTTP route registration. Routes are split across three
// tiers: public storefront routes, authenticated customer routes, and
// admin routes under /admin.
type Router struct {
	engine          *gin.Engine
	apiVersion      string
	authMiddleware  []gin.HandlerFunc
	adminMiddleware []gin.HandlerFunc
	public          []RouteRegistrar
	authed          []RouteRegistrar
	admin           []AdminRouteRegistrar
}

// RouterOption is a functional option for Router configuration
type RouterOption func(*Router)

// WithAPIVersion sets the API version prefix (e.g., "v1", "v2")
func WithAPIVersion(version string) RouterOption {
	return func(r *Router) {
		r.apiVersion = version
	}
}

// WithAuthMiddleware sets the middleware chain applied to authenticated
// customer routes
func WithAuthMiddleware(middleware ...gin.HandlerFunc) RouterOption {
	return func(r *Router) {
		r.authMiddleware = middleware
	}
}

// WithAdminMiddleware sets the middleware chain applied to the /admin group,
// on top of the auth middleware
func WithAdminMiddleware(middleware ...gin.HandlerFunc) RouterOption {
	return func(r *Router) {
		r.adminMiddleware = middleware
	}
}

// NewRouter creates a new Router instance
func NewRouter(engine *gin.Engine, opts ...RouterOption) *Router {
	r := &Router{
		engine:     engine,
		apiVersion: "v1",
		public:     make([]RouteRegistrar, 0),
		authed:     make([]RouteRegistrar, 0),
		admin:      make([]AdminRouteRegistrar, 0),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Public adds registrars whose routes need no authentication
func (r *Router) Public(registrars ...RouteRegistrar) *Router {
	r.public = append(r.public, registrars...)
	return r
}

// Authed adds registrars whose routes require a signed-in customer
func (r *Router) Authed(registrars ...RouteRegistrar) *Router {
	r.authed = append(r.authed, registrars...)
	return r
}

// Admin adds registrars whose routes live under /admin
func (r *Router) Admin(registrars ...AdminRouteRegistrar) *Router {
	r.admin = append(r.admin, registrars...)
	return r
}

// Setup registers all routes with the engine
func (r *Router) Setup() {
	api := r.engine.Group("/api/" + r.apiVersion)

	for _, registrar := range r.public {
		registrar.RegisterRoutes(api)
	}

	authed := api.Group("")
	authed.Use(r.authMiddleware...)
	for _, registrar := range r.authed {
		registrar.RegisterRoutes(authed)
	}

	admin := api.Group("/admin")
	admin.Use(r.authMiddleware...)
	admin.Use(r.adminMiddleware...)
	for _, registrar := range r.admin {
		registrar.RegisterAdminRoutes(admin)
	}
}
