// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"gaspass/internal/delivery/http/middleware"
	"gaspass/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	PasswordHandler *handler.PasswordHandler
	ProductHandler  *handler.ProductHandler
	BlogHandler     *handler.BlogHandler
	ReviewHandler   *handler.ReviewHandler
	TaxonomyHandler *handler.TaxonomyHandler
	UserHandler     *handler.UserHandler
	StatsHandler    *handler.StatsHandler
	AuditHandler    *handler.AuditHandler
	AuthMiddleware  *middleware.AuthMiddleware
	AuditMiddleware *middleware.AuditMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	passwordHandler *handler.PasswordHandler
	productHandler  *handler.ProductHandler
	blogHandler     *handler.BlogHandler
	reviewHandler   *handler.ReviewHandler
	taxonomyHandler *handler.TaxonomyHandler
	userHandler     *handler.UserHandler
	statsHandler    *handler.StatsHandler
	auditHandler    *handler.AuditHandler
	authMiddleware  *middleware.AuthMiddleware
	auditMiddleware *middleware.AuditMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		passwordHandler: params.PasswordHandler,
		productHandler:  params.ProductHandler,
		blogHandler:     params.BlogHandler,
		reviewHandler:   params.ReviewHandler,
		taxonomyHandler: params.TaxonomyHandler,
		userHandler:     params.UserHandler,
		statsHandler:    params.StatsHandler,
		auditHandler:    params.AuditHandler,
		authMiddleware:  params.AuthMiddleware,
		auditMiddleware: params.AuditMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.GET("/ping", handler.Ping)

	// Public auth and recovery routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/google", r.authHandler.GoogleLogin)
	}

	passwordGroup := api.Group("/password")
	{
		passwordGroup.POST("/forgot-telegram", r.passwordHandler.ForgotTelegram)
		passwordGroup.POST("/reset", r.passwordHandler.Reset)
	}

	// Visit recording stays public; reviews accept anonymous submissions.
	api.POST("/visits", r.statsHandler.RecordVisit)
	api.GET("/reviews", r.reviewHandler.List)
	api.POST("/reviews", r.reviewHandler.Create)
	api.PUT("/reviews/:id", r.reviewHandler.Update)

	// Routes that require a valid session token
	authed := api.Group("", r.authMiddleware.Authenticate)
	{
		authed.GET("/products", r.productHandler.List)
		authed.GET("/products/:id", r.productHandler.Get)
		authed.GET("/blogs", r.blogHandler.List)
		authed.GET("/blogs/:id", r.blogHandler.Get)
		authed.GET("/tags", r.taxonomyHandler.ListTags)
		authed.GET("/categories/:kind", r.taxonomyHandler.ListCategories)
	}

	// Routes that additionally require an admin account. Mutations in this
	// group land in the audit trail.
	admin := api.Group("", r.authMiddleware.Authenticate, r.authMiddleware.RequireAdmin, r.auditMiddleware.Handle)
	{
		admin.POST("/products", r.productHandler.Create)
		admin.PUT("/products/:id", r.productHandler.Update)
		admin.DELETE("/products/:id", r.productHandler.Delete)

		admin.POST("/blogs", r.blogHandler.Create)
		admin.PUT("/blogs/:id", r.blogHandler.Update)
		admin.DELETE("/blogs/:id", r.blogHandler.Delete)

		admin.DELETE("/reviews/:id", r.reviewHandler.Delete)

		admin.POST("/tags", r.taxonomyHandler.UpsertTag)
		admin.DELETE("/tags/:id", r.taxonomyHandler.DeleteTag)
		admin.POST("/categories/:kind", r.taxonomyHandler.UpsertCategory)
		admin.DELETE("/categories/:kind/:id", r.taxonomyHandler.DeleteCategory)

		admin.GET("/users", r.userHandler.List)
		admin.GET("/users/pending", r.userHandler.ListPending)
		admin.PUT("/users/validate/:id", r.userHandler.Validate)
		admin.PATCH("/users/:id", r.userHandler.UpdateIdentity)
		admin.DELETE("/users/:id", r.userHandler.Delete)
		admin.GET("/users/:id/activity", r.userHandler.Activity)

		admin.GET("/visits/stats", r.statsHandler.VisitStats)
		admin.GET("/stats", r.statsHandler.Totals)
		admin.GET("/audit", r.auditHandler.Recent)
	}
}
