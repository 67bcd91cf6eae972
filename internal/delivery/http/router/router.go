// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"koostory/internal/delivery/http/middleware"
	"koostory/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	PageHandler    *handler.PageHandler
	BlogHandler    *handler.BlogHandler
	AdminHandler   *handler.AdminHandler
	ProxyHandler   *handler.ProxyHandler
	SitemapHandler *handler.SitemapHandler

	SessionMiddleware *middleware.SessionMiddleware
	LocaleMiddleware  *middleware.LocaleMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	pageHandler    *handler.PageHandler
	blogHandler    *handler.BlogHandler
	adminHandler   *handler.AdminHandler
	proxyHandler   *handler.ProxyHandler
	sitemapHandler *handler.SitemapHandler

	session *middleware.SessionMiddleware
	locale  *middleware.LocaleMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		pageHandler:    params.PageHandler,
		blogHandler:    params.BlogHandler,
		adminHandler:   params.AdminHandler,
		proxyHandler:   params.ProxyHandler,
		sitemapHandler: params.SitemapHandler,
		session:        params.SessionMiddleware,
		locale:         params.LocaleMiddleware,
	}
}

// RegisterRoutes sets up every route of the site. The session middleware runs for
// all of them; page routes also resolve a display language.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.session.Handle)

	e.GET("/health", handler.HealthCheck)
	e.GET("/sitemap.xml", r.sitemapHandler.Sitemap)

	pages := e.Group("", r.locale.Handle)
	{
		pages.GET("/", r.pageHandler.Landing)
		pages.GET("/product", r.pageHandler.Product)
		pages.GET("/pricing", r.pageHandler.Pricing)
		pages.GET("/blog", r.blogHandler.List)
		pages.GET("/blog/:slug", r.blogHandler.Post)

		pages.GET("/:lang", r.pageHandler.Landing)
		pages.GET("/:lang/product", r.pageHandler.Product)
		pages.GET("/:lang/pricing", r.pageHandler.Pricing)
		pages.GET("/:lang/blog", r.blogHandler.List)
		pages.GET("/:lang/blog/:slug", r.blogHandler.Post)

		pages.GET("/login", r.authHandler.LoginPage)
		pages.POST("/login", r.authHandler.Login)
		pages.GET("/register", r.authHandler.RegisterPage)
		pages.POST("/register", r.authHandler.Register)
		pages.POST("/logout", r.authHandler.Logout)

		// The session middleware has already redirected anonymous visitors
		pages.GET("/admin", r.adminHandler.Index)
		pages.GET("/admin/cms", r.adminHandler.CMS)
	}

	api := e.Group("/api")
	{
		api.POST("/translate", r.proxyHandler.Translate)
		api.POST("/send-email", r.proxyHandler.SendEmail)
		api.GET("/test-email", r.proxyHandler.TestEmail)
	}

	admin := api.Group("/admin", middleware.RequireUser)
	{
		admin.POST("/blog", r.adminHandler.CreatePost)
		admin.PUT("/blog/:id", r.adminHandler.UpdatePost)
		admin.DELETE("/blog/:id", r.adminHandler.DeletePost)
	}
}
