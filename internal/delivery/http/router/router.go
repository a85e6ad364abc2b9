// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"yap/internal/delivery/http/middleware"
	"yap/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	OAuthHandler   *handler.OAuthHandler
	PostHandler    *handler.PostHandler
	CommentHandler *handler.CommentHandler
	UserHandler    *handler.UserHandler
	DeviceHandler  *handler.DeviceHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	oauthHandler   *handler.OAuthHandler
	postHandler    *handler.PostHandler
	commentHandler *handler.CommentHandler
	userHandler    *handler.UserHandler
	deviceHandler  *handler.DeviceHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		oauthHandler:   params.OAuthHandler,
		postHandler:    params.PostHandler,
		commentHandler: params.CommentHandler,
		userHandler:    params.UserHandler,
		deviceHandler:  params.DeviceHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/refresh", r.authHandler.Refresh)
		authGroup.GET("/logout", r.authHandler.Logout)

		// Onboarding routes are guarded by the onboarding token cookie,
		// registered before the provider wildcards so they never match :provider.
		onboardingGroup := authGroup.Group("/onboarding")
		onboardingGroup.Use(r.authMiddleware.RequireOnboarding)
		{
			onboardingGroup.GET("/user", r.oauthHandler.PendingUser)
			onboardingGroup.POST("", r.oauthHandler.Onboard)
			onboardingGroup.DELETE("/cancel", r.oauthHandler.CancelOnboarding)
		}

		authGroup.GET("/:provider", r.oauthHandler.Start)
		authGroup.GET("/:provider/callback", r.oauthHandler.Callback)
	}

	// Authenticated API routes
	api := e.Group("")
	api.Use(r.authMiddleware.Authenticate)
	{
		api.GET("/me", r.authHandler.Me)

		api.POST("/posts", r.postHandler.CreatePost)
		api.GET("/posts/:id", r.postHandler.GetPost)
		api.DELETE("/posts/:id", r.postHandler.DeletePost)
		api.POST("/posts/:id/like", r.postHandler.ToggleLike)
		api.GET("/feed", r.postHandler.GetFeed)

		api.GET("/posts/:id/comments", r.commentHandler.GetComments)
		api.POST("/posts/:id/comments", r.commentHandler.CreateComment)
		api.GET("/comments/:id/thread", r.commentHandler.GetThread)
		api.DELETE("/comments/:id", r.commentHandler.DeleteComment)
		api.POST("/comments/:id/like", r.commentHandler.ToggleLike)

		api.POST("/users/:id/follow", r.userHandler.ToggleFollow)
		api.GET("/users/:id/followers", r.userHandler.ListFollowers)
		api.GET("/users/:id/following", r.userHandler.ListFollowing)

		api.POST("/devices", r.deviceHandler.RegisterDevice)
		api.DELETE("/devices/:token", r.deviceHandler.RemoveDevice)
	}
}
