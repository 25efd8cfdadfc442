// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"quill/internal/delivery/http/middleware"
	"quill/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	BlogHandler    *handler.BlogHandler
	CommentHandler *handler.CommentHandler
	LikeHandler    *handler.LikeHandler
	FollowHandler  *handler.FollowHandler
	UserHandler    *handler.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	required := r.params.AuthMiddleware.Authenticate
	optional := r.params.AuthMiddleware.AuthenticateOptional

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.params.AuthHandler.Register)
		authGroup.POST("/verify-email", r.params.AuthHandler.VerifyEmail)
		authGroup.POST("/resend-verification-code", r.params.AuthHandler.ResendVerificationCode)
		authGroup.POST("/login", r.params.AuthHandler.Login)
		authGroup.POST("/request-password-reset", r.params.AuthHandler.RequestPasswordReset)
		authGroup.POST("/reset-password", r.params.AuthHandler.ResetPassword)
		authGroup.POST("/refresh-token", r.params.AuthHandler.RefreshToken)
		authGroup.GET("/me", r.params.AuthHandler.Me, required)
	}

	// Blog routes
	blogGroup := e.Group("/blogs")
	{
		blogGroup.POST("", r.params.BlogHandler.Create, required)
		blogGroup.GET("", r.params.BlogHandler.ListOwn, required)
		blogGroup.GET("/private-blogs/:id", r.params.BlogHandler.GetPrivate, required)
		blogGroup.GET("/:id", r.params.BlogHandler.GetPublic, optional)
		blogGroup.PATCH("/:id", r.params.BlogHandler.Update, required)
		blogGroup.DELETE("/:id", r.params.BlogHandler.Delete, required)

		// Comments live under their blog
		blogGroup.POST("/:blogId/comments", r.params.CommentHandler.Create, required)
		blogGroup.GET("/:blogId/comments", r.params.CommentHandler.List)
		blogGroup.PATCH("/:blogId/comments/:commentId", r.params.CommentHandler.Update, required)
		blogGroup.DELETE("/:blogId/comments/:commentId", r.params.CommentHandler.Delete, required)

		// Likes
		blogGroup.POST("/:blogId/likes", r.params.LikeHandler.Like, required)
		blogGroup.DELETE("/:blogId/likes", r.params.LikeHandler.Unlike, required)
	}

	// Follow routes
	followGroup := e.Group("/follows", required)
	{
		followGroup.POST("/:userId", r.params.FollowHandler.Follow)
		followGroup.DELETE("/:userId", r.params.FollowHandler.Unfollow)
		followGroup.GET("/followers", r.params.FollowHandler.Followers)
		followGroup.GET("/followings", r.params.FollowHandler.Followings)
	}

	// User routes
	userGroup := e.Group("/users")
	{
		userGroup.GET("/me", r.params.UserHandler.GetProfile, required)
		userGroup.PATCH("/me", r.params.UserHandler.UpdateProfile, required)
		userGroup.DELETE("/me", r.params.UserHandler.DeleteAccount, required)
		userGroup.GET("/:id/blogs", r.params.UserHandler.PublicBlogs)
	}
}
