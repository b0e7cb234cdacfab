package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"

	"blogapp/pkg/common/config"
	"blogapp/pkg/core/repository"
	"blogapp/pkg/web/handler"
	"blogapp/pkg/web/middleware"
)

// RegisterAPIs wires the global middleware chain and the resource routes
// onto the given server.
func RegisterAPIs(h *server.Hertz, cfg *config.Config, repos repository.Repositories) {
	userHandler := handler.NewUserHandler(repos.Users, repos.Posts)
	postHandler := handler.NewPostHandler(repos.Posts, repos.Users, repos.Comments)
	commentHandler := handler.NewCommentHandler(repos.Comments, repos.Posts, repos.Users)
	authHandler := handler.NewAuthHandler(repos.Users)
	healthHandler := handler.NewHealthCheckHandler(cfg.Storage.Backend, repos)

	h.Use(
		middleware.Recovery(cfg),
		middleware.Logger(),
		middleware.Timeout(cfg.Middleware.Timeout.RequestTimeout),
		middleware.CORS(cfg.Middleware.CORS),
		middleware.RateLimit(
			cfg.Middleware.RateLimit.Rate,
			cfg.Middleware.RateLimit.Interval,
		),
	)

	h.GET("/health", healthHandler.Check)

	auth := h.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
	}

	users := h.Group("/users")
	{
		users.POST("", userHandler.Create)
		users.GET("", userHandler.List)
		users.GET("/:id", userHandler.GetByID)
		users.PATCH("/:id", userHandler.Update)
		users.DELETE("/:id", userHandler.Delete)

		users.GET("/:id/posts", userHandler.ListPosts)
		users.GET("/:id/posts/:postId", userHandler.GetPost)
		users.POST("/:id/posts", postHandler.Create)
	}

	posts := h.Group("/posts")
	{
		posts.GET("", postHandler.List)
		posts.GET("/:id", postHandler.GetByID)
		posts.PATCH("/:id", postHandler.Update)
		posts.DELETE("/:id", postHandler.Delete)

		posts.GET("/:id/comments", postHandler.ListComments)
		posts.POST("/:id/comments", commentHandler.CreateForPost)
		posts.PATCH("/:id/comments/:commentId", commentHandler.UpdateForPost)
		posts.DELETE("/:id/comments/:commentId", commentHandler.DeleteForPost)
	}

	comments := h.Group("/comments")
	{
		comments.POST("", commentHandler.Create)
		comments.GET("", commentHandler.List)
		comments.GET("/:id", commentHandler.GetByID)
		comments.PATCH("/:id", commentHandler.Update)
		comments.DELETE("/:id", commentHandler.Delete)
	}
}
