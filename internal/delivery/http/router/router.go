// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	httpmiddleware "shelfswap/internal/delivery/http/middleware"
	"shelfswap/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler      *handler.UserHandler
	BookHandler      *handler.BookHandler
	FeedHandler      *handler.FeedHandler
	MessagingHandler *handler.MessagingHandler
	AuthMiddleware   *httpmiddleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler      *handler.UserHandler
	bookHandler      *handler.BookHandler
	feedHandler      *handler.FeedHandler
	messagingHandler *handler.MessagingHandler
	authMiddleware   *httpmiddleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:      params.UserHandler,
		bookHandler:      params.BookHandler,
		feedHandler:      params.FeedHandler,
		messagingHandler: params.MessagingHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes, the only unauthenticated part of the API
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// Everything below requires a valid access token.
	userGroup := api.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/:userId", r.userHandler.GetUser)
	}

	bookGroup := api.Group("/books")
	bookGroup.Use(r.authMiddleware.Authenticate)
	{
		bookGroup.GET("/shelf/:userId", r.bookHandler.GetShelf)
		bookGroup.GET("/wishlist/:userId", r.bookHandler.GetWishlist)
		bookGroup.POST("/shelf", r.bookHandler.AddToShelf)
		bookGroup.POST("/wishlist", r.bookHandler.AddToWishlist)
		bookGroup.DELETE("/shelf/:bookId", r.bookHandler.RemoveFromShelf)
		bookGroup.DELETE("/wishlist/:bookId", r.bookHandler.RemoveFromWishlist)
		bookGroup.GET("/search", r.bookHandler.Search)
		bookGroup.GET("/matched/:userId", r.bookHandler.GetMatchedBooks)
		bookGroup.GET("/:bookId", r.bookHandler.GetBook)
		bookGroup.GET("/:bookId/users", r.bookHandler.GetBookOwners)
	}

	feedGroup := api.Group("/feed")
	feedGroup.Use(r.authMiddleware.Authenticate)
	{
		feedGroup.GET("", r.feedHandler.GetFeed)
	}

	messageGroup := api.Group("/messages")
	messageGroup.Use(r.authMiddleware.Authenticate)
	{
		messageGroup.POST("/conversations", r.messagingHandler.StartConversation)
		messageGroup.GET("/conversations", r.messagingHandler.GetConversations)
		messageGroup.GET("/check-conversation/:otherId", r.messagingHandler.CheckConversation)
		messageGroup.GET("/requests/received", r.messagingHandler.GetPendingReceived)
		messageGroup.GET("/requests/sent", r.messagingHandler.GetPendingSent)
		messageGroup.POST("/requests/:id/accept", r.messagingHandler.AcceptRequest)
		messageGroup.POST("/requests/:id/reject", r.messagingHandler.RejectRequest)
		messageGroup.POST("/conversations/:id", r.messagingHandler.SendMessage)
		messageGroup.GET("/conversations/:id", r.messagingHandler.GetMessages)
		messageGroup.POST("/conversations/:id/read", r.messagingHandler.MarkConversationRead)
	}
}
