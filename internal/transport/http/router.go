package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tgrullon/social_network_api/internal/handlers"
	"github.com/tgrullon/social_network_api/internal/middleware/auth"
)

type Deps struct {
	AuthHandler        *handlers.AuthHandler
	UserHandler        *handlers.UserHandler
	PostHandler        *handlers.PostHandler
	CommentHandler     *handlers.CommentHandler
	PostCommentHandler *handlers.PostCommentHandler
	FriendHandler      *handlers.FriendHandler
	Auth               *auth.TokenAuth
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	api := e.Group("/api")

	api.POST("/auth/login", d.AuthHandler.Login)
	api.POST("/auth/register", d.AuthHandler.Register)

	private := api.Group("", d.Auth.RequireAuth)

	private.GET("/auth/profile", d.AuthHandler.Profile)
	private.POST("/auth/logout", d.AuthHandler.Logout)

	users := private.Group("/users")
	users.GET("", d.UserHandler.Index)
	users.POST("", d.UserHandler.Store)
	users.GET("/:id", d.UserHandler.Show)
	users.PATCH("/:id", d.UserHandler.Update)
	users.DELETE("/:id", d.UserHandler.Destroy)

	posts := private.Group("/posts")
	posts.GET("", d.PostHandler.Index)
	posts.POST("", d.PostHandler.Store)
	posts.GET("/:id", d.PostHandler.Show)
	posts.PATCH("/:id", d.PostHandler.Update)
	posts.DELETE("/:id", d.PostHandler.Destroy)

	comments := private.Group("/comments")
	comments.GET("", d.CommentHandler.Index)
	comments.POST("", d.CommentHandler.Store)
	comments.GET("/:id", d.CommentHandler.Show)
	comments.PATCH("/:id", d.CommentHandler.Update)
	comments.DELETE("/:id", d.CommentHandler.Destroy)

	postComments := private.Group("/post_comments")
	postComments.GET("", d.PostCommentHandler.Index)
	postComments.POST("", d.PostCommentHandler.Store)
	postComments.GET("/:id", d.PostCommentHandler.Show)
	postComments.PATCH("/:id", d.PostCommentHandler.Update)
	postComments.DELETE("/:id", d.PostCommentHandler.Destroy)

	friends := private.Group("/user_friends")
	friends.GET("", d.FriendHandler.Index)
	friends.POST("", d.FriendHandler.Store)
	friends.GET("/:id", d.FriendHandler.Show)
	friends.PATCH("/:id", d.FriendHandler.Update)
	friends.DELETE("/:id", d.FriendHandler.Destroy)
}
