package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mkurbatov/social-network-api/internal/config"
	"github.com/mkurbatov/social-network-api/internal/handlers"
)

type Server struct {
	handler *handlers.Handler
	authMW  gin.HandlerFunc
	health  func() map[string]string
}

// New creates and configures the HTTP server.
func New(cfg config.Config, handler *handlers.Handler, authMW gin.HandlerFunc, health func() map[string]string) *http.Server {
	s := &Server{
		handler: handler,
		authMW:  authMW,
		health:  health,
	}

	return &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

// RegisterRoutes sets up all application routes.
func (s *Server) RegisterRoutes() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.health())
	})

	api := r.Group("/api")
	{
		// Auth routes (public)
		api.POST("/register", s.handler.Auth.Register)
		api.POST("/login", s.handler.Auth.Login)
		api.POST("/forgot_password", s.handler.Auth.ForgotPassword)
		api.PATCH("/reset_password", s.handler.Auth.ResetPassword)

		// Public reads
		api.GET("/user/:id", s.handler.User.Get)
		api.GET("/user/:id/followers", s.handler.Follow.Followers)
		api.GET("/user/:id/follows", s.handler.Follow.Follows)
		api.GET("/posts", s.handler.Post.Feed)
		api.GET("/post/:id", s.handler.Post.Get)

		// Protected routes (authentication required)
		protected := api.Group("")
		protected.Use(s.authMW)
		{
			protected.POST("/logout", s.handler.Auth.Logout)

			protected.GET("/user/me", s.handler.User.Me)
			protected.PATCH("/user/me", s.handler.User.Edit)

			protected.GET("/user/:id/isfollowed", s.handler.Follow.IsFollowed)
			protected.GET("/user/:id/follow", s.handler.Follow.Follow)
			protected.GET("/user/:id/unfollow", s.handler.Follow.Unfollow)

			protected.GET("/post/:id/like", s.handler.Like.Like)
			protected.GET("/post/:id/unlike", s.handler.Like.Unlike)

			protected.POST("/post", s.handler.Post.Create)
			protected.PATCH("/post/:id", s.handler.Post.Edit)
			protected.DELETE("/post/:id", s.handler.Post.Delete)

			protected.GET("/ws", s.handler.WS.Serve)
		}
	}

	return r
}
