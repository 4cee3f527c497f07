package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authDelivery "github.com/foysalit/codementorx-idea-pool/internal/auth/delivery"
	authUsecase "github.com/foysalit/codementorx-idea-pool/internal/auth/usecase"
	ideaDelivery "github.com/foysalit/codementorx-idea-pool/internal/idea/delivery"
	ideaUsecase "github.com/foysalit/codementorx-idea-pool/internal/idea/usecase"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, ideaUc ideaUsecase.IdeaUsecase) {
	authHandler := authDelivery.NewAuthHandler(authUc)
	ideaHandler := ideaDelivery.NewIdeaHandler(ideaUc)

	// Health check (no auth required)
	r.GET("/status", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	// Auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
		auth.POST("/refresh", authHandler.Refresh)
		auth.POST("/oauth/:provider", authHandler.OAuth)
	}

	// Profile route (protected)
	r.GET("/me", authDelivery.AuthMiddleware(authUc), authHandler.Me)

	// Idea routes (protected, creation is admin-only)
	ideas := r.Group("/ideas")
	ideas.Use(authDelivery.AuthMiddleware(authUc))
	{
		ideas.GET("", ideaHandler.List)
		ideas.POST("", authDelivery.RequireAdmin(), ideaHandler.Create)
		ideas.GET("/:ideaId", ideaHandler.Get)
		ideas.PUT("/:ideaId", ideaHandler.Update)
		ideas.DELETE("/:ideaId", ideaHandler.Remove)
	}
}
