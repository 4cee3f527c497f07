package api

import (
	"github.com/gin-gonic/gin"

	authUsecase "github.com/foysalit/codementorx-idea-pool/internal/auth/usecase"
	ideaUsecase "github.com/foysalit/codementorx-idea-pool/internal/idea/usecase"
)

type Handler struct {
	authUsecase authUsecase.AuthUsecase
	ideaUsecase ideaUsecase.IdeaUsecase
}

func NewHandler(authUc authUsecase.AuthUsecase, ideaUc ideaUsecase.IdeaUsecase) *Handler {
	return &Handler{
		authUsecase: authUc,
		ideaUsecase: ideaUc,
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.authUsecase, h.ideaUsecase)

	return r.Run(addr)
}
