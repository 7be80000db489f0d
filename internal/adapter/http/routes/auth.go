package routes

import (
	"paulocell_pdv/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addAuthRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/google", authHandler.LoginWithGoogle)
	}
}
