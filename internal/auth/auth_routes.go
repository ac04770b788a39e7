package auth

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gullyscore/gully/config"
)

// AuthRoutes sets up the public auth routes.
func AuthRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	authRepo := NewGormAuthRepository(db)
	authController := NewAuthController(authRepo, appConfig)

	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/register", authController.Register)
		authRoutes.POST("/login", authController.Login)
	}
}
