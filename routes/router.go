package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/gullyscore/gully/config"
	"github.com/gullyscore/gully/internal/auth"
	"github.com/gullyscore/gully/internal/roster"
	"github.com/gullyscore/gully/internal/scoring"
)

func SetupRoutes(db *gorm.DB, appConfig *config.Config) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default()) // allows all origins, GET/POST/PUT

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":    "gully",
			"docs":    "/swagger/index.html",
			"healthy": true,
		})
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("/api")
	auth.AuthRoutes(api, db, appConfig)
	roster.RosterRoutes(api, db, appConfig.JWT.Secret)
	scoring.ScoringRoutes(api, db, appConfig)

	return r
}
