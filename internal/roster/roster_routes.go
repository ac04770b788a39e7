package roster

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	mw "github.com/gullyscore/gully/internal/middleware"
)

// RosterRoutes sets up all team/player routes.
func RosterRoutes(router *gin.RouterGroup, db *gorm.DB, jwtSecret string) {
	rosterRepo := NewGormRosterRepository(db)
	rosterController := NewRosterController(rosterRepo)

	teamRoutes := router.Group("/teams")
	{
		teamRoutes.GET("", rosterController.GetTeams)
		teamRoutes.GET("/:id", rosterController.GetTeamByID)
	}

	authRoutes := router.Group("/teams")
	authRoutes.Use(mw.AuthMiddleware(jwtSecret, db))
	{
		authRoutes.POST("", rosterController.CreateTeam)
		authRoutes.POST("/:id/players", rosterController.AddPlayer)
		authRoutes.DELETE("/:id", rosterController.DeleteTeam)
	}
}
