package scoring

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gullyscore/gully/config"
	mw "github.com/gullyscore/gully/internal/middleware"
	"github.com/gullyscore/gully/internal/roster"
)

// ScoringRoutes sets up all match and scoring routes.
func ScoringRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	scoringRepo := NewGormScoringRepository(db)
	rosterRepo := roster.NewGormRosterRepository(db)
	scoringController := NewScoringController(scoringRepo, rosterRepo, appConfig)

	matchRoutes := router.Group("/matches")
	{
		matchRoutes.GET("", scoringController.GetMatches)
		matchRoutes.GET("/:id", scoringController.GetMatchByID)
		matchRoutes.GET("/:id/scorecard", scoringController.GetScorecard)
	}

	authRoutes := router.Group("/matches")
	authRoutes.Use(mw.AuthMiddleware(appConfig.JWT.Secret, db))
	{
		authRoutes.POST("", scoringController.CreateMatch)
		authRoutes.POST("/:id/toss", scoringController.RecordToss)
		authRoutes.POST("/:id/deliveries", scoringController.RecordDelivery)
		authRoutes.DELETE("/:id/deliveries/last", scoringController.UndoLastDelivery)
	}
}
