package main

import (
	"log"

	"github.com/gullyscore/gully/config"
	_ "github.com/gullyscore/gully/docs"
	"github.com/gullyscore/gully/internal/auth"
	"github.com/gullyscore/gully/internal/roster"
	"github.com/gullyscore/gully/internal/scoring"
	"github.com/gullyscore/gully/routes"
)

// @title Gully Scoring API
// @version 1.0
// @description Ball-by-ball cricket match scoring server.
// @host localhost:8090
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	err := config.DB.AutoMigrate(
		&auth.User{},
		&roster.Team{}, &roster.Player{},
		&scoring.Match{}, &scoring.Innings{}, &scoring.Delivery{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("AutoMigrate successful")

	r := routes.SetupRoutes(config.DB, cfg)

	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
