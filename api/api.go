package main

import (
	"leaguedash/api/modules"
	"leaguedash/api/routes"
	"leaguedash/pkg/config"
	"log"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// Load the environment variables if not running on Docker.
	if os.Getenv("ENVIRONMENT") != "docker" {
		err := godotenv.Load()
		if err != nil {
			log.Fatal("Error loading .env file")
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Couldn't initialize the configuration: %v", err)
	}

	// Create a module with all necessary handlers.
	module, err := modules.NewModule(cfg)
	if err != nil {
		log.Fatalf("Couldn't initialize the module: %v", err)
	}
	defer module.Close()

	// Create a new router with the routes setup.
	router := routes.NewRouter(module.Router)
	router.SetupRoutes(
		module.RosterHandler,
		module.MatchHandler,
		module.PlayerHandler,
	)

	// Start the server.
	if err := router.Run(":8080"); err != nil {
		log.Fatalf("Couldn't start the server: %v", err)
	}
}
