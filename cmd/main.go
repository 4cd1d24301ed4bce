// Package main is the entry point for the pantry-service application.
//
// @title           Pantry Service API
// @version         1.0.0
// @description     API for completing recipes against a pantry's batch inventory.
//
//	The service parses free-text ingredient lines, matches them against
//	inventory products, allocates batches first-expired-first-out, and
//	applies the resulting consumption atomically.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/pantry-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @tag.name        Recipes
// @tag.description Recipe completion and availability operations
//
// @tag.name        Inventory
// @tag.description Pantry batch management endpoints
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/guttosm/pantry-service/docs" // swagger docs

	"github.com/guttosm/pantry-service/config"
	"github.com/guttosm/pantry-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
