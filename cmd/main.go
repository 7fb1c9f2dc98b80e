// Package main is the entry point for the boxpack-service application.
//
// @title           Box Packing Service API
// @version         1.0.0
// @description     API for three-dimensional bin packing of shipping orders.
//
//	Given items and candidate boxes the service returns which boxes to use and
//	the explicit 3D position and orientation of every packed item.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/boxpack-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 JWT access token as "Bearer <token>". Used when JWT authentication is enabled.
//
// @tag.name        Packing
// @tag.description Packing operations
//
// @tag.name        Boxes
// @tag.description Box catalog management
//
// @tag.name        Auth
// @tag.description Authentication and authorization endpoints
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/guttosm/boxpack-service/docs" // swagger docs

	"github.com/rs/zerolog/log"

	"github.com/guttosm/boxpack-service/config"
	"github.com/guttosm/boxpack-service/internal/app"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
