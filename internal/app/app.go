// Package app provides application initialization and dependency injection.
package app

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/boxpack-service/config"
	"github.com/guttosm/boxpack-service/internal/http"
)

// InitializeApp creates and wires all application dependencies and returns
// the configured router.
func InitializeApp(cfg config.Config) *gin.Engine {
	// Logger first; everything else logs through it.
	InitializeLogger()

	serviceComponents := InitializeServices(cfg.Packing)

	// MongoDB-backed components; nil when the database is disabled.
	dbComponents := InitializeDatabase(cfg.Database, cfg.Auth)

	routerComponents := InitializeRouter(serviceComponents, dbComponents, cfg)

	return http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config)
}
