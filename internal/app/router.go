// Package app provides router configuration.
package app

import (
	"github.com/guttosm/boxpack-service/config"
	"github.com/guttosm/boxpack-service/internal/http"
	"github.com/guttosm/boxpack-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	var boxSetsService service.BoxSetsService
	var authService service.AuthService

	healthHandler := http.NewHealthHandler()

	if dbComponents != nil {
		boxSetsService = service.NewBoxSetsService(dbComponents.BoxSetsRepo)
		authService = dbComponents.AuthService

		if dbComponents.BoxSetsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_box_sets", dbComponents.BoxSetsCircuitBreaker)
		}
	}

	handler := http.NewHandler(services.Packing, boxSetsService)

	routerCfg := http.RouterConfig{
		RateLimit:      cfg.Server.RateLimit,
		RateWindow:     cfg.Server.RateWindow,
		EnableAuth:     cfg.Auth.Enabled,
		APIKeys:        cfg.Auth.APIKeys,
		CORSOrigins:    cfg.Server.CORSOrigins,
		SwaggerUser:    cfg.Server.SwaggerUser,
		SwaggerPass:    cfg.Server.SwaggerPass,
		BoxSetsService: boxSetsService,
		AuthService:    authService,
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
