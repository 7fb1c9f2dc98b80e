// Package app provides service initialization.
package app

import (
	"github.com/guttosm/boxpack-service/config"
	"github.com/guttosm/boxpack-service/internal/domain/model"
	"github.com/guttosm/boxpack-service/internal/logger"
	"github.com/guttosm/boxpack-service/internal/service"
)

// ServiceComponents holds business service components.
type ServiceComponents struct {
	Packing service.PackingService
}

// InitializeServices initializes the packing service from configuration.
func InitializeServices(cfg config.PackingConfig) *ServiceComponents {
	opts := []service.Option{
		service.WithLogger(logger.PackerLogger()),
	}

	if cfg.CacheSize > 0 {
		opts = append(opts, service.WithCache(cfg.CacheSize, cfg.CacheTTL))
	}
	if cfg.LookAheadItems > 0 {
		opts = append(opts, service.WithLookAhead(cfg.LookAheadItems))
	}
	if cfg.LegacySortOrder {
		opts = append(opts, service.WithSortKey(model.SortKeyLegacy))
	}

	return &ServiceComponents{
		Packing: service.NewPackingService(opts...),
	}
}
