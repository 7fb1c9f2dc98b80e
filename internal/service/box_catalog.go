package service

import (
	"context"
	"errors"

	"github.com/guttosm/boxpack-service/internal/domain/model"
	"github.com/guttosm/boxpack-service/internal/repository"
)

// ErrRepositoryNotConfigured is returned when the backing repository is not
// configured (the service runs without a database).
var ErrRepositoryNotConfigured = errors.New("repository not configured")

// BoxSetsService provides box catalog operations.
type BoxSetsService interface {
	GetActive(ctx context.Context) (*repository.BoxSetConfig, error)
	Create(ctx context.Context, boxes []repository.BoxEntry, createdBy string) (*repository.BoxSetConfig, error)
	List(ctx context.Context, limit int) ([]repository.BoxSetConfig, error)
}

// BoxSetsServiceImpl implements BoxSetsService.
type BoxSetsServiceImpl struct {
	boxSetsRepo repository.BoxSetsRepositoryInterface
}

// NewBoxSetsService creates a new box catalog service.
func NewBoxSetsService(boxSetsRepo repository.BoxSetsRepositoryInterface) BoxSetsService {
	return &BoxSetsServiceImpl{
		boxSetsRepo: boxSetsRepo,
	}
}

func (s *BoxSetsServiceImpl) GetActive(ctx context.Context) (*repository.BoxSetConfig, error) {
	if s.boxSetsRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.boxSetsRepo.GetActive(ctx)
}

func (s *BoxSetsServiceImpl) Create(ctx context.Context, boxes []repository.BoxEntry, createdBy string) (*repository.BoxSetConfig, error) {
	if s.boxSetsRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.boxSetsRepo.Create(ctx, boxes, createdBy)
}

func (s *BoxSetsServiceImpl) List(ctx context.Context, limit int) ([]repository.BoxSetConfig, error) {
	if s.boxSetsRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.boxSetsRepo.List(ctx, limit)
}

// BoxesFromConfig converts a stored catalog into domain boxes for packing.
func BoxesFromConfig(config *repository.BoxSetConfig) []*model.Box {
	if config == nil {
		return nil
	}
	boxes := make([]*model.Box, 0, len(config.Boxes))
	for _, entry := range config.Boxes {
		if entry.Quantity != nil {
			boxes = append(boxes, model.NewBoxWithSupply(entry.Reference, entry.InnerWidth, entry.InnerLength, entry.InnerDepth, entry.EmptyWeight, entry.MaxWeight, *entry.Quantity))
			continue
		}
		boxes = append(boxes, model.NewBox(entry.Reference, entry.InnerWidth, entry.InnerLength, entry.InnerDepth, entry.EmptyWeight, entry.MaxWeight))
	}
	return boxes
}
