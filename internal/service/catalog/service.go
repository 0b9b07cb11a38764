package catalog

import (
	"context"

	"github.com/podomus/clinic-api/internal/model"
	"github.com/podomus/clinic-api/internal/repository"
	"github.com/podomus/clinic-api/pkg/validator"
)

type CatalogService interface {
	CreateService(ctx context.Context, input *model.CreateServiceInput) (*model.Service, error)
	GetServices(ctx context.Context) ([]*model.Service, error)
	GetActiveServices(ctx context.Context) ([]*model.Service, error)
}

type Service struct {
	repo repository.ServiceRepository
}

func NewService(repo repository.ServiceRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateService(ctx context.Context, input *model.CreateServiceInput) (*model.Service, error) {
	if err := validator.Validate(input); err != nil {
		return nil, err
	}

	svc := &model.Service{
		Name:            input.Name,
		Slug:            input.Slug,
		Description:     input.Description,
		DurationMinutes: input.DurationMinutes,
		Price:           input.Price,
		IsActive:        input.Active(),
	}

	if err := s.repo.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *Service) GetServices(ctx context.Context) ([]*model.Service, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetActiveServices(ctx context.Context) ([]*model.Service, error) {
	return s.repo.ListActive(ctx)
}
