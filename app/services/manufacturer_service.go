package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopmk/go-backoffice/app/models"
	"github.com/shopmk/go-backoffice/app/repositories"
)

// ManufacturerService is a thin pass-through; the store enforces whatever it
// enforces and nothing more is validated here.
type ManufacturerService struct {
	manufacturerRepo repositories.ManufacturerRepositoryImpl
}

func NewManufacturerService(manufacturerRepo repositories.ManufacturerRepositoryImpl) *ManufacturerService {
	return &ManufacturerService{manufacturerRepo: manufacturerRepo}
}

func (s *ManufacturerService) FindAll(ctx context.Context) ([]models.Manufacturer, error) {
	return s.manufacturerRepo.GetAll(ctx)
}

func (s *ManufacturerService) FindByID(ctx context.Context, id string) (*models.Manufacturer, error) {
	manufacturer, err := s.manufacturerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if manufacturer == nil {
		return nil, fmt.Errorf("manufacturer %s: %w", id, ErrManufacturerNotFound)
	}
	return manufacturer, nil
}

func (s *ManufacturerService) Save(ctx context.Context, name, address string) (*models.Manufacturer, error) {
	manufacturer := &models.Manufacturer{
		ID:        uuid.New().String(),
		Name:      name,
		Address:   address,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.manufacturerRepo.Create(ctx, manufacturer); err != nil {
		return nil, fmt.Errorf("failed to save manufacturer %q: %w", name, err)
	}
	return manufacturer, nil
}

func (s *ManufacturerService) Update(ctx context.Context, id, name, address string) (*models.Manufacturer, error) {
	manufacturer, err := s.manufacturerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if manufacturer == nil {
		return nil, fmt.Errorf("manufacturer %s: %w", id, ErrManufacturerNotFound)
	}

	manufacturer.Name = name
	manufacturer.Address = address
	manufacturer.UpdatedAt = time.Now()

	if err := s.manufacturerRepo.Update(ctx, manufacturer); err != nil {
		return nil, fmt.Errorf("failed to update manufacturer %s: %w", id, err)
	}
	return manufacturer, nil
}

func (s *ManufacturerService) DeleteByID(ctx context.Context, id string) error {
	return s.manufacturerRepo.DeleteByID(ctx, id)
}

func (s *ManufacturerService) Exists(ctx context.Context, id string) (bool, error) {
	return s.manufacturerRepo.Exists(ctx, id)
}
