package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopmk/go-backoffice/app/models"
	"github.com/shopmk/go-backoffice/app/repositories"
)

type CategoryService struct {
	categoryRepo repositories.CategoryRepositoryImpl
}

func NewCategoryService(categoryRepo repositories.CategoryRepositoryImpl) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

func (s *CategoryService) FindAll(ctx context.Context) ([]models.Category, error) {
	return s.categoryRepo.GetAll(ctx)
}

func (s *CategoryService) FindByID(ctx context.Context, id string) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("category %s: %w", id, ErrCategoryNotFound)
	}
	return category, nil
}

// Create replaces any category that already carries the same name. The old
// row is removed, so creation is idempotent by name rather than additive.
func (s *CategoryService) Create(ctx context.Context, name, description string) (*models.Category, error) {
	if name == "" {
		return nil, fmt.Errorf("category name is required: %w", ErrInvalidArguments)
	}

	if err := s.categoryRepo.DeleteByName(ctx, name); err != nil {
		return nil, fmt.Errorf("failed to replace category %q: %w", name, err)
	}

	category := &models.Category{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category %q: %w", name, err)
	}
	return category, nil
}

func (s *CategoryService) Update(ctx context.Context, id, name, description string) (*models.Category, error) {
	if name == "" {
		return nil, fmt.Errorf("category name is required: %w", ErrInvalidArguments)
	}

	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("category %s: %w", id, ErrCategoryNotFound)
	}

	category.Name = name
	category.Description = description
	category.UpdatedAt = time.Now()

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category %s: %w", id, err)
	}
	return category, nil
}

// Delete and DeleteByID are no-ops when nothing matches.
func (s *CategoryService) Delete(ctx context.Context, name string) error {
	return s.categoryRepo.DeleteByName(ctx, name)
}

func (s *CategoryService) DeleteByID(ctx context.Context, id string) error {
	return s.categoryRepo.DeleteByID(ctx, id)
}

func (s *CategoryService) Search(ctx context.Context, text string) ([]models.Category, error) {
	return s.categoryRepo.Search(ctx, text)
}
