package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopmk/go-backoffice/app/models"
	"github.com/shopmk/go-backoffice/app/repositories"
	"github.com/shopmk/go-backoffice/app/utils/pagination"
	"github.com/shopspring/decimal"
)

type ProductService struct {
	productRepo      repositories.ProductRepositoryImpl
	categoryRepo     repositories.CategoryRepositoryImpl
	manufacturerRepo repositories.ManufacturerRepositoryImpl
}

func NewProductService(productRepo repositories.ProductRepositoryImpl, categoryRepo repositories.CategoryRepositoryImpl, manufacturerRepo repositories.ManufacturerRepositoryImpl) *ProductService {
	return &ProductService{
		productRepo:      productRepo,
		categoryRepo:     categoryRepo,
		manufacturerRepo: manufacturerRepo,
	}
}

// ProductPage is one page of filtered products plus its paging metadata.
type ProductPage struct {
	Products []models.Product
	pagination.Pagination
}

func (s *ProductService) FindAll(ctx context.Context) ([]models.Product, error) {
	return s.productRepo.GetAll(ctx)
}

func (s *ProductService) FindByID(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("product %s: %w", id, ErrProductNotFound)
	}
	return product, nil
}

func (s *ProductService) FindByName(ctx context.Context, name string) (*models.Product, error) {
	product, err := s.productRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("product %q: %w", name, ErrProductNotFound)
	}
	return product, nil
}

// FindPage returns the page of products matching the optional name fragment,
// category and manufacturer, sorted by name descending. Absent criteria
// impose no constraint. An empty page is a valid outcome, not an error.
func (s *ProductService) FindPage(ctx context.Context, name, categoryID, manufacturerID string, page, pageSize int) (*ProductPage, error) {
	if pageSize <= 0 {
		return nil, fmt.Errorf("page size must be positive, got %d: %w", pageSize, ErrInvalidArguments)
	}
	if page < 1 {
		return nil, fmt.Errorf("page number is 1-based, got %d: %w", page, ErrInvalidArguments)
	}

	products, total, err := s.productRepo.FindPage(ctx, name, categoryID, manufacturerID, pageSize, pagination.Offset(page, pageSize))
	if err != nil {
		return nil, fmt.Errorf("failed to query product page: %w", err)
	}

	return &ProductPage{
		Products:   products,
		Pagination: pagination.New(page, pageSize, total),
	}, nil
}

func (s *ProductService) Save(ctx context.Context, name string, price decimal.Decimal, quantity int, categoryID, manufacturerID string) (*models.Product, error) {
	if err := validateProductFields(name, price, quantity); err != nil {
		return nil, err
	}

	category, manufacturer, err := s.resolveRefs(ctx, categoryID, manufacturerID)
	if err != nil {
		return nil, err
	}

	product := &models.Product{
		ID:             uuid.New().String(),
		Name:           name,
		Price:          price,
		Quantity:       quantity,
		CategoryID:     category.ID,
		ManufacturerID: manufacturer.ID,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to save product %q: %w", name, err)
	}
	return product, nil
}

// Update resolves the product before touching anything, then re-resolves both
// references and overwrites every mutable field.
func (s *ProductService) Update(ctx context.Context, id, name string, price decimal.Decimal, quantity int, categoryID, manufacturerID string) (*models.Product, error) {
	if err := validateProductFields(name, price, quantity); err != nil {
		return nil, err
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("product %s: %w", id, ErrProductNotFound)
	}

	category, manufacturer, err := s.resolveRefs(ctx, categoryID, manufacturerID)
	if err != nil {
		return nil, err
	}

	product.Name = name
	product.Price = price
	product.Quantity = quantity
	product.CategoryID = category.ID
	product.Category = *category
	product.ManufacturerID = manufacturer.ID
	product.Manufacturer = *manufacturer
	product.UpdatedAt = time.Now()

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product %s: %w", id, err)
	}
	return product, nil
}

func (s *ProductService) DeleteByID(ctx context.Context, id string) error {
	return s.productRepo.DeleteByID(ctx, id)
}

func (s *ProductService) resolveRefs(ctx context.Context, categoryID, manufacturerID string) (*models.Category, *models.Manufacturer, error) {
	category, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, nil, err
	}
	if category == nil {
		return nil, nil, fmt.Errorf("category %s: %w", categoryID, ErrCategoryNotFound)
	}

	manufacturer, err := s.manufacturerRepo.GetByID(ctx, manufacturerID)
	if err != nil {
		return nil, nil, err
	}
	if manufacturer == nil {
		return nil, nil, fmt.Errorf("manufacturer %s: %w", manufacturerID, ErrManufacturerNotFound)
	}

	return category, manufacturer, nil
}

func validateProductFields(name string, price decimal.Decimal, quantity int) error {
	if name == "" {
		return fmt.Errorf("product name is required: %w", ErrInvalidArguments)
	}
	if price.IsNegative() {
		return fmt.Errorf("price must not be negative: %w", ErrInvalidArguments)
	}
	if quantity < 0 {
		return fmt.Errorf("quantity must not be negative: %w", ErrInvalidArguments)
	}
	return nil
}
