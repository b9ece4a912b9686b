package repositories

import (
	"context"

	"github.com/shopmk/go-backoffice/app/models"
	"gorm.io/gorm"
)

type ProductRepositoryImpl interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id string) (*models.Product, error)
	GetByName(ctx context.Context, name string) (*models.Product, error)
	GetAll(ctx context.Context) ([]models.Product, error)
	FindPage(ctx context.Context, name, categoryID, manufacturerID string, limit, offset int) ([]models.Product, int64, error)
	Update(ctx context.Context, product *models.Product) error
	DeleteByID(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepositoryImpl {
	return &productRepository{db}
}

func (p *productRepository) Create(ctx context.Context, product *models.Product) error {
	return p.db.WithContext(ctx).Create(product).Error
}

func (p *productRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := p.db.WithContext(ctx).
		Preload("Category").
		Preload("Manufacturer").
		First(&product, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (p *productRepository) GetByName(ctx context.Context, name string) (*models.Product, error) {
	var product models.Product
	err := p.db.WithContext(ctx).
		Preload("Category").
		Preload("Manufacturer").
		First(&product, "name = ?", name).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (p *productRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := p.db.WithContext(ctx).
		Preload("Category").
		Preload("Manufacturer").
		Order("name DESC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// FindPage composes the optional filters into one conjunctive query. A blank
// criterion adds no condition at all, so every combination of present/absent
// filters runs through the same path.
func (p *productRepository) FindPage(ctx context.Context, name, categoryID, manufacturerID string, limit, offset int) ([]models.Product, int64, error) {
	var total int64
	if err := p.filtered(ctx, name, categoryID, manufacturerID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []models.Product
	err := p.filtered(ctx, name, categoryID, manufacturerID).
		Preload("Category").
		Preload("Manufacturer").
		Order("name DESC").
		Limit(limit).
		Offset(offset).
		Find(&products).Error

	return products, total, err
}

func (p *productRepository) filtered(ctx context.Context, name, categoryID, manufacturerID string) *gorm.DB {
	query := p.db.WithContext(ctx).Model(&models.Product{})
	if name != "" {
		query = query.Where("name LIKE ?", "%"+name+"%")
	}
	if categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}
	if manufacturerID != "" {
		query = query.Where("manufacturer_id = ?", manufacturerID)
	}
	return query
}

func (p *productRepository) Update(ctx context.Context, product *models.Product) error {
	return p.db.WithContext(ctx).Save(product).Error
}

func (p *productRepository) DeleteByID(ctx context.Context, id string) error {
	return p.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id).Error
}

func (p *productRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := p.db.WithContext(ctx).Model(&models.Product{}).Count(&count).Error
	return count, err
}
