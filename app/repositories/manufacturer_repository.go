package repositories

import (
	"context"

	"github.com/shopmk/go-backoffice/app/models"
	"gorm.io/gorm"
)

type ManufacturerRepositoryImpl interface {
	Create(ctx context.Context, manufacturer *models.Manufacturer) error
	GetByID(ctx context.Context, id string) (*models.Manufacturer, error)
	GetAll(ctx context.Context) ([]models.Manufacturer, error)
	Update(ctx context.Context, manufacturer *models.Manufacturer) error
	DeleteByID(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type manufacturerRepository struct {
	db *gorm.DB
}

func NewManufacturerRepository(db *gorm.DB) ManufacturerRepositoryImpl {
	return &manufacturerRepository{db: db}
}

func (r *manufacturerRepository) Create(ctx context.Context, manufacturer *models.Manufacturer) error {
	return r.db.WithContext(ctx).Create(manufacturer).Error
}

func (r *manufacturerRepository) GetByID(ctx context.Context, id string) (*models.Manufacturer, error) {
	var manufacturer models.Manufacturer
	err := r.db.WithContext(ctx).First(&manufacturer, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &manufacturer, nil
}

func (r *manufacturerRepository) GetAll(ctx context.Context) ([]models.Manufacturer, error) {
	var manufacturers []models.Manufacturer
	err := r.db.WithContext(ctx).Order("name ASC").Find(&manufacturers).Error
	if err != nil {
		return nil, err
	}
	return manufacturers, nil
}

func (r *manufacturerRepository) Update(ctx context.Context, manufacturer *models.Manufacturer) error {
	return r.db.WithContext(ctx).Save(manufacturer).Error
}

func (r *manufacturerRepository) DeleteByID(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Manufacturer{}, "id = ?", id).Error
}

func (r *manufacturerRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Manufacturer{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *manufacturerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Manufacturer{}).Count(&count).Error
	return count, err
}
