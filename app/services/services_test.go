package services

import (
	"context"
	"testing"

	"github.com/shopmk/go-backoffice/app/models/migrations"
	"github.com/shopmk/go-backoffice/app/repositories"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testEnv struct {
	db               *gorm.DB
	categoryRepo     repositories.CategoryRepositoryImpl
	manufacturerRepo repositories.ManufacturerRepositoryImpl
	productRepo      repositories.ProductRepositoryImpl
	userRepo         repositories.UserRepositoryImpl
	cartRepo         repositories.CartRepositoryImpl
	cartItemRepo     repositories.CartItemRepositoryImpl
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to open test database")

	require.NoError(t, migrations.AutoMigrate(db), "failed to migrate test database")

	return &testEnv{
		db:               db,
		categoryRepo:     repositories.NewCategoryRepository(db),
		manufacturerRepo: repositories.NewManufacturerRepository(db),
		productRepo:      repositories.NewProductRepository(db),
		userRepo:         repositories.NewUserRepository(db),
		cartRepo:         repositories.NewCartRepository(db),
		cartItemRepo:     repositories.NewCartItemRepository(db),
	}
}

func (e *testEnv) categoryService() *CategoryService {
	return NewCategoryService(e.categoryRepo)
}

func (e *testEnv) manufacturerService() *ManufacturerService {
	return NewManufacturerService(e.manufacturerRepo)
}

func (e *testEnv) productService() *ProductService {
	return NewProductService(e.productRepo, e.categoryRepo, e.manufacturerRepo)
}

func (e *testEnv) authService() *AuthService {
	return NewAuthService(e.userRepo, e.cartRepo)
}

func (e *testEnv) cartService() *CartService {
	return NewCartService(e.cartRepo, e.cartItemRepo, e.productRepo)
}

func testContext() context.Context {
	return context.Background()
}
