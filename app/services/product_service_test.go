package services

import (
	"context"
	"testing"

	"github.com/shopmk/go-backoffice/app/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type catalogFixture struct {
	sports     *models.Category
	books      *models.Category
	nike       *models.Manufacturer
	literatura *models.Manufacturer
}

func seedCatalog(t *testing.T, env *testEnv) catalogFixture {
	t.Helper()
	ctx := context.Background()

	sports, err := env.categoryService().Create(ctx, "Sports", "Sports category")
	require.NoError(t, err)
	books, err := env.categoryService().Create(ctx, "Books", "Books category")
	require.NoError(t, err)

	nike, err := env.manufacturerService().Save(ctx, "Nike", "USA")
	require.NoError(t, err)
	literatura, err := env.manufacturerService().Save(ctx, "Literatura", "MK")
	require.NoError(t, err)

	return catalogFixture{sports: sports, books: books, nike: nike, literatura: literatura}
}

func TestProductSave(t *testing.T) {
	env := setupTestEnv(t)
	fix := seedCatalog(t, env)
	svc := env.productService()
	ctx := testContext()

	product, err := svc.Save(ctx, "Ball", decimal.NewFromInt(10), 5, fix.sports.ID, fix.nike.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, product.ID)

	reloaded, err := svc.FindByName(ctx, "Ball")
	require.NoError(t, err)
	assert.Equal(t, fix.sports.ID, reloaded.CategoryID)
	assert.Equal(t, fix.nike.ID, reloaded.ManufacturerID)
	assert.True(t, decimal.NewFromInt(10).Equal(reloaded.Price))
}

func TestProductSaveDanglingReferences(t *testing.T) {
	env := setupTestEnv(t)
	fix := seedCatalog(t, env)
	svc := env.productService()
	ctx := testContext()

	_, err := svc.Save(ctx, "Ball", decimal.NewFromInt(10), 5, "missing-category", fix.nike.ID)
	assert.ErrorIs(t, err, ErrCategoryNotFound)

	_, err = svc.Save(ctx, "Ball", decimal.NewFromInt(10), 5, fix.sports.ID, "missing-manufacturer")
	assert.ErrorIs(t, err, ErrManufacturerNotFound)

	all, err := svc.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all, "a failed save must not persist anything")
}

func TestProductSaveRejectsNegativeValues(t *testing.T) {
	env := setupTestEnv(t)
	fix := seedCatalog(t, env)
	svc := env.productService()
	ctx := testContext()

	_, err := svc.Save(ctx, "Ball", decimal.NewFromInt(-1), 5, fix.sports.ID, fix.nike.ID)
	assert.ErrorIs(t, err, ErrInvalidArguments)

	_, err = svc.Save(ctx, "Ball", decimal.NewFromInt(1), -5, fix.sports.ID, fix.nike.ID)
	assert.ErrorIs(t, err, ErrInvalidArguments)

	_, err = svc.Save(ctx, "", decimal.NewFromInt(1), 5, fix.sports.ID, fix.nike.ID)
	assert.ErrorIs(t, err, ErrInvalidArguments)
}

func TestProductUpdate(t *testing.T) {
	env := setupTestEnv(t)
	fix := seedCatalog(t, env)
	svc := env.productService()
	ctx := testContext()

	product, err := svc.Save(ctx, "Ball", decimal.NewFromInt(10), 5, fix.sports.ID, fix.nike.ID)
	require.NoError(t, err)

	updated, err := svc.Update(ctx, product.ID, "Football", decimal.NewFromInt(12), 7, fix.books.ID, fix.literatura.ID)
	require.NoError(t, err)
	assert.Equal(t, "Football", updated.Name)
	assert.Equal(t, 7, updated.Quantity)
	assert.Equal(t, fix.books.ID, updated.CategoryID)
	assert.Equal(t, fix.literatura.ID, updated.ManufacturerID)
}

func TestProductUpdateNotFound(t *testing.T) {
	env := setupTestEnv(t)
	fix := seedCatalog(t, env)
	svc := env.productService()

	_, err := svc.Update(testContext(), "missing-id", "Ball", decimal.NewFromInt(10), 5, fix.sports.ID, fix.nike.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductUpdateDanglingReferenceLeavesProductUntouched(t *testing.T) {
	env := setupTestEnv(t)
	fix := seedCatalog(t, env)
	svc := env.productService()
	ctx := testContext()

	product, err := svc.Save(ctx, "Ball", decimal.NewFromInt(10), 5, fix.sports.ID, fix.nike.ID)
	require.NoError(t, err)

	_, err = svc.Update(ctx, product.ID, "Football", decimal.NewFromInt(12), 7, "missing-category", fix.nike.ID)
	assert.ErrorIs(t, err, ErrCategoryNotFound)

	reloaded, err := svc.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ball", reloaded.Name)
	assert.Equal(t, 5, reloaded.Quantity)
}

func TestProductDeleteIsNoOpWhenAbsent(t *testing.T) {
	env := setupTestEnv(t)
	svc := env.productService()

	assert.NoError(t, svc.DeleteByID(testContext(), "missing-id"))
}

func TestProductFindByNameNotFound(t *testing.T) {
	env := setupTestEnv(t)
	svc := env.productService()

	_, err := svc.FindByName(testContext(), "Ghost")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductFindPageNameFragment(t *testing.T) {
	env := setupTestEnv(t)
	fix := seedCatalog(t, env)
	svc := env.productService()
	ctx := testContext()

	_, err := svc.Save(ctx, "Ball", decimal.NewFromInt(10), 1, fix.sports.ID, fix.nike.ID)
	require.NoError(t, err)
	_, err = svc.Save(ctx, "Book", decimal.NewFromInt(5), 1, fix.books.ID, fix.literatura.ID)
	require.NoError(t, err)

	page, err := svc.FindPage(ctx, "Ba", "", "", 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Products, 1)
	assert.Equal(t, "Ball", page.Products[0].Name)
	assert.Equal(t, int64(1), page.TotalItems)
}

func TestProductFindPageCombinesCriteriaWithAnd(t *testing.T) {
	env := setupTestEnv(t)
	fix := seedCatalog(t, env)
	svc := env.productService()
	ctx := testContext()

	_, err := svc.Save(ctx, "Ball", decimal.NewFromInt(10), 1, fix.sports.ID, fix.nike.ID)
	require.NoError(t, err)
	_, err = svc.Save(ctx, "Basket", decimal.NewFromInt(8), 1, fix.sports.ID, fix.literatura.ID)
	require.NoError(t, err)
	_, err = svc.Save(ctx, "Book", decimal.NewFromInt(5), 1, fix.books.ID, fix.literatura.ID)
	require.NoError(t, err)

	page, err := svc.FindPage(ctx, "Ba", fix.sports.ID, fix.nike.ID, 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Products, 1)
	assert.Equal(t, "Ball", page.Products[0].Name)

	// Same name fragment without the manufacturer constraint widens the result.
	page, err = svc.FindPage(ctx, "Ba", fix.sports.ID, "", 1, 10)
	require.NoError(t, err)
	assert.Len(t, page.Products, 2)
}

func TestProductFindPageSortsByNameDescending(t *testing.T) {
	env := setupTestEnv(t)
	fix := seedCatalog(t, env)
	svc := env.productService()
	ctx := testContext()

	for _, name := range []string{"Apple", "Cherry", "Banana"} {
		_, err := svc.Save(ctx, name, decimal.NewFromInt(1), 1, fix.sports.ID, fix.nike.ID)
		require.NoError(t, err)
	}

	page, err := svc.FindPage(ctx, "", "", "", 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Products, 3)
	assert.Equal(t, "Cherry", page.Products[0].Name)
	assert.Equal(t, "Banana", page.Products[1].Name)
	assert.Equal(t, "Apple", page.Products[2].Name)
}

func TestProductFindPagePaging(t *testing.T) {
	env := setupTestEnv(t)
	fix := seedCatalog(t, env)
	svc := env.productService()
	ctx := testContext()

	names := []string{"Alpha", "Bravo", "Charlie", "Delta", "Echo"}
	for _, name := range names {
		_, err := svc.Save(ctx, name, decimal.NewFromInt(1), 1, fix.sports.ID, fix.nike.ID)
		require.NoError(t, err)
	}

	first, err := svc.FindPage(ctx, "", "", "", 1, 2)
	require.NoError(t, err)
	require.Len(t, first.Products, 2)
	assert.Equal(t, int64(5), first.TotalItems)
	assert.Equal(t, 3, first.TotalPages)
	assert.Equal(t, "Echo", first.Products[0].Name)

	last, err := svc.FindPage(ctx, "", "", "", 3, 2)
	require.NoError(t, err)
	require.Len(t, last.Products, 1)
	assert.Equal(t, "Alpha", last.Products[0].Name)
}

func TestProductFindPageEmptyResultIsNotAnError(t *testing.T) {
	env := setupTestEnv(t)
	seedCatalog(t, env)
	svc := env.productService()

	page, err := svc.FindPage(testContext(), "nothing-matches", "", "", 1, 10)
	require.NoError(t, err)
	assert.Empty(t, page.Products)
	assert.Equal(t, int64(0), page.TotalItems)
}

func TestProductFindPageRejectsBadPaging(t *testing.T) {
	env := setupTestEnv(t)
	svc := env.productService()
	ctx := testContext()

	_, err := svc.FindPage(ctx, "", "", "", 1, 0)
	assert.ErrorIs(t, err, ErrInvalidArguments)

	_, err = svc.FindPage(ctx, "", "", "", 0, 10)
	assert.ErrorIs(t, err, ErrInvalidArguments)
}
