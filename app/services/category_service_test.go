package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryCreateReplacesSameName(t *testing.T) {
	env := setupTestEnv(t)
	svc := env.categoryService()
	ctx := testContext()

	first, err := svc.Create(ctx, "Sports", "old description")
	require.NoError(t, err)

	second, err := svc.Create(ctx, "Sports", "new description")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	all, err := svc.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1, "exactly one category with the name must remain")
	assert.Equal(t, "Sports", all[0].Name)
	assert.Equal(t, "new description", all[0].Description)
}

func TestCategoryCreateRequiresName(t *testing.T) {
	env := setupTestEnv(t)
	svc := env.categoryService()

	_, err := svc.Create(testContext(), "", "description")
	assert.ErrorIs(t, err, ErrInvalidArguments)
}

func TestCategoryUpdate(t *testing.T) {
	env := setupTestEnv(t)
	svc := env.categoryService()
	ctx := testContext()

	created, err := svc.Create(ctx, "Books", "Books category")
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, "Literature", "Everything printed")
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Literature", updated.Name)

	reloaded, err := svc.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Everything printed", reloaded.Description)
}

func TestCategoryUpdateNotFound(t *testing.T) {
	env := setupTestEnv(t)
	svc := env.categoryService()

	_, err := svc.Update(testContext(), "missing-id", "Name", "desc")
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestCategoryDeleteIsNoOpWhenAbsent(t *testing.T) {
	env := setupTestEnv(t)
	svc := env.categoryService()
	ctx := testContext()

	assert.NoError(t, svc.Delete(ctx, "no-such-name"))
	assert.NoError(t, svc.DeleteByID(ctx, "no-such-id"))
}

func TestCategoryDeleteByName(t *testing.T) {
	env := setupTestEnv(t)
	svc := env.categoryService()
	ctx := testContext()

	_, err := svc.Create(ctx, "Food", "Food category")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "Food"))

	all, err := svc.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCategorySearchMatchesNameOrDescription(t *testing.T) {
	env := setupTestEnv(t)
	svc := env.categoryService()
	ctx := testContext()

	_, err := svc.Create(ctx, "Sports", "balls and rackets")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "Books", "sports biographies included")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "Food", "groceries")
	require.NoError(t, err)

	results, err := svc.Search(ctx, "sports")
	require.NoError(t, err)

	names := make([]string, 0, len(results))
	for _, c := range results {
		names = append(names, c.Name)
	}
	assert.ElementsMatch(t, []string{"Sports", "Books"}, names)
}
