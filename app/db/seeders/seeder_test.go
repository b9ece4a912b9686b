package seeders

import (
	"context"
	"testing"

	"github.com/shopmk/go-backoffice/app/models"
	"github.com/shopmk/go-backoffice/app/models/migrations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to open test database")
	require.NoError(t, migrations.AutoMigrate(db), "failed to migrate test database")
	return db
}

func count(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestDBSeedPopulatesEmptyStore(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, DBSeed(ctx, db))

	assert.Equal(t, int64(3), count(t, db, &models.Category{}))
	assert.Equal(t, int64(3), count(t, db, &models.Manufacturer{}))
	assert.Equal(t, int64(4), count(t, db, &models.User{}))
}

func TestDBSeedIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, DBSeed(ctx, db))
	require.NoError(t, DBSeed(ctx, db))

	assert.Equal(t, int64(3), count(t, db, &models.Category{}))
	assert.Equal(t, int64(3), count(t, db, &models.Manufacturer{}))
	assert.Equal(t, int64(4), count(t, db, &models.User{}))
}

func TestDBSeedSkipsNonEmptyTables(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, DBSeed(ctx, db))

	// The gate is table emptiness, not per-row existence: rows deleted by
	// hand are not restored on the next run.
	require.NoError(t, db.Delete(&models.Category{}, "name = ?", "Sports").Error)
	require.NoError(t, DBSeed(ctx, db))

	assert.Equal(t, int64(2), count(t, db, &models.Category{}))
}

func TestDBSeedHashesPasswords(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, DBSeed(context.Background(), db))

	var admin models.User
	require.NoError(t, db.Where("username = ?", "admin").First(&admin).Error)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("admin")))
}
