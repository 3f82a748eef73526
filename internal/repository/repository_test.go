package repository

import (
	"context"
	"fmt"
	"testing"

	"inventory-api/internal/model"
	"inventory-api/pkg/config"
	"inventory-api/pkg/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(config.DatabaseConfig{Driver: "sqlite", DSN: ":memory:", LogLevel: "silent"})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func seedProducts(t *testing.T, repo ProductRepository, n int) []model.Product {
	t.Helper()
	products := make([]model.Product, 0, n)
	for i := 0; i < n; i++ {
		p := model.Product{Name: fmt.Sprintf("Widget %d", i), Type: "tool", SKU: fmt.Sprintf("W-%d", i), Quantity: i, Price: 1.5}
		require.NoError(t, repo.Create(context.Background(), &p))
		products = append(products, p)
	}
	return products
}

func TestProductRepo_CreateAndFindBySKU(t *testing.T) {
	repo := NewProductRepo(newTestDB(t))
	ctx := context.Background()

	p := &model.Product{Name: "Widget", Type: "tool", SKU: "W-1", Quantity: 5, Price: 9.99}
	require.NoError(t, repo.Create(ctx, p))
	assert.NotEqual(t, uuid.Nil, p.ID)

	found, err := repo.FindBySKU(ctx, "W-1")
	require.NoError(t, err)
	assert.Equal(t, p.ID, found.ID)
	assert.Equal(t, 9.99, found.Price)

	_, err = repo.FindBySKU(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProductRepo_UniqueSKU(t *testing.T) {
	repo := NewProductRepo(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.Product{Name: "A", Type: "t", SKU: "DUP"}))
	err := repo.Create(ctx, &model.Product{Name: "B", Type: "t", SKU: "DUP"})
	assert.ErrorIs(t, err, ErrDuplicate)

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

func TestProductRepo_FindPage(t *testing.T) {
	repo := NewProductRepo(newTestDB(t))
	ctx := context.Background()
	seeded := seedProducts(t, repo, 5)

	page, err := repo.FindPage(ctx, 0, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, seeded[0].SKU, page[0].SKU)
	assert.Equal(t, seeded[1].SKU, page[1].SKU)

	page, err = repo.FindPage(ctx, 4, 2)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, seeded[4].SKU, page[0].SKU)

	page, err = repo.FindPage(ctx, 10, 2)
	require.NoError(t, err)
	assert.Empty(t, page)

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
}

func TestProductRepo_UpdateQuantity(t *testing.T) {
	repo := NewProductRepo(newTestDB(t))
	ctx := context.Background()
	seeded := seedProducts(t, repo, 1)

	updated, err := repo.UpdateQuantity(ctx, seeded[0].ID, 42, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 42, updated.Quantity)
	assert.Equal(t, "user-1", updated.UpdatedBy)
	assert.Equal(t, seeded[0].SKU, updated.SKU)

	_, err = repo.UpdateQuantity(ctx, uuid.New(), 1, "user-1")
	assert.ErrorIs(t, err, ErrNotFound)

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

func TestUserRepo(t *testing.T) {
	repo := NewUserRepo(newTestDB(t))
	ctx := context.Background()

	u := &model.User{Username: "alice"}
	require.NoError(t, u.SetPassword("pw123"))
	require.NoError(t, repo.Create(ctx, u))

	dup := &model.User{Username: "alice", Password: "x"}
	assert.ErrorIs(t, repo.Create(ctx, dup), ErrDuplicate)

	found, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)
	assert.True(t, found.CheckPassword("pw123"))

	_, err = repo.FindByUsername(ctx, "bob")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, found.SetPassword("new-pw"))
	require.NoError(t, repo.UpdatePassword(ctx, found.ID, found.Password))
	reloaded, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, reloaded.CheckPassword("new-pw"))

	assert.ErrorIs(t, repo.UpdatePassword(ctx, uuid.New(), "hash"), ErrNotFound)
}
