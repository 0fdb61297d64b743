package dao

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/kravdojo/gym-api/internal/db"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gormDB, err := db.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, InitTables(gormDB))

	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return gormDB
}

func testUser(email string) User {
	return User{
		Email:           email,
		Password:        "hash",
		Name:            "Ana",
		MembershipLevel: "beginner",
		Role:            "member",
		JoinDate:        time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
		IsActive:        true,
	}
}

func TestUserDAOInsertAssignsIDAndRejectsDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	d := NewUserDAO(newTestDB(t))

	created, err := d.Insert(ctx, testUser("ana@email.com"))
	require.NoError(t, err)
	assert.Len(t, created.ID, 36)

	_, err = d.Insert(ctx, testUser("ana@email.com"))
	assert.ErrorIs(t, err, ErrUserEmailExists)

	n, err := d.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestUserDAOFindAndDelete(t *testing.T) {
	ctx := context.Background()
	d := NewUserDAO(newTestDB(t))

	created, err := d.Insert(ctx, testUser("bruno@email.com"))
	require.NoError(t, err)

	byEmail, err := d.FindByEmail(ctx, "bruno@email.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	_, err = d.FindByEmail(ctx, "nobody@email.com")
	assert.ErrorIs(t, err, ErrUserNotFound)

	require.NoError(t, d.Delete(ctx, created.ID))
	_, err = d.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.ErrorIs(t, d.Delete(ctx, created.ID), ErrUserNotFound)
}

func TestUserDAOUpdatePersistsFalseFlags(t *testing.T) {
	ctx := context.Background()
	d := NewUserDAO(newTestDB(t))

	created, err := d.Insert(ctx, testUser("carla@email.com"))
	require.NoError(t, err)

	created.IsActive = false
	created.Belt = "Faixa Verde"
	_, err = d.Update(ctx, created)
	require.NoError(t, err)

	found, err := d.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, found.IsActive)
	assert.Equal(t, "Faixa Verde", found.Belt)
}

func TestUserDAOUpdateRejectsTakenEmail(t *testing.T) {
	ctx := context.Background()
	d := NewUserDAO(newTestDB(t))

	_, err := d.Insert(ctx, testUser("first@email.com"))
	require.NoError(t, err)
	second, err := d.Insert(ctx, testUser("second@email.com"))
	require.NoError(t, err)

	second.Email = "first@email.com"
	_, err = d.Update(ctx, second)
	assert.ErrorIs(t, err, ErrUserEmailExists)
}

func TestProductDAOUpsertKeepsPositionOrder(t *testing.T) {
	ctx := context.Background()
	d := NewProductDAO(newTestDB(t))

	gear := Category{ID: "2", Name: "Equipamentos", Slug: "equipamentos"}
	protection := ProductType{ID: "1", Name: "Proteção", Slug: "protecao"}
	products := []Product{
		{ID: "9", Position: 0, Name: "Caneleira", Description: "d", Price: 99.9, Category: gear, Type: protection, InStock: true, StockQuantity: 3, Sizes: []string{"M", "G"}},
		{ID: "3", Position: 1, Name: "Protetor", Description: "d", Price: 24.9, Category: gear, Type: protection, InStock: false},
	}
	require.NoError(t, d.Upsert(ctx, products))

	found, err := d.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "9", found[0].ID)
	assert.Equal(t, "3", found[1].ID)
	assert.Equal(t, "equipamentos", found[0].Category.Slug)
	assert.Equal(t, "protecao", found[0].Type.Slug)
	assert.Equal(t, []string{"M", "G"}, found[0].Sizes)
	assert.Nil(t, found[1].Sizes)

	products[1].InStock = true
	products[1].StockQuantity = 40
	require.NoError(t, d.Upsert(ctx, products))

	updated, err := d.FindByID(ctx, "3")
	require.NoError(t, err)
	assert.True(t, updated.InStock)
	assert.Equal(t, 40, updated.StockQuantity)

	n, err := d.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	_, err = d.FindByID(ctx, "404")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestPurchaseIntentDAOFindByStudentID(t *testing.T) {
	ctx := context.Background()
	d := NewPurchaseIntentDAO(newTestDB(t))
	base := time.Date(2026, time.October, 1, 9, 0, 0, 0, time.UTC)

	for i, intent := range []PurchaseIntent{
		{ID: "b", StudentID: "1", ProductID: "5", Quantity: 1, Status: "pending", CreatedAt: base.Add(time.Hour)},
		{ID: "a", StudentID: "1", ProductID: "8", Quantity: 2, Color: "Preto", Status: "pending", CreatedAt: base},
		{ID: "c", StudentID: "2", ProductID: "5", Quantity: 1, Status: "pending", CreatedAt: base},
	} {
		_, err := d.Insert(ctx, intent)
		require.NoError(t, err, i)
	}

	mine, err := d.FindByStudentID(ctx, "1")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "a", mine[0].ID)
	assert.Equal(t, "Preto", mine[0].Color)
	assert.Equal(t, "b", mine[1].ID)

	all, err := d.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
