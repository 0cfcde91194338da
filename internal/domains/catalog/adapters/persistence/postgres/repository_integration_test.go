//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/storegate/backoffice/internal/domains/catalog/domain"
	"github.com/storegate/backoffice/internal/domains/catalog/ports"
	"github.com/storegate/backoffice/internal/platform/migrations"
)

func setupCatalogPostgresContainer(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("backoffice_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = migrations.Run(db)
	require.NoError(t, err)

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		pgContainer.Terminate(ctx)
	}

	return db, cleanup
}

func TestRepository_SaveAndGetByID(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupCatalogPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	item, err := domain.NewItem("Old Boy", domain.KindMovie, 15000, 3)
	require.NoError(t, err)
	item.Director = "Park Chan-wook"
	item.Actors = []string{"Choi Min-sik", "Yoo Ji-tae"}

	saved, err := repo.Save(ctx, item)
	require.NoError(t, err)
	assert.Positive(t, saved.ID)

	fetched, err := repo.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Old Boy", fetched.Name)
	assert.Equal(t, domain.KindMovie, fetched.Kind)
	assert.Equal(t, []string{"Choi Min-sik", "Yoo Ji-tae"}, fetched.Actors)
}

func TestRepository_SaveUpdatesStock(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupCatalogPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	item, err := domain.NewItem("Book A", domain.KindBook, 10000, 10)
	require.NoError(t, err)
	saved, err := repo.Save(ctx, item)
	require.NoError(t, err)

	require.NoError(t, saved.DecreaseStock(2))
	updated, err := repo.Save(ctx, saved)
	require.NoError(t, err)
	assert.Equal(t, int64(8), updated.StockQuantity)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupCatalogPostgresContainer(t)
	defer cleanup()

	_, err := NewRepository(db).GetByID(context.Background(), 4242)
	require.ErrorIs(t, err, ports.ErrNotFound)
}
