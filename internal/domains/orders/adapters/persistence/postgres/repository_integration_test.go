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

	catalogpostgres "github.com/storegate/backoffice/internal/domains/catalog/adapters/persistence/postgres"
	catalogdomain "github.com/storegate/backoffice/internal/domains/catalog/domain"
	memberspostgres "github.com/storegate/backoffice/internal/domains/members/adapters/persistence/postgres"
	membersdomain "github.com/storegate/backoffice/internal/domains/members/domain"
	ordersapp "github.com/storegate/backoffice/internal/domains/orders/application"
	"github.com/storegate/backoffice/internal/domains/orders/domain"
	"github.com/storegate/backoffice/internal/domains/orders/ports"
	"github.com/storegate/backoffice/internal/platform/migrations"
	platformpostgres "github.com/storegate/backoffice/internal/platform/postgres"
)

func setupOrdersPostgresContainer(t *testing.T) (*gorm.DB, func()) {
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

func seedMember(t *testing.T, db *gorm.DB, name string) *membersdomain.Member {
	t.Helper()
	member, err := membersdomain.NewMember(name, membersdomain.Address{City: "Seoul"})
	require.NoError(t, err)
	saved, err := memberspostgres.NewRepository(db).Save(context.Background(), member)
	require.NoError(t, err)
	return saved
}

func seedItem(t *testing.T, db *gorm.DB, name string, price, stock int64) *catalogdomain.Item {
	t.Helper()
	item, err := catalogdomain.NewItem(name, catalogdomain.KindBook, price, stock)
	require.NoError(t, err)
	saved, err := catalogpostgres.NewRepository(db).Save(context.Background(), item)
	require.NoError(t, err)
	return saved
}

func TestRepository_SaveCascadesLines(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOrdersPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	member := seedMember(t, db, "kim")
	item := seedItem(t, db, "Book A", 10000, 10)

	order, err := domain.NewOrder(member.ID, domain.OrderLine{ItemID: item.ID, OrderPrice: item.Price, Count: 2})
	require.NoError(t, err)

	saved, err := repo.Save(ctx, order)
	require.NoError(t, err)
	assert.Positive(t, saved.ID)
	require.Len(t, saved.Lines, 1)
	assert.Positive(t, saved.Lines[0].ID)
	assert.Equal(t, int64(20000), saved.TotalPrice())

	fetched, err := repo.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved.Lines, fetched.Lines)
	assert.Equal(t, domain.StatusOrdered, fetched.Status)
}

func TestRepository_SaveUpdatesStatusOnly(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOrdersPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	member := seedMember(t, db, "kim")
	item := seedItem(t, db, "Book A", 10000, 10)

	order, err := domain.NewOrder(member.ID, domain.OrderLine{ItemID: item.ID, OrderPrice: item.Price, Count: 2})
	require.NoError(t, err)
	saved, err := repo.Save(ctx, order)
	require.NoError(t, err)

	saved.Status = domain.StatusCanceled
	updated, err := repo.Save(ctx, saved)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCanceled, updated.Status)
	assert.Equal(t, saved.Lines, updated.Lines)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOrdersPostgresContainer(t)
	defer cleanup()

	_, err := NewRepository(db).GetByID(context.Background(), 4242)
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestRepository_Find_MemberNameAndStatus(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOrdersPostgresContainer(t)
	defer cleanup()

	ctx := context.Background()

	kim := seedMember(t, db, "kim")
	lee := seedMember(t, db, "lee")
	book := seedItem(t, db, "Book A", 10000, 10)
	album := seedItem(t, db, "Album B", 5000, 10)

	itemRepo := catalogpostgres.NewRepository(db)
	memberRepo := memberspostgres.NewRepository(db)
	svc := ordersapp.NewService(NewRepository(db), itemRepo, memberRepo, platformpostgres.NewTransactor(db))

	first, err := svc.PlaceOrder(ctx, kim.ID, book.ID, 1)
	require.NoError(t, err)
	second, err := svc.PlaceOrder(ctx, kim.ID, album.ID, 2)
	require.NoError(t, err)
	_, err = svc.PlaceOrder(ctx, lee.ID, book.ID, 1)
	require.NoError(t, err)
	require.NoError(t, svc.CancelOrder(ctx, first))

	byName, err := svc.FindOrders(ctx, domain.OrderSearch{MemberName: "ki"})
	require.NoError(t, err)
	require.Len(t, byName, 2)
	assert.ElementsMatch(t, []int64{first, second}, []int64{byName[0].ID, byName[1].ID})

	canceled, err := svc.FindOrders(ctx, domain.OrderSearch{MemberName: "kim", Status: domain.StatusCanceled})
	require.NoError(t, err)
	require.Len(t, canceled, 1)
	assert.Equal(t, first, canceled[0].ID)

	// cancellation restored the debited stock
	restocked, err := itemRepo.GetByID(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(9), restocked.StockQuantity)
}
