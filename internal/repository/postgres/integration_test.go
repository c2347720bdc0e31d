//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"flag"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"
	"time"

	"roomrent-backend/internal/config"
	"roomrent-backend/internal/domain"
	"roomrent-backend/internal/repository/postgres"
	"roomrent-backend/internal/service"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configPath = flag.String("config", "config/config.test.yaml", "path to config file")

func prepareDB(t *testing.T) *sql.DB {
	t.Helper()

	// Logic to handle running from root vs package dir
	finalPath := *configPath
	if _, err := os.Stat(finalPath); os.IsNotExist(err) {
		altPath := filepath.Join("..", "..", "..", *configPath)
		if _, err := os.Stat(altPath); err == nil {
			finalPath = altPath
		}
	}

	cfg, err := config.Load(finalPath)
	require.NoError(t, err, "load config from %s", finalPath)

	var db *sql.DB
	// Retry connection as DB might still be starting up
	for i := 0; i < 10; i++ {
		db, err = sql.Open("postgres", cfg.GetDatabaseConnectionString())
		if err == nil {
			if err = db.Ping(); err == nil {
				break
			}
		}
		time.Sleep(2 * time.Second)
	}
	require.NoError(t, err, "connect to database")
	t.Cleanup(func() { db.Close() })

	require.NoError(t, postgres.Migrate(context.Background(), db))
	return db
}

func seedRental(t *testing.T, store *postgres.Store, start time.Time) (rentalID, managerID int32) {
	t.Helper()
	ctx := context.Background()
	repos := store.Repositories()

	loc := &domain.Location{Name: "Integration " + t.Name(), Address: "1 Test St"}
	require.NoError(t, repos.Locations.Create(ctx, loc))
	room := &domain.Room{LocationID: loc.ID, Name: "R-" + t.Name(), Type: "single", PlacesCount: 1, PlacePrice: 100}
	require.NoError(t, repos.Rooms.Create(ctx, room))
	user := &domain.User{FirstName: "Test", LastName: "Renter", Email: "renter@example.com"}
	require.NoError(t, repos.Users.Create(ctx, user))
	manager := &domain.Manager{FirstName: "Test", LastName: "Manager", Email: "manager@example.com"}
	require.NoError(t, repos.Managers.Create(ctx, manager))
	rental := &domain.RoomRental{RoomID: room.ID, UserID: user.ID, StartDate: start}
	require.NoError(t, repos.Rentals.Create(ctx, rental))
	return rental.ID, manager.ID
}

func TestRecordPayment_ConcurrentPaymentsChain(t *testing.T) {
	db := prepareDB(t)
	store := postgres.NewStore(db)
	start := time.Date(2022, 1, 31, 0, 0, 0, 0, time.UTC)
	rentalID, managerID := seedRental(t, store, start)

	ledger := service.NewLedgerService(store, store.Repositories().Transactions, nil, 10*time.Second)

	const payments = 6
	var wg sync.WaitGroup
	errs := make(chan error, payments)
	for i := 0; i < payments; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := ledger.RecordPayment(context.Background(), rentalID, managerID, 1)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	views, err := ledger.ListTransactions(context.Background(), rentalID)
	require.NoError(t, err)
	require.Len(t, views, payments)

	sort.Slice(views, func(i, j int) bool { return views[i].PaidFrom.Before(views[j].PaidFrom) })
	assert.True(t, views[0].PaidFrom.Equal(start))
	for i := 1; i < len(views); i++ {
		assert.True(t, views[i].PaidFrom.Equal(views[i-1].PaidTo), "payment %d must start where %d ended", i, i-1)
	}

	rental, err := store.Repositories().Rentals.GetByID(context.Background(), rentalID)
	require.NoError(t, err)
	require.NotNil(t, rental.PaidUntil)
	assert.True(t, rental.PaidUntil.Equal(views[len(views)-1].PaidTo))
}

func TestDeleteTransaction_KeepsPaidUntil(t *testing.T) {
	db := prepareDB(t)
	store := postgres.NewStore(db)
	rentalID, managerID := seedRental(t, store, time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC))
	ledger := service.NewLedgerService(store, store.Repositories().Transactions, nil, 10*time.Second)
	ctx := context.Background()

	view, err := ledger.RecordPayment(ctx, rentalID, managerID, 2)
	require.NoError(t, err)
	require.NoError(t, ledger.DeleteTransaction(ctx, view.ID))

	rental, err := store.Repositories().Rentals.GetByID(ctx, rentalID)
	require.NoError(t, err)
	require.NotNil(t, rental.PaidUntil)
	assert.True(t, rental.PaidUntil.Equal(time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC)))
}
