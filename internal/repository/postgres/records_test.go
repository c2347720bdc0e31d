package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"roomrent-backend/internal/domain"
	"roomrent-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewManagerRepository(db)
	m := &domain.Manager{FirstName: "Anna", LastName: "Kowalska", Email: "anna@example.com"}

	mock.ExpectQuery(`INSERT INTO managers`).
		WithArgs("Anna", "Kowalska", "anna@example.com", nil, nil, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4))

	require.NoError(t, repo.Create(context.Background(), m))
	assert.Equal(t, int32(4), m.ID)
	assert.False(t, m.TimeCreated.IsZero())
}

func TestManagerRepository_GetByIDJoinsLocation(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewManagerRepository(db)
	now := time.Now().UTC()

	mock.ExpectQuery(`FROM managers m LEFT JOIN locations l ON l.id = m.location_id WHERE m.id = \$1`).
		WithArgs(4).
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name", "email", "description", "location_id", "name", "time_created", "time_updated"}).
			AddRow(4, "Anna", "Kowalska", "anna@example.com", nil, 3, "Riverside", now, now))

	m, err := repo.GetByID(context.Background(), 4)
	require.NoError(t, err)
	require.NotNil(t, m.LocationID)
	assert.Equal(t, int32(3), *m.LocationID)
	require.NotNil(t, m.LocationName)
	assert.Equal(t, "Riverside", *m.LocationName)
	assert.Nil(t, m.Description)
}

func TestManagerRepository_UpdateMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewManagerRepository(db)

	mock.ExpectExec(`UPDATE managers SET`).
		WithArgs("Anna", "K", "a@b.c", nil, nil, sqlmock.AnyArg(), 12).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.Update(context.Background(), &domain.Manager{ID: 12, FirstName: "Anna", LastName: "K", Email: "a@b.c"})
	assert.EqualError(t, err, "cannot find manager with id 12")
}

func TestManagerRepository_DeleteReferencedByTransactions(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewManagerRepository(db)

	mock.ExpectExec(`DELETE FROM managers WHERE id = \$1`).
		WithArgs(2).
		WillReturnError(&pq.Error{Code: "23503", Constraint: "transactions_manager_id_fkey"})

	err = repo.Delete(context.Background(), 2)
	require.ErrorIs(t, err, domain.ErrMalformedInput)
	assert.False(t, domain.IsStoreFailure(err))
	assert.EqualError(t, err, "delete manager: record is still referenced (transactions_manager_id_fkey)")
	var pqErr *pq.Error
	assert.True(t, errors.As(err, &pqErr))
}

func TestRoomRepository_CreateRejectedByCheck(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRoomRepository(db)

	mock.ExpectQuery(`INSERT INTO rooms`).
		WillReturnError(&pq.Error{Code: "23514", Constraint: "rooms_place_price_check"})

	err = repo.Create(context.Background(), &domain.Room{LocationID: 1, Name: "A", PlacePrice: -5})
	require.Error(t, err)
	var storeErr *domain.StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Contains(t, storeErr.Op, "rooms_place_price_check")
}

func TestRoomRepository_ListByLocation(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRoomRepository(db)
	cols := []string{"id", "location_id", "name", "description", "type", "places_count", "window_count", "has_board", "has_balcony", "place_price", "area"}

	mock.ExpectQuery(`FROM rooms WHERE location_id = \$1 ORDER BY id`).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(1, 3, "A-101", nil, "double", 2, 1, true, nil, 450, 18.5))

	rooms, err := repo.List(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, int32(450), rooms[0].PlacePrice)
	require.NotNil(t, rooms[0].HasBoard)
	assert.True(t, *rooms[0].HasBoard)
	assert.Nil(t, rooms[0].HasBalcony)
	require.NotNil(t, rooms[0].Area)
	assert.InDelta(t, 18.5, *rooms[0].Area, 0.001)
}

func TestLocationRepository_GetByIDMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewLocationRepository(db)

	mock.ExpectQuery(`SELECT id, name, address, description FROM locations WHERE id = \$1`).
		WithArgs(8).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "address", "description"}))

	_, err = repo.GetByID(context.Background(), 8)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewUserRepository(db)
	now := time.Now().UTC()

	mock.ExpectQuery(`FROM users ORDER BY last_name, first_name`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name", "email", "description", "location_id", "time_created", "time_updated"}).
			AddRow(5, "Jan", "Nowak", "jan@example.com", "student", nil, now, now))

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.NotNil(t, users[0].Description)
	assert.Equal(t, "student", *users[0].Description)
	assert.Nil(t, users[0].LocationID)
}
