package postgres

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"

	"roomrent-backend/internal/domain"
	"roomrent-backend/internal/logger"
	"roomrent-backend/internal/repository"

	"github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// dbtx is satisfied by both *sql.DB and *sql.Tx so every repository can run
// standalone or inside a unit of work.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db *sql.DB
	repository.ManagerRepository
	repository.LocationRepository
	repository.RoomRepository
	repository.UserRepository
	repository.RentalRepository
	repository.TransactionRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		ManagerRepository:     NewManagerRepository(db),
		LocationRepository:    NewLocationRepository(db),
		RoomRepository:        NewRoomRepository(db),
		UserRepository:        NewUserRepository(db),
		RentalRepository:      NewRentalRepository(db),
		TransactionRepository: NewTransactionRepository(db),
	}
}

// Repositories returns the store's repositories bound to the plain connection pool.
func (s *Store) Repositories() repository.Repositories {
	return repositoriesFor(s.db)
}

func repositoriesFor(q dbtx) repository.Repositories {
	return repository.Repositories{
		Managers:     &managerRepository{db: q},
		Locations:    &locationRepository{db: q},
		Rooms:        &roomRepository{db: q},
		Users:        &userRepository{db: q},
		Rentals:      &rentalRepository{db: q},
		Transactions: &transactionRepository{db: q},
	}
}

// WithinTx implements repository.Transactor on top of a single SQL transaction.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, repos repository.Repositories) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return storeErr("begin transaction", err)
	}
	defer tx.Rollback()

	if err := fn(ctx, repositoriesFor(tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return storeErr("commit transaction", err)
	}
	return nil
}

// Ping checks the database connection.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return storeErr("ping", err)
	}
	return nil
}

// Migrate applies all pending migrations embedded in the binary.
func Migrate(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// foreignKeyViolation is the SQLSTATE of a broken foreign key.
const foreignKeyViolation = "23503"

// storeErr wraps a driver error. Foreign key violations become a
// ReferenceError; other constraint violations keep the constraint name so
// the log line says which rule was broken.
func storeErr(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
		return &domain.ReferenceError{
			Op:         op,
			Constraint: pqErr.Constraint,
			InUse:      strings.HasPrefix(op, "delete "),
			Err:        err,
		}
	}
	if errors.As(err, &pqErr) && pqErr.Constraint != "" {
		op = fmt.Sprintf("%s (constraint %s, code %s)", op, pqErr.Constraint, pqErr.Code)
	}
	return &domain.StoreError{Op: op, Err: err}
}

// lookupErr maps sql.ErrNoRows to a NotFoundError.
func lookupErr(entity string, id int32, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NewNotFound(entity, id)
	}
	return storeErr("get "+entity, err)
}

// requireAffected turns a zero-row UPDATE or DELETE into a NotFoundError.
func requireAffected(entity string, id int32, res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return storeErr("rows affected", err)
	}
	if n == 0 {
		return domain.NewNotFound(entity, id)
	}
	return nil
}

func exec(ctx context.Context, q dbtx, op, query string, args ...any) (sql.Result, error) {
	logger.DatabaseCall(op, query)
	res, err := q.ExecContext(ctx, query, args...)
	var affected int64
	if err == nil {
		affected, _ = res.RowsAffected()
	}
	logger.DatabaseResult(op, affected, err)
	if err != nil {
		return nil, storeErr(op, err)
	}
	return res, nil
}

func nullInt32(p *int32) sql.NullInt32 {
	if p == nil {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: *p, Valid: true}
}

func nullString(p *string) sql.NullString {
	if p == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *p, Valid: true}
}

func int32Ptr(n sql.NullInt32) *int32 {
	if !n.Valid {
		return nil
	}
	v := n.Int32
	return &v
}

func stringPtr(n sql.NullString) *string {
	if !n.Valid {
		return nil
	}
	v := n.String
	return &v
}
