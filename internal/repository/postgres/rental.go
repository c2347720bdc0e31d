package postgres

import (
	"context"
	"database/sql"
	"time"

	"roomrent-backend/internal/domain"
	"roomrent-backend/internal/repository"
)

type rentalRepository struct {
	db dbtx
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

func scanRental(row interface{ Scan(...any) error }, rt *domain.RoomRental) error {
	var paidUntil sql.NullTime
	if err := row.Scan(&rt.ID, &rt.RoomID, &rt.UserID, &rt.StartDate, &paidUntil); err != nil {
		return err
	}
	rt.StartDate = rt.StartDate.UTC()
	if paidUntil.Valid {
		v := paidUntil.Time.UTC()
		rt.PaidUntil = &v
	}
	return nil
}

func (r *rentalRepository) Create(ctx context.Context, rt *domain.RoomRental) error {
	query := `INSERT INTO room_rentals (room_id, user_id, date_start, paid_until) VALUES ($1, $2, $3, NULL) RETURNING id`
	rt.PaidUntil = nil
	if err := r.db.QueryRowContext(ctx, query, rt.RoomID, rt.UserID, rt.StartDate).Scan(&rt.ID); err != nil {
		return storeErr("create rental", err)
	}
	return nil
}

func (r *rentalRepository) GetByID(ctx context.Context, id int32) (*domain.RoomRental, error) {
	rt := &domain.RoomRental{}
	query := `SELECT id, room_id, user_id, date_start, paid_until FROM room_rentals WHERE id = $1`
	if err := scanRental(r.db.QueryRowContext(ctx, query, id), rt); err != nil {
		return nil, lookupErr("rental", id, err)
	}
	return rt, nil
}

func (r *rentalRepository) GetByIDForUpdate(ctx context.Context, id int32) (*domain.RoomRental, error) {
	rt := &domain.RoomRental{}
	query := `SELECT id, room_id, user_id, date_start, paid_until FROM room_rentals WHERE id = $1 FOR UPDATE`
	if err := scanRental(r.db.QueryRowContext(ctx, query, id), rt); err != nil {
		return nil, lookupErr("rental", id, err)
	}
	return rt, nil
}

// List returns all rentals, or only those of one renter when userID > 0.
func (r *rentalRepository) List(ctx context.Context, userID int32) ([]domain.RoomRental, error) {
	query := `SELECT id, room_id, user_id, date_start, paid_until FROM room_rentals`
	var args []any
	if userID > 0 {
		query += ` WHERE user_id = $1`
		args = append(args, userID)
	}
	query += ` ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeErr("list rentals", err)
	}
	defer rows.Close()

	var rentals []domain.RoomRental
	for rows.Next() {
		var rt domain.RoomRental
		if err := scanRental(rows, &rt); err != nil {
			return nil, storeErr("scan rental", err)
		}
		rentals = append(rentals, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list rentals", err)
	}
	return rentals, nil
}

func (r *rentalRepository) UpdatePaidUntil(ctx context.Context, id int32, paidUntil time.Time) error {
	res, err := exec(ctx, r.db, "update rental paid_until",
		`UPDATE room_rentals SET paid_until = $1 WHERE id = $2`, paidUntil, id)
	if err != nil {
		return err
	}
	return requireAffected("rental", id, res)
}

// ListOverdue returns rentals whose coverage ended before asOf. A rental that
// was never paid counts from its start date.
func (r *rentalRepository) ListOverdue(ctx context.Context, asOf time.Time) ([]domain.OverdueRental, error) {
	query := `SELECT rr.id, COALESCE(rm.name, ''), u.id, u.first_name, u.email, COALESCE(rr.paid_until, rr.date_start)
	          FROM room_rentals rr
	          JOIN users u ON u.id = rr.user_id
	          LEFT JOIN rooms rm ON rm.id = rr.room_id
	          WHERE COALESCE(rr.paid_until, rr.date_start) < $1
	          ORDER BY rr.id`
	rows, err := r.db.QueryContext(ctx, query, asOf)
	if err != nil {
		return nil, storeErr("list overdue rentals", err)
	}
	defer rows.Close()

	var overdue []domain.OverdueRental
	for rows.Next() {
		var o domain.OverdueRental
		if err := rows.Scan(&o.RentalID, &o.RoomName, &o.UserID, &o.UserFirstName, &o.UserEmail, &o.PaidUntil); err != nil {
			return nil, storeErr("scan overdue rental", err)
		}
		overdue = append(overdue, o)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list overdue rentals", err)
	}
	return overdue, nil
}
