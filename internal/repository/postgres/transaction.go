package postgres

import (
	"context"
	"database/sql"

	"roomrent-backend/internal/domain"
	"roomrent-backend/internal/repository"
)

type transactionRepository struct {
	db dbtx
}

func NewTransactionRepository(db *sql.DB) repository.TransactionRepository {
	return &transactionRepository{db: db}
}

// Renter and room are LEFT JOINed so a transaction stays listable after its
// room row is gone.
const transactionViewQuery = `SELECT t.id, t.rent_id, t.manager_id, t.amount, t.paid_from, t.paid_to, t.time_created,
	       rr.user_id, COALESCE(u.first_name, ''), COALESCE(u.last_name, ''), COALESCE(u.email, ''),
	       rr.room_id, COALESCE(rm.name, ''), COALESCE(rm.type, '')
	FROM transactions t
	JOIN room_rentals rr ON rr.id = t.rent_id
	LEFT JOIN users u ON u.id = rr.user_id
	LEFT JOIN rooms rm ON rm.id = rr.room_id`

func scanTransactionView(row interface{ Scan(...any) error }, v *domain.TransactionView) error {
	if err := row.Scan(&v.ID, &v.RentalID, &v.ManagerID, &v.Amount, &v.PaidFrom, &v.PaidTo, &v.TimeCreated,
		&v.UserID, &v.UserFirstName, &v.UserLastName, &v.UserEmail,
		&v.RoomID, &v.RoomName, &v.RoomType); err != nil {
		return err
	}
	v.PaidFrom = v.PaidFrom.UTC()
	v.PaidTo = v.PaidTo.UTC()
	v.TimeCreated = v.TimeCreated.UTC()
	return nil
}

func (r *transactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	query := `INSERT INTO transactions (rent_id, manager_id, amount, paid_from, paid_to, time_created)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, tx.RentalID, tx.ManagerID, tx.Amount, tx.PaidFrom, tx.PaidTo, tx.TimeCreated).Scan(&tx.ID)
	if err != nil {
		return storeErr("create transaction", err)
	}
	return nil
}

func (r *transactionRepository) GetView(ctx context.Context, id int32) (*domain.TransactionView, error) {
	v := &domain.TransactionView{}
	if err := scanTransactionView(r.db.QueryRowContext(ctx, transactionViewQuery+` WHERE t.id = $1`, id), v); err != nil {
		return nil, lookupErr("transaction", id, err)
	}
	return v, nil
}

// ListViews returns all transactions, newest first, or only those of one
// rental when rentalID > 0.
func (r *transactionRepository) ListViews(ctx context.Context, rentalID int32) ([]domain.TransactionView, error) {
	query := transactionViewQuery
	var args []any
	if rentalID > 0 {
		query += ` WHERE t.rent_id = $1`
		args = append(args, rentalID)
	}
	query += ` ORDER BY t.time_created DESC, t.id DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeErr("list transactions", err)
	}
	defer rows.Close()

	var views []domain.TransactionView
	for rows.Next() {
		var v domain.TransactionView
		if err := scanTransactionView(rows, &v); err != nil {
			return nil, storeErr("scan transaction", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list transactions", err)
	}
	return views, nil
}

func (r *transactionRepository) Delete(ctx context.Context, id int32) error {
	res, err := exec(ctx, r.db, "delete transaction", `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected("transaction", id, res)
}
