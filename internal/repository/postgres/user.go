package postgres

import (
	"context"
	"database/sql"
	"time"

	"roomrent-backend/internal/domain"
	"roomrent-backend/internal/repository"
)

type userRepository struct {
	db dbtx
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, first_name, last_name, email, description, location_id, time_created, time_updated`

func scanUser(row interface{ Scan(...any) error }, u *domain.User) error {
	var description sql.NullString
	var locationID sql.NullInt32
	if err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &description, &locationID, &u.TimeCreated, &u.TimeUpdated); err != nil {
		return err
	}
	u.Description = stringPtr(description)
	u.LocationID = int32Ptr(locationID)
	return nil
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (first_name, last_name, email, description, location_id, time_created, time_updated)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	now := time.Now().UTC()
	if u.TimeCreated.IsZero() {
		u.TimeCreated = now
	}
	if u.TimeUpdated.IsZero() {
		u.TimeUpdated = now
	}
	err := r.db.QueryRowContext(ctx, query, u.FirstName, u.LastName, u.Email, nullString(u.Description), nullInt32(u.LocationID), u.TimeCreated, u.TimeUpdated).Scan(&u.ID)
	if err != nil {
		return storeErr("create user", err)
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	if err := scanUser(r.db.QueryRowContext(ctx, query, id), u); err != nil {
		return nil, lookupErr("user", id, err)
	}
	return u, nil
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY last_name, first_name`)
	if err != nil {
		return nil, storeErr("list users", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := scanUser(rows, &u); err != nil {
			return nil, storeErr("scan user", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list users", err)
	}
	return users, nil
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	query := `UPDATE users SET first_name=$1, last_name=$2, email=$3, description=$4, location_id=$5, time_updated=$6 WHERE id=$7`
	u.TimeUpdated = time.Now().UTC()
	res, err := exec(ctx, r.db, "update user", query, u.FirstName, u.LastName, u.Email, nullString(u.Description), nullInt32(u.LocationID), u.TimeUpdated, u.ID)
	if err != nil {
		return err
	}
	return requireAffected("user", u.ID, res)
}

func (r *userRepository) Delete(ctx context.Context, id int32) error {
	res, err := exec(ctx, r.db, "delete user", `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected("user", id, res)
}
