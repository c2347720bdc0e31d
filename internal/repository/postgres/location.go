package postgres

import (
	"context"
	"database/sql"

	"roomrent-backend/internal/domain"
	"roomrent-backend/internal/repository"
)

type locationRepository struct {
	db dbtx
}

func NewLocationRepository(db *sql.DB) repository.LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) Create(ctx context.Context, l *domain.Location) error {
	query := `INSERT INTO locations (name, address, description) VALUES ($1, $2, $3) RETURNING id`
	if err := r.db.QueryRowContext(ctx, query, l.Name, l.Address, nullString(l.Description)).Scan(&l.ID); err != nil {
		return storeErr("create location", err)
	}
	return nil
}

func (r *locationRepository) GetByID(ctx context.Context, id int32) (*domain.Location, error) {
	l := &domain.Location{}
	var description sql.NullString
	query := `SELECT id, name, address, description FROM locations WHERE id = $1`
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&l.ID, &l.Name, &l.Address, &description); err != nil {
		return nil, lookupErr("location", id, err)
	}
	l.Description = stringPtr(description)
	return l, nil
}

func (r *locationRepository) List(ctx context.Context) ([]domain.Location, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, address, description FROM locations ORDER BY name`)
	if err != nil {
		return nil, storeErr("list locations", err)
	}
	defer rows.Close()

	var locations []domain.Location
	for rows.Next() {
		var l domain.Location
		var description sql.NullString
		if err := rows.Scan(&l.ID, &l.Name, &l.Address, &description); err != nil {
			return nil, storeErr("scan location", err)
		}
		l.Description = stringPtr(description)
		locations = append(locations, l)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list locations", err)
	}
	return locations, nil
}

func (r *locationRepository) Update(ctx context.Context, l *domain.Location) error {
	res, err := exec(ctx, r.db, "update location",
		`UPDATE locations SET name=$1, address=$2, description=$3 WHERE id=$4`,
		l.Name, l.Address, nullString(l.Description), l.ID)
	if err != nil {
		return err
	}
	return requireAffected("location", l.ID, res)
}

func (r *locationRepository) Delete(ctx context.Context, id int32) error {
	res, err := exec(ctx, r.db, "delete location", `DELETE FROM locations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected("location", id, res)
}
