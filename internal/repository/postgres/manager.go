package postgres

import (
	"context"
	"database/sql"
	"time"

	"roomrent-backend/internal/domain"
	"roomrent-backend/internal/repository"
)

type managerRepository struct {
	db dbtx
}

func NewManagerRepository(db *sql.DB) repository.ManagerRepository {
	return &managerRepository{db: db}
}

const managerColumns = `m.id, m.first_name, m.last_name, m.email, m.description, m.location_id, l.name, m.time_created, m.time_updated`

func scanManager(row interface{ Scan(...any) error }, m *domain.Manager) error {
	var description, locationName sql.NullString
	var locationID sql.NullInt32
	if err := row.Scan(&m.ID, &m.FirstName, &m.LastName, &m.Email, &description, &locationID, &locationName, &m.TimeCreated, &m.TimeUpdated); err != nil {
		return err
	}
	m.Description = stringPtr(description)
	m.LocationID = int32Ptr(locationID)
	m.LocationName = stringPtr(locationName)
	return nil
}

func (r *managerRepository) Create(ctx context.Context, m *domain.Manager) error {
	query := `INSERT INTO managers (first_name, last_name, email, description, location_id, time_created, time_updated)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	now := time.Now().UTC()
	if m.TimeCreated.IsZero() {
		m.TimeCreated = now
	}
	m.TimeUpdated = now
	err := r.db.QueryRowContext(ctx, query, m.FirstName, m.LastName, m.Email, nullString(m.Description), nullInt32(m.LocationID), m.TimeCreated, m.TimeUpdated).Scan(&m.ID)
	if err != nil {
		return storeErr("create manager", err)
	}
	return nil
}

func (r *managerRepository) GetByID(ctx context.Context, id int32) (*domain.Manager, error) {
	m := &domain.Manager{}
	query := `SELECT ` + managerColumns + ` FROM managers m LEFT JOIN locations l ON l.id = m.location_id WHERE m.id = $1`
	if err := scanManager(r.db.QueryRowContext(ctx, query, id), m); err != nil {
		return nil, lookupErr("manager", id, err)
	}
	return m, nil
}

func (r *managerRepository) List(ctx context.Context) ([]domain.Manager, error) {
	query := `SELECT ` + managerColumns + ` FROM managers m LEFT JOIN locations l ON l.id = m.location_id ORDER BY m.id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, storeErr("list managers", err)
	}
	defer rows.Close()

	var managers []domain.Manager
	for rows.Next() {
		var m domain.Manager
		if err := scanManager(rows, &m); err != nil {
			return nil, storeErr("scan manager", err)
		}
		managers = append(managers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list managers", err)
	}
	return managers, nil
}

func (r *managerRepository) Update(ctx context.Context, m *domain.Manager) error {
	query := `UPDATE managers SET first_name=$1, last_name=$2, email=$3, description=$4, location_id=$5, time_updated=$6 WHERE id=$7`
	m.TimeUpdated = time.Now().UTC()
	res, err := exec(ctx, r.db, "update manager", query, m.FirstName, m.LastName, m.Email, nullString(m.Description), nullInt32(m.LocationID), m.TimeUpdated, m.ID)
	if err != nil {
		return err
	}
	return requireAffected("manager", m.ID, res)
}

func (r *managerRepository) Delete(ctx context.Context, id int32) error {
	res, err := exec(ctx, r.db, "delete manager", `DELETE FROM managers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected("manager", id, res)
}
