package postgres

import (
	"context"
	"database/sql"

	"roomrent-backend/internal/domain"
	"roomrent-backend/internal/repository"
)

type roomRepository struct {
	db dbtx
}

func NewRoomRepository(db *sql.DB) repository.RoomRepository {
	return &roomRepository{db: db}
}

const roomColumns = `id, location_id, name, description, type, places_count, window_count, has_board, has_balcony, place_price, area`

func scanRoom(row interface{ Scan(...any) error }, rm *domain.Room) error {
	var description sql.NullString
	var windowCount sql.NullInt16
	var hasBoard, hasBalcony sql.NullBool
	var area sql.NullFloat64
	if err := row.Scan(&rm.ID, &rm.LocationID, &rm.Name, &description, &rm.Type, &rm.PlacesCount, &windowCount, &hasBoard, &hasBalcony, &rm.PlacePrice, &area); err != nil {
		return err
	}
	rm.Description = stringPtr(description)
	if windowCount.Valid {
		v := windowCount.Int16
		rm.WindowCount = &v
	}
	if hasBoard.Valid {
		v := hasBoard.Bool
		rm.HasBoard = &v
	}
	if hasBalcony.Valid {
		v := hasBalcony.Bool
		rm.HasBalcony = &v
	}
	if area.Valid {
		v := float32(area.Float64)
		rm.Area = &v
	}
	return nil
}

func (r *roomRepository) Create(ctx context.Context, rm *domain.Room) error {
	query := `INSERT INTO rooms (location_id, name, description, type, places_count, window_count, has_board, has_balcony, place_price, area)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, rm.LocationID, rm.Name, nullString(rm.Description), rm.Type, rm.PlacesCount,
		rm.WindowCount, rm.HasBoard, rm.HasBalcony, rm.PlacePrice, rm.Area).Scan(&rm.ID)
	if err != nil {
		return storeErr("create room", err)
	}
	return nil
}

func (r *roomRepository) GetByID(ctx context.Context, id int32) (*domain.Room, error) {
	rm := &domain.Room{}
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1`
	if err := scanRoom(r.db.QueryRowContext(ctx, query, id), rm); err != nil {
		return nil, lookupErr("room", id, err)
	}
	return rm, nil
}

// List returns all rooms, or only the rooms of one location when locationID > 0.
func (r *roomRepository) List(ctx context.Context, locationID int32) ([]domain.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms`
	var args []any
	if locationID > 0 {
		query += ` WHERE location_id = $1`
		args = append(args, locationID)
	}
	query += ` ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeErr("list rooms", err)
	}
	defer rows.Close()

	var rooms []domain.Room
	for rows.Next() {
		var rm domain.Room
		if err := scanRoom(rows, &rm); err != nil {
			return nil, storeErr("scan room", err)
		}
		rooms = append(rooms, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list rooms", err)
	}
	return rooms, nil
}

func (r *roomRepository) Update(ctx context.Context, rm *domain.Room) error {
	query := `UPDATE rooms SET location_id=$1, name=$2, description=$3, type=$4, places_count=$5, window_count=$6,
	          has_board=$7, has_balcony=$8, place_price=$9, area=$10 WHERE id=$11`
	res, err := exec(ctx, r.db, "update room", query, rm.LocationID, rm.Name, nullString(rm.Description), rm.Type, rm.PlacesCount,
		rm.WindowCount, rm.HasBoard, rm.HasBalcony, rm.PlacePrice, rm.Area, rm.ID)
	if err != nil {
		return err
	}
	return requireAffected("room", rm.ID, res)
}

func (r *roomRepository) Delete(ctx context.Context, id int32) error {
	res, err := exec(ctx, r.db, "delete room", `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected("room", id, res)
}
