package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/matiascayunao/pvsa-p/internal/domain"
)

type PostgresHierarchyRepo struct {
	db *sql.DB
}

func NewPostgresHierarchyRepo(db *sql.DB) *PostgresHierarchyRepo {
	return &PostgresHierarchyRepo{db: db}
}

// ============================================
// Sector
// ============================================

func (r *PostgresHierarchyRepo) ListSectors(ctx context.Context) ([]*domain.Sector, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT sector_id::text, sector_name FROM sectors ORDER BY sector_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*domain.Sector{}
	for rows.Next() {
		var s domain.Sector
		if err := rows.Scan(&s.SectorID, &s.SectorName); err != nil {
			return nil, err
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}

func (r *PostgresHierarchyRepo) GetSector(ctx context.Context, sectorID string) (*domain.Sector, error) {
	var s domain.Sector
	err := r.db.QueryRowContext(ctx,
		`SELECT sector_id::text, sector_name FROM sectors WHERE sector_id = $1`,
		sectorID,
	).Scan(&s.SectorID, &s.SectorName)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *PostgresHierarchyRepo) CreateSector(ctx context.Context, s *domain.Sector) error {
	if s.SectorID == "" {
		s.SectorID = uuid.NewString()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sectors (sector_id, sector_name) VALUES ($1, $2)`,
		s.SectorID, s.SectorName,
	)
	return mapPQError(err)
}

func (r *PostgresHierarchyRepo) UpdateSector(ctx context.Context, s *domain.Sector) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE sectors SET sector_name = $2 WHERE sector_id = $1`,
		s.SectorID, s.SectorName,
	)
	if err != nil {
		return mapPQError(err)
	}
	return checkAffected(res)
}

func (r *PostgresHierarchyRepo) DeleteSector(ctx context.Context, sectorID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sectors WHERE sector_id = $1`, sectorID)
	if err != nil {
		return mapPQError(err)
	}
	return checkAffected(res)
}

// ============================================
// Location
// ============================================

func (r *PostgresHierarchyRepo) ListLocations(ctx context.Context, sectorID string) ([]*domain.Location, error) {
	q := `
		SELECT l.location_id::text, l.location_name, l.sector_id::text, s.sector_name
		FROM locations l
		JOIN sectors s ON s.sector_id = l.sector_id
	`
	args := []any{}
	if sectorID != "" {
		q += ` WHERE l.sector_id = $1`
		args = append(args, sectorID)
	}
	q += ` ORDER BY s.sector_name, l.location_name`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*domain.Location{}
	for rows.Next() {
		var l domain.Location
		if err := rows.Scan(&l.LocationID, &l.LocationName, &l.SectorID, &l.SectorName); err != nil {
			return nil, err
		}
		out = append(out, &l)
	}
	return out, rows.Err()
}

func (r *PostgresHierarchyRepo) GetLocation(ctx context.Context, locationID string) (*domain.Location, error) {
	var l domain.Location
	err := r.db.QueryRowContext(ctx, `
		SELECT l.location_id::text, l.location_name, l.sector_id::text, s.sector_name
		FROM locations l
		JOIN sectors s ON s.sector_id = l.sector_id
		WHERE l.location_id = $1`,
		locationID,
	).Scan(&l.LocationID, &l.LocationName, &l.SectorID, &l.SectorName)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *PostgresHierarchyRepo) CreateLocation(ctx context.Context, l *domain.Location) error {
	if l.LocationID == "" {
		l.LocationID = uuid.NewString()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO locations (location_id, location_name, sector_id) VALUES ($1, $2, $3)`,
		l.LocationID, l.LocationName, l.SectorID,
	)
	return mapPQError(err)
}

func (r *PostgresHierarchyRepo) UpdateLocation(ctx context.Context, l *domain.Location) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE locations SET location_name = $2, sector_id = $3 WHERE location_id = $1`,
		l.LocationID, l.LocationName, l.SectorID,
	)
	if err != nil {
		return mapPQError(err)
	}
	return checkAffected(res)
}

func (r *PostgresHierarchyRepo) DeleteLocation(ctx context.Context, locationID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM locations WHERE location_id = $1`, locationID)
	if err != nil {
		return mapPQError(err)
	}
	return checkAffected(res)
}

// ============================================
// Floor
// ============================================

func (r *PostgresHierarchyRepo) ListFloors(ctx context.Context, locationID string) ([]*domain.Floor, error) {
	q := `
		SELECT f.floor_id::text, f.floor_number, f.location_id::text, l.location_name
		FROM floors f
		JOIN locations l ON l.location_id = f.location_id
	`
	args := []any{}
	if locationID != "" {
		q += ` WHERE f.location_id = $1`
		args = append(args, locationID)
	}
	q += ` ORDER BY l.location_name, f.floor_number`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*domain.Floor{}
	for rows.Next() {
		var f domain.Floor
		if err := rows.Scan(&f.FloorID, &f.FloorNumber, &f.LocationID, &f.LocationName); err != nil {
			return nil, err
		}
		out = append(out, &f)
	}
	return out, rows.Err()
}

func (r *PostgresHierarchyRepo) GetFloor(ctx context.Context, floorID string) (*domain.Floor, error) {
	var f domain.Floor
	err := r.db.QueryRowContext(ctx, `
		SELECT f.floor_id::text, f.floor_number, f.location_id::text, l.location_name
		FROM floors f
		JOIN locations l ON l.location_id = f.location_id
		WHERE f.floor_id = $1`,
		floorID,
	).Scan(&f.FloorID, &f.FloorNumber, &f.LocationID, &f.LocationName)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *PostgresHierarchyRepo) CreateFloor(ctx context.Context, f *domain.Floor) error {
	if f.FloorID == "" {
		f.FloorID = uuid.NewString()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO floors (floor_id, floor_number, location_id) VALUES ($1, $2, $3)`,
		f.FloorID, f.FloorNumber, f.LocationID,
	)
	return mapPQError(err)
}

func (r *PostgresHierarchyRepo) UpdateFloor(ctx context.Context, f *domain.Floor) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE floors SET floor_number = $2, location_id = $3 WHERE floor_id = $1`,
		f.FloorID, f.FloorNumber, f.LocationID,
	)
	if err != nil {
		return mapPQError(err)
	}
	return checkAffected(res)
}

func (r *PostgresHierarchyRepo) DeleteFloor(ctx context.Context, floorID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM floors WHERE floor_id = $1`, floorID)
	if err != nil {
		return mapPQError(err)
	}
	return checkAffected(res)
}

// ============================================
// RoomType
// ============================================

func (r *PostgresHierarchyRepo) ListRoomTypes(ctx context.Context) ([]*domain.RoomType, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT room_type_id::text, room_type_name FROM room_types ORDER BY room_type_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*domain.RoomType{}
	for rows.Next() {
		var rt domain.RoomType
		if err := rows.Scan(&rt.RoomTypeID, &rt.RoomTypeName); err != nil {
			return nil, err
		}
		out = append(out, &rt)
	}
	return out, rows.Err()
}

func (r *PostgresHierarchyRepo) GetRoomType(ctx context.Context, roomTypeID string) (*domain.RoomType, error) {
	var rt domain.RoomType
	err := r.db.QueryRowContext(ctx,
		`SELECT room_type_id::text, room_type_name FROM room_types WHERE room_type_id = $1`,
		roomTypeID,
	).Scan(&rt.RoomTypeID, &rt.RoomTypeName)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rt, nil
}

func (r *PostgresHierarchyRepo) CreateRoomType(ctx context.Context, rt *domain.RoomType) error {
	if rt.RoomTypeID == "" {
		rt.RoomTypeID = uuid.NewString()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO room_types (room_type_id, room_type_name) VALUES ($1, $2)`,
		rt.RoomTypeID, rt.RoomTypeName,
	)
	return mapPQError(err)
}

func (r *PostgresHierarchyRepo) UpdateRoomType(ctx context.Context, rt *domain.RoomType) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE room_types SET room_type_name = $2 WHERE room_type_id = $1`,
		rt.RoomTypeID, rt.RoomTypeName,
	)
	if err != nil {
		return mapPQError(err)
	}
	return checkAffected(res)
}

func (r *PostgresHierarchyRepo) DeleteRoomType(ctx context.Context, roomTypeID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM room_types WHERE room_type_id = $1`, roomTypeID)
	if err != nil {
		return mapPQError(err)
	}
	return checkAffected(res)
}

// ============================================
// Room
// ============================================

func (r *PostgresHierarchyRepo) ListRooms(ctx context.Context, floorID, roomTypeID string) ([]*domain.Room, error) {
	q := `
		SELECT rm.room_id::text, rm.room_name, rm.floor_id::text, rm.room_type_id::text,
		       f.floor_number, l.location_name, rt.room_type_name
		FROM rooms rm
		JOIN floors f ON f.floor_id = rm.floor_id
		JOIN locations l ON l.location_id = f.location_id
		JOIN room_types rt ON rt.room_type_id = rm.room_type_id
	`
	where := []string{}
	args := []any{}
	if floorID != "" {
		args = append(args, floorID)
		where = append(where, "rm.floor_id = $1")
	}
	if roomTypeID != "" {
		args = append(args, roomTypeID)
		if len(args) == 1 {
			where = append(where, "rm.room_type_id = $1")
		} else {
			where = append(where, "rm.room_type_id = $2")
		}
	}
	if len(where) > 0 {
		q += " WHERE " + where[0]
		if len(where) > 1 {
			q += " AND " + where[1]
		}
	}
	q += ` ORDER BY l.location_name, f.floor_number, rm.room_name`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*domain.Room{}
	for rows.Next() {
		var rm domain.Room
		if err := rows.Scan(&rm.RoomID, &rm.RoomName, &rm.FloorID, &rm.RoomTypeID,
			&rm.FloorNumber, &rm.LocationName, &rm.RoomTypeName); err != nil {
			return nil, err
		}
		out = append(out, &rm)
	}
	return out, rows.Err()
}

func (r *PostgresHierarchyRepo) GetRoom(ctx context.Context, roomID string) (*domain.Room, error) {
	var rm domain.Room
	err := r.db.QueryRowContext(ctx, `
		SELECT rm.room_id::text, rm.room_name, rm.floor_id::text, rm.room_type_id::text,
		       f.floor_number, l.location_name, rt.room_type_name
		FROM rooms rm
		JOIN floors f ON f.floor_id = rm.floor_id
		JOIN locations l ON l.location_id = f.location_id
		JOIN room_types rt ON rt.room_type_id = rm.room_type_id
		WHERE rm.room_id = $1`,
		roomID,
	).Scan(&rm.RoomID, &rm.RoomName, &rm.FloorID, &rm.RoomTypeID,
		&rm.FloorNumber, &rm.LocationName, &rm.RoomTypeName)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rm, nil
}

func (r *PostgresHierarchyRepo) CreateRoom(ctx context.Context, rm *domain.Room) error {
	if rm.RoomID == "" {
		rm.RoomID = uuid.NewString()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO rooms (room_id, room_name, floor_id, room_type_id) VALUES ($1, $2, $3, $4)`,
		rm.RoomID, rm.RoomName, rm.FloorID, rm.RoomTypeID,
	)
	return mapPQError(err)
}

func (r *PostgresHierarchyRepo) UpdateRoom(ctx context.Context, rm *domain.Room) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE rooms SET room_name = $2, floor_id = $3, room_type_id = $4 WHERE room_id = $1`,
		rm.RoomID, rm.RoomName, rm.FloorID, rm.RoomTypeID,
	)
	if err != nil {
		return mapPQError(err)
	}
	return checkAffected(res)
}

func (r *PostgresHierarchyRepo) DeleteRoom(ctx context.Context, roomID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM rooms WHERE room_id = $1`, roomID)
	if err != nil {
		return mapPQError(err)
	}
	return checkAffected(res)
}

// checkAffected turns a zero-row UPDATE/DELETE into ErrNotFound.
func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
