package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/matiascayunao/pvsa-p/internal/domain"
)

type PostgresInventoryRepo struct {
	db *sql.DB
}

func NewPostgresInventoryRepo(db *sql.DB) *PostgresInventoryRepo {
	return &PostgresInventoryRepo{db: db}
}

// itemSelect joins the full location and catalog paths. Room and variant are
// nullable, so everything hangs off LEFT JOINs with COALESCEd labels.
const itemSelect = `
	SELECT i.item_id::text, i.room_id::text, i.variant_id::text,
	       i.quantity, i.status, i.detail, i.recorded_date,
	       COALESCE(s.sector_name, ''), COALESCE(l.location_name, ''),
	       COALESCE(f.floor_number, 0), COALESCE(rm.room_name, ''),
	       COALESCE(k.kind_name, ''), COALESCE(v.brand, ''), COALESCE(v.material, '')
	FROM placed_items i
	LEFT JOIN rooms rm ON rm.room_id = i.room_id
	LEFT JOIN floors f ON f.floor_id = rm.floor_id
	LEFT JOIN locations l ON l.location_id = f.location_id
	LEFT JOIN sectors s ON s.sector_id = l.sector_id
	LEFT JOIN object_variants v ON v.variant_id = i.variant_id
	LEFT JOIN object_kinds k ON k.kind_id = v.kind_id
`

func scanItem(row interface{ Scan(...any) error }) (*domain.PlacedItem, error) {
	var it domain.PlacedItem
	err := row.Scan(&it.ItemID, &it.RoomID, &it.VariantID,
		&it.Quantity, &it.Status, &it.Detail, &it.RecordedDate,
		&it.SectorName, &it.LocationName, &it.FloorNumber, &it.RoomName,
		&it.KindName, &it.Brand, &it.Material)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *PostgresInventoryRepo) ListPlacedItems(ctx context.Context, f ItemFilter) ([]*domain.PlacedItem, error) {
	where := []string{}
	args := []any{}
	add := func(cond string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}
	if f.RoomID != "" {
		add("i.room_id = $%d", f.RoomID)
	}
	if f.KindID != "" {
		add("v.kind_id = $%d", f.KindID)
	}
	if f.VariantID != "" {
		add("i.variant_id = $%d", f.VariantID)
	}
	if f.Status != "" {
		add("i.status = $%d", f.Status)
	}

	q := itemSelect
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += ` ORDER BY COALESCE(l.location_name, ''), COALESCE(f.floor_number, 0),
	       COALESCE(rm.room_name, ''), COALESCE(k.kind_name, '')`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*domain.PlacedItem{}
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *PostgresInventoryRepo) GetPlacedItem(ctx context.Context, itemID string) (*domain.PlacedItem, error) {
	it, err := scanItem(r.db.QueryRowContext(ctx, itemSelect+` WHERE i.item_id = $1`, itemID))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return it, nil
}

func (r *PostgresInventoryRepo) CreatePlacedItem(ctx context.Context, item *domain.PlacedItem) error {
	if item.ItemID == "" {
		item.ItemID = uuid.NewString()
	}
	if item.RecordedDate.IsZero() {
		item.RecordedDate = time.Now()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO placed_items (item_id, room_id, variant_id, quantity, status, detail, recorded_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		item.ItemID, item.RoomID, item.VariantID, item.Quantity, item.Status, item.Detail, item.RecordedDate,
	)
	return mapPQError(err)
}

// UpdatePlacedItem re-reads the row under FOR UPDATE, writes the new values,
// and snapshots the prior values into history_entries when quantity, status
// or detail changed. Row update and history insert commit together or not at
// all; recorded_date is read into the snapshot but never modified.
func (r *PostgresInventoryRepo) UpdatePlacedItem(ctx context.Context, item *domain.PlacedItem) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var prevQuantity int
	var prevStatus, prevDetail string
	var prevRecorded time.Time
	err = tx.QueryRowContext(ctx, `
		SELECT quantity, status, detail, recorded_date
		FROM placed_items WHERE item_id = $1 FOR UPDATE`,
		item.ItemID,
	).Scan(&prevQuantity, &prevStatus, &prevDetail, &prevRecorded)
	if err == sql.ErrNoRows {
		return false, ErrNotFound
	}
	if err != nil {
		return false, err
	}

	changed := prevQuantity != item.Quantity ||
		prevStatus != item.Status ||
		prevDetail != item.Detail

	if _, err := tx.ExecContext(ctx, `
		UPDATE placed_items
		SET room_id = $2, variant_id = $3, quantity = $4, status = $5, detail = $6
		WHERE item_id = $1`,
		item.ItemID, item.RoomID, item.VariantID, item.Quantity, item.Status, item.Detail,
	); err != nil {
		return false, mapPQError(err)
	}

	if changed {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO history_entries (history_id, item_id, prev_quantity, prev_status, prev_detail, prev_recorded_date)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			uuid.NewString(), item.ItemID, prevQuantity, prevStatus, prevDetail, prevRecorded,
		); err != nil {
			return false, mapPQError(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}
	item.RecordedDate = prevRecorded
	return changed, nil
}

func (r *PostgresInventoryRepo) DeletePlacedItem(ctx context.Context, itemID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM placed_items WHERE item_id = $1`, itemID)
	if err != nil {
		return mapPQError(err)
	}
	return checkAffected(res)
}

// ============================================
// History
// ============================================

const historySelect = `
	SELECT h.history_id::text, h.item_id::text, h.prev_quantity, h.prev_status,
	       h.prev_detail, h.prev_recorded_date, h.created_at,
	       COALESCE(k.kind_name, ''), COALESCE(rm.room_name, ''), COALESCE(l.location_name, '')
	FROM history_entries h
	JOIN placed_items i ON i.item_id = h.item_id
	LEFT JOIN rooms rm ON rm.room_id = i.room_id
	LEFT JOIN floors f ON f.floor_id = rm.floor_id
	LEFT JOIN locations l ON l.location_id = f.location_id
	LEFT JOIN object_variants v ON v.variant_id = i.variant_id
	LEFT JOIN object_kinds k ON k.kind_id = v.kind_id
`

func scanHistory(row interface{ Scan(...any) error }) (*domain.HistoryEntry, error) {
	var h domain.HistoryEntry
	err := row.Scan(&h.HistoryID, &h.ItemID, &h.PrevQuantity, &h.PrevStatus,
		&h.PrevDetail, &h.PrevRecordedDate, &h.CreatedAt,
		&h.KindName, &h.RoomName, &h.LocationName)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *PostgresInventoryRepo) ListHistory(ctx context.Context, f HistoryFilter) ([]*domain.HistoryEntry, error) {
	where := []string{}
	args := []any{}
	add := func(cond string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}
	if f.RoomID != "" {
		add("i.room_id = $%d", f.RoomID)
	}
	if f.KindID != "" {
		add("v.kind_id = $%d", f.KindID)
	}
	if f.VariantID != "" {
		add("i.variant_id = $%d", f.VariantID)
	}
	if f.Status != "" {
		add("h.prev_status = $%d", f.Status)
	}

	q := historySelect
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += ` ORDER BY h.prev_recorded_date DESC, COALESCE(l.location_name, ''),
	       COALESCE(f.floor_number, 0), COALESCE(rm.room_name, '')`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*domain.HistoryEntry{}
	for rows.Next() {
		h, err := scanHistory(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (r *PostgresInventoryRepo) ListHistoryForItem(ctx context.Context, itemID string) ([]*domain.HistoryEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		historySelect+` WHERE h.item_id = $1 ORDER BY h.prev_recorded_date DESC, h.created_at DESC`,
		itemID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*domain.HistoryEntry{}
	for rows.Next() {
		h, err := scanHistory(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (r *PostgresInventoryRepo) GetHistoryEntry(ctx context.Context, historyID string) (*domain.HistoryEntry, error) {
	h, err := scanHistory(r.db.QueryRowContext(ctx, historySelect+` WHERE h.history_id = $1`, historyID))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return h, nil
}

func (r *PostgresInventoryRepo) CreateHistoryEntry(ctx context.Context, e *domain.HistoryEntry) error {
	if e.HistoryID == "" {
		e.HistoryID = uuid.NewString()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO history_entries (history_id, item_id, prev_quantity, prev_status, prev_detail, prev_recorded_date)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		e.HistoryID, e.ItemID, e.PrevQuantity, e.PrevStatus, e.PrevDetail, e.PrevRecordedDate,
	)
	return mapPQError(err)
}

func (r *PostgresInventoryRepo) DeleteHistoryEntry(ctx context.Context, historyID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM history_entries WHERE history_id = $1`, historyID)
	if err != nil {
		return mapPQError(err)
	}
	return checkAffected(res)
}

// ============================================
// Bulk structure creation
// ============================================

// CreateStructure resolves every existing-or-new choice with get-or-create
// inside one transaction, creates the room and its items, and rolls the
// whole submission back on any failure.
func (r *PostgresInventoryRepo) CreateStructure(ctx context.Context, s *Structure) (string, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	sectorID := s.SectorID
	if sectorID == "" {
		sectorID, err = getOrCreate(ctx, tx,
			`SELECT sector_id::text FROM sectors WHERE sector_name = $1`,
			`INSERT INTO sectors (sector_id, sector_name) VALUES ($1, $2)`,
			s.SectorName)
		if err != nil {
			return "", err
		}
	}

	locationID := s.LocationID
	if locationID == "" {
		locationID, err = getOrCreate(ctx, tx,
			`SELECT location_id::text FROM locations WHERE location_name = $1`,
			`INSERT INTO locations (location_id, location_name, sector_id) VALUES ($1, $2, $3)`,
			s.LocationName, sectorID)
		if err != nil {
			return "", err
		}
	}

	floorID := s.FloorID
	if floorID == "" {
		err = tx.QueryRowContext(ctx,
			`SELECT floor_id::text FROM floors WHERE floor_number = $1 AND location_id = $2`,
			*s.FloorNumber, locationID,
		).Scan(&floorID)
		if err == sql.ErrNoRows {
			floorID = uuid.NewString()
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO floors (floor_id, floor_number, location_id) VALUES ($1, $2, $3)`,
				floorID, *s.FloorNumber, locationID); err != nil {
				return "", mapPQError(err)
			}
		} else if err != nil {
			return "", err
		}
	}

	roomTypeID := s.RoomTypeID
	if roomTypeID == "" {
		roomTypeID, err = getOrCreate(ctx, tx,
			`SELECT room_type_id::text FROM room_types WHERE room_type_name = $1`,
			`INSERT INTO room_types (room_type_id, room_type_name) VALUES ($1, $2)`,
			s.RoomTypeName)
		if err != nil {
			return "", err
		}
	}

	roomID := uuid.NewString()
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO rooms (room_id, room_name, floor_id, room_type_id) VALUES ($1, $2, $3, $4)`,
		roomID, s.RoomName, floorID, roomTypeID); err != nil {
		return "", mapPQError(err)
	}

	for _, row := range s.Items {
		categoryID := row.CategoryID
		if categoryID == "" {
			categoryID, err = getOrCreate(ctx, tx,
				`SELECT category_id::text FROM categories WHERE category_name = $1`,
				`INSERT INTO categories (category_id, category_name) VALUES ($1, $2)`,
				row.CategoryName)
			if err != nil {
				return "", err
			}
		}

		kindID := row.KindID
		if kindID == "" {
			kindID, err = getOrCreate(ctx, tx,
				`SELECT kind_id::text FROM object_kinds WHERE kind_name = $1`,
				`INSERT INTO object_kinds (kind_id, kind_name, category_id) VALUES ($1, $2, $3)`,
				row.KindName, categoryID)
			if err != nil {
				return "", err
			}
		}

		variantID := row.VariantID
		if variantID == "" {
			err = tx.QueryRowContext(ctx,
				`SELECT variant_id::text FROM object_variants WHERE kind_id = $1 AND brand = $2 AND material = $3`,
				kindID, row.Brand, row.Material,
			).Scan(&variantID)
			if err == sql.ErrNoRows {
				variantID = uuid.NewString()
				if _, err := tx.ExecContext(ctx,
					`INSERT INTO object_variants (variant_id, kind_id, brand, material) VALUES ($1, $2, $3, $4)`,
					variantID, kindID, row.Brand, row.Material); err != nil {
					return "", mapPQError(err)
				}
			} else if err != nil {
				return "", err
			}
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO placed_items (item_id, room_id, variant_id, quantity, status, detail, recorded_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			uuid.NewString(), roomID, variantID, row.Quantity, row.Status, row.Detail, time.Now()); err != nil {
			return "", mapPQError(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return roomID, nil
}

// getOrCreate looks a row up by name and inserts it with a fresh uuid when
// missing. The insert statement takes (id, name, extra...).
func getOrCreate(ctx context.Context, tx *sql.Tx, selectQ, insertQ, name string, extra ...any) (string, error) {
	var id string
	err := tx.QueryRowContext(ctx, selectQ, name).Scan(&id)
	if err == sql.ErrNoRows {
		id = uuid.NewString()
		args := append([]any{id, name}, extra...)
		if _, err := tx.ExecContext(ctx, insertQ, args...); err != nil {
			return "", mapPQError(err)
		}
		return id, nil
	}
	if err != nil {
		return "", err
	}
	return id, nil
}
