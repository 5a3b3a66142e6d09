package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

type PostgresSummaryRepo struct {
	db *sql.DB
}

func NewPostgresSummaryRepo(db *sql.DB) *PostgresSummaryRepo {
	return &PostgresSummaryRepo{db: db}
}

// summaryFrom hangs the full path off placed_items. The room chain is LEFT
// joined so unassigned items survive into the by-object grouping; queries
// that group by sector/location add the IS NOT NULL guard instead.
const summaryFrom = `
	FROM placed_items i
	LEFT JOIN rooms rm ON rm.room_id = i.room_id
	LEFT JOIN floors f ON f.floor_id = rm.floor_id
	LEFT JOIN locations l ON l.location_id = f.location_id
	LEFT JOIN sectors s ON s.sector_id = l.sector_id
	LEFT JOIN object_variants v ON v.variant_id = i.variant_id
	LEFT JOIN object_kinds k ON k.kind_id = v.kind_id
`

const statusSums = `
	COALESCE(SUM(i.quantity), 0),
	COALESCE(SUM(i.quantity) FILTER (WHERE i.status = 'good'), 0),
	COALESCE(SUM(i.quantity) FILTER (WHERE i.status = 'pending'), 0),
	COALESCE(SUM(i.quantity) FILTER (WHERE i.status = 'bad'), 0)
`

// summaryWhere renders the filter as AND-composed conditions. Filters on the
// room or catalog path implicitly exclude rows where that path is NULL,
// same as the admin report.
func summaryWhere(f SummaryFilter) (string, []any) {
	conds := []string{}
	args := []any{}
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.SectorID != "" {
		add("s.sector_id = $%d", f.SectorID)
	}
	if f.LocationID != "" {
		add("l.location_id = $%d", f.LocationID)
	}
	if f.FloorID != "" {
		add("f.floor_id = $%d", f.FloorID)
	}
	if f.RoomTypeID != "" {
		add("rm.room_type_id = $%d", f.RoomTypeID)
	}
	if f.CategoryID != "" {
		add("k.category_id = $%d", f.CategoryID)
	}
	if f.KindID != "" {
		add("k.kind_id = $%d", f.KindID)
	}
	if f.VariantID != "" {
		add("i.variant_id = $%d", f.VariantID)
	}
	if f.Status != "" {
		add("i.status = $%d", f.Status)
	}
	if f.Brand != "" {
		add("v.brand = $%d", f.Brand)
	}
	if f.Material != "" {
		add("v.material = $%d", f.Material)
	}
	if len(conds) == 0 {
		return "", args
	}
	return strings.Join(conds, " AND "), args
}

func (r *PostgresSummaryRepo) Aggregate(ctx context.Context, f SummaryFilter) (*SummaryData, error) {
	where, args := summaryWhere(f)
	and := func(extra string) string {
		if where == "" {
			return " WHERE " + extra
		}
		return " WHERE " + where + " AND " + extra
	}

	data := &SummaryData{
		BySector:   []GroupTotals{},
		ByLocation: []GroupTotals{},
		ByObject:   []GroupTotals{},
		Bad:        []BadItem{},
	}

	// By sector: items without a room carry no sector and are excluded.
	q := `SELECT s.sector_id::text, s.sector_name, ` + statusSums + summaryFrom +
		and("i.room_id IS NOT NULL") +
		` GROUP BY s.sector_id, s.sector_name ORDER BY s.sector_name`
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var g GroupTotals
		if err := rows.Scan(&g.ID, &g.Name, &g.Total, &g.Good, &g.Pending, &g.Bad); err != nil {
			rows.Close()
			return nil, err
		}
		data.BySector = append(data.BySector, g)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// By location, carrying the parent sector name for display.
	q = `SELECT l.location_id::text, l.location_name, s.sector_name, ` + statusSums + summaryFrom +
		and("i.room_id IS NOT NULL") +
		` GROUP BY l.location_id, l.location_name, s.sector_name
		  ORDER BY s.sector_name, l.location_name`
	rows, err = r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var g GroupTotals
		if err := rows.Scan(&g.ID, &g.Name, &g.SectorName, &g.Total, &g.Good, &g.Pending, &g.Bad); err != nil {
			rows.Close()
			return nil, err
		}
		data.ByLocation = append(data.ByLocation, g)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// By object kind: brand/material differences merge; unassigned items stay.
	q = `SELECT COALESCE(k.kind_id::text, ''), COALESCE(k.kind_name, ''), ` + statusSums + summaryFrom
	if where != "" {
		q += " WHERE " + where
	}
	q += ` GROUP BY k.kind_id, k.kind_name ORDER BY COALESCE(k.kind_name, '')`
	rows, err = r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var g GroupTotals
		if err := rows.Scan(&g.ID, &g.Name, &g.Total, &g.Good, &g.Pending, &g.Bad); err != nil {
			rows.Close()
			return nil, err
		}
		data.ByObject = append(data.ByObject, g)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Bad-condition rows with their full path, for the per-object detail.
	q = `SELECT i.item_id::text, COALESCE(k.kind_id::text, ''), COALESCE(k.kind_name, ''),
	       COALESCE(s.sector_name, ''), COALESCE(l.location_name, ''),
	       COALESCE(f.floor_number, 0), COALESCE(rm.room_name, ''),
	       i.quantity, i.detail, i.recorded_date` + summaryFrom +
		and("i.status = 'bad'") +
		` ORDER BY COALESCE(k.kind_name, ''), COALESCE(s.sector_name, ''),
		  COALESCE(l.location_name, ''), COALESCE(f.floor_number, 0), COALESCE(rm.room_name, '')`
	rows, err = r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var b BadItem
		if err := rows.Scan(&b.ItemID, &b.KindID, &b.KindName, &b.SectorName, &b.LocationName,
			&b.FloorNumber, &b.RoomName, &b.Quantity, &b.Detail, &b.RecordedDate); err != nil {
			rows.Close()
			return nil, err
		}
		data.Bad = append(data.Bad, b)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return data, nil
}

// ExportTree loads the full inventory ordered for the workbook: locations by
// (sector, location), then floors by number, rooms by name, items by kind.
func (r *PostgresSummaryRepo) ExportTree(ctx context.Context) ([]*ExportLocation, error) {
	locRows, err := r.db.QueryContext(ctx, `
		SELECT l.location_id::text, l.location_name, s.sector_name
		FROM locations l
		JOIN sectors s ON s.sector_id = l.sector_id
		ORDER BY s.sector_name, l.location_name`)
	if err != nil {
		return nil, err
	}
	locs := []*ExportLocation{}
	byLoc := map[string]*ExportLocation{}
	for locRows.Next() {
		var l ExportLocation
		if err := locRows.Scan(&l.LocationID, &l.LocationName, &l.SectorName); err != nil {
			locRows.Close()
			return nil, err
		}
		locs = append(locs, &l)
		byLoc[l.LocationID] = &l
	}
	locRows.Close()
	if err := locRows.Err(); err != nil {
		return nil, err
	}

	itemRows, err := r.db.QueryContext(ctx, `
		SELECT i.room_id::text, COALESCE(k.kind_name, ''), COALESCE(v.brand, ''), COALESCE(v.material, ''),
		       i.quantity, i.status, i.detail, i.recorded_date
		FROM placed_items i
		LEFT JOIN object_variants v ON v.variant_id = i.variant_id
		LEFT JOIN object_kinds k ON k.kind_id = v.kind_id
		WHERE i.room_id IS NOT NULL
		ORDER BY COALESCE(k.kind_name, ''), i.recorded_date`)
	if err != nil {
		return nil, err
	}
	itemsByRoom := map[string][]ExportItem{}
	for itemRows.Next() {
		var roomID string
		var it ExportItem
		if err := itemRows.Scan(&roomID, &it.KindName, &it.Brand, &it.Material,
			&it.Quantity, &it.Status, &it.Detail, &it.RecordedDate); err != nil {
			itemRows.Close()
			return nil, err
		}
		itemsByRoom[roomID] = append(itemsByRoom[roomID], it)
	}
	itemRows.Close()
	if err := itemRows.Err(); err != nil {
		return nil, err
	}

	roomRows, err := r.db.QueryContext(ctx, `
		SELECT rm.room_id::text, rm.room_name, rm.floor_id::text
		FROM rooms rm
		ORDER BY rm.room_name`)
	if err != nil {
		return nil, err
	}
	roomsByFloor := map[string][]ExportRoom{}
	for roomRows.Next() {
		var room ExportRoom
		var floorID string
		if err := roomRows.Scan(&room.RoomID, &room.RoomName, &floorID); err != nil {
			roomRows.Close()
			return nil, err
		}
		room.Items = itemsByRoom[room.RoomID]
		roomsByFloor[floorID] = append(roomsByFloor[floorID], room)
	}
	roomRows.Close()
	if err := roomRows.Err(); err != nil {
		return nil, err
	}

	floorRows, err := r.db.QueryContext(ctx, `
		SELECT f.floor_id::text, f.floor_number, f.location_id::text
		FROM floors f
		ORDER BY f.floor_number`)
	if err != nil {
		return nil, err
	}
	for floorRows.Next() {
		var fl ExportFloor
		var locationID string
		if err := floorRows.Scan(&fl.FloorID, &fl.FloorNumber, &locationID); err != nil {
			floorRows.Close()
			return nil, err
		}
		fl.Rooms = roomsByFloor[fl.FloorID]
		if loc, ok := byLoc[locationID]; ok {
			loc.Floors = append(loc.Floors, fl)
		}
	}
	floorRows.Close()
	if err := floorRows.Err(); err != nil {
		return nil, err
	}

	return locs, nil
}
