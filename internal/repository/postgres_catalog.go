package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/matiascayunao/pvsa-p/internal/domain"
)

type PostgresCatalogRepo struct {
	db *sql.DB
}

func NewPostgresCatalogRepo(db *sql.DB) *PostgresCatalogRepo {
	return &PostgresCatalogRepo{db: db}
}

// ============================================
// Category
// ============================================

func (r *PostgresCatalogRepo) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT category_id::text, category_name FROM categories ORDER BY category_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.CategoryID, &c.CategoryName); err != nil {
			return nil, err
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

func (r *PostgresCatalogRepo) GetCategory(ctx context.Context, categoryID string) (*domain.Category, error) {
	var c domain.Category
	err := r.db.QueryRowContext(ctx,
		`SELECT category_id::text, category_name FROM categories WHERE category_id = $1`,
		categoryID,
	).Scan(&c.CategoryID, &c.CategoryName)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PostgresCatalogRepo) CreateCategory(ctx context.Context, c *domain.Category) error {
	if c.CategoryID == "" {
		c.CategoryID = uuid.NewString()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO categories (category_id, category_name) VALUES ($1, $2)`,
		c.CategoryID, c.CategoryName,
	)
	return mapPQError(err)
}

func (r *PostgresCatalogRepo) UpdateCategory(ctx context.Context, c *domain.Category) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE categories SET category_name = $2 WHERE category_id = $1`,
		c.CategoryID, c.CategoryName,
	)
	if err != nil {
		return mapPQError(err)
	}
	return checkAffected(res)
}

func (r *PostgresCatalogRepo) DeleteCategory(ctx context.Context, categoryID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE category_id = $1`, categoryID)
	if err != nil {
		return mapPQError(err)
	}
	return checkAffected(res)
}

// ============================================
// ObjectKind
// ============================================

func (r *PostgresCatalogRepo) ListObjectKinds(ctx context.Context, categoryID string) ([]*domain.ObjectKind, error) {
	q := `
		SELECT k.kind_id::text, k.kind_name, k.category_id::text, c.category_name
		FROM object_kinds k
		JOIN categories c ON c.category_id = k.category_id
	`
	args := []any{}
	if categoryID != "" {
		q += ` WHERE k.category_id = $1`
		args = append(args, categoryID)
	}
	q += ` ORDER BY c.category_name, k.kind_name`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*domain.ObjectKind{}
	for rows.Next() {
		var k domain.ObjectKind
		if err := rows.Scan(&k.KindID, &k.KindName, &k.CategoryID, &k.CategoryName); err != nil {
			return nil, err
		}
		out = append(out, &k)
	}
	return out, rows.Err()
}

func (r *PostgresCatalogRepo) GetObjectKind(ctx context.Context, kindID string) (*domain.ObjectKind, error) {
	var k domain.ObjectKind
	err := r.db.QueryRowContext(ctx, `
		SELECT k.kind_id::text, k.kind_name, k.category_id::text, c.category_name
		FROM object_kinds k
		JOIN categories c ON c.category_id = k.category_id
		WHERE k.kind_id = $1`,
		kindID,
	).Scan(&k.KindID, &k.KindName, &k.CategoryID, &k.CategoryName)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &k, nil
}

func (r *PostgresCatalogRepo) CreateObjectKind(ctx context.Context, k *domain.ObjectKind) error {
	if k.KindID == "" {
		k.KindID = uuid.NewString()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO object_kinds (kind_id, kind_name, category_id) VALUES ($1, $2, $3)`,
		k.KindID, k.KindName, k.CategoryID,
	)
	return mapPQError(err)
}

func (r *PostgresCatalogRepo) UpdateObjectKind(ctx context.Context, k *domain.ObjectKind) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE object_kinds SET kind_name = $2, category_id = $3 WHERE kind_id = $1`,
		k.KindID, k.KindName, k.CategoryID,
	)
	if err != nil {
		return mapPQError(err)
	}
	return checkAffected(res)
}

func (r *PostgresCatalogRepo) DeleteObjectKind(ctx context.Context, kindID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM object_kinds WHERE kind_id = $1`, kindID)
	if err != nil {
		return mapPQError(err)
	}
	return checkAffected(res)
}

// ============================================
// ObjectVariant
// ============================================

func (r *PostgresCatalogRepo) ListObjectVariants(ctx context.Context, kindID, categoryID string) ([]*domain.ObjectVariant, error) {
	q := `
		SELECT v.variant_id::text, v.kind_id::text, v.brand, v.material, k.kind_name
		FROM object_variants v
		JOIN object_kinds k ON k.kind_id = v.kind_id
	`
	where := ""
	args := []any{}
	if kindID != "" {
		args = append(args, kindID)
		where = fmt.Sprintf("v.kind_id = $%d", len(args))
	}
	if categoryID != "" {
		args = append(args, categoryID)
		cond := fmt.Sprintf("k.category_id = $%d", len(args))
		if where != "" {
			where += " AND " + cond
		} else {
			where = cond
		}
	}
	if where != "" {
		q += " WHERE " + where
	}
	q += ` ORDER BY k.kind_name, v.brand, v.material`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*domain.ObjectVariant{}
	for rows.Next() {
		var v domain.ObjectVariant
		if err := rows.Scan(&v.VariantID, &v.KindID, &v.Brand, &v.Material, &v.KindName); err != nil {
			return nil, err
		}
		out = append(out, &v)
	}
	return out, rows.Err()
}

func (r *PostgresCatalogRepo) GetObjectVariant(ctx context.Context, variantID string) (*domain.ObjectVariant, error) {
	var v domain.ObjectVariant
	err := r.db.QueryRowContext(ctx, `
		SELECT v.variant_id::text, v.kind_id::text, v.brand, v.material, k.kind_name
		FROM object_variants v
		JOIN object_kinds k ON k.kind_id = v.kind_id
		WHERE v.variant_id = $1`,
		variantID,
	).Scan(&v.VariantID, &v.KindID, &v.Brand, &v.Material, &v.KindName)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *PostgresCatalogRepo) CreateObjectVariant(ctx context.Context, v *domain.ObjectVariant) error {
	if v.VariantID == "" {
		v.VariantID = uuid.NewString()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO object_variants (variant_id, kind_id, brand, material) VALUES ($1, $2, $3, $4)`,
		v.VariantID, v.KindID, v.Brand, v.Material,
	)
	return mapPQError(err)
}

func (r *PostgresCatalogRepo) UpdateObjectVariant(ctx context.Context, v *domain.ObjectVariant) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE object_variants SET kind_id = $2, brand = $3, material = $4 WHERE variant_id = $1`,
		v.VariantID, v.KindID, v.Brand, v.Material,
	)
	if err != nil {
		return mapPQError(err)
	}
	return checkAffected(res)
}

func (r *PostgresCatalogRepo) DeleteObjectVariant(ctx context.Context, variantID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM object_variants WHERE variant_id = $1`, variantID)
	if err != nil {
		return mapPQError(err)
	}
	return checkAffected(res)
}

// ============================================
// Typical objects
// ============================================

const typicalSelect = `
	SELECT t.typical_id::text, t.room_type_id::text, t.variant_id::text, t.active, t.sort_order,
	       c.category_id::text, c.category_name, k.kind_id::text, k.kind_name, v.brand, v.material
	FROM room_type_typical_objects t
	JOIN object_variants v ON v.variant_id = t.variant_id
	JOIN object_kinds k ON k.kind_id = v.kind_id
	JOIN categories c ON c.category_id = k.category_id
`

func (r *PostgresCatalogRepo) ListTypicalObjects(ctx context.Context, roomTypeID string) ([]*domain.TypicalObject, error) {
	rows, err := r.db.QueryContext(ctx, typicalSelect+`
		WHERE t.room_type_id = $1 AND t.active
		ORDER BY t.sort_order, c.category_name, k.kind_name, v.brand, v.material`,
		roomTypeID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*domain.TypicalObject{}
	for rows.Next() {
		var t domain.TypicalObject
		if err := rows.Scan(&t.TypicalID, &t.RoomTypeID, &t.VariantID, &t.Active, &t.SortOrder,
			&t.CategoryID, &t.CategoryName, &t.KindID, &t.KindName, &t.Brand, &t.Material); err != nil {
			return nil, err
		}
		out = append(out, &t)
	}
	return out, rows.Err()
}

// SeedTypicalObjects get-or-creates the whole category -> kind -> blank
// variant -> link chain for each entry inside one transaction, so a failure
// partway cannot leave a category or kind without its link.
func (r *PostgresCatalogRepo) SeedTypicalObjects(ctx context.Context, roomTypeID string, entries []SeedEntry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	order := 0
	for _, e := range entries {
		var categoryID string
		err := tx.QueryRowContext(ctx,
			`SELECT category_id::text FROM categories WHERE category_name = $1`, e.CategoryName,
		).Scan(&categoryID)
		if err == sql.ErrNoRows {
			categoryID = uuid.NewString()
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO categories (category_id, category_name) VALUES ($1, $2)`,
				categoryID, e.CategoryName); err != nil {
				return mapPQError(err)
			}
		} else if err != nil {
			return err
		}

		// Kind names are globally unique. When the kind already exists under
		// a different category it keeps that category; the seed only decides
		// the category for kinds it creates itself.
		var kindID string
		err = tx.QueryRowContext(ctx,
			`SELECT kind_id::text FROM object_kinds WHERE kind_name = $1`, e.KindName,
		).Scan(&kindID)
		if err == sql.ErrNoRows {
			kindID = uuid.NewString()
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO object_kinds (kind_id, kind_name, category_id) VALUES ($1, $2, $3)`,
				kindID, e.KindName, categoryID); err != nil {
				return mapPQError(err)
			}
		} else if err != nil {
			return err
		}

		var variantID string
		err = tx.QueryRowContext(ctx,
			`SELECT variant_id::text FROM object_variants WHERE kind_id = $1 AND brand = '' AND material = ''`,
			kindID,
		).Scan(&variantID)
		if err == sql.ErrNoRows {
			variantID = uuid.NewString()
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO object_variants (variant_id, kind_id, brand, material) VALUES ($1, $2, '', '')`,
				variantID, kindID); err != nil {
				return mapPQError(err)
			}
		} else if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO room_type_typical_objects (typical_id, room_type_id, variant_id, active, sort_order)
			VALUES ($1, $2, $3, TRUE, $4)
			ON CONFLICT (room_type_id, variant_id) DO NOTHING`,
			uuid.NewString(), roomTypeID, variantID, order); err != nil {
			return mapPQError(err)
		}
		order++
	}

	return tx.Commit()
}

func (r *PostgresCatalogRepo) ReplaceTypicalObjects(ctx context.Context, roomTypeID string, variantIDs []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM room_type_typical_objects WHERE room_type_id = $1`, roomTypeID); err != nil {
		return err
	}
	for i, variantID := range variantIDs {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO room_type_typical_objects (typical_id, room_type_id, variant_id, active, sort_order)
			VALUES ($1, $2, $3, TRUE, $4)`,
			uuid.NewString(), roomTypeID, variantID, i); err != nil {
			return mapPQError(err)
		}
	}

	return tx.Commit()
}
