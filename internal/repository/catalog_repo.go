package repository

import (
	"context"

	"github.com/matiascayunao/pvsa-p/internal/domain"
)

// SeedEntry is one (category, object-kind) pair from the typical-object seed
// table. Entries keep the order of the static table; seeding assigns
// sequential sort order from it.
type SeedEntry struct {
	CategoryName string
	KindName     string
}

// CatalogRepo covers the object catalog: categories, object kinds, object
// variants, and the typical-object links per room type.
type CatalogRepo interface {
	ListCategories(ctx context.Context) ([]*domain.Category, error)
	GetCategory(ctx context.Context, categoryID string) (*domain.Category, error)
	CreateCategory(ctx context.Context, c *domain.Category) error
	UpdateCategory(ctx context.Context, c *domain.Category) error
	DeleteCategory(ctx context.Context, categoryID string) error

	ListObjectKinds(ctx context.Context, categoryID string) ([]*domain.ObjectKind, error)
	GetObjectKind(ctx context.Context, kindID string) (*domain.ObjectKind, error)
	CreateObjectKind(ctx context.Context, k *domain.ObjectKind) error
	UpdateObjectKind(ctx context.Context, k *domain.ObjectKind) error
	DeleteObjectKind(ctx context.Context, kindID string) error

	ListObjectVariants(ctx context.Context, kindID, categoryID string) ([]*domain.ObjectVariant, error)
	GetObjectVariant(ctx context.Context, variantID string) (*domain.ObjectVariant, error)
	CreateObjectVariant(ctx context.Context, v *domain.ObjectVariant) error
	UpdateObjectVariant(ctx context.Context, v *domain.ObjectVariant) error
	DeleteObjectVariant(ctx context.Context, variantID string) error

	// ListTypicalObjects returns the active typical objects for a room type
	// with category/kind/variant labels joined, ordered by sort order.
	ListTypicalObjects(ctx context.Context, roomTypeID string) ([]*domain.TypicalObject, error)

	// SeedTypicalObjects creates any missing category, kind, blank variant and
	// link rows for the given seed entries, in one transaction. A kind name
	// that already exists under a different category keeps its category; the
	// seed never reassigns it. Existing links are left untouched, so seeding
	// twice is a no-op for already-linked variants.
	SeedTypicalObjects(ctx context.Context, roomTypeID string, entries []SeedEntry) error

	// ReplaceTypicalObjects deletes the room type's links and recreates them
	// from variantIDs with sequential sort order, in one transaction.
	ReplaceTypicalObjects(ctx context.Context, roomTypeID string, variantIDs []string) error
}
