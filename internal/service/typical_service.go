package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/matiascayunao/pvsa-p/internal/domain"
	"github.com/matiascayunao/pvsa-p/internal/repository"
)

// TypicalService resolves the typical objects of a room type, seeding them
// from the built-in table the first time a room type with no links is
// queried.
type TypicalService interface {
	// ListForRoomType returns the active typical objects of the room type.
	// When the room type has no links yet and its name appears in the seed
	// table, the seed rows are created first and the fresh list returned.
	// Querying again never re-seeds: existing links make seeding a no-op.
	ListForRoomType(ctx context.Context, roomTypeID string) ([]*domain.TypicalObject, error)

	// Replace swaps the room type's typical objects for the given variants.
	Replace(ctx context.Context, roomTypeID string, variantIDs []string) ([]*domain.TypicalObject, error)
}

type typicalService struct {
	catalog   repository.CatalogRepo
	hierarchy repository.HierarchyRepo
	logger    *zap.Logger
}

func NewTypicalService(catalog repository.CatalogRepo, hierarchy repository.HierarchyRepo, logger *zap.Logger) TypicalService {
	return &typicalService{catalog: catalog, hierarchy: hierarchy, logger: logger}
}

func (s *typicalService) ListForRoomType(ctx context.Context, roomTypeID string) ([]*domain.TypicalObject, error) {
	if roomTypeID == "" {
		return nil, fmt.Errorf("room_type_id is required")
	}
	rt, err := s.hierarchy.GetRoomType(ctx, roomTypeID)
	if err != nil {
		return nil, err
	}
	list, err := s.catalog.ListTypicalObjects(ctx, roomTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list typical objects: %w", err)
	}
	if len(list) > 0 {
		return list, nil
	}
	entries, ok := typicalSeeds[rt.RoomTypeName]
	if !ok {
		return list, nil
	}
	if err := s.catalog.SeedTypicalObjects(ctx, roomTypeID, entries); err != nil {
		return nil, fmt.Errorf("failed to seed typical objects: %w", err)
	}
	s.logger.Info("typical objects seeded",
		zap.String("room_type_id", roomTypeID),
		zap.String("room_type", rt.RoomTypeName),
		zap.Int("entries", len(entries)))
	return s.catalog.ListTypicalObjects(ctx, roomTypeID)
}

func (s *typicalService) Replace(ctx context.Context, roomTypeID string, variantIDs []string) ([]*domain.TypicalObject, error) {
	if roomTypeID == "" {
		return nil, fmt.Errorf("room_type_id is required")
	}
	if _, err := s.hierarchy.GetRoomType(ctx, roomTypeID); err != nil {
		return nil, err
	}
	if err := s.catalog.ReplaceTypicalObjects(ctx, roomTypeID, variantIDs); err != nil {
		return nil, fmt.Errorf("failed to replace typical objects: %w", err)
	}
	return s.catalog.ListTypicalObjects(ctx, roomTypeID)
}
