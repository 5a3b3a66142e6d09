package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/matiascayunao/pvsa-p/internal/domain"
	"github.com/matiascayunao/pvsa-p/internal/repository"
)

// StructureItemRequest is one inventory row of a bulk submission. A row
// with no kind reference at all (no id, no name) counts as blank and is
// skipped.
type StructureItemRequest struct {
	CategoryID   string `json:"category_id"`
	CategoryName string `json:"category_name"`
	KindID       string `json:"kind_id"`
	KindName     string `json:"kind_name"`
	VariantID    string `json:"variant_id"`
	Brand        string `json:"brand"`
	Material     string `json:"material"`
	Quantity     int    `json:"quantity"`
	Status       string `json:"status"`
	Detail       string `json:"detail"`
}

// CreateStructureRequest is the bulk structure-creation input. Each
// hierarchy level takes either an existing id or a new name.
type CreateStructureRequest struct {
	SectorID     string                 `json:"sector_id"`
	SectorName   string                 `json:"sector_name"`
	LocationID   string                 `json:"location_id"`
	LocationName string                 `json:"location_name"`
	FloorID      string                 `json:"floor_id"`
	FloorNumber  *int                   `json:"floor_number"`
	RoomTypeID   string                 `json:"room_type_id"`
	RoomTypeName string                 `json:"room_type_name"`
	RoomName     string                 `json:"room_name"`
	Items        []StructureItemRequest `json:"items"`
}

// CreateStructureResponse reports the created room and how many items were
// placed in it.
type CreateStructureResponse struct {
	RoomID    string `json:"room_id"`
	ItemCount int    `json:"item_count"`
}

// StructureService runs the bulk structure-creation flow.
type StructureService interface {
	// CreateStructure validates the submission and persists the whole thing
	// atomically. Partial trees are never left behind on failure.
	CreateStructure(ctx context.Context, req CreateStructureRequest) (*CreateStructureResponse, error)
}

type structureService struct {
	repo   repository.InventoryRepo
	logger *zap.Logger
}

func NewStructureService(repo repository.InventoryRepo, logger *zap.Logger) StructureService {
	return &structureService{repo: repo, logger: logger}
}

func blankRow(r StructureItemRequest) bool {
	return r.VariantID == "" && r.KindID == "" && strings.TrimSpace(r.KindName) == ""
}

func (s *structureService) CreateStructure(ctx context.Context, req CreateStructureRequest) (*CreateStructureResponse, error) {
	if req.SectorID == "" && strings.TrimSpace(req.SectorName) == "" {
		return nil, fmt.Errorf("sector_id or sector_name is required")
	}
	if req.LocationID == "" && strings.TrimSpace(req.LocationName) == "" {
		return nil, fmt.Errorf("location_id or location_name is required")
	}
	if req.FloorID == "" && req.FloorNumber == nil {
		return nil, fmt.Errorf("floor_id or floor_number is required")
	}
	if req.RoomTypeID == "" && strings.TrimSpace(req.RoomTypeName) == "" {
		return nil, fmt.Errorf("room_type_id or room_type_name is required")
	}
	roomName := strings.TrimSpace(req.RoomName)
	if roomName == "" {
		return nil, fmt.Errorf("room_name is required")
	}

	st := &repository.Structure{
		SectorID:     req.SectorID,
		SectorName:   strings.TrimSpace(req.SectorName),
		LocationID:   req.LocationID,
		LocationName: strings.TrimSpace(req.LocationName),
		FloorID:      req.FloorID,
		FloorNumber:  req.FloorNumber,
		RoomTypeID:   req.RoomTypeID,
		RoomTypeName: strings.TrimSpace(req.RoomTypeName),
		RoomName:     roomName,
	}
	for i, row := range req.Items {
		if blankRow(row) {
			continue
		}
		if row.Quantity < 1 {
			return nil, fmt.Errorf("item %d: quantity must be at least 1", i+1)
		}
		if !domain.ValidStatus(row.Status) {
			return nil, fmt.Errorf("item %d: unknown status %q", i+1, row.Status)
		}
		if row.VariantID == "" && row.KindID == "" {
			if row.CategoryID == "" && strings.TrimSpace(row.CategoryName) == "" {
				return nil, fmt.Errorf("item %d: category_id or category_name is required for a new kind", i+1)
			}
		}
		st.Items = append(st.Items, repository.StructureItem{
			CategoryID:   row.CategoryID,
			CategoryName: strings.TrimSpace(row.CategoryName),
			KindID:       row.KindID,
			KindName:     strings.TrimSpace(row.KindName),
			VariantID:    row.VariantID,
			Brand:        strings.TrimSpace(row.Brand),
			Material:     strings.TrimSpace(row.Material),
			Quantity:     row.Quantity,
			Status:       row.Status,
			Detail:       strings.TrimSpace(row.Detail),
		})
	}

	roomID, err := s.repo.CreateStructure(ctx, st)
	if err != nil {
		return nil, fmt.Errorf("failed to create structure: %w", err)
	}
	s.logger.Info("structure created",
		zap.String("room_id", roomID),
		zap.String("room_name", roomName),
		zap.Int("items", len(st.Items)))
	return &CreateStructureResponse{RoomID: roomID, ItemCount: len(st.Items)}, nil
}
