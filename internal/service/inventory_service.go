package service

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/matiascayunao/pvsa-p/internal/domain"
	"github.com/matiascayunao/pvsa-p/internal/repository"
)

// CreateItemRequest holds the fields of a new placed item. RoomID and
// VariantID may be empty for an unassigned item.
type CreateItemRequest struct {
	RoomID    string `json:"room_id"`
	VariantID string `json:"variant_id"`
	Quantity  int    `json:"quantity"`
	Status    string `json:"status"`
	Detail    string `json:"detail"`
}

// UpdateItemRequest holds the full replacement state of a placed item.
type UpdateItemRequest struct {
	ItemID    string `json:"item_id"`
	RoomID    string `json:"room_id"`
	VariantID string `json:"variant_id"`
	Quantity  int    `json:"quantity"`
	Status    string `json:"status"`
	Detail    string `json:"detail"`
}

// UpdateItemResponse reports the saved item and whether the edit produced a
// history snapshot.
type UpdateItemResponse struct {
	Item           *domain.PlacedItem `json:"item"`
	HistoryCreated bool               `json:"history_created"`
}

// CreateHistoryRequest is the manual history-entry creation input.
type CreateHistoryRequest struct {
	ItemID       string    `json:"item_id"`
	PrevQuantity int       `json:"prev_quantity"`
	PrevStatus   string    `json:"prev_status"`
	PrevDetail   string    `json:"prev_detail"`
	PrevRecorded time.Time `json:"prev_recorded_date"`
}

// InventoryService manages placed items and their change history.
type InventoryService interface {
	ListItems(ctx context.Context, f repository.ItemFilter) ([]*domain.PlacedItem, error)
	GetItem(ctx context.Context, itemID string) (*domain.PlacedItem, error)
	CreateItem(ctx context.Context, req CreateItemRequest) (*domain.PlacedItem, error)

	// UpdateItem saves the new state and lets the repository decide whether a
	// history snapshot is due. The recorded date of the item never moves.
	UpdateItem(ctx context.Context, req UpdateItemRequest) (*UpdateItemResponse, error)

	DeleteItem(ctx context.Context, itemID string) error

	ListHistory(ctx context.Context, f repository.HistoryFilter) ([]*domain.HistoryEntry, error)
	ListItemHistory(ctx context.Context, itemID string) ([]*domain.HistoryEntry, error)
	GetHistoryEntry(ctx context.Context, historyID string) (*domain.HistoryEntry, error)
	CreateHistoryEntry(ctx context.Context, req CreateHistoryRequest) (*domain.HistoryEntry, error)
	DeleteHistoryEntry(ctx context.Context, historyID string) error
}

type inventoryService struct {
	repo   repository.InventoryRepo
	logger *zap.Logger
}

func NewInventoryService(repo repository.InventoryRepo, logger *zap.Logger) InventoryService {
	return &inventoryService{repo: repo, logger: logger}
}

func nullable(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func (s *inventoryService) ListItems(ctx context.Context, f repository.ItemFilter) ([]*domain.PlacedItem, error) {
	if f.Status != "" && !domain.ValidStatus(f.Status) {
		return nil, fmt.Errorf("unknown status %q", f.Status)
	}
	return s.repo.ListPlacedItems(ctx, f)
}

func (s *inventoryService) GetItem(ctx context.Context, itemID string) (*domain.PlacedItem, error) {
	if itemID == "" {
		return nil, fmt.Errorf("item_id is required")
	}
	return s.repo.GetPlacedItem(ctx, itemID)
}

func (s *inventoryService) CreateItem(ctx context.Context, req CreateItemRequest) (*domain.PlacedItem, error) {
	if req.Quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1")
	}
	if !domain.ValidStatus(req.Status) {
		return nil, fmt.Errorf("unknown status %q", req.Status)
	}
	item := &domain.PlacedItem{
		RoomID:       nullable(req.RoomID),
		VariantID:    nullable(req.VariantID),
		Quantity:     req.Quantity,
		Status:       req.Status,
		Detail:       strings.TrimSpace(req.Detail),
		RecordedDate: time.Now().UTC(),
	}
	if err := s.repo.CreatePlacedItem(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}
	s.logger.Info("item created",
		zap.String("item_id", item.ItemID),
		zap.String("status", item.Status),
		zap.Int("quantity", item.Quantity))
	return item, nil
}

func (s *inventoryService) UpdateItem(ctx context.Context, req UpdateItemRequest) (*UpdateItemResponse, error) {
	if req.ItemID == "" {
		return nil, fmt.Errorf("item_id is required")
	}
	if req.Quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1")
	}
	if !domain.ValidStatus(req.Status) {
		return nil, fmt.Errorf("unknown status %q", req.Status)
	}
	item := &domain.PlacedItem{
		ItemID:    req.ItemID,
		RoomID:    nullable(req.RoomID),
		VariantID: nullable(req.VariantID),
		Quantity:  req.Quantity,
		Status:    req.Status,
		Detail:    strings.TrimSpace(req.Detail),
	}
	changed, err := s.repo.UpdatePlacedItem(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}
	if changed {
		s.logger.Info("item changed, history snapshot created", zap.String("item_id", item.ItemID))
	}
	return &UpdateItemResponse{Item: item, HistoryCreated: changed}, nil
}

func (s *inventoryService) DeleteItem(ctx context.Context, itemID string) error {
	if itemID == "" {
		return fmt.Errorf("item_id is required")
	}
	return s.repo.DeletePlacedItem(ctx, itemID)
}

func (s *inventoryService) ListHistory(ctx context.Context, f repository.HistoryFilter) ([]*domain.HistoryEntry, error) {
	if f.Status != "" && !domain.ValidStatus(f.Status) {
		return nil, fmt.Errorf("unknown status %q", f.Status)
	}
	return s.repo.ListHistory(ctx, f)
}

func (s *inventoryService) ListItemHistory(ctx context.Context, itemID string) ([]*domain.HistoryEntry, error) {
	if itemID == "" {
		return nil, fmt.Errorf("item_id is required")
	}
	return s.repo.ListHistoryForItem(ctx, itemID)
}

func (s *inventoryService) GetHistoryEntry(ctx context.Context, historyID string) (*domain.HistoryEntry, error) {
	if historyID == "" {
		return nil, fmt.Errorf("history_id is required")
	}
	return s.repo.GetHistoryEntry(ctx, historyID)
}

func (s *inventoryService) CreateHistoryEntry(ctx context.Context, req CreateHistoryRequest) (*domain.HistoryEntry, error) {
	if req.ItemID == "" {
		return nil, fmt.Errorf("item_id is required")
	}
	if !domain.ValidStatus(req.PrevStatus) {
		return nil, fmt.Errorf("unknown status %q", req.PrevStatus)
	}
	e := &domain.HistoryEntry{
		ItemID:           req.ItemID,
		PrevQuantity:     req.PrevQuantity,
		PrevStatus:       req.PrevStatus,
		PrevDetail:       strings.TrimSpace(req.PrevDetail),
		PrevRecordedDate: req.PrevRecorded,
		CreatedAt:        time.Now().UTC(),
	}
	if e.PrevRecordedDate.IsZero() {
		e.PrevRecordedDate = e.CreatedAt
	}
	if err := s.repo.CreateHistoryEntry(ctx, e); err != nil {
		return nil, fmt.Errorf("failed to create history entry: %w", err)
	}
	return e, nil
}

func (s *inventoryService) DeleteHistoryEntry(ctx context.Context, historyID string) error {
	if historyID == "" {
		return fmt.Errorf("history_id is required")
	}
	return s.repo.DeleteHistoryEntry(ctx, historyID)
}
