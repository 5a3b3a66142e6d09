package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/matiascayunao/pvsa-p/internal/domain"
	"github.com/matiascayunao/pvsa-p/internal/repository"
)

// HierarchyService manages the physical hierarchy: sectors, locations,
// floors, room types and rooms.
type HierarchyService interface {
	ListSectors(ctx context.Context) ([]*domain.Sector, error)
	GetSector(ctx context.Context, sectorID string) (*domain.Sector, error)
	CreateSector(ctx context.Context, name string) (*domain.Sector, error)
	UpdateSector(ctx context.Context, sectorID, name string) (*domain.Sector, error)
	DeleteSector(ctx context.Context, sectorID string) error

	ListLocations(ctx context.Context, sectorID string) ([]*domain.Location, error)
	GetLocation(ctx context.Context, locationID string) (*domain.Location, error)
	CreateLocation(ctx context.Context, sectorID, name string) (*domain.Location, error)
	UpdateLocation(ctx context.Context, locationID, sectorID, name string) (*domain.Location, error)
	DeleteLocation(ctx context.Context, locationID string) error

	ListFloors(ctx context.Context, locationID string) ([]*domain.Floor, error)
	GetFloor(ctx context.Context, floorID string) (*domain.Floor, error)
	CreateFloor(ctx context.Context, locationID string, number int) (*domain.Floor, error)
	UpdateFloor(ctx context.Context, floorID, locationID string, number int) (*domain.Floor, error)
	DeleteFloor(ctx context.Context, floorID string) error

	ListRoomTypes(ctx context.Context) ([]*domain.RoomType, error)
	GetRoomType(ctx context.Context, roomTypeID string) (*domain.RoomType, error)
	CreateRoomType(ctx context.Context, name string) (*domain.RoomType, error)
	UpdateRoomType(ctx context.Context, roomTypeID, name string) (*domain.RoomType, error)
	DeleteRoomType(ctx context.Context, roomTypeID string) error

	ListRooms(ctx context.Context, floorID, roomTypeID string) ([]*domain.Room, error)
	GetRoom(ctx context.Context, roomID string) (*domain.Room, error)
	CreateRoom(ctx context.Context, name, floorID, roomTypeID string) (*domain.Room, error)
	UpdateRoom(ctx context.Context, roomID, name, floorID, roomTypeID string) (*domain.Room, error)
	DeleteRoom(ctx context.Context, roomID string) error
}

type hierarchyService struct {
	repo   repository.HierarchyRepo
	logger *zap.Logger
}

func NewHierarchyService(repo repository.HierarchyRepo, logger *zap.Logger) HierarchyService {
	return &hierarchyService{repo: repo, logger: logger}
}

func (s *hierarchyService) ListSectors(ctx context.Context) ([]*domain.Sector, error) {
	return s.repo.ListSectors(ctx)
}

func (s *hierarchyService) GetSector(ctx context.Context, sectorID string) (*domain.Sector, error) {
	if sectorID == "" {
		return nil, fmt.Errorf("sector_id is required")
	}
	return s.repo.GetSector(ctx, sectorID)
}

func (s *hierarchyService) CreateSector(ctx context.Context, name string) (*domain.Sector, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("sector_name is required")
	}
	sec := &domain.Sector{SectorName: name}
	if err := s.repo.CreateSector(ctx, sec); err != nil {
		return nil, fmt.Errorf("failed to create sector: %w", err)
	}
	s.logger.Info("sector created", zap.String("sector_id", sec.SectorID), zap.String("name", name))
	return sec, nil
}

func (s *hierarchyService) UpdateSector(ctx context.Context, sectorID, name string) (*domain.Sector, error) {
	name = strings.TrimSpace(name)
	if sectorID == "" || name == "" {
		return nil, fmt.Errorf("sector_id and sector_name are required")
	}
	sec := &domain.Sector{SectorID: sectorID, SectorName: name}
	if err := s.repo.UpdateSector(ctx, sec); err != nil {
		return nil, fmt.Errorf("failed to update sector: %w", err)
	}
	return sec, nil
}

func (s *hierarchyService) DeleteSector(ctx context.Context, sectorID string) error {
	if sectorID == "" {
		return fmt.Errorf("sector_id is required")
	}
	return s.repo.DeleteSector(ctx, sectorID)
}

func (s *hierarchyService) ListLocations(ctx context.Context, sectorID string) ([]*domain.Location, error) {
	return s.repo.ListLocations(ctx, sectorID)
}

func (s *hierarchyService) GetLocation(ctx context.Context, locationID string) (*domain.Location, error) {
	if locationID == "" {
		return nil, fmt.Errorf("location_id is required")
	}
	return s.repo.GetLocation(ctx, locationID)
}

func (s *hierarchyService) CreateLocation(ctx context.Context, sectorID, name string) (*domain.Location, error) {
	name = strings.TrimSpace(name)
	if sectorID == "" || name == "" {
		return nil, fmt.Errorf("sector_id and location_name are required")
	}
	loc := &domain.Location{SectorID: sectorID, LocationName: name}
	if err := s.repo.CreateLocation(ctx, loc); err != nil {
		return nil, fmt.Errorf("failed to create location: %w", err)
	}
	s.logger.Info("location created", zap.String("location_id", loc.LocationID), zap.String("name", name))
	return loc, nil
}

func (s *hierarchyService) UpdateLocation(ctx context.Context, locationID, sectorID, name string) (*domain.Location, error) {
	name = strings.TrimSpace(name)
	if locationID == "" || sectorID == "" || name == "" {
		return nil, fmt.Errorf("location_id, sector_id and location_name are required")
	}
	loc := &domain.Location{LocationID: locationID, SectorID: sectorID, LocationName: name}
	if err := s.repo.UpdateLocation(ctx, loc); err != nil {
		return nil, fmt.Errorf("failed to update location: %w", err)
	}
	return loc, nil
}

func (s *hierarchyService) DeleteLocation(ctx context.Context, locationID string) error {
	if locationID == "" {
		return fmt.Errorf("location_id is required")
	}
	return s.repo.DeleteLocation(ctx, locationID)
}

func (s *hierarchyService) ListFloors(ctx context.Context, locationID string) ([]*domain.Floor, error) {
	return s.repo.ListFloors(ctx, locationID)
}

func (s *hierarchyService) GetFloor(ctx context.Context, floorID string) (*domain.Floor, error) {
	if floorID == "" {
		return nil, fmt.Errorf("floor_id is required")
	}
	return s.repo.GetFloor(ctx, floorID)
}

func (s *hierarchyService) CreateFloor(ctx context.Context, locationID string, number int) (*domain.Floor, error) {
	if locationID == "" {
		return nil, fmt.Errorf("location_id is required")
	}
	fl := &domain.Floor{LocationID: locationID, FloorNumber: number}
	if err := s.repo.CreateFloor(ctx, fl); err != nil {
		return nil, fmt.Errorf("failed to create floor: %w", err)
	}
	return fl, nil
}

func (s *hierarchyService) UpdateFloor(ctx context.Context, floorID, locationID string, number int) (*domain.Floor, error) {
	if floorID == "" || locationID == "" {
		return nil, fmt.Errorf("floor_id and location_id are required")
	}
	fl := &domain.Floor{FloorID: floorID, LocationID: locationID, FloorNumber: number}
	if err := s.repo.UpdateFloor(ctx, fl); err != nil {
		return nil, fmt.Errorf("failed to update floor: %w", err)
	}
	return fl, nil
}

func (s *hierarchyService) DeleteFloor(ctx context.Context, floorID string) error {
	if floorID == "" {
		return fmt.Errorf("floor_id is required")
	}
	return s.repo.DeleteFloor(ctx, floorID)
}

func (s *hierarchyService) ListRoomTypes(ctx context.Context) ([]*domain.RoomType, error) {
	return s.repo.ListRoomTypes(ctx)
}

func (s *hierarchyService) GetRoomType(ctx context.Context, roomTypeID string) (*domain.RoomType, error) {
	if roomTypeID == "" {
		return nil, fmt.Errorf("room_type_id is required")
	}
	return s.repo.GetRoomType(ctx, roomTypeID)
}

func (s *hierarchyService) CreateRoomType(ctx context.Context, name string) (*domain.RoomType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("room_type_name is required")
	}
	rt := &domain.RoomType{RoomTypeName: name}
	if err := s.repo.CreateRoomType(ctx, rt); err != nil {
		return nil, fmt.Errorf("failed to create room type: %w", err)
	}
	return rt, nil
}

func (s *hierarchyService) UpdateRoomType(ctx context.Context, roomTypeID, name string) (*domain.RoomType, error) {
	name = strings.TrimSpace(name)
	if roomTypeID == "" || name == "" {
		return nil, fmt.Errorf("room_type_id and room_type_name are required")
	}
	rt := &domain.RoomType{RoomTypeID: roomTypeID, RoomTypeName: name}
	if err := s.repo.UpdateRoomType(ctx, rt); err != nil {
		return nil, fmt.Errorf("failed to update room type: %w", err)
	}
	return rt, nil
}

func (s *hierarchyService) DeleteRoomType(ctx context.Context, roomTypeID string) error {
	if roomTypeID == "" {
		return fmt.Errorf("room_type_id is required")
	}
	return s.repo.DeleteRoomType(ctx, roomTypeID)
}

func (s *hierarchyService) ListRooms(ctx context.Context, floorID, roomTypeID string) ([]*domain.Room, error) {
	return s.repo.ListRooms(ctx, floorID, roomTypeID)
}

func (s *hierarchyService) GetRoom(ctx context.Context, roomID string) (*domain.Room, error) {
	if roomID == "" {
		return nil, fmt.Errorf("room_id is required")
	}
	return s.repo.GetRoom(ctx, roomID)
}

func (s *hierarchyService) CreateRoom(ctx context.Context, name, floorID, roomTypeID string) (*domain.Room, error) {
	name = strings.TrimSpace(name)
	if name == "" || floorID == "" || roomTypeID == "" {
		return nil, fmt.Errorf("room_name, floor_id and room_type_id are required")
	}
	r := &domain.Room{RoomName: name, FloorID: floorID, RoomTypeID: roomTypeID}
	if err := s.repo.CreateRoom(ctx, r); err != nil {
		return nil, fmt.Errorf("failed to create room: %w", err)
	}
	s.logger.Info("room created", zap.String("room_id", r.RoomID), zap.String("name", name))
	return r, nil
}

func (s *hierarchyService) UpdateRoom(ctx context.Context, roomID, name, floorID, roomTypeID string) (*domain.Room, error) {
	name = strings.TrimSpace(name)
	if roomID == "" || name == "" || floorID == "" || roomTypeID == "" {
		return nil, fmt.Errorf("room_id, room_name, floor_id and room_type_id are required")
	}
	r := &domain.Room{RoomID: roomID, RoomName: name, FloorID: floorID, RoomTypeID: roomTypeID}
	if err := s.repo.UpdateRoom(ctx, r); err != nil {
		return nil, fmt.Errorf("failed to update room: %w", err)
	}
	return r, nil
}

func (s *hierarchyService) DeleteRoom(ctx context.Context, roomID string) error {
	if roomID == "" {
		return fmt.Errorf("room_id is required")
	}
	return s.repo.DeleteRoom(ctx, roomID)
}
