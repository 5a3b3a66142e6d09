package repository

import (
	"context"

	"github.com/matiascayunao/pvsa-p/internal/domain"
)

// HierarchyRepo covers the physical hierarchy: sectors, locations, floors,
// room types and rooms. List methods take optional parent-id filters
// (empty string means unfiltered) and order by name, matching the admin UI.
type HierarchyRepo interface {
	ListSectors(ctx context.Context) ([]*domain.Sector, error)
	GetSector(ctx context.Context, sectorID string) (*domain.Sector, error)
	CreateSector(ctx context.Context, s *domain.Sector) error
	UpdateSector(ctx context.Context, s *domain.Sector) error
	DeleteSector(ctx context.Context, sectorID string) error

	ListLocations(ctx context.Context, sectorID string) ([]*domain.Location, error)
	GetLocation(ctx context.Context, locationID string) (*domain.Location, error)
	CreateLocation(ctx context.Context, l *domain.Location) error
	UpdateLocation(ctx context.Context, l *domain.Location) error
	DeleteLocation(ctx context.Context, locationID string) error

	ListFloors(ctx context.Context, locationID string) ([]*domain.Floor, error)
	GetFloor(ctx context.Context, floorID string) (*domain.Floor, error)
	CreateFloor(ctx context.Context, f *domain.Floor) error
	UpdateFloor(ctx context.Context, f *domain.Floor) error
	DeleteFloor(ctx context.Context, floorID string) error

	ListRoomTypes(ctx context.Context) ([]*domain.RoomType, error)
	GetRoomType(ctx context.Context, roomTypeID string) (*domain.RoomType, error)
	CreateRoomType(ctx context.Context, rt *domain.RoomType) error
	UpdateRoomType(ctx context.Context, rt *domain.RoomType) error
	DeleteRoomType(ctx context.Context, roomTypeID string) error

	ListRooms(ctx context.Context, floorID, roomTypeID string) ([]*domain.Room, error)
	GetRoom(ctx context.Context, roomID string) (*domain.Room, error)
	CreateRoom(ctx context.Context, r *domain.Room) error
	UpdateRoom(ctx context.Context, r *domain.Room) error
	DeleteRoom(ctx context.Context, roomID string) error
}
