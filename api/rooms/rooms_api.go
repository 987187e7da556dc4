package rooms

import (
	"roomscout/models"
)

// RoomsAPI defines the interface for interacting with the rooms backend
type RoomsAPI interface {
	ListRooms(params models.RoomFilterParams) (*models.RoomsResponse, error)
	GetRoom(roomID string) (*models.Room, error)
	GetAllRooms() ([]models.Room, error)
}
