package rooms

import (
	"fmt"

	"roomscout/models"
	"roomscout/util"
)

// RoomsApiClientMock serves a fixed room set with real pagination semantics,
// for development environments and tests without a live backend.
type RoomsApiClientMock struct {
	rooms []models.Room
}

// NewRoomsApiClientMock creates a new instance of RoomsApiClientMock
func NewRoomsApiClientMock(rooms []models.Room) *RoomsApiClientMock {
	return &RoomsApiClientMock{rooms: rooms}
}

// NewRoomsApiClientMockFromFixture loads the room set from a JSON fixture.
func NewRoomsApiClientMockFromFixture(fixturePath string) (*RoomsApiClientMock, error) {
	rooms, err := util.ReadRoomsFromJSON(fixturePath)
	if err != nil {
		fmt.Println("Could not read rooms fixture from json")
		return nil, err
	}
	return NewRoomsApiClientMock(rooms), nil
}

// ListRooms returns the requested page of the fixture set in envelope form.
// Filtering other than pagination is not simulated.
func (c *RoomsApiClientMock) ListRooms(params models.RoomFilterParams) (*models.RoomsResponse, error) {
	page := 1
	if params.Page != nil && *params.Page > 0 {
		page = *params.Page
	}
	limit := len(c.rooms)
	if params.Limit != nil && *params.Limit > 0 {
		limit = *params.Limit
	}

	total := len(c.rooms)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return &models.RoomsResponse{
		Data:       append([]models.Room(nil), c.rooms[start:end]...),
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: models.TotalPagesFor(total, limit),
	}, nil
}

// GetRoom retrieves a room from the fixture set given a room id
func (c *RoomsApiClientMock) GetRoom(roomID string) (*models.Room, error) {
	for _, r := range c.rooms {
		if r.ID == roomID {
			room := r
			return &room, nil
		}
	}
	return nil, fmt.Errorf("room not found: %s", roomID)
}

// GetAllRooms returns the whole fixture set
func (c *RoomsApiClientMock) GetAllRooms() ([]models.Room, error) {
	return append([]models.Room(nil), c.rooms...), nil
}
