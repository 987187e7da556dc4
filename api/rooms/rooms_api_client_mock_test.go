package rooms

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"roomscout/models"
)

func mockRooms() []models.Room {
	return []models.Room{
		{ID: "r1", RoomNumber: "101", Type: "single", Price: 80},
		{ID: "r2", RoomNumber: "102", Type: "double", Price: 120},
		{ID: "r3", RoomNumber: "103", Type: "suite", Price: 250},
		{ID: "r4", RoomNumber: "104", Type: "double", Price: 130},
		{ID: "r5", RoomNumber: "105", Type: "deluxe", Price: 400},
	}
}

func TestMockListRooms_Paging(t *testing.T) {
	// Arrange
	client := NewRoomsApiClientMock(mockRooms())

	page := 2
	limit := 2

	// Act
	response, err := client.ListRooms(models.RoomFilterParams{Page: &page, Limit: &limit})

	// Assert
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	assert.Equal(t, models.Pagination{Total: 5, Page: 2, Limit: 2, TotalPages: 3}, response.PageMeta())
	assert.Equal(t, []models.Room{mockRooms()[2], mockRooms()[3]}, response.Data, "Pages dont match")
}

func TestMockListRooms_PastEnd(t *testing.T) {
	client := NewRoomsApiClientMock(mockRooms())

	page := 9
	limit := 2

	response, err := client.ListRooms(models.RoomFilterParams{Page: &page, Limit: &limit})
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if len(response.Data) != 0 {
		t.Errorf("expected an empty page past the end, got %d rooms", len(response.Data))
	}
}

func TestMockGetRoom(t *testing.T) {
	client := NewRoomsApiClientMock(mockRooms())

	room, err := client.GetRoom("r3")
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	assert.Equal(t, "103", room.RoomNumber, "Rooms dont match")

	_, err = client.GetRoom("missing")
	if err == nil {
		t.Error("expected an error for an unknown room id")
	}
}

func TestMockGetAllRooms(t *testing.T) {
	client := NewRoomsApiClientMock(mockRooms())

	rooms, err := client.GetAllRooms()
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	assert.Equal(t, mockRooms(), rooms, "Rooms dont match")
}
