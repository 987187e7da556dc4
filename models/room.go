package models

import "time"

// Room type enum values accepted by the rooms API.
const (
	ROOM_TYPE_SINGLE = "single"
	ROOM_TYPE_DOUBLE = "double"
	ROOM_TYPE_SUITE  = "suite"
	ROOM_TYPE_DELUXE = "deluxe"
)

// Room matches a single room entry as returned by the rooms API. The client
// never mutates one of these; they are snapshots owned by the backend.
type Room struct {
	ID           string    `json:"id"`
	RoomNumber   string    `json:"roomNumber"`
	Type         string    `json:"type"`
	Price        float64   `json:"price"`
	Description  string    `json:"description"`
	Amenities    []string  `json:"amenities,omitempty"`
	ImageURL     string    `json:"imageUrl,omitempty"`
	MaxOccupancy int       `json:"maxOccupancy"`
	AvgRating    *float64  `json:"avgRating,omitempty"`
	BookingCount int       `json:"bookingCount,omitempty"`
	CreatedAt    time.Time `json:"createdAt,omitempty"`
}

// HasAmenity reports whether the room offers the given amenity.
func (r Room) HasAmenity(name string) bool {
	for _, a := range r.Amenities {
		if a == name {
			return true
		}
	}
	return false
}
