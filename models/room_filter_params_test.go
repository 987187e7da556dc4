package models

import (
	"testing"
)

func TestRoomFilterParams_ToValues_OmitsZeroValues(t *testing.T) {
	q := RoomFilterParams{}.ToValues()
	if len(q) != 0 {
		t.Errorf("Expected empty query for zero params, got %v", q)
	}
}

func TestRoomFilterParams_ToValues(t *testing.T) {
	minPrice := 50.0
	maxPrice := 199.5
	minOcc := 2
	page := 3
	limit := 12

	p := RoomFilterParams{
		Search:    "sea view",
		Type:      ROOM_TYPE_DOUBLE,
		MinPrice:  &minPrice,
		MaxPrice:  &maxPrice,
		MinOccupancy: &minOcc,
		Amenities: []string{"wifi", "tv"},
		SortBy:    SORT_BY_PRICE,
		SortOrder: SORT_ORDER_ASC,
		CheckIn:   "2026-09-10",
		CheckOut:  "2026-09-12",
		Page:      &page,
		Limit:     &limit,
	}
	q := p.ToValues()

	checks := []struct {
		key  string
		want string
	}{
		{"search", "sea view"},
		{"type", "double"},
		{"minPrice", "50"},
		{"maxPrice", "199.5"},
		{"minOccupancy", "2"},
		{"sortBy", "price"},
		{"sortOrder", "asc"},
		{"checkIn", "2026-09-10"},
		{"checkOut", "2026-09-12"},
		{"page", "3"},
		{"limit", "12"},
	}
	for _, c := range checks {
		if got := q.Get(c.key); got != c.want {
			t.Errorf("q[%q] = %q; want %q", c.key, got, c.want)
		}
	}

	// amenities go out as a repeated parameter, one entry per value
	amenities := q["amenities"]
	if len(amenities) != 2 || amenities[0] != "wifi" || amenities[1] != "tv" {
		t.Errorf("q[amenities] = %v; want [wifi tv]", amenities)
	}

	if _, present := q["maxOccupancy"]; present {
		t.Error("Expected unset maxOccupancy to be omitted")
	}
}

func TestRoomFilterParams_Clone(t *testing.T) {
	p := RoomFilterParams{Amenities: []string{"wifi"}}
	clone := p.Clone()
	clone.Amenities[0] = "minibar"

	if p.Amenities[0] != "wifi" {
		t.Errorf("Clone shares the amenities slice with the original")
	}
}
