package discovery

import (
	"testing"

	"roomscout/models"
)

func strPtr(s string) *string { return &s }

func TestFilterStore_UpdateMerges(t *testing.T) {
	store := NewFilterStore(models.RoomFilterParams{Search: "garden"})

	store.Update(FilterPatch{
		Type:     strPtr(models.ROOM_TYPE_SUITE),
		MinPrice: strPtr("120.5"),
	})

	current := store.Current()
	if current.Search != "garden" {
		t.Errorf("Expected untouched search 'garden', got %q", current.Search)
	}
	if current.Type != "suite" {
		t.Errorf("Expected type 'suite', got %q", current.Type)
	}
	if current.MinPrice == nil || *current.MinPrice != 120.5 {
		t.Errorf("Expected MinPrice 120.5, got %v", current.MinPrice)
	}
}

func TestFilterStore_UpdateResetsPage(t *testing.T) {
	page := 4
	store := NewFilterStore(models.RoomFilterParams{Page: &page})

	store.Update(FilterPatch{Search: strPtr("view")})

	current := store.Current()
	if current.Page == nil || *current.Page != 1 {
		t.Errorf("Expected page reset to 1, got %v", current.Page)
	}
}

func TestFilterStore_LenientNumericInput(t *testing.T) {
	store := NewFilterStore(models.RoomFilterParams{})

	// malformed input omits the field instead of erroring
	store.Update(FilterPatch{
		MinPrice:     strPtr("abc"),
		MaxPrice:     strPtr(""),
		MinOccupancy: strPtr("two"),
		MaxOccupancy: strPtr(" 4 "),
	})

	current := store.Current()
	if current.MinPrice != nil {
		t.Errorf("Expected malformed MinPrice coerced to nil, got %v", *current.MinPrice)
	}
	if current.MaxPrice != nil {
		t.Errorf("Expected empty MaxPrice coerced to nil, got %v", *current.MaxPrice)
	}
	if current.MinOccupancy != nil {
		t.Errorf("Expected malformed MinOccupancy coerced to nil, got %v", *current.MinOccupancy)
	}
	if current.MaxOccupancy == nil || *current.MaxOccupancy != 4 {
		t.Errorf("Expected MaxOccupancy 4, got %v", current.MaxOccupancy)
	}
}

func TestFilterStore_NotifiesListener(t *testing.T) {
	store := NewFilterStore(models.RoomFilterParams{})

	var received []models.RoomFilterParams
	store.OnChange(func(p models.RoomFilterParams) {
		received = append(received, p)
	})

	store.Update(FilterPatch{Amenities: []string{"wifi", "tv"}})
	store.Update(FilterPatch{Amenities: []string{}})

	if len(received) != 2 {
		t.Fatalf("Expected 2 notifications, got %d", len(received))
	}
	if len(received[0].Amenities) != 2 {
		t.Errorf("Expected first notification with 2 amenities, got %v", received[0].Amenities)
	}
	if len(received[1].Amenities) != 0 {
		t.Errorf("Expected empty patch to clear amenities, got %v", received[1].Amenities)
	}
}

func TestFilterStore_CurrentIsACopy(t *testing.T) {
	store := NewFilterStore(models.RoomFilterParams{Amenities: []string{"wifi"}})

	current := store.Current()
	current.Amenities[0] = "minibar"

	if store.Current().Amenities[0] != "wifi" {
		t.Error("Current() leaked the store's amenities slice")
	}
}

func TestFilterStore_Reset(t *testing.T) {
	store := NewFilterStore(models.RoomFilterParams{Search: "old"})

	notified := false
	store.OnChange(func(models.RoomFilterParams) { notified = true })

	store.Reset(models.RoomFilterParams{Search: "new"})

	if got := store.Current().Search; got != "new" {
		t.Errorf("Expected search 'new', got %q", got)
	}
	if !notified {
		t.Error("Expected Reset to notify the listener")
	}
}
