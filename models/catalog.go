package models

// PriceRange is the global min/max nightly price across the catalog.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// CatalogSummary is derived from the one-time unfiltered bootstrap call: the
// price bounds and the amenity union offered in the filter UI.
type CatalogSummary struct {
	PriceRange PriceRange `json:"price_range"`
	Amenities  []string   `json:"amenities"`
	RoomCount  int        `json:"room_count"`
}
