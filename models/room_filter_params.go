package models

import "net/url"
import "strconv"

// Sort options accepted by the rooms API.
const (
	SORT_BY_PRICE      = "price"
	SORT_BY_POPULARITY = "popularity"
	SORT_BY_RATING     = "rating"
	SORT_BY_CREATED_AT = "createdAt"

	SORT_ORDER_ASC  = "asc"
	SORT_ORDER_DESC = "desc"
)

// RoomFilterParams mirrors the rooms API's query args. Use zero-values to omit.
type RoomFilterParams struct {
	Search       string   // optional free text
	Type         string   // "single" | "double" | "suite" | "deluxe"
	MinPrice     *float64 // optional; MinPrice <= MaxPrice when both set
	MaxPrice     *float64 // optional
	MinOccupancy *int     // optional; MinOccupancy <= MaxOccupancy when both set
	MaxOccupancy *int     // optional
	Amenities    []string // any-match; sent as a repeated query param
	SortBy       string   // "price" | "popularity" | "rating" | "createdAt"
	SortOrder    string   // "asc" | "desc"
	CheckIn      string   // date string, forwarded unmodified
	CheckOut     string   // date string, forwarded unmodified
	Page         *int     // 1-based
	Limit        *int     // page size
}

func (p RoomFilterParams) ToValues() url.Values {
	q := url.Values{}

	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.Type != "" {
		q.Set("type", p.Type)
	}
	if p.MinPrice != nil {
		q.Set("minPrice", ftoa(*p.MinPrice))
	}
	if p.MaxPrice != nil {
		q.Set("maxPrice", ftoa(*p.MaxPrice))
	}
	if p.MinOccupancy != nil {
		q.Set("minOccupancy", itoa(*p.MinOccupancy))
	}
	if p.MaxOccupancy != nil {
		q.Set("maxOccupancy", itoa(*p.MaxOccupancy))
	}
	// API expects one "amenities" entry per value, not a joined list
	for _, a := range p.Amenities {
		q.Add("amenities", a)
	}
	if p.SortBy != "" {
		q.Set("sortBy", p.SortBy)
	}
	if p.SortOrder != "" {
		q.Set("sortOrder", p.SortOrder)
	}
	if p.CheckIn != "" {
		q.Set("checkIn", p.CheckIn)
	}
	if p.CheckOut != "" {
		q.Set("checkOut", p.CheckOut)
	}
	if p.Page != nil {
		q.Set("page", itoa(*p.Page))
	}
	if p.Limit != nil {
		q.Set("limit", itoa(*p.Limit))
	}

	return q
}

// Clone returns a copy that shares no mutable state with the receiver.
func (p RoomFilterParams) Clone() RoomFilterParams {
	out := p
	if p.Amenities != nil {
		out.Amenities = append([]string(nil), p.Amenities...)
	}
	return out
}

// lightweight helpers (no fmt.Sprintf allocations for ints)
func itoa(i int) string     { return strconv.Itoa(i) }
func ftoa(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
