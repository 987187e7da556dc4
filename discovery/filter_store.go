package discovery

import (
	"strconv"
	"strings"
	"sync"

	"roomscout/models"
)

// FilterPatch is a partial update to the current filter criteria. Nil fields
// leave the current value untouched; numeric fields arrive as raw UI text and
// anything that fails to parse simply clears the bound instead of erroring.
type FilterPatch struct {
	Search       *string
	Type         *string
	MinPrice     *string
	MaxPrice     *string
	MinOccupancy *string
	MaxOccupancy *string
	Amenities    []string // non-nil replaces the whole set
	SortBy       *string
	SortOrder    *string
	CheckIn      *string
	CheckOut     *string
}

// FilterStore holds the user's current search criteria. Every update resets
// the page to 1 and notifies the listener, whatever the current scroll mode.
type FilterStore struct {
	mu       sync.Mutex
	current  models.RoomFilterParams
	onChange func(models.RoomFilterParams)
}

// NewFilterStore creates a store seeded with the given criteria.
func NewFilterStore(initial models.RoomFilterParams) *FilterStore {
	return &FilterStore{current: initial.Clone()}
}

// OnChange registers the listener invoked after each update.
func (s *FilterStore) OnChange(fn func(models.RoomFilterParams)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// Current returns a copy of the criteria as they stand.
func (s *FilterStore) Current() models.RoomFilterParams {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

// Reset replaces the criteria wholesale (navigation away discards filters).
func (s *FilterStore) Reset(criteria models.RoomFilterParams) {
	s.mu.Lock()
	s.current = criteria.Clone()
	snapshot := s.current.Clone()
	fn := s.onChange
	s.mu.Unlock()

	if fn != nil {
		fn(snapshot)
	}
}

// Update merges the patch into the current criteria.
func (s *FilterStore) Update(patch FilterPatch) {
	s.mu.Lock()

	if patch.Search != nil {
		s.current.Search = strings.TrimSpace(*patch.Search)
	}
	if patch.Type != nil {
		s.current.Type = *patch.Type
	}
	if patch.MinPrice != nil {
		s.current.MinPrice = parseOptionalFloat(*patch.MinPrice)
	}
	if patch.MaxPrice != nil {
		s.current.MaxPrice = parseOptionalFloat(*patch.MaxPrice)
	}
	if patch.MinOccupancy != nil {
		s.current.MinOccupancy = parseOptionalInt(*patch.MinOccupancy)
	}
	if patch.MaxOccupancy != nil {
		s.current.MaxOccupancy = parseOptionalInt(*patch.MaxOccupancy)
	}
	if patch.Amenities != nil {
		s.current.Amenities = append([]string(nil), patch.Amenities...)
	}
	if patch.SortBy != nil {
		s.current.SortBy = *patch.SortBy
	}
	if patch.SortOrder != nil {
		s.current.SortOrder = *patch.SortOrder
	}
	if patch.CheckIn != nil {
		s.current.CheckIn = *patch.CheckIn
	}
	if patch.CheckOut != nil {
		s.current.CheckOut = *patch.CheckOut
	}

	// any criteria change restarts from the first page
	page := 1
	s.current.Page = &page

	snapshot := s.current.Clone()
	fn := s.onChange
	s.mu.Unlock()

	if fn != nil {
		fn(snapshot)
	}
}

// parseOptionalFloat implements the lenient-input policy: malformed numeric
// text omits the field rather than surfacing an error.
func parseOptionalFloat(s string) *float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil
	}
	return &f
}

func parseOptionalInt(s string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &n
}
