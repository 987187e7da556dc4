package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"roomscout/config"
	"roomscout/models"
)

const (
	SEARCH_QUERY_ARG        = "search"
	TYPE_QUERY_ARG          = "type"
	MIN_PRICE_QUERY_ARG     = "minPrice"
	MAX_PRICE_QUERY_ARG     = "maxPrice"
	MIN_OCCUPANCY_QUERY_ARG = "minOccupancy"
	MAX_OCCUPANCY_QUERY_ARG = "maxOccupancy"
	AMENITIES_QUERY_ARG     = "amenities"
	SORT_BY_QUERY_ARG       = "sortBy"
	SORT_ORDER_QUERY_ARG    = "sortOrder"
	PAGE_QUERY_ARG          = "page"
	LIMIT_QUERY_ARG         = "limit"
)

// listQuery is the parsed form of a listing request. Malformed numeric args
// are ignored rather than rejected, matching the client's lenient policy.
type listQuery struct {
	search       string
	roomType     string
	minPrice     *float64
	maxPrice     *float64
	minOccupancy *int
	maxOccupancy *int
	amenities    []string
	sortBy       string
	sortOrder    string
	page         int
	limit        int
}

// RoomsHandler serves a fixed in-memory room set as a stand-in for the hotel
// platform's rooms API.
type RoomsHandler struct {
	rooms []models.Room
}

func NewRoomsHandler(rooms []models.Room) *RoomsHandler {
	return &RoomsHandler{rooms: rooms}
}

// ListRooms handles GET /v1/rooms with the paginated envelope shape.
func (h *RoomsHandler) ListRooms(w http.ResponseWriter, r *http.Request) {
	// 1) Parse query args
	q := parseListQuery(r.URL.Query())

	if q.minPrice != nil && q.maxPrice != nil && *q.minPrice > *q.maxPrice {
		writeError(w, http.StatusBadRequest, "minPrice must not exceed maxPrice")
		return
	}

	// 2) Filter, sort, slice
	matched := filterRooms(h.rooms, q)
	sortRooms(matched, q.sortBy, q.sortOrder)
	pageItems, meta := paginate(matched, q.page, q.limit)

	// 3) Write the envelope
	writeJSON(w, http.StatusOK, models.RoomsResponse{
		Data:       pageItems,
		Total:      meta.Total,
		Page:       meta.Page,
		Limit:      meta.Limit,
		TotalPages: meta.TotalPages,
	})
}

// ListAllRooms handles GET /v1/rooms/all with the legacy bare-array shape,
// kept for the filter-bootstrap call.
func (h *RoomsHandler) ListAllRooms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.rooms)
}

// GetRoom handles GET /v1/rooms/{id}
func (h *RoomsHandler) GetRoom(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	for _, room := range h.rooms {
		if room.ID == id {
			writeJSON(w, http.StatusOK, room)
			return
		}
	}
	writeError(w, http.StatusNotFound, "room not found")
}

// Ping handles GET /ping
func (h *RoomsHandler) Ping(w http.ResponseWriter, r *http.Request) {
	log.Println("Pinging stub rooms server")
	writeJSON(w, http.StatusOK, map[string]string{"status": "pong"})
}

func parseListQuery(vals url.Values) listQuery {
	q := listQuery{
		search:    strings.TrimSpace(vals.Get(SEARCH_QUERY_ARG)),
		roomType:  vals.Get(TYPE_QUERY_ARG),
		amenities: vals[AMENITIES_QUERY_ARG],
		sortBy:    vals.Get(SORT_BY_QUERY_ARG),
		sortOrder: vals.Get(SORT_ORDER_QUERY_ARG),
		page:      1,
		limit:     config.DEFAULT_PAGE_LIMIT,
	}

	q.minPrice = parseArgFloat64(vals, MIN_PRICE_QUERY_ARG)
	q.maxPrice = parseArgFloat64(vals, MAX_PRICE_QUERY_ARG)
	q.minOccupancy = parseArgInt(vals, MIN_OCCUPANCY_QUERY_ARG)
	q.maxOccupancy = parseArgInt(vals, MAX_OCCUPANCY_QUERY_ARG)

	if p := parseArgInt(vals, PAGE_QUERY_ARG); p != nil && *p > 0 {
		q.page = *p
	}
	if l := parseArgInt(vals, LIMIT_QUERY_ARG); l != nil && *l > 0 {
		q.limit = *l
	}
	return q
}

func filterRooms(rooms []models.Room, q listQuery) []models.Room {
	var out []models.Room
	for _, room := range rooms {
		if q.search != "" && !matchesSearch(room, q.search) {
			continue
		}
		if q.roomType != "" && room.Type != q.roomType {
			continue
		}
		if q.minPrice != nil && room.Price < *q.minPrice {
			continue
		}
		if q.maxPrice != nil && room.Price > *q.maxPrice {
			continue
		}
		if q.minOccupancy != nil && room.MaxOccupancy < *q.minOccupancy {
			continue
		}
		if q.maxOccupancy != nil && room.MaxOccupancy > *q.maxOccupancy {
			continue
		}
		if len(q.amenities) > 0 && !matchesAnyAmenity(room, q.amenities) {
			continue
		}
		out = append(out, room)
	}
	return out
}

func matchesSearch(room models.Room, search string) bool {
	needle := strings.ToLower(search)
	return strings.Contains(strings.ToLower(room.RoomNumber), needle) ||
		strings.Contains(strings.ToLower(room.Description), needle) ||
		strings.Contains(strings.ToLower(room.Type), needle)
}

// matchesAnyAmenity implements the any-match semantics of the amenities filter.
func matchesAnyAmenity(room models.Room, amenities []string) bool {
	for _, a := range amenities {
		if room.HasAmenity(a) {
			return true
		}
	}
	return false
}

func sortRooms(rooms []models.Room, sortBy, sortOrder string) {
	if sortBy == "" {
		return
	}

	less := func(i, j int) bool { return false }
	switch sortBy {
	case models.SORT_BY_PRICE:
		less = func(i, j int) bool { return rooms[i].Price < rooms[j].Price }
	case models.SORT_BY_POPULARITY:
		less = func(i, j int) bool { return rooms[i].BookingCount < rooms[j].BookingCount }
	case models.SORT_BY_RATING:
		less = func(i, j int) bool { return ratingOf(rooms[i]) < ratingOf(rooms[j]) }
	case models.SORT_BY_CREATED_AT:
		less = func(i, j int) bool { return rooms[i].CreatedAt.Before(rooms[j].CreatedAt) }
	default:
		return
	}

	if sortOrder == models.SORT_ORDER_DESC {
		asc := less
		less = func(i, j int) bool { return asc(j, i) }
	}
	sort.SliceStable(rooms, less)
}

func ratingOf(room models.Room) float64 {
	if room.AvgRating == nil {
		return 0
	}
	return *room.AvgRating
}

func paginate(rooms []models.Room, page, limit int) ([]models.Room, models.Pagination) {
	total := len(rooms)
	meta := models.Pagination{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: models.TotalPagesFor(total, limit),
	}

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	items := rooms[start:end]
	if items == nil {
		items = []models.Room{}
	}
	return items, meta
}

func parseArgFloat64(vals url.Values, name string) *float64 {
	s := vals.Get(name)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

func parseArgInt(vals url.Values, name string) *int {
	s := vals.Get(name)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Println("Error encoding response:", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
