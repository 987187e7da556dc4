package rooms

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"roomscout/api"
	"roomscout/models"
)

func TestListRooms_Envelope(t *testing.T) {
	var received url.Values
	wantResp := models.RoomsResponse{
		Data: []models.Room{
			{ID: "r13", RoomNumber: "213", Type: "double", Price: 140},
		},
		Total:      30,
		Page:       2,
		Limit:      12,
		TotalPages: 3,
	}

	// Handler to verify request and return stubbed JSON
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// method + path
		if r.Method != "GET" {
			t.Errorf("expected GET; got %s", r.Method)
		}
		if r.URL.Path != "/rooms" {
			t.Errorf("expected path /rooms; got %s", r.URL.Path)
		}
		received = r.URL.Query()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(wantResp)
	}))
	defer srv.Close()

	client := NewRoomsApiClient(api.NewHTTPClient(srv.URL))

	minPrice := 50.0
	page := 2
	limit := 12
	got, err := client.ListRooms(models.RoomFilterParams{
		Search:    "sea",
		Type:      models.ROOM_TYPE_DOUBLE,
		MinPrice:  &minPrice,
		Amenities: []string{"wifi", "tv"},
		SortBy:    models.SORT_BY_PRICE,
		SortOrder: models.SORT_ORDER_DESC,
		Page:      &page,
		Limit:     &limit,
	})
	if err != nil {
		t.Fatal(err)
	}

	// response unmarshaled correctly
	if got.Total != wantResp.Total || got.Page != wantResp.Page || got.TotalPages != wantResp.TotalPages {
		t.Errorf("meta = %+v; want %+v", got.PageMeta(), wantResp.PageMeta())
	}
	if len(got.Data) != 1 || got.Data[0].ID != "r13" {
		t.Errorf("data = %+v; want the single r13 room", got.Data)
	}

	// verify forwarded query args
	checks := []struct {
		key  string
		want string
	}{
		{"search", "sea"},
		{"type", "double"},
		{"minPrice", "50"},
		{"sortBy", "price"},
		{"sortOrder", "desc"},
		{"page", "2"},
		{"limit", "12"},
	}
	for _, c := range checks {
		if got := received.Get(c.key); got != c.want {
			t.Errorf("query[%q] = %v; want %v", c.key, got, c.want)
		}
	}
	if amenities := received["amenities"]; len(amenities) != 2 || amenities[0] != "wifi" || amenities[1] != "tv" {
		t.Errorf("query[amenities] = %v; want [wifi tv]", amenities)
	}
}

func TestListRooms_LegacyArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"r1","roomNumber":"101","type":"single","price":80},
			{"id":"r2","roomNumber":"102","type":"double","price":120}]`))
	}))
	defer srv.Close()

	client := NewRoomsApiClient(api.NewHTTPClient(srv.URL))

	got, err := client.ListRooms(models.RoomFilterParams{})
	if err != nil {
		t.Fatal(err)
	}

	want := models.Pagination{Total: 2, Page: 1, Limit: 2, TotalPages: 1}
	if got.PageMeta() != want {
		t.Errorf("normalized meta = %+v; want %+v", got.PageMeta(), want)
	}
}

func TestListRooms_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message": "invalid sort option"}`))
	}))
	defer srv.Close()

	client := NewRoomsApiClient(api.NewHTTPClient(srv.URL))

	_, err := client.ListRooms(models.RoomFilterParams{})
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	if err.Error() != "invalid sort option" {
		t.Errorf("error = %q; want the server message", err.Error())
	}
}

func TestGetRoom(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rooms/room-42" {
			t.Errorf("expected /rooms/room-42; got %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.Room{ID: "room-42", RoomNumber: "42"})
	}))
	defer srv.Close()

	client := NewRoomsApiClient(api.NewHTTPClient(srv.URL))

	got, err := client.GetRoom("room-42")
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || got.ID != "room-42" {
		t.Fatalf("expected room-42, got %+v", got)
	}
}

func TestGetAllRooms(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rooms/all" {
			t.Errorf("expected /rooms/all; got %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"r1"},{"id":"r2"},{"id":"r3"}]`))
	}))
	defer srv.Close()

	client := NewRoomsApiClient(api.NewHTTPClient(srv.URL))

	got, err := client.GetAllRooms()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Errorf("expected 3 rooms, got %d", len(got))
	}
}
