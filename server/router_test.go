package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
)

// MockRoomsHandler is a mock implementation of RoomsRequestHandler.
type MockRoomsHandler struct{}

func (h *MockRoomsHandler) ListRooms(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "rooms list"}`))
}

func (h *MockRoomsHandler) ListAllRooms(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "all rooms"}`))
}

func (h *MockRoomsHandler) GetRoom(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "room by id"}`))
}

func (h *MockRoomsHandler) Ping(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "pong"}`))
}

func TestRouter_RegisterRoutes(t *testing.T) {
	// Setup
	mockRoomsHandler := &MockRoomsHandler{}
	router := mux.NewRouter()
	appRouter := NewRouter(mockRoomsHandler, router)
	appRouter.RegisterRoutes()

	// Test Cases
	tests := []struct {
		name       string
		method     string
		path       string
		statusCode int
		response   string
	}{
		{
			name:       "List Rooms",
			method:     "GET",
			path:       "/v1/rooms",
			statusCode: http.StatusOK,
			response:   `{"message": "rooms list"}`,
		},
		{
			name:       "List All Rooms",
			method:     "GET",
			path:       "/v1/rooms/all",
			statusCode: http.StatusOK,
			response:   `{"message": "all rooms"}`,
		},
		{
			name:       "Get Room By ID",
			method:     "GET",
			path:       "/v1/rooms/room-1",
			statusCode: http.StatusOK,
			response:   `{"message": "room by id"}`,
		},
		{
			name:       "Ping Route",
			method:     "GET",
			path:       "/ping",
			statusCode: http.StatusOK,
			response:   `{"status": "pong"}`,
		},
		{
			name:       "Invalid Route",
			method:     "GET",
			path:       "/invalid",
			statusCode: http.StatusNotFound,
		},
		{
			name:       "Wrong Method",
			method:     "POST",
			path:       "/v1/rooms",
			statusCode: http.StatusMethodNotAllowed,
		},
	}

	// Run tests
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(test.method, test.path, nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			// Assert status code
			if rr.Code != test.statusCode {
				t.Errorf("Expected status %d, got %d", test.statusCode, rr.Code)
			}

			// Assert response body, if applicable
			if test.response != "" && rr.Body.String() != test.response {
				t.Errorf("Expected response %s, got %s", test.response, rr.Body.String())
			}
		})
	}
}
