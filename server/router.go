package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RoomsRequestHandler is the set of endpoints the router exposes.
type RoomsRequestHandler interface {
	ListRooms(w http.ResponseWriter, r *http.Request)
	ListAllRooms(w http.ResponseWriter, r *http.Request)
	GetRoom(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	roomsHandler RoomsRequestHandler
	router       *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	roomsHandler RoomsRequestHandler,
	router *mux.Router) *Router {
	return &Router{
		roomsHandler: roomsHandler,
		router:       router,
	}
}

func (r *Router) RegisterRoutes() {
	// legacy shape, must be registered before the {id} route
	r.router.HandleFunc("/v1/rooms/all", r.roomsHandler.ListAllRooms).Methods("GET")

	r.router.HandleFunc("/v1/rooms/{id}", r.roomsHandler.GetRoom).Methods("GET")

	// expects ?search=&type=&minPrice=&maxPrice=&minOccupancy=&maxOccupancy=&amenities=&sortBy=&sortOrder=&page=&limit=
	r.router.HandleFunc("/v1/rooms", r.roomsHandler.ListRooms).Methods("GET")

	r.router.HandleFunc("/ping", r.roomsHandler.Ping).Methods("GET")
}
