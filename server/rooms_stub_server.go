package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"roomscout/config"
)

// RoomsStubServer serves the fixture room set over HTTP so the discovery
// client can be exercised without the real hotel platform.
type RoomsStubServer struct {
	router    *Router
	muxRouter *mux.Router
}

func NewRoomsStubServer(router *Router, muxRouter *mux.Router) *RoomsStubServer {
	return &RoomsStubServer{
		router:    router,
		muxRouter: muxRouter,
	}
}

// Start runs the server until an interrupt or termination signal arrives,
// then shuts it down gracefully.
func (s *RoomsStubServer) Start() {
	s.router.RegisterRoutes()

	srv := &http.Server{
		Addr:    config.ROOMS_STUB_SERVER_ADDRESS,
		Handler: s.muxRouter,
	}

	// Channel to listen for interrupt or termination signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Start the server in a goroutine so it doesn't block
	go func() {
		fmt.Println("Starting rooms stub server on", config.ROOMS_STUB_SERVER_ADDRESS)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	// Wait for a signal to shut down
	<-stop
	fmt.Println("\nShutting down the server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	fmt.Println("Server exiting")
}
