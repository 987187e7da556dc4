package di

import (
	"context"
	"fmt"
	"log"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"roomscout/api"
	"roomscout/api/rooms"
	"roomscout/config"
	"roomscout/dao/redis"
	"roomscout/db"
	"roomscout/discovery"
	"roomscout/models"
	"roomscout/server"
	"roomscout/server/handlers"
	services "roomscout/service"
	"roomscout/util"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient             db.RedisClient
	RedisRoomDao            *redis.RedisRoomDAO
	RoomsAPI                rooms.RoomsAPI
	CatalogService          *services.CatalogService
	CatalogRefresherService *services.CatalogRefresherService
	FilterStore             *discovery.FilterStore
	DiscoveryController     *discovery.RoomDiscoveryController
	RoomsHandler            *handlers.RoomsHandler
	MuxRouter               *mux.Router
	Router                  *server.Router
	RoomsStubServer         *server.RoomsStubServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()

	redisInternalClient := goredis.NewClient(&goredis.Options{
		Addr:     config.REDIS_DB_ADDRESS,
		Password: config.REDIS_DB_PASSWORD,
		DB:       config.REDIS_DB,
	})

	// Initialize Redis client
	var redisClient db.RedisClient
	if env != "prod" {
		redisClient = db.NewMockRedisClient(ctx)
		log.Printf("Using mock redis client")
	} else {
		cacheClient := db.NewCacheRedisClient(ctx, redisInternalClient)
		if err := cacheClient.Ping(); err != nil {
			panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
		}
		redisClient = cacheClient
	}

	// Initialize Redis Room DAO
	redisRoomDao := redis.NewRedisRoomDAO(redisClient)

	// Initialize RoomsAPI - mock serves from the local fixture
	var roomsApiClient rooms.RoomsAPI
	if env != "prod" {
		mock, err := rooms.NewRoomsApiClientMockFromFixture(
			config.GetResourcePath(config.ROOMS_FIXTURE_RESOURCE))
		if err != nil {
			panic(fmt.Sprintf("Failed to load rooms fixture: %v", err))
		}
		roomsApiClient = mock
		log.Printf("Using mock rooms api")
	} else {
		log.Printf("Using prod rooms api")
		httpClient := api.NewHTTPClient(config.ROOMS_API_ENDPOINT_BASE_V1)
		roomsApiClient = rooms.NewRoomsApiClient(httpClient)
	}

	// Initialize service layer
	catalogService := services.NewCatalogService(redisRoomDao, roomsApiClient)
	catalogRefresherService := services.NewCatalogRefresherService(catalogService)

	// Initialize the discovery controller with its filter store
	filterStore := discovery.NewFilterStore(models.RoomFilterParams{})
	discoveryController := discovery.NewRoomDiscoveryController(roomsApiClient, filterStore)

	// Initialize the stub backend pieces
	fixtureRooms, err := util.ReadRoomsFromJSON(config.GetResourcePath(config.ROOMS_FIXTURE_RESOURCE))
	if err != nil {
		log.Printf("Failed to load rooms fixture for the stub server: %v", err)
		fixtureRooms = nil
	}
	roomsHandler := handlers.NewRoomsHandler(fixtureRooms)
	muxRouter := mux.NewRouter()
	router := server.NewRouter(roomsHandler, muxRouter)
	roomsStubServer := server.NewRoomsStubServer(router, muxRouter)

	return &Container{
		RedisClient:             redisClient,
		RedisRoomDao:            redisRoomDao,
		RoomsAPI:                roomsApiClient,
		CatalogService:          catalogService,
		CatalogRefresherService: catalogRefresherService,
		FilterStore:             filterStore,
		DiscoveryController:     discoveryController,
		RoomsHandler:            roomsHandler,
		MuxRouter:               muxRouter,
		Router:                  router,
		RoomsStubServer:         roomsStubServer,
	}
}
