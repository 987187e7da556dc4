package services

import (
	"fmt"
	"log"
	"sort"
	"time"

	"roomscout/api/rooms"
	"roomscout/config"
	"roomscout/dao/redis"
	"roomscout/models"
)

// CatalogService owns the one-time bootstrap call against the rooms backend:
// it derives the global price range and the amenity union used to seed the
// filter UI, and serves them read-through from the Redis cache.
type CatalogService struct {
	roomDao  *redis.RedisRoomDAO
	roomsApi rooms.RoomsAPI
}

// NewCatalogService constructs a new CatalogService with its dependencies.
func NewCatalogService(
	roomDao *redis.RedisRoomDAO,
	roomsApi rooms.RoomsAPI) *CatalogService {

	return &CatalogService{
		roomDao:  roomDao,
		roomsApi: roomsApi,
	}
}

// GetCatalogSummary serves the cached summary, refreshing it on a miss.
func (cs *CatalogService) GetCatalogSummary() (*models.CatalogSummary, error) {
	summary, err := cs.roomDao.GetCatalogSummary()
	if err != nil {
		log.Printf("[CatalogService] Failed reading cached summary, refetching: %v", err)
	}
	if summary != nil {
		return summary, nil
	}
	return cs.RefreshCatalog()
}

// RefreshCatalog fetches the unfiltered room list, derives the summary,
// caches it, and upserts each room snapshot.
func (cs *CatalogService) RefreshCatalog() (*models.CatalogSummary, error) {
	allRooms, err := cs.roomsApi.GetAllRooms()
	if err != nil {
		return nil, fmt.Errorf("bootstrap rooms call failed: %w", err)
	}

	summary := summarizeCatalog(allRooms)

	ttl := time.Duration(config.CATALOG_CACHE_TTL_MINUTES) * time.Minute
	if err := cs.roomDao.SetCatalogSummary(summary, ttl); err != nil {
		log.Printf("[CatalogService] Failed caching catalog summary: %v", err)
	}

	for _, r := range allRooms {
		if err := cs.roomDao.UpsertRoom(r); err != nil {
			log.Printf("[CatalogService] Upsert failed for room %s: %v", r.ID, err)
		}
	}

	log.Printf("[CatalogService] Catalog refreshed: %d rooms, prices %.2f-%.2f, %d amenities",
		summary.RoomCount, summary.PriceRange.Min, summary.PriceRange.Max, len(summary.Amenities))
	return summary, nil
}

// GetRoom serves a room from the cache, falling back to the backend.
func (cs *CatalogService) GetRoom(roomID string) (*models.Room, error) {
	cached, err := cs.roomDao.GetRoom(roomID)
	if err != nil {
		log.Printf("[CatalogService] Cache lookup failed for room %s: %v", roomID, err)
	}
	if cached != nil {
		return cached, nil
	}

	room, err := cs.roomsApi.GetRoom(roomID)
	if err != nil {
		return nil, err
	}
	if err := cs.roomDao.UpsertRoom(*room); err != nil {
		log.Printf("[CatalogService] Upsert failed for room %s: %v", room.ID, err)
	}
	return room, nil
}

// DefaultFilters seeds the filter criteria from the server-reported price
// range, the way the filter UI starts out.
func (cs *CatalogService) DefaultFilters() (models.RoomFilterParams, error) {
	summary, err := cs.GetCatalogSummary()
	if err != nil {
		return models.RoomFilterParams{}, err
	}

	minPrice := summary.PriceRange.Min
	maxPrice := summary.PriceRange.Max
	return models.RoomFilterParams{
		MinPrice: &minPrice,
		MaxPrice: &maxPrice,
	}, nil
}

// summarizeCatalog folds the room list into price bounds and a sorted
// amenity union.
func summarizeCatalog(allRooms []models.Room) *models.CatalogSummary {
	summary := &models.CatalogSummary{RoomCount: len(allRooms)}
	amenitySet := make(map[string]struct{})

	for i, r := range allRooms {
		if i == 0 || r.Price < summary.PriceRange.Min {
			summary.PriceRange.Min = r.Price
		}
		if i == 0 || r.Price > summary.PriceRange.Max {
			summary.PriceRange.Max = r.Price
		}
		for _, a := range r.Amenities {
			amenitySet[a] = struct{}{}
		}
	}

	summary.Amenities = make([]string, 0, len(amenitySet))
	for a := range amenitySet {
		summary.Amenities = append(summary.Amenities, a)
	}
	sort.Strings(summary.Amenities)
	return summary
}
