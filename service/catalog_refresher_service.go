package services

import (
	"log"
	"time"
)

// CatalogRefresherService periodically re-derives the cached catalog summary
// so the filter UI's price range and amenity list track the backend.
type CatalogRefresherService struct {
	catalogService *CatalogService
}

// NewCatalogRefresherService constructs a new refresher with its dependency.
func NewCatalogRefresherService(catalogService *CatalogService) *CatalogRefresherService {
	return &CatalogRefresherService{
		catalogService: catalogService,
	}
}

// StartPeriodicJob launches the background loop at the given interval.
func (cr *CatalogRefresherService) StartPeriodicJob(interval time.Duration) {
	go cr.startPeriodicJob(interval)
}

func (cr *CatalogRefresherService) startPeriodicJob(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		log.Println("[CatalogRefresherService] Running periodic catalog refresher job.")
		if err := cr.RefreshCatalogData(); err != nil {
			log.Printf("[CatalogRefresherService] RefreshCatalogData returned error: %v", err)
		} else {
			log.Println("[CatalogRefresherService] RefreshCatalogData completed successfully.")
		}
	}
}

// RefreshCatalogData re-runs the bootstrap derivation once.
func (cr *CatalogRefresherService) RefreshCatalogData() error {
	summary, err := cr.catalogService.RefreshCatalog()
	if err != nil {
		return err
	}
	log.Printf("[CatalogRefresherService] Summary: rooms=%d price_min=%.2f price_max=%.2f amenities=%d",
		summary.RoomCount, summary.PriceRange.Min, summary.PriceRange.Max, len(summary.Amenities))
	return nil
}
