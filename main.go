package main

import (
	"fmt"
	"log"
	"os"
	"sync/atomic"
	"time"

	"roomscout/config"
	"roomscout/db"
	"roomscout/di"
	"roomscout/discovery"
	"roomscout/models"
	"roomscout/util"
)

func testRedisClient(redisClient db.RedisClient) db.RedisClient {
	// Set a key-value pair
	if err := redisClient.Set("mykey", "myvalue"); err != nil {
		log.Fatalf("Failed to set key: %v", err)
	}

	// Get the value for the key
	val, err := redisClient.Get("mykey")
	if err != nil {
		log.Fatalf("Failed to get key: %v", err)
	}
	fmt.Printf("mykey: %s\n", val)

	return redisClient
}

func testCatalogService(container *di.Container) {
	log.Println("Running: testCatalogService")
	summary, err := container.CatalogService.RefreshCatalog()
	if err != nil {
		log.Println("Error refreshing catalog:", err)
		return
	}
	log.Printf("Catalog: %d rooms, prices %.2f - %.2f, %d amenities",
		summary.RoomCount, summary.PriceRange.Min, summary.PriceRange.Max, len(summary.Amenities))

	allRooms, err := container.RoomsAPI.GetAllRooms()
	if err != nil {
		log.Println("Error fetching all rooms:", err)
		return
	}
	util.PlotPriceHistogram(allRooms)
}

func demoDiscovery(container *di.Container) {
	log.Println("Running: demoDiscovery")
	controller := container.DiscoveryController

	controller.OnChange(func(s discovery.Snapshot) {
		if s.Error != "" {
			log.Printf("[demo] error: %s", s.Error)
			return
		}
		log.Printf("[demo] page %d/%d, %d rooms shown, loading=%v loadingMore=%v",
			s.Pagination.Page, s.Pagination.TotalPages, len(s.Rooms), s.Loading, s.LoadingMore)
	})

	controller.Refresh()
	time.Sleep(time.Second)

	// Narrow down to doubles sorted by price
	roomType := models.ROOM_TYPE_DOUBLE
	sortBy := models.SORT_BY_PRICE
	controller.Filters().Update(discovery.FilterPatch{
		Type:   &roomType,
		SortBy: &sortBy,
	})
	time.Sleep(time.Second)

	controller.GoToPage(2)
	time.Sleep(time.Second)

	// Switch to infinite scroll driven by a simulated distance-to-bottom
	controller.SetMode(discovery.ModeInfinite)

	var distance int64 = 2000
	source := discovery.NewPollingProximitySource(
		func() float64 { return float64(atomic.LoadInt64(&distance)) },
		config.SCROLL_PROXIMITY_THRESHOLD,
		50*time.Millisecond,
	)
	sentinel := discovery.NewScrollSentinel(source, func() {
		log.Println("[demo] sentinel near bottom, loading more")
		controller.LoadMore()
	})
	defer sentinel.Close()

	// replaces the logging-only callback registered above
	controller.OnChange(func(s discovery.Snapshot) {
		if s.Error != "" {
			log.Printf("[demo] error: %s", s.Error)
		} else {
			log.Printf("[demo] page %d/%d, %d rooms shown", s.Pagination.Page, s.Pagination.TotalPages, len(s.Rooms))
		}
		sentinel.Update(s.HasMore(), s.Loading || s.LoadingMore)
	})
	snapshot := controller.Snapshot()
	sentinel.Update(snapshot.HasMore(), snapshot.Loading || snapshot.LoadingMore)

	// Simulate the user scrolling toward the bottom of the list
	atomic.StoreInt64(&distance, 120)
	time.Sleep(time.Second)
	atomic.StoreInt64(&distance, 1500)
	time.Sleep(200 * time.Millisecond)
	atomic.StoreInt64(&distance, 80)
	time.Sleep(time.Second)

	final := controller.Snapshot()
	log.Printf("[demo] done: %d rooms loaded over %d pages", len(final.Rooms), final.Pagination.Page)
}

func main() {
	env := os.Getenv("ROOMSCOUT_ENV")
	if env == "" {
		env = "prod"
	}
	container := di.NewContainer(env)

	// testRedisClient(container.RedisClient)

	go func() {
		// give the stub server a moment to come up
		time.Sleep(time.Second)

		fmt.Println("refreshing catalog!")
		testCatalogService(container)

		fmt.Println("starting periodic job!")
		container.CatalogRefresherService.StartPeriodicJob(config.CATALOG_REFRESHER_SCHEDULE_MINUTES * time.Minute)

		demoDiscovery(container)
	}()

	fmt.Println("starting stub server!")
	container.RoomsStubServer.Start()
	fmt.Println("server exited!")
}
