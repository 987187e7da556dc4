package config

import (
	"os"
	"path/filepath"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Rooms API
const ROOMS_API_ENDPOINT_BASE_V1 = "http://localhost:9090/v1"
const ROOMS_STUB_SERVER_ADDRESS = ":9090"

// Discovery defaults
const DEFAULT_PAGE_LIMIT = 12
const SCROLL_PROXIMITY_THRESHOLD = 200

// PAGE_LIMIT_OPTIONS are the page sizes the discovery controller accepts.
var PAGE_LIMIT_OPTIONS = []int{12, 24, 48}

// Catalog cache / refresher config
const CATALOG_CACHE_TTL_MINUTES = 30
const CATALOG_REFRESHER_SCHEDULE_MINUTES = 60

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const ROOMS_FIXTURE_RESOURCE = "rooms.json"

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}

// IsAllowedPageLimit reports whether n is one of the accepted page sizes.
func IsAllowedPageLimit(n int) bool {
	for _, opt := range PAGE_LIMIT_OPTIONS {
		if n == opt {
			return true
		}
	}
	return false
}
