package discovery

import (
	"errors"
	"log"
	"sync"

	"roomscout/api"
	"roomscout/api/rooms"
	"roomscout/config"
	"roomscout/models"
)

// FetchMode says how a fetched page combines with the current result list.
type FetchMode string

const (
	FetchReplace FetchMode = "replace"
	FetchAppend  FetchMode = "append"
)

// ListMode is the user-facing navigation mode.
type ListMode string

const (
	ModePaged    ListMode = "paged"
	ModeInfinite ListMode = "infinite"
)

const GENERIC_FETCH_ERROR = "failed to load rooms"

// Snapshot is the read-only view model handed to the rendering layer.
type Snapshot struct {
	Rooms       []models.Room
	Loading     bool
	LoadingMore bool
	Error       string
	Pagination  models.Pagination
	Mode        ListMode
}

// HasMore reports whether the list can still grow in infinite mode.
func (s Snapshot) HasMore() bool {
	return s.Pagination.HasMore()
}

// RoomDiscoveryController reconciles filter state, the two retrieval modes and
// both response shapes into one consistent result list. It owns the list and
// its pagination exclusively; collaborators only read snapshots and invoke the
// mutating entry points.
//
// Concurrency: fetches resolve on their own goroutines. A monotonic request
// generation decides which fetch may commit; a result whose generation is no
// longer the newest is discarded (last request wins).
type RoomDiscoveryController struct {
	roomsApi rooms.RoomsAPI
	filters  *FilterStore

	mu             sync.Mutex
	limit          int
	items          []models.Room
	pagination     models.Pagination
	loading        bool
	loadingMore    bool
	errMsg         string
	mode           ListMode
	generation     uint64
	loadingGen     uint64
	loadingMoreGen uint64
	onChange       func(Snapshot)
}

// NewRoomDiscoveryController wires the controller to its filter store. Filter
// updates restart discovery from the first page, whatever the current mode.
func NewRoomDiscoveryController(roomsApi rooms.RoomsAPI, filters *FilterStore) *RoomDiscoveryController {
	c := &RoomDiscoveryController{
		roomsApi: roomsApi,
		filters:  filters,
		limit:    config.DEFAULT_PAGE_LIMIT,
		mode:     ModePaged,
	}
	filters.OnChange(c.onFiltersChanged)
	return c
}

// OnChange registers the callback invoked after every settled state change.
func (c *RoomDiscoveryController) OnChange(fn func(Snapshot)) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}

// Snapshot returns the current view model.
func (c *RoomDiscoveryController) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Refresh issues a first-page fetch with the current criteria.
func (c *RoomDiscoveryController) Refresh() {
	c.mu.Lock()
	c.fetchLocked(1, FetchReplace)
	c.mu.Unlock()
}

// GoToPage fetches page n in paged mode. It reports whether a fetch was
// issued: out-of-range pages, infinite mode and an in-flight reload all
// refuse the navigation.
func (c *RoomDiscoveryController) GoToPage(n int) bool {
	c.mu.Lock()
	if c.mode != ModePaged || c.loading {
		c.mu.Unlock()
		return false
	}
	if n < 1 || n > c.pagination.TotalPages {
		c.mu.Unlock()
		return false
	}
	c.fetchLocked(n, FetchReplace)
	c.mu.Unlock()
	return true
}

// SetLimit switches to one of the accepted page sizes and reloads from page 1.
func (c *RoomDiscoveryController) SetLimit(n int) bool {
	if !config.IsAllowedPageLimit(n) {
		return false
	}
	c.mu.Lock()
	if c.loading {
		c.mu.Unlock()
		return false
	}
	c.limit = n
	c.fetchLocked(1, FetchReplace)
	c.mu.Unlock()
	return true
}

// LoadMore appends the next page in infinite mode. It is a no-op while a
// fetch is in flight or once the last page has been reached.
func (c *RoomDiscoveryController) LoadMore() bool {
	c.mu.Lock()
	if c.mode != ModeInfinite || c.loading || c.loadingMore {
		c.mu.Unlock()
		return false
	}
	if !c.pagination.HasMore() {
		// terminal state: report "no more items" instead of fetching
		c.mu.Unlock()
		return false
	}
	c.fetchLocked(c.pagination.Page+1, FetchAppend)
	c.mu.Unlock()
	return true
}

// SetMode switches between paged navigation and infinite scrolling. Leaving
// infinite mode discards appended progress and reloads a single clean page;
// entering it keeps the current page as the list's starting point.
func (c *RoomDiscoveryController) SetMode(mode ListMode) {
	c.mu.Lock()
	if mode == c.mode {
		c.mu.Unlock()
		return
	}
	prev := c.mode
	c.mode = mode
	if prev == ModeInfinite && mode == ModePaged {
		c.fetchLocked(1, FetchReplace)
		c.mu.Unlock()
		return
	}
	c.notifyAndUnlock()
}

// Filters exposes the store so callers patch criteria through one place.
func (c *RoomDiscoveryController) Filters() *FilterStore {
	return c.filters
}

func (c *RoomDiscoveryController) onFiltersChanged(models.RoomFilterParams) {
	c.mu.Lock()
	c.fetchLocked(1, FetchReplace)
	c.mu.Unlock()
}

// fetchLocked starts an asynchronous fetch. Caller holds c.mu.
func (c *RoomDiscoveryController) fetchLocked(page int, mode FetchMode) {
	c.generation++
	gen := c.generation
	if mode == FetchAppend {
		c.loadingMore = true
		c.loadingMoreGen = gen
	} else {
		c.loading = true
		c.loadingGen = gen
	}
	limit := c.limit

	go c.doFetch(gen, page, limit, mode)
}

func (c *RoomDiscoveryController) doFetch(gen uint64, page, limit int, mode FetchMode) {
	params := c.filters.Current()
	params.Page = &page
	params.Limit = &limit

	resp, err := c.roomsApi.ListRooms(params)

	c.mu.Lock()

	// The loading flag is cleared no matter how the fetch ended, but only by
	// the fetch that owns it; a newer fetch may have taken the flag over.
	cleared := false
	if mode == FetchAppend {
		if c.loadingMoreGen == gen {
			c.loadingMore = false
			cleared = true
		}
	} else {
		if c.loadingGen == gen {
			c.loading = false
			cleared = true
		}
	}

	if gen != c.generation {
		// superseded while in flight; discard the result, last request wins
		if cleared {
			c.notifyAndUnlock()
		} else {
			c.mu.Unlock()
		}
		return
	}

	if err != nil {
		c.errMsg = fetchErrorMessage(err)
		if mode == FetchReplace {
			// a failed reload blanks the list; a failed load-more keeps the
			// partial list visible
			c.items = nil
			c.pagination = models.Pagination{}
		}
		c.notifyAndUnlock()
		return
	}

	c.errMsg = ""
	if mode == FetchAppend {
		c.items = append(c.items, resp.Data...)
	} else {
		c.items = append([]models.Room(nil), resp.Data...)
	}
	c.pagination = resp.PageMeta()
	c.notifyAndUnlock()
}

func (c *RoomDiscoveryController) snapshotLocked() Snapshot {
	return Snapshot{
		Rooms:       append([]models.Room(nil), c.items...),
		Loading:     c.loading,
		LoadingMore: c.loadingMore,
		Error:       c.errMsg,
		Pagination:  c.pagination,
		Mode:        c.mode,
	}
}

// notifyAndUnlock snapshots under the lock, releases it, then invokes the
// change callback so listeners can call back into the controller.
func (c *RoomDiscoveryController) notifyAndUnlock() {
	fn := c.onChange
	snap := c.snapshotLocked()
	c.mu.Unlock()

	if fn != nil {
		fn(snap)
	}
}

// fetchErrorMessage prefers the server-supplied message; transport and decode
// failures collapse into the generic fallback.
func fetchErrorMessage(err error) string {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	log.Printf("[RoomDiscoveryController] fetch failed: %v", err)
	return GENERIC_FETCH_ERROR
}
