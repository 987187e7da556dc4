package discovery

import (
	"sync"
	"time"
)

// ProximityEventSource signals when the end-of-list attachment point comes
// near the viewport. Implementations fire onNear once per approach; the
// attachment point has to leave proximity before another event is emitted.
type ProximityEventSource interface {
	Start(onNear func())
	Stop()
}

// ScrollSentinel sits at the end of the rendered list and forwards near
// events to the load-more callback, but only while the list has more items
// and no fetch is in flight.
type ScrollSentinel struct {
	source     ProximityEventSource
	onLoadMore func()

	mu       sync.Mutex
	hasMore  bool
	loading  bool
	watching bool
	closed   bool
}

// NewScrollSentinel wires a sentinel to its event source. The watch is not
// established until the first Update reports hasMore.
func NewScrollSentinel(source ProximityEventSource, onLoadMore func()) *ScrollSentinel {
	return &ScrollSentinel{
		source:     source,
		onLoadMore: onLoadMore,
	}
}

// Update re-establishes the watch for the new hasMore/loading state.
func (s *ScrollSentinel) Update(hasMore, loading bool) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.hasMore = hasMore
	s.loading = loading

	shouldWatch := hasMore && !loading
	if shouldWatch == s.watching {
		s.mu.Unlock()
		return
	}
	s.watching = shouldWatch
	s.mu.Unlock()

	if shouldWatch {
		s.source.Start(s.near)
	} else {
		s.source.Stop()
	}
}

func (s *ScrollSentinel) near() {
	s.mu.Lock()
	armed := !s.closed && s.hasMore && !s.loading
	s.mu.Unlock()

	if armed {
		s.onLoadMore()
	}
}

// Close releases the observation resources unconditionally. The sentinel
// cannot be reused afterwards.
func (s *ScrollSentinel) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	watching := s.watching
	s.watching = false
	s.mu.Unlock()

	if watching {
		s.source.Stop()
	}
}

// PollingProximitySource polls a distance probe and fires when the probe
// first comes within the threshold. Within one watch it only re-fires after
// the probe has left the threshold again, so one approach yields one event;
// each new watch starts with a clean slate.
type PollingProximitySource struct {
	distance  func() float64
	threshold float64
	interval  time.Duration

	mu     sync.Mutex
	stopCh chan struct{}
	within bool
}

// NewPollingProximitySource builds a source around the probe. threshold is in
// the probe's distance units, interval is the polling period.
func NewPollingProximitySource(distance func() float64, threshold float64, interval time.Duration) *PollingProximitySource {
	return &PollingProximitySource{
		distance:  distance,
		threshold: threshold,
		interval:  interval,
	}
}

func (p *PollingProximitySource) Start(onNear func()) {
	p.mu.Lock()
	if p.stopCh != nil {
		p.mu.Unlock()
		return // already watching
	}
	stopCh := make(chan struct{})
	p.stopCh = stopCh
	// a fresh watch fires even if the probe never left the threshold since
	// the previous watch stopped
	p.within = false
	p.mu.Unlock()

	go p.poll(stopCh, onNear)
}

func (p *PollingProximitySource) poll(stopCh chan struct{}, onNear func()) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			d := p.distance()

			p.mu.Lock()
			fire := false
			if d <= p.threshold && !p.within {
				p.within = true
				fire = true
			} else if d > p.threshold {
				p.within = false
			}
			p.mu.Unlock()

			if fire {
				onNear()
			}
		}
	}
}

func (p *PollingProximitySource) Stop() {
	p.mu.Lock()
	if p.stopCh != nil {
		close(p.stopCh)
		p.stopCh = nil
	}
	p.mu.Unlock()
}
