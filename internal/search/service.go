package search

import (
	"context"
	"log"
	"time"

	"pexview/internal/eventbus"
	"pexview/internal/pexels"
)

// SearchService runs photo searches requested on the bus
type SearchService struct {
	bus      eventbus.EventBus
	searcher pexels.Searcher
	timeout  time.Duration
}

// NewSearchService creates the service and subscribes it to search requests
func NewSearchService(bus eventbus.EventBus, searcher pexels.Searcher, timeout time.Duration) *SearchService {
	s := &SearchService{
		bus:      bus,
		searcher: searcher,
		timeout:  timeout,
	}

	bus.Subscribe(eventbus.EventSearchRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SearchRequestedEvent); ok {
			s.Run(event)
		}
	})

	return s
}

// Run performs one search and publishes its outcome. Requests are not
// cancelled when a newer one arrives; the UI discards stale generations.
func (s *SearchService) Run(event eventbus.SearchRequestedEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	req := event.Request
	start := time.Now()
	photos, err := s.searcher.Search(ctx, req.Topic)
	if err != nil {
		log.Printf("Search %s (gen %d) for %q failed after %s: %v", req.RequestID, req.Generation, req.Topic, time.Since(start), err)
		s.bus.Publish(eventbus.SearchFailedEvent{Request: req, Err: err})
		return
	}

	log.Printf("Search %s (gen %d) for %q returned %d photos in %s", req.RequestID, req.Generation, req.Topic, len(photos), time.Since(start))
	s.bus.Publish(eventbus.SearchCompletedEvent{Request: req, Photos: photos})
}
