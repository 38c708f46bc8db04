package imaging

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"net/http"
	"time"

	"pexview/internal/eventbus"
)

const maxImageBytes = 20 << 20

// Loader downloads and decodes images
type Loader struct {
	http *http.Client
}

// NewLoader creates a loader using hc, or http.DefaultClient when nil
func NewLoader(hc *http.Client) *Loader {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Loader{http: hc}
}

// Load fetches url and decodes it as JPEG or PNG
func (l *Loader) Load(ctx context.Context, url string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build image request: %w", err)
	}

	resp, err := l.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("image download failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("image download failed: status %d", resp.StatusCode)
	}

	img, _, err := image.Decode(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// ImageService loads photos requested on the bus
type ImageService struct {
	bus        eventbus.EventBus
	loader     *Loader
	timeout    time.Duration
	workerPool chan struct{} // semaphore limiting concurrent downloads
}

// NewImageService creates the service and subscribes it to image requests
func NewImageService(bus eventbus.EventBus, loader *Loader, timeout time.Duration) *ImageService {
	s := &ImageService{
		bus:        bus,
		loader:     loader,
		timeout:    timeout,
		workerPool: make(chan struct{}, 4),
	}

	bus.Subscribe(eventbus.EventImageRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ImageRequestedEvent); ok {
			s.handle(event)
		}
	})

	return s
}

func (s *ImageService) handle(event eventbus.ImageRequestedEvent) {
	s.workerPool <- struct{}{}
	defer func() { <-s.workerPool }()

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	img, err := s.loader.Load(ctx, event.URL)
	if err != nil {
		log.Printf("Failed to load photo %d: %v", event.PhotoID, err)
		s.bus.Publish(eventbus.ImageFailedEvent{
			Generation: event.Generation,
			PhotoID:    event.PhotoID,
			Err:        err,
		})
		return
	}

	s.bus.Publish(eventbus.ImageLoadedEvent{
		Generation: event.Generation,
		PhotoID:    event.PhotoID,
		Image:      img,
	})
}
