package handlers

import (
	"errors"
	"image"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pexview/internal/domain"
	"pexview/internal/eventbus"
	"pexview/internal/ui/commands"
	"pexview/internal/ui/state"
)

type recordingBus struct {
	mu     sync.Mutex
	events []eventbus.DomainEvent
}

func (b *recordingBus) Publish(e eventbus.DomainEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, e)
}

func (b *recordingBus) Subscribe(eventbus.EventType, eventbus.EventHandler) func() {
	return func() {}
}

func (b *recordingBus) Close() {}

func setup() (*state.AppState, *recordingBus, *EventHandler, *int) {
	s := state.NewAppState()
	bus := &recordingBus{}
	calls := 0
	h := NewEventHandler(s, commands.NewExecutor(s, bus), func() { calls++ })
	return s, bus, h, &calls
}

func completed(gen uint64, photos ...domain.Photo) eventbus.SearchCompletedEvent {
	return eventbus.SearchCompletedEvent{
		Request: domain.SearchRequest{Generation: gen, Topic: "t"},
		Photos:  photos,
	}
}

func TestCompletionStoresPhotosAndRequestsImages(t *testing.T) {
	s, bus, h, calls := setup()
	gen := s.BeginSearch("t")

	h.HandleEvent(completed(gen,
		domain.Photo{ID: 1, Src: domain.PhotoSource{Portrait: "u1"}},
		domain.Photo{ID: 2, Src: domain.PhotoSource{Portrait: "u2"}},
	))

	assert.Equal(t, state.ModeGallery, s.Mode())
	assert.Len(t, s.Photos, 2)
	assert.Equal(t, 1, *calls)
	require.Len(t, bus.events, 2)
	assert.IsType(t, eventbus.ImageRequestedEvent{}, bus.events[0])
}

func TestStaleCompletionIsDiscarded(t *testing.T) {
	s, bus, h, calls := setup()
	stale := s.BeginSearch("a")
	s.BeginSearch("b")

	h.HandleEvent(completed(stale, domain.Photo{ID: 1, Src: domain.PhotoSource{Portrait: "u"}}))

	assert.Nil(t, s.Photos)
	assert.Equal(t, state.ModeLoading, s.Mode())
	assert.Equal(t, 0, *calls)
	assert.Empty(t, bus.events)
}

func TestEmptyCompletionShowsNotice(t *testing.T) {
	s, bus, h, calls := setup()
	gen := s.BeginSearch("t")

	h.HandleEvent(completed(gen))

	assert.Equal(t, state.ModeSearchEntry, s.Mode())
	require.NotNil(t, s.Notice)
	assert.Equal(t, 1, s.NoticesShown)
	assert.Equal(t, 0, *calls)
	assert.Empty(t, bus.events)
}

func TestFailureShowsNotice(t *testing.T) {
	s, _, h, _ := setup()
	gen := s.BeginSearch("t")

	h.HandleEvent(eventbus.SearchFailedEvent{
		Request: domain.SearchRequest{Generation: gen},
		Err:     errors.New("unauthorized"),
	})

	assert.Equal(t, state.ModeSearchEntry, s.Mode())
	require.NotNil(t, s.Notice)
	assert.Contains(t, s.Notice.Message, "unauthorized")
}

func TestImageEvents(t *testing.T) {
	s, _, h, _ := setup()
	gen := s.BeginSearch("t")
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))

	h.HandleEvent(eventbus.ImageLoadedEvent{Generation: gen, PhotoID: 7, Image: img})
	h.HandleEvent(eventbus.ImageFailedEvent{Generation: gen, PhotoID: 8, Err: errors.New("404")})
	h.HandleEvent(eventbus.ImageLoadedEvent{Generation: gen - 1, PhotoID: 9, Image: img})

	assert.Contains(t, s.Images, int64(7))
	assert.True(t, s.FailedImages[8])
	assert.NotContains(t, s.Images, int64(9))
}
