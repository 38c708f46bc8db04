package handlers

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"pexview/internal/eventbus"
	"pexview/internal/ui/commands"
	"pexview/internal/ui/state"
)

// EventHandler handles domain events and updates state
type EventHandler struct {
	state     *state.AppState
	executor  *commands.Executor
	onResults func()
}

// NewEventHandler creates a new event handler. onResults runs after a new
// non-empty result set has been stored.
func NewEventHandler(appState *state.AppState, executor *commands.Executor, onResults func()) *EventHandler {
	return &EventHandler{
		state:     appState,
		executor:  executor,
		onResults: onResults,
	}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.SearchCompletedEvent:
		if !h.state.ApplyResults(e.Request.Generation, e.Photos) {
			log.Printf("Discarding stale results for %q (generation=%d, current=%d)",
				e.Request.Topic, e.Request.Generation, h.state.Generation)
			return nil
		}
		if len(e.Photos) == 0 {
			return nil
		}
		if h.onResults != nil {
			h.onResults()
		}
		h.state.StatusMessage = fmt.Sprintf("%d photos for %q", len(e.Photos), e.Request.Topic)
		if h.executor != nil {
			return h.executor.ExecuteLoadImages(e.Request.Generation, e.Photos)
		}

	case eventbus.SearchFailedEvent:
		if !h.state.ApplyFailure(e.Request.Generation, e.Err) {
			log.Printf("Discarding stale failure for %q: %v", e.Request.Topic, e.Err)
		}

	case eventbus.ImageLoadedEvent:
		h.state.StoreImage(e.Generation, e.PhotoID, e.Image)

	case eventbus.ImageFailedEvent:
		h.state.MarkImageFailed(e.Generation, e.PhotoID)

	case eventbus.ErrorEvent:
		h.state.StatusMessage = fmt.Sprintf("Error: %s", e.Message)
	}

	return nil
}
