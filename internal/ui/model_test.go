package ui

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pexview/internal/config"
	"pexview/internal/domain"
	"pexview/internal/eventbus"
	inputtypes "pexview/internal/ui/input/types"
	"pexview/internal/ui/logic"
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

func (b *recordingBus) searches() []domain.SearchRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []domain.SearchRequest
	for _, e := range b.events {
		if r, ok := e.(eventbus.SearchRequestedEvent); ok {
			out = append(out, r.Request)
		}
	}
	return out
}

func newTestModel(t *testing.T) (*Model, *recordingBus) {
	t.Helper()
	bus := &recordingBus{}
	m := NewModel(bus, config.DefaultConfig())
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	return m, bus
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeTopic(m *Model, topic string) {
	for _, r := range topic {
		m.Update(keyRunes(string(r)))
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
}

func photos(n int) []domain.Photo {
	out := make([]domain.Photo, n)
	for i := range out {
		out[i] = domain.Photo{
			ID:       int64(i + 1),
			Width:    100,
			Height:   100,
			AvgColor: "#202020",
			Src:      domain.PhotoSource{Portrait: fmt.Sprintf("http://img/%d", i+1)},
		}
	}
	return out
}

// openGallery submits topic and answers it with n photos
func openGallery(t *testing.T, m *Model, bus *recordingBus, topic string, n int) {
	t.Helper()
	typeTopic(m, topic)
	reqs := bus.searches()
	require.NotEmpty(t, reqs)
	m.Update(EventMsg{Event: eventbus.SearchCompletedEvent{Request: reqs[len(reqs)-1], Photos: photos(n)}})
	require.Equal(t, state.ModeGallery, m.state.Mode())
}

func settle(m *Model) {
	for i := 0; i < 1000 && m.sync.State() == logic.SyncAnimating; i++ {
		m.Update(frameMsg(time.Now()))
	}
}

func TestSubmitMovesToLoading(t *testing.T) {
	m, bus := newTestModel(t)

	typeTopic(m, "cats")

	reqs := bus.searches()
	require.Len(t, reqs, 1)
	assert.Equal(t, "cats", reqs[0].Topic)
	assert.Equal(t, uint64(1), reqs[0].Generation)
	assert.NotEmpty(t, reqs[0].RequestID)
	assert.Equal(t, state.ModeLoading, m.state.Mode())
	assert.Equal(t, inputtypes.ModeLoading, m.inputHandler.CurrentMode())
	assert.Empty(t, m.inputHandler.TextInput().Value())
	assert.Contains(t, m.View(), "cats")
}

func TestEmptySubmitDoesNothing(t *testing.T) {
	m, bus := newTestModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Empty(t, bus.searches())
	assert.Equal(t, state.ModeSearchEntry, m.state.Mode())
	assert.Zero(t, m.state.Generation)
}

func TestResultsOpenGalleryAtFirstPhoto(t *testing.T) {
	m, bus := newTestModel(t)
	openGallery(t, m, bus, "cats", 5)

	assert.Equal(t, 0, m.state.ActiveIndex)
	assert.Equal(t, inputtypes.ModeGallery, m.inputHandler.CurrentMode())
	assert.Zero(t, m.sync.Pager.Offset)
	assert.Zero(t, m.sync.Strip.Offset)

	requested := 0
	for _, e := range bus.events {
		if _, ok := e.(eventbus.ImageRequestedEvent); ok {
			requested++
		}
	}
	assert.Equal(t, 5, requested)
}

func TestPhotoWithoutURLIsMarkedFailed(t *testing.T) {
	m, bus := newTestModel(t)
	typeTopic(m, "cats")

	results := photos(3)
	results[1].Src = domain.PhotoSource{}
	m.Update(EventMsg{Event: eventbus.SearchCompletedEvent{Request: bus.searches()[0], Photos: results}})

	var requested []int64
	for _, e := range bus.events {
		if r, ok := e.(eventbus.ImageRequestedEvent); ok {
			requested = append(requested, r.PhotoID)
		}
	}
	assert.Equal(t, []int64{1, 3}, requested)
	assert.True(t, m.state.FailedImages[2])
	assert.False(t, m.state.FailedImages[1])
}

func TestStaleResultsAreDiscarded(t *testing.T) {
	m, _ := newTestModel(t)
	first := m.state.BeginSearch("dogs")
	second := m.state.BeginSearch("cats")

	m.Update(EventMsg{Event: eventbus.SearchCompletedEvent{
		Request: domain.SearchRequest{Generation: first, Topic: "dogs"},
		Photos:  photos(3),
	}})
	assert.Nil(t, m.state.Photos)
	assert.Equal(t, state.ModeLoading, m.state.Mode())

	m.Update(EventMsg{Event: eventbus.SearchCompletedEvent{
		Request: domain.SearchRequest{Generation: second, Topic: "cats"},
		Photos:  photos(2),
	}})
	assert.Len(t, m.state.Photos, 2)
}

func TestEmptyResultsRaiseNotice(t *testing.T) {
	m, bus := newTestModel(t)
	typeTopic(m, "zzz")
	m.Update(EventMsg{Event: eventbus.SearchCompletedEvent{Request: bus.searches()[0]}})

	require.NotNil(t, m.state.Notice)
	assert.Equal(t, inputtypes.ModeNotice, m.inputHandler.CurrentMode())

	// Typing is swallowed while the notice is up
	m.Update(keyRunes("a"))
	assert.Empty(t, m.inputHandler.TextInput().Value())

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, m.state.Notice)
	assert.Equal(t, inputtypes.ModeSearch, m.inputHandler.CurrentMode())
	assert.Equal(t, state.ModeSearchEntry, m.state.Mode())
}

func TestFailedSearchRaisesErrorNotice(t *testing.T) {
	m, bus := newTestModel(t)
	typeTopic(m, "cats")
	m.Update(EventMsg{Event: eventbus.SearchFailedEvent{Request: bus.searches()[0], Err: errors.New("status 401")}})

	require.NotNil(t, m.state.Notice)
	assert.Equal(t, state.NoticeError, m.state.Notice.Kind)
	assert.Contains(t, m.View(), "status 401")
}

func TestThumbnailKeyMovesBothSurfaces(t *testing.T) {
	m, bus := newTestModel(t)
	openGallery(t, m, bus, "cats", 10)

	m.Update(keyRunes("5"))
	assert.Equal(t, 4, m.state.ActiveIndex)
	assert.Equal(t, logic.SyncAnimating, m.sync.State())

	settle(m)
	assert.Equal(t, 160.0, m.sync.Pager.Offset)
	// 4*9 - 40/2 + 8/2
	assert.Equal(t, 20.0, m.sync.Strip.Offset)
}

func TestFlingSettlesOnNextPhoto(t *testing.T) {
	m, bus := newTestModel(t)
	openGallery(t, m, bus, "cats", 3)

	m.Update(keyRunes("l"))
	settle(m)
	assert.Equal(t, 1, m.state.ActiveIndex)
	assert.Equal(t, 40.0, m.sync.Pager.Offset)

	// Flinging past the last page stays on it
	m.Update(keyRunes("l"))
	settle(m)
	m.Update(keyRunes("l"))
	settle(m)
	assert.Equal(t, 2, m.state.ActiveIndex)
	assert.Equal(t, 80.0, m.sync.Pager.Offset)
}

func TestWheelDragSnapsAfterQuiet(t *testing.T) {
	m, bus := newTestModel(t)
	openGallery(t, m, bus, "cats", 3)

	for i := 0; i < 6; i++ {
		m.Update(tea.MouseMsg{Button: tea.MouseButtonWheelRight, Action: tea.MouseActionPress})
	}
	assert.Equal(t, 24.0, m.sync.Pager.Offset)
	assert.Equal(t, 0, m.state.ActiveIndex)

	// Only the latest drag may snap
	m.Update(snapMsg{seq: m.dragSeq - 1})
	assert.Equal(t, 24.0, m.sync.Pager.Offset)

	m.Update(snapMsg{seq: m.dragSeq})
	settle(m)
	assert.Equal(t, 1, m.state.ActiveIndex)
	assert.Equal(t, 40.0, m.sync.Pager.Offset)
}

func TestMouseDisabledIgnoresClicks(t *testing.T) {
	m, bus := newTestModel(t)
	m.config.UISettings.Mouse = false
	openGallery(t, m, bus, "cats", 3)

	m.Update(tea.MouseMsg{Button: tea.MouseButtonWheelRight, Action: tea.MouseActionPress})
	assert.Zero(t, m.sync.Pager.Offset)
}

func TestCloseAndReopenGallery(t *testing.T) {
	m, bus := newTestModel(t)
	openGallery(t, m, bus, "cats", 3)
	m.Update(keyRunes("3"))
	settle(m)

	m.Update(keyRunes("x"))
	assert.Equal(t, state.ModeSearchEntry, m.state.Mode())
	assert.Equal(t, inputtypes.ModeSearch, m.inputHandler.CurrentMode())

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, state.ModeGallery, m.state.Mode())
	assert.Equal(t, 2, m.state.ActiveIndex)
}

func TestInfoPopupClosesBeforeGallery(t *testing.T) {
	m, bus := newTestModel(t)
	openGallery(t, m, bus, "cats", 2)

	m.Update(keyRunes("i"))
	assert.True(t, m.state.ShowInfo)

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.state.ShowInfo)
	assert.Equal(t, state.ModeGallery, m.state.Mode())
}

func TestHelpWithoutProgramSetsStatus(t *testing.T) {
	m, bus := newTestModel(t)
	openGallery(t, m, bus, "cats", 2)

	m.Update(keyRunes("?"))
	assert.Equal(t, "Help is not available", m.state.StatusMessage)

	m.Update(clearStatusMsg{})
	assert.Empty(t, m.state.StatusMessage)
}

func TestResizeRealignsActivePage(t *testing.T) {
	m, bus := newTestModel(t)
	openGallery(t, m, bus, "cats", 3)
	m.Update(keyRunes("2"))
	settle(m)

	m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	assert.Equal(t, 60.0, m.sync.Pager.Offset)
	assert.Equal(t, logic.SyncIdle, m.sync.State())
}

func TestPagerModeBlanksView(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(pauseRenderingMsg{})
	assert.Empty(t, m.View())
	m.Update(resumeRenderingMsg{})
	assert.NotEmpty(t, m.View())
}

func TestHelpContentListsBindings(t *testing.T) {
	m, _ := newTestModel(t)
	content := m.helpRender.RenderHelpContent()
	assert.Contains(t, content, "previous photo")
	assert.Contains(t, content, "photo details")
	assert.Contains(t, content, "show photos")
}
