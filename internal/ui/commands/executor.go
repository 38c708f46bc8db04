package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"pexview/internal/domain"
	"pexview/internal/eventbus"
	"pexview/internal/ui/state"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(state *state.AppState, bus eventbus.EventBus) *Executor {
	return &Executor{
		ctx: &CommandContext{
			State: state,
			Bus:   bus,
		},
	}
}

// ExecuteSearch creates and executes a search command
func (e *Executor) ExecuteSearch(topic string) tea.Cmd {
	cmd := NewSearchCommand(e.ctx, topic)
	return cmd.Execute()
}

// ExecuteLoadImages creates and executes a load images command
func (e *Executor) ExecuteLoadImages(generation uint64, photos []domain.Photo) tea.Cmd {
	cmd := NewLoadImagesCommand(e.ctx, generation, photos)
	return cmd.Execute()
}

// ExecuteCloseGallery creates and executes a close gallery command
func (e *Executor) ExecuteCloseGallery() tea.Cmd {
	cmd := NewCloseGalleryCommand(e.ctx)
	return cmd.Execute()
}

// ExecuteReopenGallery creates and executes a reopen gallery command
func (e *Executor) ExecuteReopenGallery() tea.Cmd {
	cmd := NewReopenGalleryCommand(e.ctx)
	return cmd.Execute()
}
