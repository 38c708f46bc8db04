package commands

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"pexview/internal/domain"
	"pexview/internal/eventbus"
	"pexview/internal/ui/state"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	State *state.AppState
	Bus   eventbus.EventBus
}

// SearchCommand submits a topic to the search service
type SearchCommand struct {
	ctx   *CommandContext
	topic string
}

// NewSearchCommand creates a new search command
func NewSearchCommand(ctx *CommandContext, topic string) *SearchCommand {
	return &SearchCommand{
		ctx:   ctx,
		topic: topic,
	}
}

// Execute resets the gallery and publishes the request. An empty topic does nothing.
func (c *SearchCommand) Execute() tea.Cmd {
	if c.topic == "" {
		return nil
	}

	gen := c.ctx.State.BeginSearch(c.topic)
	req := domain.SearchRequest{
		Generation: gen,
		RequestID:  uuid.NewString(),
		Topic:      c.topic,
	}
	log.Printf("Submitting search %q (generation=%d, request=%s)", c.topic, gen, req.RequestID)

	if c.ctx.Bus != nil {
		c.ctx.Bus.Publish(eventbus.SearchRequestedEvent{Request: req})
	}
	return nil
}

// LoadImagesCommand asks the image service for every photo of a result set
type LoadImagesCommand struct {
	ctx        *CommandContext
	generation uint64
	photos     []domain.Photo
}

// NewLoadImagesCommand creates a new load images command
func NewLoadImagesCommand(ctx *CommandContext, generation uint64, photos []domain.Photo) *LoadImagesCommand {
	return &LoadImagesCommand{
		ctx:        ctx,
		generation: generation,
		photos:     photos,
	}
}

// Execute publishes one request per photo
func (c *LoadImagesCommand) Execute() tea.Cmd {
	if c.ctx.Bus == nil {
		return nil
	}
	for _, p := range c.photos {
		url := p.DisplayURL()
		if url == "" {
			c.ctx.State.MarkImageFailed(c.generation, p.ID)
			continue
		}
		c.ctx.Bus.Publish(eventbus.ImageRequestedEvent{
			Generation: c.generation,
			PhotoID:    p.ID,
			URL:        url,
		})
	}
	return nil
}

// CloseGalleryCommand goes back to the search box keeping the photos
type CloseGalleryCommand struct {
	ctx *CommandContext
}

// NewCloseGalleryCommand creates a new close gallery command
func NewCloseGalleryCommand(ctx *CommandContext) *CloseGalleryCommand {
	return &CloseGalleryCommand{ctx: ctx}
}

// Execute closes the gallery
func (c *CloseGalleryCommand) Execute() tea.Cmd {
	c.ctx.State.CloseGallery()
	return nil
}

// ReopenGalleryCommand returns to the photos of the last search
type ReopenGalleryCommand struct {
	ctx *CommandContext
}

// NewReopenGalleryCommand creates a new reopen gallery command
func NewReopenGalleryCommand(ctx *CommandContext) *ReopenGalleryCommand {
	return &ReopenGalleryCommand{ctx: ctx}
}

// Execute reopens the gallery when photos are held
func (c *ReopenGalleryCommand) Execute() tea.Cmd {
	if !c.ctx.State.ReopenGallery() {
		c.ctx.State.StatusMessage = "No photos yet"
	}
	return nil
}
