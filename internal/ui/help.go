package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"pexview/internal/ui/views"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	gallery views.GalleryKeyMap
	search  views.SearchKeyMap
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(gallery views.GalleryKeyMap, search views.SearchKeyMap) *HelpRenderer {
	return &HelpRenderer{gallery: gallery, search: search}
}

var helpSections = []string{"Paging", "Thumbnails", "Other"}

// RenderHelpContent generates help content with colors for the pager
func (r *HelpRenderer) RenderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	groups := r.gallery.FullHelp()
	width := 0
	for _, group := range append(groups, r.search.FullHelp()...) {
		for _, b := range group {
			width = max(width, lipgloss.Width(b.Help().Key))
		}
	}

	line := func(help *strings.Builder, b key.Binding) {
		k := b.Help().Key
		pad := strings.Repeat(" ", width-lipgloss.Width(k)+2)
		fmt.Fprintf(help, "  %s%s%s\n", keyStyle.Render(k), pad, descStyle.Render(b.Help().Desc))
	}

	var help strings.Builder
	help.WriteString(titleStyle.Render("pexview Help"))
	help.WriteString("\n")

	for i, group := range groups {
		name := "More"
		if i < len(helpSections) {
			name = helpSections[i]
		}
		help.WriteString(sectionStyle.Render(name))
		help.WriteString("\n")
		for _, b := range group {
			line(&help, b)
		}
	}

	help.WriteString(sectionStyle.Render("Search box"))
	help.WriteString("\n")
	for _, group := range r.search.FullHelp() {
		for _, b := range group {
			line(&help, b)
		}
	}

	help.WriteString("\n")
	help.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).
		Render("  Photos provided by Pexels"))
	return help.String()
}

// HelpOps runs the help pager
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// SetProgram sets the program reference
func (h *HelpOps) SetProgram(p *tea.Program) {
	h.program = p
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return err
	}

	// Don't write the help text back to the terminal on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
