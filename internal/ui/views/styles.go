package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Topic       lipgloss.Style
	Counter     lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	StatusError lipgloss.Style
	Help        lipgloss.Style
	Prompt      lipgloss.Style
	InputBox    lipgloss.Style
	Hint        lipgloss.Style
	Spinner     lipgloss.Style
	NoticeBox   lipgloss.Style
	NoticeTitle lipgloss.Style
	NoticeError lipgloss.Style
	InfoBox     lipgloss.Style
	Unavailable lipgloss.Style
	ActiveMark  lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Topic:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Italic(true),
		Counter:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Dim:         lipgloss.NewStyle().Faint(true),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Help:        lipgloss.NewStyle().Faint(true),
		Prompt: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		InputBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1).
			Width(40),
		Hint:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1),
		Spinner: lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		NoticeBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1, 2).
			BorderForeground(lipgloss.Color("241")),
		NoticeTitle: lipgloss.NewStyle().Bold(true).MarginBottom(1),
		NoticeError: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")).MarginBottom(1),
		InfoBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1).
			BorderForeground(lipgloss.Color("241")),
		Unavailable: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		ActiveMark:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")), // white
	}
}
