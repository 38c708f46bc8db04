package views

import (
	"github.com/charmbracelet/bubbles/key"
)

// GalleryKeyMap describes the gallery bindings for the help bar and the help pager
type GalleryKeyMap struct {
	Prev   key.Binding
	Next   key.Binding
	Step   key.Binding
	Jump   key.Binding
	Ends   key.Binding
	Click  key.Binding
	Wheel  key.Binding
	Info   key.Binding
	Close  key.Binding
	Help   key.Binding
	Quit   key.Binding
	Search key.Binding
}

// NewGalleryKeyMap returns the default gallery bindings
func NewGalleryKeyMap() GalleryKeyMap {
	return GalleryKeyMap{
		Prev:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous photo")),
		Next:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next photo")),
		Step:   key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab/shift+tab", "select next/previous thumbnail")),
		Jump:   key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "select thumbnail")),
		Ends:   key.NewBinding(key.WithKeys("home", "end", "g", "G"), key.WithHelp("home/end", "first/last photo")),
		Click:  key.NewBinding(key.WithKeys("click"), key.WithHelp("click", "select thumbnail")),
		Wheel:  key.NewBinding(key.WithKeys("wheel"), key.WithHelp("shift+wheel", "drag the gallery")),
		Info:   key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "photo details")),
		Close:  key.NewBinding(key.WithKeys("esc", "x", "/"), key.WithHelp("esc/x", "close gallery")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Search: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "show photos")),
	}
}

// ShortHelp implements help.KeyMap
func (k GalleryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Step, k.Info, k.Close, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k GalleryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Wheel},
		{k.Step, k.Jump, k.Ends, k.Click},
		{k.Info, k.Close, k.Help, k.Quit},
	}
}

// SearchKeyMap describes the search box bindings
type SearchKeyMap struct {
	Submit key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// NewSearchKeyMap returns the default search bindings
func NewSearchKeyMap() SearchKeyMap {
	return SearchKeyMap{
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "show photos")),
		Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back to gallery")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k SearchKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap
func (k SearchKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
