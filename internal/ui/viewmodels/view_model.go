package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"

	"pexview/internal/config"
	"pexview/internal/ui/logic"
	"pexview/internal/ui/state"
	"pexview/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state     *state.AppState
	config    *config.Config
	sync      *logic.SyncController
	textInput *textinput.Model
	spinner   *spinner.Model
	width     int
	height    int
	help      help.Model
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, cfg *config.Config, sync *logic.SyncController, textInput *textinput.Model, sp *spinner.Model) *ViewModel {
	return &ViewModel{
		state:     appState,
		config:    cfg,
		sync:      sync,
		textInput: textInput,
		spinner:   sp,
		help:      help.New(),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
}

// SetHelp sets the help model
func (vm *ViewModel) SetHelp(helpModel help.Model) {
	vm.help = helpModel
}

// Layout returns the gallery layout for the current dimensions
func (vm *ViewModel) Layout() views.Layout {
	return views.ComputeLayout(vm.width, vm.height, vm.config.UISettings.ThumbnailSize)
}

// Geometry returns the scroll geometry matching Layout
func (vm *ViewModel) Geometry() logic.Geometry {
	return logic.Geometry{
		PageWidth:     float64(vm.width),
		Viewport:      float64(vm.width),
		ThumbnailSize: float64(vm.config.UISettings.ThumbnailSize),
		Spacing:       float64(vm.config.UISettings.Spacing),
	}
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	vs := views.ViewState{
		Width:         vm.width,
		Height:        vm.height,
		Mode:          vm.state.Mode().String(),
		Layout:        vm.Layout(),
		Topic:         vm.state.Topic,
		HasPhotos:     vm.state.Photos != nil,
		Generation:    vm.state.Generation,
		Photos:        vm.state.Photos,
		ActiveIndex:   vm.state.ActiveIndex,
		ThumbnailSize: vm.config.UISettings.ThumbnailSize,
		Spacing:       vm.config.UISettings.Spacing,
		Images:        vm.state.Images,
		FailedImages:  vm.state.FailedImages,
		ShowInfo:      vm.state.ShowInfo,
		StatusMessage: vm.state.StatusMessage,
		HelpModel:     vm.help,
	}

	if vm.sync != nil {
		vs.PagerOffset = vm.sync.Pager.Offset
		vs.StripOffset = vm.sync.Strip.Offset
	}
	if vm.textInput != nil {
		vs.TextInput = vm.textInput.View()
	}
	if vm.spinner != nil {
		vs.Spinner = vm.spinner.View()
	}
	if n := vm.state.Notice; n != nil {
		vs.Notice = &views.NoticeView{
			Title:   n.Title,
			Message: n.Message,
			IsError: n.Kind == state.NoticeError,
		}
	}
	return vs
}
