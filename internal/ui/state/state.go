package state

import (
	"image"

	"pexview/internal/domain"
)

// UIMode is derived from ShowSearchTopic and whether photos are held
type UIMode int

const (
	ModeSearchEntry UIMode = iota
	ModeLoading
	ModeGallery
)

func (m UIMode) String() string {
	switch m {
	case ModeSearchEntry:
		return "search"
	case ModeLoading:
		return "loading"
	case ModeGallery:
		return "gallery"
	default:
		return "unknown"
	}
}

// NoticeKind distinguishes informational notices from failures
type NoticeKind int

const (
	NoticeInfo NoticeKind = iota
	NoticeError
)

// Notice is a blocking message the user has to dismiss
type Notice struct {
	Title   string
	Message string
	Kind    NoticeKind
}

// AppState contains all the application state
type AppState struct {
	ShowSearchTopic bool
	Photos          []domain.Photo // nil until a search succeeds
	ActiveIndex     int
	Generation      uint64 // request-generation token, bumped on every submit
	Topic           string // topic of the last submitted search

	Images       map[int64]image.Image // decoded photos for the current result set
	FailedImages map[int64]bool

	Notice        *Notice
	NoticesShown  int
	StatusMessage string
	ShowInfo      bool
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		ShowSearchTopic: true,
		Images:          make(map[int64]image.Image),
		FailedImages:    make(map[int64]bool),
	}
}

// Mode derives the current UI mode
func (s *AppState) Mode() UIMode {
	switch {
	case s.ShowSearchTopic:
		return ModeSearchEntry
	case s.Photos == nil:
		return ModeLoading
	default:
		return ModeGallery
	}
}

// BeginSearch moves to Loading for a new request and returns its generation.
// Prior results are dropped and the active index is reset.
func (s *AppState) BeginSearch(topic string) uint64 {
	s.Generation++
	s.Topic = topic
	s.ActiveIndex = 0
	s.Photos = nil
	s.Images = make(map[int64]image.Image)
	s.FailedImages = make(map[int64]bool)
	s.ShowSearchTopic = false
	s.ShowInfo = false
	s.StatusMessage = ""
	return s.Generation
}

// IsCurrent reports whether generation belongs to the latest submit
func (s *AppState) IsCurrent(generation uint64) bool {
	return generation == s.Generation
}

// ApplyResults stores photos for generation. It returns false when the
// response is stale. An empty set shows a notice and returns to search entry.
func (s *AppState) ApplyResults(generation uint64, photos []domain.Photo) bool {
	if !s.IsCurrent(generation) {
		return false
	}
	if len(photos) == 0 {
		s.ShowNotice(Notice{Title: "Attention", Message: "No results", Kind: NoticeInfo})
		s.ShowSearchTopic = true
		return true
	}
	s.Photos = photos
	s.ActiveIndex = 0
	return true
}

// ApplyFailure records a failed search for generation. Stale failures are ignored.
func (s *AppState) ApplyFailure(generation uint64, err error) bool {
	if !s.IsCurrent(generation) {
		return false
	}
	s.ShowNotice(Notice{Title: "Search failed", Message: err.Error(), Kind: NoticeError})
	s.ShowSearchTopic = true
	return true
}

// ShowNotice raises a blocking notice
func (s *AppState) ShowNotice(n Notice) {
	s.Notice = &n
	s.NoticesShown++
}

// DismissNotice clears the notice if there is one
func (s *AppState) DismissNotice() {
	s.Notice = nil
}

// CloseGallery returns to search entry keeping the current photos
func (s *AppState) CloseGallery() {
	s.ShowSearchTopic = true
	s.ShowInfo = false
}

// ReopenGallery leaves search entry when photos are still held
func (s *AppState) ReopenGallery() bool {
	if s.Photos == nil {
		return false
	}
	s.ShowSearchTopic = false
	return true
}

// SetActiveIndex clamps index into [0, len(Photos)) and stores it
func (s *AppState) SetActiveIndex(index int) int {
	s.ActiveIndex = ClampIndex(index, len(s.Photos))
	return s.ActiveIndex
}

// CurrentIndex returns ActiveIndex
func (s *AppState) CurrentIndex() int {
	return s.ActiveIndex
}

// PhotoCount is the number of photos held
func (s *AppState) PhotoCount() int {
	return len(s.Photos)
}

// ActivePhoto returns the photo at ActiveIndex
func (s *AppState) ActivePhoto() (domain.Photo, bool) {
	if s.ActiveIndex < 0 || s.ActiveIndex >= len(s.Photos) {
		return domain.Photo{}, false
	}
	return s.Photos[s.ActiveIndex], true
}

// StoreImage keeps a decoded photo when it belongs to the current generation
func (s *AppState) StoreImage(generation uint64, photoID int64, img image.Image) bool {
	if !s.IsCurrent(generation) {
		return false
	}
	s.Images[photoID] = img
	delete(s.FailedImages, photoID)
	return true
}

// MarkImageFailed records a photo that could not be loaded
func (s *AppState) MarkImageFailed(generation uint64, photoID int64) bool {
	if !s.IsCurrent(generation) {
		return false
	}
	s.FailedImages[photoID] = true
	return true
}

// ClampIndex limits index to [0, n); it returns 0 when n is 0
func ClampIndex(index, n int) int {
	if n <= 0 || index < 0 {
		return 0
	}
	if index >= n {
		return n - 1
	}
	return index
}
