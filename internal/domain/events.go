package domain

import "image"

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchRequested EventType = "SearchRequested"
	EventSearchCompleted EventType = "SearchCompleted"
	EventSearchFailed    EventType = "SearchFailed"
	EventImageRequested  EventType = "ImageRequested"
	EventImageLoaded     EventType = "ImageLoaded"
	EventImageFailed     EventType = "ImageFailed"
	EventError           EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchRequestedEvent is emitted when the user submits a topic
type SearchRequestedEvent struct {
	Request SearchRequest
}

func (e SearchRequestedEvent) Type() EventType { return EventSearchRequested }

// SearchCompletedEvent is emitted when the search API answered with a photos list
type SearchCompletedEvent struct {
	Request SearchRequest
	Photos  []Photo
}

func (e SearchCompletedEvent) Type() EventType { return EventSearchCompleted }

// SearchFailedEvent is emitted when the request or its decoding failed
type SearchFailedEvent struct {
	Request SearchRequest
	Err     error
}

func (e SearchFailedEvent) Type() EventType { return EventSearchFailed }

// ImageRequestedEvent asks the image service to download a photo variant
type ImageRequestedEvent struct {
	Generation uint64
	PhotoID    int64
	URL        string
}

func (e ImageRequestedEvent) Type() EventType { return EventImageRequested }

// ImageLoadedEvent carries a decoded image
type ImageLoadedEvent struct {
	Generation uint64
	PhotoID    int64
	Image      image.Image
}

func (e ImageLoadedEvent) Type() EventType { return EventImageLoaded }

// ImageFailedEvent is emitted when a photo could not be downloaded or decoded
type ImageFailedEvent struct {
	Generation uint64
	PhotoID    int64
	Err        error
}

func (e ImageFailedEvent) Type() EventType { return EventImageFailed }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
