package domain

import "fmt"

type MediaKind string

const (
	MediaKindImage MediaKind = "image"
	MediaKindVideo MediaKind = "video"
)

type Orientation string

const (
	OrientationPortrait  Orientation = "portrait"
	OrientationLandscape Orientation = "landscape"
)

// Selection is one of the four valid orientation choices a user can make
// after saving a query.
type Selection struct {
	Kind        MediaKind
	Orientation Orientation
}

// ParseSelection maps raw kind/orientation tokens onto the closed set of
// four selections. The transport layer is responsible for extracting the
// tokens from its own presentation (callback data).
func ParseSelection(kind, orientation string) (Selection, error) {
	var sel Selection

	switch MediaKind(kind) {
	case MediaKindImage, MediaKindVideo:
		sel.Kind = MediaKind(kind)
	default:
		return Selection{}, fmt.Errorf("%w: kind %q", ErrUnknownSelection, kind)
	}

	switch Orientation(orientation) {
	case OrientationPortrait, OrientationLandscape:
		sel.Orientation = Orientation(orientation)
	default:
		return Selection{}, fmt.Errorf("%w: orientation %q", ErrUnknownSelection, orientation)
	}

	return sel, nil
}

// MediaResult is a single deliverable search result.
type MediaResult struct {
	ID      int64
	URL     string
	Author  string
	PageURL string
}

// FetchRequest describes one deduplicated lookup against the provider.
// Exclude is owned by the caller and is never mutated by the fetcher.
type FetchRequest struct {
	Query       string
	Kind        MediaKind
	Orientation Orientation
	Count       int
	Exclude     map[int64]struct{}
}

// SearchEvent is one delivered media item, recorded for admin statistics.
type SearchEvent struct {
	ChatID      int64
	Query       string
	Kind        MediaKind
	Orientation Orientation
	MediaID     int64
}

// SearchStats is the aggregate view served by the admin /stat command.
type SearchStats struct {
	Total         int64
	Today         int64
	Week          int64
	DistinctChats int64
	TopQueries    []QueryCount
}

type QueryCount struct {
	Query string
	Count int64
}
