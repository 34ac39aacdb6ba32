package maprender

import (
	"io"

	"wayfinder/internal/venue"
	"wayfinder/pkg/geo"
)

// RenderSurface accumulates one frame of the venue map and writes it out.
// Calls are not concurrency-safe; build a fresh surface per request.
type RenderSurface interface {
	// RenderMarkers places the visitor marker and one marker per location.
	RenderMarkers(current venue.Location, locations []venue.Location)
	// Highlight emphasizes the named locations on the next render.
	Highlight(ids ...string)
	// DrawOverlay adds the dashed guide line and arrowhead toward a target.
	DrawOverlay(ov geo.Overlay)
	// ShowPopup attaches an info card next to the given location's marker.
	ShowPopup(loc venue.Location)
	// Render writes the accumulated frame.
	Render(w io.Writer) error
}
