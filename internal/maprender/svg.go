package maprender

import (
	"fmt"
	"io"
	"strings"

	"wayfinder/internal/venue"
	"wayfinder/pkg/geo"
)

// Canvas dimensions in venue pixels. The fixture coordinate space fits
// inside this box; coordinates outside it simply clip.
const (
	CanvasWidth  = 800
	CanvasHeight = 500
)

// markerColors maps location types to fill colors, matching the original
// map legend. Unknown types fall back to markerDefaultColor.
var markerColors = map[venue.LocationType]string{
	venue.LocationTypeRestroom: "#3498db",
	venue.LocationTypeFood:     "#e67e22",
	venue.LocationTypeStage:    "#9b59b6",
	venue.LocationTypeParking:  "#7f8c8d",
	venue.LocationTypeExit:     "#c0392b",
	venue.LocationTypeService:  "#16a085",
	venue.LocationTypeInfo:     "#2980b9",
}

const (
	markerDefaultColor = "#95a5a6"
	visitorColor       = "#2ecc71"
	overlayColor       = "#e74c3c"
	highlightColor     = "#f1c40f"
)

// SVGSurface renders the map as a standalone SVG document.
type SVGSurface struct {
	current     *venue.Location
	locations   []venue.Location
	highlighted map[string]bool
	overlay     *geo.Overlay
	popup       *venue.Location
}

func NewSVGSurface() *SVGSurface {
	return &SVGSurface{highlighted: make(map[string]bool)}
}

func (s *SVGSurface) RenderMarkers(current venue.Location, locations []venue.Location) {
	s.current = &current
	s.locations = locations
}

func (s *SVGSurface) Highlight(ids ...string) {
	for _, id := range ids {
		s.highlighted[id] = true
	}
}

func (s *SVGSurface) DrawOverlay(ov geo.Overlay) {
	s.overlay = &ov
}

func (s *SVGSurface) ShowPopup(loc venue.Location) {
	s.popup = &loc
}

// Render writes the frame as SVG. Draw order matters: overlay under markers,
// popup on top.
func (s *SVGSurface) Render(w io.Writer) error {
	var b strings.Builder

	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		CanvasWidth, CanvasHeight, CanvasWidth, CanvasHeight)
	b.WriteString("\n")

	if s.overlay != nil {
		s.writeOverlay(&b)
	}

	for _, loc := range s.locations {
		s.writeMarker(&b, loc)
	}

	if s.current != nil {
		fmt.Fprintf(&b, `<circle cx="%g" cy="%g" r="8" fill="%s" stroke="#fff" stroke-width="2"/>`,
			s.current.Coordinates.X, s.current.Coordinates.Y, visitorColor)
		b.WriteString("\n")
	}

	if s.popup != nil {
		s.writePopup(&b)
	}

	b.WriteString("</svg>\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func (s *SVGSurface) writeMarker(b *strings.Builder, loc venue.Location) {
	color, ok := markerColors[loc.Type]
	if !ok {
		color = markerDefaultColor
	}

	if s.highlighted[loc.ID] {
		fmt.Fprintf(b, `<circle cx="%g" cy="%g" r="12" fill="none" stroke="%s" stroke-width="3"/>`,
			loc.Coordinates.X, loc.Coordinates.Y, highlightColor)
		b.WriteString("\n")
	}

	fmt.Fprintf(b, `<circle cx="%g" cy="%g" r="6" fill="%s" data-location-id="%s"/>`,
		loc.Coordinates.X, loc.Coordinates.Y, color, escape(loc.ID))
	b.WriteString("\n")
	fmt.Fprintf(b, `<text x="%g" y="%g" font-size="10" text-anchor="middle">%s</text>`,
		loc.Coordinates.X, loc.Coordinates.Y-10, escape(loc.Name))
	b.WriteString("\n")
}

func (s *SVGSurface) writeOverlay(b *strings.Builder) {
	line := s.overlay.Line
	fmt.Fprintf(b, `<line x1="%g" y1="%g" x2="%g" y2="%g" stroke="%s" stroke-width="3" stroke-dasharray="5,5" opacity="0.8"/>`,
		line.X1, line.Y1, line.X2, line.Y2, overlayColor)
	b.WriteString("\n")

	points := make([]string, len(s.overlay.Arrowhead))
	for i, p := range s.overlay.Arrowhead {
		points[i] = fmt.Sprintf("%g,%g", p.X, p.Y)
	}
	fmt.Fprintf(b, `<polygon points="%s" fill="%s" opacity="0.8"/>`,
		strings.Join(points, " "), overlayColor)
	b.WriteString("\n")
}

func (s *SVGSurface) writePopup(b *strings.Builder) {
	x := s.popup.Coordinates.X + 12
	y := s.popup.Coordinates.Y - 40

	fmt.Fprintf(b, `<rect x="%g" y="%g" width="180" height="48" rx="6" fill="#fff" stroke="#ccc"/>`, x, y)
	b.WriteString("\n")
	fmt.Fprintf(b, `<text x="%g" y="%g" font-size="12" font-weight="bold">%s</text>`,
		x+8, y+18, escape(s.popup.Name))
	b.WriteString("\n")
	fmt.Fprintf(b, `<text x="%g" y="%g" font-size="10">%s</text>`,
		x+8, y+34, escape(s.popup.Description))
	b.WriteString("\n")
}

func escape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}
