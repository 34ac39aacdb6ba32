// Package geo provides the plane geometry used by the navigation assistant:
// straight-line distances, nearest-point selection and the path overlay
// (line plus arrowhead) drawn from the visitor toward a target location.
// Coordinates are venue-local pixel space, not geographic.
package geo

import (
	"errors"
	"math"
)

// Point is a position in venue-local pixel space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Line is a straight segment between two points.
type Line struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// Overlay is the visual guide drawn from the current position to a target:
// a straight line and a three-point arrowhead with its tip at the target.
type Overlay struct {
	Line      Line     `json:"line"`
	Arrowhead [3]Point `json:"arrowhead"`
}

// ArrowSize is the arrowhead edge length in venue pixels.
const ArrowSize = 10.0

// ErrNoCandidates is returned by Nearest when given an empty candidate set.
var ErrNoCandidates = errors.New("geo: no candidates")

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Nearest returns the index of the candidate closest to from. Ties are
// broken by input order: a later candidate replaces the current best only
// when strictly closer.
func Nearest(candidates []Point, from Point) (int, error) {
	if len(candidates) == 0 {
		return 0, ErrNoCandidates
	}

	best := 0
	bestDist := Distance(from, candidates[0])
	for i := 1; i < len(candidates); i++ {
		if d := Distance(from, candidates[i]); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best, nil
}

// ComputeOverlay builds the path overlay from one point to another. The
// arrowhead tip sits on the target; the two base points are offset backward
// along the line direction by ArrowSize at ±30 degrees.
func ComputeOverlay(from, to Point) Overlay {
	angle := math.Atan2(to.Y-from.Y, to.X-from.X)

	return Overlay{
		Line: Line{X1: from.X, Y1: from.Y, X2: to.X, Y2: to.Y},
		Arrowhead: [3]Point{
			{X: to.X, Y: to.Y},
			{X: to.X - ArrowSize*math.Cos(angle-math.Pi/6), Y: to.Y - ArrowSize*math.Sin(angle-math.Pi/6)},
			{X: to.X - ArrowSize*math.Cos(angle+math.Pi/6), Y: to.Y - ArrowSize*math.Sin(angle+math.Pi/6)},
		},
	}
}
