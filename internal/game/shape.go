package game

import "math/rand"

// ShapeColor is one of the fixed palette colors shared by shapes and zones.
type ShapeColor uint8

const (
	ColorRed ShapeColor = iota
	ColorGreen
	ColorBlue
)

// Palette is the fixed set of colors, in zone display order.
var Palette = [3]ShapeColor{ColorRed, ColorGreen, ColorBlue}

// String returns a human-readable name for the color.
func (c ShapeColor) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	default:
		return "unknown"
	}
}

// ShapeKind is the visual form of a falling shape. Purely cosmetic:
// matching is decided by color alone.
type ShapeKind uint8

const (
	KindCircle ShapeKind = iota
	KindSquare
	KindTriangle
)

var kinds = [3]ShapeKind{KindCircle, KindSquare, KindTriangle}

// String returns a human-readable name for the kind.
func (k ShapeKind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindSquare:
		return "square"
	case KindTriangle:
		return "triangle"
	default:
		return "unknown"
	}
}

// Glyph returns the rune used to draw this kind.
func (k ShapeKind) Glyph() rune {
	switch k {
	case KindCircle:
		return '●'
	case KindSquare:
		return '■'
	case KindTriangle:
		return '▲'
	default:
		return '?'
	}
}

// Shape is a single falling shape. X is fixed at spawn; Y grows by Speed
// each tick. Speed is frozen at spawn time, so session speed-ups never
// affect shapes already in flight.
type Shape struct {
	X     int
	Y     float64
	Speed float64
	Size  int
	Color ShapeColor
	Kind  ShapeKind
}

// BottomEdge returns the y-coordinate of the shape's leading edge.
func (s Shape) BottomEdge() float64 {
	return s.Y + float64(s.Size)
}

// Offscreen reports whether the shape has fully left the playfield:
// its trailing edge is below the bottom boundary, not merely touching it.
func (s Shape) Offscreen(fieldH int) bool {
	return s.Y-float64(s.Size) > float64(fieldH)
}

// newShape spawns a shape with uniform random color, kind and horizontal
// position, starting above the visible top edge by its own size so it
// animates into view.
func newShape(rng *rand.Rand, fieldW, size int, speed float64) Shape {
	span := fieldW - 2*size
	if span < 1 {
		span = 1
	}
	return Shape{
		X:     size + rng.Intn(span),
		Y:     -float64(size),
		Speed: speed,
		Size:  size,
		Color: Palette[rng.Intn(len(Palette))],
		Kind:  kinds[rng.Intn(len(kinds))],
	}
}
