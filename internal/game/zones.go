package game

import "github.com/colordash/colordash/internal/config"

// ZoneSet tracks the three collector zones at the bottom of the playfield.
// The zones sit in three fixed slots; a rotation offset decides which color
// occupies which slot. Only the middle slot is active: a falling shape
// matches if and only if its color equals the middle slot's color.
type ZoneSet struct {
	colors   [3]ShapeColor
	offset   int
	rotation config.RotationMode
}

// NewZoneSet creates a zone set in its default (centered) rotation.
func NewZoneSet(rotation config.RotationMode) ZoneSet {
	if rotation == "" {
		rotation = config.RotationCyclic
	}
	return ZoneSet{
		colors:   Palette,
		rotation: rotation,
	}
}

// RotateLeft shifts the color set one slot to the left.
// Cyclic mode wraps; clamped mode stops at the first position.
func (z *ZoneSet) RotateLeft() {
	if z.rotation == config.RotationClamped {
		if z.offset > 0 {
			z.offset--
		}
		return
	}
	z.offset = (z.offset + 2) % 3
}

// RotateRight shifts the color set one slot to the right.
// Cyclic mode wraps; clamped mode stops at the last position.
func (z *ZoneSet) RotateRight() {
	if z.rotation == config.RotationClamped {
		if z.offset < 2 {
			z.offset++
		}
		return
	}
	z.offset = (z.offset + 1) % 3
}

// SlotColor returns the color currently occupying slot i (0..2, left to right).
func (z ZoneSet) SlotColor(i int) ShapeColor {
	return z.colors[(z.offset+i)%3]
}

// ActiveColor returns the color of the active (middle) slot.
func (z ZoneSet) ActiveColor() ShapeColor {
	return z.SlotColor(1)
}

// Offset returns the current rotation offset (0..2).
func (z ZoneSet) Offset() int {
	return z.offset
}
