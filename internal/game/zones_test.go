package game

import (
	"testing"

	"github.com/colordash/colordash/internal/config"
)

func TestRotationRoundTrip(t *testing.T) {
	z := NewZoneSet(config.RotationCyclic)
	initial := z.ActiveColor()

	z.RotateLeft()
	z.RotateRight()

	if z.ActiveColor() != initial {
		t.Errorf("Left then right should restore the active color, got %v want %v",
			z.ActiveColor(), initial)
	}
}

func TestRotationCyclicWraps(t *testing.T) {
	z := NewZoneSet(config.RotationCyclic)
	initial := z.ActiveColor()

	// Three rotations in the same direction return to the start
	z.RotateLeft()
	z.RotateLeft()
	z.RotateLeft()
	if z.ActiveColor() != initial {
		t.Errorf("Three left rotations should be the identity, got %v want %v",
			z.ActiveColor(), initial)
	}

	z.RotateRight()
	z.RotateRight()
	z.RotateRight()
	if z.ActiveColor() != initial {
		t.Errorf("Three right rotations should be the identity, got %v want %v",
			z.ActiveColor(), initial)
	}
}

func TestRotationVisitsAllColors(t *testing.T) {
	z := NewZoneSet(config.RotationCyclic)

	seen := make(map[ShapeColor]bool)
	for i := 0; i < 3; i++ {
		seen[z.ActiveColor()] = true
		z.RotateRight()
	}

	if len(seen) != 3 {
		t.Errorf("Rotation should cycle through all 3 colors, saw %d", len(seen))
	}
}

func TestRotationDefaultCentered(t *testing.T) {
	z := NewZoneSet(config.RotationCyclic)

	if z.Offset() != 0 {
		t.Errorf("Default offset should be 0, got %d", z.Offset())
	}
	// Default display order is the palette order; the middle slot is active
	if z.SlotColor(0) != ColorRed || z.SlotColor(1) != ColorGreen || z.SlotColor(2) != ColorBlue {
		t.Errorf("Default slots should be red/green/blue, got %v/%v/%v",
			z.SlotColor(0), z.SlotColor(1), z.SlotColor(2))
	}
	if z.ActiveColor() != ColorGreen {
		t.Errorf("Default active color should be green, got %v", z.ActiveColor())
	}
}

func TestRotationClampedStopsAtEdges(t *testing.T) {
	z := NewZoneSet(config.RotationClamped)

	// Already at the leftmost position: further lefts are no-ops
	z.RotateLeft()
	z.RotateLeft()
	if z.Offset() != 0 {
		t.Errorf("Clamped left at edge should stay at 0, got %d", z.Offset())
	}

	// Rights stop at the last position
	for i := 0; i < 5; i++ {
		z.RotateRight()
	}
	if z.Offset() != 2 {
		t.Errorf("Clamped right should stop at 2, got %d", z.Offset())
	}

	// One left from the edge works normally
	z.RotateLeft()
	if z.Offset() != 1 {
		t.Errorf("Clamped left from 2 should give 1, got %d", z.Offset())
	}
}
