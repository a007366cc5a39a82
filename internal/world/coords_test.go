package world

import (
	"testing"

	"github.com/annel0/voxel-sandbox/internal/vec"
)

func TestPackCoordRoundTrip(t *testing.T) {
	// Полный рабочий диапазон мира с запасом
	for x := -32; x <= 32; x += 4 {
		for y := -32; y <= 64; y += 4 {
			for z := -32; z <= 32; z += 4 {
				pos := vec.Vec3{X: x, Y: y, Z: z}
				got := UnpackCoord(PackCoord(pos))
				if !got.Equals(pos) {
					t.Fatalf("Нарушен round-trip кодека: %+v -> %+v", pos, got)
				}
			}
		}
	}
}

func TestPackCoordExtremes(t *testing.T) {
	extremes := []vec.Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: -1, Y: -1, Z: -1},
		{X: 1 << 19, Y: -(1 << 19), Z: 1 << 19},
		{X: -(1 << 19), Y: 1 << 19, Z: -(1 << 19)},
	}
	for _, pos := range extremes {
		got := UnpackCoord(PackCoord(pos))
		if !got.Equals(pos) {
			t.Errorf("Нарушен round-trip на границе диапазона: %+v -> %+v", pos, got)
		}
	}
}

func TestPackCoordInjective(t *testing.T) {
	seen := make(map[int64]vec.Vec3)
	for x := -8; x <= 8; x++ {
		for y := -8; y <= 8; y++ {
			for z := -8; z <= 8; z++ {
				pos := vec.Vec3{X: x, Y: y, Z: z}
				key := PackCoord(pos)
				if prev, ok := seen[key]; ok {
					t.Fatalf("Коллизия ключа %d: %+v и %+v", key, prev, pos)
				}
				seen[key] = pos
			}
		}
	}
}
