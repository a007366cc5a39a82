package sim

import (
	"math"
	"testing"

	"github.com/annel0/voxel-sandbox/internal/input"
)

func TestViewerPitchClamp(t *testing.T) {
	v := &Viewer{}

	// Большая дельта вверх
	v.ApplyLook(0, -10000, 0.002)
	if v.Pitch > math.Pi/2 {
		t.Errorf("Pitch должен быть зажат сверху: %v", v.Pitch)
	}

	// Большая дельта вниз
	v.ApplyLook(0, 20000, 0.002)
	if v.Pitch < -math.Pi/2 {
		t.Errorf("Pitch должен быть зажат снизу: %v", v.Pitch)
	}
}

func TestViewerForwardDefault(t *testing.T) {
	v := &Viewer{}
	fwd := v.Forward()

	// При нулевой ориентации взгляд направлен вдоль -Z
	if math.Abs(fwd.X) > 1e-9 || math.Abs(fwd.Y) > 1e-9 || math.Abs(fwd.Z+1) > 1e-9 {
		t.Errorf("Ожидался взгляд вдоль -Z, получено %+v", fwd)
	}
}

func TestViewerMoveForward(t *testing.T) {
	v := &Viewer{}
	var snap input.Snapshot
	snap.Move[input.Forward] = true

	v.Move(snap, 5, 1)
	if math.Abs(v.Position.Z+5) > 1e-9 || math.Abs(v.Position.X) > 1e-9 {
		t.Errorf("Движение вперёд при yaw=0 должно идти вдоль -Z: %+v", v.Position)
	}
}

func TestViewerMoveRotatedByYaw(t *testing.T) {
	// Поворот на 90° влево: вперёд — это -X
	v := &Viewer{Yaw: math.Pi / 2}
	var snap input.Snapshot
	snap.Move[input.Forward] = true

	v.Move(snap, 5, 1)
	if math.Abs(v.Position.X+5) > 1e-9 || math.Abs(v.Position.Z) > 1e-9 {
		t.Errorf("Движение вперёд при yaw=π/2 должно идти вдоль -X: %+v", v.Position)
	}
}

func TestViewerMovePitchExcluded(t *testing.T) {
	// Наклон взгляда не влияет на горизонтальное движение
	v := &Viewer{Pitch: 1.0}
	var snap input.Snapshot
	snap.Move[input.Forward] = true

	v.Move(snap, 5, 1)
	if math.Abs(v.Position.Y) > 1e-9 {
		t.Errorf("Горизонтальное движение не должно менять высоту: %+v", v.Position)
	}
	if math.Abs(v.Position.Z+5) > 1e-9 {
		t.Errorf("Горизонтальная скорость не должна масштабироваться pitch: %+v", v.Position)
	}
}

func TestViewerMoveVertical(t *testing.T) {
	v := &Viewer{}
	var snap input.Snapshot
	snap.Move[input.Up] = true

	v.Move(snap, 5, 0.5)
	if math.Abs(v.Position.Y-2.5) > 1e-9 {
		t.Errorf("Вертикальное намерение применяется напрямую: %+v", v.Position)
	}
}
