package sim

import (
	"math"

	"github.com/annel0/voxel-sandbox/internal/input"
	"github.com/annel0/voxel-sandbox/internal/vec"
)

// Viewer — состояние наблюдателя от первого лица: позиция и ориентация.
// Принадлежит исключительно игровому циклу.
type Viewer struct {
	Position vec.Vec3Float
	Yaw      float64 // Поворот вокруг вертикальной оси, радианы
	Pitch    float64 // Наклон взгляда, радианы, в пределах [-π/2, π/2]
}

const maxPitch = math.Pi / 2

// ApplyLook применяет накопленную дельту взгляда с зажимом наклона
func (v *Viewer) ApplyLook(dx, dy, sensitivity float64) {
	v.Yaw -= dx * sensitivity
	v.Pitch -= dy * sensitivity
	if v.Pitch > maxPitch {
		v.Pitch = maxPitch
	}
	if v.Pitch < -maxPitch {
		v.Pitch = -maxPitch
	}
}

// Forward возвращает мировой вектор взгляда.
// При нулевых yaw и pitch наблюдатель смотрит вдоль -Z.
func (v *Viewer) Forward() vec.Vec3Float {
	cp := math.Cos(v.Pitch)
	return vec.Vec3Float{
		X: -math.Sin(v.Yaw) * cp,
		Y: math.Sin(v.Pitch),
		Z: -math.Cos(v.Yaw) * cp,
	}
}

// Move интегрирует намерение движения в позицию. Горизонтальные оси
// повёрнуты на yaw (pitch в горизонтальном движении не участвует),
// вертикальное намерение применяется напрямую. Коллизий с миром нет.
func (v *Viewer) Move(snap input.Snapshot, speed, dt float64) {
	var forward, strafe, up float64
	if snap.Move[input.Forward] {
		forward++
	}
	if snap.Move[input.Backward] {
		forward--
	}
	if snap.Move[input.Right] {
		strafe++
	}
	if snap.Move[input.Left] {
		strafe--
	}
	if snap.Move[input.Up] {
		up++
	}
	if snap.Move[input.Down] {
		up--
	}

	sin, cos := math.Sin(v.Yaw), math.Cos(v.Yaw)
	step := speed * dt
	v.Position.X += (-sin*forward + cos*strafe) * step
	v.Position.Z += (-cos*forward - sin*strafe) * step
	v.Position.Y += up * step
}
