package world

import (
	"github.com/annel0/voxel-sandbox/internal/vec"
)

// Кодек координат: Vec3 упаковывается в единственный int64-ключ
// разреженной карты мира. По 21 биту со знаком на ось — диапазон
// ±2^20 на координату, с большим запасом покрывает мир песочницы.

const (
	axisBits = 21
	axisMask = (1 << axisBits) - 1
	axisBias = 1 << (axisBits - 1)
)

// PackCoord упаковывает координату блока в ключ.
// Инъективна на всём рабочем диапазоне; обратная операция — UnpackCoord.
func PackCoord(pos vec.Vec3) int64 {
	x := int64(pos.X) + axisBias
	y := int64(pos.Y) + axisBias
	z := int64(pos.Z) + axisBias
	return x<<(2*axisBits) | y<<axisBits | z
}

// UnpackCoord распаковывает ключ обратно в координату блока
func UnpackCoord(key int64) vec.Vec3 {
	return vec.Vec3{
		X: int(key>>(2*axisBits)&axisMask) - axisBias,
		Y: int(key>>axisBits&axisMask) - axisBias,
		Z: int(key&axisMask) - axisBias,
	}
}
