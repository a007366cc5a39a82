package sim

import (
	"math"

	"github.com/annel0/voxel-sandbox/internal/vec"
	"github.com/annel0/voxel-sandbox/internal/world"
	"github.com/annel0/voxel-sandbox/internal/world/block"
	"github.com/annel0/voxel-sandbox/internal/world/entity"
)

// TargetResult — результат прицеливания лучом взгляда.
type TargetResult struct {
	Remove   vec.Vec3      // Задетая ячейка (кандидат на удаление)
	Place    vec.Vec3      // Пустая ячейка снаружи задетой грани (кандидат на установку)
	Normal   vec.Vec3      // Внешняя единичная нормаль задетой грани
	Point    vec.Vec3Float // Точка пересечения луча с гранью
	Distance float64       // Дистанция до точки пересечения
}

// rayBox пересекает луч с AABB-кубом (slab-метод). Куб задаётся центром
// и полуразмером. Возвращает дистанцию входа, ось и знак внешней нормали
// задетой грани. Лучи изнутри куба и кубы позади начала луча — промах.
func rayBox(origin, dir vec.Vec3Float, center vec.Vec3Float, half float64) (dist float64, axis, sign int, ok bool) {
	o := [3]float64{origin.X, origin.Y, origin.Z}
	d := [3]float64{dir.X, dir.Y, dir.Z}
	c := [3]float64{center.X, center.Y, center.Z}

	tmin := math.Inf(-1)
	tmax := math.Inf(1)
	axis = -1

	for i := 0; i < 3; i++ {
		lo := c[i] - half
		hi := c[i] + half

		if math.Abs(d[i]) < 1e-12 {
			// Луч параллелен слою: промах, если начало вне слоя
			if o[i] < lo || o[i] > hi {
				return 0, 0, 0, false
			}
			continue
		}

		t1 := (lo - o[i]) / d[i]
		t2 := (hi - o[i]) / d[i]
		s := -1 // вход через грань с меньшей координатой
		if t1 > t2 {
			t1, t2 = t2, t1
			s = 1
		}
		if t1 > tmin {
			tmin = t1
			axis = i
			sign = s
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmax < tmin {
			return 0, 0, 0, false
		}
	}

	if tmin <= 0 || axis < 0 {
		return 0, 0, 0, false
	}
	return tmin, axis, sign, true
}

// axisNormal строит вектор нормали по оси и знаку
func axisNormal(axis, sign int) vec.Vec3 {
	switch axis {
	case 0:
		return vec.Vec3{X: sign}
	case 1:
		return vec.Vec3{Y: sign}
	default:
		return vec.Vec3{Z: sign}
	}
}

// Resolve находит ближайшее пересечение луча взгляда с занятыми
// ячейками мира (единичные кубы с центрами в целочисленных координатах).
// Возвращает nil, если в пределах reach ничего не задето.
//
// Remove — координата задетой ячейки; Place — округлённая точка
// пересечения, смещённая на полнормали наружу, то есть ячейка,
// примыкающая к задетой грани. При точном равенстве дистанций
// победителя определяет порядок обхода хранилища (не специфицирован).
func Resolve(origin, dir vec.Vec3Float, store *world.Store, reach float64) *TargetResult {
	dir = dir.Normalized()
	if dir.Length() == 0 {
		return nil
	}

	best := math.Inf(1)
	var result *TargetResult

	store.ForEach(func(pos vec.Vec3, _ block.BlockID) {
		dist, axis, sign, ok := rayBox(origin, dir, pos.ToFloat(), 0.5)
		if !ok || dist > reach || dist >= best {
			return
		}

		normal := axisNormal(axis, sign)
		point := origin.Add(dir.Mul(dist))
		best = dist
		result = &TargetResult{
			Remove:   pos,
			Place:    point.Add(normal.ToFloat().Mul(0.5)).ToVec3(),
			Normal:   normal,
			Point:    point,
			Distance: dist,
		}
	})

	return result
}

// NearestCow находит ближайшую корову, задетую лучом взгляда.
// Проверка независима от блоков мира: геометрия сущности — единичный
// куб вокруг её позиции.
func NearestCow(origin, dir vec.Vec3Float, cows *entity.Manager, reach float64) *entity.Cow {
	dir = dir.Normalized()
	if dir.Length() == 0 {
		return nil
	}

	best := math.Inf(1)
	var hit *entity.Cow

	cows.ForEach(func(c *entity.Cow) {
		dist, _, _, ok := rayBox(origin, dir, c.Position, 0.5)
		if ok && dist <= reach && dist < best {
			best = dist
			hit = c
		}
	})

	return hit
}
