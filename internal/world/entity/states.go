package entity

import (
	"math"
	"math/rand"

	"github.com/annel0/voxel-sandbox/internal/vec"
)

// State представляет состояние конечного автомата коровы
type State interface {
	Enter(c *Cow)
	Update(c *Cow, dt float64, bounds Bounds) State
	Exit(c *Cow)
}

// Wandering — начальное состояние: корова бродит по миру, периодически
// меняя направление.
type Wandering struct {
	timer    float64 // Накопленное время с последней смены направления
	interval float64 // Текущий интервал до следующей смены
	rng      *rand.Rand
}

func newWandering(rng *rand.Rand) *Wandering {
	return &Wandering{rng: rng}
}

// Enter выбирает стартовое направление и интервал блуждания
func (w *Wandering) Enter(c *Cow) {
	w.repick(c)
}

// Update меняет направление по истечении интервала или у границы мира;
// скорость подбирается заново каждый тик.
func (w *Wandering) Update(c *Cow, dt float64, bounds Bounds) State {
	w.timer += dt
	if w.timer >= w.interval || bounds.NearEdge(c.Position) {
		w.repick(c)
	}
	c.Speed = WanderSpeedMin + w.rng.Float64()*(WanderSpeedMax-WanderSpeedMin)
	return w
}

func (w *Wandering) Exit(c *Cow) {}

// repick выбирает новое случайное горизонтальное направление и интервал
func (w *Wandering) repick(c *Cow) {
	angle := w.rng.Float64() * 2 * math.Pi
	c.Heading = vec.Vec3Float{X: math.Sin(angle), Z: math.Cos(angle)}
	w.interval = WanderIntervalMin + w.rng.Float64()*(WanderIntervalMax-WanderIntervalMin)
	w.timer = 0
}

// Following — состояние сытой коровы: она идёт за кормильцем, пока не
// истечёт время сытости.
type Following struct {
	target     vec.Vec3Float // Позиция кормильца, обновляется каждый тик
	fedElapsed float64       // Накопленное время сытости
}

func newFollowing(target vec.Vec3Float) *Following {
	return &Following{target: target}
}

func (f *Following) Enter(c *Cow) {}

// Update ведёт корову к цели с фиксированной скоростью. Ближе двух
// блоков корова останавливается, оставаясь сытой. По истечении времени
// сытости — возврат к блужданию.
func (f *Following) Update(c *Cow, dt float64, bounds Bounds) State {
	f.fedElapsed += dt
	if f.fedElapsed >= FedDuration {
		return newWandering(c.rng)
	}

	toTarget := vec.Vec3Float{X: f.target.X - c.Position.X, Z: f.target.Z - c.Position.Z}
	if toTarget.Length() <= FollowHoldRadius {
		c.Heading = vec.Vec3Float{}
	} else {
		c.Heading = toTarget.Normalized()
	}
	c.Speed = FollowSpeed
	return f
}

func (f *Following) Exit(c *Cow) {}

// Target возвращает текущую цель следования
func (f *Following) Target() vec.Vec3Float {
	return f.target
}

// FedElapsed возвращает накопленное время сытости
func (f *Following) FedElapsed() float64 {
	return f.fedElapsed
}
