package entity

import (
	"math"
	"math/rand"

	"github.com/google/uuid"

	"github.com/annel0/voxel-sandbox/internal/vec"
)

// Параметры поведения коровы
const (
	WanderSpeedMin    = 0.5  // Минимальная скорость блуждания (блоков/сек)
	WanderSpeedMax    = 1.0  // Максимальная скорость блуждания
	WanderIntervalMin = 3.0  // Минимальное время до смены направления (сек)
	WanderIntervalMax = 7.0  // Максимальное время до смены направления
	FollowSpeed       = 1.5  // Скорость следования за кормильцем
	FollowHoldRadius  = 2.0  // Дистанция, на которой корова останавливается
	FedDuration       = 10.0 // Длительность состояния сытости (сек)
	EdgeBuffer        = 3.0  // Буфер у границы мира, вынуждающий разворот
	BoundsPadding     = 2.0  // Жёсткий отступ позиции сущности от края мира
)

// Bounds описывает горизонтальные границы мира по осям X и Z
type Bounds struct {
	Min float64
	Max float64
}

// Clamp зажимает горизонтальные координаты позиции в допустимый
// диапазон [Min+BoundsPadding, Max-BoundsPadding]
func (b Bounds) Clamp(pos vec.Vec3Float) vec.Vec3Float {
	lo := b.Min + BoundsPadding
	hi := b.Max - BoundsPadding
	pos.X = math.Min(math.Max(pos.X, lo), hi)
	pos.Z = math.Min(math.Max(pos.Z, lo), hi)
	return pos
}

// NearEdge сообщает, находится ли позиция в буферной зоне у границы
func (b Bounds) NearEdge(pos vec.Vec3Float) bool {
	lo := b.Min + BoundsPadding + EdgeBuffer
	hi := b.Max - BoundsPadding - EdgeBuffer
	return pos.X < lo || pos.X > hi || pos.Z < lo || pos.Z > hi
}

// Cow представляет корову — блуждающую сущность мира.
// Поведение определяется конечным автоматом состояний (см. states.go);
// недопустимые комбинации (сытость без цели следования) непредставимы.
type Cow struct {
	ID       uuid.UUID     // Уникальный идентификатор сущности
	Position vec.Vec3Float // Текущая позиция в мире
	Heading  vec.Vec3Float // Единичный горизонтальный вектор движения
	Speed    float64       // Текущая скорость (блоков/сек)
	Yaw      float64       // Поворот модели, выводится из Heading

	state State
	rng   *rand.Rand
}

// NewCow создаёт корову в указанной позиции в состоянии блуждания
func NewCow(pos vec.Vec3Float, rng *rand.Rand) *Cow {
	c := &Cow{
		ID:       uuid.New(),
		Position: pos,
		rng:      rng,
	}
	c.setState(newWandering(rng))
	return c
}

// State возвращает текущее состояние автомата
func (c *Cow) State() State {
	return c.state
}

// Happy сообщает, сыта ли корова (флаг для рендерера)
func (c *Cow) Happy() bool {
	_, following := c.state.(*Following)
	return following
}

// Feed переводит корову в состояние следования за кормильцем.
// Кормление уже сытой коровы — no-op, возвращает false.
func (c *Cow) Feed(feeder vec.Vec3Float) bool {
	if _, following := c.state.(*Following); following {
		return false
	}
	c.setState(newFollowing(feeder))
	return true
}

// SetFollowTarget обновляет цель следования (позицию кормильца).
// Для коровы вне состояния следования — no-op.
func (c *Cow) SetFollowTarget(target vec.Vec3Float) {
	if f, ok := c.state.(*Following); ok {
		f.target = target
	}
}

// Update продвигает корову на один тик: автомат состояний выбирает
// направление и скорость, затем позиция интегрируется и зажимается
// в границы мира.
func (c *Cow) Update(dt float64, bounds Bounds) {
	next := c.state.Update(c, dt, bounds)
	if next != c.state {
		c.setState(next)
	}

	c.Position = bounds.Clamp(c.Position.Add(c.Heading.Mul(c.Speed * dt)))

	if c.Heading.Length() > 0 {
		c.Yaw = math.Atan2(c.Heading.X, c.Heading.Z)
	}
}

// setState выполняет переход автомата с вызовом Exit/Enter
func (c *Cow) setState(state State) {
	if c.state != nil {
		c.state.Exit(c)
	}
	c.state = state
	if c.state != nil {
		c.state.Enter(c)
	}
}
