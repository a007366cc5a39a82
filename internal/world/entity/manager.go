package entity

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/annel0/voxel-sandbox/internal/vec"
	"github.com/annel0/voxel-sandbox/internal/world"
	"github.com/annel0/voxel-sandbox/internal/world/block"
)

// Параметры расстановки сущностей при старте мира
const (
	spawnAttempts = 10 // Бюджет попыток найти пригодную позицию
	spawnScanTop  = 64 // Высота, с которой ищется поверхность колонны
)

// Manager управляет всеми коровами мира. Владение эксклюзивное:
// карта сущностей изменяется только из тика игрового цикла, поэтому
// блокировки не нужны.
type Manager struct {
	cows map[uuid.UUID]*Cow
	rng  *rand.Rand
}

// NewManager создаёт менеджер сущностей с указанным источником случайности
func NewManager(rng *rand.Rand) *Manager {
	return &Manager{
		cows: make(map[uuid.UUID]*Cow),
		rng:  rng,
	}
}

// SpawnCow расставляет корову на случайной колонне в пределах
// [-spawnExtent, spawnExtent]. Позиция считается пригодной, если корова
// встаёт на блок травы. После исчерпания бюджета попыток используется
// последняя выбранная позиция — принятый крайний случай, не ошибка.
func (m *Manager) SpawnCow(store *world.Store, spawnExtent int) *Cow {
	var candidate vec.Vec3Float

	for attempt := 0; attempt < spawnAttempts; attempt++ {
		x := -spawnExtent + m.rng.Intn(2*spawnExtent+1)
		z := -spawnExtent + m.rng.Intn(2*spawnExtent+1)

		groundY, groundID := surfaceAt(store, x, z)
		candidate = vec.Vec3Float{X: float64(x), Y: float64(groundY + 1), Z: float64(z)}

		if groundID == block.GrassBlockID {
			break
		}
	}

	cow := NewCow(candidate, m.rng)
	m.cows[cow.ID] = cow
	return cow
}

// SpawnCows расставляет count коров
func (m *Manager) SpawnCows(store *world.Store, spawnExtent, count int) []*Cow {
	spawned := make([]*Cow, 0, count)
	for i := 0; i < count; i++ {
		spawned = append(spawned, m.SpawnCow(store, spawnExtent))
	}
	return spawned
}

// surfaceAt ищет верхний занятый блок колонны сверху вниз
func surfaceAt(store *world.Store, x, z int) (int, block.BlockID) {
	for y := spawnScanTop; y >= 0; y-- {
		if id, ok := store.Get(vec.Vec3{X: x, Y: y, Z: z}); ok {
			return y, id
		}
	}
	return 0, 0
}

// Add регистрирует уже созданную корову
func (m *Manager) Add(c *Cow) {
	m.cows[c.ID] = c
}

// Get возвращает корову по идентификатору
func (m *Manager) Get(id uuid.UUID) (*Cow, bool) {
	cow, ok := m.cows[id]
	return cow, ok
}

// Remove удаляет корову из мира. Для неизвестного ID — no-op.
func (m *Manager) Remove(id uuid.UUID) {
	delete(m.cows, id)
}

// Count возвращает количество коров
func (m *Manager) Count() int {
	return len(m.cows)
}

// ForEach вызывает fn для каждой коровы. Порядок обхода не определён.
func (m *Manager) ForEach(fn func(c *Cow)) {
	for _, cow := range m.cows {
		fn(cow)
	}
}

// UpdateAll продвигает всех коров на один тик
func (m *Manager) UpdateAll(dt float64, bounds Bounds) {
	for _, cow := range m.cows {
		cow.Update(dt, bounds)
	}
}
