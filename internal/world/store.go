package world

import (
	"github.com/annel0/voxel-sandbox/internal/vec"
	"github.com/annel0/voxel-sandbox/internal/world/block"
)

// Store — разреженное хранилище блоков мира: отображение координаты
// блока на его тип. Отсутствие координаты означает пустую ячейку.
// Инвариант: не более одного блока на координату.
//
// Хранилище заполняется генератором один раз при старте и далее
// изменяется только операциями установки/удаления из игрового цикла.
// Структурная целостность не проверяется: блоки могут висеть в
// воздухе (поведение принято осознанно).
type Store struct {
	blocks map[int64]block.BlockID
}

// NewStore создаёт пустое хранилище мира
func NewStore() *Store {
	return &Store{
		blocks: make(map[int64]block.BlockID),
	}
}

// Get возвращает тип блока в ячейке.
// Второй результат false означает, что ячейка пуста.
func (s *Store) Get(pos vec.Vec3) (block.BlockID, bool) {
	id, ok := s.blocks[PackCoord(pos)]
	return id, ok
}

// Set устанавливает блок в ячейку, перезаписывая существующий
func (s *Store) Set(pos vec.Vec3, id block.BlockID) {
	s.blocks[PackCoord(pos)] = id
}

// Remove удаляет блок из ячейки. Для пустой ячейки — no-op.
func (s *Store) Remove(pos vec.Vec3) {
	delete(s.blocks, PackCoord(pos))
}

// Len возвращает количество занятых ячеек
func (s *Store) Len() int {
	return len(s.blocks)
}

// ForEach вызывает fn для каждой занятой ячейки.
// Порядок обхода не определён.
func (s *Store) ForEach(fn func(pos vec.Vec3, id block.BlockID)) {
	for key, id := range s.blocks {
		fn(UnpackCoord(key), id)
	}
}

// Occupied возвращает срез координат всех занятых ячеек —
// входное множество для трассировки луча прицеливания.
func (s *Store) Occupied() []vec.Vec3 {
	coords := make([]vec.Vec3, 0, len(s.blocks))
	for key := range s.blocks {
		coords = append(coords, UnpackCoord(key))
	}
	return coords
}
