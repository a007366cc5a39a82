package render

import (
	"github.com/google/uuid"

	"github.com/annel0/voxel-sandbox/internal/vec"
	"github.com/annel0/voxel-sandbox/internal/world/block"
)

// Renderer — контракт рендерер-коллаборатора. Ядро симуляции вызывает
// его, чтобы зеркалировать изменения мира; само состояние отрисовки
// (меши, материалы, свет) ядру не принадлежит.
type Renderer interface {
	// AddBlock добавляет renderable блока в указанной ячейке
	AddBlock(pos vec.Vec3, id block.BlockID)

	// RemoveBlock удаляет renderable блока из ячейки
	RemoveBlock(pos vec.Vec3)

	// AddEntity добавляет renderable сущности
	AddEntity(id uuid.UUID, pos vec.Vec3Float)

	// UpdateEntity обновляет позицию, поворот и флаг сытости сущности
	UpdateEntity(id uuid.UUID, pos vec.Vec3Float, yaw float64, happy bool)

	// RemoveEntity удаляет renderable сущности
	RemoveEntity(id uuid.UUID)
}

// entityView — последнее известное рендереру состояние сущности
type entityView struct {
	Pos   vec.Vec3Float
	Yaw   float64
	Happy bool
}

// MemoryRenderer — внутрипроцессная реализация Renderer: хранит набор
// renderable без отрисовки. Используется в безголовом режиме и тестах.
type MemoryRenderer struct {
	blocks   map[vec.Vec3]block.BlockID
	entities map[uuid.UUID]entityView
}

// NewMemoryRenderer создаёт пустой рендерер
func NewMemoryRenderer() *MemoryRenderer {
	return &MemoryRenderer{
		blocks:   make(map[vec.Vec3]block.BlockID),
		entities: make(map[uuid.UUID]entityView),
	}
}

func (r *MemoryRenderer) AddBlock(pos vec.Vec3, id block.BlockID) {
	r.blocks[pos] = id
}

func (r *MemoryRenderer) RemoveBlock(pos vec.Vec3) {
	delete(r.blocks, pos)
}

func (r *MemoryRenderer) AddEntity(id uuid.UUID, pos vec.Vec3Float) {
	r.entities[id] = entityView{Pos: pos}
}

func (r *MemoryRenderer) UpdateEntity(id uuid.UUID, pos vec.Vec3Float, yaw float64, happy bool) {
	r.entities[id] = entityView{Pos: pos, Yaw: yaw, Happy: happy}
}

func (r *MemoryRenderer) RemoveEntity(id uuid.UUID) {
	delete(r.entities, id)
}

// HasBlock сообщает, есть ли renderable блока в ячейке
func (r *MemoryRenderer) HasBlock(pos vec.Vec3) bool {
	_, ok := r.blocks[pos]
	return ok
}

// BlockCount возвращает количество renderable блоков
func (r *MemoryRenderer) BlockCount() int {
	return len(r.blocks)
}

// EntityCount возвращает количество renderable сущностей
func (r *MemoryRenderer) EntityCount() int {
	return len(r.entities)
}
