package sim

import (
	"context"
	"encoding/json"

	"github.com/annel0/voxel-sandbox/internal/eventbus"
	"github.com/annel0/voxel-sandbox/internal/vec"
	"github.com/annel0/voxel-sandbox/internal/world/block"
)

// eventSource — имя подсистемы-источника в конвертах шины
const eventSource = "sim"

// blockEventPayload — данные события правки мира
type blockEventPayload struct {
	X     int           `json:"x"`
	Y     int           `json:"y"`
	Z     int           `json:"z"`
	Block block.BlockID `json:"block,omitempty"`
}

// entityEventPayload — данные события сущности
type entityEventPayload struct {
	EntityID string  `json:"entity_id"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Z        float64 `json:"z"`
}

// publish сериализует данные и отправляет конверт в шину.
// Без шины (nil) — no-op: события несут телеметрию, не состояние.
func (e *Engine) publish(eventType string, payload interface{}) {
	if e.bus == nil {
		return
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	_ = e.bus.Publish(context.Background(), eventbus.NewEnvelope(eventSource, eventType, data))
}

func (e *Engine) publishBlockPlaced(pos vec.Vec3, id block.BlockID) {
	e.publish(eventbus.EventBlockPlaced, blockEventPayload{X: pos.X, Y: pos.Y, Z: pos.Z, Block: id})
}

func (e *Engine) publishBlockRemoved(pos vec.Vec3) {
	e.publish(eventbus.EventBlockRemoved, blockEventPayload{X: pos.X, Y: pos.Y, Z: pos.Z})
}

func (e *Engine) publishEntityFed(id string, pos vec.Vec3Float) {
	e.publish(eventbus.EventEntityFed, entityEventPayload{EntityID: id, X: pos.X, Y: pos.Y, Z: pos.Z})
}

func (e *Engine) publishEntitySpawned(id string, pos vec.Vec3Float) {
	e.publish(eventbus.EventEntitySpawned, entityEventPayload{EntityID: id, X: pos.X, Y: pos.Y, Z: pos.Z})
}
