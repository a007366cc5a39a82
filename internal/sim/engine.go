package sim

import (
	"time"

	"github.com/annel0/voxel-sandbox/internal/eventbus"
	"github.com/annel0/voxel-sandbox/internal/input"
	"github.com/annel0/voxel-sandbox/internal/observability"
	"github.com/annel0/voxel-sandbox/internal/render"
	"github.com/annel0/voxel-sandbox/internal/vec"
	"github.com/annel0/voxel-sandbox/internal/world"
	"github.com/annel0/voxel-sandbox/internal/world/block"
	"github.com/annel0/voxel-sandbox/internal/world/entity"
)

// Options задаёт параметры игрового цикла
type Options struct {
	WorldHalfExtent int           // Горизонтальные границы мира
	Reach           float64       // Дальность прицеливания
	MoveSpeed       float64       // Скорость наблюдателя (блоков/сек)
	LookSensitivity float64       // Радианы на единицу дельты взгляда
	SelectedBlock   block.BlockID // Выбранный тип блока для установки
}

// Engine — цикл покадрового обновления: единственный владелец
// хранилища мира, наблюдателя и карты сущностей. Все мутации
// происходят внутри Tick; ввод записывается коллаборатором
// асинхронно и забирается на границе тика.
type Engine struct {
	store    *world.Store
	renderer render.Renderer
	inputs   *input.State
	cows     *entity.Manager
	bus      eventbus.EventBus
	metrics  *observability.SimMetrics

	viewer   Viewer
	opts     Options
	bounds   entity.Bounds
	selected block.BlockID
	closed   bool
}

// NewEngine создаёт игровой цикл поверх готового мира и сущностей
func NewEngine(store *world.Store, renderer render.Renderer, inputs *input.State,
	cows *entity.Manager, bus eventbus.EventBus, metrics *observability.SimMetrics,
	opts Options) *Engine {

	if opts.SelectedBlock == 0 {
		opts.SelectedBlock = block.GrassBlockID
	}

	return &Engine{
		store:    store,
		renderer: renderer,
		inputs:   inputs,
		cows:     cows,
		bus:      bus,
		metrics:  metrics,
		opts:     opts,
		bounds: entity.Bounds{
			Min: float64(-opts.WorldHalfExtent),
			Max: float64(opts.WorldHalfExtent),
		},
		selected: opts.SelectedBlock,
	}
}

// Viewer возвращает состояние наблюдателя
func (e *Engine) Viewer() *Viewer {
	return &e.viewer
}

// SelectedBlock возвращает выбранный тип блока
func (e *Engine) SelectedBlock() block.BlockID {
	return e.selected
}

// SetSelectedBlock меняет выбранный тип блока (состояние панели выбора).
// Недопустимый ID игнорируется.
func (e *Engine) SetSelectedBlock(id block.BlockID) {
	if block.IsValidBlockID(id) {
		e.selected = id
	}
}

// Sync зеркалирует текущее состояние мира и сущностей в рендерер.
// Вызывается один раз после генерации, до первого тика.
func (e *Engine) Sync() {
	e.store.ForEach(func(pos vec.Vec3, id block.BlockID) {
		e.renderer.AddBlock(pos, id)
	})
	e.cows.ForEach(func(c *entity.Cow) {
		e.renderer.AddEntity(c.ID, c.Position)
		e.publishEntitySpawned(c.ID.String(), c.Position)
	})
}

// Tick выполняет один тик симуляции с шагом dt (в секундах):
// движение наблюдателя, взгляд, дискретные действия, обновление
// сущностей.
func (e *Engine) Tick(dt float64) {
	if e.closed {
		return
	}
	started := time.Now()

	snap := e.inputs.Snapshot()

	if snap.Moving() {
		e.viewer.Move(snap, e.opts.MoveSpeed, dt)
	}
	e.viewer.ApplyLook(snap.LookDX, snap.LookDY, e.opts.LookSensitivity)

	for _, action := range snap.Actions {
		e.handleAction(action)
	}

	// Сытые коровы идут за наблюдателем: цель обновляется до движения
	e.cows.ForEach(func(c *entity.Cow) {
		c.SetFollowTarget(e.viewer.Position)
	})
	e.cows.UpdateAll(dt, e.bounds)
	e.cows.ForEach(func(c *entity.Cow) {
		e.renderer.UpdateEntity(c.ID, c.Position, c.Yaw, c.Happy())
	})

	if e.metrics != nil {
		e.metrics.ObserveTick(time.Since(started))
		e.metrics.SetEntities(e.cows.Count())
		e.metrics.SetOccupied(e.store.Len())
	}
}

// handleAction обрабатывает одно дискретное действие. Все невыполнимые
// предусловия — молчаливые no-op, не ошибки.
func (e *Engine) handleAction(a input.Action) {
	origin := e.viewer.Position
	dir := e.viewer.Forward()

	switch a.Button {
	case input.ButtonPrimary:
		// Удаление блока
		res := Resolve(origin, dir, e.store, e.opts.Reach)
		if res == nil {
			return
		}
		if _, occupied := e.store.Get(res.Remove); !occupied {
			return
		}
		e.store.Remove(res.Remove)
		e.renderer.RemoveBlock(res.Remove)
		e.publishBlockRemoved(res.Remove)

	case input.ButtonSecondary:
		// Кормление проверяется раньше установки блока
		if cow := NearestCow(origin, dir, e.cows, e.opts.Reach); cow != nil {
			if cow.Feed(e.viewer.Position) {
				e.publishEntityFed(cow.ID.String(), cow.Position)
			}
			return
		}

		res := Resolve(origin, dir, e.store, e.opts.Reach)
		if res == nil {
			return
		}
		if _, occupied := e.store.Get(res.Place); occupied {
			return
		}
		e.store.Set(res.Place, e.selected)
		e.renderer.AddBlock(res.Place, e.selected)
		e.publishBlockPlaced(res.Place, e.selected)
	}
}

// Close демонтирует мир: сначала освобождаются ресурсы рендерера
// (сущности, затем блоки), после чего состояние ввода отписывается —
// поздние колбэки ввода не попадают в освобождённое состояние.
func (e *Engine) Close() {
	if e.closed {
		return
	}
	e.closed = true

	e.cows.ForEach(func(c *entity.Cow) {
		e.renderer.RemoveEntity(c.ID)
	})
	e.store.ForEach(func(pos vec.Vec3, _ block.BlockID) {
		e.renderer.RemoveBlock(pos)
	})

	e.inputs.Close()
}
