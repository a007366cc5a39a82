package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/annel0/voxel-sandbox/internal/config"
	"github.com/annel0/voxel-sandbox/internal/eventbus"
	"github.com/annel0/voxel-sandbox/internal/input"
	"github.com/annel0/voxel-sandbox/internal/logging"
	"github.com/annel0/voxel-sandbox/internal/observability"
	"github.com/annel0/voxel-sandbox/internal/render"
	"github.com/annel0/voxel-sandbox/internal/sim"
	"github.com/annel0/voxel-sandbox/internal/vec"
	"github.com/annel0/voxel-sandbox/internal/world"
	"github.com/annel0/voxel-sandbox/internal/world/entity"
)

func main() {
	configPath := flag.String("config", "", "путь к YAML конфигурации")
	demo := flag.Bool("demo", false, "скриптованный ввод для безголового прогона")
	flag.Parse()

	// Инициализируем систему логирования
	if err := logging.InitDefaultLogger("sandbox"); err != nil {
		log.Fatalf("❌ Ошибка инициализации логирования: %v", err)
	}
	defer logging.CloseDefaultLogger()

	logging.Info("🎮 Запуск воксельной песочницы...")

	// === КОНФИГУРАЦИЯ ===
	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.Error("❌ Ошибка чтения конфигурации: %v", err)
		log.Fatalf("❌ Ошибка чтения конфигурации: %v", err)
	}
	if cfg == nil {
		cfg = &config.Config{}
	}

	seed := cfg.World.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	halfExtent := cfg.World.GetHalfExtent()

	// === ШИНА СОБЫТИЙ И МЕТРИКИ ===
	bus := eventbus.NewMemoryBus(1024)
	if err := eventbus.StartLoggingListener(bus); err != nil {
		logging.Error("Ошибка подписки логгера на шину: %v", err)
	}

	metrics, err := observability.NewSimMetrics(bus)
	if err != nil {
		logging.Error("❌ Ошибка создания метрик: %v", err)
		log.Fatalf("❌ Ошибка создания метрик: %v", err)
	}
	metrics.StartHTTP(fmt.Sprintf(":%d", cfg.Metrics.GetPort()))

	// === ГЕНЕРАЦИЯ МИРА ===
	logging.Debug("Генерация мира (сид %d)...", seed)
	store := world.NewStore()
	generator := world.NewGenerator(seed, halfExtent)
	generator.Generate(store)
	logging.Info("🌍 Мир сгенерирован: %d блоков, полуразмер %d, сид %d", store.Len(), halfExtent, seed)

	// === СУЩНОСТИ ===
	rng := rand.New(rand.NewSource(seed))
	cows := entity.NewManager(rng)
	cows.SpawnCows(store, cfg.Entities.GetSpawnExtent(), cfg.Entities.GetCount())
	logging.Info("🐄 Расставлено сущностей: %d", cows.Count())

	// === ИГРОВОЙ ЦИКЛ ===
	renderer := render.NewMemoryRenderer()
	inputs := input.NewState()
	engine := sim.NewEngine(store, renderer, inputs, cows, bus, metrics, sim.Options{
		WorldHalfExtent: halfExtent,
		Reach:           cfg.Sim.GetReach(),
		MoveSpeed:       cfg.Sim.GetMoveSpeed(),
		LookSensitivity: cfg.Sim.GetLookSensitivity(),
	})

	// Наблюдатель появляется над поверхностью центральной колонны
	engine.Viewer().Position = vec.Vec3Float{Y: float64(generator.HeightAt(0, 0)) + 2}
	engine.Sync()

	if *demo {
		go runDemo(inputs)
	}

	tps := cfg.Sim.GetTPS()
	logging.Info("▶️  Симуляция запущена: %d тиков/сек", tps)

	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	last := time.Now()
	for {
		select {
		case now := <-ticker.C:
			engine.Tick(now.Sub(last).Seconds())
			last = now
		case sig := <-sigCh:
			logging.Info("🛑 Получен сигнал %v, завершение...", sig)
			engine.Close()
			metrics.Stop()
			bus.Close()
			logging.Info("✅ Песочница остановлена")
			return
		}
	}
}

// runDemo имитирует игрока: захват указателя, ходьба, осмотр и клики.
// Позволяет прогнать весь цикл без графического клиента.
func runDemo(inputs *input.State) {
	inputs.SetLocked(true)
	inputs.SetMove(input.Forward, true)

	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	i := 0
	for range ticker.C {
		inputs.Look(20, 0)
		switch i % 4 {
		case 0:
			inputs.Press(input.ButtonPrimary)
		case 2:
			inputs.Press(input.ButtonSecondary)
		}
		i++
	}
}
