package observability

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/annel0/voxel-sandbox/internal/eventbus"
	"github.com/annel0/voxel-sandbox/internal/logging"
)

// SimMetrics инкапсулирует Prometheus-метрики симуляции.
// Счётчики правок мира и кормлений питаются событиями шины;
// длительность тика и gauge-метрики обновляет игровой цикл.
type SimMetrics struct {
	placed       prometheus.Counter
	removed      prometheus.Counter
	fed          prometheus.Counter
	entities     prometheus.Gauge
	occupied     prometheus.Gauge
	tickDuration prometheus.Histogram

	sub eventbus.Subscription
}

// NewSimMetrics создаёт и регистрирует метрики, подписывая их на шину событий.
func NewSimMetrics(bus eventbus.EventBus) (*SimMetrics, error) {
	m := &SimMetrics{
		placed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sandbox",
			Name:      "blocks_placed_total",
			Help:      "Общее число установленных блоков.",
		}),
		removed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sandbox",
			Name:      "blocks_removed_total",
			Help:      "Общее число удалённых блоков.",
		}),
		fed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sandbox",
			Name:      "entities_fed_total",
			Help:      "Общее число событий кормления сущностей.",
		}),
		entities: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "sandbox",
			Name:      "entities",
			Help:      "Текущее количество сущностей в мире.",
		}),
		occupied: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "sandbox",
			Name:      "occupied_cells",
			Help:      "Текущее количество занятых ячеек мира.",
		}),
		tickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "sandbox",
			Name:      "tick_duration_seconds",
			Help:      "Длительность одного тика симуляции.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 12),
		}),
	}

	// Регистрируем метрики в глобальном регистре Prometheus.
	prometheus.MustRegister(m.placed, m.removed, m.fed, m.entities, m.occupied, m.tickDuration)

	sub, err := bus.Subscribe(context.Background(), eventbus.Filter{
		Types: []string{eventbus.EventBlockPlaced, eventbus.EventBlockRemoved, eventbus.EventEntityFed},
	}, m.onEvent)
	if err != nil {
		return nil, err
	}
	m.sub = sub

	return m, nil
}

func (m *SimMetrics) onEvent(ctx context.Context, ev *eventbus.Envelope) {
	switch ev.EventType {
	case eventbus.EventBlockPlaced:
		m.placed.Inc()
	case eventbus.EventBlockRemoved:
		m.removed.Inc()
	case eventbus.EventEntityFed:
		m.fed.Inc()
	}
}

// ObserveTick фиксирует длительность одного тика
func (m *SimMetrics) ObserveTick(d time.Duration) {
	m.tickDuration.Observe(d.Seconds())
}

// SetEntities обновляет gauge количества сущностей
func (m *SimMetrics) SetEntities(n int) {
	m.entities.Set(float64(n))
}

// SetOccupied обновляет gauge занятых ячеек
func (m *SimMetrics) SetOccupied(n int) {
	m.occupied.Set(float64(n))
}

// StartHTTP запускает HTTP-эндпоинт Prometheus на указанном адресе (например, ":2112").
// Метод неблокирующий: HTTP-сервер стартует в отдельной горутине.
func (m *SimMetrics) StartHTTP(addr string) {
	go func() {
		logging.Info("📈 Prometheus /metrics доступен по адресу %s", addr)
		if err := http.ListenAndServe(addr, promhttp.Handler()); err != nil {
			logging.Error("Ошибка Prometheus HTTP сервера: %v", err)
		}
	}()
}

// Stop отписывает экспортер от шины событий
func (m *SimMetrics) Stop() {
	if m.sub != nil {
		m.sub.Unsubscribe()
	}
}
