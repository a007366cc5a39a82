package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := &Config{}

	if got := cfg.World.GetHalfExtent(); got != 20 {
		t.Errorf("Полуразмер мира по умолчанию: ожидалось 20, получено %d", got)
	}
	if got := cfg.Entities.GetCount(); got != 5 {
		t.Errorf("Количество сущностей по умолчанию: ожидалось 5, получено %d", got)
	}
	if got := cfg.Entities.GetSpawnExtent(); got != 15 {
		t.Errorf("Зона расстановки по умолчанию: ожидалось 15, получено %d", got)
	}
	if got := cfg.Sim.GetTPS(); got != 20 {
		t.Errorf("TPS по умолчанию: ожидалось 20, получено %d", got)
	}
	if got := cfg.Sim.GetReach(); got != 8.0 {
		t.Errorf("Дальность по умолчанию: ожидалось 8, получено %v", got)
	}
	if got := cfg.Metrics.GetPort(); got != 2112 {
		t.Errorf("Порт метрик по умолчанию: ожидалось 2112, получено %d", got)
	}
}

func TestEnvFallback(t *testing.T) {
	t.Setenv("VOXEL_HALF_EXTENT", "30")
	cfg := &Config{}

	if got := cfg.World.GetHalfExtent(); got != 30 {
		t.Errorf("ENV fallback: ожидалось 30, получено %d", got)
	}

	// Значение из конфига имеет приоритет над ENV
	cfg.World.HalfExtent = 10
	if got := cfg.World.GetHalfExtent(); got != 10 {
		t.Errorf("Приоритет конфига: ожидалось 10, получено %d", got)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	data := []byte("world:\n  half_extent: 12\n  seed: 77\nentities:\n  count: 3\nsim:\n  tps: 30\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Ошибка записи файла: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}
	if cfg.World.HalfExtent != 12 || cfg.World.Seed != 77 {
		t.Errorf("Секция world прочитана неверно: %+v", cfg.World)
	}
	if cfg.Entities.GetCount() != 3 {
		t.Errorf("Секция entities прочитана неверно: %+v", cfg.Entities)
	}
	if cfg.Sim.GetTPS() != 30 {
		t.Errorf("Секция sim прочитана неверно: %+v", cfg.Sim)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	t.Setenv("VOXEL_CONFIG", "")

	cfg, err := Load("")
	if err != nil || cfg != nil {
		t.Errorf("Пустой путь без ENV должен давать nil, nil: (%+v, %v)", cfg, err)
	}
}
