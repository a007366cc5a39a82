package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config корневая структура конфигурации песочницы.

type Config struct {
	World    WorldConfig    `yaml:"world"`
	Entities EntitiesConfig `yaml:"entities"`
	Sim      SimConfig      `yaml:"sim"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

type WorldConfig struct {
	HalfExtent int   `yaml:"half_extent"` // Полуразмер мира в колоннах
	Seed       int64 `yaml:"seed"`        // Сид генерации; 0 — случайный
}

type EntitiesConfig struct {
	Count       int `yaml:"count"`        // Количество коров при старте
	SpawnExtent int `yaml:"spawn_extent"` // Полуразмер зоны расстановки
}

type SimConfig struct {
	TPS             int     `yaml:"tps"`              // Тиков симуляции в секунду
	Reach           float64 `yaml:"reach"`            // Дальность прицеливания (блоков)
	MoveSpeed       float64 `yaml:"move_speed"`       // Скорость наблюдателя (блоков/сек)
	LookSensitivity float64 `yaml:"look_sensitivity"` // Радианы на единицу дельты взгляда
}

type MetricsConfig struct {
	Port int `yaml:"port"` // Порт Prometheus метрик
}

// GetHalfExtent возвращает полуразмер мира с поддержкой fallback значений
func (w *WorldConfig) GetHalfExtent() int {
	return getIntWithEnvFallback(w.HalfExtent, "VOXEL_HALF_EXTENT", 20)
}

// GetCount возвращает количество сущностей с поддержкой fallback значений
func (e *EntitiesConfig) GetCount() int {
	return getIntWithEnvFallback(e.Count, "VOXEL_ENTITY_COUNT", 5)
}

// GetSpawnExtent возвращает зону расстановки с поддержкой fallback значений
func (e *EntitiesConfig) GetSpawnExtent() int {
	return getIntWithEnvFallback(e.SpawnExtent, "VOXEL_SPAWN_EXTENT", 15)
}

// GetTPS возвращает частоту тиков с поддержкой fallback значений
func (s *SimConfig) GetTPS() int {
	return getIntWithEnvFallback(s.TPS, "VOXEL_TPS", 20)
}

// GetReach возвращает дальность прицеливания
func (s *SimConfig) GetReach() float64 {
	if s.Reach > 0 {
		return s.Reach
	}
	return 8.0
}

// GetMoveSpeed возвращает скорость наблюдателя
func (s *SimConfig) GetMoveSpeed() float64 {
	if s.MoveSpeed > 0 {
		return s.MoveSpeed
	}
	return 5.0
}

// GetLookSensitivity возвращает чувствительность взгляда
func (s *SimConfig) GetLookSensitivity() float64 {
	if s.LookSensitivity > 0 {
		return s.LookSensitivity
	}
	return 0.002
}

// GetPort возвращает порт метрик с поддержкой fallback значений
func (m *MetricsConfig) GetPort() int {
	return getIntWithEnvFallback(m.Port, "VOXEL_METRICS_PORT", 2112)
}

// getIntWithEnvFallback возвращает значение с приоритетом: config -> env -> default
func getIntWithEnvFallback(configValue int, envVar string, defaultValue int) int {
	// Если значение задано в конфиге и больше 0, используем его
	if configValue > 0 {
		return configValue
	}

	// Пробуем прочитать из environment variable
	if envVal := os.Getenv(envVar); envVal != "" {
		if v, err := strconv.Atoi(envVal); err == nil && v > 0 {
			return v
		}
	}

	// Используем дефолтное значение
	return defaultValue
}

// Load читает YAML файл конфигурации.
// Если path == "", пытается прочитать из ENV VOXEL_CONFIG или возвращает nil, nil.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("VOXEL_CONFIG")
		if path == "" {
			return nil, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
