package world

import (
	"math"
	"math/rand"

	"github.com/aquilax/go-perlin"

	"github.com/annel0/voxel-sandbox/internal/vec"
	"github.com/annel0/voxel-sandbox/internal/world/block"
)

// Параметры шума Перлина (сглаживание, частота, октавы)
const (
	perlinAlpha   = 2.0
	perlinBeta    = 2.0
	perlinOctaves = 3
)

// Generator генерирует ландшафт мира. Вся случайность детерминирована
// сидом: шум Перлина создаётся один раз при конструировании, решения о
// деревьях принимаются поколоночным ГПСЧ, так что один и тот же сид
// всегда даёт один и тот же мир.
type Generator struct {
	Seed            int64   // Сид для генерации шума и деревьев
	HalfExtent      int     // Полуразмер мира: колонны в [-HalfExtent, HalfExtent]
	BaseHeight      int     // Базовая высота поверхности
	WaveAmplitude   float64 // Амплитуда синусоидального рельефа
	DetailAmplitude float64 // Амплитуда шумовой детализации
	ForestDensity   float64 // Вероятность дерева на колонну (от 0 до 1)

	noise *perlin.Perlin
}

// NewGenerator создаёт новый генератор мира с указанным сидом
func NewGenerator(seed int64, halfExtent int) *Generator {
	return &Generator{
		Seed:            seed,
		HalfExtent:      halfExtent,
		BaseHeight:      5,
		WaveAmplitude:   3.0,
		DetailAmplitude: 2.0,
		ForestDensity:   0.05, // 5% шанс появления дерева на колонне
		noise:           perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed),
	}
}

// HeightAt возвращает высоту поверхности колонны (x, z).
// Чистая функция координат: низкочастотные синус и косинус с разными
// периодами по осям плюс шумовая детализация, приведённые к целому.
func (g *Generator) HeightAt(x, z int) int {
	fx := float64(x)
	fz := float64(z)

	wave := math.Sin(fx*0.3)*0.5 + math.Cos(fz*0.22)*0.5
	detail := g.noise.Noise2D(fx*0.08, fz*0.08)

	h := g.BaseHeight + int(math.Floor(wave*g.WaveAmplitude+detail*g.DetailAmplitude))
	if h < 0 {
		h = 0
	}
	return h
}

// Classify возвращает тип блока для высоты y в колонне высотой columnHeight.
// Поверхность — трава, три слоя под ней — земля, глубже — камень.
// Для y выше поверхности не вызывается.
func (g *Generator) Classify(y, columnHeight int) block.BlockID {
	switch {
	case y == columnHeight:
		return block.GrassBlockID
	case y >= columnHeight-3:
		return block.DirtBlockID
	default:
		return block.StoneBlockID
	}
}

// GenerateColumn заполняет колонну (x, z) блоками от 0 до высоты поверхности
func (g *Generator) GenerateColumn(store *Store, x, z int) {
	height := g.HeightAt(x, z)
	for y := 0; y <= height; y++ {
		store.Set(vec.Vec3{X: x, Y: y, Z: z}, g.Classify(y, height))
	}
}

// columnRand создаёт детерминированный ГПСЧ для колонны.
// Уникальный сид строится из глобального сида и координат колонны.
func (g *Generator) columnRand(x, z int) *rand.Rand {
	columnSeed := g.Seed + int64(x)*31 + int64(z)*17
	return rand.New(rand.NewSource(columnSeed))
}

// MaybePlaceTree решает, растёт ли на колонне дерево, и при положительном
// решении добавляет ствол и крону. Деревья появляются только на достаточно
// высоких колоннах.
func (g *Generator) MaybePlaceTree(store *Store, x, z, columnHeight int) {
	rng := g.columnRand(x, z)
	if columnHeight <= 3 || rng.Float64() >= g.ForestDensity {
		return
	}

	// Ствол высотой 3-5 блоков над поверхностью
	trunkHeight := 3 + rng.Intn(3)
	for dy := 1; dy <= trunkHeight; dy++ {
		store.Set(vec.Vec3{X: x, Y: columnHeight + dy, Z: z}, block.WoodBlockID)
	}

	// Крона: ромбовидный контур вокруг вершины ствола.
	// Каждая ячейка листвы появляется независимо с вероятностью 0.8.
	top := columnHeight + trunkHeight
	for dy := 0; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			for dz := -2; dz <= 2; dz++ {
				if abs(dx)+abs(dz) > 2 {
					continue
				}
				pos := vec.Vec3{X: x + dx, Y: top + dy, Z: z + dz}
				if _, occupied := store.Get(pos); occupied {
					continue // не перезаписываем ствол
				}
				if rng.Float64() < 0.8 {
					store.Set(pos, block.LeavesBlockID)
				}
			}
		}
	}
}

// Generate заполняет хранилище стартовым миром: квадрат колонн
// [-HalfExtent, HalfExtent] по обеим горизонтальным осям. Выполняется
// один раз, синхронно, до того как мир становится интерактивным.
func (g *Generator) Generate(store *Store) {
	for x := -g.HalfExtent; x <= g.HalfExtent; x++ {
		for z := -g.HalfExtent; z <= g.HalfExtent; z++ {
			g.GenerateColumn(store, x, z)
			g.MaybePlaceTree(store, x, z, g.HeightAt(x, z))
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
