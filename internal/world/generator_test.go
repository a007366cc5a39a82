package world

import (
	"testing"

	"github.com/annel0/voxel-sandbox/internal/vec"
	"github.com/annel0/voxel-sandbox/internal/world/block"
)

func TestHeightAtDeterminism(t *testing.T) {
	g1 := NewGenerator(42, 20)
	g2 := NewGenerator(42, 20)

	for x := -20; x <= 20; x++ {
		for z := -20; z <= 20; z++ {
			h1 := g1.HeightAt(x, z)
			h2 := g1.HeightAt(x, z)
			if h1 != h2 {
				t.Fatalf("Повторный вызов HeightAt(%d,%d) дал другой результат: %d != %d", x, z, h1, h2)
			}
			if g2.HeightAt(x, z) != h1 {
				t.Fatalf("Генераторы с одним сидом разошлись в колонне (%d,%d)", x, z)
			}
			if h1 < 0 {
				t.Fatalf("Отрицательная высота в колонне (%d,%d): %d", x, z, h1)
			}
		}
	}
}

func TestHeightAtDiffersAcrossSeeds(t *testing.T) {
	g1 := NewGenerator(1, 20)
	g2 := NewGenerator(2, 20)

	same := true
	for x := -20; x <= 20 && same; x++ {
		for z := -20; z <= 20; z++ {
			if g1.HeightAt(x, z) != g2.HeightAt(x, z) {
				same = false
				break
			}
		}
	}
	if same {
		t.Error("Разные сиды дали идентичный рельеф")
	}
}

func TestClassifyBoundary(t *testing.T) {
	g := NewGenerator(1, 20)

	cases := []struct {
		y        int
		expected block.BlockID
	}{
		{5, block.GrassBlockID},
		{4, block.DirtBlockID},
		{3, block.DirtBlockID},
		{2, block.DirtBlockID},
		{1, block.StoneBlockID},
		{0, block.StoneBlockID},
	}
	for _, tc := range cases {
		if got := g.Classify(tc.y, 5); got != tc.expected {
			t.Errorf("Classify(%d, 5): ожидался %d, получен %d", tc.y, tc.expected, got)
		}
	}
}

func TestGenerateColumn(t *testing.T) {
	g := NewGenerator(7, 20)
	store := NewStore()

	g.GenerateColumn(store, 3, -4)
	height := g.HeightAt(3, -4)

	for y := 0; y <= height; y++ {
		id, ok := store.Get(vec.Vec3{X: 3, Y: y, Z: -4})
		if !ok {
			t.Fatalf("Колонна имеет разрыв на высоте %d", y)
		}
		if expected := g.Classify(y, height); id != expected {
			t.Errorf("Высота %d: ожидался тип %d, получен %d", y, expected, id)
		}
	}

	if _, ok := store.Get(vec.Vec3{X: 3, Y: height + 1, Z: -4}); ok {
		t.Error("Над поверхностью колонны не должно быть блоков")
	}
}

func TestMaybePlaceTreeDeterministic(t *testing.T) {
	// С плотностью 1.0 дерево обязано появиться на каждой пригодной колонне
	g := NewGenerator(11, 20)
	g.ForestDensity = 1.0

	store := NewStore()
	height := g.HeightAt(0, 0)
	if height <= 3 {
		t.Skipf("Колонна слишком низкая для дерева: %d", height)
	}

	g.MaybePlaceTree(store, 0, 0, height)

	// Ствол начинается сразу над поверхностью
	id, ok := store.Get(vec.Vec3{X: 0, Y: height + 1, Z: 0})
	if !ok || id != block.WoodBlockID {
		t.Fatalf("Ожидался ствол над поверхностью, получено (%d, %v)", id, ok)
	}

	// Всё, что добавлено — только дерево и листва
	hasLeaves := false
	store.ForEach(func(pos vec.Vec3, id block.BlockID) {
		switch id {
		case block.WoodBlockID:
		case block.LeavesBlockID:
			hasLeaves = true
		default:
			t.Errorf("Неожиданный тип блока %d в %+v", id, pos)
		}
	})
	if !hasLeaves {
		t.Error("Крона не сгенерирована")
	}
}

func TestMaybePlaceTreeSkipsLowColumns(t *testing.T) {
	g := NewGenerator(11, 20)
	g.ForestDensity = 1.0

	store := NewStore()
	g.MaybePlaceTree(store, 0, 0, 3)
	if store.Len() != 0 {
		t.Errorf("На низкой колонне дерево не растёт, получено %d блоков", store.Len())
	}
}

func TestGenerateFillsWorld(t *testing.T) {
	g := NewGenerator(5, 4)
	store := NewStore()
	g.Generate(store)

	// Каждая колонна квадрата заполнена до своей высоты
	for x := -4; x <= 4; x++ {
		for z := -4; z <= 4; z++ {
			height := g.HeightAt(x, z)
			if id, ok := store.Get(vec.Vec3{X: x, Y: height, Z: z}); !ok || id != block.GrassBlockID {
				t.Fatalf("Поверхность колонны (%d,%d) не трава: (%d, %v)", x, z, id, ok)
			}
			if _, ok := store.Get(vec.Vec3{X: x, Y: 0, Z: z}); !ok {
				t.Fatalf("Основание колонны (%d,%d) пусто", x, z)
			}
		}
	}
}
