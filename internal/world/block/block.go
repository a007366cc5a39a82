package block

// BlockID представляет идентификатор типа блока
type BlockID uint16

// Константы ID блоков. Набор закрытый: мир песочницы оперирует
// только этими пятью типами.
const (
	GrassBlockID BlockID = iota + 1 // 1
	DirtBlockID                     // 2
	StoneBlockID                    // 3
	WoodBlockID                     // 4
	LeavesBlockID                   // 5
)

// Descriptor описывает тип блока для внешних подсистем.
// Color — ссылка на материал; интерпретируется рендерером, ядро
// её не трактует.
type Descriptor struct {
	ID    BlockID
	Name  string
	Color uint32 // RGB, формат 0xRRGGBB
}

var registry = map[BlockID]Descriptor{
	GrassBlockID:  {ID: GrassBlockID, Name: "grass", Color: 0x4caf50},
	DirtBlockID:   {ID: DirtBlockID, Name: "dirt", Color: 0x795548},
	StoneBlockID:  {ID: StoneBlockID, Name: "stone", Color: 0x9e9e9e},
	WoodBlockID:   {ID: WoodBlockID, Name: "wood", Color: 0x6d4c41},
	LeavesBlockID: {ID: LeavesBlockID, Name: "leaves", Color: 0x2e7d32},
}

// Get возвращает описание для указанного ID
func Get(id BlockID) (Descriptor, bool) {
	desc, exists := registry[id]
	return desc, exists
}

// IsValidBlockID проверяет, является ли ID допустимым идентификатором блока
func IsValidBlockID(id BlockID) bool {
	_, exists := registry[id]
	return exists
}

// All возвращает описания всех зарегистрированных блоков
func All() []Descriptor {
	descs := make([]Descriptor, 0, len(registry))
	for _, d := range registry {
		descs = append(descs, d)
	}
	return descs
}
