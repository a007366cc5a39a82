package eventbus

// Типы событий симуляции, публикуемых игровым циклом
const (
	EventBlockPlaced   = "block_placed"
	EventBlockRemoved  = "block_removed"
	EventEntityFed     = "entity_fed"
	EventEntitySpawned = "entity_spawned"
)
