package world

// EventType определяет тип события мира
type EventType uint8

const (
	EventTypeBlockPlaced     EventType = iota // Установка блока
	EventTypeBlockDestroyed                   // Разрушение блока
	EventTypeItemDropped                      // Предмет положен в мир
	EventTypeItemRemoved                      // Предмет убран из мира (подобран)
	EventTypeCreatureSpawned                  // Существо добавлено
	EventTypeCreatureKilled                   // Существо убито
)

func (t EventType) String() string {
	switch t {
	case EventTypeBlockPlaced:
		return "block_placed"
	case EventTypeBlockDestroyed:
		return "block_destroyed"
	case EventTypeItemDropped:
		return "item_dropped"
	case EventTypeItemRemoved:
		return "item_removed"
	case EventTypeCreatureSpawned:
		return "creature_spawned"
	case EventTypeCreatureKilled:
		return "creature_killed"
	default:
		return "unknown"
	}
}

// Event представляет собой интерфейс для всех событий
type Event interface {
	GetType() EventType
}

// BlockEvent событие, связанное с блоком
type BlockEvent struct {
	EventType EventType
	Location  Location
	Block     Block
}

// GetType возвращает тип события
func (e BlockEvent) GetType() EventType {
	return e.EventType
}

// ItemEvent событие, связанное со стопкой предметов в мире
type ItemEvent struct {
	EventType EventType
	Location  Location
	Item      ItemStack
}

// GetType возвращает тип события
func (e ItemEvent) GetType() EventType {
	return e.EventType
}

// CreatureEvent событие, связанное с существом
type CreatureEvent struct {
	EventType EventType
	Location  Location
	Creature  *Creature
}

// GetType возвращает тип события
func (e CreatureEvent) GetType() EventType {
	return e.EventType
}

// EventListener получает события синхронно, в момент изменения мира.
// События генерации не публикуются.
type EventListener func(Event)

func (w *World) emit(e Event) {
	if w.listener != nil {
		w.listener(e)
	}
}
