package world

import (
	"fmt"
	"math/rand"

	"github.com/annel0/blockworld/internal/logging"
)

// ProgressFunc получает ход генерации: этап, сколько сделано и сколько всего
type ProgressFunc func(stage string, done, total int)

// World ограниченный воксельный мир: блоки, предметы, существа и один игрок.
// Каждая клетка присутствует не более чем в одной из трёх карт.
// World не потокобезопасен: все вызовы должны выполняться последовательно.
type World struct {
	name string
	seed int64
	size int

	heights   *heightMap
	blocks    map[cellKey]Block
	items     map[cellKey]ItemStack
	creatures map[cellKey]*Creature
	player    *Player

	log      *logging.Logger
	metrics  *Metrics
	progress ProgressFunc
	listener EventListener
}

// Option настраивает мир при создании
type Option func(*World)

// WithLogger задаёт логгер генерации и изменений мира
func WithLogger(l *logging.Logger) Option {
	return func(w *World) {
		w.log = l
	}
}

// WithMetrics подключает Prometheus-метрики
func WithMetrics(m *Metrics) Option {
	return func(w *World) {
		w.metrics = m
	}
}

// WithProgress задаёт обработчик хода генерации
func WithProgress(fn ProgressFunc) Option {
	return func(w *World) {
		w.progress = fn
	}
}

// WithEventListener задаёт получателя событий мира
func WithEventListener(l EventListener) Option {
	return func(w *World) {
		w.listener = l
	}
}

// NewWorld создаёт и полностью генерирует мир. Одинаковые seed и size
// всегда дают одинаковый мир.
func NewWorld(seed int64, size int, name string, opts ...Option) (*World, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWorldSize, size)
	}

	w := &World{
		name:      name,
		seed:      seed,
		size:      size,
		heights:   newHeightMap(size),
		blocks:    make(map[cellKey]Block),
		items:     make(map[cellKey]ItemStack),
		creatures: make(map[cellKey]*Creature),
		log:       logging.Discard(),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.generate(rand.New(rand.NewSource(seed)))
	return w, nil
}

func (w *World) Name() string {
	return w.name
}

func (w *World) Seed() int64 {
	return w.seed
}

func (w *World) Size() int {
	return w.size
}

// Player возвращает игрока мира
func (w *World) Player() *Player {
	return w.player
}

func (w *World) String() string {
	return w.name
}

// BlockCount количество блоков
func (w *World) BlockCount() int {
	return len(w.blocks)
}

// ItemCount количество стопок предметов, лежащих в мире
func (w *World) ItemCount() int {
	return len(w.items)
}

// CreatureCount количество существ
func (w *World) CreatureCount() int {
	return len(w.creatures)
}

// checkWorld позиция должна принадлежать этому миру
func (w *World) checkWorld(loc Location) error {
	if loc.world == nil {
		return badLocation("null world in %s", loc)
	}
	if loc.world != w {
		return badLocation("%s does not belong to world %s", loc, w.name)
	}
	return nil
}

// BlockAt возвращает блок в позиции
func (w *World) BlockAt(loc Location) (Block, bool, error) {
	if err := w.checkWorld(loc); err != nil {
		return Block{}, false, err
	}
	b, ok := w.blocks[loc.key()]
	return b, ok, nil
}

// CreatureAt возвращает существо в позиции
func (w *World) CreatureAt(loc Location) (*Creature, bool, error) {
	if err := w.checkWorld(loc); err != nil {
		return nil, false, err
	}
	c, ok := w.creatures[loc.key()]
	return c, ok, nil
}

// ItemAt возвращает стопку предметов в позиции
func (w *World) ItemAt(loc Location) (ItemStack, bool, error) {
	if err := w.checkWorld(loc); err != nil {
		return ItemStack{}, false, err
	}
	s, ok := w.items[loc.key()]
	return s, ok, nil
}

// HighestLocationAt возвращает позицию столбца ground на высоте поверхности
// из карты высот. Изменения промежуточных слоёв не учитываются.
func (w *World) HighestLocationAt(ground Location) (Location, error) {
	if err := w.checkWorld(ground); err != nil {
		return Location{}, err
	}
	if !Check(w, ground.X, 0, ground.Z) {
		return Location{}, badLocation("column of %s is outside the world", ground)
	}

	ground.Y = w.heights.get(ground.X, ground.Z)
	return ground, nil
}

// IsFree проверяет, свободна ли позиция этого мира
func (w *World) IsFree(loc Location) (bool, error) {
	if err := w.checkWorld(loc); err != nil {
		return false, err
	}
	return loc.IsFree(), nil
}

// AddBlock ставит блок. Предмет или существо в клетке удаляются,
// высота столбца поднимается, если блок не ниже поверхности.
func (w *World) AddBlock(loc Location, b Block) error {
	if err := w.checkWorld(loc); err != nil {
		return err
	}
	if !CheckLocation(loc) {
		return badLocation("%s is outside the world", loc)
	}
	if w.player != nil && w.player.location.Equals(loc) {
		return badLocation("%s is occupied by the player", loc)
	}

	k := loc.key()
	delete(w.items, k)
	delete(w.creatures, k)
	w.blocks[k] = b

	if loc.Y >= w.heights.get(loc.X, loc.Z) {
		w.heights.set(loc.X, loc.Z, loc.Y)
	}

	w.changed("add_block")
	w.emit(BlockEvent{EventType: EventTypeBlockPlaced, Location: loc, Block: b})
	return nil
}

// AddItem кладёт стопку предметов в свободную клетку без блока
func (w *World) AddItem(loc Location, s ItemStack) error {
	if err := w.requireEmpty(loc); err != nil {
		return err
	}

	w.items[loc.key()] = s

	w.changed("add_item")
	w.emit(ItemEvent{EventType: EventTypeItemDropped, Location: loc, Item: s})
	return nil
}

// AddCreature добавляет существо в его позицию. Лежащий там предмет удаляется.
func (w *World) AddCreature(c *Creature) error {
	loc := c.Location()
	if err := w.requireEmpty(loc); err != nil {
		return err
	}

	k := loc.key()
	delete(w.items, k)
	w.creatures[k] = c

	w.changed("add_creature")
	w.emit(CreatureEvent{EventType: EventTypeCreatureSpawned, Location: loc, Creature: c})
	return nil
}

// requireEmpty клетка свободна и в ней нет даже жидкости
func (w *World) requireEmpty(loc Location) error {
	free, err := w.IsFree(loc)
	if err != nil {
		return err
	}
	if !free {
		return badLocation("%s is not free", loc)
	}
	if _, ok := w.blocks[loc.key()]; ok {
		return badLocation("%s is filled with liquid", loc)
	}
	return nil
}

// DestroyBlock разрушает блок. Твёрдый блок оставляет свой предмет,
// жидкость исчезает бесследно. Бедрок на y=0 разрушить нельзя.
func (w *World) DestroyBlock(loc Location) error {
	if err := w.checkWorld(loc); err != nil {
		return err
	}

	k := loc.key()
	b, ok := w.blocks[k]
	if !ok {
		return badLocation("no block at %s", loc)
	}
	if loc.Y == 0 {
		return badLocation("cannot destroy the bottom layer at %s", loc)
	}

	delete(w.blocks, k)
	if loc.Y >= w.heights.get(loc.X, loc.Z) {
		w.heights.set(loc.X, loc.Z, loc.Y-1)
	}

	drop, hasDrop := b.Drops()
	if hasDrop {
		w.items[k] = drop
	}
	w.changed("destroy_block")

	w.emit(BlockEvent{EventType: EventTypeBlockDestroyed, Location: loc, Block: b})
	if hasDrop {
		w.emit(ItemEvent{EventType: EventTypeItemDropped, Location: loc, Item: drop})
	}
	return nil
}

// KillCreature убирает существо из мира и возвращает его
func (w *World) KillCreature(loc Location) (*Creature, error) {
	if err := w.checkWorld(loc); err != nil {
		return nil, err
	}

	k := loc.key()
	c, ok := w.creatures[k]
	if !ok {
		return nil, badLocation("no creature at %s", loc)
	}
	delete(w.creatures, k)

	w.changed("kill_creature")
	w.emit(CreatureEvent{EventType: EventTypeCreatureKilled, Location: loc, Creature: c})
	return c, nil
}

// RemoveItemAt убирает стопку предметов из клетки и возвращает её
func (w *World) RemoveItemAt(loc Location) (ItemStack, error) {
	if err := w.checkWorld(loc); err != nil {
		return ItemStack{}, err
	}

	k := loc.key()
	s, ok := w.items[k]
	if !ok {
		return ItemStack{}, badLocation("no items at %s", loc)
	}
	delete(w.items, k)

	w.changed("remove_item")
	w.emit(ItemEvent{EventType: EventTypeItemRemoved, Location: loc, Item: s})
	return s, nil
}

// NearbyCreatures существа в 26 соседних клетках, в порядке обхода окрестности
func (w *World) NearbyCreatures(loc Location) ([]*Creature, error) {
	if err := w.checkWorld(loc); err != nil {
		return nil, err
	}

	var nearby []*Creature
	for _, n := range loc.Neighborhood() {
		if c, ok := w.creatures[n.key()]; ok {
			nearby = append(nearby, c)
		}
	}
	return nearby, nil
}

func (w *World) changed(op string) {
	w.metrics.mutation(op)
	w.metrics.setCounts(len(w.blocks), len(w.items), len(w.creatures))
}
