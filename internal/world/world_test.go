package world

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorld(t *testing.T, size int, opts ...Option) *World {
	t.Helper()
	w, err := NewWorld(1, size, "test", opts...)
	require.NoError(t, err)
	require.NotNil(t, w)
	return w
}

// sky высокая клетка над столбцом (1, 1), заведомо пустая после генерации
func sky(w *World) Location {
	return NewLocation(w, 1, 200, 1)
}

func solidWithDrop(t *testing.T, m Material) Block {
	t.Helper()
	b, err := NewSolidBlock(m)
	require.NoError(t, err)
	b, err = b.WithDrops(m, 1)
	require.NoError(t, err)
	return b
}

func assertOneMapPerCell(t *testing.T, w *World) {
	t.Helper()
	for k := range w.items {
		_, inBlocks := w.blocks[k]
		_, inCreatures := w.creatures[k]
		assert.False(t, inBlocks, "предмет и блок в одной клетке %v", k.location(w))
		assert.False(t, inCreatures, "предмет и существо в одной клетке %v", k.location(w))
	}
	for k := range w.creatures {
		_, inBlocks := w.blocks[k]
		assert.False(t, inBlocks, "существо и блок в одной клетке %v", k.location(w))
	}
}

func TestNewWorld_InvalidSize(t *testing.T) {
	_, err := NewWorld(1, 0, "bad")
	assert.ErrorIs(t, err, ErrInvalidWorldSize)

	_, err = NewWorld(1, -5, "bad")
	assert.ErrorIs(t, err, ErrInvalidWorldSize)
}

func TestNewWorld_SizeOne(t *testing.T) {
	w, err := NewWorld(1, 1, "t")
	require.NoError(t, err)

	assert.Equal(t, "t", w.Name())
	assert.Equal(t, int64(1), w.Seed())
	assert.Equal(t, 1, w.Size())

	p := w.Player()
	require.NotNil(t, p, "игрок должен быть создан")
	assert.Equal(t, DefaultPlayerName, p.Name())

	highest, err := w.HighestLocationAt(NewLocation(w, 0, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, highest.Y+1, p.Location().Y)
	assert.Equal(t, 0.0, p.Location().X)
	assert.Equal(t, 0.0, p.Location().Z)

	_, hasCreature, err := w.CreatureAt(p.Location())
	require.NoError(t, err)
	assert.False(t, hasCreature)
	_, hasItem, err := w.ItemAt(p.Location())
	require.NoError(t, err)
	assert.False(t, hasItem)
}

func TestNewWorld_Deterministic(t *testing.T) {
	for _, size := range []int{1, 2, 7, 32} {
		a, err := NewWorld(42, size, "a")
		require.NoError(t, err)
		b, err := NewWorld(42, size, "a")
		require.NoError(t, err)

		assert.Equal(t, a.Digest(), b.Digest(), "size=%d", size)
		assert.Equal(t, a.BlockCount(), b.BlockCount())
		assert.Equal(t, a.ItemCount(), b.ItemCount())
		assert.Equal(t, a.CreatureCount(), b.CreatureCount())
		assert.Equal(t, a.heights.cells, b.heights.cells)
	}

	a := newTestWorld(t, 32)
	c, err := NewWorld(2, 32, "test")
	require.NoError(t, err)
	assert.NotEqual(t, a.Digest(), c.Digest(), "разные сиды дают разные миры")
}

func TestGeneratedWorldKeepsOneMapPerCell(t *testing.T) {
	w := newTestWorld(t, 64)
	assert.Greater(t, w.BlockCount(), 0)
	assertOneMapPerCell(t, w)
}

func TestLookupsRejectForeignLocations(t *testing.T) {
	w := newTestWorld(t, 4)
	other := newTestWorld(t, 4)

	for _, loc := range []Location{NewLocation(nil, 0, 0, 0), NewLocation(other, 0, 0, 0)} {
		_, _, err := w.BlockAt(loc)
		assert.ErrorIs(t, err, ErrBadLocation)
		_, _, err = w.CreatureAt(loc)
		assert.ErrorIs(t, err, ErrBadLocation)
		_, _, err = w.ItemAt(loc)
		assert.ErrorIs(t, err, ErrBadLocation)
		_, err = w.HighestLocationAt(loc)
		assert.ErrorIs(t, err, ErrBadLocation)
		assert.ErrorIs(t, w.DestroyBlock(loc), ErrBadLocation)
		_, err = w.KillCreature(loc)
		assert.ErrorIs(t, err, ErrBadLocation)
		_, err = w.RemoveItemAt(loc)
		assert.ErrorIs(t, err, ErrBadLocation)
		_, err = w.NeighborhoodString(loc)
		assert.ErrorIs(t, err, ErrBadLocation)
	}

	_, err := w.HighestLocationAt(NewLocation(w, 10, 0, 0))
	assert.ErrorIs(t, err, ErrBadLocation, "столбец вне мира")
}

func TestAddAndDestroyBlock(t *testing.T) {
	w := newTestWorld(t, 4)
	loc := sky(w)
	stone := solidWithDrop(t, Stone)

	require.NoError(t, w.AddBlock(loc, stone))
	b, ok, err := w.BlockAt(loc)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, b.Equals(stone))

	highest, err := w.HighestLocationAt(loc)
	require.NoError(t, err)
	assert.Equal(t, 200.0, highest.Y, "высота поднимается до нового блока")

	require.NoError(t, w.DestroyBlock(loc))
	_, ok, _ = w.BlockAt(loc)
	assert.False(t, ok)

	item, ok, err := w.ItemAt(loc)
	require.NoError(t, err)
	require.True(t, ok, "твёрдый блок оставляет предмет")
	assert.Equal(t, Stone, item.Material())

	highest, _ = w.HighestLocationAt(loc)
	assert.Equal(t, 199.0, highest.Y)

	assert.ErrorIs(t, w.DestroyBlock(loc), ErrBadLocation, "повторное разрушение должно завершиться ошибкой")
	assertOneMapPerCell(t, w)
}

func TestDestroyBlockBelowSurfaceKeepsHeight(t *testing.T) {
	w := newTestWorld(t, 4)
	column := NewLocation(w, 1, 0, 1)
	surface, err := w.HighestLocationAt(column)
	require.NoError(t, err)
	require.Greater(t, surface.Y, 3.0)

	below := NewLocation(w, 1, surface.Y-3, 1)
	water, err := NewLiquidBlock(Water)
	require.NoError(t, err)
	require.NoError(t, w.AddBlock(below, water))
	require.NoError(t, w.DestroyBlock(below))

	highest, err := w.HighestLocationAt(column)
	require.NoError(t, err)
	assert.Equal(t, surface.Y, highest.Y, "разрушение под поверхностью не меняет высоту столбца")
}

func TestDestroyBlockWithoutDrop(t *testing.T) {
	w := newTestWorld(t, 4)
	loc := sky(w)

	water, err := NewLiquidBlock(Water)
	require.NoError(t, err)
	require.NoError(t, w.AddBlock(loc, water))
	require.NoError(t, w.DestroyBlock(loc))

	_, ok, _ := w.ItemAt(loc)
	assert.False(t, ok, "жидкость ничего не оставляет")
}

func TestDestroyBlockBottomLayer(t *testing.T) {
	w := newTestWorld(t, 4)
	bottom := NewLocation(w, 1, 0, 1)

	_, ok, err := w.BlockAt(bottom)
	require.NoError(t, err)
	require.True(t, ok)
	assert.ErrorIs(t, w.DestroyBlock(bottom), ErrBadLocation)
}

func TestAddBlockRules(t *testing.T) {
	w := newTestWorld(t, 4)
	stone := solidWithDrop(t, Stone)

	assert.ErrorIs(t, w.AddBlock(w.Player().Location(), stone), ErrBadLocation, "нельзя ставить блок в игрока")
	assert.ErrorIs(t, w.AddBlock(NewLocation(w, 3, 100, 0), stone), ErrBadLocation, "вне мира")
	assert.ErrorIs(t, w.AddBlock(NewLocation(nil, 0, 100, 0), stone), ErrBadLocation)

	loc := sky(w)
	apple, _ := NewItemStack(Apple, 2)
	require.NoError(t, w.AddItem(loc, apple))
	require.NoError(t, w.AddBlock(loc, stone))
	_, ok, _ := w.ItemAt(loc)
	assert.False(t, ok, "блок вытесняет предмет")

	below := NewLocation(w, 1, 150, 1)
	require.NoError(t, w.AddBlock(below, stone))
	highest, _ := w.HighestLocationAt(below)
	assert.Equal(t, 200.0, highest.Y, "блок ниже поверхности не меняет высоту")
	assertOneMapPerCell(t, w)
}

func TestAddItemAndCreature(t *testing.T) {
	w := newTestWorld(t, 4)
	loc := sky(w)
	bread, _ := NewItemStack(Bread, 3)

	require.NoError(t, w.AddItem(loc, bread))
	got, ok, err := w.ItemAt(loc)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, bread, got)

	monster := NewMonster(loc, 5)
	require.NoError(t, w.AddCreature(monster))
	_, ok, _ = w.ItemAt(loc)
	assert.False(t, ok, "существо вытесняет предмет")

	c, ok, err := w.CreatureAt(loc)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Same(t, monster, c)

	assert.ErrorIs(t, w.AddItem(loc, bread), ErrBadLocation, "клетка занята существом")
	assert.ErrorIs(t, w.AddCreature(NewAnimal(loc, 3)), ErrBadLocation)

	water, _ := NewLiquidBlock(Water)
	wet := NewLocation(w, 2, 200, 2)
	require.NoError(t, w.AddBlock(wet, water))
	assert.ErrorIs(t, w.AddItem(wet, bread), ErrBadLocation)
	assert.ErrorIs(t, w.AddCreature(NewAnimal(wet, 3)), ErrBadLocation)

	killed, err := w.KillCreature(loc)
	require.NoError(t, err)
	assert.Same(t, monster, killed)
	_, err = w.KillCreature(loc)
	assert.ErrorIs(t, err, ErrBadLocation)

	_, err = w.RemoveItemAt(loc)
	assert.ErrorIs(t, err, ErrBadLocation)
	assertOneMapPerCell(t, w)
}

func TestRemoveItemAt(t *testing.T) {
	w := newTestWorld(t, 4)
	loc := sky(w)
	beef, _ := NewItemStack(Beef, 1)
	require.NoError(t, w.AddItem(loc, beef))

	removed, err := w.RemoveItemAt(loc)
	require.NoError(t, err)
	assert.Equal(t, beef, removed)
	_, ok, _ := w.ItemAt(loc)
	assert.False(t, ok)
}

func TestNearbyCreatures(t *testing.T) {
	w := newTestWorld(t, 4)
	center := sky(w)

	first := NewMonster(NewLocation(w, 0, 201, 0), 5)
	second := NewAnimal(NewLocation(w, 2, 199, 2), 5)
	far := NewAnimal(NewLocation(w, 2, 210, 2), 5)
	require.NoError(t, w.AddCreature(second))
	require.NoError(t, w.AddCreature(first))
	require.NoError(t, w.AddCreature(far))

	nearby, err := w.NearbyCreatures(center)
	require.NoError(t, err)
	require.Len(t, nearby, 2)
	assert.Same(t, first, nearby[0], "порядок обхода окрестности")
	assert.Same(t, second, nearby[1])
}

func TestNeighborhoodString(t *testing.T) {
	w := newTestWorld(t, 1)
	p := w.Player()

	s, err := w.NeighborhoodString(p.Location())
	require.NoError(t, err)
	require.Len(t, s, 35)

	layers := []string{s[0:11], s[12:23], s[24:35]}
	assert.Equal(t, "XXX XXX XXX", layers[0], "в мире размера 1 соседние слои вне мира")
	assert.Equal(t, "XXX XXX XXX", layers[2])
	assert.Equal(t, byte('\n'), s[11])
	assert.Equal(t, byte('\n'), s[23])
	assert.Equal(t, byte('P'), s[17])
	assert.Equal(t, byte('X'), s[16])
	assert.Equal(t, byte('X'), s[18])

	below, ok, _ := w.BlockAt(NewLocation(w, 0, p.Location().Y-1, 0))
	require.True(t, ok)
	assert.Equal(t, byte(below.Symbol()), s[21])
}

func TestNeighborhoodStringPriority(t *testing.T) {
	w := newTestWorld(t, 4)
	center := sky(w)

	stone := solidWithDrop(t, Stone)
	require.NoError(t, w.AddBlock(NewLocation(w, 0, 201, 0), stone))
	apple, _ := NewItemStack(Apple, 1)
	require.NoError(t, w.AddItem(NewLocation(w, 1, 201, 0), apple))
	require.NoError(t, w.AddCreature(NewMonster(NewLocation(w, 2, 201, 0), 5)))
	chest, err := NewSolidBlock(Chest)
	require.NoError(t, err)
	require.NoError(t, w.AddBlock(NewLocation(w, 0, 200, 0), chest))

	s, err := w.NeighborhoodString(center)
	require.NoError(t, err)
	assert.Equal(t, "sAM c.. ...", s[0:11])
}

func TestWorldEvents(t *testing.T) {
	var events []Event
	w := newTestWorld(t, 4, WithEventListener(func(e Event) {
		events = append(events, e)
	}))
	assert.Empty(t, events, "генерация не публикует события")

	loc := sky(w)
	require.NoError(t, w.AddBlock(loc, solidWithDrop(t, Dirt)))
	require.NoError(t, w.DestroyBlock(loc))
	_, err := w.RemoveItemAt(loc)
	require.NoError(t, err)

	var types []EventType
	for _, e := range events {
		types = append(types, e.GetType())
	}
	assert.Equal(t, []EventType{
		EventTypeBlockPlaced,
		EventTypeBlockDestroyed,
		EventTypeItemDropped,
		EventTypeItemRemoved,
	}, types)
}

func TestWorldMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	w := newTestWorld(t, 8, WithMetrics(m))

	assert.Equal(t, float64(w.BlockCount()), testutil.ToFloat64(m.blocks))
	assert.Equal(t, float64(w.CreatureCount()), testutil.ToFloat64(m.creatures))

	require.NoError(t, w.AddBlock(sky(w), solidWithDrop(t, Stone)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.mutations.WithLabelValues("add_block")))
	assert.Equal(t, float64(w.BlockCount()), testutil.ToFloat64(m.blocks))

	require.NoError(t, w.DestroyBlock(sky(w)))
	assert.Equal(t, float64(w.BlockCount()), testutil.ToFloat64(m.blocks))
	assert.Equal(t, float64(w.ItemCount()), testutil.ToFloat64(m.items), "выпавший предмет учтён сразу")

	var nilMetrics *Metrics
	assert.NotPanics(t, func() { nilMetrics.mutation("noop") })
}
