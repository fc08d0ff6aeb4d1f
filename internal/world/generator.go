package world

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/annel0/blockworld/internal/noise"
)

// Параметры рельефа
const (
	heightNoiseScale  = 1.3 // Растяжение координат для шума высот
	selectorOctaves   = 6   // Октавы шума-переключателя низин и возвышенностей
	strataOctaves     = 8   // Октавы шума толщины слоя земли
	surfaceOctaves    = 8   // Октавы шума песка на поверхности
	sandThreshold     = 8.0 // Выше - песок, ниже - трава
	dropChance        = 0.5 // Шанс, что блок рельефа содержит свой предмет
	negativeHeightDim = 0.8 // Сглаживание впадин ниже уровня моря
)

// Параметры пещер и жил
const (
	caveDivisor      = 8192
	veinDivisor      = 16384
	caveMaxLength    = 200.0
	veinMaxLength    = 75.0
	caveCarveChance  = 0.25 // Пропуск вырезания на шаге с вероятностью 0.25
	cavePhiDamping   = 0.75
	veinPhiDamping   = 0.9
	thetaDamping     = 0.9
	centerJitter     = 0.2
	caveBaseRadius   = 1.2
	caveDepthRadius  = 3.5
	granitePrevalent = 0.5
	obsidianRarity   = 0.3
)

// Параметры жидкостей и населения поверхности
const (
	waterSourceDivisor = 800
	lavaSourceDivisor  = 2000
	creatureChance     = 0.05
	monsterChance      = 0.75
	itemsChance        = 0.10
	foodChance         = 0.8
	toolChance         = 0.1
	maxFoodStack       = 5
)

// Этапы генерации для логов, метрик и обработчика прогресса
const (
	StageHeightMap = "heightmap"
	StageStrata    = "strata"
	StageCaves     = "caves"
	StageVeins     = "veins"
	StageWater     = "water"
	StageLava      = "lava"
	StageSurface   = "surface"
	StagePlayer    = "player"
)

// generator заполняет мир. Все этапы берут случайные числа из одного
// потока rng строго по порядку, поэтому мир воспроизводим по сиду.
type generator struct {
	w        *World
	rng      *rand.Rand
	size     int
	negative int
}

// mustGenerate нарушение контракта во время генерации фатально
func mustGenerate(err error) {
	if err != nil {
		panic(fmt.Sprintf("world generation: %v", err))
	}
}

func (w *World) generate(rng *rand.Rand) {
	negative, _ := Bounds(w.size)
	g := &generator{w: w, rng: rng, size: w.size, negative: negative}

	started := time.Now()
	w.log.Info("Generating world %q (seed=%d, size=%d)", w.name, w.seed, w.size)

	g.stage(StageHeightMap, g.heightMap)
	g.stage(StageStrata, g.strata)
	g.stage(StageCaves, g.caves)
	g.stage(StageVeins, g.veins)
	g.stage(StageWater, g.water)
	g.stage(StageLava, g.lava)
	g.stage(StageSurface, g.surface)
	g.stage(StagePlayer, g.spawnPlayer)

	w.metrics.setCounts(len(w.blocks), len(w.items), len(w.creatures))
	w.log.Info("World %q generated in %v: %d blocks, %d items, %d creatures",
		w.name, time.Since(started), len(w.blocks), len(w.items), len(w.creatures))
}

func (g *generator) stage(name string, fn func()) {
	started := time.Now()
	g.w.log.Debug("Generation stage %s started", name)
	fn()
	g.w.metrics.observeStage(name, started)
	g.w.log.Debug("Generation stage %s finished in %v", name, time.Since(started))
}

func (g *generator) report(stage string, done, total int) {
	if g.w.progress != nil {
		g.w.progress(stage, done, total)
	}
}

// location позиция мира по индексам сетки [0, size)
func (g *generator) location(i int, y float64, j int) Location {
	return NewLocation(g.w, float64(i+g.negative), y, float64(j+g.negative))
}

// solid твёрдый блок рельефа, с вероятностью dropChance содержит свой материал
func (g *generator) solid(m Material) Block {
	b, err := NewSolidBlock(m)
	mustGenerate(err)
	if g.rng.Float64() < dropChance {
		b, err = b.WithDrops(m, 1)
		mustGenerate(err)
	}
	return b
}

// heightMap шаг 1: высоты поверхности
func (g *generator) heightMap() {
	low := noise.NewCombinedGenerator(g.rng.Int63())
	high := noise.NewCombinedGenerator(g.rng.Int63())
	selector := noise.NewOctaveGenerator(g.rng.Int63(), selectorOctaves)

	for i := 0; i < g.size; i++ {
		for j := 0; j < g.size; j++ {
			x, z := float64(i), float64(j)

			heightLow := low.Noise(x*heightNoiseScale, z*heightNoiseScale)/6.0 - 4.0
			heightHigh := high.Noise(x*heightNoiseScale, z*heightNoiseScale)/5.0 + 6.0

			var h float64
			if selector.Noise(x, z, 0.5, 2.0)/8.0 > 0.0 {
				h = heightLow
			} else {
				h = math.Max(heightHigh, heightLow)
			}
			h /= 2.0
			if h < 0.0 {
				h *= negativeHeightDim
			}

			// Над поверхностью всегда остаётся клетка для существ и предметов
			y := math.Floor(h + SeaLevel)
			y = math.Max(0, math.Min(y, UpperY-1))
			g.w.heights.put(i, j, y)
		}
		g.report(StageHeightMap, i+1, g.size)
	}
}

// strata шаг 2: бедрок, камень и земля до поверхности
func (g *generator) strata() {
	dirt := noise.NewOctaveGenerator(g.rng.Int63(), strataOctaves)

	for i := 0; i < g.size; i++ {
		for j := 0; j < g.size; j++ {
			dirtThickness := dirt.Noise(float64(i), float64(j), 0.5, 2.0)/24 - 4
			surface := g.w.heights.at(i, j)
			stoneTransition := surface + dirtThickness

			for y := 0; float64(y) <= surface; y++ {
				var m Material
				switch {
				case y == 0:
					m = Bedrock
				case float64(y) <= stoneTransition:
					m = Stone
				default:
					m = Dirt
				}
				g.w.blocks[g.location(i, float64(y), j).key()] = g.solid(m)
			}
		}
		g.report(StageStrata, i+1, g.size)
	}
}

// caves шаг 3: извилистые туннели, вырезающие блоки
func (g *generator) caves() {
	total := g.size * g.size * 256 / caveDivisor
	g.w.log.Debug("Carving %d caves", total)

	for c := 0; c < total; c++ {
		wk := g.newWalker(cavePhiDamping)
		length := g.rng.Float64() * g.rng.Float64() * caveMaxLength
		wk.start(g.rng)
		caveRadius := g.rng.Float64() * g.rng.Float64()

		for i := 1; i <= int(length); i++ {
			wk.step(g.rng)
			if g.rng.Float64() < caveCarveChance {
				continue
			}

			cx := wk.x + (g.rng.Float64()*4.0-2.0)*centerJitter
			cy := wk.y + (g.rng.Float64()*4.0-2.0)*centerJitter
			cz := wk.z + (g.rng.Float64()*4.0-2.0)*centerJitter

			radius := (UpperY - cy) / UpperY
			radius = caveBaseRadius + (radius*caveDepthRadius+1)*caveRadius
			radius *= math.Sin(float64(i) * math.Pi / length)

			g.carve(cx, cy, cz, radius, nil)
		}
		g.report(StageCaves, c+1, total)
	}
}

// veins шаг 4: жилы гранита и обсидиана внутри существующих блоков
func (g *generator) veins() {
	ores := []struct {
		material  Material
		abundance float64
	}{
		{Granite, granitePrevalent},
		{Obsidian, obsidianRarity},
	}

	for _, ore := range ores {
		total := int(float64(g.size*g.size*256)*ore.abundance) / veinDivisor
		g.w.log.Debug("Placing %d veins of %s", total, ore.material)

		vein, err := NewSolidBlock(ore.material)
		mustGenerate(err)
		vein, err = vein.WithDrops(ore.material, 1)
		mustGenerate(err)

		for v := 0; v < total; v++ {
			wk := g.newWalker(veinPhiDamping)
			length := g.rng.Float64() * g.rng.Float64() * veinMaxLength * ore.abundance
			wk.start(g.rng)

			for n := 0; n < int(length); n++ {
				wk.step(g.rng)
				radius := ore.abundance*math.Sin(float64(n)*math.Pi/length) + 1
				g.carve(wk.x, wk.y, wk.z, radius, &vein)
			}
			g.report(StageVeins, v+1, total)
		}
	}
}

// water шаг 5: подземные источники воды
func (g *generator) water() {
	total := g.size * g.size / waterSourceDivisor
	for s := 0; s < total; s++ {
		x := g.rng.Intn(g.size) + g.negative
		z := g.rng.Intn(g.size) + g.negative
		y := int(SeaLevel) - 1 - g.rng.Intn(2)
		g.flood(Water, NewLocation(g.w, float64(x), float64(y), float64(z)))
		g.report(StageWater, s+1, total)
	}
}

// lava шаг 5: лавовые озёра на глубине
func (g *generator) lava() {
	total := g.size * g.size / lavaSourceDivisor
	for s := 0; s < total; s++ {
		x := g.rng.Intn(g.size) + g.negative
		z := g.rng.Intn(g.size) + g.negative
		y := int((SeaLevel - 3) * g.rng.Float64() * g.rng.Float64())
		g.flood(Lava, NewLocation(g.w, float64(x), float64(y), float64(z)))
		g.report(StageLava, s+1, total)
	}
}

func (g *generator) flood(m Material, from Location) {
	filled, err := g.w.floodFill(m, from)
	mustGenerate(err)
	g.w.log.Trace("%s source at %s filled %d cells", m, from, filled)
}

// surface шаг 6: песок или трава сверху, существа и предметы над поверхностью
func (g *generator) surface() {
	sand := noise.NewOctaveGenerator(g.rng.Int63(), surfaceOctaves)

	for i := 0; i < g.size; i++ {
		for j := 0; j < g.size; j++ {
			m := Grass
			if sand.Noise(float64(i), float64(j), 0.5, 2.0) > sandThreshold {
				m = Sand
			}

			top := g.location(i, g.w.heights.at(i, j), j)
			g.w.blocks[top.key()] = g.solid(m)

			above, err := top.Above()
			mustGenerate(err)
			g.populate(above)
		}
		g.report(StageSurface, i+1, g.size)
	}
}

// populate с вероятностью ставит существо или стопку предметов в клетку.
// Случайные числа расходуются одинаково, даже если клетку занимает жидкость.
func (g *generator) populate(loc Location) {
	k := loc.key()
	_, occupied := g.w.blocks[k]

	if g.rng.Float64() < creatureChance {
		health := float64(g.rng.Intn(int(MaxHealth)) + 1)
		var c *Creature
		if g.rng.Float64() < monsterChance {
			c = NewMonster(loc, health)
		} else {
			c = NewAnimal(loc, health)
		}
		if !occupied {
			g.w.creatures[k] = c
		}
		return
	}

	if g.rng.Float64() >= itemsChance {
		return
	}

	var m Material
	amount := 1
	r := g.rng.Float64()
	switch {
	case r < foodChance:
		m = RandomMaterial(g.rng, WaterBucket, Beef)
		amount = g.rng.Intn(maxFoodStack) + 1
	case r < foodChance+toolChance:
		m = RandomMaterial(g.rng, IronShovel, IronPickaxe)
	default:
		m = RandomMaterial(g.rng, WoodSword, IronSword)
	}

	stack, err := NewItemStack(m, amount)
	mustGenerate(err)
	if !occupied {
		g.w.items[k] = stack
	}
}

// spawnPlayer шаг 7: игрок над поверхностью в (0,*,0), клетка освобождается
func (g *generator) spawnPlayer() {
	p, err := newPlayer(DefaultPlayerName, g.w)
	mustGenerate(err)

	k := p.location.key()
	delete(g.w.creatures, k)
	delete(g.w.items, k)
	g.w.player = p
	g.w.log.Debug("Player %s spawned at %s", p.name, p.location)
}
