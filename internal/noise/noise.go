package noise

import (
	"math/rand"

	"github.com/aquilax/go-perlin"
)

// Параметры одиночной октавы go-perlin. Суммирование октав делаем сами,
// чтобы частота и амплитуда задавались при каждом вызове.
const (
	perlinAlpha = 2.0
	perlinBeta  = 2.0
	perlinN     = int32(1)

	// Разброс случайного сдвига октавы: уводит целые координаты мира
	// с узлов решётки, где шум Перлина всегда равен нулю.
	offsetRange = 256.0
)

// octave одна октава шума Перлина со своим случайным сдвигом
type octave struct {
	perlin     *perlin.Perlin
	ox, oy, oz float64
}

func newOctave(rng *rand.Rand) octave {
	return octave{
		perlin: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinN, rng.Int63()),
		ox:     rng.Float64() * offsetRange,
		oy:     rng.Float64() * offsetRange,
		oz:     rng.Float64() * offsetRange,
	}
}

// OctaveGenerator суммирует несколько октав шума Перлина.
// Результат детерминирован для одинакового сида и числа октав.
type OctaveGenerator struct {
	octaves []octave
}

// NewOctaveGenerator создаёт генератор с указанным числом октав
func NewOctaveGenerator(seed int64, octaves int) *OctaveGenerator {
	if octaves < 1 {
		octaves = 1
	}

	rng := rand.New(rand.NewSource(seed))
	g := &OctaveGenerator{octaves: make([]octave, octaves)}
	for i := range g.octaves {
		g.octaves[i] = newOctave(rng)
	}
	return g
}

// Octaves возвращает число октав генератора
func (g *OctaveGenerator) Octaves() int {
	return len(g.octaves)
}

// Noise возвращает двумерный октавный шум. Каждая следующая октава
// умножает частоту на frequency, а амплитуду на amplitude.
func (g *OctaveGenerator) Noise(x, z, frequency, amplitude float64) float64 {
	result := 0.0
	freq := 1.0
	amp := 1.0

	for _, o := range g.octaves {
		result += o.perlin.Noise2D(x*freq+o.ox, z*freq+o.oz) * amp
		freq *= frequency
		amp *= amplitude
	}

	return result
}

// Noise3D возвращает трёхмерный октавный шум
func (g *OctaveGenerator) Noise3D(x, y, z, frequency, amplitude float64) float64 {
	result := 0.0
	freq := 1.0
	amp := 1.0

	for _, o := range g.octaves {
		result += o.perlin.Noise3D(x*freq+o.ox, y*freq+o.oy, z*freq+o.oz) * amp
		freq *= frequency
		amp *= amplitude
	}

	return result
}

// CombinedGenerator искажает координату X одного октавного шума значением другого:
// noise(x, z) = first(x + second(x, z), z). Даёт крупные неровные формы рельефа.
type CombinedGenerator struct {
	first  *OctaveGenerator
	second *OctaveGenerator
}

// combinedOctaves число октав каждой из составляющих
const combinedOctaves = 8

// NewCombinedGenerator создаёт комбинированный генератор, обе составляющие
// получают собственные сиды из seed.
func NewCombinedGenerator(seed int64) *CombinedGenerator {
	rng := rand.New(rand.NewSource(seed))
	return &CombinedGenerator{
		first:  NewOctaveGenerator(rng.Int63(), combinedOctaves),
		second: NewOctaveGenerator(rng.Int63(), combinedOctaves),
	}
}

// Noise возвращает значение комбинированного шума. Октавы складываются с
// удвоением амплитуды и уменьшением частоты вдвое.
func (c *CombinedGenerator) Noise(x, z float64) float64 {
	offset := c.second.Noise(x, z, 0.5, 2.0)
	return c.first.Noise(x+offset, z, 0.5, 2.0)
}
