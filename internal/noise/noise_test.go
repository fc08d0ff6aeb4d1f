package noise

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOctaveGeneratorDeterministic(t *testing.T) {
	a := NewOctaveGenerator(42, 6)
	b := NewOctaveGenerator(42, 6)

	for x := 0; x < 16; x++ {
		for z := 0; z < 16; z++ {
			va := a.Noise(float64(x), float64(z), 0.5, 2.0)
			vb := b.Noise(float64(x), float64(z), 0.5, 2.0)
			require.Equal(t, va, vb, "Шум должен совпадать для одинакового сида (%d,%d)", x, z)
		}
	}
}

func TestOctaveGeneratorSeedMatters(t *testing.T) {
	a := NewOctaveGenerator(1, 4)
	b := NewOctaveGenerator(2, 4)

	differs := false
	for x := 0; x < 32 && !differs; x++ {
		if a.Noise(float64(x), 3, 0.5, 2.0) != b.Noise(float64(x), 3, 0.5, 2.0) {
			differs = true
		}
	}
	assert.True(t, differs, "Разные сиды должны давать разный шум")
}

func TestOctaveGeneratorIntegerCoordinatesNotFlat(t *testing.T) {
	g := NewOctaveGenerator(7, 1)

	nonZero := 0
	for x := 0; x < 10; x++ {
		if g.Noise(float64(x), float64(x), 1, 1) != 0 {
			nonZero++
		}
	}
	assert.Greater(t, nonZero, 0, "Сдвиг октавы должен уводить целые координаты с узлов решётки")
}

func TestOctaveGeneratorMinimumOctaves(t *testing.T) {
	g := NewOctaveGenerator(5, 0)
	assert.Equal(t, 1, g.Octaves())
}

func TestNoise3DDeterministic(t *testing.T) {
	a := NewOctaveGenerator(99, 3)
	b := NewOctaveGenerator(99, 3)

	assert.Equal(t, a.Noise3D(1.5, 2.5, 3.5, 0.5, 2), b.Noise3D(1.5, 2.5, 3.5, 0.5, 2))
}

func TestCombinedGeneratorDeterministic(t *testing.T) {
	a := NewCombinedGenerator(1234)
	b := NewCombinedGenerator(1234)

	for i := 0; i < 20; i++ {
		x, z := float64(i)*1.3, float64(i*2)*1.3
		assert.Equal(t, a.Noise(x, z), b.Noise(x, z))
	}
}
