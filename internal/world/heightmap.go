package world

// heightMap плотная сетка size×size высот поверхности.
// Индекс столбца: мировая координата минус отрицательная граница мира.
type heightMap struct {
	size     int
	negative int
	cells    []float64
}

func newHeightMap(size int) *heightMap {
	negative, _ := Bounds(size)
	return &heightMap{
		size:     size,
		negative: negative,
		cells:    make([]float64, size*size),
	}
}

func (h *heightMap) index(x, z float64) int {
	return (int(x)-h.negative)*h.size + (int(z) - h.negative)
}

// get высота по мировым координатам
func (h *heightMap) get(x, z float64) float64 {
	return h.cells[h.index(x, z)]
}

// set высота по мировым координатам
func (h *heightMap) set(x, z, y float64) {
	h.cells[h.index(x, z)] = y
}

// at высота по индексам сетки [0, size)
func (h *heightMap) at(i, j int) float64 {
	return h.cells[i*h.size+j]
}

func (h *heightMap) put(i, j int, y float64) {
	h.cells[i*h.size+j] = y
}
