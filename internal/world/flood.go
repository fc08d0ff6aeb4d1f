package world

// FloodNeighborhood соседи, в которые может растечься жидкость из loc:
// не выше loc и без блока.
func (w *World) FloodNeighborhood(loc Location) ([]Location, error) {
	if err := w.checkWorld(loc); err != nil {
		return nil, err
	}

	var out []Location
	for _, n := range loc.Neighborhood() {
		if n.Y > loc.Y {
			continue
		}
		if _, ok := w.blocks[n.key()]; ok {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}

// floodFill заполняет жидкостью m пустую область от клетки from.
// Предметы и существа в залитых клетках исчезают.
// Используется явный стек: заполненная клетка получает блок и больше не
// проходит проверку, поэтому каждая клетка заполняется один раз.
// Возвращает число заполненных клеток.
func (w *World) floodFill(m Material, from Location) (int, error) {
	liquid, err := NewLiquidBlock(m)
	if err != nil {
		return 0, err
	}

	filled := 0
	stack := []Location{from}
	for len(stack) > 0 {
		loc := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		k := loc.key()
		if _, ok := w.blocks[k]; ok {
			continue
		}
		w.blocks[k] = liquid
		delete(w.items, k)
		delete(w.creatures, k)
		filled++

		next, err := w.FloodNeighborhood(loc)
		if err != nil {
			return filled, err
		}
		stack = append(stack, next...)
	}
	return filled, nil
}
