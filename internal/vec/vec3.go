package vec

// Vec3 представляет трехмерный вектор с целочисленными координатами
type Vec3 struct {
	X int
	Y int
	Z int
}

// Zero нулевое смещение
var Zero = Vec3{}

// Equals проверяет равенство векторов
func (v Vec3) Equals(other Vec3) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z
}

// Add складывает два вектора
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
	}
}

// IsZero возвращает true для нулевого вектора
func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// IsAdjacentStep проверяет, что вектор ведёт в одну из 26 соседних клеток
func (v Vec3) IsAdjacentStep() bool {
	if v.IsZero() {
		return false
	}
	return inUnitRange(v.X) && inUnitRange(v.Y) && inUnitRange(v.Z)
}

func inUnitRange(c int) bool {
	return c >= -1 && c <= 1
}

// neighborOffsets фиксированный порядок обхода окрестности:
// Z снаружи (-1..1), Y в середине (1..-1), X внутри (-1..1).
var neighborOffsets = buildNeighborOffsets(false)

// cubeOffsets тот же порядок, но вместе с центральной клеткой (для отрисовки 3x3x3)
var cubeOffsets = buildNeighborOffsets(true)

func buildNeighborOffsets(withCenter bool) []Vec3 {
	offsets := make([]Vec3, 0, 27)
	for z := -1; z <= 1; z++ {
		for y := 1; y >= -1; y-- {
			for x := -1; x <= 1; x++ {
				o := Vec3{X: x, Y: y, Z: z}
				if o.IsZero() && !withCenter {
					continue
				}
				offsets = append(offsets, o)
			}
		}
	}
	return offsets
}

// NeighborOffsets возвращает 26 смещений соседних клеток в порядке отображения.
// Возвращается копия, вызывающий может её изменять.
func NeighborOffsets() []Vec3 {
	out := make([]Vec3, len(neighborOffsets))
	copy(out, neighborOffsets)
	return out
}

// CubeOffsets возвращает 27 смещений куба 3x3x3 (включая центр) в порядке отображения.
func CubeOffsets() []Vec3 {
	out := make([]Vec3, len(cubeOffsets))
	copy(out, cubeOffsets)
	return out
}
