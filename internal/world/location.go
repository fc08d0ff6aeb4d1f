package world

import (
	"math"
	"strconv"

	"github.com/annel0/blockworld/internal/logging"
	"github.com/annel0/blockworld/internal/vec"
)

const (
	// UpperY максимальная высота
	UpperY = 255.0
	// SeaLevel уровень моря
	SeaLevel = 63.0
)

// Location адрес клетки мира. Позиция без мира (world == nil) проверяется
// только по высоте и всегда считается внутри границ по X и Z.
type Location struct {
	world   *World
	X, Y, Z float64
}

// NewLocation создаёт позицию в мире w (w может быть nil)
func NewLocation(w *World, x, y, z float64) Location {
	return Location{world: w, X: x, Y: y, Z: z}
}

// World возвращает мир позиции или nil
func (l Location) World() *World {
	return l.world
}

// WithWorld возвращает копию позиции, привязанную к миру w
func (l Location) WithWorld(w *World) Location {
	l.world = w
	return l
}

// cellKey ключ разреженных карт мира: побитовое представление координат
type cellKey struct {
	x, y, z uint64
}

func (l Location) key() cellKey {
	return cellKey{
		x: math.Float64bits(l.X),
		y: math.Float64bits(l.Y),
		z: math.Float64bits(l.Z),
	}
}

func (k cellKey) location(w *World) Location {
	return Location{
		world: w,
		X:     math.Float64frombits(k.x),
		Y:     math.Float64frombits(k.y),
		Z:     math.Float64frombits(k.z),
	}
}

// Equals позиции равны, если совпадает мир (указатель) и координаты побитово
func (l Location) Equals(other Location) bool {
	return l.world == other.world && l.key() == other.key()
}

// Offset возвращает позицию, сдвинутую на целочисленный вектор
func (l Location) Offset(o vec.Vec3) Location {
	return Location{
		world: l.world,
		X:     l.X + float64(o.X),
		Y:     l.Y + float64(o.Y),
		Z:     l.Z + float64(o.Z),
	}
}

// Neighborhood возвращает соседние позиции в порядке отображения
// (Z снаружи, Y сверху вниз, X внутри). Соседи вне мира отбрасываются,
// у позиции без мира возвращаются все 26.
func (l Location) Neighborhood() []Location {
	offsets := vec.NeighborOffsets()
	out := make([]Location, 0, len(offsets))
	for _, o := range offsets {
		n := l.Offset(o)
		if l.world == nil || CheckLocation(n) {
			out = append(out, n)
		}
	}
	return out
}

// Below возвращает позицию ниже. Ошибка на y=0 для позиции в мире.
func (l Location) Below() (Location, error) {
	if l.world != nil && l.Y == 0 {
		return Location{}, badLocation("no location below %s", l)
	}
	l.Y--
	return l, nil
}

// Above возвращает позицию выше. Ошибка на y=255 для позиции в мире.
func (l Location) Above() (Location, error) {
	if l.world != nil && l.Y == UpperY {
		return Location{}, badLocation("no location above %s", l)
	}
	l.Y++
	return l, nil
}

// IsFree позиция принадлежит миру, в границах, там нет игрока,
// твёрдого блока или существа. Жидкость не мешает.
func (l Location) IsFree() bool {
	w := l.world
	if w == nil {
		return false
	}
	if w.player != nil && w.player.location.Equals(l) {
		return false
	}
	if !CheckLocation(l) {
		return false
	}

	k := l.key()
	if b, ok := w.blocks[k]; ok {
		return b.IsLiquid()
	}
	if _, ok := w.creatures[k]; ok {
		return false
	}
	return true
}

// Distance расстояние между позициями одного мира.
// Для позиций без мира или из разных миров возвращает -1.
func (l Location) Distance(other Location) float64 {
	if l.world == nil || other.world == nil {
		logging.Warn("Cannot measure distance to a null world")
		return -1
	}
	if l.world != other.world {
		logging.Warn("Cannot measure distance between %s and %s", l.world.Name(), other.world.Name())
		return -1
	}

	dx := l.X - other.X
	dy := l.Y - other.Y
	dz := l.Z - other.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Length длина вектора позиции
func (l Location) Length() float64 {
	return math.Sqrt(l.X*l.X + l.Y*l.Y + l.Z*l.Z)
}

// Add складывает позиции одного мира. Для разных миров возвращает l без изменений.
func (l Location) Add(other Location) Location {
	if l.world != other.world {
		logging.Warn("Cannot add Locations of different worlds")
		return l
	}
	l.X += other.X
	l.Y += other.Y
	l.Z += other.Z
	return l
}

// Subtract вычитает позиции одного мира. Для разных миров возвращает l без изменений.
func (l Location) Subtract(other Location) Location {
	if l.world != other.world {
		logging.Warn("Cannot subtract Locations of different worlds")
		return l
	}
	l.X -= other.X
	l.Y -= other.Y
	l.Z -= other.Z
	return l
}

// Multiply умножает координаты на factor
func (l Location) Multiply(factor float64) Location {
	l.X *= factor
	l.Y *= factor
	l.Z *= factor
	return l
}

// Zero обнуляет координаты, мир сохраняется
func (l Location) Zero() Location {
	l.X, l.Y, l.Z = 0, 0, 0
	return l
}

func (l Location) String() string {
	name := "NULL"
	if l.world != nil {
		name = l.world.Name()
	}
	return "Location{world=" + name +
		",x=" + formatFloat(l.X) +
		",y=" + formatFloat(l.Y) +
		",z=" + formatFloat(l.Z) + "}"
}

// formatFloat печатает целые значения с ".0", остальные без лишних нулей
func formatFloat(f float64) string {
	if f == math.Trunc(f) && !math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'f', 1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Bounds границы мира по X и Z (включительно)
func Bounds(size int) (negative, positive int) {
	positive = size / 2
	if size%2 == 0 {
		negative = -(positive - 1)
	} else {
		negative = -positive
	}
	return negative, positive
}

// Check проверяет координаты для мира w: 0 <= y <= 255, а x и z в границах мира.
// Для w == nil проверяется только высота.
func Check(w *World, x, y, z float64) bool {
	// Диапазоны записаны положительно, чтобы NaN не проходил проверку
	if !(y >= 0 && y <= UpperY) {
		return false
	}
	if w == nil {
		return true
	}

	negative, positive := Bounds(w.size)
	neg, pos := float64(negative), float64(positive)
	return x >= neg && x <= pos && z >= neg && z <= pos
}

// CheckLocation проверяет позицию по правилам её мира
func CheckLocation(l Location) bool {
	return Check(l.world, l.X, l.Y, l.Z)
}
