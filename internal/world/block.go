package world

import (
	"fmt"
	"unicode"
)

// BlockKind вариант блока
type BlockKind uint8

const (
	SolidKind BlockKind = iota
	LiquidKind
)

func (k BlockKind) String() string {
	if k == LiquidKind {
		return "liquid"
	}
	return "solid"
}

// Block представляет собой блок в игровом мире.
// Значение неизменяемо: копирование Block даёт независимую копию,
// а выпадающий предмет задаётся только при создании (WithDrops).
type Block struct {
	material Material
	kind     BlockKind
	drops    *ItemStack // только у твёрдых блоков, никогда не изменяется после создания
}

// NewSolidBlock создаёт твёрдый блок без выпадающего предмета
func NewSolidBlock(m Material) (Block, error) {
	if !m.IsBlock() || m.IsLiquid() {
		return Block{}, &WrongMaterialError{Material: m}
	}
	return Block{material: m, kind: SolidKind}, nil
}

// NewLiquidBlock создаёт жидкий блок
func NewLiquidBlock(m Material) (Block, error) {
	if !m.IsLiquid() {
		return Block{}, &WrongMaterialError{Material: m}
	}
	return Block{material: m, kind: LiquidKind}, nil
}

// NewBlock выбирает вариант блока по материалу
func NewBlock(m Material) (Block, error) {
	if m.IsLiquid() {
		return NewLiquidBlock(m)
	}
	return NewSolidBlock(m)
}

// WithDrops возвращает копию твёрдого блока с выпадающим предметом.
// Количество должно быть 1, кроме сундука (1..64).
func (b Block) WithDrops(m Material, amount int) (Block, error) {
	if b.kind != SolidKind {
		return Block{}, &WrongMaterialError{Material: b.material}
	}

	stack, err := NewItemStack(m, amount)
	if err != nil {
		return Block{}, err
	}
	if b.material != Chest && amount != 1 {
		return Block{}, fmt.Errorf("%w: %s can only drop one item", ErrStackSize, b.material)
	}

	b.drops = &stack
	return b, nil
}

func (b Block) Material() Material {
	return b.material
}

func (b Block) Kind() BlockKind {
	return b.kind
}

func (b Block) IsLiquid() bool {
	return b.kind == LiquidKind
}

func (b Block) IsSolid() bool {
	return b.kind == SolidKind
}

// Drops возвращает копию выпадающего предмета
func (b Block) Drops() (ItemStack, bool) {
	if b.drops == nil {
		return ItemStack{}, false
	}
	return *b.drops, true
}

// Damage урон, который жидкость наносит вошедшему в неё
func (b Block) Damage() float64 {
	if b.kind != LiquidKind {
		return 0
	}
	return b.material.Value()
}

// Breaks проверяет, разрушает ли урон dmg этот блок
func (b Block) Breaks(dmg float64) bool {
	return dmg >= b.material.Value()
}

// Symbol строчный символ блока для отображения окрестности
func (b Block) Symbol() rune {
	return unicode.ToLower(b.material.Symbol())
}

// Equals сравнивает блоки по значению, включая выпадающий предмет
func (b Block) Equals(other Block) bool {
	if b.material != other.material || b.kind != other.kind {
		return false
	}
	if (b.drops == nil) != (other.drops == nil) {
		return false
	}
	return b.drops == nil || *b.drops == *other.drops
}

func (b Block) String() string {
	return "[" + b.material.String() + "]"
}
