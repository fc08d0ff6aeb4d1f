package world

import (
	"fmt"
)

// MaxStackSize максимальное количество предметов в стопке
const MaxStackSize = 64

// ItemStack стопка предметов одного материала
type ItemStack struct {
	material Material
	amount   int
}

// NewItemStack создаёт стопку, проверяя количество
func NewItemStack(m Material, amount int) (ItemStack, error) {
	if !m.Valid() {
		return ItemStack{}, &WrongMaterialError{Material: m}
	}
	if !CheckAmount(m, amount) {
		return ItemStack{}, fmt.Errorf("%w: %s x%d", ErrStackSize, m, amount)
	}
	return ItemStack{material: m, amount: amount}, nil
}

// CheckAmount проверяет, допустимо ли количество для материала:
// 1..64, а для инструментов и оружия ровно 1.
func CheckAmount(m Material, amount int) bool {
	if amount < 1 || amount > MaxStackSize {
		return false
	}
	if (m.IsTool() || m.IsWeapon()) && amount != 1 {
		return false
	}
	return true
}

func (s ItemStack) Material() Material {
	return s.material
}

func (s ItemStack) Amount() int {
	return s.amount
}

// SetAmount меняет количество, сохраняя инварианты стопки
func (s *ItemStack) SetAmount(n int) error {
	if !CheckAmount(s.material, n) {
		return fmt.Errorf("%w: %s x%d", ErrStackSize, s.material, n)
	}
	s.amount = n
	return nil
}

func (s ItemStack) String() string {
	return fmt.Sprintf("(%s,%d)", s.material, s.amount)
}
