package world

import (
	"strings"
)

// Inventory инвентарь игрока: список стопок и предмет в руке
type Inventory struct {
	inHand *ItemStack
	items  []ItemStack
}

// NewInventory создаёт пустой инвентарь
func NewInventory() *Inventory {
	return &Inventory{}
}

// Item возвращает стопку в слоте n
func (inv *Inventory) Item(n int) (ItemStack, bool) {
	if n < 0 || n >= len(inv.items) {
		return ItemStack{}, false
	}
	return inv.items[n], true
}

// ItemInHand возвращает копию предмета в руке
func (inv *Inventory) ItemInHand() (ItemStack, bool) {
	if inv.inHand == nil {
		return ItemStack{}, false
	}
	return *inv.inHand, true
}

// Size число занятых слотов
func (inv *Inventory) Size() int {
	return len(inv.items)
}

// SetItem заменяет стопку в существующем слоте
func (inv *Inventory) SetItem(slot int, s ItemStack) error {
	if slot < 0 || slot >= len(inv.items) {
		return &BadInventoryPositionError{Slot: slot}
	}
	inv.items[slot] = s
	return nil
}

// SetItemInHand кладёт копию стопки в руку
func (inv *Inventory) SetItemInHand(s ItemStack) {
	inv.inHand = &s
}

// ClearItemInHand освобождает руку
func (inv *Inventory) ClearItemInHand() {
	inv.inHand = nil
}

// AddItem добавляет стопку в новый слот и возвращает добавленное количество
func (inv *Inventory) AddItem(s ItemStack) int {
	if !CheckAmount(s.material, s.amount) {
		return 0
	}
	inv.items = append(inv.items, s)
	return s.amount
}

// Clear очищает инвентарь и руку
func (inv *Inventory) Clear() {
	inv.items = nil
	inv.inHand = nil
}

// ClearSlot удаляет слот, последующие сдвигаются
func (inv *Inventory) ClearSlot(slot int) error {
	if slot < 0 || slot >= len(inv.items) {
		return &BadInventoryPositionError{Slot: slot}
	}
	inv.items = append(inv.items[:slot], inv.items[slot+1:]...)
	return nil
}

// First индекс первого слота с материалом m или -1
func (inv *Inventory) First(m Material) int {
	for i, s := range inv.items {
		if s.material == m {
			return i
		}
	}
	return -1
}

// consumeInHand уменьшает количество предмета в руке на n,
// пустая стопка убирается из руки
func (inv *Inventory) consumeInHand(n int) {
	if inv.inHand == nil {
		return
	}
	left := inv.inHand.amount - n
	if left <= 0 {
		inv.inHand = nil
		return
	}
	inv.inHand.amount = left
}

func (inv *Inventory) String() string {
	var sb strings.Builder
	if inv.inHand != nil {
		sb.WriteString("(inHand=" + inv.inHand.String())
	} else {
		sb.WriteString("(inHand=null")
	}
	sb.WriteString(",[")
	for i, s := range inv.items {
		if i != 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(s.String())
	}
	sb.WriteString("])")
	return sb.String()
}
