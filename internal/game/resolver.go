package game

import (
	"github.com/annel0/blockworld/internal/world"
)

const (
	// BlockItemDamage урон за удар, если в руке материал блока
	BlockItemDamage = 0.1
	// MonsterRetaliation ответный урон монстра за каждый удар
	MonsterRetaliation = 0.5
)

// OutcomeKind что произошло в результате использования предмета
type OutcomeKind uint8

const (
	OutcomeNone     OutcomeKind = iota // Ничего: рука пуста, еда или цель без эффекта
	OutcomeAte                         // Предмет съеден
	OutcomeHitBlock                    // Удар по блоку
	OutcomeAttack                      // Атака существа
	OutcomePlaced                      // Поставлен блок
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeAte:
		return "ate"
	case OutcomeHitBlock:
		return "hit_block"
	case OutcomeAttack:
		return "attack"
	case OutcomePlaced:
		return "placed"
	default:
		return "none"
	}
}

// Outcome результат UseItem
type Outcome struct {
	Kind   OutcomeKind
	Target world.Location
	Damage float64
	// Destroyed блок разрушен или существо убито
	Destroyed bool
}

// Damage урон от times ударов предметом item: материал блока бьёт на 0.1,
// остальные на своё значение.
func Damage(item world.ItemStack, times int) float64 {
	if item.Material().IsBlock() {
		return BlockItemDamage * float64(times)
	}
	return item.Material().Value() * float64(times)
}

// hitBlock бьёт твёрдый блок. Разрушенный блок оставляет свой предмет в клетке.
func hitBlock(w *world.World, times int, loc world.Location, b world.Block, item world.ItemStack) (bool, float64, error) {
	dmg := Damage(item, times)
	if !b.Breaks(dmg) {
		return false, dmg, nil
	}
	if err := w.DestroyBlock(loc); err != nil {
		return false, dmg, err
	}
	return true, dmg, nil
}

// attackCreature атакует существо. Убитое животное оставляет говядину,
// выживший монстр отвечает игроку.
func attackCreature(w *world.World, p *world.Player, times int, loc world.Location, c *world.Creature, item world.ItemStack) (bool, float64, error) {
	dmg := Damage(item, times)
	if dmg < c.Health() {
		c.Damage(dmg)
		if c.IsMonster() {
			p.Damage(MonsterRetaliation * float64(times))
		}
		return false, dmg, nil
	}

	if _, err := w.KillCreature(loc); err != nil {
		return false, dmg, err
	}
	if drop, ok := c.Drops(); ok {
		if err := w.AddItem(loc, drop); err != nil {
			return true, dmg, err
		}
	}
	return true, dmg, nil
}

// enterCell последствия шага игрока: жидкость ранит, предметы подбираются
func enterCell(w *world.World, p *world.Player, loc world.Location) error {
	b, ok, err := w.BlockAt(loc)
	if err != nil {
		return err
	}
	if ok && b.IsLiquid() {
		p.Damage(b.Damage())
	}

	items, ok, err := w.ItemAt(loc)
	if err != nil || !ok {
		return err
	}
	p.AddItemsToInventory(items)
	_, err = w.RemoveItemAt(loc)
	return err
}
