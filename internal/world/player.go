package world

import (
	"fmt"
	"strings"

	"github.com/annel0/blockworld/internal/vec"
)

const (
	// MaxFoodLevel максимальный уровень сытости
	MaxFoodLevel = 20.0
	// ActionCost расход сытости на одно использование несъедобного предмета
	ActionCost = 0.1
	// MoveCost расход сытости на один шаг
	MoveCost = 0.05
	// PlayerSymbol символ игрока в окрестности
	PlayerSymbol = 'P'
	// DefaultPlayerName имя игрока, создаваемого при генерации
	DefaultPlayerName = "Steve"
)

// Player игрок: живая сущность с инвентарём, сытостью и направлением взгляда
type Player struct {
	LivingEntity
	name        string
	orientation vec.Vec3
	foodLevel   float64
	inventory   *Inventory
}

// newPlayer ставит игрока на поверхность над (0,*,0) с деревянным мечом в руке
func newPlayer(name string, w *World) (*Player, error) {
	ground := NewLocation(w, 0, 0, 0)
	highest, err := w.HighestLocationAt(ground)
	if err != nil {
		return nil, err
	}
	start, err := highest.Above()
	if err != nil {
		return nil, err
	}

	inventory := NewInventory()
	inventory.SetItemInHand(ItemStack{material: WoodSword, amount: 1})

	return &Player{
		LivingEntity: newLivingEntity(start, MaxHealth),
		name:         name,
		orientation:  vec.Vec3{X: 0, Y: 0, Z: 1},
		foodLevel:    MaxFoodLevel,
		inventory:    inventory,
	}, nil
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) FoodLevel() float64 {
	return p.foodLevel
}

// SetFoodLevel устанавливает сытость, не выше MaxFoodLevel
func (p *Player) SetFoodLevel(food float64) {
	if food > MaxFoodLevel {
		food = MaxFoodLevel
	}
	p.foodLevel = food
}

// Symbol символ игрока
func (p *Player) Symbol() rune {
	return PlayerSymbol
}

// OrientationOffset направление взгляда как смещение к соседней клетке
func (p *Player) OrientationOffset() vec.Vec3 {
	return p.orientation
}

// Orientation позиция клетки, на которую смотрит игрок
func (p *Player) Orientation() Location {
	return p.location.Offset(p.orientation)
}

// Inventory инвентарь игрока
func (p *Player) Inventory() *Inventory {
	return p.inventory
}

// InventorySize число слотов в инвентаре
func (p *Player) InventorySize() int {
	return p.inventory.Size()
}

// ItemInHand предмет в руке
func (p *Player) ItemInHand() (ItemStack, bool) {
	return p.inventory.ItemInHand()
}

// Move перемещает игрока на соседнюю свободную клетку
func (p *Player) Move(dx, dy, dz int) (Location, error) {
	if p.IsDead() {
		return Location{}, ErrEntityIsDead
	}

	step := vec.Vec3{X: dx, Y: dy, Z: dz}
	target := p.location.Offset(step)
	if !step.IsAdjacentStep() || !target.IsFree() {
		return Location{}, badLocation("cannot move to %s", target)
	}

	p.location = target
	p.decreaseFoodLevel(MoveCost)
	return p.location, nil
}

// UseItemInHand использует предмет в руке times раз: еда съедается,
// остальное расходует сытость. Возвращает то, что осталось в руке.
func (p *Player) UseItemInHand(times int) (ItemStack, bool, error) {
	if p.IsDead() {
		return ItemStack{}, false, ErrEntityIsDead
	}
	if times <= 0 {
		return ItemStack{}, false, fmt.Errorf("%w: %d", ErrInvalidRepeatCount, times)
	}

	inHand, ok := p.inventory.ItemInHand()
	if !ok {
		return ItemStack{}, false, nil
	}

	if inHand.material.IsEdible() {
		p.eat(inHand, times)
	} else {
		for i := 0; i < times; i++ {
			p.decreaseFoodLevel(ActionCost)
		}
	}

	item, ok := p.inventory.ItemInHand()
	return item, ok, nil
}

func (p *Player) eat(food ItemStack, times int) {
	eaten := 0
	for eaten < times && eaten < food.amount {
		p.increaseFoodLevel(food.material.Value())
		eaten++
	}
	p.inventory.consumeInHand(eaten)
}

// SelectItem берёт в руку предмет из слота n; предмет из руки занимает его место
func (p *Player) SelectItem(n int) error {
	if p.IsDead() {
		return ErrEntityIsDead
	}

	item, ok := p.inventory.Item(n)
	if !ok {
		return &BadInventoryPositionError{Slot: n}
	}

	inHand, hadItem := p.inventory.ItemInHand()
	p.inventory.SetItemInHand(item)
	if !hadItem {
		return p.inventory.ClearSlot(n)
	}
	return p.inventory.SetItem(n, inHand)
}

// AddItemsToInventory добавляет стопку в инвентарь
func (p *Player) AddItemsToInventory(items ItemStack) int {
	return p.inventory.AddItem(items)
}

// Orientate поворачивает игрока к соседней клетке (x, y, z в [-1, 1], не все нули)
func (p *Player) Orientate(x, y, z int) (Location, error) {
	if p.IsDead() {
		return Location{}, ErrEntityIsDead
	}

	o := vec.Vec3{X: x, Y: y, Z: z}
	if o.IsZero() {
		return Location{}, badLocation("cannot orientate towards the player itself")
	}
	if !o.IsAdjacentStep() {
		return Location{}, badLocation("orientation (%d,%d,%d) is not adjacent", x, y, z)
	}

	p.orientation = o
	return p.Orientation(), nil
}

// decreaseFoodLevel расходует сытость; нехватка списывается со здоровья
func (p *Player) decreaseFoodLevel(n float64) {
	left := p.foodLevel - n
	switch {
	case left > MaxFoodLevel:
		p.foodLevel = MaxFoodLevel
	case left >= 0:
		p.foodLevel = left
	default:
		p.foodLevel = 0
		p.SetHealth(p.health + left)
	}
}

// increaseFoodLevel восполняет сытость; избыток восстанавливает здоровье
func (p *Player) increaseFoodLevel(n float64) {
	next := p.foodLevel + n
	if next <= MaxFoodLevel {
		p.foodLevel = next
		return
	}

	surplus := next - MaxFoodLevel
	p.foodLevel = MaxFoodLevel
	if p.health < MaxHealth {
		p.SetHealth(p.health + surplus)
	}
}

func (p *Player) String() string {
	var sb strings.Builder
	sb.WriteString("Name=" + p.name + "\n")
	sb.WriteString(p.location.String() + "\n")
	sb.WriteString(fmt.Sprintf("Orientation=Location{world=%s,x=%s,y=%s,z=%s}\n",
		worldName(p.location.world),
		formatFloat(float64(p.orientation.X)),
		formatFloat(float64(p.orientation.Y)),
		formatFloat(float64(p.orientation.Z))))
	sb.WriteString("Health=" + formatFloat(p.health) + "\n")
	sb.WriteString("Food level=" + formatFloat(p.foodLevel) + "\n")
	sb.WriteString("Inventory=" + p.inventory.String())
	return sb.String()
}

func worldName(w *World) string {
	if w == nil {
		return "NULL"
	}
	return w.Name()
}
