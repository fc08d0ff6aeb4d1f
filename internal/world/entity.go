package world

// MaxHealth максимальное здоровье живой сущности
const MaxHealth = 20.0

// deathThreshold здоровье, ниже которого сущность считается мёртвой
const deathThreshold = 0.0001

// LivingEntity базовая живая сущность: позиция и здоровье в [0, MaxHealth]
type LivingEntity struct {
	location Location
	health   float64
}

func newLivingEntity(loc Location, health float64) LivingEntity {
	e := LivingEntity{location: loc}
	e.SetHealth(health)
	return e
}

// Location возвращает копию позиции сущности
func (e *LivingEntity) Location() Location {
	return e.location
}

func (e *LivingEntity) Health() float64 {
	return e.health
}

// SetHealth устанавливает здоровье, ограничивая его диапазоном [0, MaxHealth]
func (e *LivingEntity) SetHealth(health float64) {
	switch {
	case health > MaxHealth:
		e.health = MaxHealth
	case health < 0:
		e.health = 0
	default:
		e.health = health
	}
}

// Damage уменьшает здоровье на dmg
func (e *LivingEntity) Damage(dmg float64) {
	e.SetHealth(e.health - dmg)
}

// IsDead проверяет, мертва ли сущность
func (e *LivingEntity) IsDead() bool {
	return e.health <= deathThreshold
}

// CreatureKind вид существа
type CreatureKind uint8

const (
	AnimalKind CreatureKind = iota
	MonsterKind
)

func (k CreatureKind) String() string {
	if k == MonsterKind {
		return "monster"
	}
	return "animal"
}

// Creature существо мира: животное или монстр
type Creature struct {
	LivingEntity
	kind CreatureKind
}

// NewAnimal создаёт животное. Из животного выпадает говядина.
func NewAnimal(loc Location, health float64) *Creature {
	return &Creature{LivingEntity: newLivingEntity(loc, health), kind: AnimalKind}
}

// NewMonster создаёт монстра. Монстр отвечает на атаки и ничего не оставляет.
func NewMonster(loc Location, health float64) *Creature {
	return &Creature{LivingEntity: newLivingEntity(loc, health), kind: MonsterKind}
}

func (c *Creature) Kind() CreatureKind {
	return c.kind
}

func (c *Creature) IsMonster() bool {
	return c.kind == MonsterKind
}

// Symbol 'L' для животного, 'M' для монстра
func (c *Creature) Symbol() rune {
	if c.kind == MonsterKind {
		return 'M'
	}
	return 'L'
}

// Drops возвращает предмет, выпадающий при гибели
func (c *Creature) Drops() (ItemStack, bool) {
	if c.kind != AnimalKind {
		return ItemStack{}, false
	}
	return ItemStack{material: Beef, amount: 1}, true
}

func (c *Creature) String() string {
	name := "Animal"
	if c.kind == MonsterKind {
		name = "Monster"
	}
	return name + " [location=" + c.location.String() + ", health=" + formatFloat(c.health) + "]"
}
