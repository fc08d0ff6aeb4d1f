package world

import (
	"math/rand"
)

// Material представляет материал блока или предмета.
// Классы материалов (блок, жидкость, еда, инструмент, оружие) определяются
// положением в каталоге, поэтому порядок констант менять нельзя.
type Material uint8

const (
	Bedrock     Material = iota // 0
	Chest                       // 1
	Sand                        // 2
	Dirt                        // 3
	Grass                       // 4
	Stone                       // 5
	Granite                     // 6
	Obsidian                    // 7
	WaterBucket                 // 8
	Apple                       // 9
	Bread                       // 10
	Beef                        // 11
	IronShovel                  // 12
	IronPickaxe                 // 13
	WoodSword                   // 14
	IronSword                   // 15
	Lava                        // 16
	Water                       // 17

	materialCount
)

type materialInfo struct {
	name   string
	value  float64 // твёрдость, питательность или урон
	symbol rune
}

var catalog = [materialCount]materialInfo{
	Bedrock:     {"BEDROCK", -1, '*'},
	Chest:       {"CHEST", 0.1, 'C'},
	Sand:        {"SAND", 0.5, 'n'},
	Dirt:        {"DIRT", 0.5, 'd'},
	Grass:       {"GRASS", 0.6, 'g'},
	Stone:       {"STONE", 1.5, 's'},
	Granite:     {"GRANITE", 1.5, 'r'},
	Obsidian:    {"OBSIDIAN", 5, 'o'},
	WaterBucket: {"WATER_BUCKET", 1, 'W'},
	Apple:       {"APPLE", 4, 'A'},
	Bread:       {"BREAD", 5, 'B'},
	Beef:        {"BEEF", 8, 'F'},
	IronShovel:  {"IRON_SHOVEL", 0.2, '>'},
	IronPickaxe: {"IRON_PICKAXE", 0.5, '^'},
	WoodSword:   {"WOOD_SWORD", 1, 'i'},
	IronSword:   {"IRON_SWORD", 2, 'I'},
	Lava:        {"LAVA", 1.0, '#'},
	Water:       {"WATER", 0.0, '@'},
}

// Materials возвращает все материалы в порядке каталога
func Materials() []Material {
	out := make([]Material, 0, materialCount)
	for m := Material(0); m < materialCount; m++ {
		out = append(out, m)
	}
	return out
}

// Valid проверяет, что материал есть в каталоге
func (m Material) Valid() bool {
	return m < materialCount
}

func (m Material) String() string {
	if !m.Valid() {
		return "UNKNOWN"
	}
	return catalog[m].name
}

// Value возвращает твёрдость блока, питательность еды или урон инструмента/оружия
func (m Material) Value() float64 {
	if !m.Valid() {
		return 0
	}
	return catalog[m].value
}

// Symbol возвращает символ материала для текстового отображения
func (m Material) Symbol() rune {
	if !m.Valid() {
		return '?'
	}
	return catalog[m].symbol
}

// IsBlock материал может образовывать блок (твёрдый или жидкий)
func (m Material) IsBlock() bool {
	return m <= Obsidian || m == Lava || m == Water
}

// IsLiquid материал жидкий
func (m Material) IsLiquid() bool {
	return m == Lava || m == Water
}

// IsEdible материал съедобен
func (m Material) IsEdible() bool {
	return m >= WaterBucket && m <= Beef
}

// IsTool материал является инструментом
func (m Material) IsTool() bool {
	return m == IronShovel || m == IronPickaxe
}

// IsWeapon материал является оружием
func (m Material) IsWeapon() bool {
	return m == WoodSword || m == IronSword
}

// RandomMaterial выбирает материал в диапазоне каталога [first, last]
func RandomMaterial(rng *rand.Rand, first, last Material) Material {
	return first + Material(rng.Intn(int(last-first)+1))
}
