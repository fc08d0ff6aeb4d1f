package world

import (
	"strings"
	"unicode"

	"github.com/annel0/blockworld/internal/vec"
)

// NeighborhoodString рисует куб 3x3x3 вокруг loc. Слои по Z разделены
// переводом строки, ряды по Y внутри слоя разделены пробелом.
//
//	X  вне мира
//	P  игрок
//	s  блок (строчный символ), если в клетке нет предмета и существа
//	A  предмет (заглавный символ)
//	M  существо (заглавный символ)
//	.  пусто
func (w *World) NeighborhoodString(loc Location) (string, error) {
	if err := w.checkWorld(loc); err != nil {
		return "", err
	}

	var sb strings.Builder
	for i, o := range vec.CubeOffsets() {
		sb.WriteRune(w.cellSymbol(loc.Offset(o)))

		switch {
		case i == 26:
		case i%9 == 8:
			sb.WriteByte('\n')
		case i%3 == 2:
			sb.WriteByte(' ')
		}
	}
	return sb.String(), nil
}

func (w *World) cellSymbol(loc Location) rune {
	if !CheckLocation(loc) {
		return 'X'
	}
	if w.player != nil && w.player.location.Equals(loc) {
		return PlayerSymbol
	}

	k := loc.key()
	b, hasBlock := w.blocks[k]
	item, hasItem := w.items[k]
	c, hasCreature := w.creatures[k]

	switch {
	case hasBlock && !hasItem && !hasCreature:
		return b.Symbol()
	case hasItem:
		return unicode.ToUpper(item.material.Symbol())
	case hasCreature:
		return unicode.ToUpper(c.Symbol())
	default:
		return '.'
	}
}
