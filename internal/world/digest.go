package world

import (
	"encoding/binary"
	"math"
	"sort"

	"github.com/cespare/xxhash/v2"
)

// Digest отпечаток состояния мира: карты блоков, предметов и существ,
// карта высот и игрок. Одинаковые миры дают одинаковый отпечаток.
func (w *World) Digest() uint64 {
	d := xxhash.New()
	buf := make([]byte, 8)

	putUint := func(v uint64) {
		binary.LittleEndian.PutUint64(buf, v)
		_, _ = d.Write(buf)
	}
	putFloat := func(f float64) {
		putUint(math.Float64bits(f))
	}
	putKey := func(k cellKey) {
		putUint(k.x)
		putUint(k.y)
		putUint(k.z)
	}

	putUint(uint64(w.seed))
	putUint(uint64(w.size))
	_, _ = d.WriteString(w.name)

	for _, h := range w.heights.cells {
		putFloat(h)
	}

	for _, k := range sortedKeys(w.blocks) {
		b := w.blocks[k]
		putKey(k)
		putUint(uint64(b.material)<<8 | uint64(b.kind))
		if drop, ok := b.Drops(); ok {
			putUint(uint64(drop.material)<<32 | uint64(drop.amount))
		} else {
			putUint(math.MaxUint64)
		}
	}

	for _, k := range sortedKeys(w.items) {
		s := w.items[k]
		putKey(k)
		putUint(uint64(s.material)<<32 | uint64(s.amount))
	}

	for _, k := range sortedKeys(w.creatures) {
		c := w.creatures[k]
		putKey(k)
		putUint(uint64(c.kind))
		putFloat(c.health)
	}

	if p := w.player; p != nil {
		_, _ = d.WriteString(p.name)
		putKey(p.location.key())
		putFloat(p.health)
		putFloat(p.foodLevel)
		_, _ = d.WriteString(p.inventory.String())
	}

	return d.Sum64()
}

func sortedKeys[V any](m map[cellKey]V) []cellKey {
	keys := make([]cellKey, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.x != b.x {
			return a.x < b.x
		}
		if a.y != b.y {
			return a.y < b.y
		}
		return a.z < b.z
	})
	return keys
}
