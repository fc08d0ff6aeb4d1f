package world

import (
	"math"
	"math/rand"
)

// walker точка, блуждающая по сферическим углам. Скорости изменения углов
// сами случайно блуждают и затухают, поэтому путь получается извилистым.
// Координаты x и z в индексах сетки [0, size).
type walker struct {
	x, y, z    float64
	theta      float64
	dTheta     float64
	phi        float64
	dPhi       float64
	phiDamping float64
}

// newWalker случайная стартовая точка в пределах сетки мира
func (g *generator) newWalker(phiDamping float64) *walker {
	return &walker{
		x:          float64(g.rng.Intn(g.size)),
		y:          float64(g.rng.Intn(int(UpperY))),
		z:          float64(g.rng.Intn(g.size)),
		phiDamping: phiDamping,
	}
}

// start случайное начальное направление
func (wk *walker) start(rng *rand.Rand) {
	wk.theta = rng.Float64() * math.Pi * 2
	wk.dTheta = 0
	wk.phi = rng.Float64() * math.Pi * 2
	wk.dPhi = 0
}

func (wk *walker) step(rng *rand.Rand) {
	wk.x += math.Sin(wk.theta) * math.Cos(wk.phi)
	wk.y += math.Cos(wk.theta) * math.Cos(wk.phi)
	wk.z += math.Sin(wk.phi)

	wk.theta += wk.dTheta * 0.2
	wk.dTheta *= thetaDamping
	wk.dTheta += rng.Float64()
	wk.dTheta -= rng.Float64()

	wk.phi /= 2.0
	wk.phi += wk.dPhi / 4.0
	wk.dPhi *= wk.phiDamping
	wk.dPhi += rng.Float64()
	wk.dPhi -= rng.Float64()
}

// carve обходит сплюснутый по Y эллипсоид dx²+2dy²+dz² < r² с центром в
// индексах сетки. Без материала клетки очищаются, с материалом заменяется
// только уже существующий блок. Нижний слой (y <= 0) не затрагивается.
func (g *generator) carve(cx, cy, cz, radius float64, replacement *Block) {
	r2 := radius * radius
	neg := float64(g.negative)

	for x := cx - radius; x < cx+radius; x += 1.0 {
		for y := cy - radius; y < cy+radius; y += 1.0 {
			for z := cz - radius; z < cz+radius; z += 1.0 {
				dx := x - cx
				dy := y - cy
				dz := z - cz
				if dx*dx+2*dy*dy+dz*dz >= r2 {
					continue
				}

				fy := math.Floor(y)
				if fy <= 0 {
					continue
				}
				k := NewLocation(g.w, math.Floor(x+neg), fy, math.Floor(z+neg)).key()

				if replacement == nil {
					delete(g.w.blocks, k)
					continue
				}
				if _, ok := g.w.blocks[k]; ok {
					g.w.blocks[k] = *replacement
				}
			}
		}
	}
}
