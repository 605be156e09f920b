package sim

import (
	"math/rand"

	"github.com/zeusync/podracer/internal/core/geometry"
)

// Referee rules.
const (
	maxRotation      = 18.0
	friction         = 0.85
	podContact       = 800.0
	checkpointRadius = 599.0
	minImpulse       = 120.0
	shieldTicks      = 4
	shieldMass       = 10.0
	boostThrust      = 650
	reboostThrust    = 200
	maxThrust        = 100
	timeoutTurns     = 100
	mapJitter        = 30
)

// spawn offsets from checkpoint 0, across the first leg, per pod
var spawnOffsets = [4]float64{500, -500, 1500, -1500}

var mapPool = [][]geometry.Point{
	{{X: 12460, Y: 1350}, {X: 10540, Y: 5980}, {X: 3580, Y: 5180}, {X: 13580, Y: 7600}},
	{{X: 3600, Y: 5280}, {X: 13840, Y: 5080}, {X: 10680, Y: 2280}, {X: 8700, Y: 7460}, {X: 7200, Y: 2160}},
	{{X: 4560, Y: 2180}, {X: 7350, Y: 4940}, {X: 3320, Y: 7230}, {X: 14580, Y: 7700}, {X: 10560, Y: 5060}, {X: 13100, Y: 2320}},
	{{X: 5010, Y: 5260}, {X: 11480, Y: 6080}, {X: 9100, Y: 1840}},
	{{X: 14660, Y: 1410}, {X: 3450, Y: 7220}, {X: 9420, Y: 7240}, {X: 5970, Y: 4240}},
	{{X: 3640, Y: 4420}, {X: 8000, Y: 7900}, {X: 13300, Y: 5540}, {X: 9560, Y: 1400}},
	{{X: 4100, Y: 7420}, {X: 13500, Y: 2340}, {X: 12940, Y: 7220}, {X: 5640, Y: 2580}},
	{{X: 14520, Y: 7780}, {X: 6320, Y: 4290}, {X: 7800, Y: 860}, {X: 7660, Y: 5970}, {X: 3140, Y: 7540}, {X: 9520, Y: 4380}},
	{{X: 10040, Y: 5970}, {X: 13920, Y: 1940}, {X: 8020, Y: 3260}, {X: 2670, Y: 7020}},
	{{X: 7500, Y: 6940}, {X: 6000, Y: 5360}, {X: 11300, Y: 2820}},
	{{X: 4060, Y: 4660}, {X: 13040, Y: 1900}, {X: 6560, Y: 7840}, {X: 7480, Y: 1360}, {X: 12700, Y: 7100}},
	{{X: 3020, Y: 5190}, {X: 6280, Y: 7760}, {X: 14100, Y: 7760}, {X: 13880, Y: 1220}, {X: 10240, Y: 4920}, {X: 6100, Y: 2200}},
	{{X: 10323, Y: 3366}, {X: 11203, Y: 5425}, {X: 7259, Y: 6656}, {X: 5425, Y: 2838}},
}

// Maps returns the number of layouts in the pool.
func Maps() int { return len(mapPool) }

// RandomMap picks a layout from the pool and moves every checkpoint by up to
// 30 units on each axis.
func RandomMap(rng *rand.Rand) []geometry.Point {
	base := mapPool[rng.Intn(len(mapPool))]
	out := make([]geometry.Point, len(base))
	for i, p := range base {
		out[i] = geometry.Point{
			X: p.X + rng.Intn(2*mapJitter+1) - mapJitter,
			Y: p.Y + rng.Intn(2*mapJitter+1) - mapJitter,
		}
	}
	return out
}
