package kolor

import (
	"math/rand"

	"github.com/vovakirdan/kolor/internal/core"
)

// OptionCount is the number of swatches offered each round.
const OptionCount = 4

// maxDrawAttempts bounds random draws per option set. Past it, candidates
// are nudged until distinct so a degenerate source still terminates.
const maxDrawAttempts = 64

// Options is the ordered set of choices for one round.
type Options [OptionCount]core.Color

// Index returns the position of c in the set, or -1.
func (o Options) Index(c core.Color) int {
	for i, opt := range o {
		if opt == c {
			return i
		}
	}
	return -1
}

// RandomColor draws each channel uniformly from [0, 255].
func RandomColor(rng *rand.Rand) core.Color {
	return core.Color{
		R: uint8(rng.Intn(256)),
		G: uint8(rng.Intn(256)),
		B: uint8(rng.Intn(256)),
	}
}

// BuildOptions returns OptionCount distinct colors including target,
// in uniformly random order.
func BuildOptions(rng *rand.Rand, target core.Color) Options {
	picked := make([]core.Color, 1, OptionCount)
	picked[0] = target

	for draws := 1; len(picked) < OptionCount; draws++ {
		c := RandomColor(rng)
		if draws > maxDrawAttempts {
			for containsColor(picked, c) {
				c = c.Nudge()
			}
		}
		if !containsColor(picked, c) {
			picked = append(picked, c)
		}
	}

	shuffle(rng, picked)

	var opts Options
	copy(opts[:], picked)
	return opts
}

// shuffle is a Fisher–Yates permutation.
func shuffle(rng *rand.Rand, colors []core.Color) {
	for i := len(colors) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		colors[i], colors[j] = colors[j], colors[i]
	}
}

func containsColor(colors []core.Color, c core.Color) bool {
	for _, existing := range colors {
		if existing == c {
			return true
		}
	}
	return false
}
