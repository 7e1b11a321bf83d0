package sim

import (
	"errors"
	"math/rand"
	"slices"
	"strings"
)

var (
	// ErrNoChoicePending is returned by Choose when no offer is open.
	ErrNoChoicePending = errors.New("sim: no upgrade choice pending")
	// ErrChoiceOutOfRange is returned by Choose for an index outside the offer.
	ErrChoiceOutOfRange = errors.New("sim: upgrade choice out of range")
)

// DefaultChoices is how many upgrades a level-up or milestone offers.
const DefaultChoices = 3

// Upgrade is one catalogue entry. Apply mutates the session.
type Upgrade struct {
	ID          string
	Name        string
	Description string
	Apply       func(w *World)
}

// Label is the text shown on a choice line.
func (u Upgrade) Label() string {
	if u.Description == "" {
		return u.Name
	}
	return u.Name + ": " + u.Description
}

// ShuffleMode selects how SelectRandom orders the pool.
type ShuffleMode int

const (
	// ShuffleFisherYates is an unbiased permutation.
	ShuffleFisherYates ShuffleMode = iota
	// ShuffleComparator sorts with a coin-flip comparator. It is biased
	// toward the original catalogue order.
	ShuffleComparator
)

// ParseShuffleMode maps a config value to a mode. Unknown values use
// Fisher-Yates.
func ParseShuffleMode(s string) ShuffleMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "comparator", "sort":
		return ShuffleComparator
	default:
		return ShuffleFisherYates
	}
}

// String returns the config name of the mode.
func (m ShuffleMode) String() string {
	if m == ShuffleComparator {
		return "comparator"
	}
	return "fisher-yates"
}

// SelectRandom returns min(k, len(pool)) distinct entries of pool.
// The pool itself is not reordered.
func SelectRandom(rng *rand.Rand, pool []Upgrade, k int, mode ShuffleMode) []Upgrade {
	if k <= 0 || len(pool) == 0 {
		return nil
	}
	picked := slices.Clone(pool)

	switch mode {
	case ShuffleComparator:
		slices.SortFunc(picked, func(_, _ Upgrade) int {
			if rng.Float64() < 0.5 {
				return -1
			}
			return 1
		})
	default:
		rng.Shuffle(len(picked), func(i, j int) {
			picked[i], picked[j] = picked[j], picked[i]
		})
	}

	return picked[:min(k, len(picked))]
}

// OfferUpgrades opens a choice of up to k upgrades from pool and pauses the
// simulation until Choose is called. An empty pool offers nothing and the
// session keeps running. A pending offer is never replaced.
func (w *World) OfferUpgrades(pool []Upgrade, k int) []Upgrade {
	if w.phase.Terminal() || w.phase == PhaseChoosing {
		return nil
	}
	offers := SelectRandom(w.Rng, pool, k, w.Shuffle)
	if len(offers) == 0 {
		return nil
	}
	w.offers = offers
	w.phase = PhaseChoosing
	return offers
}

// Offers returns the pending upgrade choices.
func (w *World) Offers() []Upgrade {
	return w.offers
}

// Choose applies exactly one pending upgrade and resumes the simulation.
func (w *World) Choose(i int) error {
	if w.phase != PhaseChoosing || len(w.offers) == 0 {
		return ErrNoChoicePending
	}
	if i < 0 || i >= len(w.offers) {
		return ErrChoiceOutOfRange
	}

	u := w.offers[i]
	w.offers = nil
	w.phase = PhaseRunning
	if u.Apply != nil {
		u.Apply(w)
	}
	return nil
}

// RaiseMaxHealth grows the player's max health and heals to full.
func RaiseMaxHealth(amount float64) func(*World) {
	return func(w *World) {
		if w.Player != nil {
			w.Player.RaiseMaxHealth(amount, true)
		}
	}
}

// HealBy restores player health, clamped to max health.
func HealBy(amount float64) func(*World) {
	return func(w *World) {
		if w.Player != nil {
			w.Player.Heal(amount)
		}
	}
}

// ScaleSpeed multiplies the player speed modifier.
func ScaleSpeed(factor float64) func(*World) {
	return func(w *World) {
		w.Mods.SpeedMul *= factor
	}
}
