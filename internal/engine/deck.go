package engine

import (
	"slices"

	"github.com/MJE43/lotus-sim-go/internal/simerr"
)

// eraSeedRange bounds the per-era seed drawn before mixing with the caller's seed.
const eraSeedRange = 100_000

// SequentiallyUniqueRandomElement returns the idx-th draw from an endless
// sequence of shuffles of deck. Any lookback+1 consecutive draws are pairwise
// distinct, provided deck itself holds distinct values.
//
// The result is a pure function of its arguments. Each era (one pass through
// the deck) is shuffled from a seed derived from the era number and seed; the
// head of an era is patched against the tail of the previous era.
func SequentiallyUniqueRandomElement[T comparable](deck []T, idx, lookback int, seed uint32) (T, error) {
	var zero T
	if err := checkLookback(len(deck), lookback); err != nil {
		return zero, err
	}
	if idx < 0 {
		return zero, simerr.InvalidRequestf("negative draw index %d", idx)
	}

	era := idx / len(deck)
	card := idx % len(deck)
	currentShuffle := eraShuffle(deck, era, seed)
	if card >= len(currentShuffle)-lookback {
		return currentShuffle[card], nil
	}

	previousShuffle := eraShuffle(deck, era-1, seed)
	window := slices.Clone(previousShuffle[len(previousShuffle)-lookback:])

	for i := 0; i < lookback; i++ {
		if slices.Contains(window, currentShuffle[i]) {
			for j := i; j < len(currentShuffle); j++ {
				if !slices.Contains(window, currentShuffle[j]) {
					currentShuffle[i], currentShuffle[j] = currentShuffle[j], currentShuffle[i]
					break
				}
			}
		}
		window = append(window[1:], currentShuffle[i])
	}
	return currentShuffle[card], nil
}

func checkLookback(size, lookback int) error {
	if lookback < 0 {
		return simerr.Newf(simerr.KindConfiguration, "negative lookback %d", lookback)
	}
	if lookback+1 >= size-lookback {
		return simerr.Newf(simerr.KindConfiguration,
			"cannot guarantee %d unique cards in a row with a deck of size %d", lookback, size)
	}
	return nil
}

// eraShuffle is the deterministic permutation of deck for one era. Era -1 is
// valid and seeds its generator from the all-ones state.
func eraShuffle[T any](deck []T, era int, seed uint32) []T {
	eraSeed := NewRng(int64(era)).RandomInt(0, eraSeedRange)
	return Shuffled(NewRng(int64(MixSeeds(uint32(eraSeed), seed))), deck)
}

// UniqueDeck binds a deck to its lookback and seed so callers can draw by index.
type UniqueDeck[T comparable] struct {
	deck     []T
	lookback int
	seed     uint32
}

// NewUniqueDeck validates the lookback against the deck size up front.
func NewUniqueDeck[T comparable](deck []T, lookback int, seed uint32) (*UniqueDeck[T], error) {
	if err := checkLookback(len(deck), lookback); err != nil {
		return nil, err
	}
	return &UniqueDeck[T]{deck: slices.Clone(deck), lookback: lookback, seed: seed}, nil
}

// At returns the idx-th draw.
func (d *UniqueDeck[T]) At(idx int) (T, error) {
	return SequentiallyUniqueRandomElement(d.deck, idx, d.lookback, d.seed)
}

// Len is the deck size.
func (d *UniqueDeck[T]) Len() int { return len(d.deck) }
