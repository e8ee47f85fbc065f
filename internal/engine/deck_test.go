package engine

import (
	"errors"
	"slices"
	"testing"

	"github.com/MJE43/lotus-sim-go/internal/simerr"
)

func TestSequentiallyUniqueGolden(t *testing.T) {
	deck := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	want := []int{
		4, 7, 9, 2, 0, 6, 5, 3, 8, 1,
		5, 2, 0, 6, 8, 3, 4, 9, 1, 7,
		2, 0, 1, 7, 4, 9, 6, 3, 5, 8,
		9, 4, 1, 8, 6, 0, 2, 5, 7, 3,
	}
	for idx, w := range want {
		got, err := SequentiallyUniqueRandomElement(deck, idx, 3, 0)
		if err != nil {
			t.Fatalf("SequentiallyUniqueRandomElement(%d) error = %v", idx, err)
		}
		if got != w {
			t.Errorf("SequentiallyUniqueRandomElement(%d) = %d, want %d", idx, got, w)
		}
	}
}

func TestSequentiallyUniqueWindows(t *testing.T) {
	deck := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}
	const lookback = 3

	for _, seed := range []uint32{0, 1, 1234, 0xdeadbeef} {
		d, err := NewUniqueDeck(deck, lookback, seed)
		if err != nil {
			t.Fatalf("NewUniqueDeck() error = %v", err)
		}
		draws := make([]string, 0, 5*d.Len())
		for idx := 0; idx < 5*d.Len(); idx++ {
			v, err := d.At(idx)
			if err != nil {
				t.Fatalf("At(%d) error = %v", idx, err)
			}
			draws = append(draws, v)
		}
		for i := 0; i+lookback < len(draws); i++ {
			window := draws[i : i+lookback+1]
			sorted := slices.Clone(window)
			slices.Sort(sorted)
			if len(slices.Compact(sorted)) != lookback+1 {
				t.Errorf("seed %d: window at %d repeats: %v", seed, i, window)
			}
		}
	}
}

func TestSequentiallyUniqueIsPure(t *testing.T) {
	deck := []int{10, 20, 30, 40, 50, 60, 70, 80}
	for idx := 0; idx < 24; idx++ {
		a, _ := SequentiallyUniqueRandomElement(deck, idx, 2, 77)
		b, _ := SequentiallyUniqueRandomElement(deck, idx, 2, 77)
		if a != b {
			t.Fatalf("idx %d: %d != %d", idx, a, b)
		}
	}
}

func TestSequentiallyUniqueRejectsUnsatisfiableLookback(t *testing.T) {
	deck := []int{1, 2, 3, 4, 5, 6, 7, 8}

	_, err := SequentiallyUniqueRandomElement(deck, 0, 5, 0)
	if !errors.Is(err, simerr.ErrConfiguration) {
		t.Errorf("error = %v, want configuration error", err)
	}
	if _, err := NewUniqueDeck(deck, 5, 0); simerr.KindOf(err) != simerr.KindConfiguration {
		t.Errorf("NewUniqueDeck() error = %v, want configuration error", err)
	}
}

func TestSequentiallyUniqueRejectsNegativeLookback(t *testing.T) {
	deck := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	for _, idx := range []int{0, 3, 12} {
		if _, err := SequentiallyUniqueRandomElement(deck, idx, -1, 0); simerr.KindOf(err) != simerr.KindConfiguration {
			t.Errorf("idx %d: error = %v, want configuration error", idx, err)
		}
	}
	if _, err := NewUniqueDeck(deck, -2, 0); simerr.KindOf(err) != simerr.KindConfiguration {
		t.Errorf("NewUniqueDeck() error = %v, want configuration error", err)
	}
}
