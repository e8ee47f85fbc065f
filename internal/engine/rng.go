package engine

// Knuth's 64-bit LCG constants, identical to the game client's seeded RNG.
const (
	lcgMultiplier uint64 = 0x5851f42d4c957f2d
	lcgIncrement  uint64 = 0x14057b7ef767814f

	// floatScale is the client's literal for 2^-24. It is not exactly 2^-24,
	// and results must match the client, so keep the literal.
	floatScale = 0.000000059604645
)

// Rng is the seeded generator shared with the game client. Given the same
// seed, every sequence of calls yields the same outputs as the client.
//
// An Rng is not safe for concurrent use. Create one per call site.
type Rng struct {
	state uint64
}

// NewRng creates a generator seeded with seed. Negative seeds use their
// two's complement bit pattern, matching the client's 64-bit wraparound.
func NewRng(seed int64) *Rng {
	return &Rng{state: uint64(seed)}
}

// NewRngFromState creates a generator from a raw 64-bit state.
func NewRngFromState(state uint64) *Rng {
	return &Rng{state: state}
}

// State returns the current 64-bit state.
func (r *Rng) State() uint64 {
	return r.state
}

// advance steps the recurrence once. Multiplication and addition wrap at 2^64.
func (r *Rng) advance() uint64 {
	r.state = lcgMultiplier*r.state + lcgIncrement
	return r.state
}

// RandomInt returns an integer in [min, max]. A zero-width range returns min
// without consuming a step.
func (r *Rng) RandomInt(min, max int) int {
	diff := max - min
	if diff != 0 {
		state := r.advance()
		min += int((state>>32)&0x3fffffff) % (diff + 1)
	}
	return min
}

// RandomFloat returns a value in [0, 1) built from bits 38..61 of the next state.
func (r *Rng) RandomFloat() float64 {
	state := r.advance()
	return float64((state>>38)&0xffffff) * floatScale
}

// ChurnSeed advances the state its times, discarding the outputs.
func (r *Rng) ChurnSeed(its int) {
	for ; its > 0; its-- {
		r.advance()
	}
}

// RandomElement returns an element of s chosen with r.
//
// An empty slice still consumes one step, because the client evaluates
// RandomInt(0, -1) before discovering there is nothing to index.
func RandomElement[T any](r *Rng, s []T) (T, bool) {
	if len(s) == 0 {
		var zero T
		r.advance()
		return zero, false
	}
	return s[r.RandomInt(0, len(s)-1)], true
}

// RandomElementPop removes and returns an element of *s chosen with r,
// shifting the remainder down. An empty slice consumes nothing.
func RandomElementPop[T any](r *Rng, s *[]T) (T, bool) {
	var zero T
	if len(*s) == 0 {
		return zero, false
	}
	index := r.RandomInt(0, len(*s)-1)
	elm := (*s)[index]
	*s = append((*s)[:index], (*s)[index+1:]...)
	return elm, true
}

// Shuffle permutes s in place with Fisher-Yates, walking from the last index down.
func Shuffle[T any](r *Rng, s []T) {
	for lastIdx := len(s) - 1; lastIdx >= 1; lastIdx-- {
		swapIdx := r.RandomInt(0, lastIdx)
		s[swapIdx], s[lastIdx] = s[lastIdx], s[swapIdx]
	}
}

// Shuffled returns a shuffled copy of s, leaving s untouched.
func Shuffled[T any](r *Rng, s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	Shuffle(r, out)
	return out
}

// RandomReward picks from pool using the next RandomFloat as the percentage.
func RandomReward[T Weighted](r *Rng, pool []T) (T, bool) {
	return RewardAtPercentage(pool, r.RandomFloat())
}
