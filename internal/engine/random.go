package engine

import "math/rand/v2"

type entropySource struct{}

func (entropySource) Float64() float64 { return rand.Float64() }

// Entropy is the process-wide unseeded Source. Draws from it are not
// reproducible and are used wherever the client does not need to agree.
var Entropy Source = entropySource{}

// IntFrom returns an integer in [min, max] using one draw from src.
func IntFrom(src Source, min, max int) int {
	return min + int(src.Float64()*float64(max-min+1))
}

// ElementFrom returns an element of s using one draw from src.
func ElementFrom[T any](src Source, s []T) (T, bool) {
	var zero T
	if len(s) == 0 {
		return zero, false
	}
	return s[int(src.Float64()*float64(len(s)))], true
}

// RandomInt returns an unseeded integer in [min, max].
func RandomInt(min, max int) int {
	return IntFrom(Entropy, min, max)
}

// RandomElementOf returns an unseeded element of s.
func RandomElementOf[T any](s []T) (T, bool) {
	return ElementFrom(Entropy, s)
}

// RewardSeedFrom builds a signed 64-bit reward seed: a 31-bit high word and a
// 32-bit low word, then on a coin flip the bitwise complement (-seed-1) so
// the full int64 range is covered.
func RewardSeedFrom(src Source) int64 {
	hi := int64(IntFrom(src, 0, 0x7fffffff))
	lo := int64(IntFrom(src, 0, 0xffffffff))
	seed := hi<<32 | lo
	if src.Float64() < 0.5 {
		seed = -seed - 1
	}
	return seed
}

// GenerateRewardSeed returns an unseeded reward seed for mission reward rolls.
func GenerateRewardSeed() int64 {
	return RewardSeedFrom(Entropy)
}
