package engine

// MixSeeds folds two 32-bit seeds into one. The shifts reproduce the client's
// 32-bit integer semantics, where a left shift by 35 is a shift by 3.
func MixSeeds(a, b uint32) uint32 {
	seed := a ^ b
	seed ^= seed >> 21
	seed ^= seed << 3
	seed ^= seed >> 4
	return seed
}
