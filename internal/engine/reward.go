package engine

// Weighted is anything that carries a selection probability.
type Weighted interface {
	Weight() float64
}

// Rarity is a reward tier tag.
type Rarity string

const (
	RarityCommon    Rarity = "COMMON"
	RarityUncommon  Rarity = "UNCOMMON"
	RarityRare      Rarity = "RARE"
	RarityLegendary Rarity = "LEGENDARY"
)

// RarityWeights is the probability mass assigned to each tier.
type RarityWeights map[Rarity]float64

// PoolEntry is one candidate in a reward pool.
type PoolEntry struct {
	ItemType    string  `json:"type"`
	ItemCount   int     `json:"itemCount"`
	Rarity      Rarity  `json:"rarity,omitempty"`
	Probability float64 `json:"probability"`
}

func (e PoolEntry) Weight() float64 { return e.Probability }

// WeightedEntry pairs an arbitrary pool element with a derived probability.
type WeightedEntry[T any] struct {
	Entry       T
	Probability float64
}

func (e WeightedEntry[T]) Weight() float64 { return e.Probability }

// Source produces uniform percentages in [0, 1).
type Source interface {
	Float64() float64
}

// Float64 lets an Rng act as a Source for the selector helpers.
func (r *Rng) Float64() float64 { return r.RandomFloat() }

// RewardAtPercentage scans pool in order and returns the first entry whose
// running probability sum reaches percentage * total. If rounding leaves the
// target unmatched, the last entry is returned. An empty pool yields false.
func RewardAtPercentage[T Weighted](pool []T, percentage float64) (T, bool) {
	var zero T
	if len(pool) == 0 {
		return zero, false
	}

	totalChance := 0.0
	for _, item := range pool {
		totalChance += item.Weight()
	}
	randomValue := percentage * totalChance

	cumulativeChance := 0.0
	for _, item := range pool {
		cumulativeChance += item.Weight()
		if randomValue <= cumulativeChance {
			return item, true
		}
	}
	return pool[len(pool)-1], true
}

// RandomRewardFrom picks from pool using a percentage drawn from src.
func RandomRewardFrom[T Weighted](src Source, pool []T) (T, bool) {
	return RewardAtPercentage(pool, src.Float64())
}

// NormalizeByRarity assigns every entry weights[tier] / count(tier), so each
// tier keeps a constant total mass however many entries share it.
func NormalizeByRarity[T any](pool []T, rarityOf func(T) Rarity, weights RarityWeights) []WeightedEntry[T] {
	counts := make(map[Rarity]int, 4)
	for _, entry := range pool {
		counts[rarityOf(entry)]++
	}
	out := make([]WeightedEntry[T], 0, len(pool))
	for _, entry := range pool {
		rarity := rarityOf(entry)
		out = append(out, WeightedEntry[T]{
			Entry:       entry,
			Probability: weights[rarity] / float64(counts[rarity]),
		})
	}
	return out
}

// RandomWeightedRewardFrom normalizes pool by rarity and samples it with src.
func RandomWeightedRewardFrom[T any](src Source, pool []T, rarityOf func(T) Rarity, weights RarityWeights) (WeightedEntry[T], bool) {
	return RandomRewardFrom(src, NormalizeByRarity(pool, rarityOf, weights))
}

// RandomWeightedReward samples a PoolEntry pool by rarity with unseeded
// randomness. The returned entry has its derived Probability filled in.
func RandomWeightedReward(pool []PoolEntry, weights RarityWeights) (PoolEntry, bool) {
	picked, ok := RandomWeightedRewardFrom(Entropy, pool, func(e PoolEntry) Rarity { return e.Rarity }, weights)
	if !ok {
		return PoolEntry{}, false
	}
	entry := picked.Entry
	entry.Probability = picked.Probability
	return entry, true
}

// RandomRewardEntropy picks from pool with unseeded randomness.
func RandomRewardEntropy[T Weighted](pool []T) (T, bool) {
	return RandomRewardFrom(Entropy, pool)
}
