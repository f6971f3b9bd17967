// Package draw implements the weighted random selection at the heart of the
// engine. It is pure: no I/O, no ledger or budget state, so it can be tested
// and fuzzed in isolation and replayed deterministically with a seeded source.
package draw

import "errors"

// ErrEmptyPool is returned when no entry in the pool has a positive weight.
var ErrEmptyPool = errors.New("prize pool has no drawable entries")

// Rand is the random source consumed by Select. math/rand.Rand satisfies it;
// tests pass a seeded instance for reproducible draws.
type Rand interface {
	Int63n(n int64) int64
}

// Entry is one weighted candidate. Entries with Weight <= 0 are skipped.
type Entry struct {
	ItemID string
	Weight int64
}

// Select picks one entry by cumulative-weight inverse CDF: a uniform draw in
// [0, sum of weights) is walked through the entries until the running total
// exceeds it. The last positive-weight entry is the fallback, which
// guarantees termination on boundary values.
func Select(entries []Entry, rng Rand) (string, error) {
	var total int64
	last := -1
	for i, e := range entries {
		if e.Weight <= 0 {
			continue
		}
		total += e.Weight
		last = i
	}
	if total <= 0 {
		return "", ErrEmptyPool
	}

	r := rng.Int63n(total)
	var cum int64
	for _, e := range entries {
		if e.Weight <= 0 {
			continue
		}
		cum += e.Weight
		if r < cum {
			return e.ItemID, nil
		}
	}
	return entries[last].ItemID, nil
}
