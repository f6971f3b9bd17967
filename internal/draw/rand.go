package draw

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"sync"
)

// Source is a concurrency-safe Rand backed by a pool of PRNGs, each seeded
// from crypto/rand. Any number of plays may draw at the same time without
// sharing a lock on a single generator.
type Source struct {
	pool sync.Pool
}

// NewSource creates a pooled random source for production draws.
func NewSource() *Source {
	return &Source{
		pool: sync.Pool{
			New: func() any {
				var b [8]byte
				if _, err := crand.Read(b[:]); err != nil {
					// crypto/rand failing is not survivable for a fairness-
					// critical path.
					panic(err)
				}
				seed := int64(binary.LittleEndian.Uint64(b[:]))
				return rand.New(rand.NewSource(seed))
			},
		},
	}
}

// Int63n returns a uniform value in [0, n) from a pooled generator.
func (s *Source) Int63n(n int64) int64 {
	r := s.pool.Get().(*rand.Rand)
	v := r.Int63n(n)
	s.pool.Put(r)
	return v
}
