// Package lottery draws employees for periodic toxicology exams.
// Draws are uniform and without replacement over the Active pool
package lottery

import (
	"math/rand/v2"
	"sync"

	"toxmanager/internal/core/roster"
)

// Source yields a uniform int in [0, n). *rand.Rand satisfies it
type Source interface {
	IntN(n int) int
}

// globalSource delegates to the math/rand/v2 top-level generator, which is
// safe for concurrent use
type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Default is used when Sample gets a nil Source
var Default Source = globalSource{}

// NewSeeded returns a deterministic Source. It is not safe for concurrent
// use, wrap it with Locked when shared
func NewSeeded(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// lockedSource serializes access to a non-concurrent Source
type lockedSource struct {
	mu  sync.Mutex
	src Source
}

// Locked wraps src so it can be shared between goroutines
func Locked(src Source) Source {
	if src == nil {
		return Default
	}
	return &lockedSource{src: src}
}

func (l *lockedSource) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.IntN(n)
}

// Eligible returns the Active records in input order
func Eligible(records []roster.Employee) []roster.Employee {
	pool := make([]roster.Employee, 0, len(records))
	for _, e := range records {
		if e.Active() {
			pool = append(pool, e)
		}
	}
	return pool
}

// CountEligible returns the size of the eligible pool
func CountEligible(records []roster.Employee) int {
	n := 0
	for _, e := range records {
		if e.Active() {
			n++
		}
	}
	return n
}

// Sample picks min(count, |pool|) Active employees uniformly at random without
// replacement. The result is in draw order, index 0 is pick #1.
// count <= 0 yields an empty slice. records is never modified
func Sample(records []roster.Employee, count int, src Source) []roster.Employee {
	if count <= 0 {
		return []roster.Employee{}
	}
	if src == nil {
		src = Default
	}

	pool := Eligible(records) // private copy, safe to shuffle in place
	k := min(count, len(pool))

	// partial Fisher-Yates: after step i, pool[:i+1] is a uniform ordered sample
	for i := 0; i < k; i++ {
		j := i + src.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	out := make([]roster.Employee, k)
	copy(out, pool[:k])
	return out
}
