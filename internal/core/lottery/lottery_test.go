package lottery

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toxmanager/internal/core/roster"
)

// scripted replays fixed offsets and records the bounds it was asked for
type scripted struct {
	vals  []int
	calls []int
}

func (s *scripted) IntN(n int) int {
	s.calls = append(s.calls, n)
	v := s.vals[0]
	s.vals = s.vals[1:]
	return v
}

func emp(id string, st roster.Status) roster.Employee {
	return roster.Employee{ID: id, Name: id, Status: st}
}

// A, B, C active and D pending
func abcd() []roster.Employee {
	return []roster.Employee{
		emp("A", roster.StatusActive),
		emp("B", roster.StatusActive),
		emp("D", roster.StatusPending),
		emp("C", roster.StatusActive),
	}
}

func TestSample_NeverPicksIneligible(t *testing.T) {
	in := abcd()
	src := NewSeeded(7)
	for i := 0; i < 500; i++ {
		got := Sample(in, 2, src)
		require.Len(t, got, 2)
		assert.NotEqual(t, got[0].ID, got[1].ID)
		for _, e := range got {
			assert.Contains(t, []string{"A", "B", "C"}, e.ID)
		}
	}
}

func TestSample_Size(t *testing.T) {
	in := []roster.Employee{
		emp("1", roster.StatusActive),
		emp("2", roster.StatusSuspended),
		emp("3", roster.StatusActive),
		emp("4", roster.StatusOnLeave),
	}
	cases := []struct {
		count int
		want  int
	}{
		{-3, 0}, {0, 0}, {1, 1}, {2, 2}, {3, 2}, {50, 2},
	}
	for _, tc := range cases {
		got := Sample(in, tc.count, NewSeeded(1))
		assert.Len(t, got, tc.want, "count %d", tc.count)
		assert.NotNil(t, got)
	}
	assert.Empty(t, Sample(nil, 3, nil))
	assert.Empty(t, Sample([]roster.Employee{emp("x", roster.StatusPending)}, 3, nil))
}

func TestSample_ScriptedOrder(t *testing.T) {
	// pool is [A B C]; offset 2 swaps A and C, offset 0 keeps B
	src := &scripted{vals: []int{2, 0}}
	got := Sample(abcd(), 2, src)

	require.Len(t, got, 2)
	assert.Equal(t, "C", got[0].ID)
	assert.Equal(t, "B", got[1].ID)
	assert.Equal(t, []int{3, 2}, src.calls)
}

func TestSample_DoesNotMutateInput(t *testing.T) {
	in := abcd()
	before := append([]roster.Employee(nil), in...)
	_ = Sample(in, 3, NewSeeded(3))
	assert.Equal(t, before, in)
}

func TestSample_SeededIsDeterministic(t *testing.T) {
	in := abcd()
	a := Sample(in, 3, NewSeeded(42))
	b := Sample(in, 3, NewSeeded(42))
	assert.Equal(t, a, b)
}

func TestSample_UniformSingle(t *testing.T) {
	pool := []roster.Employee{
		emp("a", roster.StatusActive),
		emp("b", roster.StatusActive),
		emp("x", roster.StatusPending),
		emp("c", roster.StatusActive),
		emp("d", roster.StatusActive),
	}
	const trials = 40000
	src := NewSeeded(2024)
	hits := map[string]int{}
	for i := 0; i < trials; i++ {
		got := Sample(pool, 1, src)
		hits[got[0].ID]++
	}

	require.Len(t, hits, 4)
	for id, n := range hits {
		freq := float64(n) / trials
		assert.InDelta(t, 0.25, freq, 0.02, "pick %s frequency", id)
	}
}

func TestSample_UniformSubsets(t *testing.T) {
	const trials = 30000
	src := NewSeeded(99)
	subsets := map[string]int{}
	for i := 0; i < trials; i++ {
		got := Sample(abcd(), 2, src)
		a, b := got[0].ID, got[1].ID
		if a > b {
			a, b = b, a
		}
		subsets[a+b]++
	}

	require.Len(t, subsets, 3)
	for k, n := range subsets {
		assert.InDelta(t, 1.0/3, float64(n)/trials, 0.02, "subset %s", k)
	}
}

func TestEligible(t *testing.T) {
	got := Eligible(abcd())
	assert.Equal(t, []string{"A", "B", "C"}, []string{got[0].ID, got[1].ID, got[2].ID})
	assert.Equal(t, 3, CountEligible(abcd()))
	assert.Equal(t, 0, CountEligible(nil))
}

func TestLocked_ConcurrentUse(t *testing.T) {
	src := Locked(NewSeeded(5))
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				got := Sample(abcd(), 2, src)
				if len(got) != 2 {
					t.Errorf("want 2 picks got %d", len(got))
					return
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, Default, Locked(nil))
}
