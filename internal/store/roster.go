package store

import (
	"slices"
	"strconv"
	"sync"

	"toxmanager/internal/core/roster"
	perr "toxmanager/internal/platform/errors"
)

var errNotOpen = perr.Unavailablef("store not initialized")

// Roster is the canonical ordered list of employees
type Roster struct {
	mu      sync.RWMutex
	records []roster.Employee
	index   map[string]int
}

// NewRoster returns a roster holding records in the given order. Invalid or
// duplicate records panic, this is for seeding and tests
func NewRoster(records ...roster.Employee) *Roster {
	r := &Roster{index: map[string]int{}}
	if len(records) > 0 {
		if err := r.Add(records...); err != nil {
			panic(err)
		}
	}
	return r
}

// Snapshot returns a copy of the roster in canonical order
func (r *Roster) Snapshot() []roster.Employee {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.records)
}

// Len returns the roster size
func (r *Roster) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}

// Get returns one employee by id
func (r *Roster) Get(id string) (roster.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.index[id]
	if !ok {
		return roster.Employee{}, perr.NotFoundf("employee %q not found", id)
	}
	return r.records[i], nil
}

// UpdateStatus replaces the status of one employee and returns the updated record
func (r *Roster) UpdateStatus(id string, st roster.Status) (roster.Employee, error) {
	if !st.Valid() {
		return roster.Employee{}, perr.WithField(perr.InvalidArgf("unknown status %q", st), "status")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.index[id]
	if !ok {
		return roster.Employee{}, perr.NotFoundf("employee %q not found", id)
	}
	r.records[i].Status = st
	return r.records[i], nil
}

// Add validates every record, then prepends the batch in the given order.
// Nothing is written when any record is invalid or its id already exists
func (r *Roster) Add(records ...roster.Employee) error {
	seen := make(map[string]struct{}, len(records))
	for i, e := range records {
		if err := roster.Validate(e); err != nil {
			return perr.WithOp(err, "record "+strconv.Itoa(i))
		}
		if _, dup := seen[e.ID]; dup {
			return perr.WithField(perr.Conflictf("duplicate id %q in batch", e.ID), "id")
		}
		seen[e.ID] = struct{}{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range records {
		if _, exists := r.index[e.ID]; exists {
			return perr.WithField(perr.Conflictf("employee %q already exists", e.ID), "id")
		}
	}
	r.records = append(slices.Clone(records), r.records...)
	r.reindex()
	return nil
}

// Counts returns the number of employees per status, every status present
func (r *Roster) Counts() map[roster.Status]int {
	out := make(map[roster.Status]int, len(roster.Statuses))
	for _, st := range roster.Statuses {
		out[st] = 0
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.records {
		out[e.Status]++
	}
	return out
}

func (r *Roster) reindex() {
	clear(r.index)
	for i, e := range r.records {
		r.index[e.ID] = i
	}
}
