package store

import (
	"slices"
	"sync"
	"time"

	"toxmanager/internal/core/roster"
	perr "toxmanager/internal/platform/errors"
	ptime "toxmanager/internal/platform/time"
)

// Pick is one employee selected by a draw. Rank 1 is the first pick
type Pick struct {
	Rank        int             `json:"rank"`
	Employee    roster.Employee `json:"employee"`
	Confirmed   bool            `json:"confirmed"`
	ConfirmedAt *time.Time      `json:"confirmed_at,omitempty"`
}

// Draw is one recorded lottery run
type Draw struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	CreatedBy string    `json:"created_by,omitempty"`
	Requested int       `json:"requested"`
	Eligible  int       `json:"eligible"`
	Picks     []Pick    `json:"picks"`
}

func (d Draw) clone() Draw {
	d.Picks = slices.Clone(d.Picks)
	return d
}

// Draws keeps recorded draws, newest first
type Draws struct {
	mu    sync.RWMutex
	items []Draw
}

// NewDraws returns an empty draw history
func NewDraws() *Draws { return &Draws{} }

// Record stores d at the top of the history
func (d *Draws) Record(draw Draw) error {
	if draw.ID == "" {
		return perr.WithField(perr.InvalidArgf("draw id is required"), "id")
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.find(draw.ID) >= 0 {
		return perr.Conflictf("draw %q already recorded", draw.ID)
	}
	d.items = slices.Insert(d.items, 0, draw.clone())
	return nil
}

// List returns every draw, newest first
func (d *Draws) List() []Draw {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]Draw, len(d.items))
	for i, it := range d.items {
		out[i] = it.clone()
	}
	return out
}

// Get returns one draw by id
func (d *Draws) Get(id string) (Draw, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	i := d.find(id)
	if i < 0 {
		return Draw{}, perr.NotFoundf("draw %q not found", id)
	}
	return d.items[i].clone(), nil
}

// Confirm marks the pick of employeeID in drawID as scheduled for collection
func (d *Draws) Confirm(drawID, employeeID string, at time.Time) (Pick, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	i := d.find(drawID)
	if i < 0 {
		return Pick{}, perr.NotFoundf("draw %q not found", drawID)
	}
	picks := d.items[i].Picks
	j := slices.IndexFunc(picks, func(p Pick) bool { return p.Employee.ID == employeeID })
	if j < 0 {
		return Pick{}, perr.NotFoundf("employee %q was not picked in draw %q", employeeID, drawID)
	}
	if picks[j].Confirmed {
		return Pick{}, perr.Conflictf("pick of employee %q already confirmed", employeeID)
	}
	picks[j].Confirmed = true
	picks[j].ConfirmedAt = ptime.Ptr(at.UTC())
	return picks[j], nil
}

func (d *Draws) find(id string) int {
	return slices.IndexFunc(d.items, func(it Draw) bool { return it.ID == id })
}
