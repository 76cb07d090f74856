// Package service computes the dashboard tiles and the recent roster table
package service

import (
	"context"

	"toxmanager/internal/core/lottery"
	"toxmanager/internal/core/roster"
	collab "toxmanager/internal/services/api/collaborators/domain"
	"toxmanager/internal/services/api/dashboard/domain"
	"toxmanager/internal/store"
)

// Service is the dashboard service contract
type Service interface{ domain.ServicePort }

// Svc implements Service over the roster store
type Svc struct {
	roster   *store.Roster
	pageSize int
}

// New creates a dashboard service. The recent table always uses pageSize
func New(r *store.Roster, pageSize int) *Svc {
	if r == nil {
		panic("dashboard.Service requires a roster store")
	}
	if pageSize < 1 {
		pageSize = 5
	}
	return &Svc{roster: r, pageSize: pageSize}
}

// KPIs counts one snapshot so every number agrees
func (s *Svc) KPIs(_ context.Context) (domain.KPIs, error) {
	snap := s.roster.Snapshot()
	counts := make(map[roster.Status]int, len(roster.Statuses))
	for _, e := range snap {
		counts[e.Status]++
	}
	out := domain.KPIs{
		Total:    len(snap),
		Active:   counts[roster.StatusActive],
		Eligible: lottery.CountEligible(snap),
		ByStatus: make([]domain.StatusCount, 0, len(roster.Statuses)),
	}
	for _, st := range roster.Statuses {
		out.ByStatus = append(out.ByStatus, domain.StatusCount{Status: st, Label: st.Label(), Count: counts[st]})
	}
	return out, nil
}

// Recent pages the filtered roster with the fixed dashboard page size,
// in.Size is ignored
func (s *Svc) Recent(_ context.Context, in collab.ListInput) (roster.Page, error) {
	filtered := roster.Filter(s.roster.Snapshot(), in.Query)
	return roster.SortAndPage(filtered, in.Sort, s.pageSize, in.Page), nil
}
