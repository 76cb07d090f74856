// Package service runs and records exam lottery draws
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"toxmanager/internal/core/lottery"
	perr "toxmanager/internal/platform/errors"
	"toxmanager/internal/platform/logger"
	"toxmanager/internal/platform/metrics"
	"toxmanager/internal/services/api/sorteios/domain"
	"toxmanager/internal/store"
)

// Service is the lottery service contract
type Service interface{ domain.ServicePort }

// Options tune the lottery service. Zero values fall back to defaults
type Options struct {
	Max     int
	Rand    lottery.Source
	NewID   func() string
	Now     func() time.Time
	Metrics *metrics.Metrics
	Ports   domain.Ports
}

// Svc implements Service over the roster and draw stores
type Svc struct {
	roster *store.Roster
	draws  *store.Draws
	opt    Options
}

// New creates a lottery service
func New(r *store.Roster, d *store.Draws, opt Options) *Svc {
	if r == nil || d == nil {
		panic("sorteios.Service requires roster and draw stores")
	}
	if opt.Max < 1 {
		opt.Max = 10
	}
	if opt.Rand == nil {
		opt.Rand = lottery.Default
	}
	if opt.NewID == nil {
		opt.NewID = uuid.NewString
	}
	if opt.Now == nil {
		opt.Now = time.Now
	}
	return &Svc{roster: r, draws: d, opt: opt}
}

// Pool reports the eligible pool and the configured maximum
func (s *Svc) Pool(_ context.Context) (domain.PoolInfo, error) {
	return domain.PoolInfo{Eligible: lottery.CountEligible(s.roster.Snapshot()), Max: s.opt.Max}, nil
}

// Draw samples in.Count employees from one roster snapshot and records the
// result. An empty pool is a conflict and records nothing
func (s *Svc) Draw(ctx context.Context, by string, in domain.DrawInput) (store.Draw, error) {
	if in.Count < 1 || in.Count > s.opt.Max {
		return store.Draw{}, perr.WithField(perr.InvalidArgf("count must be between 1 and %d", s.opt.Max), "count")
	}
	snap := s.roster.Snapshot()
	eligible := lottery.CountEligible(snap)
	if eligible == 0 {
		return store.Draw{}, perr.Conflictf("no active employees to draw from")
	}

	picked := lottery.Sample(snap, in.Count, s.opt.Rand)
	d := store.Draw{
		ID:        s.opt.NewID(),
		CreatedAt: s.opt.Now().UTC(),
		CreatedBy: by,
		Requested: in.Count,
		Eligible:  eligible,
		Picks:     make([]store.Pick, len(picked)),
	}
	for i, e := range picked {
		d.Picks[i] = store.Pick{Rank: i + 1, Employee: e}
	}
	if err := s.draws.Record(d); err != nil {
		return store.Draw{}, err
	}

	s.opt.Metrics.ObserveDraw(in.Count, len(picked))
	if n := s.opt.Ports.Notifier; n != nil {
		n.Notify(ctx, store.KindSuccess, "Sorteio realizado",
			fmt.Sprintf("%d colaboradores selecionados para exame toxicológico.", len(picked)))
	}
	logger.C(ctx).Info().
		Str("draw", d.ID).
		Int("requested", in.Count).
		Int("picked", len(picked)).
		Int("eligible", eligible).
		Msg("lottery draw recorded")
	return d, nil
}

// List returns the draw history newest first
func (s *Svc) List(_ context.Context) ([]store.Draw, error) {
	return s.draws.List(), nil
}

// Get returns one draw
func (s *Svc) Get(_ context.Context, id string) (store.Draw, error) {
	return s.draws.Get(id)
}

// Confirm marks a pick as scheduled for collection. The employee status is
// left alone
func (s *Svc) Confirm(ctx context.Context, drawID, employeeID string) (store.Pick, error) {
	p, err := s.draws.Confirm(drawID, employeeID, s.opt.Now())
	if err != nil {
		return store.Pick{}, err
	}
	logger.C(ctx).Info().Str("draw", drawID).Str("employee", employeeID).Int("rank", p.Rank).Msg("pick confirmed")
	return p, nil
}
