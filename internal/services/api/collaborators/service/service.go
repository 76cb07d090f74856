// Package service holds the roster workflows: listing, intake and status changes
package service

import (
	"context"
	"strconv"

	"github.com/google/uuid"

	"toxmanager/internal/core/lottery"
	"toxmanager/internal/core/normalize"
	"toxmanager/internal/core/roster"
	perr "toxmanager/internal/platform/errors"
	"toxmanager/internal/platform/logger"
	"toxmanager/internal/platform/metrics"
	"toxmanager/internal/services/api/collaborators/domain"
	"toxmanager/internal/store"
)

// AwaitingExam is the last exam placeholder for employees never examined
const AwaitingExam = "Aguardando"

// Service is the collaborators service contract
type Service interface{ domain.ServicePort }

// Options tune listing and intake
type Options struct {
	PageSize    int
	MaxPageSize int
	Rand        lottery.Source
	NewID       func() string
	Metrics     *metrics.Metrics
}

// Svc implements Service over the roster store
type Svc struct {
	roster *store.Roster
	opt    Options
}

// New creates a collaborators service
func New(r *store.Roster, opt Options) *Svc {
	if r == nil {
		panic("collaborators.Service requires a roster store")
	}
	if opt.PageSize < 1 {
		opt.PageSize = 10
	}
	if opt.MaxPageSize < opt.PageSize {
		opt.MaxPageSize = max(100, opt.PageSize)
	}
	if opt.Rand == nil {
		opt.Rand = lottery.Default
	}
	if opt.NewID == nil {
		opt.NewID = uuid.NewString
	}
	return &Svc{roster: r, opt: opt}
}

// List filters a snapshot by in.Query and returns the requested page
func (s *Svc) List(_ context.Context, in domain.ListInput) (roster.Page, error) {
	size := in.Size
	switch {
	case size == 0:
		size = s.opt.PageSize
	case size > s.opt.MaxPageSize:
		return roster.Page{}, perr.WithField(perr.InvalidArgf("size must be at most %d", s.opt.MaxPageSize), "size")
	}
	filtered := roster.Filter(s.roster.Snapshot(), in.Query)
	return roster.SortAndPage(filtered, in.Sort, size, in.Page), nil
}

// Get returns one employee
func (s *Svc) Get(_ context.Context, id string) (roster.Employee, error) {
	return s.roster.Get(id)
}

// Create registers one employee
func (s *Svc) Create(ctx context.Context, in domain.CreateInput) (roster.Employee, error) {
	e := s.intake(in)
	if err := s.roster.Add(e); err != nil {
		return roster.Employee{}, err
	}
	s.added(1)
	logger.C(ctx).Info().Str("employee", e.ID).Str("department", e.Department).Msg("employee registered")
	return e, nil
}

// Import adds every record or none
func (s *Svc) Import(ctx context.Context, in domain.ImportInput) (domain.ImportResult, error) {
	batch := make([]roster.Employee, 0, len(in.Records))
	for _, rec := range in.Records {
		batch = append(batch, s.intake(rec))
	}
	if err := s.roster.Add(batch...); err != nil {
		return domain.ImportResult{}, err
	}
	s.added(len(batch))
	logger.C(ctx).Info().Int("added", len(batch)).Msg("roster imported")
	return domain.ImportResult{Added: len(batch), Items: batch}, nil
}

// UpdateStatus sets the status of one employee
func (s *Svc) UpdateStatus(ctx context.Context, id string, in domain.StatusInput) (roster.Employee, error) {
	st, err := roster.ParseStatus(in.Status)
	if err != nil {
		return roster.Employee{}, perr.WithField(err, "status")
	}
	e, err := s.roster.UpdateStatus(id, st)
	if err != nil {
		return roster.Employee{}, err
	}
	s.opt.Metrics.ObserveStatus(string(st))
	s.syncGauges()
	logger.C(ctx).Info().Str("employee", id).Str("status", string(st)).Msg("status updated")
	return e, nil
}

// intake normalizes in and fills the quick-add defaults
func (s *Svc) intake(in domain.CreateInput) roster.Employee {
	e := roster.Employee{
		ID:                 s.opt.NewID(),
		RegistrationNumber: normalize.Registration(in.RegistrationNumber),
		Name:               normalize.Display(in.Name),
		Gender:             roster.Gender(in.Gender),
		Department:         normalize.Display(in.Department),
		Status:             roster.Status(in.Status),
		LastExamDate:       in.LastExamDate,
	}
	if e.RegistrationNumber == "" {
		e.RegistrationNumber = strconv.Itoa(1000 + s.opt.Rand.IntN(9000))
	}
	if e.Gender == "" {
		e.Gender = roster.GenderMale
		if s.opt.Rand.IntN(2) == 1 {
			e.Gender = roster.GenderFemale
		}
	}
	if e.Status == "" {
		e.Status = roster.StatusPending
	}
	if e.LastExamDate == "" {
		e.LastExamDate = AwaitingExam
	}
	return e
}

func (s *Svc) added(n int) {
	s.opt.Metrics.ObserveAdded(n)
	s.syncGauges()
}

func (s *Svc) syncGauges() {
	if s.opt.Metrics == nil {
		return
	}
	snap := s.roster.Snapshot()
	s.opt.Metrics.SetRoster(len(snap), lottery.CountEligible(snap))
}
