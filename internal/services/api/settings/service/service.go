// Package service reads and edits the operator profile
package service

import (
	"context"
	"strings"

	"toxmanager/internal/core/normalize"
	"toxmanager/internal/platform/logger"
	"toxmanager/internal/services/api/settings/domain"
	"toxmanager/internal/store"
)

// Service is the settings service contract
type Service interface{ domain.ServicePort }

// Svc implements Service over the settings store
type Svc struct{ s *store.Settings }

// New creates a settings service
func New(s *store.Settings) *Svc {
	if s == nil {
		panic("settings.Service requires a settings store")
	}
	return &Svc{s: s}
}

// Get returns the current profile
func (s *Svc) Get(_ context.Context) (store.Profile, error) { return s.s.Get(), nil }

// Update stores the editable fields, the department is kept
func (s *Svc) Update(ctx context.Context, in domain.ProfileInput) (store.Profile, error) {
	p := s.s.Update(store.Profile{
		Name:        normalize.Display(in.Name),
		Email:       strings.ToLower(strings.TrimSpace(in.Email)),
		DarkMode:    in.DarkMode,
		EmailAlerts: in.EmailAlerts,
	})
	logger.C(ctx).Info().Bool("dark_mode", p.DarkMode).Bool("email_alerts", p.EmailAlerts).Msg("settings updated")
	return p, nil
}
