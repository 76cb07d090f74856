// Package service issues operator sessions
package service

import (
	"context"
	"strings"

	"toxmanager/internal/platform/logger"
	"toxmanager/internal/platform/token"
	"toxmanager/internal/services/api/auth/domain"
	"toxmanager/internal/store"
)

// Service is the auth service contract
type Service interface{ domain.ServicePort }

// Svc implements Service. Any non-empty credentials are accepted, there is
// no user directory behind the dashboard
type Svc struct {
	tokens   *token.Issuer
	settings *store.Settings
	log      *logger.Logger
}

// New creates an auth service
func New(tokens *token.Issuer, settings *store.Settings, log *logger.Logger) *Svc {
	if tokens == nil {
		panic("auth.Service requires a token issuer")
	}
	if settings == nil {
		panic("auth.Service requires the settings store")
	}
	return &Svc{tokens: tokens, settings: settings, log: log}
}

// Login issues a session for in.Email
func (s *Svc) Login(_ context.Context, in domain.LoginInput) (domain.Session, error) {
	op := s.operator(strings.ToLower(strings.TrimSpace(in.Email)))
	raw, exp, err := s.tokens.Issue(op.Email, op.Name)
	if err != nil {
		return domain.Session{}, err
	}
	s.log.Info().Str("user", op.Email).Time("expires_at", exp).Msg("session issued")
	return domain.Session{Token: raw, ExpiresAt: exp, Operator: op}, nil
}

// Me describes the operator behind email
func (s *Svc) Me(_ context.Context, email string) (domain.Operator, error) {
	return s.operator(email), nil
}

// operator resolves the configured profile when email matches it and
// derives a display name from the address otherwise
func (s *Svc) operator(email string) domain.Operator {
	p := s.settings.Get()
	if strings.EqualFold(p.Email, email) {
		return domain.Operator{Name: p.Name, Email: p.Email, Department: p.Department}
	}
	local, _, _ := strings.Cut(email, "@")
	return domain.Operator{Name: local, Email: email}
}
