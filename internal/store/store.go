// Package store keeps the dashboard's mutable state in memory: the roster,
// operator notifications, recorded draws and settings. Each store guards its
// own data and hands out copies, so callers never share backing arrays
package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Store bundles the four stores behind one handle
type Store struct {
	Roster        *Roster
	Notifications *Notifications
	Draws         *Draws
	Settings      *Settings
}

type options struct {
	now   func() time.Time
	newID func() string
}

// Option tweaks store construction
type Option func(*options)

// WithClock overrides time.Now, used for timestamps on notifications and draws
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithIDs overrides the identifier generator (uuid v4 by default)
func WithIDs(fn func() string) Option {
	return func(o *options) {
		if fn != nil {
			o.newID = fn
		}
	}
}

func build(opts []Option) options {
	o := options{now: time.Now, newID: uuid.NewString}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// New returns empty stores with default settings
func New(opts ...Option) *Store {
	o := build(opts)
	return &Store{
		Roster:        NewRoster(),
		Notifications: NewNotifications(o.now, o.newID),
		Draws:         NewDraws(),
		Settings:      NewSettings(DefaultSettings()),
	}
}

// Ping reports readiness. Memory stores are always ready once built
func (s *Store) Ping(_ context.Context) error {
	if s == nil || s.Roster == nil {
		return errNotOpen
	}
	return nil
}
