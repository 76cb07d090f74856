package store

import "sync"

// Profile is the operator settings page
type Profile struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Department  string `json:"department"`
	DarkMode    bool   `json:"dark_mode"`
	EmailAlerts bool   `json:"email_alerts"`
}

// DefaultSettings mirrors the operator profile shipped with the dashboard
func DefaultSettings() Profile {
	return Profile{
		Name:        "Ana Silva",
		Email:       "ana.silva@iberia.com.br",
		Department:  "Saúde Ocupacional",
		EmailAlerts: true,
	}
}

// Settings holds the single operator profile
type Settings struct {
	mu sync.RWMutex
	p  Profile
}

// NewSettings returns settings starting at p
func NewSettings(p Profile) *Settings { return &Settings{p: p} }

// Get returns the current profile
func (s *Settings) Get() Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.p
}

// Update replaces the editable fields. Department is read-only and kept
func (s *Settings) Update(p Profile) Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.Department = s.p.Department
	s.p = p
	return s.p
}
