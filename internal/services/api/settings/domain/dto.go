// Package domain holds DTOs and ports for the settings module
package domain

import (
	"context"

	"toxmanager/internal/store"
)

// ProfileInput replaces the editable part of the operator profile
type ProfileInput struct {
	Name        string `json:"name"         validate:"required,max=120"       example:"Ana Silva"`
	Email       string `json:"email"        validate:"required,email,max=254" example:"ana.silva@iberia.com.br"`
	DarkMode    bool   `json:"dark_mode"`
	EmailAlerts bool   `json:"email_alerts"`
}

// ServicePort is the settings service contract
type ServicePort interface {
	Get(ctx context.Context) (store.Profile, error)
	Update(ctx context.Context, in ProfileInput) (store.Profile, error)
}
