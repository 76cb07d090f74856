// Package domain holds DTOs and ports for the dashboard module
package domain

import (
	"context"

	"toxmanager/internal/core/roster"
	collab "toxmanager/internal/services/api/collaborators/domain"
)

// StatusCount is one status tile
type StatusCount struct {
	Status roster.Status `json:"status"`
	Label  string        `json:"label"`
	Count  int           `json:"count"`
}

// KPIs are the headline numbers of the dashboard
type KPIs struct {
	Total    int           `json:"total"`
	Active   int           `json:"active"`
	Eligible int           `json:"eligible"`
	ByStatus []StatusCount `json:"by_status"`
}

// ServicePort is the dashboard service contract
type ServicePort interface {
	KPIs(ctx context.Context) (KPIs, error)
	Recent(ctx context.Context, in collab.ListInput) (roster.Page, error)
}
