// Package domain holds DTOs and ports for the exam lottery module
package domain

import (
	"context"

	notif "toxmanager/internal/services/api/notifications/domain"
	"toxmanager/internal/store"
)

// Ports are the collaborators the lottery needs from other modules
type Ports struct {
	Notifier notif.Notifier
}

// PoolInfo is the eligible pool size and the largest allowed draw
type PoolInfo struct {
	Eligible int `json:"eligible"`
	Max      int `json:"max"`
}

// DrawInput asks for count employees
type DrawInput struct {
	Count int `json:"count" validate:"required,min=1" example:"3"`
}

// ServicePort is the lottery service contract
type ServicePort interface {
	Pool(ctx context.Context) (PoolInfo, error)
	Draw(ctx context.Context, by string, in DrawInput) (store.Draw, error)
	List(ctx context.Context) ([]store.Draw, error)
	Get(ctx context.Context, id string) (store.Draw, error)
	Confirm(ctx context.Context, drawID, employeeID string) (store.Pick, error)
}
