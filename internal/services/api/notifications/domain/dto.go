// Package domain holds DTOs and ports for the notifications module
package domain

import (
	"context"

	"toxmanager/internal/store"
)

// Inbox is the notification list with its unread badge
type Inbox struct {
	Items  []store.Notification `json:"items"`
	Unread int                  `json:"unread"`
}

// ReadAllResult reports how many notifications changed
type ReadAllResult struct {
	Updated int `json:"updated"`
}

// Notifier is the port other modules push messages through
type Notifier interface {
	Notify(ctx context.Context, kind store.Kind, title, description string) store.Notification
}

// ServicePort is the notifications service contract
type ServicePort interface {
	Notifier
	Inbox(ctx context.Context) (Inbox, error)
	MarkRead(ctx context.Context, id string) (store.Notification, error)
	MarkAllRead(ctx context.Context) (ReadAllResult, error)
	Delete(ctx context.Context, id string) error
}
