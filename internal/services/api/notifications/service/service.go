// Package service manages the operator inbox
package service

import (
	"context"

	"toxmanager/internal/platform/logger"
	"toxmanager/internal/services/api/notifications/domain"
	"toxmanager/internal/store"
)

// Service is the notifications service contract
type Service interface{ domain.ServicePort }

// Svc implements Service over the notifications store
type Svc struct{ inbox *store.Notifications }

// New creates a notifications service
func New(n *store.Notifications) *Svc {
	if n == nil {
		panic("notifications.Service requires a notifications store")
	}
	return &Svc{inbox: n}
}

// Notify pushes an unread message to the top of the inbox
func (s *Svc) Notify(ctx context.Context, kind store.Kind, title, description string) store.Notification {
	n := s.inbox.Push(kind, title, description)
	logger.C(ctx).Info().Str("notification", n.ID).Str("kind", string(kind)).Msg("notification pushed")
	return n
}

// Inbox lists every notification newest first
func (s *Svc) Inbox(_ context.Context) (domain.Inbox, error) {
	return domain.Inbox{Items: s.inbox.List(), Unread: s.inbox.Unread()}, nil
}

// MarkRead flags one notification as read
func (s *Svc) MarkRead(ctx context.Context, id string) (store.Notification, error) {
	n, err := s.inbox.MarkRead(id)
	if err != nil {
		return store.Notification{}, err
	}
	logger.C(ctx).Debug().Str("notification", id).Msg("notification read")
	return n, nil
}

// MarkAllRead flags the whole inbox as read
func (s *Svc) MarkAllRead(ctx context.Context) (domain.ReadAllResult, error) {
	n := s.inbox.MarkAllRead()
	logger.C(ctx).Info().Int("updated", n).Msg("inbox marked read")
	return domain.ReadAllResult{Updated: n}, nil
}

// Delete removes one notification
func (s *Svc) Delete(ctx context.Context, id string) error {
	if err := s.inbox.Delete(id); err != nil {
		return err
	}
	logger.C(ctx).Info().Str("notification", id).Msg("notification deleted")
	return nil
}
