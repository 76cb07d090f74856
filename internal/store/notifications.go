package store

import (
	"slices"
	"sync"
	"time"

	perr "toxmanager/internal/platform/errors"
)

// Kind is the severity of a notification
type Kind string

// Notification kinds shown with different icons by the client
const (
	KindWarning Kind = "warning"
	KindInfo    Kind = "info"
	KindSuccess Kind = "success"
)

// Notification is one operator facing message
type Notification struct {
	ID          string    `json:"id"`
	Kind        Kind      `json:"kind"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	Read        bool      `json:"read"`
}

// Notifications keeps messages newest first
type Notifications struct {
	mu    sync.RWMutex
	items []Notification
	now   func() time.Time
	newID func() string
}

// NewNotifications returns an empty store. nil arguments fall back to
// time.Now and uuid
func NewNotifications(now func() time.Time, newID func() string) *Notifications {
	o := build([]Option{WithClock(now), WithIDs(newID)})
	return &Notifications{now: o.now, newID: o.newID}
}

// List returns every notification, newest first
func (n *Notifications) List() []Notification {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return slices.Clone(n.items)
}

// Unread returns how many notifications are still unread
func (n *Notifications) Unread() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	c := 0
	for _, it := range n.items {
		if !it.Read {
			c++
		}
	}
	return c
}

// Push stores a new unread notification at the top and returns it
func (n *Notifications) Push(kind Kind, title, description string) Notification {
	it := Notification{
		ID:          n.newID(),
		Kind:        kind,
		Title:       title,
		Description: description,
		CreatedAt:   n.now().UTC(),
	}
	n.mu.Lock()
	n.items = slices.Insert(n.items, 0, it)
	n.mu.Unlock()
	return it
}

// MarkRead flags one notification as read. Marking twice is not an error
func (n *Notifications) MarkRead(id string) (Notification, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	i := n.find(id)
	if i < 0 {
		return Notification{}, perr.NotFoundf("notification %q not found", id)
	}
	n.items[i].Read = true
	return n.items[i], nil
}

// MarkAllRead flags every notification as read and returns how many changed
func (n *Notifications) MarkAllRead() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	changed := 0
	for i := range n.items {
		if !n.items[i].Read {
			n.items[i].Read = true
			changed++
		}
	}
	return changed
}

// Delete removes one notification
func (n *Notifications) Delete(id string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	i := n.find(id)
	if i < 0 {
		return perr.NotFoundf("notification %q not found", id)
	}
	n.items = slices.Delete(n.items, i, i+1)
	return nil
}

// restore appends an already built notification, used by Seed
func (n *Notifications) restore(it Notification) {
	n.mu.Lock()
	n.items = append(n.items, it)
	n.mu.Unlock()
}

func (n *Notifications) find(id string) int {
	return slices.IndexFunc(n.items, func(it Notification) bool { return it.ID == id })
}
