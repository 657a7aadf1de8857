// Package qnotify holds the transient user-facing state of the client: toast
// notifications and the shared busy gauge that drives the loading indicator.
package qnotify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Severity classifies a toast for presentation.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// DefaultTTL is how long a toast stays visible before auto-dismissal.
const DefaultTTL = 5 * time.Second

// Toast is a transient notification shown to the user.
type Toast struct {
	ID       string
	Title    string
	Message  string
	Severity Severity
	At       time.Time
}

// Center owns the toast list. Toasts auto-dismiss after ttl; subscribers
// receive each toast as it is added.
type Center struct {
	mu     sync.Mutex
	ttl    time.Duration
	toasts []Toast
	subs   []func(Toast)
}

func NewCenter() *Center {
	return &Center{ttl: DefaultTTL}
}

// NewCenterTTL creates a Center with a custom auto-dismiss interval,
// used by tests to keep dismissal fast.
func NewCenterTTL(ttl time.Duration) *Center {
	return &Center{ttl: ttl}
}

// Subscribe registers a callback invoked for every added toast. Callbacks
// run synchronously on the adding goroutine.
func (c *Center) Subscribe(fn func(Toast)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subs = append(c.subs, fn)
}

// Add pushes a toast and schedules its removal after the TTL.
func (c *Center) Add(title, message string, sev Severity) Toast {
	t := Toast{
		ID:       uuid.NewString(),
		Title:    title,
		Message:  message,
		Severity: sev,
		At:       time.Now(),
	}
	c.mu.Lock()
	c.toasts = append(c.toasts, t)
	subs := make([]func(Toast), len(c.subs))
	copy(subs, c.subs)
	c.mu.Unlock()

	time.AfterFunc(c.ttl, func() { c.Remove(t.ID) })

	for _, fn := range subs {
		fn(t)
	}
	return t
}

// Remove dismisses a toast by ID. Unknown IDs are ignored.
func (c *Center) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, t := range c.toasts {
		if t.ID == id {
			c.toasts = append(c.toasts[:i], c.toasts[i+1:]...)
			return
		}
	}
}

// List returns the currently visible toasts.
func (c *Center) List() []Toast {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Toast, len(c.toasts))
	copy(out, c.toasts)
	return out
}

func (c *Center) Success(message string) Toast {
	return c.Add("Success", message, SeveritySuccess)
}

func (c *Center) Error(message string) Toast {
	return c.Add("Error", message, SeverityError)
}

func (c *Center) Warning(message string) Toast {
	return c.Add("Warning", message, SeverityWarning)
}

func (c *Center) Info(message string) Toast {
	return c.Add("Info", message, SeverityInfo)
}
