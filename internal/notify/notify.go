// Package notify holds transient user feedback: toasts with a fixed
// lifetime, toasts deferred until after a navigation, and a FIFO queue of
// confirmation requests. It is plain state; rendering and timers belong to
// the caller.
package notify

import (
	"time"

	"github.com/google/uuid"
)

type Level int

const (
	LevelSuccess Level = iota
	LevelError
	LevelInfo
)

type Toast struct {
	ID      string
	Level   Level
	Message string
	Posted  time.Time
}

// Request is one pending confirmation. OnConfirm runs at most once, and only
// through Confirm; Decline drops the request without running anything.
type Request struct {
	ID           string
	Message      string
	ConfirmLabel string
	OnConfirm    func()
}

// Center owns the toast list and the confirm queue for one UI instance.
type Center struct {
	ttl     time.Duration
	now     func() time.Time
	toasts  []Toast
	pending []Toast

	confirms []Request
}

func NewCenter(ttl time.Duration) *Center {
	if ttl <= 0 {
		ttl = 4 * time.Second
	}
	return &Center{ttl: ttl, now: time.Now}
}

func (c *Center) TTL() time.Duration { return c.ttl }

// Notify posts a toast immediately and returns its ID so the caller can
// schedule the expiry tick.
func (c *Center) Notify(level Level, msg string) string {
	t := Toast{
		ID:      uuid.NewString(),
		Level:   level,
		Message: msg,
		Posted:  c.now(),
	}
	c.toasts = append(c.toasts, t)
	return t.ID
}

func (c *Center) Success(msg string) string { return c.Notify(LevelSuccess, msg) }
func (c *Center) Error(msg string) string   { return c.Notify(LevelError, msg) }
func (c *Center) Info(msg string) string    { return c.Notify(LevelInfo, msg) }

// NotifyAfterNav queues a toast that stays invisible until FlushNav. Used by
// flows that navigate first and report on the destination screen.
func (c *Center) NotifyAfterNav(level Level, msg string) {
	c.pending = append(c.pending, Toast{
		ID:      uuid.NewString(),
		Level:   level,
		Message: msg,
	})
}

// FlushNav promotes deferred toasts into the visible list, stamping them at
// flush time so their lifetime starts on the destination screen. Returns the
// promoted toasts so the caller can schedule expiries.
func (c *Center) FlushNav() []Toast {
	if len(c.pending) == 0 {
		return nil
	}
	promoted := make([]Toast, 0, len(c.pending))
	for _, t := range c.pending {
		t.Posted = c.now()
		c.toasts = append(c.toasts, t)
		promoted = append(promoted, t)
	}
	c.pending = nil
	return promoted
}

// Dismiss removes a toast by ID. Unknown IDs are a no-op, which makes stale
// expiry ticks harmless.
func (c *Center) Dismiss(id string) {
	for i, t := range c.toasts {
		if t.ID == id {
			c.toasts = append(c.toasts[:i], c.toasts[i+1:]...)
			return
		}
	}
}

func (c *Center) Toasts() []Toast { return c.toasts }

// Ask enqueues a confirmation request. Requests are answered strictly in
// arrival order; a second Ask while one is showing waits its turn instead of
// replacing it.
func (c *Center) Ask(message, confirmLabel string, onConfirm func()) string {
	r := Request{
		ID:           uuid.NewString(),
		Message:      message,
		ConfirmLabel: confirmLabel,
		OnConfirm:    onConfirm,
	}
	c.confirms = append(c.confirms, r)
	return r.ID
}

// Active is the confirmation currently owed an answer, if any.
func (c *Center) Active() (Request, bool) {
	if len(c.confirms) == 0 {
		return Request{}, false
	}
	return c.confirms[0], true
}

// Confirm answers the active request affirmatively, running its callback
// exactly once, then advances the queue.
func (c *Center) Confirm() {
	if len(c.confirms) == 0 {
		return
	}
	r := c.confirms[0]
	c.confirms = c.confirms[1:]
	if r.OnConfirm != nil {
		r.OnConfirm()
	}
}

// Decline drops the active request without running its callback.
func (c *Center) Decline() {
	if len(c.confirms) == 0 {
		return
	}
	c.confirms = c.confirms[1:]
}

func (c *Center) PendingConfirms() int { return len(c.confirms) }
