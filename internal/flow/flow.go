// Package flow models a mutation in flight: one submission at a time, a
// phase machine the UI renders from, and the mapping from server failures to
// the exact message shown to the user.
package flow

import (
	"net/http"
	"time"
)

type Phase int

const (
	Idle Phase = iota
	Submitting
	Succeeded
	Failed
)

func (p Phase) String() string {
	switch p {
	case Submitting:
		return "submitting"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "idle"
	}
}

// Controller guards a single mutation. Begin refuses re-entry while a
// submission is outstanding, which is what makes double-pressing the submit
// key a no-op.
type Controller struct {
	phase Phase
	err   error
}

func (c *Controller) Phase() Phase   { return c.phase }
func (c *Controller) InFlight() bool { return c.phase == Submitting }
func (c *Controller) Err() error     { return c.err }

// Begin moves to Submitting and reports whether the caller owns this
// submission. False means one is already in flight.
func (c *Controller) Begin() bool {
	if c.phase == Submitting {
		return false
	}
	c.phase = Submitting
	c.err = nil
	return true
}

func (c *Controller) Succeed() {
	c.phase = Succeeded
	c.err = nil
}

func (c *Controller) Fail(err error) {
	c.phase = Failed
	c.err = err
}

func (c *Controller) Reset() {
	c.phase = Idle
	c.err = nil
}

// statusErr is what the API layer's errors expose. Declared here so this
// package maps failures without importing the transport.
type statusErr interface {
	HTTPStatus() int
	ServerMessage() string
}

// Messages is a per-flow failure vocabulary. Conflict covers 409, Forbidden
// covers 403, Generic everything else without a usable server message.
type Messages struct {
	Conflict  string
	Forbidden string
	Generic   string
}

// For picks the user-facing message for a failure. A structured 400 carries
// the server's own message verbatim; unset slots fall through to Generic.
func (m Messages) For(err error) string {
	se, ok := err.(statusErr)
	if !ok {
		return m.Generic
	}
	switch se.HTTPStatus() {
	case http.StatusConflict:
		if m.Conflict != "" {
			return m.Conflict
		}
	case http.StatusForbidden:
		if m.Forbidden != "" {
			return m.Forbidden
		}
	case http.StatusBadRequest:
		if msg := se.ServerMessage(); msg != "" {
			return msg
		}
	}
	return m.Generic
}

// Stage is one step of a timed follow-up sequence, e.g. hold the spinner,
// then toast, then navigate.
type Stage struct {
	Name  string
	Delay time.Duration
}

// Sequence is an ordered list of stages. The UI schedules each Delay as a
// tick and advances on arrival; tests walk it directly.
type Sequence []Stage

// Next returns the stage after the given index and whether one exists. Index
// -1 asks for the first stage.
func (s Sequence) Next(i int) (Stage, bool) {
	if i+1 < 0 || i+1 >= len(s) {
		return Stage{}, false
	}
	return s[i+1], true
}
