package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotify_PostsVisibleToast(t *testing.T) {
	c := NewCenter(4 * time.Second)
	id := c.Success("Department created successfully!")

	require.Len(t, c.Toasts(), 1)
	assert.Equal(t, id, c.Toasts()[0].ID)
	assert.Equal(t, LevelSuccess, c.Toasts()[0].Level)
	assert.Equal(t, "Department created successfully!", c.Toasts()[0].Message)
}

func TestDismiss_UnknownIDIsNoOp(t *testing.T) {
	c := NewCenter(0)
	id := c.Error("Failed to create department.")

	c.Dismiss("not-a-real-id")
	require.Len(t, c.Toasts(), 1)

	c.Dismiss(id)
	assert.Empty(t, c.Toasts())

	// A stale expiry tick for an already-dismissed toast.
	c.Dismiss(id)
	assert.Empty(t, c.Toasts())
}

func TestNotifyAfterNav_InvisibleUntilFlush(t *testing.T) {
	c := NewCenter(4 * time.Second)
	c.NotifyAfterNav(LevelSuccess, "User created successfully!")
	assert.Empty(t, c.Toasts(), "deferred toast must not show before navigation")

	promoted := c.FlushNav()
	require.Len(t, promoted, 1)
	require.Len(t, c.Toasts(), 1)
	assert.Equal(t, "User created successfully!", c.Toasts()[0].Message)
	assert.False(t, c.Toasts()[0].Posted.IsZero(), "lifetime starts at flush")

	assert.Empty(t, c.FlushNav(), "second flush has nothing to promote")
}

func TestConfirm_RunsCallbackExactlyOnce(t *testing.T) {
	c := NewCenter(0)
	calls := 0
	c.Ask("Delete this department?", "Delete", func() { calls++ })

	c.Confirm()
	assert.Equal(t, 1, calls)

	// Queue is empty now; further answers do nothing.
	c.Confirm()
	c.Decline()
	assert.Equal(t, 1, calls)
}

func TestDecline_NeverRunsCallback(t *testing.T) {
	c := NewCenter(0)
	called := false
	c.Ask("Archive this project?", "Archive", func() { called = true })

	c.Decline()
	assert.False(t, called)
	_, ok := c.Active()
	assert.False(t, ok)
}

func TestConfirms_AnsweredInArrivalOrder(t *testing.T) {
	c := NewCenter(0)
	var order []string
	c.Ask("first?", "Yes", func() { order = append(order, "first") })
	c.Ask("second?", "Yes", func() { order = append(order, "second") })
	c.Ask("third?", "Yes", func() { order = append(order, "third") })

	active, ok := c.Active()
	require.True(t, ok)
	assert.Equal(t, "first?", active.Message)
	assert.Equal(t, 3, c.PendingConfirms())

	c.Confirm()
	c.Decline() // second dropped
	c.Confirm()

	assert.Equal(t, []string{"first", "third"}, order)
	assert.Zero(t, c.PendingConfirms())
}
