package qnotify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestToastAutoDismiss(t *testing.T) {
	c := NewCenterTTL(30 * time.Millisecond)

	toast := c.Error("boom")
	require.Len(t, c.List(), 1)
	require.Equal(t, "Error", toast.Title)
	require.Equal(t, SeverityError, toast.Severity)

	require.Eventually(t, func() bool {
		return len(c.List()) == 0
	}, time.Second, 10*time.Millisecond)
}

func TestToastSubscribe(t *testing.T) {
	c := NewCenter()

	var got []Toast
	c.Subscribe(func(toast Toast) { got = append(got, toast) })

	c.Success("saved")
	c.Warning("careful")

	require.Len(t, got, 2)
	require.Equal(t, "saved", got[0].Message)
	require.Equal(t, SeverityWarning, got[1].Severity)
	require.NotEqual(t, got[0].ID, got[1].ID)
}

func TestBusyGaugeBalance(t *testing.T) {
	g := NewBusyGauge()

	var transitions []bool
	g.OnChange(func(busy bool) { transitions = append(transitions, busy) })

	g.Raise()
	g.Raise()
	require.True(t, g.Busy())

	g.Lower()
	require.True(t, g.Busy())
	g.Lower()
	require.False(t, g.Busy())
	require.Zero(t, g.Outstanding())

	// Only idle<->busy edges notify, not every count change.
	require.Equal(t, []bool{true, false}, transitions)
}

func TestBusyGaugeNeverNegative(t *testing.T) {
	g := NewBusyGauge()
	g.Lower()
	require.Zero(t, g.Outstanding())
	g.Raise()
	require.Equal(t, 1, g.Outstanding())
}
