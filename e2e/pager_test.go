//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEventLogPagerOpensAndCloses(t *testing.T) {
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	require.NoError(t, tf.StartApp(), "Failed to start app")
	require.True(t, tf.Ready(), "App did not render")

	// Generate some traffic for the log
	require.NoError(t, tf.Toggle())
	require.True(t, tf.SeePlain("├ So What"), "Group did not expand")

	// the toggle event reaches the log asynchronously over the bus
	time.Sleep(300 * time.Millisecond)

	require.NoError(t, tf.SendKeys(KeyEventLog))
	require.True(t, tf.SeePlain("GroupToggled"), "Event log did not show the toggle event")

	// ov quits on q and the list view repaints
	require.NoError(t, tf.SendKeys("q"))
	require.True(t, tf.SeeInTail("▼ Kind of Blue (5)"), "List did not come back after pager")

	require.NoError(t, tf.Quit())
	require.True(t, tf.WaitForExit(5*time.Second), "App did not exit on quit")
}
