package notify

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushAndDrainKeepsOrder(t *testing.T) {
	n := NewNotifier(nil)
	n.Push("first", SeveritySuccess)
	n.Push("second", SeverityInfo)

	out := n.Drain()
	require.Len(t, out, 2)
	assert.Equal(t, "first", out[0].Message)
	assert.Equal(t, "second", out[1].Message)
	assert.Equal(t, SeverityInfo, out[1].Severity)

	assert.Empty(t, n.Drain(), "drain clears the buffer")
}

func TestPendingDoesNotClear(t *testing.T) {
	n := NewNotifier(nil)
	n.Push("kept", SeverityError)

	require.Len(t, n.Pending(), 1)
	require.Len(t, n.Pending(), 1)
	require.Len(t, n.Drain(), 1)
	assert.Empty(t, n.Pending())
}

func TestOverflowDropsOldest(t *testing.T) {
	n := NewNotifier(nil)
	for i := 0; i < maxPending+5; i++ {
		n.Push(fmt.Sprintf("msg-%d", i), SeverityInfo)
	}

	out := n.Drain()
	require.Len(t, out, maxPending)
	assert.Equal(t, "msg-5", out[0].Message)
	assert.Equal(t, fmt.Sprintf("msg-%d", maxPending+4), out[len(out)-1].Message)
}
