package client

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNotifier_ShowAndDismiss(t *testing.T) {
	var buf bytes.Buffer
	n := NewNotifier(&buf)
	n.setDelay(10 * time.Millisecond)

	n.Show("Incident 1 logged")
	assert.Equal(t, "Incident 1 logged", n.Active())
	assert.Contains(t, buf.String(), "Incident 1 logged")

	assert.Eventually(t, func() bool {
		return n.Active() == ""
	}, time.Second, 5*time.Millisecond)
}

func TestNotifier_StaleTimerNeverClearsNewerMessage(t *testing.T) {
	var buf bytes.Buffer
	n := NewNotifier(&buf)
	n.setDelay(20 * time.Millisecond)

	n.Show("first")
	time.Sleep(10 * time.Millisecond)
	n.Show("second")

	// Past the first notice's deadline the second must still be showing.
	time.Sleep(15 * time.Millisecond)
	assert.Equal(t, "second", n.Active())

	assert.Eventually(t, func() bool {
		return n.Active() == ""
	}, time.Second, 5*time.Millisecond)
}

func TestNotifier_ShowError(t *testing.T) {
	var buf bytes.Buffer
	n := NewNotifier(&buf)
	n.setDelay(10 * time.Millisecond)

	n.ShowError("Nothing to export")
	assert.Equal(t, "Nothing to export", n.Active())
	assert.Contains(t, buf.String(), "Nothing to export")
}
