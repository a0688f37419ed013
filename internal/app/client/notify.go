package client

import (
	"io"
	"sync"
	"time"

	"github.com/fatih/color"
)

// DismissAfter is how long a notice stays active before auto-dismissing.
const DismissAfter = 3 * time.Second

// Notifier shows transient notices. A single timer keyed to the latest
// notification token does the dismissing, so a stale timer from an
// earlier notice can never clear a newer one.
type Notifier struct {
	mu     sync.Mutex
	out    io.Writer
	delay  time.Duration
	timer  *time.Timer
	token  uint64
	active string
}

func NewNotifier(out io.Writer) *Notifier {
	return &Notifier{
		out:   out,
		delay: DismissAfter,
	}
}

// Show prints the notice and schedules its dismissal, cancelling any
// timer still pending from a previous notice.
func (n *Notifier) Show(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.token++
	token := n.token
	n.active = msg

	if n.timer != nil {
		n.timer.Stop()
	}
	n.timer = time.AfterFunc(n.delay, func() {
		n.dismiss(token)
	})

	color.New(color.FgGreen).Fprintln(n.out, msg)
}

// ShowError prints an error notice with the same dismissal rules.
func (n *Notifier) ShowError(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.token++
	token := n.token
	n.active = msg

	if n.timer != nil {
		n.timer.Stop()
	}
	n.timer = time.AfterFunc(n.delay, func() {
		n.dismiss(token)
	})

	color.New(color.FgRed).Fprintln(n.out, msg)
}

// Active returns the currently displayed notice, empty after dismissal.
func (n *Notifier) Active() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.active
}

func (n *Notifier) dismiss(token uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	// Only the latest notice may be cleared by its own timer.
	if token == n.token {
		n.active = ""
	}
}

// setDelay shortens the dismissal window in tests.
func (n *Notifier) setDelay(d time.Duration) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.delay = d
}
