package notify

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityError   Severity = "error"
)

type Notification struct {
	Message   string    `json:"message"`
	Severity  Severity  `json:"severity"`
	CreatedAt time.Time `json:"createdAt"`
}

const maxPending = 50

// Notifier collects transient user-facing messages until the client fetches
// them. Push never blocks and never fails; when the buffer is full the oldest
// message is dropped.
type Notifier struct {
	mu      sync.Mutex
	pending []Notification
	logger  *zap.Logger
}

func NewNotifier(logger *zap.Logger) *Notifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Notifier{logger: logger}
}

func (n *Notifier) Push(message string, severity Severity) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.pending = append(n.pending, Notification{
		Message:   message,
		Severity:  severity,
		CreatedAt: time.Now(),
	})
	if len(n.pending) > maxPending {
		n.pending = n.pending[len(n.pending)-maxPending:]
	}
	n.logger.Info("notification",
		zap.String("message", message),
		zap.String("severity", string(severity)))
}

// Drain returns all pending notifications, oldest first, and clears the
// buffer.
func (n *Notifier) Drain() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := n.pending
	n.pending = nil
	return out
}

// Pending returns a copy of the buffered notifications without clearing them.
func (n *Notifier) Pending() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := make([]Notification, len(n.pending))
	copy(out, n.pending)
	return out
}
