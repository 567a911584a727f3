package notices

import (
	"sync"
	"time"

	"github.com/freshmartapp/freshmart-backend/pkg/metrics"
	"github.com/google/uuid"
)

// Severity tags a notice for the UI toast styling.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// Notice is a transient, auto-dismissing user-facing message.
type Notice struct {
	ID        string    `json:"id"`
	Severity  Severity  `json:"severity"`
	Message   string    `json:"message"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Center holds the active notices for the storefront page. Notices
// expire after a fixed display duration; expiry never touches cart or
// session state.
type Center struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	metrics *metrics.StorefrontMetrics
	items   []Notice
}

// NewCenter builds a notice center with the given display TTL.
func NewCenter(ttl time.Duration, m *metrics.StorefrontMetrics) *Center {
	if ttl <= 0 {
		ttl = 3 * time.Second
	}
	return &Center{
		ttl:     ttl,
		now:     time.Now,
		metrics: m,
	}
}

// Publish queues a notice for display and returns it.
func (c *Center) Publish(severity Severity, message string) Notice {
	c.mu.Lock()
	defer c.mu.Unlock()

	notice := Notice{
		ID:        uuid.NewString(),
		Severity:  severity,
		Message:   message,
		ExpiresAt: c.now().Add(c.ttl),
	}
	c.prune()
	c.items = append(c.items, notice)
	c.metrics.IncNotice(string(severity))
	return notice
}

// Active returns the notices still within their display window, oldest
// first. Expired notices are dropped.
func (c *Center) Active() []Notice {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.prune()
	out := make([]Notice, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Center) prune() {
	now := c.now()
	kept := c.items[:0]
	for _, n := range c.items {
		if n.ExpiresAt.After(now) {
			kept = append(kept, n)
		}
	}
	c.items = kept
}
