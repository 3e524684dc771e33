// Package clock holds the process start time shared by every handler.
package clock

import "time"

// ServiceClock is created once before the server accepts connections and is
// read-only afterwards, so concurrent handlers can share it without locking.
type ServiceClock struct {
	start time.Time
	now   func() time.Time
}

func New() *ServiceClock {
	return NewWithNow(time.Now)
}

// NewWithNow records now() as the start time and uses now for later readings.
func NewWithNow(now func() time.Time) *ServiceClock {
	return &ServiceClock{start: now(), now: now}
}

func (c *ServiceClock) Start() time.Time {
	return c.start
}

func (c *ServiceClock) Now() time.Time {
	return c.now()
}

// Uptime is never negative, even if the wall clock steps backwards.
func (c *ServiceClock) Uptime() time.Duration {
	d := c.now().Sub(c.start)
	if d < 0 {
		return 0
	}
	return d
}

// UptimeSeconds truncates to whole seconds.
func (c *ServiceClock) UptimeSeconds() int64 {
	return int64(c.Uptime() / time.Second)
}

// Timestamp is the current time in RFC 3339 (UTC, nanosecond precision).
func (c *ServiceClock) Timestamp() string {
	return c.now().UTC().Format(time.RFC3339Nano)
}
