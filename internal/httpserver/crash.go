package httpserver

import (
	"time"

	"go.uber.org/zap"
)

const DefaultCrashDelay = 100 * time.Millisecond

const crashMessage = "intentional crash to test container restart policy"

// Crasher aborts the process from a goroutine that outlives the request
// which triggered it.
type Crasher struct {
	Delay time.Duration
	// Fault must not return normally in production. The default panics
	// outside any handler goroutine, so no recover() can intercept it and the
	// runtime exits with status 2.
	Fault func()

	log *zap.Logger
}

func NewCrasher(log *zap.Logger) *Crasher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Crasher{
		Delay: DefaultCrashDelay,
		Fault: func() { panic(crashMessage) },
		log:   log,
	}
}

// Trigger returns immediately; the fault fires after Delay regardless of
// what happens to the caller.
func (c *Crasher) Trigger() {
	delay := c.Delay
	fault := c.Fault
	log := c.log
	if log == nil {
		log = zap.NewNop()
	}
	go func() {
		time.Sleep(delay)
		log.Error("crashing process on request", zap.Duration("delay", delay))
		_ = log.Sync()
		fault()
	}()
}
