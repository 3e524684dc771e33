// Package workload burns CPU on request for load and autoscaling tests.
package workload

import (
	"strconv"
	"strings"
	"time"
)

const (
	DefaultN uint64 = 10
	// MaxN bounds the exponential recursion; F(45) takes seconds, not hours.
	MaxN uint64 = 45
)

type FibResult struct {
	N             uint64  `json:"n"`
	Result        uint64  `json:"result"`
	ComputationMs float64 `json:"computation_ms"`
}

// Fib is deliberately the naive double recursion.
func Fib(n uint64) uint64 {
	if n <= 1 {
		return n
	}
	return Fib(n-1) + Fib(n-2)
}

// ParseN never rejects input: missing or malformed values become DefaultN and
// anything above MaxN is clamped.
func ParseN(raw string) uint64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultN
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return DefaultN
	}
	return Clamp(n)
}

func Clamp(n uint64) uint64 {
	if n > MaxN {
		return MaxN
	}
	return n
}

// Run clamps n, computes F(n) and measures wall-clock time.
func Run(n uint64) FibResult {
	n = Clamp(n)
	start := time.Now()
	result := Fib(n)
	elapsed := time.Since(start)

	return FibResult{
		N:             n,
		Result:        result,
		ComputationMs: float64(elapsed.Nanoseconds()) / float64(time.Millisecond),
	}
}
