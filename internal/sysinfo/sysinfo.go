// internal/sysinfo/sysinfo.go
package sysinfo

import (
	"context"
	"os"
	"runtime"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	"go.uber.org/zap"
	"golang.org/x/sys/unix"
)

const UnknownHostname = "unknown"

type ContainerInfo struct {
	Hostname    string            `json:"hostname"`
	UserID      int               `json:"user_id"`
	GroupID     int               `json:"group_id"`
	Environment map[string]string `json:"environment"`
	System      SystemSnapshot    `json:"system"`
}

type SystemSnapshot struct {
	OSName        string `json:"os_name"`
	OSVersion     string `json:"os_version"`
	KernelVersion string `json:"kernel_version"`
	CPUCount      int    `json:"cpu_count"`
	TotalMemoryMB uint64 `json:"total_memory_mb"`
	UsedMemoryMB  uint64 `json:"used_memory_mb"`
}

type Memory struct {
	TotalBytes uint64
	UsedBytes  uint64
}

// Collector queries the OS on every call. Nothing is cached: probes are
// expected to see memory move between calls.
type Collector struct {
	log *zap.Logger

	hostname      func() (string, error)
	environ       func() []string
	hostInfo      func(context.Context) (*host.InfoStat, error)
	virtualMemory func(context.Context) (*mem.VirtualMemoryStat, error)
	cpuCount      func(context.Context) (int, error)
	kernelRelease func() string
}

func NewCollector(log *zap.Logger) *Collector {
	if log == nil {
		log = zap.NewNop()
	}
	return &Collector{
		log:           log,
		hostname:      os.Hostname,
		environ:       os.Environ,
		hostInfo:      host.InfoWithContext,
		virtualMemory: mem.VirtualMemoryWithContext,
		cpuCount: func(ctx context.Context) (int, error) {
			return cpu.CountsWithContext(ctx, true)
		},
		kernelRelease: unameRelease,
	}
}

// Hostname falls back to "unknown" when the lookup fails.
func (c *Collector) Hostname() string {
	h, err := c.hostname()
	if err != nil || h == "" {
		if err != nil {
			c.log.Debug("hostname lookup failed", zap.Error(err))
		}
		return UnknownHostname
	}
	return h
}

func (c *Collector) UserID() int {
	return unix.Geteuid()
}

func (c *Collector) GroupID() int {
	return unix.Getegid()
}

func (c *Collector) Environment() map[string]string {
	return FilterEnvironment(c.environ())
}

func (c *Collector) Info(ctx context.Context) ContainerInfo {
	return ContainerInfo{
		Hostname:    c.Hostname(),
		UserID:      c.UserID(),
		GroupID:     c.GroupID(),
		Environment: c.Environment(),
		System:      c.System(ctx),
	}
}

// System degrades field by field: a failed query leaves its fields empty or zero.
func (c *Collector) System(ctx context.Context) SystemSnapshot {
	snap := SystemSnapshot{}

	hi, err := c.hostInfo(ctx)
	if err != nil {
		c.log.Debug("host info query failed", zap.Error(err))
	}
	if hi != nil {
		snap.OSName = hi.Platform
		if snap.OSName == "" {
			snap.OSName = hi.OS
		}
		snap.OSVersion = hi.PlatformVersion
		snap.KernelVersion = hi.KernelVersion
	}
	if snap.KernelVersion == "" {
		snap.KernelVersion = c.kernelRelease()
	}

	snap.CPUCount = c.CPUCount(ctx)

	m := c.Memory(ctx)
	snap.TotalMemoryMB = m.TotalBytes / 1024 / 1024
	snap.UsedMemoryMB = m.UsedBytes / 1024 / 1024
	return snap
}

// CPUCount reports logical CPUs, falling back to the Go runtime's view.
func (c *Collector) CPUCount(ctx context.Context) int {
	n, err := c.cpuCount(ctx)
	if err != nil || n <= 0 {
		if err != nil {
			c.log.Debug("cpu count query failed", zap.Error(err))
		}
		return runtime.NumCPU()
	}
	return n
}

// Memory reports used = total - available, so page cache is not counted as used.
func (c *Collector) Memory(ctx context.Context) Memory {
	vm, err := c.virtualMemory(ctx)
	if err != nil || vm == nil {
		if err != nil {
			c.log.Debug("memory query failed", zap.Error(err))
		}
		return Memory{}
	}

	m := Memory{TotalBytes: vm.Total}
	if vm.Available <= vm.Total {
		m.UsedBytes = vm.Total - vm.Available
	} else {
		m.UsedBytes = vm.Used
	}
	if m.UsedBytes > m.TotalBytes {
		m.UsedBytes = m.TotalBytes
	}
	return m
}

func unameRelease() string {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return ""
	}
	return unix.ByteSliceToString(u.Release[:])
}
