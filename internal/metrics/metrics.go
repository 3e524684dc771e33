package metrics

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/alscos/probe-demo/internal/sysinfo"
)

type Uptimer interface {
	UptimeSeconds() int64
}

type SystemSource interface {
	Memory(ctx context.Context) sysinfo.Memory
	CPUCount(ctx context.Context) int
}

// NewRegistry holds exactly the four app gauges and no Go/process collectors.
// Every gauge is evaluated at scrape time.
func NewRegistry(up Uptimer, src SystemSource) *prometheus.Registry {
	reg := prometheus.NewRegistry()

	reg.MustRegister(
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Time since application started",
		}, func() float64 {
			return float64(up.UptimeSeconds())
		}),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "app_memory_total_bytes",
			Help: "Total system memory",
		}, func() float64 {
			return float64(src.Memory(context.Background()).TotalBytes)
		}),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "app_memory_used_bytes",
			Help: "Used system memory",
		}, func() float64 {
			return float64(src.Memory(context.Background()).UsedBytes)
		}),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "app_cpu_count",
			Help: "Number of CPUs available",
		}, func() float64 {
			return float64(src.CPUCount(context.Background()))
		}),
	)

	return reg
}

// Handler serves reg in the Prometheus exposition format.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
