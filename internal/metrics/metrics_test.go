package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"github.com/prometheus/common/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alscos/probe-demo/internal/sysinfo"
)

type fixedUptime int64

func (f fixedUptime) UptimeSeconds() int64 { return int64(f) }

type fakeSystem struct {
	mem  sysinfo.Memory
	cpus int
}

func (f fakeSystem) Memory(context.Context) sysinfo.Memory { return f.mem }
func (f fakeSystem) CPUCount(context.Context) int          { return f.cpus }

func scrape(t *testing.T, h http.Handler) map[string]*dto.MetricFamily {
	t.Helper()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")

	parser := expfmt.NewTextParser(model.UTF8Validation)
	families, err := parser.TextToMetricFamilies(rec.Body)
	require.NoError(t, err)
	return families
}

func TestRegistryExposesFourGauges(t *testing.T) {
	reg := NewRegistry(fixedUptime(42), fakeSystem{
		mem:  sysinfo.Memory{TotalBytes: 16 << 30, UsedBytes: 5 << 30},
		cpus: 8,
	})

	families := scrape(t, Handler(reg))
	require.Len(t, families, 4)

	want := map[string]float64{
		"app_uptime_seconds":     42,
		"app_memory_total_bytes": float64(16 << 30),
		"app_memory_used_bytes":  float64(5 << 30),
		"app_cpu_count":          8,
	}
	for name, v := range want {
		mf, ok := families[name]
		require.True(t, ok, "missing %s", name)
		assert.Equal(t, dto.MetricType_GAUGE, mf.GetType(), name)
		require.Len(t, mf.GetMetric(), 1, name)
		assert.Equal(t, v, mf.GetMetric()[0].GetGauge().GetValue(), name)
		assert.NotEmpty(t, mf.GetHelp(), name)
	}
}

// ptrSystem lets a test change values between scrapes.
type ptrSystem struct{ f *fakeSystem }

func (p ptrSystem) Memory(ctx context.Context) sysinfo.Memory { return p.f.Memory(ctx) }
func (p ptrSystem) CPUCount(ctx context.Context) int          { return p.f.CPUCount(ctx) }

func TestGaugesEvaluatedPerScrape(t *testing.T) {
	src := &fakeSystem{cpus: 2}
	h := Handler(NewRegistry(fixedUptime(0), ptrSystem{f: src}))

	first := scrape(t, h)
	assert.Equal(t, 2.0, first["app_cpu_count"].GetMetric()[0].GetGauge().GetValue())

	src.cpus = 6
	second := scrape(t, h)
	assert.Equal(t, 6.0, second["app_cpu_count"].GetMetric()[0].GetGauge().GetValue())
}

func TestLiveCollectorGauges(t *testing.T) {
	reg := NewRegistry(fixedUptime(1), sysinfo.NewCollector(nil))

	families := scrape(t, Handler(reg))
	require.Len(t, families, 4)

	for name, mf := range families {
		assert.GreaterOrEqual(t, mf.GetMetric()[0].GetGauge().GetValue(), 0.0, name)
	}
	total := families["app_memory_total_bytes"].GetMetric()[0].GetGauge().GetValue()
	used := families["app_memory_used_bytes"].GetMetric()[0].GetGauge().GetValue()
	assert.LessOrEqual(t, used, total)
}
