package httpserver

import (
	"context"
	"embed"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/alscos/probe-demo/internal/clock"
	"github.com/alscos/probe-demo/internal/config"
	"github.com/alscos/probe-demo/internal/metrics"
	"github.com/alscos/probe-demo/internal/sysinfo"
)

//go:embed templates/*.html
var templateFS embed.FS

// ReadinessFunc returns nil when the process should receive traffic.
type ReadinessFunc func(ctx context.Context) error

// AlwaysReady is the default readiness predicate.
func AlwaysReady(context.Context) error { return nil }

type RouterDeps struct {
	Config config.Config
	Clock  *clock.ServiceClock
	Log    *zap.Logger

	// Optional; defaults are built when nil.
	Sys     *sysinfo.Collector
	Metrics http.Handler
	Ready   ReadinessFunc
	Crasher *Crasher
}

type Server struct {
	cfg     config.Config
	clock   *clock.ServiceClock
	log     *zap.Logger
	sys     *sysinfo.Collector
	metrics http.Handler
	ready   ReadinessFunc
	crasher *Crasher
	tpl     *template.Template
}

func NewRouter(deps RouterDeps) (http.Handler, error) {
	s := &Server{
		cfg:     deps.Config,
		clock:   deps.Clock,
		log:     deps.Log,
		sys:     deps.Sys,
		metrics: deps.Metrics,
		ready:   deps.Ready,
		crasher: deps.Crasher,
	}
	if s.clock == nil {
		s.clock = clock.New()
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	if s.sys == nil {
		s.sys = sysinfo.NewCollector(s.log)
	}
	if s.metrics == nil {
		s.metrics = metrics.Handler(metrics.NewRegistry(s.clock, s.sys))
	}
	if s.ready == nil {
		s.ready = AlwaysReady
	}
	if s.crasher == nil {
		s.crasher = NewCrasher(s.log)
	}

	tpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	s.tpl = tpl

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.log))
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleLanding)
	r.Get("/healthz", s.handleHealthz)
	r.Get("/readyz", s.handleReadyz)
	r.Get("/info", s.handleInfo)
	r.Get("/fib", s.handleFib)
	r.Get("/crash", s.handleCrash)
	r.Method(http.MethodGet, "/metrics", s.metrics)

	return r, nil
}
