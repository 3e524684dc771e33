package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// probe and scrape traffic arrives every few seconds; keep it out of info logs.
var quietPaths = map[string]struct{}{
	"/healthz": {},
	"/readyz":  {},
	"/metrics": {},
}

func requestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				lvl := zapcore.InfoLevel
				if _, ok := quietPaths[r.URL.Path]; ok {
					lvl = zapcore.DebugLevel
				}
				if ce := log.Check(lvl, "http request"); ce != nil {
					ce.Write(
						zap.String("method", r.Method),
						zap.String("path", r.URL.Path),
						zap.Int("status", ww.Status()),
						zap.Int("bytes", ww.BytesWritten()),
						zap.Duration("duration", time.Since(start)),
						zap.String("remote", r.RemoteAddr),
						zap.String("request_id", middleware.GetReqID(r.Context())),
					)
				}
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
