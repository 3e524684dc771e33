package httpserver

import (
	"net/http"

	"go.uber.org/zap"
)

type HealthStatus struct {
	Status        string `json:"status"`
	UptimeSeconds int64  `json:"uptime_seconds"`
	Timestamp     string `json:"timestamp"`
}

func (s *Server) healthStatus(status string) HealthStatus {
	return HealthStatus{
		Status:        status,
		UptimeSeconds: s.clock.UptimeSeconds(),
		Timestamp:     s.clock.Timestamp(),
	}
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.healthStatus("ok"))
}

func (s *Server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	if err := s.ready(r.Context()); err != nil {
		s.log.Warn("readiness check failed", zap.Error(err))
		writeJSON(w, http.StatusServiceUnavailable, s.healthStatus("not ready"))
		return
	}
	writeJSON(w, http.StatusOK, s.healthStatus("ready"))
}
