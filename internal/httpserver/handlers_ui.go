package httpserver

import (
	"bytes"
	"net/http"

	"go.uber.org/zap"
)

type landingData struct {
	Hostname string
	Uptime   int64
	UID      int
	Version  string
}

func (s *Server) handleLanding(w http.ResponseWriter, r *http.Request) {
	data := landingData{
		Hostname: s.sys.Hostname(),
		Uptime:   s.clock.UptimeSeconds(),
		UID:      s.sys.UserID(),
		Version:  s.cfg.AppVersion,
	}

	// Render first so a template error cannot leave a half-written 200.
	var buf bytes.Buffer
	if err := s.tpl.ExecuteTemplate(&buf, "index.html", data); err != nil {
		s.log.Error("landing template render failed", zap.Error(err))
		http.Error(w, "template render error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
