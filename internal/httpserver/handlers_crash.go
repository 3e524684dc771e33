package httpserver

import (
	"fmt"
	"net/http"
)

func (s *Server) handleCrash(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintf(w, "Crashing in %s... watch your pod restart!\n", s.crasher.Delay)
	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}

	s.crasher.Trigger()
}
