package httpserver

import (
	"net/http"
)

func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	// OS queries degrade to zero values instead of failing the request.
	info := s.sys.Info(r.Context())
	writeJSON(w, http.StatusOK, info)
}
