package httpserver

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/alscos/probe-demo/internal/workload"
)

func (s *Server) handleFib(w http.ResponseWriter, r *http.Request) {
	n := workload.ParseN(r.URL.Query().Get("n"))
	res := workload.Run(n)

	s.log.Debug("fibonacci computed",
		zap.Uint64("n", res.N),
		zap.Float64("computation_ms", res.ComputationMs),
	)
	writeJSON(w, http.StatusOK, res)
}
