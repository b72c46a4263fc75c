// Package server exposes check passes over HTTP for polling monitors.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tonyroud/replicheck/internal/check"
	"github.com/tonyroud/replicheck/internal/core/domain"
)

// cacheWindow bounds how often polling monitors can trigger a fresh pass.
const cacheWindow = 10 * time.Second

// Server runs a check pass on demand and serves the report.
type Server struct {
	runner *check.Runner
	server *http.Server

	mu         sync.Mutex
	lastRun    time.Time
	lastReport domain.Report
}

// NewServer builds the HTTP surface around a runner.
func NewServer(runner *check.Runner, port int) *Server {
	mux := http.NewServeMux()
	s := &Server{
		runner: runner,
		server: &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: mux,
		},
	}

	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/health/detailed", s.handleDetailed)
	mux.Handle("/metrics", promhttp.Handler())

	return s
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Stop stops the HTTP server.
func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// report returns a recent report, re-running the pass only when the cached
// one has aged out. The checks themselves stay one-shot and sequential.
func (s *Server) report(ctx context.Context) domain.Report {
	s.mu.Lock()
	defer s.mu.Unlock()

	if time.Since(s.lastRun) < cacheWindow && len(s.lastReport.Results) > 0 {
		return s.lastReport
	}

	s.lastReport = s.runner.Run(ctx)
	s.lastRun = time.Now()
	return s.lastReport
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	report := s.report(r.Context())
	overall := report.Overall()

	w.Header().Set("Content-Type", "application/json")
	if overall == domain.StatusCritical {
		w.WriteHeader(http.StatusServiceUnavailable)
	} else {
		w.WriteHeader(http.StatusOK)
	}

	_ = json.NewEncoder(w).Encode(map[string]any{
		"status": int(overall),
		"state":  overall.String(),
	})
}

func (s *Server) handleDetailed(w http.ResponseWriter, r *http.Request) {
	report := s.report(r.Context())
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(report)
}
