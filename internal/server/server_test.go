package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tonyroud/replicheck/internal/check"
	"github.com/tonyroud/replicheck/internal/core/domain"
)

type fixedProvider struct {
	serviceRunning bool
	calls          int
}

func (f *fixedProvider) ListReplicatedFolders(ctx context.Context, localNode string) ([]domain.ReplicatedFolder, error) {
	return nil, nil
}
func (f *fixedProvider) GroupForFolder(ctx context.Context, folderName string) (string, error) {
	return "", nil
}
func (f *fixedProvider) Connections(ctx context.Context, groupName string) ([]domain.Connection, error) {
	return nil, nil
}
func (f *fixedProvider) Backlog(ctx context.Context, group, folder, src, dst string) (string, error) {
	return "no backlog", nil
}
func (f *fixedProvider) ServiceStatus(ctx context.Context, serviceName string) (bool, error) {
	f.calls++
	return f.serviceRunning, nil
}
func (f *fixedProvider) FirstCriticalEvent(ctx context.Context, logName string, since time.Time, levels, eventIDs []int) (*domain.Event, error) {
	return nil, nil
}
func (f *fixedProvider) FolderStates(ctx context.Context) ([]domain.FolderState, error) {
	return nil, nil
}

func testServer(p *fixedProvider) *Server {
	runner := check.NewRunner(p, check.Params{
		Node:          "FS01",
		Thresholds:    check.Thresholds{Warn: 50, Critical: 200},
		Events:        check.EventQuery{LogName: "DFS Replication", LookbackHours: 1},
		EngineService: "DFSR",
		RemoteService: "WinRM",
		HealthyStates: domain.DefaultHealthyStates(),
	}, nil)
	return NewServer(runner, 0)
}

func TestHandleHealth_StatusCodes(t *testing.T) {
	healthy := testServer(&fixedProvider{serviceRunning: true})
	rec := httptest.NewRecorder()
	healthy.handleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("healthy pass: expected 200, got %d", rec.Code)
	}

	// Stopped engine drives the overall verdict critical.
	critical := testServer(&fixedProvider{serviceRunning: false})
	rec = httptest.NewRecorder()
	critical.handleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("critical pass: expected 503, got %d", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid health body: %v", err)
	}
	if body["status"] != float64(domain.StatusCritical) {
		t.Errorf("expected status code 2 in body, got %v", body["status"])
	}
}

func TestHandleDetailed_FullReport(t *testing.T) {
	s := testServer(&fixedProvider{serviceRunning: true})
	rec := httptest.NewRecorder()
	s.handleDetailed(rec, httptest.NewRequest(http.MethodGet, "/health/detailed", nil))

	var report domain.Report
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("invalid report body: %v", err)
	}
	if len(report.Results) == 0 {
		t.Error("detailed report must carry the check results")
	}
	if report.Node != "FS01" {
		t.Errorf("expected node FS01, got %q", report.Node)
	}
}

func TestReport_CachedWithinWindow(t *testing.T) {
	p := &fixedProvider{serviceRunning: true}
	s := testServer(p)

	s.report(context.Background())
	callsAfterFirst := p.calls
	s.report(context.Background())

	if p.calls != callsAfterFirst {
		t.Errorf("second report inside the cache window must not re-run the pass: %d -> %d",
			callsAfterFirst, p.calls)
	}
}
