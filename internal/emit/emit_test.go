package emit

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/tonyroud/replicheck/internal/core/domain"
)

func testReport() domain.Report {
	return domain.Report{
		RunID:     uuid.MustParse("f47ac10b-58cc-4372-a567-0e02b2c3d479"),
		Node:      "FS01",
		StartedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Duration:  1500 * time.Millisecond,
		Results: []domain.CheckResult{
			{Status: domain.StatusOK, CheckName: "dfsr-service-dfsr", Message: `Service "DFSR" is running.`},
			{Status: domain.StatusCritical, CheckName: "dfsr-backlog-Docs", Message: "Backlog is 500."},
		},
	}
}

func TestJSONLines_StatusSerializedAsInt(t *testing.T) {
	var buf bytes.Buffer
	if err := (JSONLines{Out: &buf}).Emit(context.Background(), testReport()); err != nil {
		t.Fatalf("Emit failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected one line per result, got %d", len(lines))
	}

	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &rec); err != nil {
		t.Fatalf("invalid JSON line: %v", err)
	}
	if rec["status"] != float64(2) {
		t.Errorf("expected status code 2, got %v", rec["status"])
	}
	if rec["check_name"] != "dfsr-backlog-Docs" {
		t.Errorf("unexpected check name %v", rec["check_name"])
	}
	if rec["run_id"] != "f47ac10b-58cc-4372-a567-0e02b2c3d479" {
		t.Errorf("unexpected run id %v", rec["run_id"])
	}
}

func TestConsole_RendersEveryResult(t *testing.T) {
	var buf bytes.Buffer
	if err := (Console{Out: &buf}).Emit(context.Background(), testReport()); err != nil {
		t.Fatalf("Emit failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"OK", "CRITICAL", "dfsr-backlog-Docs", "FS01"} {
		if !strings.Contains(out, want) {
			t.Errorf("console output missing %q:\n%s", want, out)
		}
	}
}

type failingSink struct{ err error }

func (f failingSink) Emit(ctx context.Context, report domain.Report) error { return f.err }

type countingSink struct{ calls int }

func (c *countingSink) Emit(ctx context.Context, report domain.Report) error {
	c.calls++
	return nil
}

func TestMulti_AttemptsAllSinks(t *testing.T) {
	sinkErr := errors.New("stream down")
	counter := &countingSink{}
	m := Multi{failingSink{err: sinkErr}, counter}

	if err := m.Emit(context.Background(), testReport()); !errors.Is(err, sinkErr) {
		t.Errorf("expected first sink error, got %v", err)
	}
	if counter.calls != 1 {
		t.Errorf("later sinks must still run, got %d calls", counter.calls)
	}
}
