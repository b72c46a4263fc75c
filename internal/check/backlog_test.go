package check

import (
	"context"
	"testing"

	"github.com/tonyroud/replicheck/internal/core/domain"
)

func TestParseBacklogDiagnostic_Sentinel(t *testing.T) {
	diags := []string{
		"No Backlog - member FS02 is in sync with partner FS01",
		"no backlog",
		"Some preamble\nNO BACKLOG for this member\n",
	}
	for _, diag := range diags {
		out := ParseBacklogDiagnostic(diag, "Docs")
		if out.Err || out.Count != 0 {
			t.Errorf("diag %q: expected {count 0}, got %+v", diag, out)
		}
	}
}

func TestParseBacklogDiagnostic_Count(t *testing.T) {
	diag := "Backlog for replicated folder Docs\nMember FS02 Backlog File Count: 17\nOperation Succeeded"
	out := ParseBacklogDiagnostic(diag, "Docs")
	if out.Err {
		t.Fatal("unexpected error outcome")
	}
	if out.Count != 17 {
		t.Errorf("expected 17, got %d", out.Count)
	}
}

func TestParseBacklogDiagnostic_Garbled(t *testing.T) {
	diags := []string{
		"",
		"Operation failed with error 0x80004005",
		"Count: 17",                    // count without the folder key
		"OtherFolder file Count: 17",   // count keyed to a different folder
		"Docs backlog pending unknown", // folder without a count
	}
	for _, diag := range diags {
		out := ParseBacklogDiagnostic(diag, "Docs")
		if !out.Err {
			t.Errorf("diag %q: expected error outcome, got %+v", diag, out)
		}
		if out.Count != domain.BacklogNotAvailable {
			t.Errorf("diag %q: error outcome must carry the N/A sentinel, got %d", diag, out.Count)
		}
	}
}

func TestResolveBacklog_ProviderFailure(t *testing.T) {
	p := &stubProvider{} // backlog hook unset: every query fails
	out := ResolveBacklog(context.Background(), p, "RG01", "Docs", "FS01", "FS02")
	if !out.Err {
		t.Error("provider failure must become the error outcome, not propagate")
	}
}

func TestResolveBacklog_Success(t *testing.T) {
	p := &stubProvider{
		backlog: func(group, folder, src, dst string) (string, error) {
			return "Member " + dst + " Backlog for folder " + folder + " File Count: 42", nil
		},
	}
	out := ResolveBacklog(context.Background(), p, "RG01", "Docs", "FS01", "FS02")
	if out.Err || out.Count != 42 {
		t.Errorf("expected {count 42}, got %+v", out)
	}
}
