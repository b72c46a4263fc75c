package check

import (
	"context"
	"strings"
	"testing"

	"github.com/tonyroud/replicheck/internal/core/domain"
)

func TestCheckFolderStates_AllHealthy(t *testing.T) {
	p := &stubProvider{
		folderStates: func() ([]domain.FolderState, error) {
			return []domain.FolderState{
				{FolderName: "Docs", StateCode: domain.StateConnected},
				{FolderName: "Media", StateCode: domain.StateProvisioning},
			}, nil
		},
	}

	res := CheckFolderStates(context.Background(), p, domain.DefaultHealthyStates())
	if res.Status != domain.StatusOK {
		t.Fatalf("expected OK, got %v", res.Status)
	}
	if !strings.Contains(res.Message, "2") {
		t.Errorf("message should report the folder count, got %q", res.Message)
	}
}

func TestCheckFolderStates_OffendersListed(t *testing.T) {
	p := &stubProvider{
		folderStates: func() ([]domain.FolderState, error) {
			return []domain.FolderState{
				{FolderName: "Media", StateCode: domain.StateError},
				{FolderName: "Docs", StateCode: domain.StateError},
				{FolderName: "Tools", StateCode: domain.StateAvailable},
			}, nil
		},
	}

	res := CheckFolderStates(context.Background(), p, domain.DefaultHealthyStates())
	if res.Status != domain.StatusWarning {
		t.Fatalf("expected WARNING, got %v", res.Status)
	}
	if !strings.Contains(res.Message, "Docs, Media") {
		t.Errorf("offending folders should be comma-joined, got %q", res.Message)
	}
	if strings.Contains(res.Message, "Tools") {
		t.Errorf("healthy folder must not be listed, got %q", res.Message)
	}
}

func TestCheckFolderStates_CustomHealthySet(t *testing.T) {
	p := &stubProvider{
		folderStates: func() ([]domain.FolderState, error) {
			return []domain.FolderState{{FolderName: "Docs", StateCode: domain.StateDisconnected}}, nil
		},
	}

	// A stricter operator set that excludes DISCONNECTED.
	healthy := []domain.FolderStateCode{domain.StateConnected, domain.StateAvailable}
	res := CheckFolderStates(context.Background(), p, healthy)
	if res.Status != domain.StatusWarning {
		t.Errorf("expected WARNING under custom healthy set, got %v", res.Status)
	}
}

func TestCheckFolderStates_ProviderUnreachable(t *testing.T) {
	p := &stubProvider{}
	res := CheckFolderStates(context.Background(), p, domain.DefaultHealthyStates())
	if res.Status != domain.StatusUnknown {
		t.Errorf("expected UNKNOWN when provider is unreachable, got %v", res.Status)
	}
}
