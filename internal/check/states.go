package check

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/tonyroud/replicheck/internal/core/domain"
	"github.com/tonyroud/replicheck/internal/infra/replica"
)

// StateCheckName identifies the aggregate folder-state check.
const StateCheckName = "dfsr-folder-state"

// CheckFolderStates aggregates the state codes of every folder the provider
// knows about against an explicit healthy-state set. Any folder outside the
// set is listed in the message and the verdict is WARNING; an unreachable
// provider yields UNKNOWN, distinct from both the healthy and failure
// verdicts.
func CheckFolderStates(ctx context.Context, p replica.Provider, healthy []domain.FolderStateCode) domain.CheckResult {
	states, err := p.FolderStates(ctx)
	if err != nil {
		slog.Warn("Folder state query failed", "error", err)
		return domain.CheckResult{
			Status:    domain.StatusUnknown,
			CheckName: StateCheckName,
			Message:   "Folder states could not be queried from the replication provider.",
		}
	}

	healthySet := make(map[domain.FolderStateCode]struct{}, len(healthy))
	for _, c := range healthy {
		healthySet[c] = struct{}{}
	}

	var offending []string
	for _, st := range states {
		if _, ok := healthySet[st.StateCode]; !ok {
			offending = append(offending, st.FolderName)
		}
	}

	if len(offending) == 0 {
		return domain.CheckResult{
			Status:    domain.StatusOK,
			CheckName: StateCheckName,
			Message:   fmt.Sprintf("All %d replicated folders report a healthy state.", len(states)),
		}
	}

	sort.Strings(offending)
	return domain.CheckResult{
		Status:    domain.StatusWarning,
		CheckName: StateCheckName,
		Message: fmt.Sprintf("Replicated folders in an unhealthy state: %s",
			strings.Join(offending, ", ")),
	}
}
