package check

import (
	"context"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/tonyroud/replicheck/internal/core/domain"
	"github.com/tonyroud/replicheck/internal/infra/replica"
)

// noBacklogSentinel is the phrase the provider emits when a folder has
// nothing queued. Matched case-insensitively anywhere in the diagnostic.
const noBacklogSentinel = "no backlog"

// ResolveBacklog queries the provider for a folder's backlog and normalizes
// the diagnostic text into a count-or-error outcome. A provider failure or
// unparsable diagnostic becomes the error outcome; nothing is raised to the
// caller, so one folder's failure can never abort a batch of checks.
func ResolveBacklog(ctx context.Context, p replica.Provider, group, folder, sourceComputer, destComputer string) domain.BacklogOutcome {
	diag, err := p.Backlog(ctx, group, folder, sourceComputer, destComputer)
	if err != nil {
		slog.Warn("Backlog query failed",
			"group", group, "folder", folder,
			"source", sourceComputer, "dest", destComputer,
			"error", err)
		return domain.BacklogError()
	}
	return ParseBacklogDiagnostic(diag, folder)
}

// ParseBacklogDiagnostic extracts the three-way outcome from the provider's
// diagnostic stream: the "no backlog" sentinel means zero, a decimal count
// following the folder name is the backlog, and anything else is an error.
// Unparsable output must not collapse to zero or a real backlog would be
// hidden.
func ParseBacklogDiagnostic(diag, folder string) domain.BacklogOutcome {
	if strings.Contains(strings.ToLower(diag), noBacklogSentinel) {
		return domain.BacklogCount(0)
	}

	re := regexp.MustCompile(`(?is)` + regexp.QuoteMeta(folder) + `\W.*?count:\s*(\d+)`)
	if m := re.FindStringSubmatch(diag); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return domain.BacklogCount(n)
		}
	}

	slog.Warn("Unparsable backlog diagnostic", "folder", folder)
	return domain.BacklogError()
}
