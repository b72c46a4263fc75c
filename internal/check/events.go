package check

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tonyroud/replicheck/internal/core/domain"
	"github.com/tonyroud/replicheck/internal/infra/replica"
)

// EventCheckName identifies the critical-event check.
const EventCheckName = "dfsr-critical-events"

// EventQuery parameterizes the critical-event check: which log to search,
// how far back, and which severity levels and event identifiers count as a
// replication stoppage.
type EventQuery struct {
	LogName       string
	LookbackHours int
	Levels        []int
	EventIDs      []int
}

// CheckCriticalEvents queries the event log for the first replication-stopped
// event inside the lookback window. This is an existence check: one match is
// critical, zero matches is healthy. A provider failure is critical too,
// since an unreadable log hides real stoppages.
func CheckCriticalEvents(ctx context.Context, p replica.Provider, q EventQuery, now time.Time) domain.CheckResult {
	hours := q.LookbackHours
	if hours <= 0 {
		hours = 1
	}
	since := now.Add(-time.Duration(hours) * time.Hour)

	ev, err := p.FirstCriticalEvent(ctx, q.LogName, since, q.Levels, q.EventIDs)
	if err != nil {
		slog.Warn("Event log query failed", "log", q.LogName, "error", err)
		return domain.CheckResult{
			Status:    domain.StatusCritical,
			CheckName: EventCheckName,
			Message:   fmt.Sprintf("Unable to query event log %q for replication errors.", q.LogName),
		}
	}

	if ev != nil {
		return domain.CheckResult{
			Status:    domain.StatusCritical,
			CheckName: EventCheckName,
			Message: fmt.Sprintf(
				"Replication error event %d found in log %q within the last %d hour(s): %s",
				ev.ID, q.LogName, hours, ev.Message),
		}
	}

	return domain.CheckResult{
		Status:    domain.StatusOK,
		CheckName: EventCheckName,
		Message: fmt.Sprintf(
			"No replication error events in log %q within the last %d hour(s).",
			q.LogName, hours),
	}
}
