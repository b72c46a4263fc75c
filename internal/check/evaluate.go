// Package check contains the health checks and the threshold logic reducing
// raw replication signals into uniform check results.
package check

import (
	"fmt"

	"github.com/tonyroud/replicheck/internal/core/domain"
)

// BacklogCheckPrefix prefixes the check name of every per-folder backlog
// check; the folder name is appended regardless of the verdict.
const BacklogCheckPrefix = "dfsr-backlog-"

// Thresholds is the operator-supplied backlog threshold pair. Critical is
// expected to be >= Warn but this is not enforced; Evaluate tests the
// critical branch first so a reversed pair stays well-defined.
type Thresholds struct {
	Warn     int
	Critical int
}

// Evaluate reduces a folder's resolved backlog and topology flags to a single
// verdict. The branch order is the policy: connection failures and backlog
// errors outrank any count, and the critical threshold is tested before the
// warning threshold so critical wins ties.
func Evaluate(folderName, group string, backlog domain.BacklogOutcome, t Thresholds, connectionWarning bool) domain.CheckResult {
	name := BacklogCheckPrefix + folderName

	switch {
	case connectionWarning:
		return domain.CheckResult{
			Status:    domain.StatusCritical,
			CheckName: name,
			Message: fmt.Sprintf(
				"Unable to confirm replication topology for folder %q on this node. Verify the connections of group %q.",
				folderName, group),
		}
	case backlog.Err:
		return domain.CheckResult{
			Status:    domain.StatusCritical,
			CheckName: name,
			Message: fmt.Sprintf(
				"Backlog could not be calculated for folder %q in group %q.",
				folderName, group),
		}
	case backlog.Count >= t.Critical:
		return domain.CheckResult{
			Status:    domain.StatusCritical,
			CheckName: name,
			Message: fmt.Sprintf(
				"Backlog for folder %q in group %q is %d. Investigate urgently.",
				folderName, group, backlog.Count),
		}
	case backlog.Count >= t.Warn:
		return domain.CheckResult{
			Status:    domain.StatusWarning,
			CheckName: name,
			Message: fmt.Sprintf(
				"Backlog for folder %q in group %q is %d.",
				folderName, group, backlog.Count),
		}
	case backlog.Count > 0:
		return domain.CheckResult{
			Status:    domain.StatusOK,
			CheckName: name,
			Message: fmt.Sprintf(
				"Backlog for folder %q in group %q is %d, below the warning threshold.",
				folderName, group, backlog.Count),
		}
	default:
		return domain.CheckResult{
			Status:    domain.StatusOK,
			CheckName: name,
			Message: fmt.Sprintf(
				"No backlog: backlog for folder %q in group %q is 0.",
				folderName, group),
		}
	}
}
