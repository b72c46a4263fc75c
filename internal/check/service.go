package check

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tonyroud/replicheck/internal/core/domain"
	"github.com/tonyroud/replicheck/internal/infra/replica"
)

// ServiceCheckPrefix prefixes the check name of every service-status check.
const ServiceCheckPrefix = "dfsr-service-"

// ServiceRole fixes the severity of a stopped service. The replication
// engine halts replication when absent; the remote-management service only
// degrades backlog queries against remote members.
type ServiceRole int

const (
	RoleEngine ServiceRole = iota
	RoleRemoteManagement
)

func (r ServiceRole) stoppedStatus() domain.Status {
	if r == RoleEngine {
		return domain.StatusCritical
	}
	return domain.StatusWarning
}

// CheckService reports whether a named service is running. A provider
// failure counts as "not running": a service whose state cannot be read is
// indistinguishable from a stopped one for monitoring purposes.
func CheckService(ctx context.Context, p replica.Provider, serviceName string, role ServiceRole) domain.CheckResult {
	name := ServiceCheckPrefix + strings.ToLower(serviceName)

	running, err := p.ServiceStatus(ctx, serviceName)
	if err != nil {
		slog.Warn("Service status query failed", "service", serviceName, "error", err)
	}
	if err == nil && running {
		return domain.CheckResult{
			Status:    domain.StatusOK,
			CheckName: name,
			Message:   fmt.Sprintf("Service %q is running.", serviceName),
		}
	}

	return domain.CheckResult{
		Status:    role.stoppedStatus(),
		CheckName: name,
		Message:   fmt.Sprintf("Service %q is not running.", serviceName),
	}
}
