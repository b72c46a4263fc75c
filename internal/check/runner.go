package check

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tonyroud/replicheck/internal/core/domain"
	"github.com/tonyroud/replicheck/internal/infra/replica"
	"github.com/tonyroud/replicheck/internal/metrics"
)

// FolderEnumCheckName identifies the folder-enumeration step when it fails.
const FolderEnumCheckName = "dfsr-folders"

// AgentCheckName identifies the optional remote-agent probe.
const AgentCheckName = "replication-agent"

// AgentProber reports whether a remote replication agent is serving. Wired
// only when an agent address is configured.
type AgentProber interface {
	Probe(ctx context.Context) (bool, error)
}

// Params carries everything one pass needs besides the provider. All of it
// is explicit configuration; the runner holds no mutable state between
// passes.
type Params struct {
	Node          string
	Thresholds    Thresholds
	Events        EventQuery
	EngineService string
	RemoteService string
	HealthyStates []domain.FolderStateCode
}

// Runner performs one sequential pass of all checks. Checks never overlap
// and never share state; every provider failure surfaces as a degraded
// result on that check alone.
type Runner struct {
	provider replica.Provider
	params   Params
	agent    AgentProber
	now      func() time.Time
}

// NewRunner builds a runner. agent may be nil.
func NewRunner(p replica.Provider, params Params, agent AgentProber) *Runner {
	return &Runner{
		provider: p,
		params:   params,
		agent:    agent,
		now:      time.Now,
	}
}

// Run performs one check pass and returns the report. It never returns an
// error: provider failures are recorded once as degraded results and the
// pass continues. Re-running on a schedule is the caller's job.
func (r *Runner) Run(ctx context.Context) domain.Report {
	started := r.now()
	report := domain.Report{
		RunID:     uuid.New(),
		Node:      r.params.Node,
		StartedAt: started,
	}

	add := func(res domain.CheckResult) {
		report.Results = append(report.Results, res)
		metrics.CheckStatus.WithLabelValues(res.CheckName).Set(float64(res.Status))
	}

	add(CheckService(ctx, r.provider, r.params.EngineService, RoleEngine))
	add(CheckService(ctx, r.provider, r.params.RemoteService, RoleRemoteManagement))
	add(CheckCriticalEvents(ctx, r.provider, r.params.Events, started))

	for _, res := range r.folderChecks(ctx) {
		add(res)
	}

	add(CheckFolderStates(ctx, r.provider, r.params.HealthyStates))

	if r.agent != nil {
		add(r.probeAgent(ctx))
	}

	report.Duration = r.now().Sub(started)
	metrics.PassDuration.Observe(report.Duration.Seconds())
	metrics.PassesTotal.Inc()
	slog.Info("Check pass completed",
		"run_id", report.RunID,
		"results", len(report.Results),
		"overall", report.Overall().String(),
		"duration", report.Duration)
	return report
}

// folderChecks resolves topology and backlog per folder and evaluates each
// against the thresholds. Failures are isolated per folder.
func (r *Runner) folderChecks(ctx context.Context) []domain.CheckResult {
	folders, err := r.provider.ListReplicatedFolders(ctx, r.params.Node)
	if err != nil {
		slog.Warn("Folder enumeration failed", "node", r.params.Node, "error", err)
		metrics.ProviderErrorsTotal.WithLabelValues("list_folders").Inc()
		return []domain.CheckResult{{
			Status:    domain.StatusCritical,
			CheckName: FolderEnumCheckName,
			Message:   "Replicated folders could not be enumerated on this node.",
		}}
	}

	results := make([]domain.CheckResult, 0, len(folders))
	for _, f := range folders {
		topo := ResolveTopology(ctx, r.provider, f.FolderName, r.params.Node)

		group := topo.Group
		if group == "" {
			group = f.GroupName
		}

		var outcome domain.BacklogOutcome
		if topo.ConnectionWarning {
			// No endpoints to query; the evaluator's first branch decides.
			outcome = domain.BacklogError()
			metrics.ProviderErrorsTotal.WithLabelValues("topology").Inc()
		} else {
			outcome = ResolveBacklog(ctx, r.provider, group, f.FolderName,
				topo.SourceComputer, topo.DestComputer)
			if outcome.Err {
				metrics.ProviderErrorsTotal.WithLabelValues("backlog").Inc()
			} else {
				metrics.BacklogFiles.WithLabelValues(f.FolderName, group).Set(float64(outcome.Count))
			}
		}

		results = append(results, Evaluate(f.FolderName, group, outcome,
			r.params.Thresholds, topo.ConnectionWarning))
	}
	return results
}

func (r *Runner) probeAgent(ctx context.Context) domain.CheckResult {
	serving, err := r.agent.Probe(ctx)
	if err != nil {
		slog.Warn("Agent probe failed", "error", err)
	}
	if err == nil && serving {
		return domain.CheckResult{
			Status:    domain.StatusOK,
			CheckName: AgentCheckName,
			Message:   "Remote replication agent is serving.",
		}
	}
	// Like the remote-management service: only remote queries degrade.
	msg := "Remote replication agent reports not serving."
	if err != nil {
		msg = fmt.Sprintf("Remote replication agent is unreachable: %v", err)
	}
	return domain.CheckResult{
		Status:    domain.StatusWarning,
		CheckName: AgentCheckName,
		Message:   msg,
	}
}
