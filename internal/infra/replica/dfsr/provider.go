// Package dfsr binds the replica.Provider interface to the Windows DFS
// Replication tooling (WMI via wmic, dfsrdiag, sc, wevtutil). All output is
// text; the parsers here turn it into the structured signals the checks
// consume.
package dfsr

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/tonyroud/replicheck/internal/core/domain"
)

const dfsrNamespace = `\\root\microsoftdfs`

// runFunc executes an external command and returns its combined output.
// Injectable so parsers are testable without the platform tools.
type runFunc func(ctx context.Context, name string, args ...string) (string, error)

func execRun(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		return string(out), fmt.Errorf("%s failed: %w", name, err)
	}
	return string(out), nil
}

// Provider implements replica.Provider against the local DFSR tooling.
type Provider struct {
	run runFunc
}

// NewProvider returns a provider shelling out to the platform tools.
func NewProvider() *Provider {
	return &Provider{run: execRun}
}

func (p *Provider) ListReplicatedFolders(ctx context.Context, localNode string) ([]domain.ReplicatedFolder, error) {
	out, err := p.run(ctx, "wmic",
		"/namespace:"+dfsrNamespace,
		"path", "DfsrReplicatedFolderConfig",
		"get", "ReplicatedFolderName,ReplicationGroupName,RootPath",
		"/format:csv")
	if err != nil {
		return nil, fmt.Errorf("list replicated folders: %w", err)
	}

	var folders []domain.ReplicatedFolder
	for _, rec := range parseCSV(out, 4) {
		// Node,ReplicatedFolderName,ReplicationGroupName,RootPath
		folders = append(folders, domain.ReplicatedFolder{
			FolderName:  rec[1],
			GroupName:   rec[2],
			ContentPath: rec[3],
		})
	}
	return folders, nil
}

func (p *Provider) GroupForFolder(ctx context.Context, folderName string) (string, error) {
	out, err := p.run(ctx, "wmic",
		"/namespace:"+dfsrNamespace,
		"path", "DfsrReplicatedFolderConfig",
		"where", fmt.Sprintf("ReplicatedFolderName='%s'", folderName),
		"get", "ReplicationGroupName",
		"/format:csv")
	if err != nil {
		return "", fmt.Errorf("group for folder %q: %w", folderName, err)
	}

	for _, rec := range parseCSV(out, 2) {
		return rec[1], nil
	}
	return "", fmt.Errorf("folder %q not found in replication configuration", folderName)
}

func (p *Provider) Connections(ctx context.Context, groupName string) ([]domain.Connection, error) {
	out, err := p.run(ctx, "wmic",
		"/namespace:"+dfsrNamespace,
		"path", "DfsrConnectionConfig",
		"where", fmt.Sprintf("ReplicationGroupName='%s'", groupName),
		"get", "MemberName,PartnerName",
		"/format:csv")
	if err != nil {
		return nil, fmt.Errorf("connections for group %q: %w", groupName, err)
	}

	var conns []domain.Connection
	for _, rec := range parseCSV(out, 3) {
		// Node,MemberName,PartnerName: MemberName sends to PartnerName.
		conns = append(conns, domain.Connection{
			SourceComputer: rec[1],
			DestComputer:   rec[2],
		})
	}
	return conns, nil
}

// Backlog runs dfsrdiag and returns its diagnostic output verbatim. The
// backlog resolver owns the parsing contract (sentinel, count, error).
func (p *Provider) Backlog(ctx context.Context, group, folder, sourceComputer, destComputer string) (string, error) {
	out, err := p.run(ctx, "dfsrdiag", "backlog",
		"/rgname:"+group,
		"/rfname:"+folder,
		"/smem:"+sourceComputer,
		"/rmem:"+destComputer)
	if err != nil {
		return "", fmt.Errorf("backlog query for folder %q: %w", folder, err)
	}
	return out, nil
}

func (p *Provider) ServiceStatus(ctx context.Context, serviceName string) (bool, error) {
	out, err := p.run(ctx, "sc", "query", serviceName)
	if err != nil {
		return false, fmt.Errorf("service status for %q: %w", serviceName, err)
	}
	return strings.Contains(out, "RUNNING"), nil
}

func (p *Provider) FirstCriticalEvent(ctx context.Context, logName string, since time.Time, levels, eventIDs []int) (*domain.Event, error) {
	out, err := p.run(ctx, "wevtutil", "qe", logName,
		"/q:"+eventQuery(since, levels, eventIDs),
		"/c:1", "/rd:true", "/f:text")
	if err != nil {
		return nil, fmt.Errorf("event log query for %q: %w", logName, err)
	}
	return parseEvent(out), nil
}

func (p *Provider) FolderStates(ctx context.Context) ([]domain.FolderState, error) {
	out, err := p.run(ctx, "wmic",
		"/namespace:"+dfsrNamespace,
		"path", "DfsrReplicatedFolderInfo",
		"get", "ReplicatedFolderName,State",
		"/format:csv")
	if err != nil {
		return nil, fmt.Errorf("folder states: %w", err)
	}

	var states []domain.FolderState
	for _, rec := range parseCSV(out, 3) {
		code, convErr := strconv.Atoi(rec[2])
		if convErr != nil {
			continue
		}
		states = append(states, domain.FolderState{
			FolderName: rec[1],
			StateCode:  domain.FolderStateCode(code),
		})
	}
	return states, nil
}

// eventQuery builds the XPath filter wevtutil expects: severity levels,
// event IDs and a time floor.
func eventQuery(since time.Time, levels, eventIDs []int) string {
	var levelTerms, idTerms []string
	for _, l := range levels {
		levelTerms = append(levelTerms, fmt.Sprintf("Level=%d", l))
	}
	for _, id := range eventIDs {
		idTerms = append(idTerms, fmt.Sprintf("EventID=%d", id))
	}
	ms := time.Since(since).Milliseconds()
	return fmt.Sprintf("*[System[(%s) and (%s) and TimeCreated[timediff(@SystemTime) <= %d]]]",
		strings.Join(levelTerms, " or "), strings.Join(idTerms, " or "), ms)
}

// parseCSV splits wmic /format:csv output into records with the expected
// column count, skipping the header and blank lines.
func parseCSV(out string, cols int) [][]string {
	var recs [][]string
	header := true
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if header {
			header = false
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) != cols {
			continue
		}
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		recs = append(recs, fields)
	}
	return recs
}

// parseEvent extracts the first event from wevtutil /f:text output. Returns
// nil when the output holds no event.
func parseEvent(out string) *domain.Event {
	ev := &domain.Event{}
	found := false
	var desc []string
	inDesc := false

	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimRight(line, "\r")
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "Event ID:"):
			if n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(trimmed, "Event ID:"))); err == nil {
				ev.ID = n
				found = true
			}
		case strings.HasPrefix(trimmed, "Level:"):
			ev.Level = levelCode(strings.TrimSpace(strings.TrimPrefix(trimmed, "Level:")))
		case strings.HasPrefix(trimmed, "Date:"):
			if ts, err := time.Parse("2006-01-02T15:04:05.000", strings.TrimSpace(strings.TrimPrefix(trimmed, "Date:"))); err == nil {
				ev.LoggedAt = ts
			}
		case strings.HasPrefix(trimmed, "Description:"):
			inDesc = true
		case inDesc && trimmed != "":
			desc = append(desc, trimmed)
		}
	}

	if !found {
		return nil
	}
	ev.Message = strings.Join(desc, " ")
	return ev
}

func levelCode(name string) int {
	switch name {
	case "Critical":
		return 1
	case "Error":
		return 2
	case "Warning":
		return 3
	case "Information":
		return 4
	}
	return 0
}
