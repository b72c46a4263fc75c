package check

import (
	"context"
	"log/slog"
	"strings"

	"github.com/tonyroud/replicheck/internal/core/domain"
	"github.com/tonyroud/replicheck/internal/infra/replica"
)

// ResolveTopology resolves a folder to its owning group and to the
// replication link whose source is the local node. Provider failures during
// the lookup set ConnectionWarning instead of returning an error, mirroring
// the backlog resolver: errors become data so the rest of the pass keeps
// running.
func ResolveTopology(ctx context.Context, p replica.Provider, folderName, localComputer string) domain.FolderTopology {
	group, err := p.GroupForFolder(ctx, folderName)
	if err != nil {
		slog.Warn("Group lookup failed", "folder", folderName, "error", err)
		return domain.FolderTopology{ConnectionWarning: true}
	}

	conns, err := p.Connections(ctx, group)
	if err != nil {
		slog.Warn("Connection lookup failed", "folder", folderName, "group", group, "error", err)
		return domain.FolderTopology{Group: group, ConnectionWarning: true}
	}

	for _, c := range conns {
		if strings.EqualFold(c.SourceComputer, localComputer) {
			return domain.FolderTopology{
				Group:          group,
				SourceComputer: c.SourceComputer,
				DestComputer:   c.DestComputer,
			}
		}
	}

	// No outbound connection for this node counts as an unconfirmed topology.
	slog.Warn("No outbound connection found for local node",
		"folder", folderName, "group", group, "node", localComputer)
	return domain.FolderTopology{Group: group, ConnectionWarning: true}
}
