// Package replica defines the boundary to the platform replication subsystem.
package replica

import (
	"context"
	"time"

	"github.com/tonyroud/replicheck/internal/core/domain"
)

// Provider is the narrow interface the checks query. Implementations bind to
// whatever replication API the platform offers (WMI/dfsrdiag on Windows, a
// remote agent elsewhere); the checks never see the platform directly.
//
// Backlog returns the provider's raw diagnostic stream on success. The stream
// is unstructured text carrying either a "no backlog" sentinel phrase or a
// decimal count keyed by the folder name; parsing it is the backlog
// resolver's job, not the provider's.
type Provider interface {
	// ListReplicatedFolders enumerates the folders configured on the local node.
	ListReplicatedFolders(ctx context.Context, localNode string) ([]domain.ReplicatedFolder, error)

	// GroupForFolder resolves a folder name to its owning replication group.
	GroupForFolder(ctx context.Context, folderName string) (string, error)

	// Connections lists the replication links of a group.
	Connections(ctx context.Context, groupName string) ([]domain.Connection, error)

	// Backlog queries the backlog between two members for one folder and
	// returns the diagnostic text. Fails when the replication service is
	// down or a member is unreachable.
	Backlog(ctx context.Context, group, folder, sourceComputer, destComputer string) (string, error)

	// ServiceStatus reports whether a named service is running.
	ServiceStatus(ctx context.Context, serviceName string) (bool, error)

	// FirstCriticalEvent returns the first event in the named log since the
	// given time matching any of the severity levels and event IDs, or nil
	// when none match.
	FirstCriticalEvent(ctx context.Context, logName string, since time.Time, levels, eventIDs []int) (*domain.Event, error)

	// FolderStates reports the state code of every folder the provider
	// knows about, not just locally configured ones.
	FolderStates(ctx context.Context) ([]domain.FolderState, error)
}
