package check

import (
	"context"
	"errors"
	"time"

	"github.com/tonyroud/replicheck/internal/core/domain"
)

// =============================================================================
// Stub provider
// =============================================================================

var errProviderDown = errors.New("provider unreachable")

// stubProvider implements replica.Provider with per-operation function
// hooks; unset hooks fail, so tests only wire what they exercise.
type stubProvider struct {
	folders      func(localNode string) ([]domain.ReplicatedFolder, error)
	group        func(folder string) (string, error)
	connections  func(group string) ([]domain.Connection, error)
	backlog      func(group, folder, src, dst string) (string, error)
	service      func(name string) (bool, error)
	firstEvent   func(log string, since time.Time, levels, ids []int) (*domain.Event, error)
	folderStates func() ([]domain.FolderState, error)
}

func (s *stubProvider) ListReplicatedFolders(ctx context.Context, localNode string) ([]domain.ReplicatedFolder, error) {
	if s.folders == nil {
		return nil, errProviderDown
	}
	return s.folders(localNode)
}

func (s *stubProvider) GroupForFolder(ctx context.Context, folderName string) (string, error) {
	if s.group == nil {
		return "", errProviderDown
	}
	return s.group(folderName)
}

func (s *stubProvider) Connections(ctx context.Context, groupName string) ([]domain.Connection, error) {
	if s.connections == nil {
		return nil, errProviderDown
	}
	return s.connections(groupName)
}

func (s *stubProvider) Backlog(ctx context.Context, group, folder, src, dst string) (string, error) {
	if s.backlog == nil {
		return "", errProviderDown
	}
	return s.backlog(group, folder, src, dst)
}

func (s *stubProvider) ServiceStatus(ctx context.Context, serviceName string) (bool, error) {
	if s.service == nil {
		return false, errProviderDown
	}
	return s.service(serviceName)
}

func (s *stubProvider) FirstCriticalEvent(ctx context.Context, logName string, since time.Time, levels, eventIDs []int) (*domain.Event, error) {
	if s.firstEvent == nil {
		return nil, errProviderDown
	}
	return s.firstEvent(logName, since, levels, eventIDs)
}

func (s *stubProvider) FolderStates(ctx context.Context) ([]domain.FolderState, error) {
	if s.folderStates == nil {
		return nil, errProviderDown
	}
	return s.folderStates()
}
