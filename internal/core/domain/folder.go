package domain

// ReplicatedFolder is one unit of replication configuration on the local
// node. Enumerated fresh from the provider on every pass, never cached.
type ReplicatedFolder struct {
	FolderName  string
	ContentPath string
	GroupName   string
}

// Connection is a directed replication link between two members of a group.
type Connection struct {
	SourceComputer string
	DestComputer   string
}

// FolderTopology is the resolved view of a folder's replication links as seen
// from the local node. ConnectionWarning is set instead of an error when the
// provider cannot answer the connection lookup; endpoint fields stay empty in
// that case.
type FolderTopology struct {
	Group             string
	SourceComputer    string
	DestComputer      string
	ConnectionWarning bool
}

// BacklogNotAvailable is the count sentinel carried by a BacklogOutcome whose
// Err flag is set.
const BacklogNotAvailable = -1

// BacklogOutcome is the normalized result of a backlog query: either a valid
// non-negative count or an error flag, never both.
type BacklogOutcome struct {
	Count int
	Err   bool
}

// BacklogCount returns an outcome carrying a resolved count.
func BacklogCount(n int) BacklogOutcome {
	return BacklogOutcome{Count: n}
}

// BacklogError returns the error outcome. The count stays at the
// not-available sentinel so a missed Err check cannot read a plausible zero.
func BacklogError() BacklogOutcome {
	return BacklogOutcome{Count: BacklogNotAvailable, Err: true}
}
