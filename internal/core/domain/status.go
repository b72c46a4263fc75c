package domain

// Status is the severity of a check result, serialized as a small integer
// code for the monitoring pipeline.
type Status int

const (
	StatusOK       Status = 0
	StatusWarning  Status = 1
	StatusCritical Status = 2
	// StatusUnknown is reported only when a check could not obtain any data
	// from the provider, e.g. the folder-state query failing outright.
	StatusUnknown Status = 3
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusWarning:
		return "WARNING"
	case StatusCritical:
		return "CRITICAL"
	case StatusUnknown:
		return "UNKNOWN"
	default:
		return "UNKNOWN"
	}
}

// Worse returns the more severe of two statuses. Unknown outranks OK but
// never outranks an actual failure verdict.
func (s Status) Worse(other Status) Status {
	if rank(other) > rank(s) {
		return other
	}
	return s
}

func rank(s Status) int {
	switch s {
	case StatusOK:
		return 0
	case StatusUnknown:
		return 1
	case StatusWarning:
		return 2
	case StatusCritical:
		return 3
	}
	return 1
}
