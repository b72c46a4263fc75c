package domain

// FolderStateCode is the provider-reported lifecycle state of a replicated
// folder. Every state except Error is either nominal or an in-progress
// transition and counts as healthy by default.
type FolderStateCode int

const (
	StateProvisioning FolderStateCode = 0
	StateCustomizing  FolderStateCode = 1
	StateDeleting     FolderStateCode = 2
	StateMaintenance  FolderStateCode = 3
	StateProvisioned  FolderStateCode = 4
	StateError        FolderStateCode = 5
	StateConnected    FolderStateCode = 6
	StateIsConnected  FolderStateCode = 7
	StateAvailable    FolderStateCode = 8
	StateDisconnected FolderStateCode = 9
)

func (c FolderStateCode) String() string {
	switch c {
	case StateProvisioning:
		return "PROVISIONING"
	case StateCustomizing:
		return "CUSTOMIZING"
	case StateDeleting:
		return "DELETING"
	case StateMaintenance:
		return "MAINTENANCE"
	case StateProvisioned:
		return "PROVISIONED"
	case StateError:
		return "ERROR"
	case StateConnected:
		return "CONNECTED"
	case StateIsConnected:
		return "ISCONNECTED"
	case StateAvailable:
		return "AVAILABLE"
	case StateDisconnected:
		return "DISCONNECTED"
	}
	return "UNKNOWN"
}

// DefaultHealthyStates returns every state code except Error.
func DefaultHealthyStates() []FolderStateCode {
	return []FolderStateCode{
		StateProvisioning, StateCustomizing, StateDeleting, StateMaintenance,
		StateProvisioned, StateConnected, StateIsConnected, StateAvailable,
		StateDisconnected,
	}
}

// FolderState pairs a folder known to the provider with its state code. This
// covers all folders the provider sees, not just locally configured ones.
type FolderState struct {
	FolderName string
	StateCode  FolderStateCode
}
