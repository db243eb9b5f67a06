package session

// State is the gate's view of the current authentication state.
type State string

const (
	// StateUnknown holds until the identity provider reports for the first
	// time. The UI shows a loading mode while here.
	StateUnknown State = "unknown"

	StateAnonymous     State = "anonymous"
	StateAuthenticated State = "authenticated"
)
