package xpatlat

// RunState is a step of an extraction run.
type RunState string

// RunState constants in the order a successful run visits them.
// StateFailed is reached from any step on a fatal error.
const (
	StateIdle              RunState = "idle"
	StateCredentialsLoaded RunState = "credentials-loaded"
	StateContextOpened     RunState = "context-opened"
	StateNavigated         RunState = "navigated"
	StatePaginating        RunState = "paginating"
	StateExtracting        RunState = "extracting"
	StateReported          RunState = "reported"
	StateDone              RunState = "done"
	StateFailed            RunState = "failed"
)

// Terminal reports whether no further transition follows s.
func (s RunState) Terminal() bool {
	return s == StateDone || s == StateFailed
}
