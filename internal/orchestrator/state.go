package orchestrator

// State is the orchestrator's position in the preview/apply lifecycle.
type State int

const (
	StateConfigured State = iota
	StatePlanning
	StateDryRunPreview
	StateAwaitingConfirmation
	StateApplying
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateConfigured:
		return "configured"
	case StatePlanning:
		return "planning"
	case StateDryRunPreview:
		return "dry-run-preview"
	case StateAwaitingConfirmation:
		return "awaiting-confirmation"
	case StateApplying:
		return "applying"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}
