package watcher

// FileState tracks a detected file through the settle-then-process machine.
type FileState int

const (
	StateDetected FileState = iota
	StateSettling
	StateReady
	StateProcessing
	StateDone
	StateFailed
)

func (s FileState) String() string {
	switch s {
	case StateDetected:
		return "detected"
	case StateSettling:
		return "settling"
	case StateReady:
		return "ready"
	case StateProcessing:
		return "processing"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}
