package domain

// OperationStatus counts progress of a backup or restore run.
type OperationStatus struct {
	TotalGames     int
	ProcessedGames int
	TotalBytes     uint64
	ProcessedBytes uint64
}

// ProcessedAllGames reports whether every game was processed.
func (s OperationStatus) ProcessedAllGames() bool {
	return s.ProcessedGames == s.TotalGames
}

// ProcessedAllBytes reports whether every byte was processed.
func (s OperationStatus) ProcessedAllBytes() bool {
	return s.ProcessedBytes == s.TotalBytes
}

// ProcessedAll reports whether both games and bytes are complete.
func (s OperationStatus) ProcessedAll() bool {
	return s.ProcessedAllGames() && s.ProcessedAllBytes()
}

// OperationStepDecision records what happened to one game in a run.
type OperationStepDecision int

const (
	Processed OperationStepDecision = iota
	Cancelled
	Ignored
)

func (d OperationStepDecision) String() string {
	switch d {
	case Processed:
		return "processed"
	case Cancelled:
		return "cancelled"
	case Ignored:
		return "ignored"
	default:
		return "unknown"
	}
}
