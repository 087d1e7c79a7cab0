package ui

// ClipStartMsg indicates pitch analysis has started for a clip
type ClipStartMsg struct {
	Index int
	Name  string
}

// ClipDoneMsg carries the pitch estimate for one clip
type ClipDoneMsg struct {
	Index int
	Pitch float64
	Err   error
}

// AnalysisDoneMsg carries the names of clips flagged as tonal outliers
type AnalysisDoneMsg struct {
	Flagged []string
}

// CombineStartMsg indicates concatenation has started
type CombineStartMsg struct{}

// CombineDoneMsg indicates concatenation has finished
type CombineDoneMsg struct {
	OutputPath string
	Err        error
}

// AllDoneMsg indicates the whole run has finished
type AllDoneMsg struct{}
