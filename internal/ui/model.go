// Package ui provides the Bubbletea terminal user interface for silencios
package ui

import (
	"fmt"
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ClipStatus represents the analysis state of a single clip
type ClipStatus int

const (
	StatusQueued ClipStatus = iota
	StatusAnalyzing
	StatusDone
	StatusError
)

// ClipProgress tracks analysis progress for a single clip
type ClipProgress struct {
	Name    string
	Status  ClipStatus
	Pitch   float64
	Outlier bool
	Error   error
}

// CombineStatus represents the state of the concatenation phase
type CombineStatus int

const (
	CombineIdle CombineStatus = iota
	CombineRunning
	CombineDone
	CombineFailed
	CombineSkipped
)

// Model is the Bubbletea model for the analysis UI
type Model struct {
	Clips          []ClipProgress
	CurrentIndex   int
	CompletedClips int
	FailedClips    int

	AnalysisDone bool
	Flagged      []string

	Combine    CombineStatus
	OutputPath string
	CombineErr error

	StartTime time.Time
	Done      bool

	// Terminal dimensions
	Width  int
	Height int
}

// NewModel creates a new UI model with the given clip names
func NewModel(names []string, combineEnabled bool) Model {
	clips := make([]ClipProgress, len(names))
	for i, name := range names {
		clips[i] = ClipProgress{Name: name, Status: StatusQueued}
	}

	combine := CombineIdle
	if !combineEnabled {
		combine = CombineSkipped
	}

	return Model{
		Clips:        clips,
		CurrentIndex: -1, // No clip analyzing yet
		Combine:      combine,
		StartTime:    time.Now(),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case ClipStartMsg:
		m.CurrentIndex = msg.Index
		if msg.Index >= 0 && msg.Index < len(m.Clips) {
			m.Clips[msg.Index].Status = StatusAnalyzing
		}

	case ClipDoneMsg:
		if msg.Index >= 0 && msg.Index < len(m.Clips) {
			m.Clips[msg.Index].Pitch = msg.Pitch
			m.Clips[msg.Index].Error = msg.Err
			if msg.Err != nil {
				m.Clips[msg.Index].Status = StatusError
				m.FailedClips++
			} else {
				m.Clips[msg.Index].Status = StatusDone
				m.CompletedClips++
			}
		}

	case AnalysisDoneMsg:
		m.AnalysisDone = true
		m.Flagged = msg.Flagged
		for i := range m.Clips {
			m.Clips[i].Outlier = slices.Contains(msg.Flagged, m.Clips[i].Name)
		}

	case CombineStartMsg:
		m.Combine = CombineRunning

	case CombineDoneMsg:
		if msg.Err != nil {
			m.Combine = CombineFailed
			m.CombineErr = msg.Err
		} else {
			m.Combine = CombineDone
			m.OutputPath = msg.OutputPath
		}

	case AllDoneMsg:
		m.Done = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the UI
func (m Model) View() string {
	if m.Width == 0 {
		return fmt.Sprintf("Initializing...\nClips: %d\n", len(m.Clips))
	}

	if m.Done {
		return renderCompletionSummary(m)
	}

	return renderAnalysisView(m)
}
