package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderAnalysisView renders the main analysis view
func renderAnalysisView(m Model) string {
	var b strings.Builder

	// Header
	b.WriteString(renderHeader(m))
	b.WriteString("\n\n")

	// Clip queue
	b.WriteString(renderClipQueue(m))
	b.WriteString("\n")

	// Combine status
	b.WriteString(renderCombineBox(m))

	return b.String()
}

// renderHeader renders the application header
func renderHeader(m Model) string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#2D5B8E")).
		Render("Silencios 🔇 - Batch Audio Splicer")

	subtitle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		Italic(true).
		Render(fmt.Sprintf("Analyzing %d clip(s)", len(m.Clips)))

	return title + "\n" + subtitle
}

// renderClipQueue renders the list of clips with their status
func renderClipQueue(m Model) string {
	var b strings.Builder

	for _, c := range m.Clips {
		b.WriteString(renderClipEntry(c, m.AnalysisDone))
		b.WriteString("\n")
	}

	return b.String()
}

// renderClipEntry renders a single clip entry in the queue
func renderClipEntry(c ClipProgress, analysisDone bool) string {
	switch c.Status {
	case StatusDone:
		icon := lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00")).Render("✓")
		pitch := "no confident pitch"
		if c.Pitch > 0 {
			pitch = fmt.Sprintf("%.1f Hz", c.Pitch)
		}
		mark := ""
		if analysisDone && c.Outlier {
			mark = " " + lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FFA500")).
				Render("⚠ tonal outlier")
		}
		return fmt.Sprintf(" %s %s  %s%s", icon, c.Name, pitch, mark)

	case StatusAnalyzing:
		icon := lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500")).Render("⚙")
		return fmt.Sprintf(" %s %s  analyzing...", icon, c.Name)

	case StatusError:
		icon := lipgloss.NewStyle().Foreground(lipgloss.Color("#A40000")).Render("✗")
		return fmt.Sprintf(" %s %s  error: %v", icon, c.Name, c.Error)

	default:
		icon := lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Render("○")
		return fmt.Sprintf(" %s %s  queued", icon, c.Name)
	}
}

// renderCombineBox renders the concatenation status footer
func renderCombineBox(m Model) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#888888")).
		Padding(0, 1).
		Width(60)

	var content string
	switch m.Combine {
	case CombineRunning:
		content = "Combining clips with 1.5s silence gaps..."
	case CombineDone:
		content = fmt.Sprintf("Combined output written to %s", m.OutputPath)
	case CombineFailed:
		content = fmt.Sprintf("Combine failed: %v", m.CombineErr)
	case CombineSkipped:
		content = "Concatenation disabled (--analyze-only)"
	default:
		content = fmt.Sprintf("Analysis: %d/%d clips done", m.CompletedClips+m.FailedClips, len(m.Clips))
	}

	return box.Render(content)
}

// renderCompletionSummary renders the final completion summary
func renderCompletionSummary(m Model) string {
	var b strings.Builder

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00AA00")).
		Render("✨ Done!")
	b.WriteString(header)
	b.WriteString("\n\n")

	for _, c := range m.Clips {
		b.WriteString(renderClipEntry(c, m.AnalysisDone))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", 60))
	b.WriteString("\n")

	if m.AnalysisDone {
		if len(m.Flagged) == 0 {
			b.WriteString("No tonal outliers - all clips have similar pitch ✓\n")
		} else {
			b.WriteString(fmt.Sprintf("Tonal outliers flagged: %s\n", strings.Join(m.Flagged, ", ")))
			b.WriteString("Review the flagged clips before publishing.\n")
		}
	}

	switch m.Combine {
	case CombineDone:
		b.WriteString(fmt.Sprintf("Combined audio: %s\n", m.OutputPath))
	case CombineFailed:
		b.WriteString(fmt.Sprintf("Combined audio: FAILED (%v) - no output written\n", m.CombineErr))
	}

	return b.String()
}
