package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/HisDataisRafa/silencios/internal/hum"
	"github.com/HisDataisRafa/silencios/internal/pitch"
)

// ReportData bundles everything the analysis report needs.
type ReportData struct {
	InputPaths []string
	OutputPath string // combined WAV path, empty when concatenation was skipped
	StartTime  time.Time
	EndTime    time.Time

	Records []pitch.Record
	Flagged []string
	MainsHz float64

	CombineErr error
}

// GenerateReport writes a plain-text analysis report next to the combined
// output (or into the working directory when no output was produced).
func GenerateReport(data ReportData) error {
	path := reportPath(data.OutputPath)
	if err := os.WriteFile(path, []byte(renderReport(data)), 0o644); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return nil
}

// reportPath derives the report filename from the output path, falling back
// to silencios-analysis.log in the working directory.
func reportPath(outputPath string) string {
	if outputPath == "" {
		return "silencios-analysis.log"
	}
	ext := filepath.Ext(outputPath)
	return strings.TrimSuffix(outputPath, ext) + "-analysis.log"
}

func renderReport(data ReportData) string {
	var sb strings.Builder

	sb.WriteString("Silencios Analysis Report\n")
	sb.WriteString(strings.Repeat("=", 60) + "\n\n")
	sb.WriteString(fmt.Sprintf("Started:  %s\n", data.StartTime.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("Finished: %s\n", data.EndTime.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("Clips:    %d\n\n", len(data.InputPaths)))

	if len(data.Records) > 0 {
		sb.WriteString(renderPitchSection(data))
		sb.WriteString("\n")
	}

	switch {
	case data.CombineErr != nil:
		sb.WriteString(fmt.Sprintf("Combined output: FAILED (%v)\n", data.CombineErr))
	case data.OutputPath != "":
		sb.WriteString(fmt.Sprintf("Combined output: %s\n", data.OutputPath))
	default:
		sb.WriteString("Combined output: skipped\n")
	}

	return sb.String()
}

func renderPitchSection(data ReportData) string {
	var sb strings.Builder

	table := &Table{
		Headers:    []string{"Clip", "Pitch (Hz)", "Status", "Note"},
		RightAlign: []bool{false, true},
	}
	for _, rec := range data.Records {
		status := "ok"
		if slices.Contains(data.Flagged, rec.Name) {
			status = "OUTLIER"
		}

		note := ""
		if rec.Pitch == 0 {
			note = "no confident pitch"
		} else if data.MainsHz > 0 && hum.Near(rec.Pitch, data.MainsHz) {
			note = fmt.Sprintf("near %.0fHz mains hum - check for electrical interference", data.MainsHz)
		}

		table.Rows = append(table.Rows, []string{
			rec.Name,
			fmt.Sprintf("%.1f", rec.Pitch),
			status,
			note,
		})
	}
	sb.WriteString(table.String())
	sb.WriteString("\n")

	if lower, upper, ok := pitch.Fence(data.Records); ok {
		sb.WriteString(fmt.Sprintf("Tukey fence: %.1f Hz to %.1f Hz\n", lower, upper))
	} else {
		sb.WriteString("Tukey fence: not computed (fewer than 4 clips)\n")
	}

	if len(data.Flagged) == 0 {
		sb.WriteString("Outliers: none - all clips have similar tone\n")
	} else {
		sb.WriteString(fmt.Sprintf("Outliers: %s\n", strings.Join(data.Flagged, ", ")))
	}

	return sb.String()
}
