package logging

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/HisDataisRafa/silencios/internal/pitch"
)

func TestTableString(t *testing.T) {
	table := &Table{
		Headers:    []string{"Clip", "Pitch (Hz)", "Status"},
		RightAlign: []bool{false, true},
		Rows: [][]string{
			{"intro.wav", "118.2", "ok"},
			{"x.wav", "1000.0", "OUTLIER"},
		},
	}

	out := table.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("table has %d lines, want 4 (header, separator, 2 rows)", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Clip") {
		t.Errorf("header line = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "---") {
		t.Errorf("separator line = %q", lines[1])
	}
	// Right-aligned pitch column: shorter values are padded on the left.
	if !strings.Contains(lines[2], "     118.2") {
		t.Errorf("pitch column not right-aligned: %q", lines[2])
	}
}

func TestTableEmpty(t *testing.T) {
	table := &Table{Headers: []string{"A"}}
	if got := table.String(); got != "" {
		t.Errorf("empty table rendered %q, want empty string", got)
	}
}

func TestReportPath(t *testing.T) {
	tests := []struct {
		output string
		want   string
	}{
		{"combined.wav", "combined-analysis.log"},
		{"out/final.wav", "out/final-analysis.log"},
		{"noext", "noext-analysis.log"},
		{"", "silencios-analysis.log"},
	}
	for _, tt := range tests {
		if got := reportPath(tt.output); got != tt.want {
			t.Errorf("reportPath(%q) = %q, want %q", tt.output, got, tt.want)
		}
	}
}

func TestGenerateReport(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "combined.wav")

	data := ReportData{
		InputPaths: []string{"a.wav", "b.wav", "c.wav", "d.wav"},
		OutputPath: output,
		StartTime:  time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2026, 8, 25, 10, 0, 5, 0, time.UTC),
		Records: []pitch.Record{
			{Name: "a.wav", Pitch: 118.2},
			{Name: "b.wav", Pitch: 121.7},
			{Name: "c.wav", Pitch: 0},
			{Name: "d.wav", Pitch: 1000.0},
		},
		Flagged: []string{"d.wav"},
		MainsHz: 50,
	}

	if err := GenerateReport(data); err != nil {
		t.Fatalf("GenerateReport() error: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "combined-analysis.log"))
	if err != nil {
		t.Fatalf("report file missing: %v", err)
	}
	report := string(raw)

	for _, want := range []string{
		"Silencios Analysis Report",
		"Clips:    4",
		"OUTLIER",
		"no confident pitch",
		"Outliers: d.wav",
		"Combined output: " + output,
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestRenderReportCombineFailed(t *testing.T) {
	report := renderReport(ReportData{
		InputPaths: []string{"a.wav"},
		StartTime:  time.Now(),
		EndTime:    time.Now(),
		CombineErr: errors.New("failed to decode b.wav"),
	})

	if !strings.Contains(report, "Combined output: FAILED") {
		t.Errorf("report missing failure notice:\n%s", report)
	}
}

func TestRenderReportHumNote(t *testing.T) {
	report := renderReport(ReportData{
		InputPaths: []string{"a.wav", "b.wav", "c.wav", "d.wav"},
		StartTime:  time.Now(),
		EndTime:    time.Now(),
		Records: []pitch.Record{
			{Name: "a.wav", Pitch: 50.4},
			{Name: "b.wav", Pitch: 120.1},
			{Name: "c.wav", Pitch: 119.5},
			{Name: "d.wav", Pitch: 121.0},
		},
		MainsHz: 50,
	})

	if !strings.Contains(report, "near 50Hz mains hum") {
		t.Errorf("report missing hum note:\n%s", report)
	}
	if !strings.Contains(report, "Outliers: none") {
		t.Errorf("report missing empty outlier line:\n%s", report)
	}
}
