package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/HisDataisRafa/silencios/internal/analyzer"
	"github.com/HisDataisRafa/silencios/internal/cli"
	"github.com/HisDataisRafa/silencios/internal/clip"
	"github.com/HisDataisRafa/silencios/internal/combine"
	"github.com/HisDataisRafa/silencios/internal/hum"
	"github.com/HisDataisRafa/silencios/internal/logging"
	"github.com/HisDataisRafa/silencios/internal/pitch"
	"github.com/HisDataisRafa/silencios/internal/scratch"
	"github.com/HisDataisRafa/silencios/internal/ui"
)

var (
	version = "0.1.0"
)

// CLI defines the command-line interface
type CLI struct {
	Version     bool     `short:"v" help:"Show version information"`
	Output      string   `short:"o" default:"combined.wav" help:"Path for the combined WAV output"`
	AnalyzeOnly bool     `help:"Estimate pitches and flag outliers without combining"`
	CombineOnly bool     `help:"Combine clips without pitch analysis"`
	Logs        bool     `help:"Save a detailed analysis report"`
	Files       []string `arg:"" name:"files" help:"WAV clips to splice, in order" type:"existingfile" optional:""`
}

func main() {
	cliArgs := &CLI{}
	ctx := kong.Parse(cliArgs,
		kong.Name("silencios"),
		kong.Description("Batch audio splicer with pitch outlier detection"),
		kong.UsageOnError(),
		kong.Vars{
			"version": version,
		},
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	)

	// Handle version flag
	if cliArgs.Version {
		cli.PrintVersion(version)
		os.Exit(0)
	}

	// Validate input
	if len(cliArgs.Files) == 0 {
		cli.PrintError("No input files specified")
		ctx.PrintUsage(false)
		os.Exit(1)
	}
	if cliArgs.AnalyzeOnly && cliArgs.CombineOnly {
		cli.PrintError("--analyze-only and --combine-only are mutually exclusive")
		os.Exit(1)
	}

	clips, err := clip.Load(cliArgs.Files)
	if err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}

	// Open debug log file
	debugLog, _ := os.Create("silencios-debug.log")
	defer debugLog.Close()
	log := func(format string, args ...interface{}) {
		if debugLog != nil {
			fmt.Fprintf(debugLog, format+"\n", args...)
		}
	}

	names := make([]string, len(clips))
	for i, c := range clips {
		names[i] = c.Name
	}

	// Create the Bubbletea UI model
	model := ui.NewModel(names, !cliArgs.AnalyzeOnly)

	// Start the TUI
	p := tea.NewProgram(model, tea.WithAltScreen())

	// Run the pipeline in the background
	go func() {
		startTime := time.Now()
		provider := scratch.TempDir{}

		var records []pitch.Record
		var flagged []string

		if !cliArgs.CombineOnly {
			log("[MAIN] Starting pitch analysis of %d clips", len(clips))
			records = analyzer.Analyze(provider, clips, pitch.DefaultConfig(), analyzer.Events{
				OnStart: func(i int, name string) {
					log("[MAIN] Analyzing clip %d: %s", i, name)
					p.Send(ui.ClipStartMsg{Index: i, Name: name})
				},
				OnDone: func(i int, rec pitch.Record, err error) {
					if err != nil {
						log("[MAIN] Clip %d failed: %v", i, err)
					} else {
						log("[MAIN] Clip %d pitch: %.1f Hz", i, rec.Pitch)
					}
					p.Send(ui.ClipDoneMsg{Index: i, Pitch: rec.Pitch, Err: err})
				},
			})

			flagged = pitch.Outliers(records)
			log("[MAIN] Outliers flagged: %v", flagged)
			p.Send(ui.AnalysisDoneMsg{Flagged: flagged})
		}

		var outputPath string
		var combineErr error
		if !cliArgs.AnalyzeOnly {
			log("[MAIN] Combining %d clips", len(clips))
			p.Send(ui.CombineStartMsg{})

			data, err := combine.New(provider).Combine(clips)
			if err == nil {
				err = os.WriteFile(cliArgs.Output, data, 0o644)
				if err != nil {
					err = fmt.Errorf("failed to write %s: %w", cliArgs.Output, err)
				}
			}
			if err != nil {
				log("[MAIN] Combine failed: %v", err)
				combineErr = err
			} else {
				log("[MAIN] Combined output written to %s", cliArgs.Output)
				outputPath = cliArgs.Output
			}
			p.Send(ui.CombineDoneMsg{OutputPath: cliArgs.Output, Err: combineErr})
		}

		// Generate analysis report if --logs flag is set
		if cliArgs.Logs {
			reportData := logging.ReportData{
				InputPaths: cliArgs.Files,
				OutputPath: outputPath,
				StartTime:  startTime,
				EndTime:    time.Now(),
				Records:    records,
				Flagged:    flagged,
				MainsHz:    hum.Frequency(),
				CombineErr: combineErr,
			}
			if err := logging.GenerateReport(reportData); err != nil {
				log("[MAIN] Failed to generate report: %v", err)
			}
		}

		log("[MAIN] Sending AllDoneMsg")
		p.Send(ui.AllDoneMsg{})
	}()

	// Run the program
	if _, err := p.Run(); err != nil {
		cli.PrintError(fmt.Sprintf("UI error: %v", err))
		os.Exit(1)
	}
}
