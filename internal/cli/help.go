package cli

import (
	"fmt"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
)

// Custom help styles
var (
	helpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#2D5B8E")).
			MarginBottom(1)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Italic(true).
			MarginBottom(1)

	helpSectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FFA500")).
				MarginTop(1)

	helpFlagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00AA00")).
			Bold(true)

	helpArgStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00AAAA")).
			Bold(true)

	helpDefaultStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#888888")).
				Italic(true)
)

// helpEntry is one labelled line in a help section.
type helpEntry struct {
	label string
	help  string
	def   string
}

// StyledHelpPrinter creates a custom help printer with Lipgloss styling
func StyledHelpPrinter(options kong.HelpOptions) func(options kong.HelpOptions, ctx *kong.Context) error {
	return func(options kong.HelpOptions, ctx *kong.Context) error {
		var sb strings.Builder

		sb.WriteString(helpTitleStyle.Render("Silencios 🔇"))
		sb.WriteString("\n")
		sb.WriteString(helpDescStyle.Render("Batch audio splicer with pitch outlier detection"))
		sb.WriteString("\n")

		sb.WriteString(helpSectionStyle.Render("Usage:"))
		sb.WriteString(fmt.Sprintf("\n  %s [flags] <files> ...\n", ctx.Model.Name))

		if args := positionalEntries(ctx); len(args) > 0 {
			writeSection(&sb, "Arguments:", args, helpArgStyle)
		}
		if flags := flagEntries(ctx); len(flags) > 0 {
			writeSection(&sb, "Flags:", flags, helpFlagStyle)
		}

		sb.WriteString("\n")
		sb.WriteString(helpSectionStyle.Render("Examples:"))
		sb.WriteString(fmt.Sprintf("\n  %s clip1.wav clip2.wav clip3.wav clip4.wav\n", ctx.Model.Name))
		sb.WriteString(fmt.Sprintf("  %s --analyze-only --logs takes/*.wav\n", ctx.Model.Name))
		sb.WriteString(fmt.Sprintf("  %s -o episode.wav intro.wav body.wav outro.wav\n", ctx.Model.Name))

		sb.WriteString("\n")
		fmt.Fprint(ctx.Stdout, sb.String())
		return nil
	}
}

// writeSection renders one section with labels padded to a shared width.
// Labels are padded before styling; ANSI codes would break the count.
func writeSection(sb *strings.Builder, heading string, entries []helpEntry, labelStyle lipgloss.Style) {
	width := 0
	for _, e := range entries {
		if len(e.label) > width {
			width = len(e.label)
		}
	}

	sb.WriteString("\n")
	sb.WriteString(helpSectionStyle.Render(heading))
	sb.WriteString("\n")
	for _, e := range entries {
		sb.WriteString("  ")
		sb.WriteString(labelStyle.Render(fmt.Sprintf("%-*s", width, e.label)))
		if e.help != "" {
			sb.WriteString("  ")
			sb.WriteString(e.help)
		}
		if e.def != "" {
			sb.WriteString(" ")
			sb.WriteString(helpDefaultStyle.Render("(default: " + e.def + ")"))
		}
		sb.WriteString("\n")
	}
}

func positionalEntries(ctx *kong.Context) []helpEntry {
	var entries []helpEntry
	for _, arg := range ctx.Model.Node.Positional {
		entries = append(entries, helpEntry{label: arg.Summary(), help: arg.Help})
	}
	return entries
}

func flagEntries(ctx *kong.Context) []helpEntry {
	entries := []helpEntry{{label: "-h, --help", help: "Show context-sensitive help."}}
	for _, f := range ctx.Model.Node.Flags {
		if f.Name == "help" {
			continue
		}

		label := "--" + f.Name
		if f.Short != 0 {
			label = fmt.Sprintf("-%c, --%s", f.Short, f.Name)
		}
		if !f.IsBool() && f.PlaceHolder != "" {
			label += "=" + strings.ToUpper(f.PlaceHolder)
		}

		entries = append(entries, helpEntry{label: label, help: f.Help, def: f.FormatPlaceHolder()})
	}
	return entries
}
