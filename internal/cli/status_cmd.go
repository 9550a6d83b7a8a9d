package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"seehuhn.de/go/badge"
	"seehuhn.de/go/badge/pattern"
)

var (
	colorDone   = lipgloss.Color("#8ec07c")
	colorOpen   = lipgloss.Color("#928374")
	colorHeader = lipgloss.Color("#fe8019")

	styleDone   = lipgloss.NewStyle().Foreground(colorDone)
	styleOpen   = lipgloss.NewStyle().Foreground(colorOpen)
	styleHeader = lipgloss.NewStyle().Foreground(colorHeader).Bold(true)
)

func newStatusCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the checklist and the level of every category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := app.newBadge(nil)
			if err != nil {
				return err
			}
			st, err := b.Render(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatStatus(b, st))
			return nil
		},
	}
	return cmd
}

// formatStatus lists all categories with their level and item states.
func formatStatus(b *badge.Badge, st badge.State) string {
	cfg := b.Config()
	items := cfg.Items()

	sb := &strings.Builder{}
	for c, cat := range cfg.Categories {
		fmt.Fprintf(sb, "%d. %s  %s\n", c+1, styleHeader.Render(cat.Title), levelBar(st.Levels[c], pattern.MaxLevel))
		for i, label := range cat.Items {
			checked := b.Slice(c*items + i).Checked()
			fmt.Fprintf(sb, "   %s %d %s\n", checkMark(checked), i+1, label)
		}
	}

	done := 0
	for _, level := range st.Levels {
		if level == pattern.MaxLevel {
			done++
		}
	}
	summary := fmt.Sprintf("%d of %d categories complete", done, len(st.Levels))
	if st.AllComplete {
		sb.WriteString(styleDone.Render(summary) + "\n")
	} else {
		sb.WriteString(styleOpen.Render(summary) + "\n")
	}
	return sb.String()
}

// levelBar draws a level as a row of filled and empty dots.
func levelBar(level, top int) string {
	return styleDone.Render(strings.Repeat("●", level)) +
		styleOpen.Render(strings.Repeat("○", top-level))
}

func checkMark(checked bool) string {
	if checked {
		return styleDone.Render("[x]")
	}
	return styleOpen.Render("[ ]")
}
