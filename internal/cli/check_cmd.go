package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"seehuhn.de/go/badge/pattern"
	"seehuhn.de/go/badge/progress"
)

func newCheckCmd(app *App, checked bool) *cobra.Command {
	use, short := "check", "Mark a checklist item as done"
	if !checked {
		use, short = "uncheck", "Mark a checklist item as not done"
	}

	cmd := &cobra.Command{
		Use:   use + " ITEM CATEGORY",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			item, err := parseIndex("item", args[0])
			if err != nil {
				return err
			}
			category, err := parseIndex("category", args[1])
			if err != nil {
				return err
			}
			k := progress.Key{Item: item, Category: category}

			b, err := app.newBadge(nil)
			if err != nil {
				return err
			}
			if _, err := b.Render(ctx); err != nil {
				return err
			}
			st, err := b.Toggle(ctx, k, checked)
			if err != nil {
				return err
			}

			cat := app.Config.Categories[category]
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s\n", checkMark(checked), cat.Title, cat.Items[item])
			fmt.Fprintf(cmd.OutOrStdout(), "%s  level %d/%d\n",
				levelBar(st.Levels[category], pattern.MaxLevel), st.Levels[category], pattern.MaxLevel)
			if st.AllComplete {
				fmt.Fprintln(cmd.OutOrStdout(), styleDone.Render("All items done!"))
			}
			return nil
		},
	}

	return cmd
}
