// seehuhn.de/go/badge - a procedural progress badge renderer
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"seehuhn.de/go/badge"
	"seehuhn.de/go/badge/pattern"
	"seehuhn.de/go/badge/progress"
)

// App holds the dependencies shared by all CLI commands.
type App struct {
	Store  progress.Store
	Config badge.Config

	// Log is built from the --verbose flag if it is nil.
	Log *zap.Logger

	// IsInteractive reports whether standard output is a terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "badge" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var configPath string
	var verbose bool

	root := &cobra.Command{
		Use:   "badge",
		Short: "Procedural progress badge for a sustainability checklist",
		Long: `badge keeps a checklist of 15 items in 5 categories and draws a
circular badge whose slices fill up as the items are checked.

Items and categories are numbered from 1.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.Log == nil {
				config := zap.NewProductionConfig()
				if verbose {
					config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
				}
				logger, err := config.Build()
				if err != nil {
					return fmt.Errorf("failed to initialize logger: %w", err)
				}
				app.Log = logger
			}

			if configPath != "" {
				f, err := os.Open(configPath)
				if err != nil {
					return fmt.Errorf("opening config: %w", err)
				}
				defer f.Close()
				cfg, err := badge.LoadConfig(f)
				if err != nil {
					return err
				}
				app.Config = cfg
				app.Log.Debug("config loaded", zap.String("path", configPath))
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Log != nil {
				_ = app.Log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML file with badge layout overrides")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		newRenderCmd(app),
		newCheckCmd(app, true),
		newCheckCmd(app, false),
		newStatusCmd(app),
		newResetCmd(app),
		newConfigCmd(app),
	)

	return root
}

// newBadge returns a badge for the current configuration.  If src is nil,
// the cell textures are random.
func (app *App) newBadge(src pattern.Source) (*badge.Badge, error) {
	opts := []badge.Option{badge.WithLogger(app.Log)}
	if src != nil {
		opts = append(opts, badge.WithSource(src))
	}
	return badge.New(app.Config, app.Store, opts...)
}

// parseIndex converts a 1-based command line argument into an index.
func parseIndex(what, arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", what, arg)
	}
	return n - 1, nil
}
