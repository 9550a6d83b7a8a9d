package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"seehuhn.de/go/badge/export"
	"seehuhn.de/go/badge/pattern"
)

func newRenderCmd(app *App) *cobra.Command {
	var out, format, texture string
	var scale float64
	var seed uint64
	var focus int

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Draw the badge as SVG, PNG or PDF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			format, err := outputFormat(format, out)
			if err != nil {
				return err
			}
			if format == "pdf" && out == "" {
				return errors.New("PDF output needs --out")
			}
			if format == "png" && out == "" && app.IsInteractive != nil && app.IsInteractive() {
				return errors.New("refusing to write PNG data to a terminal, use --out")
			}

			var src pattern.Source
			switch texture {
			case "random":
				if cmd.Flags().Changed("seed") {
					src = pattern.NewSource(seed)
				}
			case "noise":
				src = pattern.NewNoiseSource(int64(seed), noiseStep)
			default:
				return fmt.Errorf("unknown texture %q", texture)
			}
			b, err := app.newBadge(src)
			if err != nil {
				return err
			}
			if _, err := b.Render(ctx); err != nil {
				return err
			}
			if cmd.Flags().Changed("focus") {
				if _, err := b.NotifyCategoryChanged(ctx, focus-1); err != nil {
					return err
				}
			}
			sc := b.Scene()

			switch format {
			case "pdf":
				err = export.WritePDF(out, sc)
			case "png":
				err = writeOutput(cmd.OutOrStdout(), out, func(w io.Writer) error {
					return export.WritePNG(w, sc, scale)
				})
			default:
				err = writeOutput(cmd.OutOrStdout(), out, func(w io.Writer) error {
					return export.WriteSVG(w, sc)
				})
			}
			if err != nil {
				return err
			}

			if out != "" {
				app.Log.Info("badge written",
					zap.String("file", out),
					zap.String("format", format))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default: standard output)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: svg, png or pdf (default: from --out)")
	cmd.Flags().Float64Var(&scale, "scale", 1, "Pixels per badge unit for PNG output")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for a reproducible cell texture")
	cmd.Flags().StringVar(&texture, "texture", "random", "Cell texture: random or noise (clustered)")
	cmd.Flags().IntVar(&focus, "focus", 0, "Turn the badge towards this category")

	return cmd
}

// noiseStep is the distance between noise samples of neighbouring cells.
const noiseStep = 0.35

// outputFormat decides the output format from the --format flag and the
// output file name.
func outputFormat(format, out string) (string, error) {
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(out)), ".")
		if format == "" {
			format = "svg"
		}
	}
	switch format {
	case "svg", "png", "pdf":
		return format, nil
	default:
		return "", fmt.Errorf("unknown output format %q", format)
	}
}

// writeOutput calls write with the named file, or with stdout if name is
// empty.
func writeOutput(stdout io.Writer, name string, write func(io.Writer) error) error {
	if name == "" {
		return write(stdout)
	}
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
