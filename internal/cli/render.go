package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tokendelve/excavator/pkg/errors"
	"github.com/tokendelve/excavator/pkg/pipeline"
	"github.com/tokendelve/excavator/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output    string   // output file (single format) or base path (multiple)
	formats   []string // output formats
	seed      uint64   // scatter seed
	noScatter bool     // skip the scatter stage
	noCache   bool     // disable the artifact cache
	markers   bool     // mark room centers in svg/png
	cellSize  int      // pixels per cell in svg/png
	dotImage  string   // render the DOT graph to an image: svg or png
}

// renderCommand creates the render command for writing map artifacts of an
// existing token to files.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{
		seed:     c.Config.Seed,
		cellSize: c.Config.CellSize,
		markers:  c.Config.Markers,
	}

	cmd := &cobra.Command{
		Use:   "render <token>",
		Short: "Render a dungeon map to files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if formatsStr == "" && len(c.Config.Formats) > 0 {
				opts.formats = c.Config.Formats
			} else {
				opts.formats = parseFormats(formatsStr)
			}
			if err := render.ValidateFormats(opts.formats); err != nil {
				return err
			}
			if opts.dotImage != "" && opts.dotImage != "svg" && opts.dotImage != "png" {
				return errors.New(errors.ErrCodeInvalidFormat,
					"invalid --dot-image value: %q (must be svg or png)", opts.dotImage)
			}
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): txt (default), json, svg, png, dot (comma-separated)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", opts.seed, "scatter seed for reproducible output")
	cmd.Flags().BoolVar(&opts.noScatter, "no-scatter", false, "skip the scatter stage")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.markers, "markers", opts.markers, "mark room centers in svg/png output")
	cmd.Flags().IntVar(&opts.cellSize, "cell-size", opts.cellSize, "pixels per cell in svg/png output")
	cmd.Flags().StringVar(&opts.dotImage, "dot-image", "", "also render the room graph via graphviz: svg or png")

	return cmd
}

// runRender excavates the token and writes one file per requested format.
func (c *CLI) runRender(ctx context.Context, t string, opts *renderOpts) error {
	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	result, err := runner.Execute(ctx, pipeline.Options{
		Token:     t,
		Seed:      opts.seed,
		NoScatter: opts.noScatter,
		Formats:   opts.formats,
		CellSize:  opts.cellSize,
		Markers:   opts.markers,
		Logger:    c.Logger,
	})
	if err != nil {
		printError("%s", errors.UserMessage(err))
		return err
	}

	base := renderBasePath(opts.output, t)
	for _, format := range opts.formats {
		var path string
		if len(opts.formats) == 1 && opts.output != "" {
			path = opts.output
		} else {
			path = fmt.Sprintf("%s.%s", base, format)
		}
		if err := writeFile(path, result.Artifacts[format]); err != nil {
			return err
		}
		printFile(path)
	}

	if opts.dotImage != "" {
		if err := c.renderDOTImage(result, base, opts.dotImage); err != nil {
			return err
		}
	}

	printStats(result.Dungeon.RoomCount, len(result.Dungeon.Excavated), result.CacheInfo.RenderHit)
	return nil
}

// renderDOTImage lays out the room graph with graphviz and writes it next to
// the other artifacts.
func (c *CLI) renderDOTImage(result *pipeline.Result, base, format string) error {
	dot := render.DOT(result.Dungeon)

	var data []byte
	var err error
	switch format {
	case "svg":
		data, err = render.GraphvizSVG(dot)
	case "png":
		data, err = render.GraphvizPNG(dot)
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "render room graph")
	}

	path := fmt.Sprintf("%s.graph.%s", base, format)
	if err := writeFile(path, data); err != nil {
		return err
	}
	printFile(path)
	return nil
}

// writeFile writes data, creating parent directories as needed.
func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}

// renderBasePath derives the base output path from the output flag and the
// token. If output has a known format extension it is stripped, so
// "--output map.svg --format svg,png" produces map.svg and map.png.
func renderBasePath(output, token string) string {
	if output == "" {
		return token
	}
	ext := strings.TrimPrefix(filepath.Ext(output), ".")
	if render.ValidFormats[ext] {
		return strings.TrimSuffix(output, "."+ext)
	}
	return output
}
