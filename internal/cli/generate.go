package cli

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tokendelve/excavator/pkg/errors"
	"github.com/tokendelve/excavator/pkg/pipeline"
	"github.com/tokendelve/excavator/pkg/render"
	"github.com/tokendelve/excavator/pkg/store"
	"github.com/tokendelve/excavator/pkg/token"
)

// mintRetries bounds how often generate re-mints when a random token turns
// out to have no scatter headroom.
const mintRetries = 5

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	count     int      // number of dungeons to mint when no token is given
	seed      uint64   // scatter seed
	noScatter bool     // skip the scatter stage
	formats   []string // artifact formats to write
	output    string   // output directory for artifacts
	noCache   bool     // disable the artifact cache
	refresh   bool     // regenerate even when cached
	markers   bool     // mark room centers in svg/png
	cellSize  int      // pixels per cell in svg/png
	noMap     bool     // suppress the terminal map
	save      bool     // persist the run to the history store
}

// generateCommand creates the generate command. With a token argument it
// excavates that token; without one it mints fresh tokens first.
func (c *CLI) generateCommand() *cobra.Command {
	var formatsStr string
	opts := generateOpts{
		count:    1,
		seed:     c.Config.Seed,
		cellSize: c.Config.CellSize,
		markers:  c.Config.Markers,
	}

	cmd := &cobra.Command{
		Use:   "generate [token]",
		Short: "Mint tokens and excavate their dungeons",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := render.ValidateFormats(opts.formats); err != nil {
				return err
			}
			if len(args) == 1 {
				return c.runGenerate(cmd.Context(), args[0], &opts)
			}
			return c.runMint(cmd.Context(), &opts)
		},
	}

	cmd.Flags().IntVarP(&opts.count, "count", "n", opts.count, "number of dungeons to mint")
	cmd.Flags().Uint64Var(&opts.seed, "seed", opts.seed, "scatter seed for reproducible output")
	cmd.Flags().BoolVar(&opts.noScatter, "no-scatter", false, "skip the scatter stage")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "artifact format(s): txt (default), json, svg, png, dot (comma-separated)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "directory to write artifacts into")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "regenerate even when cached")
	cmd.Flags().BoolVar(&opts.markers, "markers", opts.markers, "mark room centers in svg/png output")
	cmd.Flags().IntVar(&opts.cellSize, "cell-size", opts.cellSize, "pixels per cell in svg/png output")
	cmd.Flags().BoolVar(&opts.noMap, "no-map", false, "suppress the terminal map")
	cmd.Flags().BoolVar(&opts.save, "save", false, "record the run in the history store")

	return cmd
}

// runMint mints opts.count tokens and excavates each.
func (c *CLI) runMint(ctx context.Context, opts *generateOpts) error {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	prog := newProgress(c.Logger)

	for i := 0; i < opts.count; i++ {
		var lastErr error
		for attempt := 0; attempt < mintRetries; attempt++ {
			t := token.Mint(rng)
			lastErr = c.runGenerate(ctx, t, opts)
			if !errors.Is(lastErr, errors.ErrCodeScatterCapacity) {
				break
			}
			c.Logger.Debugf("token %s has no scatter headroom, minting another", t)
		}
		if lastErr != nil {
			return lastErr
		}
	}

	if opts.count > 1 {
		prog.done(fmt.Sprintf("Excavated %d dungeons", opts.count))
	}
	return nil
}

// runGenerate excavates one token and prints or writes the results.
func (c *CLI) runGenerate(ctx context.Context, t string, opts *generateOpts) error {
	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, "Excavating "+t)
	spinner.Start()

	result, err := runner.Execute(ctx, pipeline.Options{
		Token:     t,
		Seed:      opts.seed,
		NoScatter: opts.noScatter,
		Refresh:   opts.refresh,
		Formats:   opts.formats,
		CellSize:  opts.cellSize,
		Markers:   opts.markers,
		Logger:    c.Logger,
	})
	if err != nil {
		spinner.StopWithError(errors.UserMessage(err))
		return err
	}
	spinner.Stop()

	d := result.Dungeon
	printSuccess("%s", StyleHighlight.Render(t))
	printKeyValue("type", fmt.Sprintf("%s (level %d)", d.Type, d.Level))
	printKeyValue("area", fmt.Sprintf("%d", d.Area))
	printStats(d.RoomCount, len(d.Excavated), result.CacheInfo.GenerateHit)

	if !opts.noMap {
		fmt.Println()
		fmt.Print(string(render.Text(d, render.WithStyledText())))
	}

	if err := c.writeArtifacts(t, result.Artifacts, opts); err != nil {
		return err
	}

	if opts.save {
		if err := c.saveRun(ctx, result, opts); err != nil {
			printWarning("history not recorded: %s", errors.UserMessage(err))
		}
	}

	printNextStep("Explore it", fmt.Sprintf("%s explore %s", appName, t))
	return nil
}

// writeArtifacts writes non-text artifacts to files named <token>.<format>.
// Text artifacts are only written when an output directory was requested,
// since the map is already printed to the terminal.
func (c *CLI) writeArtifacts(t string, artifacts map[string][]byte, opts *generateOpts) error {
	if opts.output == "" && len(artifacts) == 1 && artifacts[render.FormatText] != nil {
		return nil
	}

	dir := opts.output
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for _, format := range opts.formats {
		if format == render.FormatText && opts.output == "" {
			continue
		}
		path := fmt.Sprintf("%s/%s.%s", dir, t, format)
		if err := os.WriteFile(path, artifacts[format], 0644); err != nil {
			return err
		}
		printFile(path)
	}
	return nil
}

// saveRun records the run in the history store, when one is configured.
func (c *CLI) saveRun(ctx context.Context, result *pipeline.Result, opts *generateOpts) error {
	if c.Config.Mongo.URI == "" {
		return errors.New(errors.ErrCodeUnsupported, "no history store configured (set mongo.uri in config.toml)")
	}
	st, err := store.NewMongoStore(ctx, store.MongoConfig{
		URI:      c.Config.Mongo.URI,
		Database: c.Config.Mongo.Database,
	})
	if err != nil {
		return err
	}
	defer st.Close(ctx)

	seed := opts.seed
	if opts.noScatter {
		seed = 0
	}
	return st.Save(ctx, store.NewRecord(result.Dungeon, seed))
}
