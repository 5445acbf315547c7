package pipeline

import (
	"context"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tokendelve/excavator/pkg/cache"
	"github.com/tokendelve/excavator/pkg/dungeon"
	"github.com/tokendelve/excavator/pkg/errors"
	"github.com/tokendelve/excavator/pkg/observability"
	"github.com/tokendelve/excavator/pkg/render"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and server can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't store
// pipeline results. Multiple goroutines can safely use the same Runner with
// different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete generate → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Generate
	generateStart := time.Now()
	d, generateHit, err := r.GenerateWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Dungeon = d
	result.Stats.GenerateTime = time.Since(generateStart)
	result.Stats.RoomCount = d.RoomCount
	result.Stats.CellCount = len(d.Excavated)
	result.CacheInfo.GenerateHit = generateHit

	r.Logger.Info("generated dungeon",
		"rooms", d.RoomCount,
		"cells", len(d.Excavated),
		"type", d.Type,
		"level", d.Level,
		"duration", result.Stats.GenerateTime)

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, d, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// GenerateWithCacheInfo generates a dungeon record with caching and returns
// cache hit info.
func (r *Runner) GenerateWithCacheInfo(ctx context.Context, opts Options) (*dungeon.Dungeon, bool, error) {
	if err := opts.ValidateForGenerate(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	cacheKey := r.Keyer.DungeonKey(opts.Token, opts.DungeonKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if d, err := unmarshalRecord(data); err == nil {
				observability.CacheHit("dungeon")
				return d, true, nil // Cache hit
			}
			// Corrupt entry - regenerate
		}
		observability.CacheMiss("dungeon")
	}

	var rng *rand.Rand
	if !opts.NoScatter {
		rng = rand.New(rand.NewSource(int64(opts.Seed)))
	}

	start := time.Now()
	d, err := dungeon.Generate(opts.Token, rng)
	if err != nil {
		observability.GenerateError(opts.Token, string(errors.GetCode(err)))
		return nil, false, err
	}
	observability.Generated(opts.Token, d.RoomCount, len(d.Excavated), time.Since(start))

	if data, err := marshalRecord(d); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLDungeon)
	}

	return d, false, nil // Cache miss
}

// Generate is a convenience wrapper that calls GenerateWithCacheInfo and
// discards the cache hit info.
func (r *Runner) Generate(ctx context.Context, opts Options) (*dungeon.Dungeon, error) {
	d, _, err := r.GenerateWithCacheInfo(ctx, opts)
	return d, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit
// info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, d *dungeon.Dungeon, opts Options) (map[string][]byte, bool, error) {
	opts.SetRenderDefaults()
	if err := render.ValidateFormats(opts.Formats); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	if !opts.Refresh {
		for _, format := range opts.Formats {
			cacheKey := r.Keyer.ArtifactKey(d.Token, opts.ArtifactKeyOpts(format))
			if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
				artifacts[format] = data
			} else {
				allCached = false
				break
			}
		}
		if allCached && len(artifacts) == len(opts.Formats) {
			observability.CacheHit("artifact")
			return artifacts, true, nil // All artifacts from cache
		}
		observability.CacheMiss("artifact")
	}

	// Render all formats
	rendered := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := r.renderArtifact(d, format, opts)
		if err != nil {
			return nil, false, err
		}
		rendered[format] = data

		cacheKey := r.Keyer.ArtifactKey(d.Token, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
	}

	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards
// the cache hit info.
func (r *Runner) Render(ctx context.Context, d *dungeon.Dungeon, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, d, opts)
	return artifacts, err
}

// renderArtifact dispatches one format with the pipeline's render options
// applied.
func (r *Runner) renderArtifact(d *dungeon.Dungeon, format string, opts Options) ([]byte, error) {
	switch format {
	case render.FormatText:
		return render.Text(d), nil
	case render.FormatJSON:
		jsonOpts := []render.JSONOption{}
		if !opts.NoScatter {
			jsonOpts = append(jsonOpts, render.WithJSONSeed(opts.Seed))
		}
		return render.JSON(d, jsonOpts...)
	case render.FormatSVG:
		svgOpts := []render.SVGOption{render.WithCellSize(opts.CellSize)}
		if opts.Markers {
			svgOpts = append(svgOpts, render.WithCenterMarkers())
		}
		return render.SVG(d, svgOpts...), nil
	case render.FormatPNG:
		pngOpts := []render.PNGOption{render.WithPNGCellSize(opts.CellSize)}
		if opts.Markers {
			pngOpts = append(pngOpts, render.WithPNGCenterMarkers())
		}
		return render.PNG(d, pngOpts...)
	case render.FormatDOT:
		return []byte(render.DOT(d)), nil
	default:
		return nil, render.ValidateFormat(format)
	}
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
