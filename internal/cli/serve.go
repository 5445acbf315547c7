package cli

import (
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/tokendelve/excavator/pkg/cache"
	"github.com/tokendelve/excavator/pkg/errors"
	"github.com/tokendelve/excavator/pkg/observability"
	"github.com/tokendelve/excavator/pkg/pipeline"
	"github.com/tokendelve/excavator/pkg/render"
	"github.com/tokendelve/excavator/pkg/store"
	"github.com/tokendelve/excavator/pkg/token"
)

// serveCommand creates the serve command: an HTTP server exposing dungeon
// generation and rendering.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve dungeons over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", c.Config.Server.Addr, "listen address")
	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string) error {
	cc, err := c.serverCache(ctx)
	if err != nil {
		return err
	}
	runner := pipeline.NewRunner(cc, nil, c.Logger)
	defer runner.Close()

	var st store.Store
	if c.Config.Mongo.URI != "" {
		ms, err := store.NewMongoStore(ctx, store.MongoConfig{
			URI:      c.Config.Mongo.URI,
			Database: c.Config.Mongo.Database,
		})
		if err != nil {
			return err
		}
		defer ms.Close(ctx)
		st = ms
	}

	srv := &server{
		runner: runner,
		store:  st,
		logger: c.Logger,
		seed:   c.Config.Seed,
	}

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      srv.routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	// Shut down cleanly when the command context is cancelled.
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	c.Logger.Info("serving dungeons", "addr", addr)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// serverCache prefers redis when configured so multiple instances share one
// store; otherwise it uses the CLI file cache.
func (c *CLI) serverCache(ctx context.Context) (cache.Cache, error) {
	if c.Config.Redis.Addr != "" {
		return cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     c.Config.Redis.Addr,
			Password: c.Config.Redis.Password,
			DB:       c.Config.Redis.DB,
		})
	}
	return c.newCache(false)
}

// server holds the HTTP handler state.
type server struct {
	runner *pipeline.Runner
	store  store.Store // nil when history is not configured
	logger *log.Logger
	seed   uint64
}

// routes builds the chi router.
func (s *server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/healthz", s.handleHealth)
	r.Post("/tokens", s.handleMint)
	r.Get("/dungeons/{token}", s.handleDungeon)
	r.Get("/history", s.handleHistory)

	return r
}

// requestLogger logs each request and feeds the server observability hooks.
func (s *server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r.WithContext(withLogger(r.Context(), s.logger)))

		elapsed := time.Since(start)
		observability.Request(r.Method, r.URL.Path, ww.Status(), elapsed)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", elapsed.Round(time.Millisecond))
	})
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleMint mints a fresh token.
func (s *server) handleMint(w http.ResponseWriter, r *http.Request) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	writeJSON(w, http.StatusOK, map[string]string{"token": token.Mint(rng)})
}

// handleDungeon generates the dungeon for a token and responds in the
// requested format (?format=json|txt|svg|png|dot, default json).
func (s *server) handleDungeon(w http.ResponseWriter, r *http.Request) {
	t := chi.URLParam(r, "token")

	format := r.URL.Query().Get("format")
	if format == "" {
		format = render.FormatJSON
	}

	opts := pipeline.Options{
		Token:   t,
		Seed:    s.seed,
		Formats: []string{format},
		Logger:  loggerFromContext(r.Context()),
	}
	if v := r.URL.Query().Get("seed"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			writeError(w, errors.New(errors.ErrCodeInvalidSeed, "invalid seed: %q", v))
			return
		}
		opts.Seed = seed
	}
	if r.URL.Query().Get("no_scatter") == "true" {
		opts.NoScatter = true
	}
	if r.URL.Query().Get("markers") == "true" {
		opts.Markers = true
	}
	if v := r.URL.Query().Get("cell_size"); v != "" {
		px, err := strconv.Atoi(v)
		if err != nil || px < 1 || px > 64 {
			writeError(w, errors.New(errors.ErrCodeInvalidFormat, "invalid cell_size: %q", v))
			return
		}
		opts.CellSize = px
	}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		writeError(w, err)
		return
	}

	if s.store != nil {
		if err := s.store.Save(r.Context(), store.NewRecord(result.Dungeon, opts.Seed)); err != nil {
			s.logger.Warn("history not recorded", "err", err)
		}
	}

	w.Header().Set("Content-Type", contentType(format))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifacts[format])
}

// handleHistory lists recent runs from the history store.
func (s *server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, errors.New(errors.ErrCodeNotFound, "no history store configured"))
		return
	}

	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	recs, err := s.store.List(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, recs)
}

// errorResponse is the JSON error body.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError maps error codes onto HTTP statuses: token and option errors
// are the client's fault (400), missing resources are 404, everything else
// is a 500.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := errors.GetCode(err)
	switch {
	case errors.IsDecodeError(err),
		code == errors.ErrCodeInvalidFormat,
		code == errors.ErrCodeInvalidSeed,
		code == errors.ErrCodeScatterCapacity:
		status = http.StatusBadRequest
	case code == errors.ErrCodeNotFound:
		status = http.StatusNotFound
	}
	writeJSON(w, status, errorResponse{
		Code:    string(code),
		Message: errors.UserMessage(err),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// contentType maps artifact formats onto MIME types.
func contentType(format string) string {
	switch format {
	case render.FormatJSON:
		return "application/json"
	case render.FormatSVG:
		return "image/svg+xml"
	case render.FormatPNG:
		return "image/png"
	case render.FormatDOT:
		return "text/vnd.graphviz"
	default:
		return "text/plain; charset=utf-8"
	}
}
