package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	"github.com/orazve/subiso"
	"github.com/orazve/subiso/config"
	"github.com/orazve/subiso/core"
)

type runFlags struct {
	configPath string
	workers    int
	maxMatches int
	logFormat  string
	logLevel   string
}

func newRunCmd() *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Generate graphs and match the pattern against the target",
		Long: `Generate the target and pattern graphs described by a YAML file and
report the embeddings found.

Examples:
  subiso run                                 # built-in defaults
  subiso run --config run.yaml               # graphs from run.yaml
  subiso run --config run.yaml --workers 8   # override the worker count
  subiso run --max-matches 100 --log-format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadRunConfig(cmd, f)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg)
		},
	}
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "path to the YAML run description")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "number of workers (0 = GOMAXPROCS)")
	cmd.Flags().IntVar(&f.maxMatches, "max-matches", 0, "stop after this many matches (0 = all)")
	cmd.Flags().StringVar(&f.logFormat, "log-format", config.FormatText, "log format: text or json")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	return cmd
}

// loadRunConfig reads the config file, if any, and applies explicitly set flags.
func loadRunConfig(cmd *cobra.Command, f runFlags) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return config.Config{}, errors.Wrapf(err, "load %s", f.configPath)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("workers") {
		cfg.Match.Workers = f.workers
	}
	if flags.Changed("max-matches") {
		cfg.Match.MaxMatches = f.maxMatches
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format = f.logFormat
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = f.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, errors.Wrap(err, "flags")
	}
	return cfg, nil
}

func newLogger(w io.Writer, l config.Logging) (*slog.Logger, error) {
	lvl, err := l.SlogLevel()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if l.Format == config.FormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

func run(ctx context.Context, out, logOut io.Writer, cfg config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	runID := uuid.New().String()
	log, err := newLogger(logOut, cfg.Logging)
	if err != nil {
		return err
	}
	log = log.With("run_id", runID)

	target, err := cfg.Target.Snapshot()
	if err != nil {
		return errors.Wrap(err, "target")
	}
	pattern, err := cfg.Pattern.Snapshot()
	if err != nil {
		return errors.Wrap(err, "pattern")
	}
	log.Info("graphs ready",
		"target_vertices", target.VertexCount(), "target_edges", target.EdgeCount(),
		"representation", target.Representation().String(),
		"pattern_vertices", pattern.VertexCount(), "pattern_edges", pattern.EdgeCount())

	m, err := subiso.NewMatcher(subiso.WithLogger(log))
	if err != nil {
		return errors.Wrap(err, "matcher")
	}
	res, err := m.Match(ctx, target, pattern, cfg.Match.Descriptor())
	if err != nil && res == nil {
		return errors.Wrap(err, "match")
	}
	report(out, runID, target, pattern, res, cfg.Output.Show)
	return errors.Wrap(err, "match")
}

// report prints a plain-text summary of res.
func report(w io.Writer, runID string, target, pattern *core.Snapshot, res *subiso.Result, show int) {
	mean, std := workerLoad(res.Stats)

	fmt.Fprintf(w, "run:      %s\n", runID)
	fmt.Fprintf(w, "target:   %d vertices, %d edges (%s)\n",
		target.VertexCount(), target.EdgeCount(), target.Representation())
	fmt.Fprintf(w, "pattern:  %d vertices, %d edges\n", pattern.VertexCount(), pattern.EdgeCount())
	fmt.Fprintf(w, "order:    %v\n", res.Order.Sequence)
	fmt.Fprintf(w, "roots:    %d\n", res.Stats.Roots)
	fmt.Fprintf(w, "matches:  %d", res.MatchCount)
	if res.Stats.Capped {
		fmt.Fprint(w, " (capped)")
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "workers:  %d, roots per worker %.1f ± %.1f\n", len(res.Stats.Workers), mean, std)
	fmt.Fprintf(w, "elapsed:  %s\n", res.Stats.Elapsed)

	for i, row := range res.VertexMatch {
		if i >= show {
			fmt.Fprintf(w, "  ... %d more\n", len(res.VertexMatch)-show)
			break
		}
		fmt.Fprintf(w, "  %v\n", row)
	}
}

// workerLoad returns the mean and standard deviation of roots per worker.
func workerLoad(s subiso.Stats) (mean, std float64) {
	if len(s.Workers) == 0 {
		return 0, 0
	}
	roots := make([]float64, len(s.Workers))
	for i, w := range s.Workers {
		roots[i] = float64(w.Roots)
	}
	mean = stat.Mean(roots, nil)
	if len(roots) > 1 {
		std = stat.StdDev(roots, nil)
	}
	return mean, std
}
