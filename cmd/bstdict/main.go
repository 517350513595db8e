package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/VitiminV/bstdict/internal/applog"
	"github.com/VitiminV/bstdict/internal/config"
	"github.com/VitiminV/bstdict/internal/dataset"
	"github.com/VitiminV/bstdict/internal/datastruct/tree"
	"github.com/VitiminV/bstdict/internal/dict"
	"github.com/VitiminV/bstdict/internal/metrics"
	"github.com/VitiminV/bstdict/internal/report"
	"github.com/VitiminV/bstdict/version"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

func main() {
	cmd := config.CreateCommand(runApp, version.Version())
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "bstdict: %s\n", err)
		os.Exit(1)
	}
}

func runApp(
	ctx context.Context,
	configPath string,
	cfg *config.Config,
	req *config.Request,
) error {
	logger := applog.NewLogger(cfg.LogLevel())
	return run(ctx, os.Stdout, logger, configPath, cfg, req)
}

func run(
	ctx context.Context,
	w io.Writer,
	baseLogger zerolog.Logger,
	configPath string,
	cfg *config.Config,
	req *config.Request,
) error {
	logger := applog.WithScope(baseLogger, "MAIN")

	if configPath != "" {
		logger.Info().Msgf("config file loaded from %s", configPath)
	}

	ds, err := dataset.Load(req.DataPath)
	if err != nil {
		return fmt.Errorf("error loading dataset: %w", err)
	}

	logger.Debug().
		Str("key_type", ds.KeyType.String()).
		Int("entries", len(ds.Entries)).
		Msg("dataset loaded")

	if !cfg.Silent() {
		printBanner(w, cfg, req)
	}

	switch ds.KeyType {
	case dataset.KeyTypeString:
		return serve[string](ctx, w, baseLogger, cfg, req, ds)
	default:
		return serve[int64](ctx, w, baseLogger, cfg, req, ds)
	}
}

func serve[K int64 | string](
	_ context.Context,
	w io.Writer,
	baseLogger zerolog.Logger,
	cfg *config.Config,
	req *config.Request,
	ds *dataset.Dataset,
) error {
	logger := applog.WithScope(baseLogger, "MAIN")

	pairs, err := dataset.Pairs[K](ds)
	if err != nil {
		return err
	}

	var collector *metrics.Collector
	if cfg.Metrics() {
		collector = metrics.NewCollector()
	}

	d := createDictionary[K](baseLogger, cfg, collector)

	for _, p := range pairs {
		err := d.Insert(p.Key, p.Value)
		if errors.Is(err, tree.ErrDuplicateKey) {
			logger.Warn().Msgf("skipping duplicate key %v", p.Key)
			continue
		}
		if err != nil {
			return fmt.Errorf("error inserting %v: %w", p.Key, err)
		}
	}

	for _, s := range req.Delete {
		key, err := dataset.ParseKey[K](s)
		if err != nil {
			return err
		}

		removed, err := d.Delete(key)
		if err != nil {
			return fmt.Errorf("error deleting %v: %w", key, err)
		}

		if !removed {
			logger.Info().Msgf("delete %v: key not present", key)
		}
	}

	for _, s := range req.Search {
		key, err := dataset.ParseKey[K](s)
		if err != nil {
			return err
		}

		value, err := d.Search(key)
		if err != nil && !errors.Is(err, tree.ErrKeyNotFound) {
			return fmt.Errorf("error searching %v: %w", key, err)
		}

		if err := report.Lookup(w, key, value, err == nil); err != nil {
			return err
		}
	}

	if !cfg.Silent() {
		if err := report.Summary(w, d.Len(), d.Depth()); err != nil {
			return err
		}

		if lo, hi, ok := d.Bounds(); ok {
			if err := report.Bounds(w, lo, hi); err != nil {
				return err
			}
		}
	}

	seq := d.All()
	if req.Drain {
		seq = d.Drain()
	}

	if _, err := report.Entries(w, reportFormat(cfg.Format()), seq); err != nil {
		return err
	}

	if collector != nil {
		if err := collector.WriteText(w); err != nil {
			return fmt.Errorf("error writing metrics: %w", err)
		}
	}

	return nil
}

func createDictionary[K int64 | string](
	baseLogger zerolog.Logger,
	cfg *config.Config,
	collector *metrics.Collector,
) *dict.TreeDictionary[K, string] {
	t := tree.New[K, string](
		tree.Options().WithDuplicatePolicy(cfg.Duplicates()),
	)

	return dict.New(
		t,
		applog.WithScope(baseLogger, "DICT"),
		dict.Options().
			WithCacheSize(cfg.CacheSize()).
			WithMetrics(collector),
	)
}

func reportFormat(f config.OutputFormatType) report.Format {
	if f == config.OutputFormatPlain {
		return report.FormatPlain
	}
	return report.FormatTable
}

func printBanner(w io.Writer, cfg *config.Config, req *config.Request) {
	header := pterm.DefaultHeader.
		WithFullWidth(false).
		Sprintf("bstdict %s", version.Version())

	fmt.Fprintln(w, header)
	fmt.Fprintf(w, " • DATA       : %s\n", req.DataPath)
	fmt.Fprintf(w, " • DUPLICATES : %s\n", cfg.Duplicates())
	fmt.Fprintf(w, " • CACHE_SIZE : %d\n", cfg.CacheSize())
	fmt.Fprintf(w, " • FORMAT     : %s\n", cfg.Format())
	fmt.Fprintln(w)
}
