// Command econometrics runs the heights sampling-distribution
// demonstration: convert a fixed population of heights between units,
// then approximate the sampling distribution of the mean by repeated
// draws without replacement.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/Jadson16/econometrics/report"
	"github.com/Jadson16/econometrics/sim"
	"github.com/Jadson16/econometrics/stats"
	"github.com/Jadson16/econometrics/storage"
	"github.com/Jadson16/econometrics/vector"
	"github.com/google/uuid"
	"github.com/lmittmann/tint"
)

// Heights of ten individuals, in centimeters.
var heightsCm = []float64{175, 182, 150, 187, 165, 177, 200, 198, 157, 165}

const cmPerInch = 2.54

func main() {
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: time.Kitchen,
	}))
	slog.SetDefault(logger)

	cfg, err := LoadConfig(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		slog.Error("run failed", "err", err)
		os.Exit(1)
	}
}

func run(cfg *Config) error {
	if cfg.List {
		if cfg.StorePath == "" {
			return errors.New("-list requires -store")
		}
		return listExperiments(cfg.StorePath)
	}

	heightsIn := vector.Divide(heightsCm, cmPerInch)
	slog.Info("population",
		"size", len(heightsCm),
		"mean_cm", stats.Mean(heightsCm),
		"mean_in", stats.Mean(heightsIn))

	experiment := &sim.Experiment{
		Population: heightsCm,
		SampleSize: cfg.SampleSize,
		Trials:     cfg.Trials,
		Seed:       cfg.Seed,
		Workers:    cfg.Workers,
	}

	started := time.Now()
	result, err := experiment.Run(context.Background())
	if err != nil {
		return err
	}
	slog.Info("experiment finished",
		"trials", cfg.Trials,
		"sample_size", cfg.SampleSize,
		"elapsed", time.Since(started))

	summary := report.Summarize(result.Means, experiment.PopulationMean(), cfg.Bins)
	if err := summary.WriteText(os.Stdout); err != nil {
		return err
	}

	if cfg.HTMLPath != "" {
		if err := writeHTMLReport(cfg, summary); err != nil {
			return err
		}
		slog.Info("wrote HTML report", "path", cfg.HTMLPath)
	}

	if cfg.StorePath != "" {
		id, err := persist(cfg, summary, result)
		if err != nil {
			return err
		}
		slog.Info("persisted experiment", "id", id, "path", cfg.StorePath)
	}
	return nil
}

func writeHTMLReport(cfg *Config, summary *report.Summary) error {
	f, err := os.Create(cfg.HTMLPath)
	if err != nil {
		return err
	}
	defer f.Close()

	meta := report.Meta{
		Title:  "Sampling distribution of the mean",
		Author: cfg.Name,
		Date:   time.Now().Format("2006-01-02"),
	}
	return summary.WriteHTML(f, meta)
}

func persist(cfg *Config, summary *report.Summary, result *sim.Result) (uuid.UUID, error) {
	store, err := openStore(cfg.StorePath)
	if err != nil {
		return uuid.Nil, err
	}
	defer store.Close()

	id := uuid.New()
	record := &storage.ExperimentRecord{
		Name:       cfg.Name,
		Population: heightsCm,
		SampleSize: int32(cfg.SampleSize),
		Trials:     int32(cfg.Trials),
		Seed:       cfg.Seed,
		CreatedAt:  time.Now().Unix(),
		Mean:       summary.Description.Mean,
		StdDev:     summary.Description.StdDev,
		Q05:        summary.Description.Q05,
		Q95:        summary.Description.Q95,
	}
	if err := store.PutExperiment(id, record); err != nil {
		return uuid.Nil, err
	}
	if err := store.PutMeans(id, result.Means); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func listExperiments(path string) error {
	store, err := openStore(path)
	if err != nil {
		return err
	}
	defer store.Close()

	ids, err := store.ListExperiments()
	if err != nil {
		return err
	}
	for _, id := range ids {
		record, err := store.GetExperiment(id)
		if err != nil {
			return err
		}
		slog.Info("experiment",
			"id", id,
			"name", record.Name,
			"trials", record.Trials,
			"sample_size", record.SampleSize,
			"mean", record.Mean,
			"created", time.Unix(record.CreatedAt, 0).Format(time.RFC3339))
	}
	return nil
}

func openStore(path string) (*storage.ResultStore, error) {
	db, err := storage.OpenBadgerDB(path)
	if err != nil {
		return nil, err
	}
	return storage.NewResultStore(storage.NewBadgerBackend(db), true), nil
}
