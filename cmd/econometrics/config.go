package main

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config controls one simulation run. Environment variables set the
// defaults; flags override them.
type Config struct {
	Name       string `env:"ECONOMETRICS_NAME" envDefault:"heights"`
	Trials     int    `env:"ECONOMETRICS_TRIALS" envDefault:"10000"`
	SampleSize int    `env:"ECONOMETRICS_SAMPLE_SIZE" envDefault:"5"`
	Workers    int    `env:"ECONOMETRICS_WORKERS" envDefault:"1"`
	Seed       uint64 `env:"ECONOMETRICS_SEED" envDefault:"1"`
	Bins       int    `env:"ECONOMETRICS_BINS" envDefault:"12"`
	HTMLPath   string `env:"ECONOMETRICS_HTML"`
	StorePath  string `env:"ECONOMETRICS_STORE"`

	List bool
}

func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("econometrics", flag.ContinueOnError)
	fs.StringVar(&cfg.Name, "name", cfg.Name, "experiment name")
	fs.IntVar(&cfg.Trials, "trials", cfg.Trials, "number of Monte Carlo trials")
	fs.IntVar(&cfg.SampleSize, "sample-size", cfg.SampleSize, "elements drawn per trial")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "trial workers (1 = sequential)")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed")
	fs.IntVar(&cfg.Bins, "bins", cfg.Bins, "histogram bins")
	fs.StringVar(&cfg.HTMLPath, "html", cfg.HTMLPath, "write an HTML report to this file")
	fs.StringVar(&cfg.StorePath, "store", cfg.StorePath, "persist results to a badger store at this directory")
	fs.BoolVar(&cfg.List, "list", cfg.List, "list experiments stored under -store and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return cfg, nil
}
