package main

import (
	"bytes"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/woozymasta/loco-construct/internal/catalog"
	"github.com/woozymasta/loco-construct/internal/construction"
	"github.com/woozymasta/loco-construct/internal/scenario"
)

type simulateCmd struct {
	Args struct {
		Input  string `positional-arg-name:"IN" required:"true" description:"Scenario file"`
		Output string `positional-arg-name:"OUT" description:"Output report file (default: stdout)"`
	} `positional-args:"true"`

	Format   string `short:"f" long:"format" choice:"yaml" choice:"json" default:"yaml" description:"Output format"`
	Catalog  string `short:"c" long:"catalog" description:"Catalog file overriding the scenario"`
	Defaults string `short:"d" long:"defaults" description:"Remembered choices file, loaded and saved back"`
	Metrics  bool   `short:"m" long:"metrics" description:"Print placement metrics to stderr"`
	Verbose  bool   `short:"v" long:"verbose" description:"Log construction events to stderr"`
}

type simulateReport struct {
	Scenario string            `json:"scenario"`
	Year     int               `json:"year"`
	Results  []scenario.Result `json:"results"`
	Placed   int               `json:"placed"`
	Funds    *int              `json:"funds,omitempty"`
}

// Execute replays the scenario and writes the step report.
func (c *simulateCmd) Execute(_ []string) error {
	sc, err := scenario.Load(c.Args.Input)
	if err != nil {
		return err
	}

	opts := scenario.Options{}
	if c.Catalog != "" {
		if opts.Catalog, err = catalog.Load(c.Catalog); err != nil {
			return err
		}
	}
	if c.Defaults != "" {
		if opts.Defaults, err = scenario.LoadDefaults(c.Defaults); err != nil {
			return err
		}
	}
	if c.Verbose {
		opts.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	var reg *prometheus.Registry
	if c.Metrics {
		reg = prometheus.NewRegistry()
		opts.Metrics = construction.NewMetrics(reg)
	}

	r, err := scenario.NewRunner(sc, opts)
	if err != nil {
		return err
	}
	results, err := r.Run()
	if err != nil {
		return err
	}

	report := simulateReport{
		Scenario: sc.Name,
		Year:     sc.Year,
		Results:  results,
		Placed:   r.Map.Count(false),
	}
	if !r.Builder.Unlimited {
		funds := r.Builder.Funds
		report.Funds = &funds
	}

	out, err := encodeOutput(report, c.Format)
	if err != nil {
		return err
	}
	if err := writeOutput(c.Args.Output, out); err != nil {
		return err
	}

	if c.Defaults != "" {
		if err := r.Defaults.Save(c.Defaults); err != nil {
			return err
		}
	}
	if reg != nil {
		return writeMetrics(reg)
	}

	return nil
}

// writeMetrics dumps the registry in the text exposition format.
func writeMetrics(reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	enc := expfmt.NewEncoder(&buf, expfmt.FmtText)
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}

	_, err = os.Stderr.Write(buf.Bytes())
	return err
}
