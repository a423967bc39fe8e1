package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vaibhaw-/healthgen/internal/healthgen/config"
	"github.com/vaibhaw-/healthgen/internal/healthgen/logger"
	"github.com/vaibhaw-/healthgen/internal/healthgen/synth"
)

var (
	generateFlagSeed    int64
	generateFlagOutput  string
	generateFlagCatalog string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write a reproducible healthcare_system load script",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		gc := config.Get().Generate
		if cmd.Flags().Changed("seed") {
			gc.Seed = generateFlagSeed
		}
		if cmd.Flags().Changed("output") {
			gc.Output = generateFlagOutput
		}
		if cmd.Flags().Changed("catalog") {
			gc.CatalogFile = generateFlagCatalog
		}
		return runGenerate(cmd, gc)
	},
}

func init() {
	generateCmd.Flags().Int64Var(&generateFlagSeed, "seed", 42, "random seed; the same seed always yields the same script")
	generateCmd.Flags().StringVar(&generateFlagOutput, "output", "healthcare_bulk_data.sql", "output file, or - for stdout")
	generateCmd.Flags().StringVar(&generateFlagCatalog, "catalog", "", "YAML file overriding the built-in reference lists")
}

func runGenerate(cmd *cobra.Command, gc config.GenerateCfg) error {
	log := logger.L()

	opts, err := buildOptions(gc)
	if err != nil {
		return err
	}
	ds, err := synth.Generate(opts)
	if err != nil {
		return err
	}
	script := ds.SQL()

	if gc.Output == "-" {
		if _, err := fmt.Fprint(cmd.OutOrStdout(), script); err != nil {
			return fmt.Errorf("write script: %w", err)
		}
	} else {
		if err := os.WriteFile(gc.Output, []byte(script), 0644); err != nil {
			return fmt.Errorf("write script: %w", err)
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Generated %d records (seed %d)\n", ds.TotalRecords(), opts.Seed)
		fmt.Fprintf(out, "  Doctors: %d, Patients: %d, Encounters: %d\n", len(ds.Doctors), len(ds.Patients), len(ds.Encounters))
		fmt.Fprintf(out, "Saved to %s\n", gc.Output)
		fmt.Fprintf(out, "Load with: mysql -u root -p %s < %s\n", opts.Database, gc.Output)
	}

	log.Infow("script written", "output", gc.Output, "bytes", len(script), "sha256", synth.Digest(script))
	return nil
}

// buildOptions maps the generate config section onto synth.Options.
func buildOptions(gc config.GenerateCfg) (synth.Options, error) {
	opts := synth.Options{
		Seed:     gc.Seed,
		Database: gc.Database,
		Counts: synth.Counts{
			Departments: gc.Counts.Departments,
			Doctors:     gc.Counts.Doctors,
			Patients:    gc.Counts.Patients,
			Encounters:  gc.Counts.Encounters,
		},
		MedicationNullRate: gc.MedicationNullRate,
		Catalog:            synth.DefaultCatalog(),
	}

	windows := []struct {
		name string
		cfg  config.WindowCfg
		dst  *synth.Window
	}{
		{"hire", gc.Windows.Hire, &opts.Windows.Hire},
		{"birth", gc.Windows.Birth, &opts.Windows.Birth},
		{"registration", gc.Windows.Registration, &opts.Windows.Registration},
		{"encounter", gc.Windows.Encounter, &opts.Windows.Encounter},
		{"follow_up", gc.Windows.FollowUp, &opts.Windows.FollowUp},
	}
	for _, w := range windows {
		start, end, err := w.cfg.Parse()
		if err != nil {
			return synth.Options{}, fmt.Errorf("%s window: %w", w.name, err)
		}
		*w.dst = synth.Window{Start: start, End: end}
	}

	if gc.CatalogFile != "" {
		f, err := os.Open(gc.CatalogFile)
		if err != nil {
			return synth.Options{}, fmt.Errorf("open catalog: %w", err)
		}
		defer f.Close()
		c, err := synth.LoadCatalog(f)
		if err != nil {
			return synth.Options{}, fmt.Errorf("%s: %w", gc.CatalogFile, err)
		}
		opts.Catalog = c
	}
	return opts, nil
}
