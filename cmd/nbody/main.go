package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/cdc6d/nbody/internal/config"
	"github.com/cdc6d/nbody/internal/driver"
	"github.com/cdc6d/nbody/internal/gui"
	"github.com/cdc6d/nbody/internal/metrics"
	"github.com/cdc6d/nbody/internal/sim"
	"github.com/cdc6d/nbody/internal/storage"
	"github.com/cdc6d/nbody/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	gravity    float64
	interval   int
	ticks      int
	record     bool
	trace      bool
)

// main wires the CLI. The bare command opens the windowed simulation,
// matching the reference program's behavior.
func main() {
	rootCmd := &cobra.Command{
		Use:   "nbody",
		Short: "interactive 2-D gravity and collision simulator",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			s, err := buildSim(cfg)
			if err != nil {
				return err
			}
			return gui.Run(cfg, s)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".nbody", "data directory for recorded runs")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "scenario file (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "named scenario preset")
	rootCmd.PersistentFlags().Float64Var(&gravity, "g", config.DefaultG, "gravitational constant")
	rootCmd.PersistentFlags().IntVar(&interval, "interval", config.DefaultInterval, "tick interval in milliseconds")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "live terminal view",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			s, err := buildSim(cfg)
			if err != nil {
				return err
			}
			return viz.Run(cfg, s)
		},
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "advance the simulation headless and print a summary",
		RunE:  runBatch,
	}
	runCmd.Flags().IntVar(&ticks, "ticks", 1000, "number of ticks to advance")
	runCmd.Flags().BoolVar(&record, "record", false, "store the trajectory under the data directory")

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "run in the console on the blocking frame driver",
		RunE:  runPlay,
	}
	playCmd.Flags().IntVar(&ticks, "ticks", 0, "stop after this many ticks (0 = until off-screen)")
	playCmd.Flags().BoolVar(&trace, "trace", false, "print every body position each tick")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	exportCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "print a recorded run's metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list scenario presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the default scenario to a yaml file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.Save(args[0], config.Default())
		},
	}

	rootCmd.AddCommand(tuiCmd, runCmd, playCmd, listCmd, exportCmd, presetsCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig resolves preset, file, and flag overrides in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", configFile, err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("g") {
		cfg.G = gravity
	}
	if cmd.Flags().Changed("interval") {
		cfg.Interval = interval
	}

	return cfg, nil
}

func buildSim(cfg *config.Config) (*sim.Simulation, error) {
	s, err := sim.New(cfg.MakeBodies(), cfg.G)
	if err != nil {
		return nil, err
	}
	if cfg.Bounds.QuitOffscreen {
		s.QuitOffscreen(cfg.Bounds.Margin)
	}
	return s, nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	s, err := buildSim(cfg)
	if err != nil {
		return err
	}
	s.AddMetric(metrics.NewKineticEnergy())
	s.AddMetric(metrics.NewMomentum())
	s.AddMetric(metrics.NewHeat())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, err := s.Run(ctx, ticks)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "scenario\t%s\n", cfg.Scenario)
	fmt.Fprintf(w, "ticks\t%d\n", result.Ticks)
	fmt.Fprintf(w, "collisions\t%d\n", result.Collisions)
	fmt.Fprintf(w, "heat\t%.4f\n", result.Heat)
	for name, value := range result.Metrics {
		fmt.Fprintf(w, "%s\t%.4f\n", name, value)
	}
	w.Flush()

	if record {
		store := storage.New(dataDir)
		if err := store.Init(); err != nil {
			return err
		}
		runID, err := store.Save(cfg.Scenario, cfg.G, result)
		if err != nil {
			return err
		}
		fmt.Printf("recorded %s\n", runID)
	}

	return nil
}

// runPlay drives the simulation on the blocking loop driver, the
// reference program's native main-loop flavor.
func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	s, err := buildSim(cfg)
	if err != nil {
		return err
	}

	loop := driver.NewLoop()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)
	go func() {
		<-sigs
		loop.Stop()
	}()
	defer signal.Stop(sigs)

	loop.Run(func() bool {
		stop, err := s.Tick(nil, nil)
		if err != nil || stop {
			return false
		}
		if trace {
			for i, b := range s.Bodies() {
				fmt.Printf("%6d: %8.2f, %8.2f\n", i, b.Pos.X, b.Pos.Y)
			}
		}
		return ticks <= 0 || s.Ticks() < ticks
	}, time.Duration(cfg.Interval)*time.Millisecond)

	fmt.Printf("stopped after %d ticks\n", s.Ticks())
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	runs, err := store.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no recorded runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENARIO\tBODIES\tTICKS\tCOLLISIONS\tWHEN")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%s\n",
			run.ID, run.Scenario, run.Bodies, run.Ticks, run.Collisions,
			run.Timestamp.Format(time.RFC3339))
	}
	return w.Flush()
}

func exportRun(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	meta, err := store.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}
