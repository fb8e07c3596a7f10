package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/coresim/sim"
	"github.com/inference-sim/coresim/sim/driver"
	"github.com/inference-sim/coresim/sim/trace"
	"github.com/inference-sim/coresim/sim/workload"
)

var (
	// CLI flags for a run
	cores      int    // Number of cores
	scheme     string // Scheduling discipline
	quantum    int64  // Round-robin time slice
	jobsPath   string // Job list (CSV or YAML)
	configPath string // Optional YAML run config
	logLevel   string // Log verbosity level
	traceLevel string // Decision trace level
	showQueue  bool   // Log core and queue contents after every event
	perJob     bool   // Print a per-job table
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "coresim",
	Short: "Discrete-event CPU scheduling simulator",
}

// runOptions is the resolved configuration of one run.
type runOptions struct {
	Cores      int
	Scheme     string
	Quantum    int64
	TraceLevel string
}

// mergeConfig applies values from a YAML run config to opts. A flag the user
// set explicitly always wins; unset flags take the file value when it is non-zero.
func mergeConfig(opts runOptions, file *sim.SimConfig, changed func(string) bool) runOptions {
	if file == nil {
		return opts
	}
	if !changed("cores") && file.Cores > 0 {
		opts.Cores = file.Cores
	}
	if !changed("scheme") && file.Scheme != "" {
		opts.Scheme = file.Scheme
	}
	if !changed("quantum") && file.Quantum > 0 {
		opts.Quantum = file.Quantum
	}
	if !changed("trace-level") && file.TraceLevel != "" {
		opts.TraceLevel = file.TraceLevel
	}
	return opts
}

// driverConfig validates opts and converts them for the driver.
func driverConfig(opts runOptions) (driver.Config, error) {
	s, err := sim.ParseScheme(opts.Scheme)
	if err != nil {
		return driver.Config{}, err
	}
	if !trace.IsValidTraceLevel(opts.TraceLevel) {
		return driver.Config{}, fmt.Errorf("unknown trace level %q", opts.TraceLevel)
	}
	return driver.Config{
		Cores:      opts.Cores,
		Scheme:     s,
		Quantum:    opts.Quantum,
		TraceLevel: trace.TraceLevel(opts.TraceLevel),
		ShowQueue:  showQueue,
	}, nil
}

// runCmd replays a job list through the scheduler
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the scheduling simulation over a job list",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		opts := runOptions{Cores: cores, Scheme: scheme, Quantum: quantum, TraceLevel: traceLevel}
		if configPath != "" {
			fileCfg, err := sim.LoadSimConfig(configPath)
			if err != nil {
				logrus.Fatalf("Failed to load run config: %v", err)
			}
			if err := fileCfg.Validate(); err != nil {
				logrus.Fatalf("Invalid run config %s: %v", configPath, err)
			}
			opts = mergeConfig(opts, fileCfg, cmd.Flags().Changed)
		}

		cfg, err := driverConfig(opts)
		if err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}

		jobs, err := workload.LoadJobs(jobsPath)
		if err != nil {
			logrus.Fatalf("Failed to load jobs from %s: %v", jobsPath, err)
		}
		logrus.Infof("Starting simulation with %d jobs, %d cores, scheme=%s, quantum=%d",
			len(jobs), cfg.Cores, cfg.Scheme, cfg.Quantum)

		d, err := driver.New(cfg)
		if err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}
		res, err := d.Run(jobs)
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}

		printResult(os.Stdout, res, perJob)
		if res.Trace != nil {
			printTraceSummary(os.Stdout, trace.Summarize(res.Trace))
		}
		logrus.Info("Simulation complete.")
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().IntVar(&cores, "cores", 1, "Number of cores")
	runCmd.Flags().StringVar(&scheme, "scheme", "fcfs", fmt.Sprintf("Scheduling scheme %v", sim.ValidSchemeNames()))
	runCmd.Flags().Int64Var(&quantum, "quantum", 0, "Round-robin time slice (required for rr)")
	runCmd.Flags().StringVar(&jobsPath, "jobs", "", "Path to a job list (.csv, or .yaml/.yml)")
	runCmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML run config; explicit flags override it")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&traceLevel, "trace-level", "none", "Decision trace level (none, decisions)")
	runCmd.Flags().BoolVar(&showQueue, "show-queue", false, "Log core and queue contents after every event")
	runCmd.Flags().BoolVar(&perJob, "per-job", false, "Print a per-job schedule table")
	_ = runCmd.MarkFlagRequired("jobs")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
