package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/coresim/sim/workload"
)

var genConfig workload.GeneratorConfig

// generateCmd writes a synthetic CSV job list to stdout for piping into `run --jobs`.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a synthetic job list as CSV",
	Run: func(cmd *cobra.Command, args []string) {
		jobs, err := workload.Generate(genConfig)
		if err != nil {
			logrus.Fatalf("Job generation failed: %v", err)
		}
		if err := workload.WriteJobsCSV(os.Stdout, jobs); err != nil {
			logrus.Fatalf("Writing jobs failed: %v", err)
		}
	},
}

func init() {
	generateCmd.Flags().IntVar(&genConfig.Count, "count", 20, "Number of jobs")
	generateCmd.Flags().StringVar(&genConfig.Process, "process", "poisson", "Arrival process (poisson, constant)")
	generateCmd.Flags().Float64Var(&genConfig.Rate, "rate", 0.5, "Jobs per tick")
	generateCmd.Flags().Int64Var(&genConfig.MinRun, "min-run", 1, "Minimum running time")
	generateCmd.Flags().Int64Var(&genConfig.MaxRun, "max-run", 10, "Maximum running time")
	generateCmd.Flags().StringVar(&genConfig.RunDist, "run-dist", "uniform", "Running time distribution (uniform, gaussian, exponential)")
	generateCmd.Flags().Float64Var(&genConfig.RunMean, "run-mean", 0, "Mean running time for gaussian and exponential")
	generateCmd.Flags().Float64Var(&genConfig.RunStdDev, "run-stddev", 0, "Running time standard deviation for gaussian")
	generateCmd.Flags().IntVar(&genConfig.MinPriority, "min-priority", 0, "Minimum priority (lower runs first)")
	generateCmd.Flags().IntVar(&genConfig.MaxPriority, "max-priority", 5, "Maximum priority")
	generateCmd.Flags().Int64Var(&genConfig.Seed, "seed", 42, "Seed for random job generation")

	rootCmd.AddCommand(generateCmd)
}
