package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/report"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
)

var (
	processFile string // YAML/JSON file with algorithm, processes and quantum
	algorithm   string // Overrides the algorithm named in the file
	quantum     int    // Overrides the quantum named in the file
	runAll      bool   // Run every algorithm
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Simulate a process file locally and print the schedule",
	Run: func(cmd *cobra.Command, args []string) {
		request, err := loadRequest(cmd)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		cfg, err := config.LoadSchedulerConfig(configPath)
		if err != nil {
			logrus.Fatalf("unable to load config: %v", err)
		}
		if err := runLocal(os.Stdout, request, runAll, cfg.RoundRobinTimeQuantum); err != nil {
			logrus.Fatalf("%v", err)
		}
	},
}

func loadRequest(cmd *cobra.Command) (requests.ScheduleRequest, error) {
	if processFile == "" {
		return requests.ScheduleRequest{}, fmt.Errorf("--file is required")
	}
	request, err := LoadScheduleRequest(processFile)
	if err != nil {
		return request, err
	}
	if cmd.Flags().Changed("algorithm") {
		request.Algorithm = algorithm
	}
	if cmd.Flags().Changed("quantum") {
		request.Quantum = &quantum
	}
	logrus.Infof("Successfully parsed process file %s. Total number of processes: %d", processFile, len(request.Processes))
	return request, nil
}

// runLocal simulates request with the algorithm it names, or with every algorithm when
// all is set, and writes a report per run. Round Robin uses defaultQuantum when the
// request has none.
func runLocal(w io.Writer, request requests.ScheduleRequest, all bool, defaultQuantum int) error {
	specs, err := request.ProcessSpecs()
	if err != nil {
		return err
	}

	names := []string{request.Algorithm}
	if all {
		names = schedulers.Names()
	}
	for _, name := range names {
		policy, err := schedulers.NewPolicy(name, request.QuantumOr(defaultQuantum))
		if err != nil {
			return err
		}
		result, err := schedulers.Run(policy, specs)
		if err != nil {
			return err
		}
		report.Write(w, policy.String(), responses.NewScheduleResponse(result))
	}
	return nil
}

func init() {
	runCmd.Flags().StringVarP(&processFile, "file", "f", "", "Process file (YAML or JSON)")
	runCmd.Flags().StringVarP(&algorithm, "algorithm", "a", "", "Algorithm: FCFS, SJF, SRTF or RR")
	runCmd.Flags().IntVarP(&quantum, "quantum", "q", 0, "Round Robin time quantum")
	runCmd.Flags().BoolVar(&runAll, "all", false, "Run every algorithm")
	runCmd.Flags().StringVar(&configPath, "config", "", "Path to config file (default ./config.yaml)")
	rootCmd.AddCommand(runCmd)
}
