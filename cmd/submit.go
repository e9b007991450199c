package cmd

import (
	"context"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cpu-scheduler/internal/client"
	"cpu-scheduler/internal/report"
)

var (
	serverURL     string
	submitTimeout time.Duration
)

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Send a process file to a running server and print the schedule",
	Run: func(cmd *cobra.Command, args []string) {
		request, err := loadRequest(cmd)
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
		defer cancel()

		response, err := client.New(serverURL, nil).Schedule(ctx, request)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		report.Write(os.Stdout, request.Algorithm, response)
	},
}

func init() {
	submitCmd.Flags().StringVarP(&processFile, "file", "f", "", "Process file (YAML or JSON)")
	submitCmd.Flags().StringVarP(&algorithm, "algorithm", "a", "", "Algorithm: FCFS, SJF, SRTF or RR")
	submitCmd.Flags().IntVarP(&quantum, "quantum", "q", 0, "Round Robin time quantum")
	submitCmd.Flags().StringVar(&serverURL, "server", "http://localhost:9095", "Scheduler server base URL")
	submitCmd.Flags().DurationVar(&submitTimeout, "timeout", 30*time.Second, "Request timeout")
	rootCmd.AddCommand(submitCmd)
}
