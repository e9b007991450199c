package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cpu-scheduler/api"
	"cpu-scheduler/config"
)

var configPath string // Server config file

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the scheduling API over HTTP",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadSchedulerConfig(configPath)
		if err != nil {
			logrus.Fatalf("unable to load config: %v", err)
		}
		if !cmd.Flags().Changed("log") {
			level, _ := logrus.ParseLevel(cfg.LogLevel)
			logrus.SetLevel(level)
		}

		app := api.NewApp(cfg)
		addr := fmt.Sprintf(":%d", cfg.Port)
		logrus.Infof("listening on %s (rr quantum=%d, tick limit=%d, process limit=%d)", addr, cfg.RoundRobinTimeQuantum, cfg.MaxSimulatedTicks, cfg.MaxProcesses)
		logrus.Fatalln(app.Listen(addr))
	},
}

func init() {
	serveCmd.Flags().StringVar(&configPath, "config", "", "Path to config file (default ./config.yaml)")
	rootCmd.AddCommand(serveCmd)
}
