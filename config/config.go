package config

import (
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                  int
	LogLevel              string
	AllowOrigins          string
	RoundRobinTimeQuantum int
	// MaxSimulatedTicks bounds the latest arrival plus total burst of a single request;
	// 0 disables the check.
	MaxSimulatedTicks int
	// MaxProcesses bounds the number of processes in a single request; 0 disables the check.
	MaxProcesses int
}

// LoadSchedulerConfig reads the config file at path, or config.yaml in the working
// directory when path is empty. A missing default file is not an error; defaults and
// SCHEDULER_* environment variables still apply.
func LoadSchedulerConfig(path string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetDefault("port", 9095)
	v.SetDefault("log_level", "info")
	v.SetDefault("server.allow_origins", "*")
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("scheduler.max_simulated_ticks", 1_000_000)
	v.SetDefault("scheduler.max_processes", 10_000)

	v.SetEnvPrefix("scheduler")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, err
		}
		logrus.Debugf("no config file found, using defaults")
	}

	cfg := &SchedulerConfig{}
	cfg.Port = v.GetInt("port")
	cfg.LogLevel = v.GetString("log_level")
	cfg.AllowOrigins = v.GetString("server.allow_origins")
	cfg.RoundRobinTimeQuantum = v.GetInt("scheduler.round_robin.time_quantum")
	cfg.MaxSimulatedTicks = v.GetInt("scheduler.max_simulated_ticks")
	cfg.MaxProcesses = v.GetInt("scheduler.max_processes")

	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return nil, err
	}
	if cfg.RoundRobinTimeQuantum <= 0 {
		return nil, errors.New("scheduler.round_robin.time_quantum must be > 0")
	}
	return cfg, nil
}
