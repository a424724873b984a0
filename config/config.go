package config

import (
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                  int
	RoundRobinTimeQuantum int
	MaxTotalBurst         int
	MaxArrivalTime        int
	LogLevel              string
	LogFormat             string
	StorePath             string
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig loads the configuration from the working directory once per process.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		cfg, err := Load("")
		if err != nil {
			slog.Warn("falling back to default config", "error", err)
			cfg = Default()
		}
		config = cfg
	})

	return config
}

func Default() *SchedulerConfig {
	return &SchedulerConfig{
		Port:                  9095,
		RoundRobinTimeQuantum: 2,
		MaxTotalBurst:         10000,
		MaxArrivalTime:        10000,
		LogLevel:              "info",
		LogFormat:             "text",
		StorePath:             "scheduler.db",
	}
}

// Load reads .env, then the yaml config file (path, or ./config.yaml when empty), then
// SCHEDULER_ prefixed environment variables. Missing files are not an error.
func Load(path string) (*SchedulerConfig, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	defaults := Default()
	v := viper.New()
	v.SetDefault("port", defaults.Port)
	v.SetDefault("scheduler.round_robin.time_quantum", defaults.RoundRobinTimeQuantum)
	v.SetDefault("scheduler.max_total_burst", defaults.MaxTotalBurst)
	v.SetDefault("scheduler.max_arrival_time", defaults.MaxArrivalTime)
	v.SetDefault("log.level", defaults.LogLevel)
	v.SetDefault("log.format", defaults.LogFormat)
	v.SetDefault("store.path", defaults.StorePath)

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
	}

	return &SchedulerConfig{
		Port:                  v.GetInt("port"),
		RoundRobinTimeQuantum: v.GetInt("scheduler.round_robin.time_quantum"),
		MaxTotalBurst:         v.GetInt("scheduler.max_total_burst"),
		MaxArrivalTime:        v.GetInt("scheduler.max_arrival_time"),
		LogLevel:              v.GetString("log.level"),
		LogFormat:             v.GetString("log.format"),
		StorePath:             v.GetString("store.path"),
	}, nil
}
