package cmd

import (
	"errors"
	"io/fs"
	"os"

	"coffeeshop/internal/metrics"
	"coffeeshop/internal/pkg/logging"

	"github.com/joho/godotenv"
)

const (
	envLogLevel         = "LOG_LEVEL"
	envLogFormat        = "LOG_FORMAT"
	envMetricsNamespace = "METRICS_NAMESPACE"
	envReportSchedule   = "REPORT_SCHEDULE"

	defaultReportSchedule = "@every 1m"
)

type Config struct {
	LogLevel         string
	LogFormat        string
	MetricsNamespace string
	ReportSchedule   string
}

// LoadConfig reads the given .env files into the process environment and builds a Config
// from it. Missing files are skipped; variables already set in the environment win.
func LoadConfig(envFiles ...string) (Config, error) {
	present := make([]string, 0, len(envFiles))
	for _, file := range envFiles {
		if _, err := os.Stat(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Config{}, err
		}
		present = append(present, file)
	}

	if len(present) > 0 {
		if err := godotenv.Load(present...); err != nil {
			return Config{}, err
		}
	}

	return Config{
		LogLevel:         envOrDefault(envLogLevel, "info"),
		LogFormat:        envOrDefault(envLogFormat, logging.FormatJSON),
		MetricsNamespace: envOrDefault(envMetricsNamespace, metrics.DefaultNamespace),
		ReportSchedule:   envOrDefault(envReportSchedule, defaultReportSchedule),
	}, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
