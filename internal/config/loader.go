package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/example/meeting-planner/internal/instrumentation"
	"github.com/example/meeting-planner/internal/logging"
	"github.com/example/meeting-planner/internal/scheduler"
)

// DefaultEnvFile is read when SCHEDULER_ENV_FILE is not set.
const DefaultEnvFile = ".env"

// Config captures environment driven configuration values for the scheduler service.
type Config struct {
	HTTPPort           int
	WorkingHours       scheduler.WorkingHours
	SeedSampleBookings bool
	LogLevel           string
	LogFormat          string
	MetricsEnabled     bool
	MetricsAddr        string
	MetricsExporter    string
	SlotCacheTTL       time.Duration
}

// Default returns the configuration used when no variable is set.
func Default() Config {
	return Config{
		HTTPPort:           8080,
		WorkingHours:       scheduler.DefaultWorkingHours,
		SeedSampleBookings: true,
		LogLevel:           "info",
		LogFormat:          logging.FormatJSON,
		MetricsEnabled:     true,
		MetricsAddr:        ":9090",
		MetricsExporter:    instrumentation.ExporterPrometheus,
		SlotCacheTTL:       30 * time.Second,
	}
}

// Load parses configuration values from the current process environment.
//
// Variables from the env file named by SCHEDULER_ENV_FILE (default .env) are
// applied first without overriding the process environment; a missing file is
// ignored. Every invalid value is reported in a single error.
func Load() (Config, error) {
	if err := loadEnvFile(); err != nil {
		return Config{}, err
	}

	cfg := Default()
	invalid := make([]string, 0, 2)

	if portValue := lookup("SCHEDULER_HTTP_PORT"); portValue != "" {
		port, err := strconv.Atoi(portValue)
		if err != nil || port <= 0 || port > 65535 {
			invalid = append(invalid, "SCHEDULER_HTTP_PORT")
		} else {
			cfg.HTTPPort = port
		}
	}

	start, end := cfg.WorkingHours.Start, cfg.WorkingHours.End
	hoursValid := true
	if value := lookup("SCHEDULER_WORKDAY_START"); value != "" {
		parsed, err := scheduler.ParseTimeOfDay(value)
		if err != nil {
			invalid = append(invalid, "SCHEDULER_WORKDAY_START")
			hoursValid = false
		}
		start = parsed
	}
	if value := lookup("SCHEDULER_WORKDAY_END"); value != "" {
		parsed, err := scheduler.ParseTimeOfDay(value)
		if err != nil {
			invalid = append(invalid, "SCHEDULER_WORKDAY_END")
			hoursValid = false
		}
		end = parsed
	}
	if hoursValid {
		hours, err := scheduler.NewWorkingHours(start, end)
		if err != nil {
			invalid = append(invalid, "SCHEDULER_WORKDAY_START", "SCHEDULER_WORKDAY_END")
		} else {
			cfg.WorkingHours = hours
		}
	}

	if value := lookup("SCHEDULER_SEED_SAMPLE_BOOKINGS"); value != "" {
		seed, err := strconv.ParseBool(value)
		if err != nil {
			invalid = append(invalid, "SCHEDULER_SEED_SAMPLE_BOOKINGS")
		} else {
			cfg.SeedSampleBookings = seed
		}
	}

	if value := lookup("SCHEDULER_LOG_LEVEL"); value != "" {
		if _, err := logging.ParseLevel(value); err != nil {
			invalid = append(invalid, "SCHEDULER_LOG_LEVEL")
		} else {
			cfg.LogLevel = strings.ToLower(value)
		}
	}

	if value := strings.ToLower(lookup("SCHEDULER_LOG_FORMAT")); value != "" {
		if value != logging.FormatJSON && value != logging.FormatText {
			invalid = append(invalid, "SCHEDULER_LOG_FORMAT")
		} else {
			cfg.LogFormat = value
		}
	}

	if value := lookup("SCHEDULER_METRICS_ENABLED"); value != "" {
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			invalid = append(invalid, "SCHEDULER_METRICS_ENABLED")
		} else {
			cfg.MetricsEnabled = enabled
		}
	}

	if addr := lookup("SCHEDULER_METRICS_ADDR"); addr != "" {
		cfg.MetricsAddr = addr
	}

	if value := strings.ToLower(lookup("SCHEDULER_METRICS_EXPORTER")); value != "" {
		exporter := instrumentation.Config{Exporter: value}
		if err := exporter.Validate(); err != nil {
			invalid = append(invalid, "SCHEDULER_METRICS_EXPORTER")
		} else {
			cfg.MetricsExporter = value
		}
	}

	if ttlValue := lookup("SCHEDULER_SLOT_CACHE_TTL"); ttlValue != "" {
		ttl, err := time.ParseDuration(ttlValue)
		if err != nil || ttl <= 0 {
			invalid = append(invalid, "SCHEDULER_SLOT_CACHE_TTL")
		} else {
			cfg.SlotCacheTTL = ttl
		}
	}

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment values: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}

// HTTPAddr returns the listen address for the API server.
func (c Config) HTTPAddr() string {
	return ":" + strconv.Itoa(c.HTTPPort)
}

func loadEnvFile() error {
	path := lookup("SCHEDULER_ENV_FILE")
	if path == "" {
		path = DefaultEnvFile
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

func lookup(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
