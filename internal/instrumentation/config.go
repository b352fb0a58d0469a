package instrumentation

import "fmt"

// Exporter types.
const (
	ExporterPrometheus = "prometheus"
	ExporterStdout     = "stdout"
)

// Config holds the configuration for metric instrumentation.
type Config struct {
	// Enabled determines if metrics are recorded at all.
	Enabled bool

	// ServiceName is reported as the service.name resource attribute
	// (default: meeting-planner).
	ServiceName string

	// ServiceVersion is reported as the service.version resource attribute.
	ServiceVersion string

	// Exporter selects where metrics go: "prometheus" (default) exposes them
	// through Handler, "stdout" prints them periodically and is meant for
	// development only.
	Exporter string
}

// DefaultConfig returns an enabled Prometheus configuration.
func DefaultConfig() Config {
	return Config{
		Enabled:        true,
		ServiceName:    "meeting-planner",
		ServiceVersion: "dev",
		Exporter:       ExporterPrometheus,
	}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	switch c.Exporter {
	case "", ExporterPrometheus, ExporterStdout:
		return nil
	default:
		return fmt.Errorf("invalid metrics exporter %q, must be one of: prometheus, stdout", c.Exporter)
	}
}
