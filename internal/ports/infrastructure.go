package ports

import (
	"time"
)

// MetricsCollector defines the interface for collecting operational metrics.
// Implementations should integrate with observability platforms like
// Prometheus,
// OpenTelemetry, or custom monitoring solutions.
type MetricsCollector interface {
	// RecordLatency records the execution time of an operation.
	// The labels map provides additional context for the metric.
	RecordLatency(operation string, duration time.Duration, labels map[string]string)

	// RecordCounter increments a counter metric.
	// This is useful for tracking events like calculations and store edits.
	RecordCounter(metric string, value float64, labels map[string]string)

	// RecordGauge sets the current value of a gauge metric.
	// This is useful for tracking values like the latest final score.
	RecordGauge(metric string, value float64, labels map[string]string)

	// RecordHistogram records a value in a histogram.
	// This is useful for tracking distributions like score values.
	RecordHistogram(metric string, value float64, labels map[string]string)
}

// Translator is the opaque locale lookup consulted by the presentation
// layer. It never influences numeric results.
type Translator interface {
	// T returns the display string for key, or key itself when the active
	// locale has no entry for it.
	T(key string) string

	// Locale returns the BCP 47 tag of the active locale (for example "en").
	Locale() string

	// Direction returns "rtl" or "ltr" for the active locale.
	Direction() string
}
