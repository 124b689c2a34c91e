// Package stats provides a unified interface for collecting metrics.
package stats

// Metric names used throughout the library.
const (
	// Extraction metrics.
	MetricExtracts      = "objcat_extracts_total"
	MetricExtractErrors = "objcat_extract_errors_total"
	MetricObjectReads   = "objcat_object_reads_total"
	MetricInflatedBytes = "objcat_inflated_bytes"
	MetricLossyDecodes  = "objcat_lossy_decodes_total"
	MetricOutputWrites  = "objcat_output_writes_total"

	// Cache metrics.
	MetricCacheHits   = "objcat_cache_hits_total"
	MetricCacheMisses = "objcat_cache_misses_total"
	MetricCacheSize   = "objcat_cache_size"
)

// Collector defines the interface for collecting metrics.
type Collector interface {
	// IncCounter increments a counter metric by delta.
	IncCounter(name string, delta int64)

	// SetGauge sets a gauge metric to value.
	SetGauge(name string, value int64)

	// ObserveHistogram records a value in a histogram metric.
	ObserveHistogram(name string, value float64)
}
