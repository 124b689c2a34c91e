package prometheus

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func gather(t *testing.T, reg *prometheus.Registry, name string) *dto.MetricFamily {
	t.Helper()
	metrics, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}
	for _, m := range metrics {
		if m.GetName() == name {
			return m
		}
	}
	return nil
}

func TestNew_DefaultRegistry(t *testing.T) {
	c := New(nil)
	if c == nil {
		t.Fatal("New(nil) returned nil")
	}
	if c.registry == nil {
		t.Error("registry should not be nil")
	}
}

func TestCollector_IncCounter(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)

	c.IncCounter("objcat_extracts_total", 2)
	c.IncCounter("objcat_extracts_total", 1)

	m := gather(t, reg, "objcat_extracts_total")
	if m == nil {
		t.Fatal("counter objcat_extracts_total not found in registry")
	}
	if val := m.GetMetric()[0].GetCounter().GetValue(); val != 3 {
		t.Errorf("counter value = %v, want 3", val)
	}
}

func TestCollector_SetGauge(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)

	c.SetGauge("objcat_cache_size", 7)

	m := gather(t, reg, "objcat_cache_size")
	if m == nil {
		t.Fatal("gauge objcat_cache_size not found in registry")
	}
	if val := m.GetMetric()[0].GetGauge().GetValue(); val != 7 {
		t.Errorf("gauge value = %v, want 7", val)
	}
}

func TestCollector_ObserveHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)

	c.ObserveHistogram("objcat_inflated_bytes", 128)
	c.ObserveHistogram("objcat_inflated_bytes", 4096)

	m := gather(t, reg, "objcat_inflated_bytes")
	if m == nil {
		t.Fatal("histogram objcat_inflated_bytes not found in registry")
	}
	if count := m.GetMetric()[0].GetHistogram().GetSampleCount(); count != 2 {
		t.Errorf("histogram count = %v, want 2", count)
	}
}

func TestCollector_AlreadyRegistered(t *testing.T) {
	reg := prometheus.NewRegistry()

	existing := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "objcat_object_reads_total",
		Help: "objcat_object_reads_total",
	})
	reg.MustRegister(existing)
	existing.Add(10)

	// The collector must reuse the pre-registered counter, not panic.
	c := New(reg)
	c.IncCounter("objcat_object_reads_total", 5)

	m := gather(t, reg, "objcat_object_reads_total")
	if m == nil {
		t.Fatal("counter objcat_object_reads_total not found in registry")
	}
	if val := m.GetMetric()[0].GetCounter().GetValue(); val != 15 {
		t.Errorf("counter value = %v, want 15", val)
	}
}
