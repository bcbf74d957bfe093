// Package profile measures wall time and heap allocation of named phases
// of a btree run and keeps them in a private prometheus registry.
package profile

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
	"github.com/samber/lo"
)

// Metric names exported by Registry.
const (
	MetricDuration = "btree_phase_duration_microseconds"
	MetricAlloc    = "btree_phase_allocated_bytes"
	MetricRuns     = "btree_phase_runs_total"

	labelPhase = "phase"
)

// Phase is one measured step.
type Phase struct {
	Name     string
	Duration time.Duration
	Bytes    uint64
}

// Profiler records phases. It is not safe for concurrent use.
type Profiler struct {
	reg      *prometheus.Registry
	duration *prometheus.GaugeVec
	alloc    *prometheus.GaugeVec
	runs     *prometheus.CounterVec
	order    []string
	now      func() time.Time
}

// New returns a Profiler backed by a fresh registry.
func New() *Profiler {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Profiler{
		reg: reg,
		duration: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: MetricDuration,
			Help: "Wall time of the last run of a phase in microseconds",
		}, []string{labelPhase}),
		alloc: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: MetricAlloc,
			Help: "Heap bytes allocated during the last run of a phase",
		}, []string{labelPhase}),
		runs: factory.NewCounterVec(prometheus.CounterOpts{
			Name: MetricRuns,
			Help: "Number of times a phase ran",
		}, []string{labelPhase}),
		now: time.Now,
	}
}

// Registry exposes the underlying registry, e.g. for a text dump.
func (p *Profiler) Registry() *prometheus.Registry { return p.reg }

// Track runs fn as phase name and records its cost even when fn fails.
// fn's error is returned unchanged.
func (p *Profiler) Track(name string, fn func() error) error {
	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	start := p.now()

	err := fn()

	elapsed := p.now().Sub(start)
	runtime.ReadMemStats(&after)

	p.Record(name, elapsed, after.TotalAlloc-before.TotalAlloc)
	return err
}

// Record stores a measurement taken elsewhere.
func (p *Profiler) Record(name string, d time.Duration, bytes uint64) {
	if !lo.Contains(p.order, name) {
		p.order = append(p.order, name)
	}
	p.duration.WithLabelValues(name).Set(float64(d.Microseconds()))
	p.alloc.WithLabelValues(name).Set(float64(bytes))
	p.runs.WithLabelValues(name).Inc()
}

// Phases gathers the registry and returns the last measurement of every
// phase in first-recorded order.
func (p *Profiler) Phases() ([]Phase, error) {
	families, err := p.reg.Gather()
	if err != nil {
		return nil, err
	}

	byName := lo.SliceToMap(p.order, func(name string) (string, *Phase) {
		return name, &Phase{Name: name}
	})
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			ph, ok := byName[phaseLabel(m)]
			if !ok || m.GetGauge() == nil {
				continue
			}
			switch mf.GetName() {
			case MetricDuration:
				ph.Duration = time.Duration(m.GetGauge().GetValue()) * time.Microsecond
			case MetricAlloc:
				ph.Bytes = uint64(m.GetGauge().GetValue())
			}
		}
	}

	return lo.Map(p.order, func(name string, _ int) Phase {
		return *byName[name]
	}), nil
}

func phaseLabel(m *dto.Metric) string {
	for _, lp := range m.GetLabel() {
		if lp.GetName() == labelPhase {
			return lp.GetValue()
		}
	}
	return ""
}
