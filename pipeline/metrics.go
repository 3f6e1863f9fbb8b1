// SPDX-License-Identifier: MIT

package pipeline

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/reebskel/reeb"
)

// Metrics holds the Prometheus collectors of a Pipeline.
type Metrics struct {
	// StageDuration measures each stage: weight, build, ladder, symmetry, verify.
	StageDuration *prometheus.HistogramVec
	// Runs counts finished runs by result: ok, error, canceled.
	Runs *prometheus.CounterVec
	// ArcsRemoved counts arcs removed by filtering across all ladder levels.
	ArcsRemoved *prometheus.CounterVec
	// LevelArcs and LevelNodes track the size of every level of the last run.
	LevelArcs  *prometheus.GaugeVec
	LevelNodes *prometheus.GaugeVec
}

// NewMetrics creates the collectors and registers them with reg. A nil reg
// leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		StageDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "reebskel_stage_duration_seconds",
				Help:    "Duration of pipeline stages in seconds",
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
			},
			[]string{"stage"},
		),
		Runs: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reebskel_runs_total",
				Help: "Total number of pipeline runs by result",
			},
			[]string{"result"},
		),
		ArcsRemoved: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reebskel_arcs_removed_total",
				Help: "Total number of arcs removed, by stage",
			},
			[]string{"stage"},
		),
		LevelArcs: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "reebskel_level_arcs",
				Help: "Arc count of each ladder level of the last run",
			},
			[]string{"level"},
		),
		LevelNodes: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "reebskel_level_nodes",
				Help: "Node count of each ladder level of the last run",
			},
			[]string{"level"},
		),
	}
}

// observeLadder records level sizes and the arcs filtered between levels.
func (m *Metrics) observeLadder(l *reeb.Ladder) {
	m.LevelArcs.Reset()
	m.LevelNodes.Reset()
	removed := 0
	for i, g := range l.Levels {
		lv := strconv.Itoa(i)
		m.LevelArcs.WithLabelValues(lv).Set(float64(g.NumArcs()))
		m.LevelNodes.WithLabelValues(lv).Set(float64(g.NumNodes()))
		if i > 0 {
			if d := l.Levels[i-1].NumArcs() - g.NumArcs(); d > 0 {
				removed += d
			}
		}
	}
	m.ArcsRemoved.WithLabelValues("filter").Add(float64(removed))
}
