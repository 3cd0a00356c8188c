// SPDX-License-Identifier: MIT
//
// metrics.go — the tolerance contract between a generator and its
// outputs: what was promised (Metrics), what came out (Realized) and
// the verdict (Admit).

package gen

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/grafo/bfs"
	"github.com/katalvlaran/grafo/core"
)

const methodAdmit = "Admit"

// DegreeRange is a closed degree interval.
type DegreeRange struct {
	Min, Max int
}

// Metrics is the contract a Generator promises its outputs satisfy:
// exact order, single weak component when Connected, and degrees inside
// NodeDegrees up to DegreeExcess of slack.
//
// DegreeExcess absorbs the unavoidable overshoot of randomized
// placement: one incidence for plain binary pools, the largest arity
// for pools with hyperedge kinds (one accepted hyperedge can land that
// many incidences at once). The constants are provisional; verify them
// empirically when tuning a custom kind pool.
type Metrics struct {
	Order        int
	Connected    bool
	NodeDegrees  DegreeRange
	DegreeExcess int
}

// ExpectedTotalDegree is Order times the midpoint of NodeDegrees,
// rounded to the nearest integer.
func (m Metrics) ExpectedTotalDegree() int {
	return int(math.Round(float64(m.Order) * float64(m.NodeDegrees.Min+m.NodeDegrees.Max) / 2))
}

// MaxDegreeDeviation is the admissible distance between the realized
// and expected total degree. The band is wide enough to admit both a
// bare floor fill and a budget-driven fill saturated at the max degree.
func (m Metrics) MaxDegreeDeviation() int {
	spread := m.NodeDegrees.Max - m.NodeDegrees.Min + m.DegreeExcess

	return int(math.Ceil(float64(m.Order) * float64(spread) / 2))
}

// Realized is the measured shape of one generated graph.
type Realized struct {
	Order       int
	GraphSize   int
	MinDegree   int
	MaxDegree   int
	TotalDegree int
	Components  int
	MeanDegree  float64
}

// Measure computes the realized shape of g: order, size, degree
// extremes, total and mean degree, and the weak component count.
// A nil graph measures as zero.
func Measure[N comparable](g *core.Graph[N]) Realized {
	if g == nil {
		return Realized{}
	}
	out := Realized{
		Order:      g.Order(),
		GraphSize:  g.GraphSize(),
		Components: len(bfs.Components(g)),
	}
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return out
	}
	degs := make([]float64, len(nodes))
	out.MinDegree = g.Degree(nodes[0])
	for i, v := range nodes {
		d := g.Degree(v)
		degs[i] = float64(d)
		if d < out.MinDegree {
			out.MinDegree = d
		}
		if d > out.MaxDegree {
			out.MaxDegree = d
		}
	}
	out.TotalDegree = g.TotalDegree()
	out.MeanDegree = stat.Mean(degs, nil)

	return out
}

// Admit checks r against the contract and reports the first violation,
// wrapped in ErrMetricsViolated. The checks are coarse: they catch
// gross generator defects, not distribution shape. Degree checks apply
// to orders above one; a single node takes no loop-free degree.
func (m Metrics) Admit(r Realized) error {
	if r.Order != m.Order {
		return fmt.Errorf("%s: order %d, want %d: %w",
			methodAdmit, r.Order, m.Order, ErrMetricsViolated)
	}
	if m.Connected && m.Order > 0 && r.Components != 1 {
		return fmt.Errorf("%s: %d components, want 1: %w",
			methodAdmit, r.Components, ErrMetricsViolated)
	}
	if m.Order <= 1 {
		return nil
	}
	if r.MinDegree < m.NodeDegrees.Min {
		return fmt.Errorf("%s: min degree %d under floor %d: %w",
			methodAdmit, r.MinDegree, m.NodeDegrees.Min, ErrMetricsViolated)
	}
	if hi := m.NodeDegrees.Max + m.DegreeExcess; r.MaxDegree > hi {
		return fmt.Errorf("%s: max degree %d over cap %d: %w",
			methodAdmit, r.MaxDegree, hi, ErrMetricsViolated)
	}
	want, dev := m.ExpectedTotalDegree(), m.MaxDegreeDeviation()
	if r.TotalDegree < want-dev || r.TotalDegree > want+dev {
		return fmt.Errorf("%s: total degree %d outside [%d, %d]: %w",
			methodAdmit, r.TotalDegree, want-dev, want+dev, ErrMetricsViolated)
	}

	return nil
}

// degreeExcess derives the tolerance headroom from a kind pool: one for
// plain binary pools, the largest arity otherwise.
func degreeExcess[N comparable](kinds []EdgeKind[N]) int {
	excess := 1
	for _, k := range kinds {
		if k.MaxArity > 2 && k.MaxArity > excess {
			excess = k.MaxArity
		}
	}

	return excess
}
