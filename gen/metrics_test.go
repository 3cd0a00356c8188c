// SPDX-License-Identifier: MIT

package gen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grafo/core"
	"github.com/katalvlaran/grafo/edge"
	"github.com/katalvlaran/grafo/gen"
)

func TestMetrics_ExpectedTotalDegree(t *testing.T) {
	m := gen.Metrics{Order: 10, NodeDegrees: gen.DegreeRange{Min: 2, Max: 4}}
	assert.Equal(t, 30, m.ExpectedTotalDegree())

	odd := gen.Metrics{Order: 5, NodeDegrees: gen.DegreeRange{Min: 1, Max: 2}}
	assert.Equal(t, 8, odd.ExpectedTotalDegree(), "7.5 rounds half away from zero")
}

func TestMetrics_MaxDegreeDeviation(t *testing.T) {
	m := gen.Metrics{Order: 10, NodeDegrees: gen.DegreeRange{Min: 2, Max: 4}, DegreeExcess: 1}
	assert.Equal(t, 15, m.MaxDegreeDeviation())

	hyper := gen.Metrics{Order: 3, NodeDegrees: gen.DegreeRange{Min: 1, Max: 2}, DegreeExcess: 3}
	assert.Equal(t, 6, hyper.MaxDegreeDeviation())
}

func TestMeasure(t *testing.T) {
	g, err := core.From(
		[]string{"a", "b", "c", "d"},
		[]core.Edge[string]{
			edge.NewUndirected("a", "b"),
			edge.NewUndirected("b", "c"),
		},
	)
	require.NoError(t, err)

	r := gen.Measure(g)
	assert.Equal(t, 4, r.Order)
	assert.Equal(t, 2, r.GraphSize)
	assert.Equal(t, 0, r.MinDegree, "d is isolated")
	assert.Equal(t, 2, r.MaxDegree)
	assert.Equal(t, 4, r.TotalDegree)
	assert.Equal(t, 2, r.Components)
	assert.InDelta(t, 1.0, r.MeanDegree, 1e-9)
}

func TestMeasure_Degenerate(t *testing.T) {
	assert.Equal(t, gen.Realized{}, gen.Measure[int](nil))
	assert.Equal(t, gen.Realized{}, gen.Measure(core.Empty[int]()))
}

func TestMetrics_Admit(t *testing.T) {
	m := gen.Metrics{
		Order:        10,
		Connected:    true,
		NodeDegrees:  gen.DegreeRange{Min: 2, Max: 4},
		DegreeExcess: 1,
	}
	ok := gen.Realized{Order: 10, Components: 1, MinDegree: 2, MaxDegree: 4, TotalDegree: 30}

	require.NoError(t, m.Admit(ok))

	cases := []struct {
		name    string
		mutate  func(r *gen.Realized)
		message string
	}{
		{"order mismatch", func(r *gen.Realized) { r.Order = 9 }, "order"},
		{"split components", func(r *gen.Realized) { r.Components = 2 }, "components"},
		{"degree under floor", func(r *gen.Realized) { r.MinDegree = 1 }, "min degree"},
		{"degree over cap", func(r *gen.Realized) { r.MaxDegree = 6 }, "max degree"},
		{"total too high", func(r *gen.Realized) { r.TotalDegree = 46 }, "total degree"},
		{"total too low", func(r *gen.Realized) { r.TotalDegree = 14 }, "total degree"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := ok
			tc.mutate(&r)
			err := m.Admit(r)
			require.ErrorIs(t, err, gen.ErrMetricsViolated)
			assert.Contains(t, err.Error(), tc.message)
		})
	}

	t.Run("band edges pass", func(t *testing.T) {
		lo, hi := ok, ok
		lo.TotalDegree = 15
		hi.TotalDegree = 45
		assert.NoError(t, m.Admit(lo))
		assert.NoError(t, m.Admit(hi))
	})
}

func TestMetrics_AdmitDegenerateOrders(t *testing.T) {
	single := gen.Metrics{
		Order:        1,
		Connected:    true,
		NodeDegrees:  gen.DegreeRange{Min: 1, Max: 4},
		DegreeExcess: 1,
	}
	assert.NoError(t, single.Admit(gen.Realized{Order: 1, Components: 1}),
		"degree checks do not apply to a single node")

	loose := gen.Metrics{Order: 10, NodeDegrees: gen.DegreeRange{Min: 0, Max: 2}, DegreeExcess: 1}
	assert.NoError(t, loose.Admit(gen.Realized{Order: 10, Components: 7, TotalDegree: 10}),
		"component count is unconstrained without the connectivity promise")
}
