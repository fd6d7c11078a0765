package watset_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nlpub/watset-go/builder"
	"github.com/nlpub/watset-go/cluster"
	"github.com/nlpub/watset-go/maxmax"
	"github.com/nlpub/watset-go/sense"
	"github.com/nlpub/watset-go/watset"
)

func newMaxMax[V comparable]() cluster.Clusterer[V] {
	return &maxmax.MaxMax[V]{}
}

func newTogether[V comparable]() cluster.Clusterer[V] {
	return &cluster.Together[V]{}
}

func TestWatset_ClustersBeforeFit(t *testing.T) {
	w := watset.New[string]()
	_, err := w.Clusters()
	assert.ErrorIs(t, err, cluster.ErrNotFitted)
}

func TestWatset_TogetherTogetherCollapsesToOneCluster(t *testing.T) {
	g, err := builder.FromEdges([]builder.Triple[string]{
		{From: "a", To: "b", Weight: 1},
		{From: "b", To: "c", Weight: 1},
		{From: "c", To: "d", Weight: 1},
	})
	require.NoError(t, err)

	w := watset.New[string](
		watset.WithLocalClusterer[string](newTogether[string]),
		watset.WithGlobalClusterer[string](newTogether[sense.ID[string]]),
	)
	require.NoError(t, w.Fit(g))

	clusters, err := w.Clusters()
	require.NoError(t, err)
	require.Len(t, clusters, 1)
	assert.Equal(t, map[string]bool{"a": true, "b": true, "c": true, "d": true}, clusters[0])
}

func TestWatset_TwoSenseBankScenario(t *testing.T) {
	g, err := builder.FromEdges([]builder.Triple[string]{
		{From: "bank", To: "river", Weight: 1},
		{From: "bank", To: "water", Weight: 1},
		{From: "bank", To: "money", Weight: 1},
		{From: "bank", To: "loan", Weight: 1},
		{From: "river", To: "water", Weight: 1},
		{From: "money", To: "loan", Weight: 1},
	})
	require.NoError(t, err)

	w := watset.New[string](
		watset.WithLocalClusterer[string](newMaxMax[string]),
		watset.WithGlobalClusterer[string](newMaxMax[sense.ID[string]]),
	)
	require.NoError(t, w.Fit(g))

	clusters, err := w.Clusters()
	require.NoError(t, err)
	require.Len(t, clusters, 2)

	containingBank := 0
	for _, c := range clusters {
		if c["bank"] {
			containingBank++
		}
	}
	assert.Equal(t, 2, containingBank, "both senses of bank must appear in a projected cluster")

	assert.ElementsMatch(t, clusters, []map[string]bool{
		{"bank": true, "river": true, "water": true},
		{"bank": true, "money": true, "loan": true},
	})

	entries := w.Inventory()["bank"]
	assert.Len(t, entries, 2)
}

func TestWatset_ExposesReadOnlyViewsAfterFit(t *testing.T) {
	g, err := builder.FromEdges([]builder.Triple[string]{
		{From: "a", To: "b", Weight: 1},
	})
	require.NoError(t, err)

	w := watset.New[string]()
	require.NoError(t, w.Fit(g))

	assert.NotNil(t, w.Inventory())
	assert.NotNil(t, w.Contexts())
	assert.NotNil(t, w.SenseGraph())
}

func TestWatset_MisbehavingSimilarityYieldsErrSenseUnresolved(t *testing.T) {
	g, err := builder.FromEdges([]builder.Triple[string]{
		{From: "a", To: "b", Weight: 1},
		{From: "b", To: "c", Weight: 1},
	})
	require.NoError(t, err)

	nanSimilarity := func(a, b map[string]float64) float64 { return math.NaN() }

	w := watset.New[string](watset.WithSimilarity[string](nanSimilarity))
	err = w.Fit(g)
	assert.ErrorIs(t, err, watset.ErrSenseUnresolved)
}

func TestWatset_IsolatedVertexStillParticipates(t *testing.T) {
	g, err := builder.FromVerticesAndEdges(
		[]string{"isolated"},
		nil,
	)
	require.NoError(t, err)

	w := watset.New[string]()
	require.NoError(t, w.Fit(g))

	clusters, err := w.Clusters()
	require.NoError(t, err)
	require.Len(t, clusters, 1)
	assert.True(t, clusters[0]["isolated"])
}
