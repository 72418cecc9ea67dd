package query

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuemby/weaviate-client-go/api/proto"
	"github.com/cuemby/weaviate-client-go/pkg/errors"
	"github.com/cuemby/weaviate-client-go/pkg/filters"
	"github.com/cuemby/weaviate-client-go/pkg/types"
	"github.com/cuemby/weaviate-client-go/pkg/version"
)

var v129 = version.Parse("1.29.0")
var v122 = version.Parse("1.22.5")

func TestBuildPlainFetchDefaults(t *testing.T) {
	req, err := New("article").Limit(10).Build(v129)
	require.NoError(t, err)

	assert.Equal(t, "Article", req.Collection, "collection names are capitalized")
	assert.EqualValues(t, 10, req.Limit)
	assert.True(t, req.Properties.ReturnAllNonrefProperties)
	require.NotNil(t, req.Metadata)
	assert.True(t, req.Metadata.Uuid)
	assert.True(t, req.Metadata.Distance)
	assert.False(t, req.Metadata.Vector, "vectors are excluded unless asked for")
}

func TestBuildProbeMutualExclusion(t *testing.T) {
	_, err := New("Article").
		BM25("space").
		NearText([]string{"space"}).
		Build(v129)

	var inputErr *errors.InvalidInputError
	require.ErrorAs(t, err, &inputErr)
	assert.Contains(t, inputErr.Message, "already has a bm25 probe")
}

func TestBuildAfterCursorRules(t *testing.T) {
	id := uuid.New()

	_, err := New("Article").After(id).BM25("space").Build(v129)
	var inputErr *errors.InvalidInputError
	require.ErrorAs(t, err, &inputErr)

	_, err = New("Article").After(id).SortBy(Asc("title")).Build(v129)
	require.ErrorAs(t, err, &inputErr)

	req, err := New("Article").After(id).Limit(100).Build(v129)
	require.NoError(t, err)
	assert.Equal(t, id.String(), req.After)
}

func TestBuildCertaintyDistanceExclusive(t *testing.T) {
	_, err := New("Article").
		NearText([]string{"space"}, WithCertainty(0.8), WithDistance(0.3)).
		Build(v129)

	var inputErr *errors.InvalidInputError
	require.ErrorAs(t, err, &inputErr)
	assert.Contains(t, inputErr.Message, "not both")
}

func TestBuildMoveValidation(t *testing.T) {
	_, err := New("Article").
		NearText([]string{"space"}, WithMoveTo(Move{Force: 0.5})).
		Build(v129)

	var inputErr *errors.InvalidInputError
	require.ErrorAs(t, err, &inputErr)

	req, err := New("Article").
		NearText([]string{"space"},
			WithMoveTo(Move{Force: 0.5, Concepts: []string{"mars"}}),
			WithMoveAway(Move{Force: 0.2, UUIDs: []uuid.UUID{uuid.New()}}),
		).Build(v129)
	require.NoError(t, err)
	require.NotNil(t, req.NearText.MoveTo)
	assert.Equal(t, []string{"mars"}, req.NearText.MoveTo.Concepts)
	require.NotNil(t, req.NearText.MoveAway)
	require.Len(t, req.NearText.MoveAway.Uuids, 1)
}

func TestBuildMoveOnlyForNearText(t *testing.T) {
	_, err := New("Article").
		NearVector([]float32{0.1, 0.2}, WithMoveTo(Move{Force: 1, Concepts: []string{"x"}})).
		Build(v129)

	var inputErr *errors.InvalidInputError
	require.ErrorAs(t, err, &inputErr)
	assert.Contains(t, inputErr.Message, "near_text")
}

func TestBuildVersionGates(t *testing.T) {
	// Named vectors need 1.24.
	_, err := New("Article").IncludeNamedVectors("title").Build(v122)
	var unsupported *errors.UnsupportedFeatureError
	require.ErrorAs(t, err, &unsupported)

	_, err = New("Article").IncludeNamedVectors("title").Build(v129)
	require.NoError(t, err)

	// Multi-target vectors need 1.26.
	multi := Targets{Vectors: []string{"title", "body"}}
	_, err = New("Article").
		NearVector([]float32{0.1}, WithTargets(multi)).
		Build(version.Parse("1.25.0"))
	require.ErrorAs(t, err, &unsupported)

	req, err := New("Article").
		NearVector([]float32{0.1}, WithTargets(multi)).
		Build(v129)
	require.NoError(t, err)
	assert.Equal(t, []string{"title", "body"}, req.NearVector.Targets.TargetVectors)
}

func TestBuildNearVectorPerTarget(t *testing.T) {
	req, err := New("Article").
		NearVectorPerTarget(map[string][]float32{
			"title": {0.1, 0.2},
			"body":  {0.3, 0.4},
		}).
		Build(v129)
	require.NoError(t, err)

	require.NotNil(t, req.NearVector)
	assert.Len(t, req.NearVector.VectorPerTarget, 2)
	assert.Empty(t, req.NearVector.Vector)
}

func TestBuildHybridAndExtras(t *testing.T) {
	f := filters.ByProperty("wordCount").GreaterThan(500)
	req, err := New("Article").
		Hybrid("space travel", HybridOptions{Alpha: 0.25, FusionType: FusionRelativeScore}).
		WithFilter(f).
		WithTenant("acme").
		WithConsistencyLevel(types.ConsistencyLevelQuorum).
		WithGroupBy(GroupBy{Property: "category", NumberOfGroups: 3, ObjectsPerGroup: 5}).
		WithGenerative(Generative{SinglePrompt: "summarize {title}"}).
		ReturnProperties("title").
		ReturnReferences(Ref("writesFor")).
		Build(v129)
	require.NoError(t, err)

	assert.Equal(t, "acme", req.Tenant)
	assert.Equal(t, proto.ConsistencyLevel_QUORUM, req.ConsistencyLevel)
	require.NotNil(t, req.HybridSearch)
	assert.Equal(t, proto.Hybrid_FUSION_TYPE_RELATIVE_SCORE, req.HybridSearch.FusionType)
	assert.InDelta(t, 0.25, req.HybridSearch.Alpha, 1e-6)
	require.NotNil(t, req.Filters)
	require.NotNil(t, req.GroupBy)
	assert.Equal(t, []string{"category"}, req.GroupBy.Path)
	require.NotNil(t, req.Generative)
	assert.Equal(t, []string{"title"}, req.Properties.NonRefProperties)
	require.Len(t, req.Properties.RefProperties, 1)
	assert.Equal(t, "writesFor", req.Properties.RefProperties[0].ReferenceProperty)
	assert.True(t, req.Properties.RefProperties[0].Properties.ReturnAllNonrefProperties)
}
