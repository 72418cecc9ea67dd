package filters

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuemby/weaviate-client-go/api/proto"
	"github.com/cuemby/weaviate-client-go/pkg/errors"
)

func TestToGRPCLeafValues(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	id := uuid.MustParse("c1b2a3d4-0000-0000-0000-000000000001")

	tests := []struct {
		name   string
		filter *Filter
		check  func(t *testing.T, got *proto.Filters)
	}{
		{
			name:   "text equal",
			filter: ByProperty("name").Equal("John"),
			check: func(t *testing.T, got *proto.Filters) {
				assert.Equal(t, proto.Filters_OPERATOR_EQUAL, got.Operator)
				require.NotNil(t, got.ValueText)
				assert.Equal(t, "John", *got.ValueText)
				require.NotNil(t, got.Target.Property)
				assert.Equal(t, "name", *got.Target.Property)
			},
		},
		{
			name:   "int greater than",
			filter: ByProperty("wordCount").GreaterThan(1000),
			check: func(t *testing.T, got *proto.Filters) {
				assert.Equal(t, proto.Filters_OPERATOR_GREATER_THAN, got.Operator)
				require.NotNil(t, got.ValueInt)
				assert.EqualValues(t, 1000, *got.ValueInt)
			},
		},
		{
			name:   "number less or equal",
			filter: ByProperty("score").LessOrEqual(0.5),
			check: func(t *testing.T, got *proto.Filters) {
				assert.Equal(t, proto.Filters_OPERATOR_LESS_THAN_EQUAL, got.Operator)
				require.NotNil(t, got.ValueNumber)
				assert.Equal(t, 0.5, *got.ValueNumber)
			},
		},
		{
			name:   "date encodes as RFC 3339 text",
			filter: ByCreationTime().GreaterThan(ts),
			check: func(t *testing.T, got *proto.Filters) {
				require.NotNil(t, got.ValueText)
				assert.Equal(t, "2024-03-01T12:00:00Z", *got.ValueText)
				assert.Equal(t, "_creationTimeUnix", *got.Target.Property)
			},
		},
		{
			name:   "uuid encodes as canonical text",
			filter: ByID().Equal(id),
			check: func(t *testing.T, got *proto.Filters) {
				require.NotNil(t, got.ValueText)
				assert.Equal(t, id.String(), *got.ValueText)
				assert.Equal(t, "_id", *got.Target.Property)
			},
		},
		{
			name:   "contains any text array",
			filter: ByProperty("tags").ContainsAny([]string{"a", "b"}),
			check: func(t *testing.T, got *proto.Filters) {
				assert.Equal(t, proto.Filters_OPERATOR_CONTAINS_ANY, got.Operator)
				require.NotNil(t, got.ValueTextArray)
				assert.Equal(t, []string{"a", "b"}, got.ValueTextArray.Values)
			},
		},
		{
			name:   "is null",
			filter: ByProperty("optional").IsNull(true),
			check: func(t *testing.T, got *proto.Filters) {
				assert.Equal(t, proto.Filters_OPERATOR_IS_NULL, got.Operator)
				require.NotNil(t, got.ValueBoolean)
				assert.True(t, *got.ValueBoolean)
			},
		},
		{
			name: "geo range",
			filter: ByProperty("location").WithinGeoRange(GeoRange{
				Latitude: 52.5, Longitude: 13.4, Distance: 2000,
			}),
			check: func(t *testing.T, got *proto.Filters) {
				assert.Equal(t, proto.Filters_OPERATOR_WITHIN_GEO_RANGE, got.Operator)
				require.NotNil(t, got.ValueGeo)
				assert.EqualValues(t, 2000, got.ValueGeo.Distance)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToGRPC(tt.filter)
			require.NoError(t, err)
			tt.check(t, got)
		})
	}
}

func TestToGRPCCombination(t *testing.T) {
	f := And(
		ByProperty("a").Equal("x"),
		Or(
			ByProperty("b").Equal(1),
			ByProperty("c").Equal(true),
		),
	)
	got, err := ToGRPC(f)
	require.NoError(t, err)

	assert.Equal(t, proto.Filters_OPERATOR_AND, got.Operator)
	require.Len(t, got.Filters, 2)
	assert.Nil(t, got.Target)
	assert.Equal(t, proto.Filters_OPERATOR_OR, got.Filters[1].Operator)
	require.Len(t, got.Filters[1].Filters, 2)
}

func TestToGRPCRefTraversal(t *testing.T) {
	f := ByRef("writesFor").ByProperty("name").Like("*Times*")
	got, err := ToGRPC(f)
	require.NoError(t, err)

	require.NotNil(t, got.Target.SingleTarget)
	assert.Equal(t, "writesFor", got.Target.SingleTarget.On)
	inner := got.Target.SingleTarget.Target
	require.NotNil(t, inner)
	require.NotNil(t, inner.Property)
	assert.Equal(t, "name", *inner.Property)
}

func TestToGRPCMultiTargetRef(t *testing.T) {
	f := ByRefMultiTarget("writesFor", "Publication").ByProperty("name").Equal("NYT")
	got, err := ToGRPC(f)
	require.NoError(t, err)

	require.NotNil(t, got.Target.MultiTarget)
	assert.Equal(t, "writesFor", got.Target.MultiTarget.On)
	assert.Equal(t, "Publication", got.Target.MultiTarget.TargetCollection)
	require.NotNil(t, got.Target.MultiTarget.Target.Property)
	assert.Equal(t, "name", *got.Target.MultiTarget.Target.Property)
}

func TestToGRPCErrors(t *testing.T) {
	var inputErr *errors.InvalidInputError

	_, err := ToGRPC(And())
	require.ErrorAs(t, err, &inputErr)

	_, err = ToGRPC(ByProperty("x").Equal(struct{}{}))
	require.ErrorAs(t, err, &inputErr)
}

func TestToRESTLeaf(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	got, err := ToREST(ByProperty("publishedAt").LessThan(ts), false)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"operator":  "LessThan",
		"path":      []string{"publishedAt"},
		"valueDate": "2024-03-01T12:00:00Z",
	}, got)
}

func TestToRESTCombination(t *testing.T) {
	got, err := ToREST(Or(
		ByProperty("a").Equal("x"),
		ByProperty("b").GreaterOrEqual(2),
	), false)
	require.NoError(t, err)

	assert.Equal(t, "Or", got["operator"])
	operands := got["operands"].([]map[string]any)
	require.Len(t, operands, 2)
	assert.Equal(t, "GreaterThanEqual", operands[1]["operator"])
	assert.Equal(t, 2, operands[1]["valueInt"])
}

func TestToRESTRefGate(t *testing.T) {
	f := ByRefMultiTarget("writesFor", "Publication").ByProperty("name").Equal("NYT")

	_, err := ToREST(f, false)
	var inputErr *errors.InvalidInputError
	require.ErrorAs(t, err, &inputErr)

	got, err := ToREST(f, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"writesFor", "Publication", "name"}, got["path"])
}
