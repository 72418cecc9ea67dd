package query

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuemby/weaviate-client-go/pkg/errors"
	"github.com/cuemby/weaviate-client-go/pkg/types"
)

func TestEncodeProperties(t *testing.T) {
	id := uuid.New()
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	enc, err := EncodeProperties(types.Properties{
		"title":       "Space",
		"wordCount":   1200,
		"rating":      4.5,
		"published":   true,
		"publishedAt": ts,
		"externalId":  id,
		"empty":       nil,
		"tags":        []string{"a", "b"},
		"scores":      []float64{1.5, 2.5},
		"editions":    []time.Time{ts},
		"location":    types.GeoCoordinate{Latitude: 52.5, Longitude: 13.4},
		"author": types.Properties{
			"name": "Jane",
		},
	})
	require.NoError(t, err)

	scalars := map[string]int{}
	for i, s := range enc.Scalars {
		scalars[s.PropName] = i
	}

	title := enc.Scalars[scalars["title"]]
	require.NotNil(t, title.TextValue)
	assert.Equal(t, "Space", *title.TextValue)

	wc := enc.Scalars[scalars["wordCount"]]
	require.NotNil(t, wc.IntValue)
	assert.EqualValues(t, 1200, *wc.IntValue)

	date := enc.Scalars[scalars["publishedAt"]]
	require.NotNil(t, date.DateValue)
	assert.Equal(t, "2024-03-01T12:00:00Z", *date.DateValue)

	ext := enc.Scalars[scalars["externalId"]]
	require.NotNil(t, ext.UuidValue)
	assert.Equal(t, id.String(), *ext.UuidValue)

	assert.True(t, enc.Scalars[scalars["empty"]].NullValue)

	nested := enc.Scalars[scalars["author"]]
	require.NotNil(t, nested.NestedValue)
	require.Len(t, nested.NestedValue.Scalars, 1)

	geo := enc.Scalars[scalars["location"]]
	require.NotNil(t, geo.GeoValue)
	assert.InDelta(t, 52.5, geo.GeoValue.Latitude, 1e-6)

	// Date arrays travel as text arrays.
	require.Len(t, enc.TextArrays, 2)
	names := []string{enc.TextArrays[0].PropName, enc.TextArrays[1].PropName}
	assert.Contains(t, names, "tags")
	assert.Contains(t, names, "editions")

	require.Len(t, enc.NumberArrays, 1)
	assert.Equal(t, []float64{1.5, 2.5}, enc.NumberArrays[0].Values)
}

func TestEncodePropertiesDeterministicOrder(t *testing.T) {
	props := types.Properties{"c": "3", "a": "1", "b": "2"}
	enc, err := EncodeProperties(props)
	require.NoError(t, err)

	var order []string
	for _, s := range enc.Scalars {
		order = append(order, s.PropName)
	}
	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestEncodePropertiesUnsupported(t *testing.T) {
	_, err := EncodeProperties(types.Properties{"bad": struct{}{}})
	var inputErr *errors.InvalidInputError
	require.ErrorAs(t, err, &inputErr)
	assert.Contains(t, inputErr.Message, "bad")
}
