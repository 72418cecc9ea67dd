package query

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cuemby/weaviate-client-go/api/proto"
	"github.com/cuemby/weaviate-client-go/pkg/errors"
	"github.com/cuemby/weaviate-client-go/pkg/types"
)

// Result is a decoded search reply.
type Result struct {
	Objects []*types.Object
	Groups  []*Group
	// Generative is the grouped generative result, when one was requested.
	Generative *string
	Took       float32
}

// Group is one bucket of a grouped search.
type Group struct {
	Name            string
	MinDistance     float32
	MaxDistance     float32
	NumberOfObjects int64
	Objects         []*types.Object
}

// Hints maps property names to declared data types, letting the decoder
// restore date[] and uuid[] values that travel as text arrays.
type Hints map[string]types.DataType

// Decode converts a search reply into typed objects.
func Decode(reply *proto.SearchReply, collection string, hints Hints) (*Result, error) {
	out := &Result{
		Took:       reply.Took,
		Generative: reply.GenerativeGroupedResult,
	}
	for _, res := range reply.Results {
		obj, err := decodeResult(res, collection, hints)
		if err != nil {
			return nil, err
		}
		out.Objects = append(out.Objects, obj)
	}
	for _, g := range reply.GroupByResults {
		group := &Group{
			Name:            g.Name,
			MinDistance:     g.MinDistance,
			MaxDistance:     g.MaxDistance,
			NumberOfObjects: g.NumberOfObjects,
		}
		for _, res := range g.Objects {
			obj, err := decodeResult(res, collection, hints)
			if err != nil {
				return nil, err
			}
			group.Objects = append(group.Objects, obj)
		}
		out.Groups = append(out.Groups, group)
	}
	return out, nil
}

func decodeResult(res *proto.SearchResult, collection string, hints Hints) (*types.Object, error) {
	obj, err := decodePropertiesResult(res.Properties, collection, hints)
	if err != nil {
		return nil, err
	}
	meta := decodeMetadata(res.Metadata)
	if res.Generative != nil {
		if meta == nil {
			meta = &types.MetadataReturn{}
		}
		gen := res.Generative.Result
		meta.Generative = &gen
	}
	obj.Metadata = meta
	if meta != nil && meta.UUID != nil {
		obj.UUID = *meta.UUID
	}
	return obj, nil
}

func decodePropertiesResult(props *proto.PropertiesResult, collection string, hints Hints) (*types.Object, error) {
	obj := &types.Object{Collection: collection, Properties: types.Properties{}}
	if props == nil {
		return obj, nil
	}
	if props.TargetCollection != "" {
		obj.Collection = props.TargetCollection
	}

	decoded, err := decodeProperties(props.NonRefProps, hints)
	if err != nil {
		return nil, err
	}
	obj.Properties = decoded

	for _, ref := range props.RefProps {
		var refObjs []*types.Object
		for _, nested := range ref.Properties {
			// Hints describe the root collection only; referenced
			// collections decode without them.
			refObj, err := decodePropertiesResult(nested, "", nil)
			if err != nil {
				return nil, err
			}
			refObj.Metadata = decodeMetadata(nested.Metadata)
			if refObj.Metadata != nil && refObj.Metadata.UUID != nil {
				refObj.UUID = *refObj.Metadata.UUID
			}
			refObjs = append(refObjs, refObj)
		}
		if obj.References == nil {
			obj.References = map[string]types.Reference{}
		}
		obj.References[ref.PropName] = types.Reference{Objects: refObjs}
	}
	return obj, nil
}

func decodeProperties(op *proto.ObjectProperties, hints Hints) (types.Properties, error) {
	props := types.Properties{}
	if op == nil {
		return props, nil
	}

	for _, s := range op.Scalars {
		val, err := decodeScalar(s, hints)
		if err != nil {
			return nil, err
		}
		props[s.PropName] = val
	}
	for _, a := range op.TextArrays {
		switch hints[a.PropName] {
		case types.DataTypeDateArray:
			dates := make([]time.Time, len(a.Values))
			for i, raw := range a.Values {
				t, err := ParseDate(raw)
				if err != nil {
					return nil, err
				}
				dates[i] = t
			}
			props[a.PropName] = dates
		case types.DataTypeUUIDArray:
			ids := make([]uuid.UUID, len(a.Values))
			for i, raw := range a.Values {
				id, err := uuid.Parse(raw)
				if err != nil {
					return nil, errors.NewInvalidInput("property %q: invalid uuid %q", a.PropName, raw)
				}
				ids[i] = id
			}
			props[a.PropName] = ids
		default:
			props[a.PropName] = a.Values
		}
	}
	for _, a := range op.IntArrays {
		props[a.PropName] = a.Values
	}
	for _, a := range op.NumberArrays {
		props[a.PropName] = a.Values
	}
	for _, a := range op.BooleanArrays {
		props[a.PropName] = a.Values
	}
	for _, a := range op.ObjectArrays {
		objs := make([]types.Properties, len(a.Values))
		for i, nested := range a.Values {
			dec, err := decodeProperties(nested, nil)
			if err != nil {
				return nil, err
			}
			objs[i] = dec
		}
		props[a.PropName] = objs
	}
	return props, nil
}

func decodeScalar(s *proto.ScalarProperty, hints Hints) (any, error) {
	switch {
	case s.NullValue:
		return nil, nil
	case s.TextValue != nil:
		return *s.TextValue, nil
	case s.IntValue != nil:
		return *s.IntValue, nil
	case s.NumberValue != nil:
		return *s.NumberValue, nil
	case s.BooleanValue != nil:
		return *s.BooleanValue, nil
	case s.DateValue != nil:
		return ParseDate(*s.DateValue)
	case s.UuidValue != nil:
		id, err := uuid.Parse(*s.UuidValue)
		if err != nil {
			return nil, errors.NewInvalidInput("property %q: invalid uuid %q", s.PropName, *s.UuidValue)
		}
		return id, nil
	case s.BlobValue != nil:
		return s.BlobValue, nil
	case s.GeoValue != nil:
		return &types.GeoCoordinate{Latitude: s.GeoValue.Latitude, Longitude: s.GeoValue.Longitude}, nil
	case s.PhoneValue != nil:
		return &types.PhoneNumber{
			Input:                  s.PhoneValue.Input,
			DefaultCountry:         s.PhoneValue.DefaultCountry,
			InternationalFormatted: s.PhoneValue.InternationalFormatted,
			CountryCode:            s.PhoneValue.CountryCode,
			National:               s.PhoneValue.National,
			NationalFormatted:      s.PhoneValue.NationalFormatted,
			Valid:                  s.PhoneValue.Valid,
		}, nil
	case s.NestedValue != nil:
		return decodeProperties(s.NestedValue, hints)
	default:
		return nil, nil
	}
}

// ParseDate parses an RFC 3339 timestamp, repairing server renditions
// whose fractional seconds exceed nanosecond precision.
func ParseDate(raw string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err == nil {
		return t, nil
	}
	repaired, ok := truncateFraction(raw)
	if ok {
		if t, err2 := time.Parse(time.RFC3339Nano, repaired); err2 == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.NewInvalidInput("invalid date %q: %v", raw, err)
}

// truncateFraction cuts a fractional-seconds run longer than nine digits
// down to nanoseconds.
func truncateFraction(raw string) (string, bool) {
	dot := strings.IndexByte(raw, '.')
	if dot < 0 {
		return "", false
	}
	end := dot + 1
	for end < len(raw) && raw[end] >= '0' && raw[end] <= '9' {
		end++
	}
	if end-dot-1 <= 9 {
		return "", false
	}
	return raw[:dot+10] + raw[end:], true
}

func decodeMetadata(m *proto.MetadataResult) *types.MetadataReturn {
	if m == nil {
		return nil
	}
	out := &types.MetadataReturn{}
	if m.IdPresent {
		if id, err := uuid.Parse(m.Id); err == nil {
			out.UUID = &id
		}
	}
	if m.VectorPresent {
		out.Vector = m.Vector
	}
	if len(m.Vectors) > 0 {
		out.Vectors = make(map[string][]float32, len(m.Vectors))
		for _, nv := range m.Vectors {
			out.Vectors[nv.Name] = nv.Vector
		}
	}
	if m.CreationTimeUnixPresent {
		v := m.CreationTimeUnix
		out.CreationTimeUnix = &v
	}
	if m.LastUpdateTimeUnixPresent {
		v := m.LastUpdateTimeUnix
		out.LastUpdateTimeUnix = &v
	}
	if m.DistancePresent {
		v := m.Distance
		out.Distance = &v
	}
	if m.CertaintyPresent {
		v := m.Certainty
		out.Certainty = &v
	}
	if m.ScorePresent {
		v := m.Score
		out.Score = &v
	}
	if m.ExplainScorePresent {
		v := m.ExplainScore
		out.ExplainScore = &v
	}
	if m.IsConsistentPresent {
		v := m.IsConsistent
		out.IsConsistent = &v
	}
	return out
}
