package batch

import (
	"sort"

	"github.com/cuemby/weaviate-client-go/api/proto"
	"github.com/cuemby/weaviate-client-go/pkg/query"
	"github.com/cuemby/weaviate-client-go/pkg/types"
)

// encodeObject converts one queued object into its wire form. Reference
// properties become beacons inside the property record.
func encodeObject(o types.BatchObject) (*proto.BatchObject, error) {
	props, err := query.EncodeProperties(o.Properties)
	if err != nil {
		return nil, err
	}

	if len(o.References) > 0 {
		names := make([]string, 0, len(o.References))
		for name := range o.References {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			props.Refs = append(props.Refs, &proto.RefProperty{
				PropName: name,
				Beacons:  o.References[name].Beacons(),
			})
		}
	}

	out := &proto.BatchObject{
		Uuid:       o.UUID.String(),
		Collection: types.CollectionName(o.Collection),
		Tenant:     o.Tenant,
		Vector:     o.Vector,
		Properties: props,
	}
	if len(o.Vectors) > 0 {
		names := make([]string, 0, len(o.Vectors))
		for name := range o.Vectors {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			out.NamedVectors = append(out.NamedVectors, &proto.NamedVector{
				Name: name, Vector: o.Vectors[name],
			})
		}
	}
	return out, nil
}

func encodeConsistency(cl types.ConsistencyLevel) proto.ConsistencyLevel {
	switch cl {
	case types.ConsistencyLevelOne:
		return proto.ConsistencyLevel_ONE
	case types.ConsistencyLevelQuorum:
		return proto.ConsistencyLevel_QUORUM
	case types.ConsistencyLevelAll:
		return proto.ConsistencyLevel_ALL
	default:
		return proto.ConsistencyLevel_UNSPECIFIED
	}
}
