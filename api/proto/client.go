package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/protoadapt"
)

// Full method names of the weaviate.v1.Weaviate service.
const (
	Weaviate_Search_FullMethodName       = "/weaviate.v1.Weaviate/Search"
	Weaviate_BatchObjects_FullMethodName = "/weaviate.v1.Weaviate/BatchObjects"
	Weaviate_TenantsGet_FullMethodName   = "/weaviate.v1.Weaviate/TenantsGet"
	Weaviate_Aggregate_FullMethodName    = "/weaviate.v1.Weaviate/Aggregate"
)

// Message is what every wire type in this package satisfies; grpc-go
// marshals it through the protobuf legacy shim.
type Message = protoadapt.MessageV1

// WeaviateClient is the client stub of the weaviate.v1.Weaviate service.
type WeaviateClient interface {
	Search(ctx context.Context, in *SearchRequest, opts ...grpc.CallOption) (*SearchReply, error)
	BatchObjects(ctx context.Context, in *BatchObjectsRequest, opts ...grpc.CallOption) (*BatchObjectsReply, error)
	TenantsGet(ctx context.Context, in *TenantsGetRequest, opts ...grpc.CallOption) (*TenantsGetReply, error)
	Aggregate(ctx context.Context, in *AggregateRequest, opts ...grpc.CallOption) (*AggregateReply, error)
}

type weaviateClient struct {
	cc grpc.ClientConnInterface
}

// NewWeaviateClient builds a stub on an established connection.
func NewWeaviateClient(cc grpc.ClientConnInterface) WeaviateClient {
	return &weaviateClient{cc: cc}
}

func (c *weaviateClient) Search(ctx context.Context, in *SearchRequest, opts ...grpc.CallOption) (*SearchReply, error) {
	out := new(SearchReply)
	if err := c.cc.Invoke(ctx, Weaviate_Search_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *weaviateClient) BatchObjects(ctx context.Context, in *BatchObjectsRequest, opts ...grpc.CallOption) (*BatchObjectsReply, error) {
	out := new(BatchObjectsReply)
	if err := c.cc.Invoke(ctx, Weaviate_BatchObjects_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *weaviateClient) TenantsGet(ctx context.Context, in *TenantsGetRequest, opts ...grpc.CallOption) (*TenantsGetReply, error) {
	out := new(TenantsGetReply)
	if err := c.cc.Invoke(ctx, Weaviate_TenantsGet_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *weaviateClient) Aggregate(ctx context.Context, in *AggregateRequest, opts ...grpc.CallOption) (*AggregateReply, error) {
	out := new(AggregateReply)
	if err := c.cc.Invoke(ctx, Weaviate_Aggregate_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
