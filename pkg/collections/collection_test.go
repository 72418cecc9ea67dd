package collections

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"

	"github.com/cuemby/weaviate-client-go/api/proto"
	"github.com/cuemby/weaviate-client-go/pkg/version"
)

// fakeDataPlane scripts the gRPC stub so the facade can be exercised
// without a connection.
type fakeDataPlane struct {
	mu sync.Mutex

	searchReq   *proto.SearchRequest
	searchReply *proto.SearchReply

	tenantsReq   *proto.TenantsGetRequest
	tenantsReply *proto.TenantsGetReply

	aggReq   *proto.AggregateRequest
	aggReply *proto.AggregateReply

	err error
}

func (f *fakeDataPlane) Search(ctx context.Context, in *proto.SearchRequest, opts ...grpc.CallOption) (*proto.SearchReply, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searchReq = in
	if f.err != nil {
		return nil, f.err
	}
	if f.searchReply == nil {
		return &proto.SearchReply{}, nil
	}
	return f.searchReply, nil
}

func (f *fakeDataPlane) BatchObjects(ctx context.Context, in *proto.BatchObjectsRequest, opts ...grpc.CallOption) (*proto.BatchObjectsReply, error) {
	return &proto.BatchObjectsReply{}, nil
}

func (f *fakeDataPlane) TenantsGet(ctx context.Context, in *proto.TenantsGetRequest, opts ...grpc.CallOption) (*proto.TenantsGetReply, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tenantsReq = in
	if f.err != nil {
		return nil, f.err
	}
	if f.tenantsReply == nil {
		return &proto.TenantsGetReply{}, nil
	}
	return f.tenantsReply, nil
}

func (f *fakeDataPlane) Aggregate(ctx context.Context, in *proto.AggregateRequest, opts ...grpc.CallOption) (*proto.AggregateReply, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.aggReq = in
	if f.err != nil {
		return nil, f.err
	}
	if f.aggReply == nil {
		return &proto.AggregateReply{}, nil
	}
	return f.aggReply, nil
}

func strPtr(s string) *string { return &s }

func TestHandleDerivationIsCopyOnWrite(t *testing.T) {
	base := New("article", Deps{Version: version.Parse("1.27.0")})
	scoped := base.WithTenant("acme")

	assert.Equal(t, "Article", base.Name())
	assert.Equal(t, "acme", scoped.tenant)
	assert.Empty(t, base.tenant, "derivation never mutates the base handle")
}

func TestSearchScopesQueryToHandle(t *testing.T) {
	fake := &fakeDataPlane{
		searchReply: &proto.SearchReply{
			Results: []*proto.SearchResult{{
				Properties: &proto.PropertiesResult{
					NonRefProps: &proto.ObjectProperties{
						Scalars: []*proto.ScalarProperty{
							{PropName: "title", TextValue: strPtr("hello")},
						},
					},
				},
				Metadata: &proto.MetadataResult{},
			}},
		},
	}
	c := New("article", Deps{GRPC: fake, Version: version.Parse("1.27.0")}).WithTenant("acme")

	res, err := c.Search(context.Background(), c.Query().Limit(5))
	require.NoError(t, err)
	require.Len(t, res.Objects, 1)
	assert.Equal(t, "hello", res.Objects[0].Properties["title"])
	assert.Equal(t, "Article", res.Objects[0].Collection)

	require.NotNil(t, fake.searchReq)
	assert.Equal(t, "Article", fake.searchReq.Collection)
	assert.Equal(t, "acme", fake.searchReq.Tenant)
	assert.EqualValues(t, 5, fake.searchReq.Limit)
}

func TestSearchWithoutConnectionFails(t *testing.T) {
	c := New("article", Deps{Version: version.Parse("1.27.0")})
	_, err := c.Search(context.Background(), c.Query())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no data-plane connection")
}
