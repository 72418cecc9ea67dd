package collections

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/cuemby/weaviate-client-go/api/proto"
	"github.com/cuemby/weaviate-client-go/pkg/errors"
	"github.com/cuemby/weaviate-client-go/pkg/filters"
)

// Metric selects the aggregations to compute over one property.
type Metric struct {
	Property string
	Count    bool
	Mean     bool
	Min      bool
	Max      bool
	Sum      bool
}

// AggregateRequest describes one aggregation run.
type AggregateRequest struct {
	// ObjectsCount asks for the total number of matching objects.
	ObjectsCount bool
	// ObjectLimit caps how many objects feed the aggregation.
	ObjectLimit *int
	Filter      *filters.Filter
	Metrics     []Metric
}

// AggregateMetrics holds the computed aggregations of one property. Fields
// not requested stay nil.
type AggregateMetrics struct {
	Count *int64
	Mean  *float64
	Min   *float64
	Max   *float64
	Sum   *float64
}

// AggregateResult is the outcome of one aggregation run.
type AggregateResult struct {
	TotalCount *int64
	Properties map[string]AggregateMetrics
}

// Aggregate computes the requested aggregations. Servers with the Aggregate
// RPC answer over the data plane; older servers take the legacy GraphQL
// path, which yields identical results.
func (c *Collection) Aggregate(ctx context.Context, req AggregateRequest) (*AggregateResult, error) {
	if len(req.Metrics) == 0 && !req.ObjectsCount {
		return nil, errors.NewInvalidInput("aggregate request selects nothing, set ObjectsCount or add metrics")
	}
	if c.deps.Version.SupportsGRPCAggregate() && c.deps.GRPC != nil {
		return c.aggregateGRPC(ctx, req)
	}
	return c.aggregateGraphQL(ctx, req)
}

func (c *Collection) aggregateGRPC(ctx context.Context, req AggregateRequest) (*AggregateResult, error) {
	wire := &proto.AggregateRequest{
		Collection:   c.name,
		Tenant:       c.tenant,
		ObjectsCount: req.ObjectsCount,
	}
	if req.ObjectLimit != nil {
		limit := uint32(*req.ObjectLimit)
		wire.ObjectLimit = &limit
	}
	if req.Filter != nil {
		f, err := filters.ToGRPC(req.Filter)
		if err != nil {
			return nil, err
		}
		wire.Filters = f
	}
	for _, m := range req.Metrics {
		wire.Aggregations = append(wire.Aggregations, &proto.Aggregation{
			Property: m.Property,
			Count:    m.Count,
			Mean:     m.Mean,
			Min:      m.Min,
			Max:      m.Max,
			Sum:      m.Sum,
		})
	}

	reply, err := c.deps.GRPC.Aggregate(c.rpcCtx(ctx), wire)
	if err != nil {
		return nil, &errors.RPCError{Label: "aggregate " + c.name, Err: err}
	}
	out := &AggregateResult{Properties: map[string]AggregateMetrics{}}
	if reply.SingleResult != nil {
		out.TotalCount = reply.SingleResult.ObjectsCount
		for _, p := range reply.SingleResult.Properties {
			out.Properties[p.Property] = AggregateMetrics{
				Count: p.Count,
				Mean:  p.Mean,
				Min:   p.Min,
				Max:   p.Max,
				Sum:   p.Sum,
			}
		}
	}
	return out, nil
}

// graphqlReply is the GraphQL response envelope. Errors may accompany
// partial data; any error entry fails the whole call.
type graphqlReply struct {
	Data   map[string]map[string][]map[string]any `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func (c *Collection) aggregateGraphQL(ctx context.Context, req AggregateRequest) (*AggregateResult, error) {
	gql, err := c.renderAggregateQuery(req)
	if err != nil {
		return nil, err
	}
	resp, err := c.deps.REST.Send(ctx, http.MethodPost, "/graphql",
		map[string]string{"query": gql}, nil, []int{http.StatusOK}, "aggregate (graphql)")
	if err != nil {
		return nil, err
	}
	var reply graphqlReply
	if err := resp.Into(&reply); err != nil {
		return nil, err
	}
	if len(reply.Errors) > 0 {
		msgs := make([]string, len(reply.Errors))
		for i, e := range reply.Errors {
			msgs[i] = e.Message
		}
		return nil, &errors.QueryError{Messages: msgs}
	}

	out := &AggregateResult{Properties: map[string]AggregateMetrics{}}
	groups := reply.Data["Aggregate"][c.name]
	if len(groups) == 0 {
		return out, nil
	}
	group := groups[0]
	if meta, ok := group["meta"].(map[string]any); ok {
		if n, ok := meta["count"].(float64); ok {
			count := int64(n)
			out.TotalCount = &count
		}
	}
	for _, m := range req.Metrics {
		raw, ok := group[m.Property].(map[string]any)
		if !ok {
			continue
		}
		var metrics AggregateMetrics
		if n, ok := raw["count"].(float64); ok {
			count := int64(n)
			metrics.Count = &count
		}
		metrics.Mean = floatField(raw, "mean")
		metrics.Min = floatField(raw, "minimum")
		metrics.Max = floatField(raw, "maximum")
		metrics.Sum = floatField(raw, "sum")
		out.Properties[m.Property] = metrics
	}
	return out, nil
}

func floatField(m map[string]any, key string) *float64 {
	if n, ok := m[key].(float64); ok {
		return &n
	}
	return nil
}

func (c *Collection) renderAggregateQuery(req AggregateRequest) (string, error) {
	var args []string
	if req.Filter != nil {
		encoded, err := filters.ToREST(req.Filter, c.deps.Version.SupportsRESTReferenceFilters())
		if err != nil {
			return "", err
		}
		args = append(args, "where: "+renderGraphQLValue(encoded))
	}
	if req.ObjectLimit != nil {
		args = append(args, fmt.Sprintf("objectLimit: %d", *req.ObjectLimit))
	}
	if c.tenant != "" {
		args = append(args, "tenant: "+strconv.Quote(c.tenant))
	}
	argList := ""
	if len(args) > 0 {
		argList = "(" + strings.Join(args, ", ") + ")"
	}

	var fields []string
	if req.ObjectsCount {
		fields = append(fields, "meta { count }")
	}
	for _, m := range req.Metrics {
		var sub []string
		if m.Count {
			sub = append(sub, "count")
		}
		if m.Mean {
			sub = append(sub, "mean")
		}
		if m.Min {
			sub = append(sub, "minimum")
		}
		if m.Max {
			sub = append(sub, "maximum")
		}
		if m.Sum {
			sub = append(sub, "sum")
		}
		if len(sub) == 0 {
			return "", errors.NewInvalidInput("metric for property %q selects no aggregations", m.Property)
		}
		fields = append(fields, fmt.Sprintf("%s { %s }", m.Property, strings.Join(sub, " ")))
	}

	return fmt.Sprintf("{ Aggregate { %s%s { %s } } }", c.name, argList, strings.Join(fields, " ")), nil
}

// renderGraphQLValue renders the REST filter map in GraphQL argument syntax:
// object keys are bare, the operator value is an enum and stays unquoted,
// everything else follows JSON literal rules. Keys are sorted so queries
// are deterministic.
func renderGraphQLValue(value any) string {
	switch v := value.(type) {
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			if k == "operator" {
				parts = append(parts, fmt.Sprintf("%s: %v", k, v[k]))
				continue
			}
			parts = append(parts, fmt.Sprintf("%s: %s", k, renderGraphQLValue(v[k])))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case []map[string]any:
		parts := make([]string, len(v))
		for i, e := range v {
			parts[i] = renderGraphQLValue(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case []any:
		parts := make([]string, len(v))
		for i, e := range v {
			parts[i] = renderGraphQLValue(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case []string:
		parts := make([]string, len(v))
		for i, s := range v {
			parts[i] = strconv.Quote(s)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case string:
		return strconv.Quote(v)
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return fmt.Sprintf("%v", v)
	}
}
