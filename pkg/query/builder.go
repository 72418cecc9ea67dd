package query

import (
	"github.com/google/uuid"

	"github.com/cuemby/weaviate-client-go/api/proto"
	"github.com/cuemby/weaviate-client-go/pkg/errors"
	"github.com/cuemby/weaviate-client-go/pkg/filters"
	"github.com/cuemby/weaviate-client-go/pkg/types"
	"github.com/cuemby/weaviate-client-go/pkg/version"
)

// FusionType selects how hybrid search blends keyword and vector scores.
type FusionType int

const (
	FusionRanked FusionType = iota
	FusionRelativeScore
)

// MediaType enumerates near-media probe inputs.
type MediaType int

const (
	MediaImage MediaType = iota + 1
	MediaAudio
	MediaVideo
	MediaThumbnail
	MediaIMU
	MediaDepth
)

// CombinationMethod joins per-target scores of a multi-target search.
type CombinationMethod int

const (
	CombinationSum CombinationMethod = iota + 1
	CombinationMin
	CombinationAverage
	CombinationRelativeScore
	CombinationManual
)

// Targets addresses one or more named vector spaces.
type Targets struct {
	Vectors     []string
	Combination CombinationMethod
	Weights     []float32
}

// Move biases a near-text probe toward or away from concepts or objects.
type Move struct {
	Force    float32
	Concepts []string
	UUIDs    []uuid.UUID
}

// Sort orders results by a property.
type Sort struct {
	Property  string
	Ascending bool
}

// Asc sorts ascending by property.
func Asc(property string) Sort { return Sort{Property: property, Ascending: true} }

// Desc sorts descending by property.
func Desc(property string) Sort { return Sort{Property: property} }

// GroupBy buckets results by a property value.
type GroupBy struct {
	Property        string
	NumberOfGroups  int
	ObjectsPerGroup int
}

// Generative asks for LLM augmentation of the result set.
type Generative struct {
	SinglePrompt      string
	GroupedTask       string
	GroupedProperties []string
}

// RefSelection names a reference property to traverse in the result,
// with its own nested property and metadata selection.
type RefSelection struct {
	LinkOn           string
	TargetCollection string
	Properties       []string
	Metadata         types.MetadataQuery
	IncludeUUID      bool
}

// Ref selects a reference traversal returning all of its properties.
func Ref(linkOn string) RefSelection {
	return RefSelection{LinkOn: linkOn, IncludeUUID: true}
}

// nearOpts carries the options shared by the near-* probes.
type nearOpts struct {
	certainty *float64
	distance  *float64
	targets   *Targets
	moveTo    *Move
	moveAway  *Move
}

// NearOption tunes a near-* probe.
type NearOption func(*nearOpts)

// WithCertainty requires at least the given normalized similarity.
func WithCertainty(c float64) NearOption {
	return func(o *nearOpts) { o.certainty = &c }
}

// WithDistance requires at most the given raw distance.
func WithDistance(d float64) NearOption {
	return func(o *nearOpts) { o.distance = &d }
}

// WithTargets runs the probe against named vector spaces.
func WithTargets(t Targets) NearOption {
	return func(o *nearOpts) { o.targets = &t }
}

// WithMoveTo biases near-text results toward the move operand.
func WithMoveTo(m Move) NearOption {
	return func(o *nearOpts) { o.moveTo = &m }
}

// WithMoveAway biases near-text results away from the move operand.
func WithMoveAway(m Move) NearOption {
	return func(o *nearOpts) { o.moveAway = &m }
}

// HybridOptions tunes a hybrid probe. Alpha weights the vector part of
// the fusion and is sent as-is: 0 is pure keyword (BM25), 1 pure vector.
type HybridOptions struct {
	Alpha      float32
	Vector     []float32
	Properties []string
	FusionType FusionType
	Targets    *Targets
}

// Builder accumulates one search request. Validation errors are recorded
// as the chain is built and reported by Build.
type Builder struct {
	collection  string
	tenant      string
	consistency types.ConsistencyLevel

	limit   uint32
	offset  uint32
	autocut uint32
	after   string

	props        []string
	refs         []RefSelection
	metadata     *types.MetadataQuery
	includeVec   bool
	namedVectors []string

	sorts   []Sort
	filter  *filters.Filter
	groupBy *GroupBy
	gen     *Generative

	probe probe
	errs  []error
}

// probe is the single retrieval strategy of a request.
type probe struct {
	kind       string
	nearText   *proto.NearTextSearch
	nearVector *proto.NearVector
	nearObject *proto.NearObject
	nearMedia  *proto.NearMediaSearch
	bm25       *proto.BM25
	hybrid     *proto.Hybrid
	targets    *Targets
}

// New starts a query against the named collection. Without a probe the
// query is a plain fetch.
func New(collection string) *Builder {
	return &Builder{collection: types.CollectionName(collection)}
}

func (b *Builder) fail(format string, args ...any) *Builder {
	b.errs = append(b.errs, errors.NewInvalidInput(format, args...))
	return b
}

// WithTenant scopes the query to a tenant.
func (b *Builder) WithTenant(tenant string) *Builder {
	b.tenant = tenant
	return b
}

// WithConsistencyLevel sets the read consistency level.
func (b *Builder) WithConsistencyLevel(cl types.ConsistencyLevel) *Builder {
	b.consistency = cl
	return b
}

// Limit caps the number of results.
func (b *Builder) Limit(n int) *Builder {
	if n < 0 {
		return b.fail("limit must not be negative, got %d", n)
	}
	b.limit = uint32(n)
	return b
}

// Offset skips the first n results.
func (b *Builder) Offset(n int) *Builder {
	if n < 0 {
		return b.fail("offset must not be negative, got %d", n)
	}
	b.offset = uint32(n)
	return b
}

// Autocut truncates results at the nth score discontinuity.
func (b *Builder) Autocut(jumps int) *Builder {
	if jumps < 0 {
		return b.fail("autocut must not be negative, got %d", jumps)
	}
	b.autocut = uint32(jumps)
	return b
}

// After resumes a plain fetch behind the given object. Incompatible with
// probes and sorting.
func (b *Builder) After(id uuid.UUID) *Builder {
	b.after = id.String()
	return b
}

// WithFilter restricts results to objects matching the filter.
func (b *Builder) WithFilter(f *filters.Filter) *Builder {
	b.filter = f
	return b
}

// SortBy orders results. Only valid for plain fetches.
func (b *Builder) SortBy(sorts ...Sort) *Builder {
	b.sorts = append(b.sorts, sorts...)
	return b
}

// WithGroupBy buckets results by a property value.
func (b *Builder) WithGroupBy(g GroupBy) *Builder {
	b.groupBy = &g
	return b
}

// WithGenerative asks for LLM augmentation.
func (b *Builder) WithGenerative(g Generative) *Builder {
	b.gen = &g
	return b
}

// ReturnProperties limits the returned properties. Without it all
// non-reference properties are returned.
func (b *Builder) ReturnProperties(names ...string) *Builder {
	b.props = append(b.props, names...)
	return b
}

// ReturnReferences asks for reference traversals in the result.
func (b *Builder) ReturnReferences(refs ...RefSelection) *Builder {
	b.refs = append(b.refs, refs...)
	return b
}

// ReturnMetadata selects the metadata fields to return. Without it every
// field except the vector is returned.
func (b *Builder) ReturnMetadata(m types.MetadataQuery) *Builder {
	b.metadata = &m
	return b
}

// IncludeVector returns the default vector with each result.
func (b *Builder) IncludeVector() *Builder {
	b.includeVec = true
	return b
}

// IncludeNamedVectors returns the given named vectors with each result.
// Requires server 1.24+.
func (b *Builder) IncludeNamedVectors(names ...string) *Builder {
	b.namedVectors = append(b.namedVectors, names...)
	return b
}

func (b *Builder) setProbe(kind string, set func(*probe)) *Builder {
	if b.probe.kind != "" {
		return b.fail("query already has a %s probe, cannot add %s", b.probe.kind, kind)
	}
	b.probe.kind = kind
	set(&b.probe)
	return b
}

func (b *Builder) applyNearOpts(kind string, opts []NearOption) *nearOpts {
	o := &nearOpts{}
	for _, opt := range opts {
		opt(o)
	}
	if o.certainty != nil && o.distance != nil {
		b.fail("%s accepts certainty or distance, not both", kind)
	}
	if kind != "near_text" && (o.moveTo != nil || o.moveAway != nil) {
		b.fail("move operands are only valid for near_text")
	}
	return o
}

func encodeMove(m *Move) *proto.NearTextMove {
	if m == nil {
		return nil
	}
	out := &proto.NearTextMove{Force: m.Force, Concepts: m.Concepts}
	for _, id := range m.UUIDs {
		out.Uuids = append(out.Uuids, id.String())
	}
	return out
}

func (b *Builder) validateMove(m *Move) {
	if m == nil {
		return
	}
	if len(m.Concepts) == 0 && len(m.UUIDs) == 0 {
		b.fail("move operand needs at least one concept or object")
	}
}

// NearText probes by vectorized query text.
func (b *Builder) NearText(concepts []string, opts ...NearOption) *Builder {
	if len(concepts) == 0 {
		return b.fail("near_text needs at least one concept")
	}
	o := b.applyNearOpts("near_text", opts)
	b.validateMove(o.moveTo)
	b.validateMove(o.moveAway)
	return b.setProbe("near_text", func(p *probe) {
		p.targets = o.targets
		p.nearText = &proto.NearTextSearch{
			Query:     concepts,
			Certainty: o.certainty,
			Distance:  o.distance,
			MoveTo:    encodeMove(o.moveTo),
			MoveAway:  encodeMove(o.moveAway),
		}
	})
}

// NearVector probes by a raw vector.
func (b *Builder) NearVector(vector []float32, opts ...NearOption) *Builder {
	if len(vector) == 0 {
		return b.fail("near_vector needs a non-empty vector")
	}
	o := b.applyNearOpts("near_vector", opts)
	return b.setProbe("near_vector", func(p *probe) {
		p.targets = o.targets
		p.nearVector = &proto.NearVector{
			Vector:    vector,
			Certainty: o.certainty,
			Distance:  o.distance,
		}
	})
}

// NearVectorPerTarget probes with a distinct vector per named target.
// Requires server 1.26+.
func (b *Builder) NearVectorPerTarget(vectors map[string][]float32, opts ...NearOption) *Builder {
	if len(vectors) == 0 {
		return b.fail("near_vector needs at least one target vector")
	}
	o := b.applyNearOpts("near_vector", opts)
	if o.targets == nil {
		names := make([]string, 0, len(vectors))
		for name := range vectors {
			names = append(names, name)
		}
		o.targets = &Targets{Vectors: names}
	}
	return b.setProbe("near_vector", func(p *probe) {
		p.targets = o.targets
		nv := &proto.NearVector{Certainty: o.certainty, Distance: o.distance}
		for _, name := range o.targets.Vectors {
			if vec, ok := vectors[name]; ok {
				nv.VectorPerTarget = append(nv.VectorPerTarget, &proto.NamedVector{Name: name, Vector: vec})
			}
		}
		p.nearVector = nv
	})
}

// NearObject probes by similarity to an existing object.
func (b *Builder) NearObject(id uuid.UUID, opts ...NearOption) *Builder {
	o := b.applyNearOpts("near_object", opts)
	return b.setProbe("near_object", func(p *probe) {
		p.targets = o.targets
		p.nearObject = &proto.NearObject{
			Id:        id.String(),
			Certainty: o.certainty,
			Distance:  o.distance,
		}
	})
}

// NearMedia probes by a base64-encoded media blob.
func (b *Builder) NearMedia(media string, mediaType MediaType, opts ...NearOption) *Builder {
	if media == "" {
		return b.fail("near_media needs a media operand")
	}
	o := b.applyNearOpts("near_media", opts)
	return b.setProbe("near_media", func(p *probe) {
		p.targets = o.targets
		p.nearMedia = &proto.NearMediaSearch{
			Media:     media,
			MediaType: proto.NearMediaType(mediaType),
			Certainty: o.certainty,
			Distance:  o.distance,
		}
	})
}

// BM25 probes by keyword search.
func (b *Builder) BM25(q string, properties ...string) *Builder {
	if q == "" {
		return b.fail("bm25 needs a query")
	}
	return b.setProbe("bm25", func(p *probe) {
		p.bm25 = &proto.BM25{Query: q, Properties: properties}
	})
}

// Hybrid probes with blended keyword and vector retrieval.
func (b *Builder) Hybrid(q string, opts HybridOptions) *Builder {
	fusion := proto.Hybrid_FUSION_TYPE_RANKED
	if opts.FusionType == FusionRelativeScore {
		fusion = proto.Hybrid_FUSION_TYPE_RELATIVE_SCORE
	}
	return b.setProbe("hybrid", func(p *probe) {
		p.targets = opts.Targets
		p.hybrid = &proto.Hybrid{
			Query:      q,
			Alpha:      opts.Alpha,
			Vector:     opts.Vector,
			Properties: opts.Properties,
			FusionType: fusion,
		}
	})
}

// Build validates the accumulated request against the connected server's
// capabilities and encodes it.
func (b *Builder) Build(v version.ServerVersion) (*proto.SearchRequest, error) {
	if b.collection == "" {
		b.fail("collection name is required")
	}
	if b.after != "" {
		if b.probe.kind != "" {
			b.fail("the after cursor is only valid for plain fetches, not %s", b.probe.kind)
		}
		if len(b.sorts) > 0 {
			b.fail("the after cursor cannot be combined with sorting")
		}
	}
	if len(b.sorts) > 0 && b.probe.kind != "" {
		b.fail("sorting is only valid for plain fetches, not %s", b.probe.kind)
	}

	if len(b.namedVectors) > 0 {
		if err := v.SupportsNamedVectors(); err != nil {
			b.errs = append(b.errs, err)
		}
	}
	if t := b.probe.targets; t != nil {
		if len(t.Vectors) > 1 {
			if err := v.SupportsMultiTargetVectors(); err != nil {
				b.errs = append(b.errs, err)
			}
		} else if err := v.SupportsNamedVectors(); err != nil {
			b.errs = append(b.errs, err)
		}
	}

	if len(b.errs) > 0 {
		return nil, b.errs[0]
	}

	req := &proto.SearchRequest{
		Collection: b.collection,
		Tenant:     b.tenant,
		Limit:      b.limit,
		Offset:     b.offset,
		Autocut:    b.autocut,
		After:      b.after,
		Properties: b.propertiesRequest(),
		Metadata:   b.metadataRequest(),
	}

	switch b.consistency {
	case types.ConsistencyLevelOne:
		req.ConsistencyLevel = proto.ConsistencyLevel_ONE
	case types.ConsistencyLevelQuorum:
		req.ConsistencyLevel = proto.ConsistencyLevel_QUORUM
	case types.ConsistencyLevelAll:
		req.ConsistencyLevel = proto.ConsistencyLevel_ALL
	}

	if b.filter != nil {
		enc, err := filters.ToGRPC(b.filter)
		if err != nil {
			return nil, err
		}
		req.Filters = enc
	}
	for _, s := range b.sorts {
		req.SortBy = append(req.SortBy, &proto.SortBy{Path: []string{s.Property}, Ascending: s.Ascending})
	}
	if b.groupBy != nil {
		req.GroupBy = &proto.GroupBy{
			Path:            []string{b.groupBy.Property},
			NumberOfGroups:  int32(b.groupBy.NumberOfGroups),
			ObjectsPerGroup: int32(b.groupBy.ObjectsPerGroup),
		}
	}
	if b.gen != nil {
		req.Generative = &proto.GenerativeSearch{
			SinglePrompt:      b.gen.SinglePrompt,
			GroupedTask:       b.gen.GroupedTask,
			GroupedProperties: b.gen.GroupedProperties,
		}
	}

	targets := encodeTargets(b.probe.targets)
	switch {
	case b.probe.nearText != nil:
		b.probe.nearText.Targets = targets
		req.NearText = b.probe.nearText
	case b.probe.nearVector != nil:
		b.probe.nearVector.Targets = targets
		req.NearVector = b.probe.nearVector
	case b.probe.nearObject != nil:
		b.probe.nearObject.Targets = targets
		req.NearObject = b.probe.nearObject
	case b.probe.nearMedia != nil:
		b.probe.nearMedia.Targets = targets
		req.NearMedia = b.probe.nearMedia
	case b.probe.bm25 != nil:
		req.Bm25Search = b.probe.bm25
	case b.probe.hybrid != nil:
		b.probe.hybrid.Targets = targets
		req.HybridSearch = b.probe.hybrid
	}

	return req, nil
}

func encodeTargets(t *Targets) *proto.Targets {
	if t == nil {
		return nil
	}
	return &proto.Targets{
		TargetVectors: t.Vectors,
		Combination:   proto.CombinationMethod(t.Combination),
		Weights:       t.Weights,
	}
}

func (b *Builder) propertiesRequest() *proto.PropertiesRequest {
	req := &proto.PropertiesRequest{}
	if len(b.props) == 0 {
		req.ReturnAllNonrefProperties = true
	} else {
		req.NonRefProperties = b.props
	}
	for _, ref := range b.refs {
		nested := &proto.PropertiesRequest{}
		if len(ref.Properties) == 0 {
			nested.ReturnAllNonrefProperties = true
		} else {
			nested.NonRefProperties = ref.Properties
		}
		req.RefProperties = append(req.RefProperties, &proto.RefPropertiesRequest{
			ReferenceProperty: ref.LinkOn,
			TargetCollection:  types.CollectionName(ref.TargetCollection),
			Properties:        nested,
			Metadata:          metadataRequestFor(ref.Metadata, ref.IncludeUUID, false, nil),
		})
	}
	return req
}

func (b *Builder) metadataRequest() *proto.MetadataRequest {
	if b.metadata == nil {
		// Default: everything except vectors.
		return &proto.MetadataRequest{
			Uuid:               true,
			CreationTimeUnix:   true,
			LastUpdateTimeUnix: true,
			Distance:           true,
			Certainty:          true,
			Score:              true,
			ExplainScore:       true,
			IsConsistent:       true,
			Vector:             b.includeVec,
			Vectors:            b.namedVectors,
		}
	}
	return metadataRequestFor(*b.metadata, true, b.includeVec, b.namedVectors)
}

func metadataRequestFor(m types.MetadataQuery, includeUUID, includeVec bool, named []string) *proto.MetadataRequest {
	return &proto.MetadataRequest{
		Uuid:               includeUUID,
		Vector:             includeVec || m.Vector,
		Vectors:            named,
		CreationTimeUnix:   m.CreationTimeUnix,
		LastUpdateTimeUnix: m.LastUpdateTimeUnix,
		Distance:           m.Distance,
		Certainty:          m.Certainty,
		Score:              m.Score,
		ExplainScore:       m.ExplainScore,
		IsConsistent:       m.IsConsistent,
	}
}
