package collections

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/cuemby/weaviate-client-go/pkg/errors"
	"github.com/cuemby/weaviate-client-go/pkg/filters"
	"github.com/cuemby/weaviate-client-go/pkg/log"
	"github.com/cuemby/weaviate-client-go/pkg/types"
)

// Data is the single-object CRUD surface of a collection. All operations run
// over the control plane.
type Data struct {
	c *Collection
}

// Data returns the CRUD surface of the handle.
func (c *Collection) Data() *Data { return &Data{c: c} }

// restObject is the /v1/objects wire shape.
type restObject struct {
	Class              string               `json:"class"`
	ID                 string               `json:"id,omitempty"`
	Properties         map[string]any       `json:"properties,omitempty"`
	Vector             []float32            `json:"vector,omitempty"`
	Vectors            map[string][]float32 `json:"vectors,omitempty"`
	Tenant             string               `json:"tenant,omitempty"`
	CreationTimeUnix   int64                `json:"creationTimeUnix,omitempty"`
	LastUpdateTimeUnix int64                `json:"lastUpdateTimeUnix,omitempty"`
}

func (d *Data) params(extra map[string]string) url.Values {
	v := url.Values{}
	if d.c.consistency != "" {
		v.Set("consistency_level", string(d.c.consistency))
	}
	if d.c.tenant != "" {
		v.Set("tenant", d.c.tenant)
	}
	for k, val := range extra {
		v.Set(k, val)
	}
	return v
}

func (d *Data) wireObject(obj *types.Object) (*restObject, error) {
	props, err := encodeRESTProperties(obj.Properties, obj.References)
	if err != nil {
		return nil, err
	}
	w := &restObject{
		Class:      d.c.name,
		Properties: props,
		Vector:     obj.Vector,
		Vectors:    obj.Vectors,
		Tenant:     d.c.tenant,
	}
	if obj.UUID != uuid.Nil {
		w.ID = obj.UUID.String()
	}
	return w, nil
}

// Insert creates the object and returns its UUID. A zero UUID on the input
// is filled with a fresh v4 before the request goes out.
func (d *Data) Insert(ctx context.Context, obj *types.Object) (uuid.UUID, error) {
	w, err := d.wireObject(obj)
	if err != nil {
		return uuid.Nil, err
	}
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	_, err = d.c.deps.REST.Send(ctx, http.MethodPost, "/objects", w, d.params(nil),
		[]int{http.StatusOK}, "insert object")
	if err != nil {
		return uuid.Nil, err
	}
	return uuid.Parse(w.ID)
}

// GetByID fetches one object with its vectors. A missing object is not an
// error: the second return value reports existence.
func (d *Data) GetByID(ctx context.Context, id uuid.UUID) (*types.Object, bool, error) {
	resp, err := d.c.deps.REST.Send(ctx, http.MethodGet,
		fmt.Sprintf("/objects/%s/%s", d.c.name, id),
		nil, d.params(map[string]string{"include": "vector"}),
		[]int{http.StatusOK, http.StatusNotFound}, "get object")
	if err != nil {
		return nil, false, err
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, false, nil
	}
	var w restObject
	if err := resp.Into(&w); err != nil {
		return nil, false, err
	}
	obj, err := decodeRESTObject(&w)
	if err != nil {
		return nil, false, err
	}
	return obj, true, nil
}

// Exists probes for the object without transferring it.
func (d *Data) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	resp, err := d.c.deps.REST.Send(ctx, http.MethodHead,
		fmt.Sprintf("/objects/%s/%s", d.c.name, id), nil, d.params(nil),
		[]int{http.StatusNoContent, http.StatusNotFound}, "check object exists")
	if err != nil {
		return false, err
	}
	return resp.StatusCode == http.StatusNoContent, nil
}

// Replace overwrites the whole object. Properties absent from the input are
// cleared on the server.
func (d *Data) Replace(ctx context.Context, id uuid.UUID, obj *types.Object) error {
	w, err := d.wireObject(obj)
	if err != nil {
		return err
	}
	w.ID = id.String()
	_, err = d.c.deps.REST.Send(ctx, http.MethodPut,
		fmt.Sprintf("/objects/%s/%s", d.c.name, id), w, d.params(nil),
		[]int{http.StatusOK}, "replace object")
	return err
}

// Update merges the given properties into the object, leaving the rest
// untouched.
func (d *Data) Update(ctx context.Context, id uuid.UUID, obj *types.Object) error {
	w, err := d.wireObject(obj)
	if err != nil {
		return err
	}
	w.ID = id.String()
	_, err = d.c.deps.REST.Send(ctx, http.MethodPatch,
		fmt.Sprintf("/objects/%s/%s", d.c.name, id), w, d.params(nil),
		[]int{http.StatusNoContent}, "update object")
	return err
}

// Delete removes the object. It reports whether the object existed; deleting
// a missing object is not an error.
func (d *Data) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	resp, err := d.c.deps.REST.Send(ctx, http.MethodDelete,
		fmt.Sprintf("/objects/%s/%s", d.c.name, id), nil, d.params(nil),
		[]int{http.StatusNoContent, http.StatusNotFound}, "delete object")
	if err != nil {
		return false, err
	}
	return resp.StatusCode == http.StatusNoContent, nil
}

// DeleteManyResult summarizes a filtered bulk delete.
type DeleteManyResult struct {
	Matches    int64 `json:"matches"`
	Successful int64 `json:"successful"`
	Failed     int64 `json:"failed"`
}

type deleteManyReply struct {
	Results DeleteManyResult `json:"results"`
}

// DeleteMany deletes every object matching the filter. With dryRun the
// server only counts matches. The filter is required; an unfiltered bulk
// delete must be spelled out with an explicit match-all filter upstream.
func (d *Data) DeleteMany(ctx context.Context, where *filters.Filter, dryRun bool) (*DeleteManyResult, error) {
	if where == nil {
		return nil, errors.NewInvalidInput("DeleteMany requires a filter")
	}
	encoded, err := filters.ToREST(where, d.c.deps.Version.SupportsRESTReferenceFilters())
	if err != nil {
		return nil, err
	}
	body := map[string]any{
		"match": map[string]any{
			"class": d.c.name,
			"where": encoded,
		},
		"dryRun": dryRun,
		"output": "minimal",
	}
	resp, err := d.c.deps.REST.Send(ctx, http.MethodDelete, "/batch/objects", body, d.params(nil),
		[]int{http.StatusOK}, "delete objects by filter")
	if err != nil {
		return nil, err
	}
	var reply deleteManyReply
	if err := resp.Into(&reply); err != nil {
		return nil, err
	}
	logger := log.WithCollection(d.c.name)
	logger.Debug().
		Int64("matches", reply.Results.Matches).
		Int64("failed", reply.Results.Failed).
		Bool("dry_run", dryRun).
		Msg("batch delete completed")
	return &reply.Results, nil
}

func (d *Data) refPath(from uuid.UUID, property string) string {
	return fmt.Sprintf("/objects/%s/%s/references/%s", d.c.name, from, property)
}

// ReferenceAdd appends the reference targets to the property, one beacon per
// request as the endpoint requires.
func (d *Data) ReferenceAdd(ctx context.Context, from uuid.UUID, property string, ref types.Reference) error {
	for _, beacon := range ref.Beacons() {
		_, err := d.c.deps.REST.Send(ctx, http.MethodPost, d.refPath(from, property),
			map[string]any{"beacon": beacon}, d.params(nil),
			[]int{http.StatusOK}, "add reference")
		if err != nil {
			return err
		}
	}
	return nil
}

// ReferenceReplace replaces the property's targets with exactly the given
// set.
func (d *Data) ReferenceReplace(ctx context.Context, from uuid.UUID, property string, ref types.Reference) error {
	beacons := ref.Beacons()
	body := make([]map[string]any, 0, len(beacons))
	for _, beacon := range beacons {
		body = append(body, map[string]any{"beacon": beacon})
	}
	_, err := d.c.deps.REST.Send(ctx, http.MethodPut, d.refPath(from, property), body, d.params(nil),
		[]int{http.StatusOK}, "replace references")
	return err
}

// ReferenceDelete removes the given targets from the property.
func (d *Data) ReferenceDelete(ctx context.Context, from uuid.UUID, property string, ref types.Reference) error {
	for _, beacon := range ref.Beacons() {
		_, err := d.c.deps.REST.Send(ctx, http.MethodDelete, d.refPath(from, property),
			map[string]any{"beacon": beacon}, d.params(nil),
			[]int{http.StatusNoContent}, "delete reference")
		if err != nil {
			return err
		}
	}
	return nil
}

// encodeRESTProperties renders properties in their JSON wire form: dates as
// RFC 3339 strings, UUIDs as strings, references as beacon lists, nested
// records recursively.
func encodeRESTProperties(props types.Properties, refs map[string]types.Reference) (map[string]any, error) {
	out := make(map[string]any, len(props)+len(refs))
	for name, value := range props {
		encoded, err := encodeRESTValue(value)
		if err != nil {
			return nil, errors.NewInvalidInput("property %q: %v", name, err)
		}
		out[name] = encoded
	}
	for name, ref := range refs {
		beacons := ref.Beacons()
		targets := make([]map[string]any, 0, len(beacons))
		for _, beacon := range beacons {
			targets = append(targets, map[string]any{"beacon": beacon})
		}
		out[name] = targets
	}
	return out, nil
}

func encodeRESTValue(value any) (any, error) {
	switch v := value.(type) {
	case time.Time:
		return v.Format(time.RFC3339Nano), nil
	case []time.Time:
		out := make([]string, len(v))
		for i, t := range v {
			out[i] = t.Format(time.RFC3339Nano)
		}
		return out, nil
	case uuid.UUID:
		return v.String(), nil
	case []uuid.UUID:
		out := make([]string, len(v))
		for i, id := range v {
			out[i] = id.String()
		}
		return out, nil
	case types.Properties:
		return encodeRESTProperties(v, nil)
	case []types.Properties:
		out := make([]map[string]any, len(v))
		for i, nested := range v {
			encoded, err := encodeRESTProperties(nested, nil)
			if err != nil {
				return nil, err
			}
			out[i] = encoded
		}
		return out, nil
	default:
		// Everything else already has a faithful JSON form.
		return value, nil
	}
}

func decodeRESTObject(w *restObject) (*types.Object, error) {
	obj := &types.Object{
		Properties: w.Properties,
		Vector:     w.Vector,
		Vectors:    w.Vectors,
		Collection: w.Class,
		Tenant:     w.Tenant,
	}
	if w.ID != "" {
		id, err := uuid.Parse(w.ID)
		if err != nil {
			return nil, errors.NewInvalidInput("server returned malformed object ID %q: %v", w.ID, err)
		}
		obj.UUID = id
	}
	meta := &types.MetadataReturn{}
	if obj.UUID != uuid.Nil {
		id := obj.UUID
		meta.UUID = &id
	}
	if w.CreationTimeUnix != 0 {
		t := w.CreationTimeUnix
		meta.CreationTimeUnix = &t
	}
	if w.LastUpdateTimeUnix != 0 {
		t := w.LastUpdateTimeUnix
		meta.LastUpdateTimeUnix = &t
	}
	obj.Metadata = meta
	return obj, nil
}
