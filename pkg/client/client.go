package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"sync/atomic"

	"github.com/cuemby/weaviate-client-go/api/proto"
	"github.com/cuemby/weaviate-client-go/pkg/auth"
	"github.com/cuemby/weaviate-client-go/pkg/backup"
	"github.com/cuemby/weaviate-client-go/pkg/batch"
	"github.com/cuemby/weaviate-client-go/pkg/collections"
	"github.com/cuemby/weaviate-client-go/pkg/embedded"
	"github.com/cuemby/weaviate-client-go/pkg/errors"
	"github.com/cuemby/weaviate-client-go/pkg/log"
	"github.com/cuemby/weaviate-client-go/pkg/transport"
	"github.com/cuemby/weaviate-client-go/pkg/types"
	"github.com/cuemby/weaviate-client-go/pkg/version"
)

// Client is the root handle on a Weaviate deployment. New builds an inert
// client; Connect brings up both transports. All methods are safe for
// concurrent use once Connect has returned.
type Client struct {
	cfg Config

	mu        sync.Mutex
	connected bool
	closed    atomic.Bool

	rest     *transport.HTTP
	channel  *transport.Channel
	provider auth.Provider
	ver      version.ServerVersion
	engine   *batch.Engine
	backups  *backup.Manager
	embed    *embedded.Server
}

// Meta is the server identity from /v1/meta.
type Meta struct {
	Hostname string         `json:"hostname"`
	Version  string         `json:"version"`
	Modules  map[string]any `json:"modules"`
}

// New builds an inert client. No I/O happens until Connect.
func New(cfg Config) *Client {
	cfg.withDefaults()
	return &Client{cfg: cfg}
}

// Connect establishes both transports: optional embedded start, credential
// exchange, version fetch, then the gRPC dial with its health probe.
// Calling Connect on a connected client is a no-op.
func (c *Client) Connect(ctx context.Context) error {
	if c.closed.Load() {
		return &errors.ClosedClientError{}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.connected {
		return nil
	}

	if c.cfg.Embedded != nil {
		srv, err := embedded.New(*c.cfg.Embedded)
		if err != nil {
			return err
		}
		if err := srv.Start(ctx); err != nil {
			return err
		}
		c.embed = srv
		c.cfg.Host = srv.Host()
		c.cfg.GRPCHost = srv.GRPCHost()
		c.cfg.Scheme = "http"
	}

	cleanup := func() {
		if c.provider != nil {
			c.provider.Close()
			c.provider = nil
		}
		if c.rest != nil {
			c.rest.Close()
			c.rest = nil
		}
		if c.embed != nil {
			_ = c.embed.Stop()
			c.embed = nil
		}
	}

	provider, err := auth.New(ctx, auth.Config{
		WellKnownURL: c.cfg.baseURL() + "/.well-known/openid-configuration",
		Credentials:  c.cfg.Auth,
	})
	if err != nil {
		cleanup()
		return err
	}
	c.provider = provider

	httpCfg := transport.HTTPConfig{
		BaseURL:        c.cfg.baseURL(),
		Headers:        c.cfg.Headers,
		ConnectTimeout: c.cfg.ConnectTimeout,
		ReadTimeout:    c.cfg.ReadTimeout,
		ProxyURL:       c.cfg.Proxy,
	}
	if provider != nil {
		httpCfg.Auth = provider
	}
	rest, err := transport.NewHTTP(httpCfg)
	if err != nil {
		cleanup()
		return err
	}
	c.rest = rest

	meta, err := c.fetchMeta(ctx)
	if err != nil {
		cleanup()
		return err
	}
	c.ver = version.Parse(meta.Version)

	chanCfg := transport.ChannelConfig{
		Address:         c.cfg.GRPCHost,
		Secure:          c.cfg.GRPCSecure,
		Headers:         c.cfg.Headers,
		StartupTimeout:  c.cfg.StartupTimeout,
		SkipHealthCheck: c.cfg.SkipInitChecks,
	}
	if provider != nil {
		chanCfg.Auth = provider
	}
	channel, err := transport.NewChannel(ctx, chanCfg)
	if err != nil {
		cleanup()
		return err
	}
	c.channel = channel

	c.backups = backup.NewManager(rest)
	c.engine = batch.NewEngine(c.submitBatchObjects, c.submitBatchReferences, batch.Config{
		Workers:          c.cfg.Batch.Workers,
		ReadTimeout:      rest.ReadTimeout(),
		ConsistencyLevel: c.cfg.Batch.ConsistencyLevel,
		Retry:            c.cfg.Batch.Retry,
		MaxRetries:       c.cfg.Batch.MaxRetries,
		Stats:            c.batchStats,
	})

	c.connected = true
	logger := log.WithComponent("client")
	logger.Info().
		Str("host", c.cfg.Host).
		Str("grpc_host", c.cfg.GRPCHost).
		Str("server_version", c.ver.String()).
		Msg("connected")
	return nil
}

// Close flushes pending batch writes, stops the token refresher, and tears
// down both transports and the embedded server. Idempotent; the client
// cannot be reconnected afterwards.
func (c *Client) Close(ctx context.Context) error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	var firstErr error
	keep := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if c.engine != nil {
		keep(c.engine.Close(ctx))
	}
	if c.provider != nil {
		c.provider.Close()
	}
	if c.channel != nil {
		keep(c.channel.Close())
	}
	if c.rest != nil {
		c.rest.Close()
	}
	if c.embed != nil {
		keep(c.embed.Stop())
	}
	c.connected = false
	return firstErr
}

func (c *Client) fetchMeta(ctx context.Context) (*Meta, error) {
	resp, err := c.rest.Send(ctx, http.MethodGet, "/meta", nil, nil,
		[]int{http.StatusOK}, "get server meta")
	if err != nil {
		return nil, err
	}
	var meta Meta
	if err := resp.Into(&meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// Meta fetches the server identity.
func (c *Client) Meta(ctx context.Context) (*Meta, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	return c.fetchMeta(ctx)
}

// ServerVersion reports the version parsed at connect time.
func (c *Client) ServerVersion() version.ServerVersion {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ver
}

// IsReady probes whether the server accepts traffic.
func (c *Client) IsReady(ctx context.Context) (bool, error) {
	return c.probe(ctx, "/.well-known/ready", "readiness probe")
}

// IsLive probes whether the server process is up.
func (c *Client) IsLive(ctx context.Context) (bool, error) {
	return c.probe(ctx, "/.well-known/live", "liveness probe")
}

func (c *Client) probe(ctx context.Context, path, label string) (bool, error) {
	if err := c.ready(); err != nil {
		return false, err
	}
	resp, err := c.rest.Send(ctx, http.MethodGet, path, nil, nil,
		[]int{http.StatusOK, http.StatusServiceUnavailable}, label)
	if err != nil {
		return false, err
	}
	return resp.StatusCode == http.StatusOK, nil
}

// ready guards I/O surfaces against use before Connect or after Close.
func (c *Client) ready() error {
	if c.closed.Load() {
		return &errors.ClosedClientError{}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.connected {
		return errors.NewInvalidInput("client is not connected, call Connect first")
	}
	return nil
}

func (c *Client) deps() collections.Deps {
	c.mu.Lock()
	defer c.mu.Unlock()
	deps := collections.Deps{
		REST:    c.rest,
		Version: c.ver,
		Batch:   c.engine,
		Backups: c.backups,
	}
	if c.channel != nil {
		deps.GRPC = c.channel.Weaviate()
		deps.WithMetadata = c.channel.WithMetadata
	}
	return deps
}

// Collection returns a handle on the named collection. The handle is valid
// only while the client stays connected.
func (c *Client) Collection(name string) *collections.Collection {
	return collections.New(name, c.deps())
}

// Batch exposes the shared ingestion engine.
func (c *Client) Batch() *batch.Engine {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine
}

// Backup exposes cluster-wide backup operations.
func (c *Client) Backup() *backup.Manager {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.backups
}

// submitBatchObjects is the engine's object sink: one BatchObjects RPC.
func (c *Client) submitBatchObjects(ctx context.Context, req *proto.BatchObjectsRequest) (*proto.BatchObjectsReply, error) {
	c.mu.Lock()
	channel := c.channel
	c.mu.Unlock()
	if channel == nil {
		return nil, errors.NewInvalidInput("client is not connected")
	}
	reply, err := channel.Weaviate().BatchObjects(channel.WithMetadata(ctx), req)
	if err != nil {
		return nil, &errors.RPCError{Label: "batch objects", Err: err}
	}
	return reply, nil
}

type batchRefEntry struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Tenant string `json:"tenant,omitempty"`
}

type batchRefResult struct {
	Result struct {
		Errors *struct {
			Error []struct {
				Message string `json:"message"`
			} `json:"error"`
		} `json:"errors"`
	} `json:"result"`
}

// submitBatchReferences is the engine's reference sink: the REST batch
// endpoint, which is the only transport for reference batches.
func (c *Client) submitBatchReferences(ctx context.Context, refs []types.BatchReference, cl types.ConsistencyLevel) (map[int]string, error) {
	// A reference with several targets expands into one entry per target;
	// refIdx maps entries back onto their input reference.
	var body []batchRefEntry
	var refIdx []int
	for i, r := range refs {
		from := fmt.Sprintf("weaviate://localhost/%s/%s/%s",
			types.CollectionName(r.FromCollection), r.FromUUID, r.FromProperty)
		for _, id := range r.To.UUIDs {
			body = append(body, batchRefEntry{
				From:   from,
				To:     types.Beacon(r.To.TargetCollection, id),
				Tenant: r.Tenant,
			})
			refIdx = append(refIdx, i)
		}
	}
	if len(body) == 0 {
		return nil, nil
	}
	params := url.Values{}
	if cl != "" {
		params.Set("consistency_level", string(cl))
	}
	resp, err := c.rest.Send(ctx, http.MethodPost, "/batch/references", body, params,
		[]int{http.StatusOK}, "batch references")
	if err != nil {
		return nil, err
	}
	var results []batchRefResult
	if err := resp.Into(&results); err != nil {
		return nil, err
	}
	failed := map[int]string{}
	for i, r := range results {
		if i >= len(refIdx) {
			break
		}
		if r.Result.Errors != nil && len(r.Result.Errors.Error) > 0 {
			failed[refIdx[i]] = r.Result.Errors.Error[0].Message
		}
	}
	return failed, nil
}
