package transport

import (
	"context"
	"crypto/tls"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"

	"github.com/cuemby/weaviate-client-go/api/proto"
	"github.com/cuemby/weaviate-client-go/pkg/errors"
	"github.com/cuemby/weaviate-client-go/pkg/log"
)

const (
	// DefaultStartupTimeout bounds the dial-time health probe.
	DefaultStartupTimeout = 30 * time.Second

	// maxRecvMsgSize allows large search replies with vectors included.
	maxRecvMsgSize = 100 * 1024 * 1024
)

// ChannelConfig configures the data-plane transport.
type ChannelConfig struct {
	// Address is the gRPC host:port.
	Address string
	// Secure enables TLS.
	Secure bool
	// Headers are static metadata entries attached to every call.
	Headers map[string]string
	// Auth, when set, supplies the authorization metadata entry per call.
	Auth TokenProvider
	// StartupTimeout bounds the dial-time health probe. Zero selects the
	// default.
	StartupTimeout time.Duration
	// SkipHealthCheck skips the dial-time probe, for servers that do not
	// expose grpc.health.v1.
	SkipHealthCheck bool
}

// Channel is the gRPC data-plane transport.
type Channel struct {
	conn    *grpc.ClientConn
	stub    proto.WeaviateClient
	headers map[string]string
	auth    TokenProvider
	closed  atomic.Bool
}

// NewChannel dials the data plane and, unless disabled, waits until the
// server reports SERVING, retrying once per second within StartupTimeout.
func NewChannel(ctx context.Context, cfg ChannelConfig) (*Channel, error) {
	if cfg.Address == "" {
		return nil, errors.NewInvalidInput("gRPC address is required")
	}
	if cfg.StartupTimeout <= 0 {
		cfg.StartupTimeout = DefaultStartupTimeout
	}

	creds := insecure.NewCredentials()
	if cfg.Secure {
		creds = credentials.NewTLS(&tls.Config{MinVersion: tls.VersionTLS12})
	}
	conn, err := grpc.NewClient(cfg.Address,
		grpc.WithTransportCredentials(creds),
		grpc.WithDefaultCallOptions(grpc.MaxCallRecvMsgSize(maxRecvMsgSize)),
	)
	if err != nil {
		return nil, &errors.ConnectionError{Label: "dial gRPC", Err: err}
	}

	headers := make(map[string]string, len(cfg.Headers))
	for k, v := range cfg.Headers {
		headers[k] = v
	}
	ch := &Channel{
		conn:    conn,
		stub:    proto.NewWeaviateClient(conn),
		headers: headers,
		auth:    cfg.Auth,
	}

	if !cfg.SkipHealthCheck {
		if err := ch.waitReady(ctx, cfg.StartupTimeout); err != nil {
			conn.Close()
			return nil, err
		}
	}
	logger := log.WithComponent("transport.grpc")
	logger.Debug().
		Str("address", cfg.Address).
		Bool("secure", cfg.Secure).
		Msg("gRPC channel established")
	return ch, nil
}

func (c *Channel) waitReady(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	probe := func() error {
		resp, err := healthpb.NewHealthClient(c.conn).Check(ctx, &healthpb.HealthCheckRequest{})
		if err != nil {
			return err
		}
		if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
			return fmt.Errorf("server health is %s", resp.GetStatus())
		}
		return nil
	}
	bo := backoff.WithContext(backoff.NewConstantBackOff(time.Second), ctx)
	if err := backoff.Retry(probe, bo); err != nil {
		return &errors.ConnectionError{Label: "gRPC health check", Err: err}
	}
	return nil
}

// Weaviate returns the service stub. Pass contexts through WithMetadata so
// auth and static headers are attached.
func (c *Channel) Weaviate() proto.WeaviateClient { return c.stub }

// WithMetadata stamps outgoing metadata on ctx: the static headers plus a
// freshly resolved authorization token, so rotation between calls is
// honored.
func (c *Channel) WithMetadata(ctx context.Context) context.Context {
	pairs := make([]string, 0, 2*(len(c.headers)+1))
	for k, v := range c.headers {
		pairs = append(pairs, k, v)
	}
	if c.auth != nil {
		if val, ok := c.auth.AuthHeader(); ok {
			pairs = append(pairs, "authorization", val)
		}
	}
	if len(pairs) == 0 {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, pairs...)
}

// Closed reports whether Close has been called.
func (c *Channel) Closed() bool { return c.closed.Load() }

// Close tears down the connection. Idempotent.
func (c *Channel) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	if err := c.conn.Close(); err != nil {
		return fmt.Errorf("failed to close gRPC connection: %w", err)
	}
	return nil
}
