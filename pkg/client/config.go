package client

import (
	"strings"
	"time"

	"github.com/cuemby/weaviate-client-go/pkg/auth"
	"github.com/cuemby/weaviate-client-go/pkg/batch"
	"github.com/cuemby/weaviate-client-go/pkg/embedded"
	"github.com/cuemby/weaviate-client-go/pkg/types"
)

// BatchOptions tunes the shared ingestion engine.
type BatchOptions struct {
	// Workers bounds concurrent flushes. Zero means one.
	Workers int
	// MaxRetries caps resubmissions of retriable items. Zero means three.
	MaxRetries int
	// Retry classifies which server error messages are worth retrying.
	Retry            batch.Filter
	ConsistencyLevel types.ConsistencyLevel
}

// Config describes how to reach a Weaviate deployment.
type Config struct {
	// Host is the control-plane host:port, without scheme.
	Host string
	// Scheme is http or https. Empty means http.
	Scheme string
	// GRPCHost is the data-plane host:port. Empty derives the host from
	// Host with the conventional 50051 port.
	GRPCHost   string
	GRPCSecure bool

	// Auth holds the credentials; nil connects anonymously.
	Auth auth.Credentials
	// Headers are attached to every request on both transports.
	Headers map[string]string

	ConnectTimeout time.Duration
	ReadTimeout    time.Duration
	// StartupTimeout bounds the connect-time gRPC health probe.
	StartupTimeout time.Duration
	// Proxy routes control-plane requests through an HTTP proxy.
	Proxy string
	// SkipInitChecks disables the gRPC health probe at connect time.
	SkipInitChecks bool

	// Embedded, when set, launches a local server before connecting and
	// overrides Host and GRPCHost with its addresses.
	Embedded *embedded.Options

	Batch BatchOptions
}

// Local targets a default local deployment.
func Local() Config {
	return Config{
		Host:     "localhost:8080",
		Scheme:   "http",
		GRPCHost: "localhost:50051",
	}
}

// Cloud targets a Weaviate Cloud cluster by its REST URL, using the
// conventional grpc- subdomain on port 443.
func Cloud(clusterURL string, apiKey string) Config {
	host := strings.TrimSuffix(clusterURL, "/")
	host = strings.TrimPrefix(host, "https://")
	host = strings.TrimPrefix(host, "http://")
	return Config{
		Host:       host,
		Scheme:     "https",
		GRPCHost:   "grpc-" + host + ":443",
		GRPCSecure: true,
		Auth:       auth.ApiKey{Key: apiKey},
	}
}

func (cfg *Config) withDefaults() {
	if cfg.Scheme == "" {
		cfg.Scheme = "http"
	}
	if cfg.GRPCHost == "" {
		host := cfg.Host
		if i := strings.LastIndex(host, ":"); i >= 0 {
			host = host[:i]
		}
		cfg.GRPCHost = host + ":50051"
	}
}

func (cfg *Config) baseURL() string {
	return cfg.Scheme + "://" + cfg.Host + "/v1"
}
