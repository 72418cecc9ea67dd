// Package embedded launches a local Weaviate process for clients that want
// a server without operating one: started before the first connection,
// stopped when the client closes.
package embedded

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/cuemby/weaviate-client-go/pkg/errors"
	"github.com/cuemby/weaviate-client-go/pkg/log"
)

const (
	// DefaultPort and DefaultGRPCPort are where the embedded server listens.
	DefaultPort     = 8079
	DefaultGRPCPort = 50060

	// startupTimeout bounds the ready poll after spawning the process.
	startupTimeout = 30 * time.Second
	// stopTimeout bounds the graceful SIGTERM window before SIGKILL.
	stopTimeout = 10 * time.Second

	readyPollInterval = 100 * time.Millisecond
)

// Options configures the embedded server process.
type Options struct {
	// BinaryPath points at a weaviate binary on disk. Required; this
	// package never downloads anything.
	BinaryPath string
	// DataPath is the persistence directory. Empty selects a directory
	// under the user cache dir.
	DataPath string
	Port     int
	GRPCPort int
	// ExtraEnv entries ("KEY=value") are appended after the defaults and
	// win on conflict.
	ExtraEnv []string
}

// Server is a running embedded process.
type Server struct {
	opts   Options
	cmd    *exec.Cmd
	logger zerolog.Logger
}

// New validates the options and fills defaults. The process is not started.
func New(opts Options) (*Server, error) {
	if opts.BinaryPath == "" {
		return nil, errors.NewInvalidInput("embedded server requires a binary path")
	}
	if _, err := os.Stat(opts.BinaryPath); err != nil {
		return nil, errors.NewInvalidInput("embedded server binary %q: %v", opts.BinaryPath, err)
	}
	if opts.Port <= 0 {
		opts.Port = DefaultPort
	}
	if opts.GRPCPort <= 0 {
		opts.GRPCPort = DefaultGRPCPort
	}
	if opts.DataPath == "" {
		cache, err := os.UserCacheDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve data path: %w", err)
		}
		opts.DataPath = filepath.Join(cache, "weaviate-embedded")
	}
	return &Server{opts: opts, logger: log.WithComponent("embedded")}, nil
}

// Host returns the HTTP host:port of the server.
func (s *Server) Host() string { return "127.0.0.1:" + strconv.Itoa(s.opts.Port) }

// GRPCHost returns the gRPC host:port of the server.
func (s *Server) GRPCHost() string { return "127.0.0.1:" + strconv.Itoa(s.opts.GRPCPort) }

// Start spawns the process and waits until the ready endpoint answers. If a
// server already answers on the port, the running one is reused and no
// process is spawned.
func (s *Server) Start(ctx context.Context) error {
	if s.cmd != nil {
		return nil
	}
	if s.isReady(ctx) {
		s.logger.Info().Str("host", s.Host()).Msg("reusing already-running server")
		return nil
	}
	if err := os.MkdirAll(s.opts.DataPath, 0o755); err != nil {
		return fmt.Errorf("failed to create data path: %w", err)
	}

	cmd := exec.Command(s.opts.BinaryPath,
		"--host", "127.0.0.1",
		"--port", strconv.Itoa(s.opts.Port),
		"--scheme", "http",
	)
	cmd.Env = append(os.Environ(),
		"AUTHENTICATION_ANONYMOUS_ACCESS_ENABLED=true",
		"QUERY_DEFAULTS_LIMIT=20",
		"PERSISTENCE_DATA_PATH="+s.opts.DataPath,
		"GRPC_PORT="+strconv.Itoa(s.opts.GRPCPort),
		"CLUSTER_HOSTNAME=embedded",
	)
	cmd.Env = append(cmd.Env, s.opts.ExtraEnv...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	s.logger.Info().
		Str("binary", s.opts.BinaryPath).
		Int("port", s.opts.Port).
		Int("grpc_port", s.opts.GRPCPort).
		Msg("starting embedded server")
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start embedded server: %w", err)
	}
	s.cmd = cmd

	if err := s.waitReady(ctx); err != nil {
		_ = s.Stop()
		return err
	}
	s.logger.Info().Msg("embedded server is ready")
	return nil
}

func (s *Server) isReady(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		"http://"+s.Host()+"/v1/.well-known/ready", nil)
	if err != nil {
		return false
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

func (s *Server) waitReady(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, startupTimeout)
	defer cancel()

	ticker := time.NewTicker(readyPollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return &errors.ConnectionError{
				Label: "embedded server startup",
				Err:   fmt.Errorf("not ready within %s", startupTimeout),
			}
		case <-ticker.C:
			if s.isReady(ctx) {
				return nil
			}
		}
	}
}

// Stop terminates the process: SIGTERM first, SIGKILL when the grace window
// runs out. Stopping a never-started or reused server is a no-op.
func (s *Server) Stop() error {
	if s.cmd == nil || s.cmd.Process == nil {
		return nil
	}
	defer func() { s.cmd = nil }()

	if err := s.cmd.Process.Signal(syscall.SIGTERM); err != nil {
		return fmt.Errorf("failed to signal embedded server: %w", err)
	}

	done := make(chan error, 1)
	go func() { done <- s.cmd.Wait() }()
	select {
	case <-done:
		s.logger.Info().Msg("embedded server stopped")
		return nil
	case <-time.After(stopTimeout):
		s.logger.Warn().Msg("embedded server did not stop in time, killing it")
		if err := s.cmd.Process.Kill(); err != nil {
			return fmt.Errorf("failed to kill embedded server: %w", err)
		}
		<-done
		return nil
	}
}
