// Package backup drives server-side backups and restores over the
// control plane, with optional polling until a job reaches a terminal
// state.
package backup

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/cuemby/weaviate-client-go/pkg/errors"
	"github.com/cuemby/weaviate-client-go/pkg/transport"
)

// Status is a backup or restore job state.
type Status string

const (
	StatusStarted      Status = "STARTED"
	StatusTransferring Status = "TRANSFERRING"
	StatusSuccess      Status = "SUCCESS"
	StatusFailed       Status = "FAILED"
	StatusCanceled     Status = "CANCELED"
)

// pollInterval paces WaitForCompletion.
const pollInterval = time.Second

// Job is the server's view of one backup or restore.
type Job struct {
	ID          string   `json:"id"`
	Backend     string   `json:"backend"`
	Path        string   `json:"path,omitempty"`
	Status      Status   `json:"status"`
	Error       string   `json:"error,omitempty"`
	Collections []string `json:"classes,omitempty"`
}

// Request describes a backup or restore to run.
type Request struct {
	Backend string
	ID      string
	// Include limits the backup to the named collections; empty means all.
	Include []string
	// Exclude removes collections from an all-collections backup.
	Exclude []string
	// WaitForCompletion polls until the job reaches a terminal state and
	// converts FAILED / CANCELED into typed errors.
	WaitForCompletion bool
}

// Manager runs backup operations.
type Manager struct {
	rest *transport.HTTP
}

// NewManager builds a Manager on the control-plane transport.
func NewManager(rest *transport.HTTP) *Manager {
	return &Manager{rest: rest}
}

func (m *Manager) validate(req Request) error {
	if req.Backend == "" {
		return errors.NewInvalidInput("backup backend is required")
	}
	if req.ID == "" {
		return errors.NewInvalidInput("backup ID is required")
	}
	if len(req.Include) > 0 && len(req.Exclude) > 0 {
		return errors.NewInvalidInput("backup include and exclude lists are mutually exclusive")
	}
	return nil
}

// Create starts a backup.
func (m *Manager) Create(ctx context.Context, req Request) (*Job, error) {
	if err := m.validate(req); err != nil {
		return nil, err
	}
	body := map[string]any{"id": req.ID}
	if len(req.Include) > 0 {
		body["include"] = req.Include
	}
	if len(req.Exclude) > 0 {
		body["exclude"] = req.Exclude
	}
	resp, err := m.rest.Send(ctx, http.MethodPost, "/backups/"+req.Backend, body, nil,
		[]int{http.StatusOK}, "create backup")
	if err != nil {
		return nil, err
	}
	var job Job
	if err := resp.Into(&job); err != nil {
		return nil, err
	}
	if req.WaitForCompletion {
		return m.wait(ctx, req.Backend, req.ID, m.CreateStatus)
	}
	return &job, nil
}

// CreateStatus fetches the state of a running backup.
func (m *Manager) CreateStatus(ctx context.Context, backend, id string) (*Job, error) {
	return m.status(ctx, fmt.Sprintf("/backups/%s/%s", backend, id), "get backup status")
}

// Restore starts a restore of an existing backup.
func (m *Manager) Restore(ctx context.Context, req Request) (*Job, error) {
	if err := m.validate(req); err != nil {
		return nil, err
	}
	body := map[string]any{}
	if len(req.Include) > 0 {
		body["include"] = req.Include
	}
	if len(req.Exclude) > 0 {
		body["exclude"] = req.Exclude
	}
	resp, err := m.rest.Send(ctx, http.MethodPost,
		fmt.Sprintf("/backups/%s/%s/restore", req.Backend, req.ID), body, nil,
		[]int{http.StatusOK}, "restore backup")
	if err != nil {
		return nil, err
	}
	var job Job
	if err := resp.Into(&job); err != nil {
		return nil, err
	}
	if req.WaitForCompletion {
		return m.wait(ctx, req.Backend, req.ID, m.RestoreStatus)
	}
	return &job, nil
}

// RestoreStatus fetches the state of a running restore.
func (m *Manager) RestoreStatus(ctx context.Context, backend, id string) (*Job, error) {
	return m.status(ctx, fmt.Sprintf("/backups/%s/%s/restore", backend, id), "get restore status")
}

// Cancel aborts a running backup.
func (m *Manager) Cancel(ctx context.Context, backend, id string) error {
	_, err := m.rest.Send(ctx, http.MethodDelete, fmt.Sprintf("/backups/%s/%s", backend, id), nil, nil,
		[]int{http.StatusNoContent}, "cancel backup")
	return err
}

func (m *Manager) status(ctx context.Context, path, label string) (*Job, error) {
	resp, err := m.rest.Send(ctx, http.MethodGet, path, nil, nil, []int{http.StatusOK}, label)
	if err != nil {
		return nil, err
	}
	var job Job
	if err := resp.Into(&job); err != nil {
		return nil, err
	}
	return &job, nil
}

type statusFn func(ctx context.Context, backend, id string) (*Job, error)

// wait polls until the job reaches a terminal state.
func (m *Manager) wait(ctx context.Context, backend, id string, fetch statusFn) (*Job, error) {
	for {
		job, err := fetch(ctx, backend, id)
		if err != nil {
			return nil, err
		}
		switch job.Status {
		case StatusSuccess:
			return job, nil
		case StatusFailed:
			return nil, &errors.BackupFailedError{ID: id, Backend: backend, Reason: job.Error}
		case StatusCanceled:
			return nil, &errors.BackupCanceledError{ID: id, Backend: backend}
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(pollInterval):
		}
	}
}
