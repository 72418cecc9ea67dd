package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/cuemby/weaviate-client-go/pkg/types"
)

// Alias maps an alternate name onto a collection, so callers can be
// repointed without schema changes.
type Alias struct {
	Alias      string `json:"alias"`
	Collection string `json:"class"`
}

// Aliases manages collection aliases.
type Aliases struct {
	c *Client
}

// Aliases returns the alias surface.
func (c *Client) Aliases() *Aliases { return &Aliases{c: c} }

// Create points a new alias at a collection.
func (a *Aliases) Create(ctx context.Context, alias, collection string) error {
	if err := a.c.ready(); err != nil {
		return err
	}
	body := Alias{Alias: alias, Collection: types.CollectionName(collection)}
	_, err := a.c.rest.Send(ctx, http.MethodPost, "/aliases", body, nil,
		[]int{http.StatusOK}, "create alias")
	return err
}

type aliasesReply struct {
	Aliases []Alias `json:"aliases"`
}

// List fetches aliases, optionally restricted to one collection.
func (a *Aliases) List(ctx context.Context, collection string) ([]Alias, error) {
	if err := a.c.ready(); err != nil {
		return nil, err
	}
	params := url.Values{}
	if collection != "" {
		params.Set("class", types.CollectionName(collection))
	}
	resp, err := a.c.rest.Send(ctx, http.MethodGet, "/aliases", nil, params,
		[]int{http.StatusOK}, "list aliases")
	if err != nil {
		return nil, err
	}
	var reply aliasesReply
	if err := resp.Into(&reply); err != nil {
		return nil, err
	}
	return reply.Aliases, nil
}

// Get resolves one alias. A missing alias is reported through the second
// return value, not as an error.
func (a *Aliases) Get(ctx context.Context, alias string) (*Alias, bool, error) {
	if err := a.c.ready(); err != nil {
		return nil, false, err
	}
	resp, err := a.c.rest.Send(ctx, http.MethodGet, "/aliases/"+alias, nil, nil,
		[]int{http.StatusOK, http.StatusNotFound}, "get alias")
	if err != nil {
		return nil, false, err
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, false, nil
	}
	var out Alias
	if err := resp.Into(&out); err != nil {
		return nil, false, err
	}
	return &out, true, nil
}

// Update repoints an existing alias at another collection.
func (a *Aliases) Update(ctx context.Context, alias, collection string) error {
	if err := a.c.ready(); err != nil {
		return err
	}
	body := map[string]string{"class": types.CollectionName(collection)}
	_, err := a.c.rest.Send(ctx, http.MethodPut, "/aliases/"+alias, body, nil,
		[]int{http.StatusOK}, "update alias")
	return err
}

// Delete removes an alias; the underlying collection is untouched.
func (a *Aliases) Delete(ctx context.Context, alias string) error {
	if err := a.c.ready(); err != nil {
		return err
	}
	_, err := a.c.rest.Send(ctx, http.MethodDelete, "/aliases/"+alias, nil, nil,
		[]int{http.StatusNoContent}, "delete alias")
	return err
}
