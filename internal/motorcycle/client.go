package motorcycle

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/MikeMC777/motoshop/internal/api"
)

// Client wraps the listing endpoints of the API.
type Client struct {
	API *api.Client
}

func NewClient(c *api.Client) *Client { return &Client{API: c} }

func (c *Client) List(ctx context.Context, f Filter) ([]Motorcycle, error) {
	return api.List[Motorcycle](ctx, c.API, "/motorcycles", f.Query())
}

func (c *Client) Get(ctx context.Context, id string) (*Motorcycle, error) {
	var m Motorcycle
	if err := c.API.Do(ctx, http.MethodGet, "/motorcycles/"+url.PathEscape(id), nil, nil, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Patch applies a partial update (admin only) and returns the server copy.
func (c *Client) Patch(ctx context.Context, id string, p Patch) (*Motorcycle, error) {
	if p.Empty() {
		return nil, fmt.Errorf("empty patch for %s", id)
	}
	var m Motorcycle
	if err := c.API.Do(ctx, http.MethodPatch, "/admin/motorcycle/"+url.PathEscape(id), nil, p, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (c *Client) UpdateStatus(ctx context.Context, id string, s Status) (*Motorcycle, error) {
	var m Motorcycle
	path := "/admin/motorcycle/" + url.PathEscape(id) + "/status"
	if err := c.API.Do(ctx, http.MethodPatch, path, nil, StatusUpdate{Status: s}, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
