package user

import (
	"context"
	"net/http"

	"github.com/MikeMC777/motoshop/internal/api"
)

// Client wraps the /users/me endpoints.
type Client struct {
	API *api.Client
}

func NewClient(c *api.Client) *Client { return &Client{API: c} }

func (c *Client) GetMe(ctx context.Context) (*User, error) {
	var u User
	if err := c.API.Do(ctx, http.MethodGet, "/users/me", nil, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) CreateMe(ctx context.Context, in CreateUser) (*User, error) {
	var u User
	if err := c.API.Do(ctx, http.MethodPost, "/users/me", nil, in, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
