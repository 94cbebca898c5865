package fypapi

import (
	"context"

	"github.com/sendgrid/rest"

	"github.com/trezcool/fyp/core/profile"
	"github.com/trezcool/fyp/core/user"
)

var _ profile.Repository = (*Client)(nil)

func (c *Client) Profile(ctx context.Context, role user.Role) (profile.Profile, error) {
	var p profile.Profile
	err := c.do(ctx, call{method: rest.Get, path: pathf("/%s/profile", role.String())}, &p)
	return p, err
}

func (c *Client) UpdateProfile(ctx context.Context, role user.Role, up profile.UpdateProfile) (profile.Profile, error) {
	var p profile.Profile
	err := c.do(ctx, call{method: rest.Put, path: pathf("/%s/profile", role.String()), body: up}, &p)
	return p, err
}
