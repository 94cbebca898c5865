package fypapi

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sendgrid/rest"

	"github.com/trezcool/fyp/core"
	"github.com/trezcool/fyp/core/user"
)

var _ user.Authenticator = (*Client)(nil)

type loginResponse struct {
	Token string           `json:"token"`
	User  user.SessionUser `json:"user"`
}

// Login exchanges credentials for a backend token and the user it belongs to.
func (c *Client) Login(ctx context.Context, email, password string) (user.SessionUser, error) {
	var res loginResponse
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, call{method: rest.Post, path: "/auth/login", body: body}, &res); err != nil {
		return user.SessionUser{}, err
	}
	if res.Token == "" {
		return user.SessionUser{}, errors.New("login response carries no token")
	}
	usr := res.User
	usr.Token = res.Token
	return usr, nil
}

// Me returns the user owning the token of ctx.
func (c *Client) Me(ctx context.Context) (user.SessionUser, error) {
	var usr user.SessionUser
	if err := c.do(ctx, call{method: rest.Get, path: "/auth/me"}, &usr); err != nil {
		return user.SessionUser{}, err
	}
	usr.Token = core.TokenFrom(ctx)
	return usr, nil
}
