package fypapi

import (
	"context"

	"github.com/sendgrid/rest"

	"github.com/trezcool/fyp/core/dashboard"
)

var _ dashboard.Repository = (*Client)(nil)

func (c *Client) StudentDashboard(ctx context.Context) (dashboard.Student, error) {
	var d dashboard.Student
	err := c.do(ctx, call{method: rest.Get, path: "/dashboard/student"}, &d)
	return d, err
}
