package fypapi

import (
	"context"
	"strconv"

	"github.com/sendgrid/rest"

	"github.com/trezcool/fyp/core/group"
)

var _ group.Repository = (*Client)(nil)

func (c *Client) listGroups(ctx context.Context, path string) ([]group.Group, error) {
	var list []group.Group
	if err := c.do(ctx, call{method: rest.Get, path: path}, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) QueryGroups(ctx context.Context) ([]group.Group, error) {
	return c.listGroups(ctx, "/coordinator/groups")
}

func (c *Client) GroupsWithoutSupervisor(ctx context.Context) ([]group.Group, error) {
	return c.listGroups(ctx, "/coordinator/groups/without-supervisor")
}

func (c *Client) SupervisedGroups(ctx context.Context) ([]group.Group, error) {
	return c.listGroups(ctx, "/supervisor/groups")
}

func (c *Client) AssignSupervisor(ctx context.Context, groupID, supervisorID string) (group.Group, error) {
	var g group.Group
	path := pathf("/coordinator/groups/%s/assign-supervisor/%s", groupID, supervisorID)
	err := c.do(ctx, call{method: rest.Put, path: path}, &g)
	return g, err
}

func (c *Client) ChangeSupervisor(ctx context.Context, groupID, supervisorID string) (group.Group, error) {
	var g group.Group
	path := pathf("/coordinator/groups/%s/change-supervisor/%s", groupID, supervisorID)
	err := c.do(ctx, call{method: rest.Put, path: path}, &g)
	return g, err
}

// MyGroup returns nil when the student has no group yet.
func (c *Client) MyGroup(ctx context.Context) (*group.Group, error) {
	var g group.Group
	if err := c.do(ctx, call{method: rest.Get, path: "/student/group"}, &g); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if g.ID == "" {
		return nil, nil
	}
	return &g, nil
}

func (c *Client) QuerySupervisors(ctx context.Context, limit int) ([]group.Supervisor, error) {
	query := map[string]string{"role": "supervisor"}
	if limit > 0 {
		query["limit"] = strconv.Itoa(limit)
	}
	var list []group.Supervisor
	if err := c.do(ctx, call{method: rest.Get, path: "/users", query: query}, &list); err != nil {
		return nil, err
	}
	return list, nil
}
