package fypapi

import (
	"context"

	"github.com/sendgrid/rest"

	"github.com/trezcool/fyp/core/project"
)

var _ project.Repository = (*Client)(nil)

// MyProject returns nil when the student's group has no project yet.
func (c *Client) MyProject(ctx context.Context) (*project.Project, error) {
	var p project.Project
	if err := c.do(ctx, call{method: rest.Get, path: "/student/project"}, &p); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if p.ID == "" {
		return nil, nil
	}
	return &p, nil
}

func (c *Client) listProjects(ctx context.Context, path string) ([]project.Project, error) {
	var list []project.Project
	if err := c.do(ctx, call{method: rest.Get, path: path}, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) SupervisedProjects(ctx context.Context) ([]project.Project, error) {
	return c.listProjects(ctx, "/supervisor/projects")
}

func (c *Client) QueryProjects(ctx context.Context) ([]project.Project, error) {
	return c.listProjects(ctx, "/coordinator/projects")
}

func (c *Client) UpdateProjectStatus(ctx context.Context, id string, su project.StatusUpdate) (project.Project, error) {
	var p project.Project
	err := c.do(ctx, call{method: rest.Put, path: pathf("/supervisor/projects/%s/status", id), body: su}, &p)
	return p, err
}

func (c *Client) EvaluateProject(ctx context.Context, id string, ev project.Evaluation) (project.Project, error) {
	var p project.Project
	err := c.do(ctx, call{method: rest.Put, path: pathf("/supervisor/projects/%s/marks", id), body: ev}, &p)
	return p, err
}
