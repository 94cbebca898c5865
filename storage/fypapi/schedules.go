package fypapi

import (
	"context"

	"github.com/sendgrid/rest"

	"github.com/trezcool/fyp/core/schedule"
)

var _ schedule.Repository = (*Client)(nil)

// MySchedule returns nil when no presentation is scheduled for the student's group.
func (c *Client) MySchedule(ctx context.Context) (*schedule.Schedule, error) {
	var s schedule.Schedule
	if err := c.do(ctx, call{method: rest.Get, path: "/student/schedule"}, &s); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if s.ID == "" {
		return nil, nil
	}
	return &s, nil
}

// MyPanel returns nil when no panel is formed for the student's group.
// A panel without members counts as not formed.
func (c *Client) MyPanel(ctx context.Context) (*schedule.Panel, error) {
	return c.panel(ctx, "/student/panel")
}

func (c *Client) PanelOf(ctx context.Context, scheduleID string) (*schedule.Panel, error) {
	return c.panel(ctx, pathf("/schedules/%s/panel", scheduleID))
}

func (c *Client) panel(ctx context.Context, path string) (*schedule.Panel, error) {
	var p schedule.Panel
	if err := c.do(ctx, call{method: rest.Get, path: path}, &p); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if len(p.Members) == 0 {
		return nil, nil
	}
	return &p, nil
}

func (c *Client) listSchedules(ctx context.Context, path string) ([]schedule.Schedule, error) {
	var list []schedule.Schedule
	if err := c.do(ctx, call{method: rest.Get, path: path}, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) SupervisorSchedules(ctx context.Context) ([]schedule.Schedule, error) {
	return c.listSchedules(ctx, "/supervisor/schedules")
}

func (c *Client) QuerySchedules(ctx context.Context) ([]schedule.Schedule, error) {
	return c.listSchedules(ctx, "/coordinator/schedules")
}

func (c *Client) CreateSchedule(ctx context.Context, ns schedule.NewSchedule) (schedule.Schedule, error) {
	var s schedule.Schedule
	err := c.do(ctx, call{method: rest.Post, path: "/coordinator/schedules", body: ns}, &s)
	return s, err
}

func (c *Client) CompleteSchedule(ctx context.Context, id string) (schedule.Schedule, error) {
	var s schedule.Schedule
	err := c.do(ctx, call{method: rest.Put, path: pathf("/coordinator/schedules/%s/complete", id)}, &s)
	return s, err
}
