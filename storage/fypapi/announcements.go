package fypapi

import (
	"context"

	"github.com/sendgrid/rest"

	"github.com/trezcool/fyp/core/announcement"
)

var _ announcement.Repository = (*Client)(nil)

func (c *Client) QueryAnnouncements(ctx context.Context) ([]announcement.Announcement, error) {
	var list []announcement.Announcement
	if err := c.do(ctx, call{method: rest.Get, path: "/announcements"}, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) CreateAnnouncement(ctx context.Context, na announcement.NewAnnouncement) (announcement.Announcement, error) {
	var a announcement.Announcement
	err := c.do(ctx, call{method: rest.Post, path: "/announcements", body: na}, &a)
	return a, err
}

func (c *Client) UpdateAnnouncement(ctx context.Context, id string, ua announcement.UpdateAnnouncement) (announcement.Announcement, error) {
	var a announcement.Announcement
	err := c.do(ctx, call{method: rest.Put, path: pathf("/announcements/%s", id), body: ua}, &a)
	return a, err
}

func (c *Client) DeleteAnnouncement(ctx context.Context, id string) error {
	return c.do(ctx, call{method: rest.Delete, path: pathf("/announcements/%s", id)}, nil)
}
