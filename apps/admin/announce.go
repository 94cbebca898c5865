package main

import (
	"context"
	"fmt"

	"github.com/trezcool/fyp/core/announcement"
)

func (cli *commandLine) announce(ctx context.Context, na announcement.NewAnnouncement) error {
	a, err := cli.announcementSvc.Create(ctx, na)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "announcement %s published to %s\n", a.ID, a.TargetAudience.Label())
	return nil
}
