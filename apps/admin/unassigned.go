package main

import (
	"context"
	"fmt"
	"text/tabwriter"
)

func (cli *commandLine) listUnassigned(ctx context.Context) error {
	groups, err := cli.groupSvc.WithoutSupervisor(ctx)
	if err != nil {
		return err
	}
	if len(groups) == 0 {
		fmt.Fprintln(cli.out, "every group has a supervisor")
		return nil
	}

	w := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tLEADER\tMEMBERS\tDEPARTMENT")
	for _, g := range groups {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", g.ID, g.Name, g.LeaderName(), g.Size(), g.Department)
	}
	return w.Flush()
}
