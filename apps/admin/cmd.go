package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"syscall"

	"golang.org/x/term"

	"github.com/trezcool/fyp/core"
	"github.com/trezcool/fyp/core/announcement"
	"github.com/trezcool/fyp/core/group"
	"github.com/trezcool/fyp/core/user"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp           = errors.New("help provided")
	errNotCoordinator = errors.New("only coordinators can run this command")
)

type commandLine struct {
	usrSvc          *user.Service
	announcementSvc *announcement.Service
	groupSvc        *group.Service
	in              io.Reader
	out             io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  announce -email EMAIL -title TITLE [-audience students|supervisors|general] [-department DEPT] - publish an announcement read from stdin")
	fmt.Fprintln(cli.out, "  unassigned -email EMAIL - list the groups without a supervisor")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	announceCmd := flag.NewFlagSet("announce", flag.ContinueOnError)
	announceCmd.SetOutput(cli.out)
	announceEmail := announceCmd.String("email", "", "The coordinator's email. The password will be prompted next.")
	announceTitle := announceCmd.String("title", "", "The announcement title.")
	announceAudience := announceCmd.String("audience", string(announcement.AudienceGeneral), "Who the announcement is for.")
	announceDept := announceCmd.String("department", "", "Restrict the announcement to a department.")

	unassignedCmd := flag.NewFlagSet("unassigned", flag.ContinueOnError)
	unassignedCmd.SetOutput(cli.out)
	unassignedEmail := unassignedCmd.String("email", "", "The coordinator's email. The password will be prompted next.")

	switch args[1] {
	case "announce":
		if err := announceCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		if *announceEmail == "" || *announceTitle == "" {
			announceCmd.Usage()
			return errHelp
		}
		content, err := io.ReadAll(cli.in)
		if err != nil {
			return err
		}
		ctx, err := cli.login(*announceEmail)
		if err != nil {
			return err
		}
		return cli.announce(ctx, announcement.NewAnnouncement{
			Title:          *announceTitle,
			Content:        string(content),
			TargetAudience: announcement.Audience(*announceAudience),
			Department:     *announceDept,
		})
	case "unassigned":
		if err := unassignedCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		if *unassignedEmail == "" {
			unassignedCmd.Usage()
			return errHelp
		}
		ctx, err := cli.login(*unassignedEmail)
		if err != nil {
			return err
		}
		return cli.listUnassigned(ctx)
	default:
		cli.printUsage()
		return errHelp
	}
}

// login prompts for the password and returns a context carrying the backend token.
func (cli *commandLine) login(email string) (context.Context, error) {
	fmt.Fprint(cli.out, "Enter password:")
	pwd, err := readPasswordFunc(int(syscall.Stdin))
	fmt.Fprintln(cli.out)
	if err != nil {
		return nil, err
	}
	if len(pwd) == 0 {
		return nil, errHelp
	}

	ctx := context.Background()
	usr, err := cli.usrSvc.Login(ctx, user.Credentials{Email: email, Password: string(pwd)})
	if err != nil {
		return nil, err
	}
	if usr.Role != user.RoleCoordinator {
		return nil, errNotCoordinator
	}
	return core.WithToken(ctx, usr.Token), nil
}
