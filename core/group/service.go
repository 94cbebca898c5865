package group

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trezcool/fyp/core"
)

// supervisorsLimit bounds the supervisor listing used by assignment dialogs.
const supervisorsLimit = 100

type (
	Repository interface {
		QueryGroups(ctx context.Context) ([]Group, error)
		GroupsWithoutSupervisor(ctx context.Context) ([]Group, error)
		AssignSupervisor(ctx context.Context, groupID, supervisorID string) (Group, error)
		ChangeSupervisor(ctx context.Context, groupID, supervisorID string) (Group, error)
		MyGroup(ctx context.Context) (*Group, error)
		SupervisedGroups(ctx context.Context) ([]Group, error)
		QuerySupervisors(ctx context.Context, limit int) ([]Supervisor, error)
	}

	Service struct {
		repo Repository
	}
)

var errMissingIDs = core.NewValidationError(
	errors.New("group and supervisor are required"),
	core.FieldError{Field: "supervisorId", Error: "please select a supervisor"},
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Query lists groups for the coordinator. The unassigned filter uses the dedicated backend listing.
func (svc *Service) Query(ctx context.Context, filter Filter) ([]Group, error) {
	filter.Clean()
	var (
		groups []Group
		err    error
	)
	if filter.Supervisor == SupervisorUnassigned {
		groups, err = svc.repo.GroupsWithoutSupervisor(ctx)
	} else {
		groups, err = svc.repo.QueryGroups(ctx)
	}
	if err != nil {
		return nil, errors.Wrap(err, "querying groups")
	}
	return filter.Apply(groups), nil
}

func (svc *Service) WithoutSupervisor(ctx context.Context) ([]Group, error) {
	groups, err := svc.repo.GroupsWithoutSupervisor(ctx)
	return groups, errors.Wrap(err, "querying groups without supervisor")
}

// Supervisors lists supervisors, most available first.
func (svc *Service) Supervisors(ctx context.Context) ([]Supervisor, error) {
	sups, err := svc.repo.QuerySupervisors(ctx, supervisorsLimit)
	if err != nil {
		return nil, errors.Wrap(err, "querying supervisors")
	}
	SortSupervisorsByAvailability(sups)
	return sups, nil
}

// Assign sets the group's supervisor. When change is true the current supervisor is replaced.
func (svc *Service) Assign(ctx context.Context, groupID, supervisorID string, change bool) (Group, error) {
	groupID = core.CleanString(groupID)
	supervisorID = core.CleanString(supervisorID)
	if groupID == "" || supervisorID == "" {
		return Group{}, errMissingIDs
	}
	if change {
		g, err := svc.repo.ChangeSupervisor(ctx, groupID, supervisorID)
		return g, errors.Wrap(err, "changing supervisor")
	}
	g, err := svc.repo.AssignSupervisor(ctx, groupID, supervisorID)
	return g, errors.Wrap(err, "assigning supervisor")
}

// Mine returns the current student's group, or nil when they have none yet.
func (svc *Service) Mine(ctx context.Context) (*Group, error) {
	g, err := svc.repo.MyGroup(ctx)
	return g, errors.Wrap(err, "fetching my group")
}

func (svc *Service) Supervised(ctx context.Context) ([]Group, error) {
	groups, err := svc.repo.SupervisedGroups(ctx)
	return groups, errors.Wrap(err, "fetching supervised groups")
}
