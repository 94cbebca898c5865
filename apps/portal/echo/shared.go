package echoportal

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/fyp/core/announcement"
	"github.com/trezcool/fyp/core/profile"
	"github.com/trezcool/fyp/core/user"
)

type announcementsPage struct {
	Items     []announcement.Announcement
	Filter    announcement.Filter
	Audiences []announcement.Audience
	Counts    map[announcement.Audience]int
	CanManage bool
}

func (h *handler) announcementsLoader(role user.Role) loader {
	return func(ctx echo.Context) (interface{}, error) {
		var filter announcement.Filter
		if err := (&echo.DefaultBinder{}).BindQueryParams(ctx, &filter); err != nil {
			return nil, errors.Wrap(err, "binding to announcement.Filter")
		}
		filter.Clean()

		// counts reflect every visible announcement, the list only the filtered ones
		all, err := h.deps.AnnouncementSvc.Query(ctx.Request().Context(), role, announcement.Filter{})
		if err != nil {
			return nil, err
		}
		return announcementsPage{
			Items:     filter.Apply(all),
			Filter:    filter,
			Audiences: announcement.VisibleTo(role),
			Counts:    announcement.Counts(all),
			CanManage: role == user.RoleCoordinator,
		}, nil
	}
}

type profilePage struct {
	Profile  profile.Profile
	Capacity *profile.Capacity
}

func (h *handler) profileLoader(role user.Role) loader {
	return func(ctx echo.Context) (interface{}, error) {
		p, err := h.deps.ProfileSvc.Get(ctx.Request().Context(), role)
		if err != nil {
			return nil, err
		}
		page := profilePage{Profile: p}
		if role == user.RoleSupervisor {
			c := p.Capacity()
			page.Capacity = &c
		}
		return page, nil
	}
}

// registerProfile adds the profile page of role and its update action.
func (h *handler) registerProfile(g *echo.Group, role user.Role) {
	v := h.page(g, role.Home(), "/profile", "Profile", "profile", h.profileLoader(role))
	g.PUT("/profile", func(ctx echo.Context) error {
		var up profile.UpdateProfile
		if err := ctx.Bind(&up); err != nil {
			return errors.Wrap(err, "binding to UpdateProfile")
		}
		if _, err := h.deps.ProfileSvc.Update(ctx.Request().Context(), role, up); err != nil {
			return h.errorToast(ctx, err)
		}
		return h.refreshWithToast(ctx, v, "Profile updated")
	})
}
