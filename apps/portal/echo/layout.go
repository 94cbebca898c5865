package echoportal

import (
	"strings"

	"github.com/trezcool/fyp/core/user"
)

type navItem struct {
	Label string
	Href  string
	Icon  string
}

var navItems = map[user.Role][]navItem{
	user.RoleStudent: {
		{Label: "Dashboard", Href: "/student", Icon: "home"},
		{Label: "My Group", Href: "/student/group", Icon: "users"},
		{Label: "My Project", Href: "/student/project", Icon: "folder"},
		{Label: "Documents", Href: "/student/documents", Icon: "file"},
		{Label: "Schedule", Href: "/student/schedule", Icon: "calendar"},
		{Label: "Announcements", Href: "/student/announcements", Icon: "megaphone"},
		{Label: "Profile", Href: "/student/profile", Icon: "user"},
	},
	user.RoleSupervisor: {
		{Label: "Dashboard", Href: "/supervisor", Icon: "home"},
		{Label: "My Groups", Href: "/supervisor/groups", Icon: "users"},
		{Label: "Projects", Href: "/supervisor/projects", Icon: "folder"},
		{Label: "Schedules", Href: "/supervisor/schedules", Icon: "calendar"},
		{Label: "Announcements", Href: "/supervisor/announcements", Icon: "megaphone"},
		{Label: "Profile", Href: "/supervisor/profile", Icon: "user"},
	},
	user.RoleCoordinator: {
		{Label: "Dashboard", Href: "/coordinator", Icon: "home"},
		{Label: "Groups", Href: "/coordinator/groups", Icon: "users"},
		{Label: "Projects", Href: "/coordinator/projects", Icon: "folder"},
		{Label: "Schedules", Href: "/coordinator/schedules", Icon: "calendar"},
		{Label: "Announcements", Href: "/coordinator/announcements", Icon: "megaphone"},
		{Label: "Profile", Href: "/coordinator/profile", Icon: "user"},
	},
}

var accents = map[user.Role]string{
	user.RoleStudent:     "blue",
	user.RoleSupervisor:  "green",
	user.RoleCoordinator: "indigo",
}

type navLink struct {
	navItem
	Active bool
}

// layout is what the shell needs to draw the sidebar and the navbar.
type layout struct {
	User    user.SessionUser
	Nav     []navLink
	Accent  string
	Portal  string
	Profile string
}

func newLayout(usr user.SessionUser, path string) layout {
	items := navItems[usr.Role]
	active := activeHref(items, path)
	nav := make([]navLink, 0, len(items))
	for _, item := range items {
		nav = append(nav, navLink{navItem: item, Active: item.Href == active})
	}
	accent, ok := accents[usr.Role]
	if !ok {
		accent = "gray"
	}
	return layout{
		User:    usr,
		Nav:     nav,
		Accent:  accent,
		Portal:  portalName(usr.Role),
		Profile: usr.Role.Home() + "/profile",
	}
}

// activeHref returns the href of the item matching path with the longest prefix.
func activeHref(items []navItem, path string) string {
	var best string
	for _, item := range items {
		if path != item.Href && !strings.HasPrefix(path, item.Href+"/") {
			continue
		}
		if len(item.Href) > len(best) {
			best = item.Href
		}
	}
	return best
}

func portalName(role user.Role) string {
	r := role.String()
	if r == "" {
		return "Portal"
	}
	return strings.ToUpper(r[:1]) + r[1:] + " Portal"
}
