package echoportal

import (
	"net/http"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/fyp/core/user"
)

const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && keyMatch(r.obj, p.obj) && (r.act == p.act || p.act == "*")
`

var errHttpForbidden = echo.NewHTTPError(http.StatusForbidden, "You do not have access to this page.")

// newEnforcer grants each role its own portal, and nothing else.
func newEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, errors.Wrap(err, "loading rbac model")
	}
	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, errors.Wrap(err, "creating rbac enforcer")
	}
	for _, role := range user.Roles {
		home := role.Home()
		rules := [][]string{
			{role.String(), home, http.MethodGet},
			{role.String(), home + "/*", "*"},
		}
		for _, rule := range rules {
			if _, err = e.AddPolicy(rule[0], rule[1], rule[2]); err != nil {
				return nil, errors.Wrapf(err, "adding policy %v", rule)
			}
		}
	}
	return e, nil
}

// authorize checks the session user's role against the requested path.
func authorize(enforcer *casbin.Enforcer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			usr, ok := getContextUser(ctx)
			if !ok {
				return errUnauthorized
			}
			allowed, err := enforcer.Enforce(usr.Role.String(), ctx.Request().URL.Path, ctx.Request().Method)
			if err != nil {
				return errors.Wrap(err, "enforcing rbac policy")
			}
			if !allowed {
				return errHttpForbidden
			}
			return next(ctx)
		}
	}
}
