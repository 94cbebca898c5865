package echoportal

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/fyp/core"
	"github.com/trezcool/fyp/core/user"
	"github.com/trezcool/fyp/storage/fypapi"
)

type loginData struct {
	Email string
	Next  string
	Error string
}

func (h *handler) home(ctx echo.Context) error {
	if usr, ok := h.refreshSession(ctx); ok {
		return ctx.Redirect(http.StatusSeeOther, usr.Role.Home())
	}
	return ctx.Redirect(http.StatusSeeOther, "/login")
}

func (h *handler) loginPage(ctx echo.Context) error {
	if usr, ok := h.refreshSession(ctx); ok {
		return ctx.Redirect(http.StatusSeeOther, usr.Role.Home())
	}
	return ctx.Render(http.StatusOK, "login", loginData{Next: ctx.QueryParam("next")})
}

// refreshSession re-reads the session user from the backend and re-signs the cookie.
// A token the backend no longer accepts ends the session; an unreachable backend does not.
func (h *handler) refreshSession(ctx echo.Context) (user.SessionUser, bool) {
	usr, ok := getContextUser(ctx)
	if !ok {
		return usr, false
	}
	fresh, err := h.deps.UserSvc.Me(ctx.Request().Context())
	switch {
	case err == nil:
	case fypapi.IsUnauthorized(err), errors.Cause(err) == user.ErrUnsupportedRole:
		clearSessionCookie(ctx)
		return user.SessionUser{}, false
	default:
		h.logError(ctx, "refreshing session", err)
		return usr, true
	}

	fresh.Token = usr.Token
	if err = setSessionCookie(ctx, h.deps.Conf, fresh); err != nil {
		h.logError(ctx, "refreshing session", err)
		return usr, true
	}
	return fresh, true
}

func (h *handler) login(ctx echo.Context) error {
	var creds user.Credentials
	if err := ctx.Bind(&creds); err != nil {
		return errors.Wrap(err, "binding to Credentials")
	}
	next := ctx.FormValue("next")

	usr, err := h.deps.UserSvc.Login(ctx.Request().Context(), creds)
	if err != nil {
		code := http.StatusBadGateway
		switch {
		case core.IsValidation(err):
			code = http.StatusBadRequest
		case fypapi.IsUnauthorized(err), errors.Cause(err) == user.ErrUnsupportedRole:
			code = http.StatusUnauthorized
		default:
			h.logError(ctx, "login", err)
		}
		return ctx.Render(code, "login", loginData{Email: creds.Email, Next: next, Error: core.UserMessage(err)})
	}

	if err = setSessionCookie(ctx, h.deps.Conf, usr); err != nil {
		return err
	}
	h.deps.Logger.Info("user logged in", usr)
	return ctx.Redirect(http.StatusSeeOther, redirectTarget(usr, next))
}

func (h *handler) logout(ctx echo.Context) error {
	clearSessionCookie(ctx)
	if isHtmx(ctx) {
		ctx.Response().Header().Set(headerHXRedirect, "/login")
		return ctx.NoContent(http.StatusOK)
	}
	return ctx.Redirect(http.StatusSeeOther, "/login")
}

// redirectTarget keeps next only when it is a local path inside the user's portal.
func redirectTarget(usr user.SessionUser, next string) string {
	home := usr.Role.Home()
	if next == home || strings.HasPrefix(next, home+"/") || strings.HasPrefix(next, home+"?") {
		return next
	}
	return home
}
