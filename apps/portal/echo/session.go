package echoportal

import (
	"net/http"
	"net/url"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/fyp/core"
	"github.com/trezcool/fyp/core/user"
)

const (
	sessionCookie  = "fyp_session"
	contextUserKey = "user"
	signingMethod  = "HS256"
)

var errInvalidSession = errors.New("invalid session")

// Claims is the content of the signed session cookie.
type Claims struct {
	jwt.StandardClaims
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       user.Role `json:"role"`
	Department string    `json:"department,omitempty"`
	Token      string    `json:"token"` // backend bearer token
}

func newClaims(conf *core.Config, usr user.SessionUser) *Claims {
	now := time.Now()
	return &Claims{
		StandardClaims: jwt.StandardClaims{
			Issuer:    conf.AppName,
			Subject:   usr.ID,
			ExpiresAt: now.Add(conf.SessionExpirationDelta).Unix(),
			IssuedAt:  now.Unix(),
		},
		Name:       usr.Name,
		Email:      usr.Email,
		Role:       usr.Role,
		Department: usr.Department,
		Token:      usr.Token,
	}
}

func (c Claims) sessionUser() user.SessionUser {
	return user.SessionUser{
		ID:         c.Subject,
		Name:       c.Name,
		Email:      c.Email,
		Role:       c.Role,
		Department: c.Department,
		Token:      c.Token,
	}
}

// GenerateSession signs the session cookie value for usr.
func GenerateSession(conf *core.Config, usr user.SessionUser) (string, error) {
	token := jwt.NewWithClaims(jwt.GetSigningMethod(signingMethod), newClaims(conf, usr))
	ss, err := token.SignedString([]byte(conf.SecretKey))
	if err != nil {
		return "", errors.Wrap(err, "signing session")
	}
	return ss, nil
}

func parseSession(conf *core.Config, value string) (user.SessionUser, error) {
	claims := new(Claims)
	token, err := jwt.ParseWithClaims(value, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != signingMethod {
			return nil, errors.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(conf.SecretKey), nil
	})
	if err != nil || !token.Valid {
		return user.SessionUser{}, errInvalidSession
	}
	usr := claims.sessionUser()
	if !usr.IsAuthenticated() {
		return user.SessionUser{}, errInvalidSession
	}
	return usr, nil
}

func setSessionCookie(ctx echo.Context, conf *core.Config, usr user.SessionUser) error {
	value, err := GenerateSession(conf, usr)
	if err != nil {
		return err
	}
	ctx.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    value,
		Path:     "/",
		Expires:  time.Now().Add(conf.SessionExpirationDelta),
		HttpOnly: true,
		Secure:   !(conf.Debug || conf.TestMode),
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func clearSessionCookie(ctx echo.Context) {
	ctx.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// sessionMiddleware loads the session user, if any, and puts its backend token
// on the request context so every backend call made for this request carries it.
func sessionMiddleware(conf *core.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			cookie, err := ctx.Cookie(sessionCookie)
			if err != nil || cookie.Value == "" {
				return next(ctx)
			}
			usr, err := parseSession(conf, cookie.Value)
			if err != nil {
				clearSessionCookie(ctx)
				return next(ctx)
			}
			ctx.Set(contextUserKey, usr)
			req := ctx.Request()
			ctx.SetRequest(req.WithContext(core.WithToken(req.Context(), usr.Token)))
			return next(ctx)
		}
	}
}

func getContextUser(ctx echo.Context) (user.SessionUser, bool) {
	usr, ok := ctx.Get(contextUserKey).(user.SessionUser)
	return usr, ok && usr.IsAuthenticated()
}

// loginRequired sends anonymous visitors to the login page. htmx requests get
// an HX-Redirect so the whole page navigates instead of swapping a fragment.
func loginRequired(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		if _, ok := getContextUser(ctx); ok {
			return next(ctx)
		}
		loginURL := "/login"
		if ctx.Request().Method == http.MethodGet && !isHtmx(ctx) {
			loginURL += "?next=" + url.QueryEscape(ctx.Request().URL.RequestURI())
		}
		if isHtmx(ctx) {
			ctx.Response().Header().Set(headerHXRedirect, loginURL)
			return ctx.NoContent(http.StatusUnauthorized)
		}
		return ctx.Redirect(http.StatusSeeOther, loginURL)
	}
}
