package echoportal

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/fyp/core"
)

var errUnauthorized = echo.NewHTTPError(http.StatusUnauthorized, "Please sign in to continue.")

type errorPageData struct {
	Code    int
	Title   string
	Message string
	Home    string
}

// newAppHTTPErrorHandler renders errors as an error page, or as a toast for htmx requests.
// signalShutdown is called in order to gracefully shutdown the Server whenever a core.shutdown error is caught.
func newAppHTTPErrorHandler(logger core.Logger, signalShutdown func()) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		var (
			code    int
			message string
		)

		switch origErr := errors.Cause(err).(type) {
		case *echo.HTTPError:
			if origErr.Internal != nil {
				if herr, ok := origErr.Internal.(*echo.HTTPError); ok {
					origErr = herr
				}
			}
			code = origErr.Code
			message = fmt.Sprint(origErr.Message)
		case *core.ValidationError:
			code = http.StatusBadRequest
			message = origErr.UserMessage()
		default: // any other error is a server error
			code = http.StatusInternalServerError
			message = "Something went wrong. Please try again."

			usr, _ := getContextUser(ctx)
			logger.Error(http.StatusText(code), errors.Wrap(err, message), usr)

			// shutting down...
			if core.IsShutdown(err) {
				signalShutdown()
			}
		}

		if ctx.Echo().Debug && code == http.StatusInternalServerError {
			message = err.Error()
		}

		if ctx.Response().Committed {
			return
		}
		if ctx.Request().Method == http.MethodHead { // Issue #608
			err = ctx.NoContent(code)
		} else if isHtmx(ctx) {
			// htmx only swaps 2xx responses
			hdr := ctx.Response().Header()
			hdr.Set(headerHXRetarget, toastsTarget)
			hdr.Set(headerHXReswap, "beforeend")
			err = ctx.Render(http.StatusOK, "toast", toast{Kind: toastError, Message: message})
		} else {
			home := "/"
			if usr, ok := getContextUser(ctx); ok {
				home = usr.Role.Home()
			}
			err = ctx.Render(code, "error-page", errorPageData{
				Code:    code,
				Title:   http.StatusText(code),
				Message: message,
				Home:    home,
			})
		}
		if err != nil {
			ctx.Echo().Logger.Error(err)
		}
	}
}
