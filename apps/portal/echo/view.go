package echoportal

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/fyp/core"
	"github.com/trezcool/fyp/core/user"
	"github.com/trezcool/fyp/storage/fypapi"
)

type handler struct {
	deps     Deps
	renderer *renderer
}

// loader fetches everything a page shows. It must only use ctx.Request().Context()
// for backend calls so they are cancelled when the browser goes away.
type loader func(ctx echo.Context) (interface{}, error)

// view is a page split into a shell route, drawn without any data, and a
// content route that loads the data and renders either it or an error panel.
type view struct {
	path     string
	title    string
	template string
	load     loader
}

// resolve fills the route params of the view path from ctx.
func (v view) resolve(ctx echo.Context) string {
	path := v.path
	if !strings.Contains(path, ":") {
		return path
	}
	values := ctx.ParamValues()
	for i, name := range ctx.ParamNames() {
		if i < len(values) {
			path = strings.Replace(path, ":"+name, values[i], 1)
		}
	}
	return path
}

func (v view) contentURL(ctx echo.Context) string { return v.resolve(ctx) + "/content" }

type shellData struct {
	layout
	Title      string
	ContentURL string
}

type pageData struct {
	User       user.SessionUser
	Path       string
	ContentURL string
	Query      string // raw query of the list filters, carried by mutations
	Data       interface{}
}

type errorPanelData struct {
	Title    string
	Message  string
	RetryURL string
}

// page registers the shell and content routes of a view on g.
func (h *handler) page(g *echo.Group, base, rel, title, tmpl string, load loader) view {
	v := view{path: base + rel, title: title, template: tmpl, load: load}
	g.GET(rel, h.shell(v))
	g.GET(rel+"/content", h.content(v))
	return v
}

func (h *handler) shell(v view) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		usr, _ := getContextUser(ctx)
		contentURL := withQuery(v.contentURL(ctx), ctx.QueryString())
		return ctx.Render(http.StatusOK, "shell", shellData{
			layout:     newLayout(usr, v.resolve(ctx)),
			Title:      v.title,
			ContentURL: contentURL,
		})
	}
}

func (h *handler) content(v view) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		data, err := v.load(ctx)
		if err != nil {
			if ctx.Request().Context().Err() != nil {
				return nil // client is gone
			}
			h.logError(ctx, "loading "+v.path, err)
			return ctx.Render(http.StatusOK, "error-panel", h.errorPanel(ctx, v, err))
		}
		return ctx.Render(http.StatusOK, v.template, h.pageData(ctx, v, data))
	}
}

func (h *handler) pageData(ctx echo.Context, v view, data interface{}) pageData {
	usr, _ := getContextUser(ctx)
	return pageData{User: usr, Path: v.resolve(ctx), ContentURL: v.contentURL(ctx), Query: ctx.QueryString(), Data: data}
}

func withQuery(url, query string) string {
	if query == "" {
		return url
	}
	return url + "?" + query
}

// errorPanel retries the identical content request when rendered by the content
// route, and the bare content route otherwise.
func (h *handler) errorPanel(ctx echo.Context, v view, err error) errorPanelData {
	retry := withQuery(v.contentURL(ctx), ctx.QueryString())
	req := ctx.Request()
	if req.Method == http.MethodGet && strings.HasPrefix(req.URL.Path, v.contentURL(ctx)) {
		retry = req.URL.RequestURI()
	}
	return errorPanelData{
		Title:    "Failed to load " + strings.ToLower(v.title),
		Message:  core.UserMessage(err),
		RetryURL: retry,
	}
}

func (h *handler) logError(ctx echo.Context, msg string, err error) {
	usr, _ := getContextUser(ctx)
	extra := map[string]interface{}{
		"path":      ctx.Request().URL.Path,
		"requestId": ctx.Response().Header().Get(echo.HeaderXRequestID),
	}
	if status := fypapi.StatusOf(err); status > 0 && status < http.StatusInternalServerError {
		h.deps.Logger.Warn(fmt.Sprintf("%s: %v", msg, err), extra, usr)
		return
	}
	h.deps.Logger.Error(fmt.Sprintf("%s: %v", msg, err), err, extra, usr)
}
