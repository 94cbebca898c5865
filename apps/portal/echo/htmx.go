package echoportal

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/fyp/core"
)

const (
	headerHXRequest  = "HX-Request"
	headerHXRedirect = "HX-Redirect"
	headerHXRetarget = "HX-Retarget"
	headerHXReswap   = "HX-Reswap"

	toastsTarget = "#toasts"
)

type toastKind string

const (
	toastSuccess toastKind = "success"
	toastError   toastKind = "error"
)

type toast struct {
	Kind    toastKind
	Message string
	OOB     bool // appended to #toasts out of band, next to the main swap
}

func isHtmx(ctx echo.Context) bool {
	return ctx.Request().Header.Get(headerHXRequest) == "true"
}

// errorToast answers a failed mutation with a toast only: the page content is left untouched.
func (h *handler) errorToast(ctx echo.Context, err error) error {
	if !core.IsValidation(err) {
		h.logError(ctx, "mutation failed", err)
	}
	hdr := ctx.Response().Header()
	hdr.Set(headerHXRetarget, toastsTarget)
	hdr.Set(headerHXReswap, "beforeend")
	return ctx.Render(http.StatusOK, "toast", toast{Kind: toastError, Message: core.UserMessage(err)})
}

// refreshWithToast re-renders the page content from freshly fetched data and
// appends a success toast out of band.
func (h *handler) refreshWithToast(ctx echo.Context, v view, msg string) error {
	data, err := v.load(ctx)
	if err != nil {
		// the mutation went through; only the re-fetch failed
		return h.renderFragments(ctx,
			fragment{name: "error-panel", data: h.errorPanel(ctx, v, err)},
			fragment{name: "toast", data: toast{Kind: toastSuccess, Message: msg, OOB: true}},
		)
	}
	return h.renderFragments(ctx,
		fragment{name: v.template, data: h.pageData(ctx, v, data)},
		fragment{name: "toast", data: toast{Kind: toastSuccess, Message: msg, OOB: true}},
	)
}

func (h *handler) renderFragments(ctx echo.Context, frags ...fragment) error {
	body, err := h.renderer.renderFragments(frags...)
	if err != nil {
		return err
	}
	return ctx.HTMLBlob(http.StatusOK, body)
}
