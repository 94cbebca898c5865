package echoportal

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/fyp/core"
	"github.com/trezcool/fyp/core/present"
	appfs "github.com/trezcool/fyp/fs"
)

const portalTemplates = "templates/portal/*.gohtml"

type renderer struct {
	templates *template.Template
}

var _ echo.Renderer = (*renderer)(nil)

func newRenderer(conf *core.Config) (*renderer, error) {
	tmpl, err := template.New("portal").Funcs(funcMap(conf)).ParseFS(appfs.Templates, portalTemplates)
	if err != nil {
		return nil, errors.Wrap(err, "parsing portal templates")
	}
	return &renderer{templates: tmpl}, nil
}

func (r *renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// fragment is one named template and its data; several are rendered into a single response.
type fragment struct {
	name string
	data interface{}
}

func (r *renderer) renderFragments(frags ...fragment) ([]byte, error) {
	var buff bytes.Buffer
	for _, f := range frags {
		if err := r.templates.ExecuteTemplate(&buff, f.name, f.data); err != nil {
			return nil, errors.Wrapf(err, "rendering %s", f.name)
		}
	}
	return buff.Bytes(), nil
}

func funcMap(conf *core.Config) template.FuncMap {
	str := func(v interface{}) string { return fmt.Sprint(v) }
	return template.FuncMap{
		"appName":  func() string { return conf.AppName },
		"badge":    func(status interface{}) string { return present.BadgeClass(str(status)) },
		"tone":     func(status interface{}) string { return string(present.StatusTone(str(status))) },
		"pct":      present.Percentage,
		"fixed":    func(f float64) string { return strconv.FormatFloat(f, 'f', 1, 64) },
		"num":      func(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) },
		"grade":    present.Grade,
		"initials": present.Initials,
		"date":     present.FormatDate,
		"datetime": present.FormatDateTime,
		"truncate": present.Truncate,
		"isoDate": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format("2006-01-02")
		},
		"add":  func(a, b int) int { return a + b },
		"list": func(items ...string) []string { return items },
		"dict": func(pairs ...interface{}) (map[string]interface{}, error) {
			if len(pairs)%2 != 0 {
				return nil, errors.New("dict expects key/value pairs")
			}
			m := make(map[string]interface{}, len(pairs)/2)
			for i := 0; i < len(pairs); i += 2 {
				key, ok := pairs[i].(string)
				if !ok {
					return nil, errors.Errorf("dict key %v is not a string", pairs[i])
				}
				m[key] = pairs[i+1]
			}
			return m, nil
		},
		"contains": func(list []string, s string) bool {
			for _, item := range list {
				if item == s {
					return true
				}
			}
			return false
		},
	}
}
