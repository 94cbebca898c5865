package core

import (
	"net/mail"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appfs "github.com/trezcool/fyp/fs"
)

func TestParseTemplates(t *testing.T) {
	cache, err := parseTemplates(appfs.Templates)
	require.NoError(t, err)

	entry, ok := cache["announcement"]
	require.True(t, ok)
	assert.NotNil(t, entry.text)
	assert.NotNil(t, entry.html)

	_, ok = cache["_base"]
	assert.False(t, ok, "layouts are not templates of their own")
}

func TestEmailMessage_Render(t *testing.T) {
	cache, err := parseTemplates(appfs.Templates)
	require.NoError(t, err)
	tmplMu.Lock()
	templates = cache
	tmplMu.Unlock()

	data := struct {
		Title, Content, TargetAudience, Department string
		CreatedBy                                  struct{ Name string }
	}{Title: "Viva week", Content: "Bring your reports", TargetAudience: "students"}
	data.CreatedBy.Name = "Sara Ahmed"

	msg := &EmailMessage{
		To:           []mail.Address{{Address: "students@fyp.test"}},
		Subject:      "Viva week",
		TemplateName: "announcement",
		TemplateData: data,
	}
	require.NoError(t, msg.Render(ContextData{AppName: "FYP Portal", PortalURL: "http://localhost:8000"}))
	assert.True(t, msg.HasContent())
	assert.Contains(t, msg.TextContent, "Bring your reports")
	assert.Contains(t, msg.TextContent, "FYP Portal")
	assert.Contains(t, msg.HTMLContent, "Viva week")

	missing := &EmailMessage{TemplateName: "nope"}
	assert.Error(t, missing.Render(ContextData{}))
}
