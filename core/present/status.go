package present

import "strings"

// Tone is the colour family a status badge renders with.
type Tone string

const (
	ToneGreen  Tone = "green"
	ToneYellow Tone = "yellow"
	ToneRed    Tone = "red"
	ToneBlue   Tone = "blue"
	ToneGray   Tone = "gray"
)

var statusTones = map[string]Tone{
	"approved":  ToneGreen,
	"completed": ToneGreen,
	"accepted":  ToneGreen,
	"reviewed":  ToneGreen,
	"pending":   ToneYellow,
	"submitted": ToneYellow,
	"scheduled": ToneBlue,
	"rejected":  ToneRed,
	"revision":  ToneRed,
}

// StatusTone is the single status-to-colour lookup used by every badge.
func StatusTone(status string) Tone {
	if t, ok := statusTones[strings.ToLower(strings.TrimSpace(status))]; ok {
		return t
	}
	return ToneGray
}

// BadgeClass returns the css classes of a badge for status.
func BadgeClass(status string) string {
	return "badge badge-" + string(StatusTone(status))
}
