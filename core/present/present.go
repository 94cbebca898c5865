// Package present holds the display derivations shared by every page:
// percentages, grades, initials, dates and status colours.
package present

import (
	"math"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Percentage returns obtained/max as a percentage rounded to one decimal.
func Percentage(obtained, max float64) float64 {
	if max <= 0 {
		return 0
	}
	return math.Round(obtained/max*1000) / 10
}

type gradeBand struct {
	min   float64
	grade string
}

// grade bands, highest first
var gradeBands = []gradeBand{
	{85, "A+"},
	{80, "A"},
	{75, "A-"},
	{70, "B+"},
	{65, "B"},
	{60, "B-"},
	{55, "C+"},
	{50, "C"},
}

// Grade maps a percentage to its letter grade.
func Grade(percentage float64) string {
	for _, b := range gradeBands {
		if percentage >= b.min {
			return b.grade
		}
	}
	return "F"
}

// Initials returns the upper-cased first letters of the first and last words of name.
func Initials(name string) string {
	words := strings.Fields(name)
	switch len(words) {
	case 0:
		return "?"
	case 1:
		return firstLetter(words[0])
	default:
		return firstLetter(words[0]) + firstLetter(words[len(words)-1])
	}
}

func firstLetter(w string) string {
	r, _ := utf8.DecodeRuneInString(w)
	return string(unicode.ToUpper(r))
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("Jan 2, 2006")
}

func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("Jan 2, 2006 15:04")
}

// Truncate shortens s to at most n runes, adding an ellipsis when cut.
func Truncate(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:n])) + "…"
}
