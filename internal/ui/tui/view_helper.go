package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/aalvaropc/pokedex/internal/app/markdown"
	"github.com/aalvaropc/pokedex/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func helpLine(k keyMap) string {
	parts := make([]string, 0, len(k.bindings()))
	for _, b := range k.bindings() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

// renderDetail styles d for the viewport. With no renderer, or when styling
// fails, the raw markdown is shown.
func renderDetail(r *markdown.TerminalRenderer, d domain.Detail) (string, error) {
	md := markdown.Render(d.Document)
	if r == nil {
		return md, nil
	}
	return r.Render(md)
}

// linkURL returns the URL of the link titled title, if d has one.
func linkURL(d domain.Detail, title string) (string, bool) {
	for _, l := range d.Links {
		if l.Title == title && l.URL != "" {
			return l.URL, true
		}
	}
	return "", false
}
