package markdown

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// Styles accepted by NewTerminalRenderer.
var Styles = []string{"auto", "dark", "light", "notty", "ascii", "dracula", "pink", "tokyo-night"}

// TerminalRenderer styles markdown for ANSI terminals.
type TerminalRenderer struct {
	r     *glamour.TermRenderer
	style string
	width int
}

// NewTerminalRenderer builds a renderer for the given glamour style and wrap width.
// An empty style or "auto" detects the terminal background.
func NewTerminalRenderer(style string, width int) (*TerminalRenderer, error) {
	style = strings.ToLower(strings.TrimSpace(style))

	opts := []glamour.TermRendererOption{
		glamour.WithEmoji(),
	}
	if style == "" || style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, err
	}
	return &TerminalRenderer{r: r, style: style, width: width}, nil
}

// Render styles md; on failure the raw markdown is returned with the error.
func (t *TerminalRenderer) Render(md string) (string, error) {
	out, err := t.r.Render(md)
	if err != nil {
		return md, err
	}
	return out, nil
}

func (t *TerminalRenderer) Width() int { return t.width }
