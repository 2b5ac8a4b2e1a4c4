// Package markdown turns a domain.Document into markdown text and styles it
// for the terminal.
package markdown

import (
	"strings"

	"github.com/aalvaropc/pokedex/internal/domain"
)

// Render converts doc to markdown. Blocks are separated by a blank line and
// blocks without content are skipped. Images of one block share a line.
func Render(doc domain.Document) string {
	var b strings.Builder
	for _, block := range doc {
		s := renderBlock(block)
		if s == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(s)
	}
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	return b.String()
}

func renderBlock(block domain.Block) string {
	text := strings.TrimSpace(block.Text)

	switch block.Kind {
	case domain.BlockH1:
		return heading("#", text)
	case domain.BlockH2:
		return heading("##", text)
	case domain.BlockH3:
		return heading("###", text)
	case domain.BlockParagraph:
		return text
	case domain.BlockImage:
		parts := make([]string, 0, len(block.Images))
		for _, img := range block.Images {
			if img.Source == "" {
				continue
			}
			parts = append(parts, Image(img))
		}
		return strings.Join(parts, " ")
	default:
		return ""
	}
}

func heading(prefix, text string) string {
	if text == "" {
		return ""
	}
	return prefix + " " + text
}

// Image renders an inline markdown image.
func Image(img domain.Image) string {
	title := strings.NewReplacer("[", `\[`, "]", `\]`).Replace(img.Title)
	return "![" + title + "](" + img.Source + ")"
}
