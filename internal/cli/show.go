package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/pokedex/internal/app/markdown"
	"github.com/aalvaropc/pokedex/internal/domain"
)

const (
	formatMarkdown = "markdown"
	formatPretty   = "pretty"
	formatJSON     = "json"
)

type showOptions struct {
	format string
	width  int
	jobs   int
}

func newShowCmd(g *globalOptions) *cobra.Command {
	var opts showOptions

	cmd := &cobra.Command{
		Use:   "show [ID...]",
		Short: "Print Pokémon details (random when no id is given)",
		Example: "  pokedex show 25\n" +
			"  pokedex show 1 4 7 --format json\n" +
			"  pokedex show --format pretty",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch opts.format {
			case formatMarkdown, formatPretty, formatJSON:
			default:
				return fmt.Errorf("invalid --format %q (use %s, %s or %s)", opts.format, formatMarkdown, formatPretty, formatJSON)
			}

			ids, err := parseIDs(args)
			if err != nil {
				return err
			}
			if len(ids) == 0 {
				ids = []int{0}
			}

			app, err := bootstrap(cmd, *g)
			if err != nil {
				return err
			}
			defer app.Close()

			details, err := app.show.ExecuteMany(cmd.Context(), ids, app.cfg.Language, opts.jobs)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch opts.format {
			case formatJSON:
				return writeJSON(out, details)
			case formatPretty:
				return writePretty(out, details, app.cfg.Theme, opts.width)
			default:
				return writeMarkdown(out, details)
			}
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", formatMarkdown, "output format: markdown|pretty|json")
	cmd.Flags().IntVar(&opts.width, "width", 80, "wrap width for --format pretty")
	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", 4, "concurrent fetches")

	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{formatMarkdown, formatPretty, formatJSON}, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

func writeMarkdown(w io.Writer, details []domain.Detail) error {
	parts := make([]string, 0, len(details))
	for _, d := range details {
		parts = append(parts, markdown.Render(d.Document)+linksMarkdown(d.Links))
	}
	_, err := io.WriteString(w, strings.Join(parts, "\n---\n\n"))
	return err
}

func linksMarkdown(links []domain.Link) string {
	if len(links) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n")
	for _, l := range links {
		fmt.Fprintf(&b, "- [%s](%s)\n", l.Title, l.URL)
	}
	return b.String()
}

func writePretty(w io.Writer, details []domain.Detail, style string, width int) error {
	r, err := markdown.NewTerminalRenderer(style, width)
	if err != nil {
		return fmt.Errorf("markdown renderer: %w", err)
	}
	for _, d := range details {
		out, err := r.Render(markdown.Render(d.Document) + linksMarkdown(d.Links))
		if err != nil {
			return fmt.Errorf("render #%d: %w", d.ID, err)
		}
		if _, err := io.WriteString(w, out); err != nil {
			return err
		}
	}
	return nil
}

type jsonLink struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type jsonDetail struct {
	ID       int        `json:"id"`
	Title    string     `json:"title"`
	Markdown string     `json:"markdown"`
	Links    []jsonLink `json:"links"`
}

func writeJSON(w io.Writer, details []domain.Detail) error {
	out := make([]jsonDetail, 0, len(details))
	for _, d := range details {
		links := make([]jsonLink, 0, len(d.Links))
		for _, l := range d.Links {
			links = append(links, jsonLink{Title: l.Title, URL: l.URL})
		}
		out = append(out, jsonDetail{
			ID:       d.ID,
			Title:    d.Title,
			Markdown: markdown.Render(d.Document),
			Links:    links,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
