package cli

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/aalvaropc/pokedex/internal/domain"
)

func newStatsCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats ID",
		Short: "Print a base stats table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}

			app, err := bootstrap(cmd, *g)
			if err != nil {
				return err
			}
			defer app.Close()

			p, err := app.source.GetPokemon(cmd.Context(), ids[0], app.cfg.Language)
			if err != nil {
				app.log.Error("stats.failed", "id", ids[0], "err", err)
				return err
			}
			renderStats(cmd.OutOrStdout(), p, app.cfg.Language)
			return nil
		},
	}
}

func renderStats(w io.Writer, p domain.Pokemon, lang domain.LanguageID) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle(fmt.Sprintf("#%03d %s", p.ID, p.Species.DisplayName(lang)))
	t.AppendHeader(table.Row{"Stat", "Base", "EV"})

	total := 0
	for _, st := range p.Stats {
		total += st.Base
		t.AppendRow(table.Row{st.Name, st.Base, st.Effort})
	}
	t.AppendFooter(table.Row{"Total", total, ""})
	t.Render()
}
