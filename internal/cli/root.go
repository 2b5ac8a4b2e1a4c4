package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/pokedex/internal/infra/browser"
	"github.com/aalvaropc/pokedex/internal/ui/tui"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", userMessage(err))
		os.Exit(1)
	}
}

// globalOptions are the persistent flags that do not map onto config keys.
type globalOptions struct {
	configFile string
	debug      bool
}

func newRootCmd() *cobra.Command {
	var (
		opts globalOptions
		id   int
	)

	cmd := &cobra.Command{
		Use:           "pokedex",
		Short:         "Pokédex in your terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateID(id, true); err != nil {
				return err
			}

			app, err := bootstrap(cmd, opts)
			if err != nil {
				return err
			}
			defer app.Close()

			return tui.Run(tui.Deps{
				Loader:    app.show,
				Opener:    browser.NewOpener(),
				Language:  app.cfg.Language,
				Style:     app.cfg.Theme,
				InitialID: id,
				Logger:    app.log,
				Debug:     opts.debug,
			})
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configFile, "config", "", "config file (default: pokedex.yaml in this or a parent directory)")
	pf.BoolVar(&opts.debug, "debug", false, "enable verbose logging to the pokedex log file")
	pf.Int("language", 0, "PokeAPI language id for names and texts (9 = English)")
	pf.String("endpoint", "", "PokeAPI GraphQL endpoint")
	pf.String("theme", "", "markdown style: auto|dark|light|notty|ascii")
	pf.Duration("timeout", 0, "request timeout")
	pf.String("forms-file", "", "YAML file overriding the built-in form allow-list")
	pf.Bool("no-cache", false, "bypass the on-disk record cache")

	cmd.Flags().IntVar(&id, "id", 0, "Pokédex number to open (default: random)")

	cmd.AddCommand(newShowCmd(&opts))
	cmd.AddCommand(newStatsCmd(&opts))
	cmd.AddCommand(newVersionCmd())
	return cmd
}
