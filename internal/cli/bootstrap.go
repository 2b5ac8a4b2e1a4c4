package cli

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/pokedex/internal/domain"
	"github.com/aalvaropc/pokedex/internal/infra/config"
	"github.com/aalvaropc/pokedex/internal/infra/formtable"
	"github.com/aalvaropc/pokedex/internal/infra/httpclient"
	"github.com/aalvaropc/pokedex/internal/infra/logger"
	"github.com/aalvaropc/pokedex/internal/infra/pokeapi"
	"github.com/aalvaropc/pokedex/internal/infra/recordcache"
	"github.com/aalvaropc/pokedex/internal/ports"
	"github.com/aalvaropc/pokedex/internal/usecase"
)

// appContext is the wired application shared by every command.
type appContext struct {
	cfg     domain.Config
	log     *slog.Logger
	source  ports.PokemonSource
	show    *usecase.ShowPokemon
	cleanup func() error
}

func (a *appContext) Close() {
	if a.cleanup != nil {
		_ = a.cleanup()
	}
}

func bootstrap(cmd *cobra.Command, opts globalOptions) (*appContext, error) {
	res, err := config.Load(config.Options{
		File:  opts.configFile,
		Flags: cmd.Flags(),
	})
	if err != nil {
		return nil, err
	}
	cfg := res.Config

	cleanup, _ := logger.Setup(logger.Config{
		Dir:   config.StateDir(),
		Debug: opts.debug,
	})
	log := logger.L()
	log.Info("config.loaded",
		"file", res.File,
		"language", int(cfg.Language),
		"endpoint", cfg.Endpoint,
		"cache", cfg.Cache.Enabled,
	)

	httpCfg := httpclient.DefaultConfig()
	httpCfg.Timeout = cfg.Timeout
	exec := httpclient.NewExecutor(
		httpclient.WithClient(httpclient.New(httpCfg)),
		httpclient.WithTimeout(cfg.Timeout),
	)

	var src ports.PokemonSource = pokeapi.New(cfg.Endpoint,
		pokeapi.WithExecutor(exec),
		pokeapi.WithLogger(log),
	)
	if cfg.Cache.Enabled {
		store := recordcache.NewJSONStore(cfg.Cache.Dir, recordcache.WithTTL(cfg.Cache.TTL))
		src = recordcache.NewSource(src, store, log)
	}

	var tables ports.FormTableLoader = formtable.NewLoader()
	forms, err := tables.LoadFormTable(cfg.FormsFile)
	if err != nil {
		if cleanup != nil {
			_ = cleanup()
		}
		return nil, err
	}

	builder := usecase.NewDocumentBuilder(forms, cfg.URLs)
	show := usecase.NewShowPokemon(src, builder, usecase.WithLogger(log))

	return &appContext{
		cfg:     cfg,
		log:     log,
		source:  src,
		show:    show,
		cleanup: cleanup,
	}, nil
}

// validateID accepts ids in the Pokédex range; zero is accepted when random is allowed.
func validateID(id int, allowZero bool) error {
	if id == 0 && allowZero {
		return nil
	}
	if id < domain.MinPokemonID || id > domain.MaxPokemonID {
		return fmt.Errorf("invalid id %d: must be between %d and %d", id, domain.MinPokemonID, domain.MaxPokemonID)
	}
	return nil
}

func parseIDs(args []string) ([]int, error) {
	ids := make([]int, 0, len(args))
	for _, a := range args {
		id, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q: not a number", a)
		}
		if err := validateID(id, false); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
