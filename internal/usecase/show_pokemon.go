package usecase

import (
	"context"
	"io"
	"log/slog"
	"math/rand/v2"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/aalvaropc/pokedex/internal/domain"
	"github.com/aalvaropc/pokedex/internal/ports"
)

const defaultBatchLimit = 4

type ShowPokemon struct {
	source  ports.PokemonSource
	builder *DocumentBuilder
	pick    func() int
	log     *slog.Logger
}

type ShowOption func(*ShowPokemon)

// WithPicker replaces the random id picker used when no id is given.
func WithPicker(pick func() int) ShowOption {
	return func(uc *ShowPokemon) {
		if pick != nil {
			uc.pick = pick
		}
	}
}

func WithLogger(log *slog.Logger) ShowOption {
	return func(uc *ShowPokemon) {
		if log != nil {
			uc.log = log
		}
	}
}

func NewShowPokemon(src ports.PokemonSource, builder *DocumentBuilder, opts ...ShowOption) *ShowPokemon {
	uc := &ShowPokemon{
		source:  src,
		builder: builder,
		pick:    RandomPokemonID,
		log:     slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// RandomPokemonID returns an id in [domain.MinPokemonID, domain.MaxPokemonID].
func RandomPokemonID() int {
	return domain.MinPokemonID + rand.IntN(domain.MaxPokemonID-domain.MinPokemonID+1)
}

// Execute fetches id (a random one when id is 0) and builds its detail.
// On failure the returned detail is the empty state.
func (uc *ShowPokemon) Execute(ctx context.Context, id int, lang domain.LanguageID) (domain.Detail, error) {
	if id == 0 {
		id = uc.pick()
	}

	start := time.Now()
	uc.log.Info("fetch.start", "id", id, "language", int(lang))

	p, err := uc.source.GetPokemon(ctx, id, lang)
	if err != nil {
		uc.log.Error("fetch.failed", "id", id, "kind", string(domain.KindOf(err)), "err", err, "duration_ms", time.Since(start).Milliseconds())
		return domain.EmptyDetail(), err
	}

	uc.log.Info("fetch.ok", "id", id, "name", p.Name, "duration_ms", time.Since(start).Milliseconds())
	return uc.builder.Build(p, lang), nil
}

// ExecuteMany fetches several ids concurrently and returns details in input order.
// The first failure cancels the remaining fetches.
func (uc *ShowPokemon) ExecuteMany(ctx context.Context, ids []int, lang domain.LanguageID, limit int) ([]domain.Detail, error) {
	if limit <= 0 {
		limit = defaultBatchLimit
	}

	out := make([]domain.Detail, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, id := range ids {
		g.Go(func() error {
			d, err := uc.Execute(gctx, id, lang)
			if err != nil {
				return err
			}
			out[i] = d
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
