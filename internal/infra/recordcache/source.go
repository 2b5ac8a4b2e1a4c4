package recordcache

import (
	"context"
	"io"
	"log/slog"

	"github.com/aalvaropc/pokedex/internal/domain"
	"github.com/aalvaropc/pokedex/internal/ports"
)

// Source serves records from a RecordStore and falls back to the wrapped source.
type Source struct {
	next  ports.PokemonSource
	store ports.RecordStore
	log   *slog.Logger
}

func NewSource(next ports.PokemonSource, store ports.RecordStore, log *slog.Logger) *Source {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Source{next: next, store: store, log: log}
}

var _ ports.PokemonSource = (*Source)(nil)

func (s *Source) GetPokemon(ctx context.Context, id int, lang domain.LanguageID) (domain.Pokemon, error) {
	p, ok, err := s.store.Load(id, lang)
	if err != nil {
		s.log.Warn("cache.load_failed", "id", id, "language", int(lang), "err", err)
	}
	if ok {
		s.log.Debug("cache.hit", "id", id, "language", int(lang))
		return p, nil
	}

	p, err = s.next.GetPokemon(ctx, id, lang)
	if err != nil {
		return domain.Pokemon{}, err
	}

	if err := s.store.Save(p, lang); err != nil {
		s.log.Warn("cache.save_failed", "id", id, "err", err)
	}
	return p, nil
}
