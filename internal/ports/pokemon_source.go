package ports

import (
	"context"

	"github.com/aalvaropc/pokedex/internal/domain"
)

// PokemonSource looks up a single Pokémon record with names localized to lang.
type PokemonSource interface {
	GetPokemon(ctx context.Context, id int, lang domain.LanguageID) (domain.Pokemon, error)
}
