package usecase

import (
	"context"
	"sync"

	"github.com/aalvaropc/pokedex/internal/domain"
)

func pikachu() domain.Pokemon {
	return domain.Pokemon{
		ID:             25,
		Name:           "pikachu",
		Height:         4,
		Weight:         60,
		BaseExperience: 112,
		Types:          []string{"electric"},
		Abilities: []domain.Ability{
			{Name: "static"},
			{Name: "lightning-rod", Hidden: true},
		},
		Stats: []domain.Stat{
			{Name: "hp", Base: 35},
			{Name: "attack", Base: 55},
			{Name: "defense", Base: 40},
			{Name: "special-attack", Base: 50},
			{Name: "special-defense", Base: 50},
			{Name: "speed", Base: 90, Effort: 2},
		},
		Species: domain.PokemonSpecies{
			Name:          "pikachu",
			BaseHappiness: 50,
			CaptureRate:   190,
			GenderRate:    4,
			HatchCounter:  10,
			GrowthRateID:  2,
			Names: []domain.SpeciesName{
				{Language: domain.LanguageJapanese, Name: "ピカチュウ", Genus: "ねずみポケモン"},
				{Language: domain.LanguageRoomaji, Name: "Pikachu"},
				{Language: domain.LanguageEnglish, Name: "Pikachu", Genus: "Mouse Pokémon"},
			},
			EggGroups: []string{"ground", "fairy"},
			FlavorTexts: []domain.FlavorText{
				{Text: "When several of\nthese POKéMON\fgather.", Version: "Red"},
				{Text: "No version name."},
				{Text: "Its nature is to\nstore up electricity.", Version: "Sword"},
			},
			Evolutions: []domain.Species{
				{ID: 172, Name: "pichu", DisplayName: "Pichu"},
				{ID: 25, Name: "pikachu", DisplayName: "Pikachu", EvolvesFromSpeciesID: domain.IntPtr(172)},
				{ID: 26, Name: "raichu", DisplayName: "Raichu", EvolvesFromSpeciesID: domain.IntPtr(25)},
			},
			Varieties: []domain.Variety{
				{ID: 25, Name: "pikachu", Types: []string{"electric"}},
				{ID: 10080, Name: "pikachu-rock-star", FormName: "Pikachu Rock Star", Types: []string{"electric"}},
				{ID: 10199, Name: "pikachu-gmax", FormName: "Gigantamax Pikachu", Types: []string{"electric"}},
			},
		},
	}
}

func ditto() domain.Pokemon {
	return domain.Pokemon{
		ID:    132,
		Name:  "ditto",
		Types: []string{"normal"},
		Species: domain.PokemonSpecies{
			Name:       "ditto",
			GenderRate: -1,
			Names: []domain.SpeciesName{
				{Language: domain.LanguageEnglish, Name: "Ditto", Genus: "Transform Pokémon"},
			},
			Evolutions: []domain.Species{{ID: 132, Name: "ditto", DisplayName: "Ditto"}},
			Varieties:  []domain.Variety{{ID: 132, Name: "ditto", Types: []string{"normal"}}},
		},
	}
}

// fakeSource serves fixed records and records every request.
type fakeSource struct {
	mu      sync.Mutex
	records map[int]domain.Pokemon
	err     error
	calls   []int
}

func (f *fakeSource) GetPokemon(ctx context.Context, id int, lang domain.LanguageID) (domain.Pokemon, error) {
	f.mu.Lock()
	f.calls = append(f.calls, id)
	f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return domain.Pokemon{}, err
	}
	if f.err != nil {
		return domain.Pokemon{}, f.err
	}
	p, ok := f.records[id]
	if !ok {
		return domain.Pokemon{}, &domain.OpError{Op: "fake.get", Kind: domain.KindNotFound, Err: domain.ErrNotFound}
	}
	return p, nil
}
