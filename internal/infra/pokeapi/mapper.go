package pokeapi

import (
	"strings"

	"github.com/aalvaropc/pokedex/internal/domain"
)

func mapPokemon(dto pokemonDTO) domain.Pokemon {
	p := domain.Pokemon{
		ID:             dto.ID,
		Name:           dto.Name,
		Height:         intOr(dto.Height, 0),
		Weight:         intOr(dto.Weight, 0),
		BaseExperience: intOr(dto.BaseExperience, 0),
		Types:          mapTypes(dto.Types),
		Abilities:      make([]domain.Ability, 0, len(dto.Abilities)),
		Stats:          make([]domain.Stat, 0, len(dto.Stats)),
	}

	for _, a := range dto.Abilities {
		p.Abilities = append(p.Abilities, domain.Ability{
			Name:   firstName(a.Ability.Names),
			Hidden: a.IsHidden,
		})
	}
	for _, s := range dto.Stats {
		p.Stats = append(p.Stats, domain.Stat{
			Name:   firstName(s.Stat.Names),
			Base:   s.BaseStat,
			Effort: s.Effort,
		})
	}

	if dto.Species != nil {
		p.Species = mapSpecies(*dto.Species)
	}
	return p
}

func mapSpecies(dto speciesDTO) domain.PokemonSpecies {
	s := domain.PokemonSpecies{
		Name:          dto.Name,
		BaseHappiness: intOr(dto.BaseHappiness, 0),
		CaptureRate:   intOr(dto.CaptureRate, 0),
		GenderRate:    intOr(dto.GenderRate, -1),
		HatchCounter:  intOr(dto.HatchCounter, 0),
		GrowthRateID:  intOr(dto.GrowthRateID, 0),
		Names:         make([]domain.SpeciesName, 0, len(dto.Names)),
		EggGroups:     make([]string, 0, len(dto.EggGroups)),
		FlavorTexts:   make([]domain.FlavorText, 0, len(dto.FlavorTexts)),
		Evolutions:    []domain.Species{},
		Varieties:     make([]domain.Variety, 0, len(dto.Varieties)),
	}

	for _, n := range dto.Names {
		s.Names = append(s.Names, domain.SpeciesName{
			Language: domain.LanguageID(n.LanguageID),
			Name:     n.Name,
			Genus:    n.Genus,
		})
	}
	for _, g := range dto.EggGroups {
		s.EggGroups = append(s.EggGroups, firstName(g.EggGroup.Names))
	}
	for _, f := range dto.FlavorTexts {
		s.FlavorTexts = append(s.FlavorTexts, domain.FlavorText{
			Text:    f.FlavorText,
			Version: firstName(f.Version.Names),
		})
	}

	if dto.EvolutionChain != nil {
		for _, e := range dto.EvolutionChain.Species {
			display := firstName(e.Names)
			if display == "" {
				display = e.Name
			}
			s.Evolutions = append(s.Evolutions, domain.Species{
				ID:                   e.ID,
				Name:                 e.Name,
				DisplayName:          display,
				EvolvesFromSpeciesID: e.EvolvesFromSpeciesID,
			})
		}
	}

	for _, v := range dto.Varieties {
		variety := domain.Variety{
			ID:    v.ID,
			Name:  v.Name,
			Types: mapTypes(v.Types),
		}
		if len(v.Forms) > 0 {
			variety.FormName = firstName(v.Forms[0].FormNames)
		}
		s.Varieties = append(s.Varieties, variety)
	}
	return s
}

func mapTypes(slots []typeSlotDTO) []string {
	out := make([]string, 0, len(slots))
	for _, t := range slots {
		out = append(out, firstName(t.Type.Names))
	}
	return out
}

func firstName(names []nameDTO) string {
	if len(names) == 0 {
		return ""
	}
	return strings.TrimSpace(names[0].Name)
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}
