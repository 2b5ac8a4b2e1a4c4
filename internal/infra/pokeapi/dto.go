package pokeapi

type response struct {
	Data struct {
		Pokemon []pokemonDTO `json:"pokemon_v2_pokemon"`
	} `json:"data"`
}

type nameDTO struct {
	Name string `json:"name"`
}

type pokemonDTO struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Height         *int   `json:"height"`
	Weight         *int   `json:"weight"`
	BaseExperience *int   `json:"base_experience"`

	Abilities []struct {
		IsHidden bool `json:"is_hidden"`
		Ability  struct {
			Names []nameDTO `json:"pokemon_v2_abilitynames"`
		} `json:"pokemon_v2_ability"`
	} `json:"pokemon_v2_pokemonabilities"`

	Stats []struct {
		BaseStat int `json:"base_stat"`
		Effort   int `json:"effort"`
		Stat     struct {
			Names []nameDTO `json:"pokemon_v2_statnames"`
		} `json:"pokemon_v2_stat"`
	} `json:"pokemon_v2_pokemonstats"`

	Types []typeSlotDTO `json:"pokemon_v2_pokemontypes"`

	Species *speciesDTO `json:"pokemon_v2_pokemonspecy"`
}

type typeSlotDTO struct {
	Type struct {
		Names []nameDTO `json:"pokemon_v2_typenames"`
	} `json:"pokemon_v2_type"`
}

type speciesDTO struct {
	Name          string `json:"name"`
	BaseHappiness *int   `json:"base_happiness"`
	CaptureRate   *int   `json:"capture_rate"`
	GenderRate    *int   `json:"gender_rate"`
	HatchCounter  *int   `json:"hatch_counter"`
	GrowthRateID  *int   `json:"growth_rate_id"`

	Names []struct {
		LanguageID int    `json:"language_id"`
		Name       string `json:"name"`
		Genus      string `json:"genus"`
	} `json:"pokemon_v2_pokemonspeciesnames"`

	EvolutionChain *struct {
		Species []struct {
			ID                   int       `json:"id"`
			Name                 string    `json:"name"`
			EvolvesFromSpeciesID *int      `json:"evolves_from_species_id"`
			Names                []nameDTO `json:"pokemon_v2_pokemonspeciesnames"`
		} `json:"pokemon_v2_pokemonspecies"`
	} `json:"pokemon_v2_evolutionchain"`

	EggGroups []struct {
		EggGroup struct {
			Names []nameDTO `json:"pokemon_v2_egggroupnames"`
		} `json:"pokemon_v2_egggroup"`
	} `json:"pokemon_v2_pokemonegggroups"`

	FlavorTexts []struct {
		FlavorText string `json:"flavor_text"`
		Version    struct {
			Names []nameDTO `json:"pokemon_v2_versionnames"`
		} `json:"pokemon_v2_version"`
	} `json:"pokemon_v2_pokemonspeciesflavortexts"`

	Varieties []struct {
		ID    int           `json:"id"`
		Name  string        `json:"name"`
		Types []typeSlotDTO `json:"pokemon_v2_pokemontypes"`
		Forms []struct {
			FormName  string    `json:"form_name"`
			FormNames []nameDTO `json:"pokemon_v2_pokemonformnames"`
		} `json:"pokemon_v2_pokemonforms"`
	} `json:"pokemon_v2_pokemons"`
}
