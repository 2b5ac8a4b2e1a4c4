package pokeapi

const operationName = "pokemon"

// pokemonQuery fetches one Pokémon with every nested field the detail view
// shows. Localized names are filtered to $language_id except species names,
// which are needed in every language for the Japanese/roomaji/English lines.
const pokemonQuery = `query pokemon($language_id: Int, $pokemon_id: Int) {
  pokemon_v2_pokemon(where: {id: {_eq: $pokemon_id}}) {
    id
    name
    height
    weight
    base_experience
    pokemon_v2_pokemonabilities {
      is_hidden
      pokemon_v2_ability {
        pokemon_v2_abilitynames(where: {language_id: {_eq: $language_id}}) {
          name
        }
      }
    }
    pokemon_v2_pokemonstats {
      base_stat
      effort
      pokemon_v2_stat {
        pokemon_v2_statnames(where: {language_id: {_eq: $language_id}}) {
          name
        }
      }
    }
    pokemon_v2_pokemontypes {
      pokemon_v2_type {
        pokemon_v2_typenames(where: {language_id: {_eq: $language_id}}) {
          name
        }
      }
    }
    pokemon_v2_pokemonspecy {
      name
      base_happiness
      capture_rate
      gender_rate
      hatch_counter
      growth_rate_id
      pokemon_v2_pokemonspeciesnames {
        language_id
        name
        genus
      }
      pokemon_v2_evolutionchain {
        pokemon_v2_pokemonspecies(order_by: {order: asc}) {
          id
          name
          evolves_from_species_id
          pokemon_v2_pokemonspeciesnames(where: {language_id: {_eq: $language_id}}) {
            name
          }
        }
      }
      pokemon_v2_pokemonegggroups {
        pokemon_v2_egggroup {
          pokemon_v2_egggroupnames(where: {language_id: {_eq: $language_id}}) {
            name
          }
        }
      }
      pokemon_v2_pokemonspeciesflavortexts(where: {language_id: {_eq: $language_id}}) {
        flavor_text
        pokemon_v2_version {
          pokemon_v2_versionnames(where: {language_id: {_eq: $language_id}}) {
            name
          }
        }
      }
      pokemon_v2_pokemons(order_by: {id: asc}) {
        id
        name
        pokemon_v2_pokemontypes {
          pokemon_v2_type {
            pokemon_v2_typenames(where: {language_id: {_eq: $language_id}}) {
              name
            }
          }
        }
        pokemon_v2_pokemonforms {
          form_name
          pokemon_v2_pokemonformnames(where: {language_id: {_eq: $language_id}}) {
            name
          }
        }
      }
    }
  }
}`
