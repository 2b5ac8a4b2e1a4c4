package domain

// FormAllowList maps a Pokémon id to the variety names that may be shown in
// the Forms section. Ids absent from the table show every variety.
type FormAllowList map[int][]string

// Filter returns the varieties of pokemonID allowed by the table, keeping input order.
func (t FormAllowList) Filter(pokemonID int, varieties []Variety) []Variety {
	allowed := t[pokemonID]
	if len(allowed) == 0 {
		return varieties
	}

	set := make(map[string]struct{}, len(allowed))
	for _, name := range allowed {
		set[name] = struct{}{}
	}

	out := make([]Variety, 0, len(varieties))
	for _, v := range varieties {
		if _, ok := set[v.Name]; ok {
			out = append(out, v)
		}
	}
	return out
}

// Merge returns a copy of t with every entry of override replacing t's entry for the same id.
func (t FormAllowList) Merge(override FormAllowList) FormAllowList {
	out := make(FormAllowList, len(t)+len(override))
	for id, names := range t {
		out[id] = names
	}
	for id, names := range override {
		out[id] = names
	}
	return out
}
