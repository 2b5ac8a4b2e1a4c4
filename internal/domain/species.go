package domain

// Species is a member of an evolutionary family.
// EvolvesFromSpeciesID is nil for a base form.
type Species struct {
	ID                   int
	Name                 string
	DisplayName          string
	EvolvesFromSpeciesID *int
}

// IsBase reports whether the species has no evolutionary predecessor.
func (s Species) IsBase() bool {
	return s.EvolvesFromSpeciesID == nil
}

func (s Species) evolvesFrom(id int) bool {
	return s.EvolvesFromSpeciesID != nil && *s.EvolvesFromSpeciesID == id
}

// EvolutionBranch is an ordered root-to-leaf path of 2 or 3 species.
type EvolutionBranch []Species

// FindEvolutionRoot returns the first species without a predecessor.
// ok is false when the set has no root.
func FindEvolutionRoot(species []Species) (root Species, ok bool) {
	for _, s := range species {
		if s.IsBase() {
			return s, true
		}
	}
	return Species{}, false
}

// ResolveEvolutions rebuilds the evolution branches of one family.
//
// Each second-stage species yields one branch: [root, second] or, when a
// species evolves from it, [root, second, third]. Only the first third-stage
// match in input order is used and anything deeper is dropped. Input order
// decides branch order.
//
// A set without a root, or with nothing evolving from the root, yields an
// empty result. Callers that need to know whether a Pokémon evolves at all
// should check len(species) < 2 instead of the branch count.
func ResolveEvolutions(species []Species) []EvolutionBranch {
	root, ok := FindEvolutionRoot(species)
	if !ok {
		return []EvolutionBranch{}
	}

	out := []EvolutionBranch{}
	for _, second := range species {
		if !second.evolvesFrom(root.ID) {
			continue
		}

		branch := EvolutionBranch{root, second}
		for _, third := range species {
			if third.evolvesFrom(second.ID) {
				branch = append(branch, third)
				break
			}
		}
		out = append(out, branch)
	}
	return out
}

// IntPtr is a small helper for optional ids.
func IntPtr(v int) *int { return &v }
