package ports

import "github.com/aalvaropc/pokedex/internal/domain"

// RecordStore persists fetched records keyed by id and language.
type RecordStore interface {
	Load(id int, lang domain.LanguageID) (p domain.Pokemon, ok bool, err error)
	Save(p domain.Pokemon, lang domain.LanguageID) error
}
