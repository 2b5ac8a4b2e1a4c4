package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aalvaropc/pokedex/internal/app/template"
	"github.com/aalvaropc/pokedex/internal/domain"
)

const (
	OfficialLinkTitle   = "Open in the Official Pokémon Website"
	BulbapediaLinkTitle = "Open in Bulbapedia"
	doesNotEvolve       = "_This Pokémon does not evolve._"
)

var flavorCleaner = strings.NewReplacer("\r\n", " ", "\n", " ", "\f", " ", "\r", " ")

// DocumentBuilder projects a Pokémon record into a display document.
type DocumentBuilder struct {
	forms domain.FormAllowList
	urls  domain.URLTemplates
}

func NewDocumentBuilder(forms domain.FormAllowList, urls domain.URLTemplates) *DocumentBuilder {
	def := domain.DefaultURLTemplates()
	if urls.Artwork == "" {
		urls.Artwork = def.Artwork
	}
	if urls.Official == "" {
		urls.Official = def.Official
	}
	if urls.Bulbapedia == "" {
		urls.Bulbapedia = def.Bulbapedia
	}
	if forms == nil {
		forms = domain.FormAllowList{}
	}
	return &DocumentBuilder{forms: forms, urls: urls}
}

// Build renders p with names in lang.
func (b *DocumentBuilder) Build(p domain.Pokemon, lang domain.LanguageID) domain.Detail {
	s := p.Species
	number := pokedexNumber(p.ID)
	name := s.DisplayName(lang)

	// Newest entry first.
	entries := make([]domain.FlavorText, len(s.FlavorTexts))
	for i, f := range s.FlavorTexts {
		entries[len(entries)-1-i] = f
	}

	summary := ""
	if len(entries) > 0 {
		summary = cleanFlavor(entries[0].Text)
	}

	doc := domain.Document{
		domain.H1("#" + number + " " + name),
		domain.P(japaneseLine(s)),
		domain.H3(s.Genus(lang)),
		domain.P(summary),
		domain.Img(domain.Image{Title: name, Source: b.artwork(number)}),

		domain.H2("Pokédex data"),
		domain.P("_Type:_ " + strings.Join(p.Types, ", ")),
		domain.P("_Height:_ " + domain.FormatTenths(p.Height) + "m"),
		domain.P("_Weight:_ " + domain.FormatTenths(p.Weight) + "kg"),
		domain.P("_Abilities:_ " + abilities(p.Abilities)),

		domain.H2("Base stats"),
	}

	total := 0
	ev := []string{}
	for _, st := range p.Stats {
		if st.Effort != 0 {
			ev = append(ev, fmt.Sprintf("%d %s", st.Effort, st.Name))
		}
		total += st.Base
		doc = append(doc, domain.P(fmt.Sprintf("_%s_: %d", st.Name, st.Base)))
	}
	doc = append(doc,
		domain.P(fmt.Sprintf("Total: **%d**", total)),

		domain.H2("Training"),
		domain.P("_EV yield:_ "+strings.Join(ev, ", ")),
		domain.P("_Catch rate:_ "+strconv.Itoa(s.CaptureRate)),
		domain.P("_Base friendship:_ "+strconv.Itoa(s.BaseHappiness)),
		domain.P("_Base exp.:_ "+strconv.Itoa(p.BaseExperience)),
		domain.P("_Growth rate:_ "+domain.GrowthRateName(s.GrowthRateID)),

		domain.H2("Breeding"),
		domain.P("_Egg groups:_ "+strings.Join(s.EggGroups, ", ")),
		domain.P("_Gender:_ "+domain.GenderRatio(s.GenderRate)),
		domain.P("_Egg cycles:_ "+strconv.Itoa(s.HatchCounter)),
	)

	forms := b.forms.Filter(p.ID, s.Varieties)
	if len(forms) > 1 {
		doc = append(doc, domain.H2("Forms"))
		for idx, v := range forms {
			title := v.FormName
			if title == "" {
				title = name
			}
			doc = append(doc,
				domain.H3(title),
				domain.P("_Type:_ "+strings.Join(v.Types, ", ")),
				domain.Img(domain.Image{Title: title, Source: b.artwork(formNumber(p.ID, idx))}),
			)
		}
	}

	doc = append(doc, domain.H2("Evolutions"))
	if len(s.Evolutions) < 2 {
		doc = append(doc, domain.P(doesNotEvolve))
	}
	for _, branch := range domain.ResolveEvolutions(s.Evolutions) {
		images := make([]domain.Image, 0, len(branch))
		for _, sp := range branch {
			images = append(images, domain.Image{
				Title:  speciesTitle(sp),
				Source: b.artwork(pokedexNumber(sp.ID)),
			})
		}
		doc = append(doc, domain.Img(images...))
	}

	doc = append(doc, domain.H2("Pokédex entries"))
	for _, f := range entries {
		if f.Version == "" {
			continue
		}
		doc = append(doc, domain.P("**"+f.Version+":** "+cleanFlavor(f.Text)))
	}

	return domain.Detail{
		ID:       p.ID,
		Title:    name + " | " + domain.DefaultTitle,
		Document: doc,
		Links:    b.links(p),
	}
}

func (b *DocumentBuilder) links(p domain.Pokemon) []domain.Link {
	links := []domain.Link{}

	if official, err := template.RenderString(b.urls.Official, map[string]string{
		"species": p.Species.Name,
	}); err == nil {
		links = append(links, domain.Link{Title: OfficialLinkTitle, URL: official})
	}

	english := p.Species.DisplayName(domain.LanguageEnglish)
	if bulba, err := template.RenderString(b.urls.Bulbapedia, map[string]string{
		"english_name": strings.ReplaceAll(english, " ", "_"),
	}); err == nil {
		links = append(links, domain.Link{Title: BulbapediaLinkTitle, URL: bulba})
	}
	return links
}

func (b *DocumentBuilder) artwork(number string) string {
	out, err := template.RenderString(b.urls.Artwork, map[string]string{"number": number})
	if err != nil {
		return ""
	}
	return out
}

func pokedexNumber(id int) string {
	return fmt.Sprintf("%03d", id)
}

// formNumber is the artwork suffix for the idx-th displayed form; the first form uses the plain number.
func formNumber(id, idx int) string {
	if idx == 0 {
		return pokedexNumber(id)
	}
	return fmt.Sprintf("%s_f%d", pokedexNumber(id), idx+1)
}

func japaneseLine(s domain.PokemonSpecies) string {
	ja, _ := s.NameIn(domain.LanguageJapanese)
	ro, ok := s.NameIn(domain.LanguageRoomaji)
	if !ok || ro.Name == "" {
		return ja.Name
	}
	if ja.Name == "" {
		return ro.Name
	}
	return ja.Name + " (" + ro.Name + ")"
}

func abilities(in []domain.Ability) string {
	out := make([]string, 0, len(in))
	for _, a := range in {
		if a.Hidden {
			out = append(out, a.Name+" (hidden)")
			continue
		}
		out = append(out, a.Name)
	}
	return strings.Join(out, ", ")
}

func speciesTitle(s domain.Species) string {
	if s.DisplayName != "" {
		return s.DisplayName
	}
	return s.Name
}

func cleanFlavor(text string) string {
	return strings.TrimSpace(flavorCleaner.Replace(text))
}
