package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aalvaropc/pokedex/internal/domain"
)

func fixture(t *testing.T, name string) []byte {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	return b
}

func serve(t *testing.T, status int, body []byte, inspect func(*http.Request, map[string]any)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("read body: %v", err)
		}
		var payload map[string]any
		if err := json.Unmarshal(raw, &payload); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		if inspect != nil {
			inspect(r, payload)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGetPokemon_MapsResponse(t *testing.T) {
	srv := serve(t, http.StatusOK, fixture(t, "pikachu.json"), func(r *http.Request, payload map[string]any) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		vars, _ := payload["variables"].(map[string]any)
		if vars["pokemon_id"] != float64(25) || vars["language_id"] != float64(9) {
			t.Errorf("unexpected variables: %v", vars)
		}
		if payload["operationName"] != "pokemon" {
			t.Errorf("unexpected operation name: %v", payload["operationName"])
		}
	})

	p, err := New(srv.URL).GetPokemon(context.Background(), 25, domain.LanguageEnglish)
	if err != nil {
		t.Fatalf("GetPokemon error: %v", err)
	}

	if p.ID != 25 || p.Name != "pikachu" || p.Height != 4 || p.Weight != 60 || p.BaseExperience != 112 {
		t.Fatalf("unexpected scalar fields: %+v", p)
	}
	if diff := cmp.Diff([]string{"Electric"}, p.Types); diff != "" {
		t.Fatalf("types mismatch (-want +got):\n%s", diff)
	}
	wantAbilities := []domain.Ability{{Name: "Static"}, {Name: "Lightning Rod", Hidden: true}}
	if diff := cmp.Diff(wantAbilities, p.Abilities); diff != "" {
		t.Fatalf("abilities mismatch (-want +got):\n%s", diff)
	}
	if len(p.Stats) != 6 || p.Stats[5] != (domain.Stat{Name: "Speed", Base: 90, Effort: 2}) {
		t.Fatalf("unexpected stats: %+v", p.Stats)
	}

	s := p.Species
	if s.Name != "pikachu" || s.CaptureRate != 190 || s.GenderRate != 4 || s.GrowthRateID != 2 {
		t.Fatalf("unexpected species: %+v", s)
	}
	if n, ok := s.NameIn(domain.LanguageJapanese); !ok || n.Name != "ピカチュウ" {
		t.Fatalf("expected japanese name, got %+v", n)
	}
	if diff := cmp.Diff([]string{"Field", "Fairy"}, s.EggGroups); diff != "" {
		t.Fatalf("egg groups mismatch (-want +got):\n%s", diff)
	}
	if len(s.FlavorTexts) != 3 || s.FlavorTexts[1].Version != "" {
		t.Fatalf("unexpected flavor texts: %+v", s.FlavorTexts)
	}

	wantEvo := []domain.Species{
		{ID: 172, Name: "pichu", DisplayName: "Pichu"},
		{ID: 25, Name: "pikachu", DisplayName: "Pikachu", EvolvesFromSpeciesID: domain.IntPtr(172)},
		{ID: 26, Name: "raichu", DisplayName: "Raichu", EvolvesFromSpeciesID: domain.IntPtr(25)},
	}
	if diff := cmp.Diff(wantEvo, s.Evolutions); diff != "" {
		t.Fatalf("evolutions mismatch (-want +got):\n%s", diff)
	}

	if len(s.Varieties) != 3 || s.Varieties[0].FormName != "" || s.Varieties[2].FormName != "Gigantamax Pikachu" {
		t.Fatalf("unexpected varieties: %+v", s.Varieties)
	}
}

func TestGetPokemon_EmptyResultIsNotFound(t *testing.T) {
	srv := serve(t, http.StatusOK, []byte(`{"data":{"pokemon_v2_pokemon":[]}}`), nil)

	_, err := New(srv.URL).GetPokemon(context.Background(), 99999, domain.LanguageEnglish)
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetPokemon_GraphQLError(t *testing.T) {
	body := []byte(`{"errors":[{"message":"field 'nope' not found in type: 'query_root'"}],"data":null}`)
	srv := serve(t, http.StatusOK, body, nil)

	_, err := New(srv.URL).GetPokemon(context.Background(), 1, domain.LanguageEnglish)
	if !errors.Is(err, domain.ErrGraphQL) {
		t.Fatalf("expected ErrGraphQL, got %v", err)
	}
	if !domain.IsKind(err, domain.KindExecution) {
		t.Fatalf("expected execution kind, got %v", err)
	}
}

func TestGetPokemon_HTTPStatus(t *testing.T) {
	srv := serve(t, http.StatusBadGateway, []byte(`upstream down`), nil)

	_, err := New(srv.URL).GetPokemon(context.Background(), 1, domain.LanguageEnglish)
	if !domain.IsKind(err, domain.KindExecution) {
		t.Fatalf("expected execution kind, got %v", err)
	}
}

func TestGetPokemon_InvalidJSON(t *testing.T) {
	srv := serve(t, http.StatusOK, []byte(`<html>`), nil)

	_, err := New(srv.URL).GetPokemon(context.Background(), 1, domain.LanguageEnglish)
	if !domain.IsKind(err, domain.KindExecution) {
		t.Fatalf("expected execution kind, got %v", err)
	}
}

func TestGetPokemon_CanceledContext(t *testing.T) {
	srv := serve(t, http.StatusOK, fixture(t, "pikachu.json"), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(srv.URL).GetPokemon(ctx, 25, domain.LanguageEnglish)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestMapSpecies_NullGenderRateIsGenderless(t *testing.T) {
	s := mapSpecies(speciesDTO{Name: "x"})
	if s.GenderRate != -1 {
		t.Fatalf("expected -1, got %d", s.GenderRate)
	}
}
