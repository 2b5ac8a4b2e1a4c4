package markdown

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aalvaropc/pokedex/internal/domain"
)

func TestRender(t *testing.T) {
	doc := domain.Document{
		domain.H1("#025 Pikachu"),
		domain.P("ピカチュウ (Pikachu)"),
		domain.H3("Mouse Pokémon"),
		domain.P(""),
		domain.Img(domain.Image{Title: "Pikachu", Source: "https://img.test/025.png"}),
		domain.H2(""),
		domain.P("_Type:_ Electric"),
	}

	want := strings.Join([]string{
		"# #025 Pikachu",
		"ピカチュウ (Pikachu)",
		"### Mouse Pokémon",
		"![Pikachu](https://img.test/025.png)",
		"_Type:_ Electric",
	}, "\n\n") + "\n"

	if diff := cmp.Diff(want, Render(doc)); diff != "" {
		t.Fatalf("markdown mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderEmpty(t *testing.T) {
	if got := Render(nil); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}

func TestRenderMultipleImages(t *testing.T) {
	doc := domain.Document{
		domain.Img(
			domain.Image{Title: "A", Source: "a.png"},
			domain.Image{Title: "skip", Source: ""},
			domain.Image{Title: "B [x]", Source: "b.png"},
		),
	}
	want := "![A](a.png) ![B \\[x\\]](b.png)\n"
	if got := Render(doc); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestTerminalRendererASCII(t *testing.T) {
	r, err := NewTerminalRenderer("ascii", 60)
	if err != nil {
		t.Fatalf("NewTerminalRenderer error: %v", err)
	}
	out, err := r.Render("# Pikachu\n\n_Type:_ Electric\n")
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if !strings.Contains(out, "Pikachu") || !strings.Contains(out, "Electric") {
		t.Fatalf("expected rendered content, got %q", out)
	}
	if r.Width() != 60 {
		t.Fatalf("expected width 60")
	}
}
