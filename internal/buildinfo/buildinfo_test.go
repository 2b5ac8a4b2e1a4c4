package buildinfo

import (
	"strings"
	"testing"
)

func TestInfoString(t *testing.T) {
	i := Info{Version: "v1.2.0", Commit: "abc1234", Date: "2024-01-02", GoVersion: "go1.24.0", Dirty: true}
	want := "pokedex v1.2.0 (commit=abc1234-dirty, date=2024-01-02, go1.24.0)"
	if got := i.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestReadKeepsLdflags(t *testing.T) {
	old := Version
	Version = "v9.9.9"
	t.Cleanup(func() { Version = old })

	if got := Read(); got.Version != "v9.9.9" {
		t.Fatalf("expected ldflags version, got %q", got.Version)
	}
	if !strings.HasPrefix(String(), "pokedex v9.9.9 ") {
		t.Fatalf("unexpected String() %q", String())
	}
}
