package cli

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/aalvaropc/pokedex/internal/domain"
	"github.com/aalvaropc/pokedex/internal/infra/httpclient"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

// userMessage maps err to a short line for the terminal. Details stay in the log file.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {
		case domain.KindNotFound:
			if strings.Contains(oe.Op, "pokeapi") {
				return "Pokémon not found"
			}
			if strings.TrimSpace(oe.Path) != "" {
				return "File not found: " + oe.Path
			}
			return "Not found"

		case domain.KindMissingVar:
			return "Invalid URL template: " + oe.Err.Error()

		case domain.KindInvalidConfig:
			base := "config"
			if strings.TrimSpace(oe.Path) != "" {
				base = filepath.Base(oe.Path)
			}
			if line := extractLine(err.Error()); line != "" {
				return "Invalid YAML at " + base + " line " + line
			}
			if looksLikeYAMLProblem(err.Error()) {
				return "Invalid YAML at " + base
			}
			return "Invalid config: " + oe.Err.Error()

		case domain.KindExecution:
			if errors.Is(err, domain.ErrGraphQL) {
				return "The Pokédex API rejected the query"
			}
			if strings.Contains(err.Error(), "unexpected status") {
				return fetchMessage(domain.FetchErrorHTTP)
			}
			return fetchMessage(httpclient.Classify(err))
		}
	}

	return err.Error()
}

func fetchMessage(kind domain.FetchErrorKind) string {
	switch kind {
	case domain.FetchErrorTimeout:
		return "The Pokédex API timed out"
	case domain.FetchErrorCanceled:
		return "Request canceled"
	case domain.FetchErrorDNS:
		return "Could not resolve the Pokédex API host"
	case domain.FetchErrorConn:
		return "Could not connect to the Pokédex API"
	case domain.FetchErrorHTTP:
		return "The Pokédex API returned an error"
	default:
		return "Unexpected error (see logs)"
	}
}

func looksLikeYAMLProblem(s string) bool {
	ls := strings.ToLower(s)
	return strings.Contains(ls, "yaml:") || strings.Contains(ls, "did not find expected") || strings.Contains(ls, "cannot unmarshal")
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}
