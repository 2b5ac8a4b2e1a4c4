// Package pokeapi implements ports.PokemonSource against the PokeAPI GraphQL endpoint.
package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/aalvaropc/pokedex/internal/domain"
	"github.com/aalvaropc/pokedex/internal/infra/httpclient"
	"github.com/aalvaropc/pokedex/internal/ports"
)

type Client struct {
	endpoint string
	exec     *httpclient.Executor
	log      *slog.Logger
}

type Option func(*Client)

func WithExecutor(exec *httpclient.Executor) Option {
	return func(c *Client) { c.exec = exec }
}

func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

func New(endpoint string, opts ...Option) *Client {
	if strings.TrimSpace(endpoint) == "" {
		endpoint = domain.DefaultEndpoint
	}
	c := &Client{
		endpoint: endpoint,
		exec:     httpclient.NewExecutor(),
		log:      slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ ports.PokemonSource = (*Client)(nil)

func (c *Client) GetPokemon(ctx context.Context, id int, lang domain.LanguageID) (domain.Pokemon, error) {
	req, err := httpclient.BuildGraphQLRequest(ctx, c.endpoint, httpclient.GraphQLPayload{
		Query:         pokemonQuery,
		OperationName: operationName,
		Variables: map[string]any{
			"pokemon_id":  id,
			"language_id": int(lang),
		},
	})
	if err != nil {
		return domain.Pokemon{}, err
	}

	c.log.Debug("pokeapi.request", "endpoint", c.endpoint, "id", id, "language", int(lang))

	resp, err := c.exec.Do(ctx, req)
	if err != nil {
		c.log.Warn("pokeapi.transport_failed",
			"id", id,
			"kind", string(httpclient.Classify(err)),
			"err", err,
			"duration_ms", resp.Duration.Milliseconds(),
		)
		return domain.Pokemon{}, &domain.OpError{
			Op:   "pokeapi.get",
			Kind: domain.KindExecution,
			Path: c.endpoint,
			Err:  err,
		}
	}

	c.log.Debug("pokeapi.response",
		"id", id,
		"status", resp.Status,
		"body_bytes", len(resp.BodyBytes),
		"duration_ms", resp.Duration.Milliseconds(),
	)

	if resp.Status < 200 || resp.Status > 299 {
		return domain.Pokemon{}, &domain.OpError{
			Op:   "pokeapi.get",
			Kind: domain.KindExecution,
			Path: c.endpoint,
			Err:  fmt.Errorf("%w: unexpected status %d", domain.ErrExecution, resp.Status),
		}
	}
	if resp.Truncated {
		return domain.Pokemon{}, &domain.OpError{
			Op:   "pokeapi.get",
			Kind: domain.KindExecution,
			Path: c.endpoint,
			Err:  fmt.Errorf("%w: response body too large", domain.ErrExecution),
		}
	}

	return decode(resp.BodyBytes, id, c.endpoint)
}

func decode(body []byte, id int, endpoint string) (domain.Pokemon, error) {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return domain.Pokemon{}, &domain.OpError{
			Op:   "pokeapi.decode",
			Kind: domain.KindExecution,
			Path: endpoint,
			Err:  err,
		}
	}

	if msg, ok := graphQLError(doc); ok {
		return domain.Pokemon{}, &domain.OpError{
			Op:   "pokeapi.query",
			Kind: domain.KindExecution,
			Path: endpoint,
			Err:  fmt.Errorf("%w: %s", domain.ErrGraphQL, msg),
		}
	}

	var r response
	if err := json.Unmarshal(body, &r); err != nil {
		return domain.Pokemon{}, &domain.OpError{
			Op:   "pokeapi.decode",
			Kind: domain.KindExecution,
			Path: endpoint,
			Err:  err,
		}
	}

	if len(r.Data.Pokemon) == 0 {
		return domain.Pokemon{}, &domain.OpError{
			Op:   "pokeapi.get",
			Kind: domain.KindNotFound,
			Path: endpoint,
			Err:  fmt.Errorf("%w: pokemon %d", domain.ErrNotFound, id),
		}
	}

	return mapPokemon(r.Data.Pokemon[0]), nil
}

// graphQLError returns the first GraphQL error message, if the response carries one.
func graphQLError(doc any) (string, bool) {
	v, err := jsonpath.Get("$.errors[0].message", doc)
	if err != nil {
		return "", false
	}
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "unknown error", true
	}
	return s, true
}
