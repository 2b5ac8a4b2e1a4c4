package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/aalvaropc/pokedex/internal/domain"
)

// GraphQLPayload is the body of a GraphQL-over-HTTP POST.
type GraphQLPayload struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName,omitempty"`
	Variables     map[string]any `json:"variables,omitempty"`
}

// BuildGraphQLRequest builds a JSON POST for endpoint carrying payload.
func BuildGraphQLRequest(ctx context.Context, endpoint string, payload GraphQLPayload) (*http.Request, error) {
	if strings.TrimSpace(endpoint) == "" {
		return nil, &domain.OpError{
			Op:   "httpclient.build",
			Kind: domain.KindInvalidConfig,
			Err:  domain.ErrInvalidConfig,
		}
	}
	if strings.TrimSpace(payload.Query) == "" {
		return nil, &domain.OpError{
			Op:   "httpclient.build",
			Kind: domain.KindInvalidConfig,
			Path: endpoint,
			Err:  domain.ErrInvalidConfig,
		}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "httpclient.build",
			Kind: domain.KindInvalidConfig,
			Path: endpoint,
			Err:  err,
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &domain.OpError{
			Op:   "httpclient.build",
			Kind: domain.KindInvalidConfig,
			Path: endpoint,
			Err:  err,
		}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return req, nil
}
