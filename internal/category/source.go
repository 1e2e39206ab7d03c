package category

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/odalys-dev/pennybook/internal/ledger"
	"github.com/odalys-dev/pennybook/internal/shared/apperrors"
)

const fetchTimeout = 10 * time.Second

// Source supplies a taxonomy. Implementations may fail; the resolver handles
// degradation.
type Source interface {
	Fetch(ctx context.Context) (Taxonomy, error)
}

// HTTPSource fetches the taxonomy as a JSON document keyed by transaction
// type, each entry `{value, label, emoji}`.
type HTTPSource struct {
	url        string
	httpClient *http.Client
}

// NewHTTPSource creates a taxonomy source for the given URL.
func NewHTTPSource(url string) *HTTPSource {
	return &HTTPSource{
		url: url,
		httpClient: &http.Client{
			Timeout: fetchTimeout,
		},
	}
}

// Fetch retrieves and decodes the taxonomy document.
func (s *HTTPSource) Fetch(ctx context.Context) (Taxonomy, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.StorageUnavailable("category config fetch", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, apperrors.StorageUnavailable(
			fmt.Sprintf("category config fetch: unexpected status %d: %s", resp.StatusCode, string(body)), nil)
	}

	var raw map[string][]Category
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, apperrors.Format(fmt.Sprintf("category config: %v", err))
	}

	taxonomy := make(Taxonomy, len(raw))
	for key, cats := range raw {
		typ := ledger.Type(key)
		if !typ.IsValid() {
			continue
		}
		taxonomy[typ] = cats
	}
	if len(taxonomy) == 0 {
		return nil, apperrors.Format("category config: no income or expense taxonomy present")
	}
	return taxonomy, nil
}
