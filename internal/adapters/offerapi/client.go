package offerapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"offerdirectory/internal/domain"
)

type httpFetcher struct {
	client *http.Client
	url    string
}

// NewHTTPFetcher returns a fetcher that issues a plain GET to listURL and
// decodes the `data` array of the response body.
func NewHTTPFetcher(client *http.Client, listURL string) domain.OfferFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpFetcher{client: client, url: listURL}
}

func (f *httpFetcher) Fetch(ctx context.Context) ([]domain.Offer, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch offer list: %w", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: offer list returned status: %d", domain.ErrUpstream, resp.StatusCode)
	}

	var data domain.OfferListResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("%w: failed to decode offer list: %w", domain.ErrUpstream, err)
	}
	if data.Data == nil {
		return []domain.Offer{}, nil
	}
	return data.Data, nil
}
