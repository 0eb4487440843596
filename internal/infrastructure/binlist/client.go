package binlist

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/finverse-labs/cardinfo-service/internal/application"
	"github.com/finverse-labs/cardinfo-service/internal/config"
)

type HTTPLookupClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg config.LookupConfig) application.LookupClient {
	return &HTTPLookupClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.ConnTimeout,
		},
	}
}

// Lookup issues exactly one GET for the given BIN. The BIN is used as
// provided; digit count is not enforced here. There is no retry and no
// caching; the only timeout is the one on the underlying http.Client.
func (c *HTTPLookupClient) Lookup(ctx context.Context, bin string) (*application.BinRecord, error) {
	url := fmt.Sprintf("%s/%s", c.baseURL, bin)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &LookupError{
			Kind:    KindTransport,
			Message: "bin lookup service unreachable",
			Err:     err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, &LookupError{
			Kind:       KindNotFound,
			StatusCode: http.StatusNotFound,
			Message:    fmt.Sprintf("no issuer record found for BIN %s", bin),
		}
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &LookupError{
			Kind:       KindUpstreamStatus,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("bin lookup service returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))),
		}
	}

	var record application.BinRecord
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return nil, &LookupError{
			Kind:    KindBadPayload,
			Message: "bin lookup service returned a malformed JSON body",
			Err:     err,
		}
	}

	return &record, nil
}
