package httpx

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const apiKeyHeader = "X-CMC_PRO_API_KEY"

type Client struct {
	HTTP   *http.Client
	APIKey string
}

// envelopeStatus mirrors the status block every API envelope carries.
type envelopeStatus struct {
	Status struct {
		ErrorCode    int     `json:"error_code"`
		ErrorMessage *string `json:"error_message"`
	} `json:"status"`
}

// GetJSON issues a single GET against url and decodes the envelope into out.
// Outcomes are classified in priority order: transport failure, HTTP status,
// embedded envelope error code, body decode failure. Requests are single-shot.
func (c *Client) GetJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if c.APIKey != "" {
		req.Header.Set(apiKeyHeader, c.APIKey)
	}
	req.Header.Set("Accept", "application/json")

	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	defer resp.Body.Close()

	if err := classifyStatus(resp.StatusCode); err != nil {
		return err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	// The upstream can answer HTTP 200 with a logical error in the body, so
	// probe the status block before attempting the typed decode.
	var env envelopeStatus
	if err := json.Unmarshal(body, &env); err == nil && env.Status.ErrorCode != 0 {
		apiErr := &APIError{Code: env.Status.ErrorCode}
		if env.Status.ErrorMessage != nil {
			apiErr.Message = *env.Status.ErrorMessage
		}
		return apiErr
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &DecodingError{Err: err}
	}
	return nil
}
