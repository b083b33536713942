package httpx_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"marketflow/internal/infrastructure/httpx"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func httpClient(resBody string, code int) *http.Client {
	return &http.Client{
		Timeout: 2 * time.Second,
		Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: code,
				Body:       io.NopCloser(strings.NewReader(resBody)),
				Header:     make(http.Header),
				Request:    r,
			}, nil
		}),
	}
}

const sampleOK = `{"data": [{"id": 1, "name": "Binance", "slug": "binance"}], "status": {"error_code": 0}}`

type mapEnvelope struct {
	Data []struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
		Slug string `json:"slug"`
	} `json:"data"`
}

func TestGetJSON_Success(t *testing.T) {
	var seen http.Header
	client := &http.Client{
		Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			seen = r.Header
			return &http.Response{
				StatusCode: 200,
				Body:       io.NopCloser(strings.NewReader(sampleOK)),
				Header:     make(http.Header),
			}, nil
		}),
	}
	c := &httpx.Client{HTTP: client, APIKey: "test-key"}

	var out mapEnvelope
	err := c.GetJSON(context.Background(), "https://example.com/v1/exchange/map", &out)
	require.NoError(t, err)
	require.Len(t, out.Data, 1)
	require.Equal(t, "Binance", out.Data[0].Name)
	require.Equal(t, "test-key", seen.Get("X-CMC_PRO_API_KEY"))
	require.Equal(t, "application/json", seen.Get("Accept"))
}

func TestGetJSON_TransportFailure(t *testing.T) {
	client := &http.Client{
		Transport: roundTripFunc(func(*http.Request) (*http.Response, error) {
			return nil, errors.New("connection refused")
		}),
	}
	c := &httpx.Client{HTTP: client}

	var out mapEnvelope
	err := c.GetJSON(context.Background(), "https://example.com/v1/exchange/map", &out)
	require.ErrorIs(t, err, httpx.ErrInvalidResponse)
}

func TestGetJSON_StatusMapping(t *testing.T) {
	cases := []struct {
		code int
		want error
	}{
		{400, httpx.ErrBadRequest},
		{401, httpx.ErrUnauthorized},
		{403, httpx.ErrForbidden},
		{404, httpx.ErrNotFound},
		{500, httpx.ErrServerError},
		{503, httpx.ErrServerError},
	}
	for _, tc := range cases {
		c := &httpx.Client{HTTP: httpClient(`{}`, tc.code)}
		var out mapEnvelope
		err := c.GetJSON(context.Background(), "https://example.com/x", &out)
		require.ErrorIs(t, err, tc.want, "status %d", tc.code)
	}
}

func TestGetJSON_UnexpectedStatus(t *testing.T) {
	c := &httpx.Client{HTTP: httpClient(`{}`, 418)}
	var out mapEnvelope
	err := c.GetJSON(context.Background(), "https://example.com/x", &out)
	var custom *httpx.CustomError
	require.ErrorAs(t, err, &custom)
	require.Contains(t, custom.Message, "418")
}

func TestGetJSON_EmbeddedAPIError(t *testing.T) {
	body := `{"data": null, "status": {"error_code": 1002, "error_message": "API key missing."}}`
	c := &httpx.Client{HTTP: httpClient(body, 200)}
	var out mapEnvelope
	err := c.GetJSON(context.Background(), "https://example.com/x", &out)

	var apiErr *httpx.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 1002, apiErr.Code)
	require.Equal(t, "API key missing.", apiErr.Message)
}

func TestGetJSON_MalformedBody(t *testing.T) {
	c := &httpx.Client{HTTP: httpClient(`not json`, 200)}
	var out mapEnvelope
	err := c.GetJSON(context.Background(), "https://example.com/x", &out)

	var decErr *httpx.DecodingError
	require.ErrorAs(t, err, &decErr)
	require.Error(t, decErr.Err)
}
