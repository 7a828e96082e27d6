package lexoffice

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

// The Lexoffice API is expected to answer fast, both connect and total
// timeouts are capped at five seconds.
const requestTimeout = 5 * time.Second

type client struct {
	httpClient *http.Client
	base       string
	token      string
}

func newClient(base, token string) *client {
	return &client{
		httpClient: &http.Client{
			Timeout: requestTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{Timeout: requestTimeout}).DialContext,
			},
		},
		base:  base,
		token: token,
	}
}

// send issues one request against the Lexoffice API and returns the raw
// JSON object body together with the HTTP status code. Transport
// failures and bodies that are no JSON object are errors, non-2xx
// statuses are not: the caller decides based on the status code.
// Requests are not retried, POST creates real resources.
func (c *client) send(ctx context.Context, path string, in interface{}, method string) (json.RawMessage, int, error) {
	var body []byte
	if in != nil {
		var err error
		if body, err = json.Marshal(in); err != nil {
			return nil, 0, errors.Wrap(err, "Failed marshal request body")
		}
	}

	link := c.base + path
	req, err := http.NewRequestWithContext(ctx, method, link, bytes.NewReader(body))
	if err != nil {
		return nil, 0, errors.Wrap(err, "Failed new request")
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache")
	req.ContentLength = int64(len(body))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "Failed do request %q", link)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, errors.Wrap(err, "Failed read all body")
	}

	var object map[string]json.RawMessage
	if err := json.Unmarshal(b, &object); err != nil {
		return nil, 0, errors.Errorf("Invalid response for %q: %s", link, b)
	}

	return b, resp.StatusCode, nil
}
