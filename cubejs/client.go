package cubejs

import (
	"bytes"
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"github.com/semlayer/go-cubejs/auth"
	"github.com/semlayer/go-cubejs/log"
	"github.com/semlayer/go-cubejs/models"
	"github.com/semlayer/go-cubejs/retry"
)

const loadPath = "/cubejs-api/v1/load"

// Client talks to the Cube REST API. It is safe for concurrent use,
// credentials travel with each call so a single client can serve
// deployments with per tenant tokens.
type Client struct {
	httpClient     *http.Client
	requestTimeout time.Duration
	retryPolicy    retry.Policy
	logger         log.Logger
}

type loadRequest struct {
	Query *models.Query `json:"query"`
}

// Load validates query, posts it to the load route and returns the parsed
// result set. A query still warming up ("Continue wait") and a 502 from
// the gateway are retried per the client retry policy, every other failure
// is returned immediately. Each attempt gets its own request timeout, ctx
// bounds the whole call including the waits in between.
func (c *Client) Load(ctx context.Context, creds auth.Auth, query *models.Query) (*models.ResultSet, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	body, err := json.Marshal(loadRequest{Query: query})
	if err != nil {
		return nil, err
	}

	c.logger.Debug("loading query results", "host", creds.Host, "query", string(body))

	var result *models.ResultSet
	err = c.retryPolicy.Do(ctx, c.logger, func() error {
		resultSet, err := c.doLoad(ctx, creds, body)
		if err != nil {
			return err
		}
		result = resultSet
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) doLoad(ctx context.Context, creds auth.Auth, body []byte) (*models.ResultSet, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodPost, apiURL(creds.Host, loadPath), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", creds.Token)
	req.Header.Set("Content-Type", "application/json")

	respBody, err := c.send(req)
	if err != nil {
		return nil, err
	}

	var result models.ResultSet
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// send performs the request, drains the body and classifies the response.
// It returns the body only for responses the classifier accepted.
func (c *Client) send(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if err := classifyResponse(resp.StatusCode, string(body)); err != nil {
		return nil, err
	}
	return body, nil
}

func apiURL(host, path string) string {
	return strings.TrimSuffix(host, "/") + path
}
