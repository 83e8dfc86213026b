package cubejs

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/semlayer/go-cubejs/auth"
	"github.com/semlayer/go-cubejs/models"
)

const metaPath = "/cubejs-api/v1/meta"

// Meta fetches the cube metadata: cube names plus their measures,
// dimensions and segments. Responses are classified and retried exactly
// like load responses.
func (c *Client) Meta(ctx context.Context, creds auth.Auth) (*models.Meta, error) {
	c.logger.Debug("loading cube metadata", "host", creds.Host)

	var meta *models.Meta
	err := c.retryPolicy.Do(ctx, c.logger, func() error {
		m, err := c.doMeta(ctx, creds)
		if err != nil {
			return err
		}
		meta = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return meta, nil
}

func (c *Client) doMeta(ctx context.Context, creds auth.Auth) (*models.Meta, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, apiURL(creds.Host, metaPath), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", creds.Token)

	respBody, err := c.send(req)
	if err != nil {
		return nil, err
	}

	var meta models.Meta
	if err := json.Unmarshal(respBody, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}
