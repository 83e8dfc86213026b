package cubejs

import (
	e "github.com/semlayer/go-cubejs/errors"
	"github.com/semlayer/go-cubejs/log"
	"github.com/semlayer/go-cubejs/retry"
	"go.uber.org/zap"
	"net/http"
	"time"
)

const DefaultRequestTimeout = 60 * time.Second

type ClientConfig struct {
	httpClient     *http.Client
	requestTimeout time.Duration
	retryPolicy    retry.Policy
	logger         log.Logger
}

func (cfg ClientConfig) HTTPClient() *http.Client {
	return cfg.httpClient
}

func (cfg ClientConfig) RequestTimeout() time.Duration {
	return cfg.requestTimeout
}

func (cfg ClientConfig) RetryPolicy() retry.Policy {
	return cfg.retryPolicy
}

func (cfg ClientConfig) Logger() log.Logger {
	return cfg.logger
}

func (cfg *ClientConfig) WithHTTPClient(httpClient *http.Client) *ClientConfig {
	cfg.httpClient = httpClient
	return cfg
}

func (cfg *ClientConfig) WithRequestTimeout(requestTimeout time.Duration) *ClientConfig {
	cfg.requestTimeout = requestTimeout
	return cfg
}

func (cfg *ClientConfig) WithRetryPolicy(retryPolicy retry.Policy) *ClientConfig {
	cfg.retryPolicy = retryPolicy
	return cfg
}

// WithRequestLogging wraps the transport so every request and response is
// logged at debug level. The configured http client is copied, a client
// shared with other code keeps its original transport.
func (cfg *ClientConfig) WithRequestLogging() *ClientConfig {
	httpClient := *cfg.httpClient
	httpClient.Transport = log.NewLoggingRoundTripper(httpClient.Transport, cfg.logger)
	cfg.httpClient = &httpClient
	return cfg
}

// NewClient builds a Client from the config. A retry policy without a
// predicate falls back to retrying the transient API errors only.
func (cfg ClientConfig) NewClient() *Client {
	retryPolicy := cfg.retryPolicy
	if retryPolicy.ShouldRetry == nil {
		retryPolicy.ShouldRetry = e.IsRetryable
	}
	return &Client{
		httpClient:     cfg.httpClient,
		requestTimeout: cfg.requestTimeout,
		retryPolicy:    retryPolicy,
		logger:         cfg.logger,
	}
}

func NewClientConfig() (*ClientConfig, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return NewClientConfigWithLogger(log.NewZapLogger(logger)), nil
}

func NewClientConfigWithLogger(logger log.Logger) *ClientConfig {
	return &ClientConfig{
		httpClient:     &http.Client{},
		requestTimeout: DefaultRequestTimeout,
		retryPolicy:    retry.DefaultPolicy(),
		logger:         logger,
	}
}
