package tracker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"code.cloudfoundry.org/lager"
	"github.com/pkg/errors"
)

const (
	DefaultTimeout       = 30 * time.Second
	DefaultRetryAttempts = 5
	DefaultRetryBackoff  = 200 * time.Millisecond
)

// Config allows tuning of the tracker client. You must set APIAddress and
// Token.
type Config struct {
	// APIAddress is the base URL of the facility tracker API
	APIAddress string
	// Token is the bearer token for the tracker API
	Token string
	// Timeout bounds each API call
	Timeout time.Duration
	// RetryAttempts is the ceiling for optimistic-concurrency retries
	RetryAttempts int
	// RetryBackoff is the wait between optimistic-concurrency retries
	RetryBackoff time.Duration
	// Location is the timezone charge timestamps are rendered in
	Location *time.Location
	// Logger overrides the default logger
	Logger lager.Logger
	// HTTPClient overrides the default http client, used in tests
	HTTPClient *http.Client
}

// Client is a facility tracker API client. It covers usage-event mutation,
// resource pricing lookup and charge posting, each against the same bearer
// token.
type Client struct {
	apiAddress    string
	token         string
	retryAttempts int
	retryBackoff  time.Duration
	location      *time.Location
	httpClient    *http.Client
	logger        lager.Logger
}

// New creates a new tracker client for the given config.
func New(cfg Config) (*Client, error) {
	if cfg.APIAddress == "" {
		return nil, fmt.Errorf("tracker.New: must supply an APIAddress")
	}
	if cfg.Token == "" {
		return nil, fmt.Errorf("tracker.New: must supply a Token")
	}
	if cfg.Logger == nil {
		cfg.Logger = lager.NewLogger("tracker")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RetryAttempts <= 0 {
		cfg.RetryAttempts = DefaultRetryAttempts
	}
	if cfg.RetryBackoff <= 0 {
		cfg.RetryBackoff = DefaultRetryBackoff
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		apiAddress:    strings.TrimSuffix(cfg.APIAddress, "/"),
		token:         cfg.Token,
		retryAttempts: cfg.RetryAttempts,
		retryBackoff:  cfg.RetryBackoff,
		location:      cfg.Location,
		httpClient:    httpClient,
		logger:        cfg.Logger.Session("client"),
	}, nil
}

// do performs one authenticated JSON request and returns the response
// status and body. Callers map statuses onto the error taxonomy.
func (c *Client) do(ctx context.Context, method, path string, body interface{}) (int, []byte, error) {
	u := c.apiAddress + path
	var reqBody *bytes.Buffer
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return 0, nil, errors.Wrapf(err, "error encoding %s %s body", method, path)
		}
		reqBody = bytes.NewBuffer(encoded)
	} else {
		reqBody = &bytes.Buffer{}
	}
	c.logger.Debug("request", lager.Data{
		"method": method,
		"path":   path,
	})
	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return 0, nil, errors.Wrapf(err, "error building %s %s", method, path)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, errors.Wrapf(err, "error requesting %s %s", method, path)
	}
	defer resp.Body.Close()
	resBody, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, errors.Wrapf(err, "error reading %s %s body", method, path)
	}
	return resp.StatusCode, resBody, nil
}

func success(status int) bool {
	return status >= 200 && status < 300
}
