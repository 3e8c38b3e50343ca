package printcloud

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"time"

	"code.cloudfoundry.org/lager"
	"github.com/makerlabs/print-billing/eventio"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

const (
	DefaultPageSize = 25
	DefaultTimeout  = 30 * time.Second
)

// Config allows tuning of the print cloud client. You must set APIAddress,
// Username and Password.
type Config struct {
	// APIAddress is the base URL of the vendor API
	APIAddress string
	// Username and Password are exchanged for a bearer token via the
	// resource-owner password-credential grant
	Username string
	Password string
	// PageSize dictates how many jobs are requested per page
	PageSize int
	// Timeout bounds each API call
	Timeout time.Duration
	// Logger overrides the default logger
	Logger lager.Logger
	// HTTPClient overrides the token-authenticated client, used in tests
	HTTPClient *http.Client
}

// Client is a print cloud API client. It holds an auto-refreshing bearer
// token obtained at construction time.
type Client struct {
	apiAddress string
	pageSize   int
	httpClient *http.Client
	logger     lager.Logger
}

// New creates a new print cloud client, performing the password-credential
// token exchange. A failed login returns an AuthError.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.Logger == nil {
		cfg.Logger = lager.NewLogger("printcloud")
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	client := &Client{
		apiAddress: strings.TrimSuffix(cfg.APIAddress, "/"),
		pageSize:   cfg.PageSize,
		logger:     cfg.Logger.Session("client"),
	}
	if cfg.HTTPClient != nil {
		client.httpClient = cfg.HTTPClient
		return client, nil
	}
	if cfg.APIAddress == "" {
		return nil, fmt.Errorf("printcloud.New: must supply an APIAddress")
	}
	conf := &oauth2.Config{
		Endpoint: oauth2.Endpoint{
			TokenURL:  client.apiAddress + "/api/auth/token/",
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
	authCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()
	token, err := conf.PasswordCredentialsToken(authCtx, cfg.Username, cfg.Password)
	if err != nil {
		return nil, &eventio.AuthError{Err: err}
	}
	client.httpClient = oauth2.NewClient(ctx, conf.TokenSource(ctx, token))
	client.httpClient.Timeout = cfg.Timeout
	return client, nil
}

// get queries the API and decodes the response JSON into target. Transport
// errors and non-success statuses are returned as FetchError.
func (c *Client) get(ctx context.Context, path string, query url.Values, target interface{}) error {
	u := c.apiAddress + path
	if len(query) > 0 {
		u = u + "?" + query.Encode()
	}
	c.logger.Debug("fetching", lager.Data{
		"url": u,
	})
	req, err := http.NewRequestWithContext(ctx, "GET", u, nil)
	if err != nil {
		return &eventio.FetchError{URL: u, Err: err}
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &eventio.FetchError{URL: u, Err: err}
	}
	defer resp.Body.Close()
	resBody, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return &eventio.FetchError{URL: u, Err: errors.Wrap(err, "reading body")}
	}
	if resp.StatusCode != http.StatusOK {
		return &eventio.FetchError{URL: u, StatusCode: resp.StatusCode}
	}
	if err := json.Unmarshal(resBody, target); err != nil {
		return &eventio.FetchError{URL: u, Err: errors.Wrap(err, "unmarshalling")}
	}
	return nil
}
