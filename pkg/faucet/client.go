// Package faucet implements a client for testnet faucets which credit an
// address with tokens of a given denom upon a JSON POST request.
package faucet

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/pkg/logging"
	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/pkg/polylog"
	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/pkg/polylog/polyzero"
)

// CreditRequest is the JSON body of a credit request.
type CreditRequest struct {
	Denom   string `json:"denom"`
	Address string `json:"address"`
}

// CreditResponse is the raw faucet response. The body format is faucet
// specific and is not decoded.
type CreditResponse struct {
	StatusCode int
	Status     string
	Body       []byte
	Duration   time.Duration
}

// Client sends credit requests to a faucet.
type Client struct {
	config     *Config
	httpClient *resty.Client
	logger     polylog.Logger
}

// NewClient returns a new faucet Client, configured according to the
// provided options.
func NewClient(opts ...ClientOptionFn) (*Client, error) {
	client := &Client{
		config: &Config{RequestTimeout: DefaultRequestTimeout},
	}

	for _, opt := range opts {
		opt(client)
	}

	if err := client.config.Validate(); err != nil {
		return nil, err
	}

	if client.logger == nil {
		client.logger = polyzero.NewLogger(polyzero.WithLevel(polyzero.InfoLevel))
	}
	client.logger = logging.ForComponent(client.logger, logging.ComponentFaucetClient)

	if client.httpClient == nil {
		client.httpClient = resty.New()
	}
	client.httpClient.
		SetTimeout(client.config.RequestTimeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return client, nil
}

// CreditURL returns the configured credit endpoint.
func (c *Client) CreditURL() string {
	return c.config.CreditURL
}

// Credit asks the faucet to send tokens of denom to address. Any non-2xx
// response is returned as ErrFaucetUnexpectedStatus along with the response.
func (c *Client) Credit(ctx context.Context, denom, address string) (*CreditResponse, error) {
	if denom == "" || address == "" {
		return nil, ErrFaucetInvalidRequest.Wrapf("denom %q and address %q MUST be set", denom, address)
	}

	logger := c.logger.With(
		logging.FieldDenom, denom,
		logging.FieldAddress, address,
		logging.FieldURL, c.config.CreditURL,
	)
	logger.Debug().Msg("requesting faucet credit")

	httpRes, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(CreditRequest{Denom: denom, Address: address}).
		Post(c.config.CreditURL)
	if err != nil {
		return nil, ErrFaucetRequest.Wrap(err.Error())
	}

	creditRes := &CreditResponse{
		StatusCode: httpRes.StatusCode(),
		Status:     httpRes.Status(),
		Body:       httpRes.Body(),
		Duration:   httpRes.Time(),
	}

	logger.Debug().
		Int(logging.FieldHTTPStatus, creditRes.StatusCode).
		Dur(logging.FieldDuration, creditRes.Duration).
		Msg("faucet responded")

	if !httpRes.IsSuccess() {
		return creditRes, ErrFaucetUnexpectedStatus.Wrapf("%s: %s", creditRes.Status, creditRes.Body)
	}

	return creditRes, nil
}
