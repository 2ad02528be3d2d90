package faucet

import (
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/pkg/polylog"
)

// DefaultRequestTimeout bounds a single credit request when the caller's
// context has no earlier deadline.
const DefaultRequestTimeout = 100 * time.Second

// Config defines the configuration of a faucet client.
// Loaded via viper; uses mapstructure tags as keys.
type Config struct {
	// CreditURL is the fully-qualified faucet endpoint which accepts
	// POST {"denom": ..., "address": ...} requests.
	CreditURL string `mapstructure:"faucet_url"`

	// RequestTimeout bounds a single credit request.
	RequestTimeout time.Duration `mapstructure:"faucet_request_timeout"`
}

// Validate checks that CreditURL is an absolute http(s) URL and that the
// timeout is not negative.
func (config *Config) Validate() error {
	creditURL, err := url.Parse(config.CreditURL)
	if err != nil {
		return ErrFaucetInvalidConfig.Wrapf("credit URL %q: %v", config.CreditURL, err)
	}
	if creditURL.Scheme != "http" && creditURL.Scheme != "https" {
		return ErrFaucetInvalidConfig.Wrapf("credit URL %q MUST use http or https", config.CreditURL)
	}
	if creditURL.Host == "" {
		return ErrFaucetInvalidConfig.Wrapf("credit URL %q has no host", config.CreditURL)
	}
	if config.RequestTimeout < 0 {
		return ErrFaucetInvalidConfig.Wrapf("request timeout MUST NOT be negative, got %s", config.RequestTimeout)
	}
	return nil
}

// ClientOptionFn defines a function that configures a faucet client.
type ClientOptionFn func(client *Client)

// WithConfig sets the faucet client's configuration object.
func WithConfig(config *Config) ClientOptionFn {
	return func(client *Client) {
		client.config = config
	}
}

// WithCreditURL overrides the credit URL of the configuration.
func WithCreditURL(creditURL string) ClientOptionFn {
	return func(client *Client) {
		client.config.CreditURL = creditURL
	}
}

// WithLogger sets the logger used to record requests and responses.
func WithLogger(logger polylog.Logger) ClientOptionFn {
	return func(client *Client) {
		client.logger = logger
	}
}

// WithRestyClient replaces the underlying HTTP client, e.g. to set a custom
// transport.
func WithRestyClient(restyClient *resty.Client) ClientOptionFn {
	return func(client *Client) {
		client.httpClient = restyClient
	}
}
