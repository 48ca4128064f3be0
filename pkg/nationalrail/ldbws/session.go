// Package ldbws implements nationalrail.BoardProvider against National
// Rail's Live Departure Boards Web Service (LDBWS), a SOAP service also
// known as Darwin. The SOAP envelope handling is delegated to
// github.com/hooklift/gowsdl/soap; this package only decides which
// operation to call and what parameters to send.
package ldbws

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/hooklift/gowsdl/soap"
	"github.com/rs/zerolog"
)

// Environment fallbacks for Config fields. They are read once, at
// session construction, never afterwards.
const (
	EnvWSDL        = "NRE_LDBWS_WSDL"
	EnvAccessToken = "NRE_LDBWS_API_KEY"
)

// DefaultTimeout applies to the WSDL fetch and to each SOAP call when
// Config.Timeout is unset.
const DefaultTimeout = 5 * time.Second

// Config holds configuration for an LDBWS session. WSDL and AccessToken
// fall back to their environment variables when empty.
type Config struct {
	// WSDL is the URL of the service descriptor. Keep the ?ver= query of
	// the registration email on the URL so the server returns the schema
	// version this package expects. Falls back to NRE_LDBWS_WSDL.
	WSDL string

	// AccessToken is the opaque LDBWS token issued on registration. Falls
	// back to NRE_LDBWS_API_KEY.
	AccessToken string

	// Timeout bounds the WSDL fetch and each SOAP call. Default 5s.
	Timeout time.Duration

	// HTTPClient overrides the transport used for the WSDL fetch and the
	// SOAP calls. When set, its own timeout wins over Timeout.
	HTTPClient *http.Client

	// Logger for session operations.
	Logger zerolog.Logger
}

// Session is an authenticated LDBWS client.
//
// Construct one per application: New fetches and parses the remote WSDL,
// which takes seconds. A Session is immutable after construction and
// safe for concurrent use; the underlying SOAP client holds only an
// http.Client and the fixed access-token header.
type Session struct {
	client *soap.Client
	logger zerolog.Logger
}

// New creates a session. It resolves the WSDL URL and access token from
// cfg or the environment, fetches the WSDL once to discover the SOAP
// endpoint, and registers the access-token header that rides on every
// call for the session's lifetime.
func New(cfg Config) (*Session, error) {
	wsdlURL := cfg.WSDL
	if wsdlURL == "" {
		wsdlURL = os.Getenv(EnvWSDL)
	}
	if wsdlURL == "" {
		return nil, &ConfigError{Setting: "WSDL", Env: EnvWSDL}
	}

	token := cfg.AccessToken
	if token == "" {
		token = os.Getenv(EnvAccessToken)
	}
	if token == "" {
		return nil, &ConfigError{Setting: "AccessToken", Env: EnvAccessToken}
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	endpoint, err := resolveEndpoint(httpClient, wsdlURL)
	if err != nil {
		return nil, fmt.Errorf("resolving LDBWS endpoint: %w", err)
	}

	client := soap.NewClient(endpoint, soap.WithHTTPClient(httpClient))
	client.AddHeader(&accessToken{TokenValue: token})

	cfg.Logger.Debug().
		Str("endpoint", endpoint).
		Msg("LDBWS session ready")

	return &Session{
		client: client,
		logger: cfg.Logger,
	}, nil
}

// ConfigError reports a session setting that was provided neither in
// Config nor through its environment fallback.
type ConfigError struct {
	Setting string
	Env     string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("ldbws: %s must be set in Config or via the %s environment variable", e.Setting, e.Env)
}
