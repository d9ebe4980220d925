package bustime

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// KeyEnvVar is the environment variable the API key is conventionally read
// from, matching the deployment convention of the original route tracker.
const KeyEnvVar = "BTRK"

const defaultTimeout = 30 * time.Second

// Client issues requests against one Bustime API deployment. It carries only
// configuration: the base URL, the key and the HTTP client. No response or
// request state is retained between calls, so a single Client is safe to
// share across goroutines; serialization of in-flight requests is up to the
// configured http.Client.
//
// The key is an opaque credential. It appears in request URLs and nowhere
// else: errors and log lines carry masked URLs only.
type Client struct {
	baseURL    string
	key        string
	httpClient *http.Client
}

// Option customizes a Client at construction time.
type Option func(*Client)

// WithBaseURL points the client at a different API base, e.g. a test server.
// The base must end with a slash.
func WithBaseURL(base string) Option {
	return func(c *Client) { c.baseURL = base }
}

// WithHTTPClient swaps the underlying HTTP client. This is where timeouts and
// transport-level policy live.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient builds a client for the production API with a 30s timeout.
func NewClient(key string, opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		key:        key,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewClientFromEnv builds a client whose key comes from the BTRK environment
// variable.
func NewClientFromEnv(opts ...Option) *Client {
	return NewClient(os.Getenv(KeyEnvVar), opts...)
}

// fetch runs one build-send-decode cycle. Every failure propagates unchanged
// to the caller; nothing is retried.
func (c *Client) fetch(spec RequestSpec, out any) error {
	requestURL, err := BuildURL(c.baseURL, c.key, spec)
	if err != nil {
		return err
	}
	log.Debug().Str("url", MaskKey(requestURL)).Msg("bustime request")

	body, err := c.get(requestURL)
	if err != nil {
		return err
	}
	return decodeEnvelope(body, spec.Endpoint.resource(), out)
}

// Routes fetches every bus line in service.
func (c *Client) Routes() ([]BusLine, error) {
	var routes []BusLine
	spec := RequestSpec{Endpoint: EndpointRoutes, JSON: true}
	if err := c.fetch(spec, &routes); err != nil {
		return nil, err
	}
	return routes, nil
}

// Directions fetches the directions travelled by routeCode.
func (c *Client) Directions(routeCode string) ([]Direction, error) {
	var directions []Direction
	spec := RequestSpec{
		Endpoint: EndpointDirections,
		Params:   Params(P(ParamRoute, routeCode)),
		JSON:     true,
	}
	if err := c.fetch(spec, &directions); err != nil {
		return nil, err
	}
	return directions, nil
}

// Stops fetches the stops along routeCode in the named direction.
func (c *Client) Stops(routeCode, direction string) ([]Stop, error) {
	var stops []Stop
	spec := RequestSpec{
		Endpoint: EndpointStops,
		Params: Params(
			P(ParamRoute, routeCode),
			P(ParamDirection, direction),
		),
		JSON: true,
	}
	if err := c.fetch(spec, &stops); err != nil {
		return nil, err
	}
	return stops, nil
}

// Predictions fetches up to limit predictions for the given stops and routes.
// stopIDs and routeCodes are comma separated lists, as the API expects.
func (c *Client) Predictions(stopIDs, routeCodes string, limit int) ([]Prediction, error) {
	var predictions []Prediction
	spec := RequestSpec{
		Endpoint: EndpointPredictions,
		Params: Params(
			P(ParamStopID, stopIDs),
			P(ParamRoute, routeCodes),
			P(ParamLimit, strconv.Itoa(limit)),
		),
		JSON: true,
	}
	if err := c.fetch(spec, &predictions); err != nil {
		return nil, err
	}
	return predictions, nil
}
