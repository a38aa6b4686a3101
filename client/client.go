package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/url"
	"time"

	"github.com/oasislabs/decoder-client/errors"
	"github.com/oasislabs/decoder-client/log"
	"github.com/oasislabs/decoder-client/metrics"
	"github.com/oasislabs/decoder-client/payload"
	pkgerrors "github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// HttpClient is the basic interface for the
// underlying http client used by the Client
type HttpClient interface {
	Do(*http.Request) (*http.Response, error)
}

// Services are services required by the client
type Services struct {
	Logger     log.Logger
	Registerer prometheus.Registerer
}

// Props are the properties that define
// the behaviour of the client
type Props struct {
	// URL is the decoder endpoint the payload is posted to
	URL string

	// Timeout bounds the whole request. Zero means no timeout
	Timeout time.Duration
}

// Deps are the required instantiated dependencies
// that a Client requires
type Deps struct {
	Logger  log.Logger
	Client  HttpClient
	Metrics *metrics.RequestMetrics
}

// NewClient creates a new decoder client
func NewClient(services *Services, props *Props) *Client {
	return NewClientWithDeps(&Deps{
		Logger:  services.Logger,
		Client:  &http.Client{Timeout: props.Timeout},
		Metrics: metrics.NewRequestMetrics(services.Registerer, "decoder_client"),
	}, props)
}

// NewClientWithDeps creates a new client using the external
// dependencies provided
func NewClientWithDeps(deps *Deps, props *Props) *Client {
	return &Client{
		url:     props.URL,
		client:  deps.Client,
		logger:  deps.Logger.ForClass("client", "Client"),
		metrics: deps.Metrics,
	}
}

// Client posts payloads to the decoder. A request is sent exactly
// once, failures are never retried
type Client struct {
	url     string
	client  HttpClient
	logger  log.Logger
	metrics *metrics.RequestMetrics
}

func (c *Client) Name() string {
	return "client.Client"
}

// Send posts p as a JSON body and returns the decoder's response.
// Any status code is a valid response, only failures to create,
// deliver or read the request are returned as errors
func (c *Client) Send(ctx context.Context, p *payload.Payload) (*Response, error) {
	req, err := c.createRequest(ctx, p)
	if err != nil {
		c.logger.Warn(ctx, "failed to create http request", log.MapFields{
			"call_type": "SendRequestFailure",
			"url":       c.url,
			"err":       err.Error(),
		})
		return nil, err
	}

	c.logger.Debug(ctx, "attempt to deliver http request", log.MapFields{
		"call_type": "SendRequestAttempt",
		"method":    req.Method,
		"url":       c.url,
	})

	res, err := c.instrumentedRequest(ctx, req)
	if err != nil {
		c.logger.Warn(ctx, "failed to deliver http request", log.MapFields{
			"call_type": "SendRequestFailure",
			"method":    req.Method,
			"url":       c.url,
			"err":       err.Error(),
		})
		return nil, err
	}

	c.logger.Debug(ctx, "http request delivered", log.MapFields{
		"call_type":  "SendRequestSuccess",
		"method":     req.Method,
		"url":        c.url,
		"statusCode": res.StatusCode,
	})

	return res, nil
}

func (c *Client) createRequest(ctx context.Context, p *payload.Payload) (*http.Request, error) {
	u, err := url.Parse(c.url)
	if err != nil {
		return nil, errors.New(errors.ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, errors.New(errors.ErrInvalidURL,
			pkgerrors.Errorf("unsupported scheme %q in %s", u.Scheme, c.url))
	}

	body, err := json.Marshal(p)
	if err != nil {
		return nil, errors.New(errors.ErrSerializePayload, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(body))
	if err != nil {
		return nil, errors.New(errors.ErrNewHttpRequest, err)
	}

	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func (c *Client) instrumentedRequest(ctx context.Context, req *http.Request) (*Response, error) {
	timer := c.metrics.RequestTimer(req.Method)
	defer timer.ObserveDuration()

	res, err := c.request(req)
	if err != nil {
		c.metrics.RequestCounter(req.Method, "fail").Inc()
		return nil, err
	}

	c.metrics.RequestCounter(req.Method, metrics.StatusClass(res.StatusCode)).Inc()
	return res, nil
}

func (c *Client) request(req *http.Request) (*Response, error) {
	res, err := c.client.Do(req)
	if err != nil {
		return nil, errors.New(errors.ErrSendHttpRequest, err)
	}

	defer func() { _ = res.Body.Close() }()

	body, err := ioutil.ReadAll(res.Body)
	if err != nil {
		return nil, errors.New(errors.ErrReadHttpResponse, err)
	}

	return &Response{StatusCode: res.StatusCode, Body: string(body)}, nil
}
