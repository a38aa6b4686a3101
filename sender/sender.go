package sender

import (
	"context"
	"fmt"
	"io"

	"github.com/oasislabs/decoder-client/client"
	"github.com/oasislabs/decoder-client/log"
	"github.com/oasislabs/decoder-client/payload"
)

// Client sends a payload to the decoder
type Client interface {
	Send(ctx context.Context, p *payload.Payload) (*client.Response, error)
}

// Builder composes the payload to send
type Builder interface {
	Build(ctx context.Context) (*payload.Payload, error)
}

// Deps are the dependencies of a Sender
type Deps struct {
	Logger  log.Logger
	Builder Builder
	Client  Client
}

// Sender builds a single payload, sends it and reports the
// response
type Sender struct {
	logger  log.Logger
	builder Builder
	client  Client
}

// New creates a new Sender
func New(deps *Deps) *Sender {
	return &Sender{
		logger:  deps.Logger.ForClass("sender", "Sender"),
		builder: deps.Builder,
		client:  deps.Client,
	}
}

// Run builds the payload, sends it and writes the report to out.
// Any error stops the run, so nothing is sent when the payload
// cannot be built
func (s *Sender) Run(ctx context.Context, out io.Writer) error {
	p, err := s.builder.Build(ctx)
	if err != nil {
		s.logger.Debug(ctx, "failed to build payload", log.MapFields{
			"call_type": "BuildPayloadFailure",
			"err":       err.Error(),
		})
		return err
	}

	res, err := s.client.Send(ctx, p)
	if err != nil {
		return err
	}

	s.logger.Info(ctx, "decoder responded", log.MapFields{
		"call_type":  "RunSuccess",
		"statusCode": res.StatusCode,
	})

	return Report(out, res)
}

// Report writes the status code and the body of res to out as two
// lines
func Report(out io.Writer, res *client.Response) error {
	if _, err := fmt.Fprintf(out, "status code: %d\n", res.StatusCode); err != nil {
		return err
	}

	_, err := fmt.Fprintf(out, "text: %s\n", res.Body)
	return err
}
