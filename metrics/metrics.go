package metrics

import (
	"context"

	"github.com/oasislabs/decoder-client/errors"
	"github.com/oasislabs/decoder-client/log"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Publisher makes the metrics collected during a run available
// once the run completes
type Publisher interface {
	Publish(ctx context.Context) error
}

// New constructs the publisher for the configured mode
func New(config *Config, gatherer prometheus.Gatherer, logger log.Logger) (Publisher, error) {
	switch config.Mode {
	case "", metricsModeNone:
		return stubPublisher{}, nil
	case metricsModePush:
		return newPushPublisher(config, gatherer, logger), nil
	default:
		return nil, errors.New(errors.ErrInternalError, nil)
	}
}

// stubPublisher discards the metrics.
type stubPublisher struct{}

func (stubPublisher) Publish(ctx context.Context) error { return nil }

// pushPublisher pushes metrics to a Prometheus push gateway. The
// client runs as a batch job so metrics are pushed once at the end
// instead of periodically.
type pushPublisher struct {
	pusher *push.Pusher
	addr   string
	logger log.Logger
}

func newPushPublisher(config *Config, gatherer prometheus.Gatherer, logger log.Logger) Publisher {
	pusher := push.New(config.PushAddr, config.PushJobName).Gatherer(gatherer)
	if len(config.PushInstanceLabel) > 0 {
		pusher = pusher.Grouping("instance", config.PushInstanceLabel)
	}

	return &pushPublisher{
		pusher: pusher,
		addr:   config.PushAddr,
		logger: logger.ForClass("metrics", "pushPublisher"),
	}
}

func (p *pushPublisher) Publish(ctx context.Context) error {
	if err := p.pusher.Push(); err != nil {
		err := errors.New(errors.ErrPrometheusPush, err)
		p.logger.Warn(ctx, "unable to push metrics to prometheus", err, log.MapFields{
			"call_type": "PushMetricsFailure",
			"addr":      p.addr,
		})
		return err
	}

	p.logger.Debug(ctx, "metrics pushed", log.MapFields{
		"call_type": "PushMetricsSuccess",
		"addr":      p.addr,
	})
	return nil
}
