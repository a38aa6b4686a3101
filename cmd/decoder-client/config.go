package main

import (
	"github.com/oasislabs/decoder-client/abi"
	"github.com/oasislabs/decoder-client/client"
	"github.com/oasislabs/decoder-client/config"
	"github.com/oasislabs/decoder-client/log"
	"github.com/oasislabs/decoder-client/metrics"
	"github.com/oasislabs/decoder-client/payload"
)

// Config is the application's configuration
type Config struct {
	LogConfig     log.Config
	ClientConfig  client.Config
	RequestConfig payload.Config
	ABIConfig     abi.Config
	MetricsConfig metrics.Config
}

func (c *Config) Log(fields log.Fields) {
	c.LogConfig.Log(fields)
	c.ClientConfig.Log(fields)
	c.RequestConfig.Log(fields)
	c.ABIConfig.Log(fields)
	c.MetricsConfig.Log(fields)
}

func (c *Config) Binders() []config.Binder {
	return []config.Binder{
		&c.LogConfig,
		&c.ClientConfig,
		&c.RequestConfig,
		&c.ABIConfig,
		&c.MetricsConfig,
	}
}
