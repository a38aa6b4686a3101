package client

import (
	"time"

	"github.com/oasislabs/decoder-client/config"
	"github.com/oasislabs/decoder-client/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	cfgDecoderURL     = "decoder.url"
	cfgDecoderTimeout = "decoder.timeout"
)

// Config is the configuration of the decoder endpoint
type Config struct {
	URL     string
	Timeout time.Duration
}

func (c *Config) Log(fields log.Fields) {
	fields.Add(cfgDecoderURL, c.URL)
	fields.Add(cfgDecoderTimeout, c.Timeout.String())
}

func (c *Config) Configure(v *viper.Viper) error {
	c.URL = v.GetString(cfgDecoderURL)
	if len(c.URL) == 0 {
		return config.ErrKeyNotSet{Key: cfgDecoderURL}
	}

	c.Timeout = v.GetDuration(cfgDecoderTimeout)
	if c.Timeout < 0 {
		return config.ErrInvalidValue{Key: cfgDecoderTimeout, InvalidValue: c.Timeout.String()}
	}

	return nil
}

func (c *Config) Bind(v *viper.Viper, cmd *cobra.Command) error {
	cmd.PersistentFlags().String(cfgDecoderURL, "http://localhost:8080/",
		"url of the decoder endpoint")
	cmd.PersistentFlags().Duration(cfgDecoderTimeout, 0,
		"timeout for the request to the decoder. 0 waits indefinitely")
	return nil
}

// Props returns the client properties for the configuration
func (c *Config) Props() *Props {
	return &Props{URL: c.URL, Timeout: c.Timeout}
}
