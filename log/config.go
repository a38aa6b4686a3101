package log

import (
	"strings"

	"github.com/oasislabs/decoder-client/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const cfgLoggingLevel = "logging.level"

var levels = []string{"debug", "info", "warn", "error"}

type Config struct {
	Level string
}

func (c *Config) Log(fields Fields) {
	fields.Add(cfgLoggingLevel, c.Level)
}

func (c *Config) Configure(v *viper.Viper) error {
	c.Level = strings.ToLower(v.GetString(cfgLoggingLevel))
	if len(c.Level) == 0 {
		c.Level = "warn"
	}

	for _, level := range levels {
		if c.Level == level {
			return nil
		}
	}

	return config.ErrInvalidValue{Key: cfgLoggingLevel, InvalidValue: c.Level, Values: levels}
}

func (c *Config) Bind(v *viper.Viper, cmd *cobra.Command) error {
	cmd.PersistentFlags().String(cfgLoggingLevel, "warn",
		"sets the minimum logging level for the logger")
	return nil
}
