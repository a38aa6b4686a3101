package abi

import (
	"github.com/oasislabs/decoder-client/config"
	"github.com/oasislabs/decoder-client/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	cfgABISource = "abi.source"
	cfgABIPath   = "abi.path"
)

// Config selects where the ABI sent with the request comes from
type Config struct {
	Source string
	Path   string
}

func (c *Config) Log(fields log.Fields) {
	fields.Add(cfgABISource, c.Source)
	fields.Add(cfgABIPath, c.Path)
}

func (c *Config) Configure(v *viper.Viper) error {
	c.Source = v.GetString(cfgABISource)
	c.Path = v.GetString(cfgABIPath)

	switch c.Source {
	case SourceLiteral:
		return nil
	case SourceFile:
		if len(c.Path) == 0 {
			return config.ErrKeyNotSet{Key: cfgABIPath}
		}
		return nil
	default:
		return config.ErrInvalidValue{Key: cfgABISource, InvalidValue: c.Source, Values: Sources}
	}
}

func (c *Config) Bind(v *viper.Viper, cmd *cobra.Command) error {
	cmd.PersistentFlags().String(cfgABISource, SourceLiteral,
		"where the ABI comes from. Must be one of literal, file.")
	cmd.PersistentFlags().String(cfgABIPath, "abi.json",
		"path to the JSON ABI file when abi.source is file")
	return nil
}

// NewSource creates the Source described by the configuration
func (c *Config) NewSource() (Source, error) {
	return NewSource(c.Source, c.Path)
}
