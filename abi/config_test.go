package abi

import (
	"testing"

	"github.com/oasislabs/decoder-client/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestConfigDefaults(t *testing.T) {
	cmd := &cobra.Command{}
	v := viper.New()
	c := Config{}

	assert.Nil(t, c.Bind(v, cmd))
	assert.Nil(t, v.BindPFlags(cmd.PersistentFlags()))
	assert.Nil(t, c.Configure(v))
	assert.Equal(t, Config{Source: SourceLiteral, Path: "abi.json"}, c)
}

func TestConfigFileWithoutPath(t *testing.T) {
	v := viper.New()
	v.Set("abi.source", "file")
	v.Set("abi.path", "")
	c := Config{}

	err := c.Configure(v)

	assert.Equal(t, config.ErrKeyNotSet{Key: "abi.path"}, err)
}

func TestConfigUnknownSource(t *testing.T) {
	v := viper.New()
	v.Set("abi.source", "etherscan")
	c := Config{}

	err := c.Configure(v)

	_, ok := err.(config.ErrInvalidValue)
	assert.True(t, ok)
}
