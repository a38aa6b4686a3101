package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable. Keys are
// mapped by replacing `.` with `_`, so decoder.url can be set with
// DECODER_CLIENT_DECODER_URL
const EnvPrefix = "DECODER_CLIENT"

// Parser resolves the configuration of a command from flags,
// environment variables and an optional configuration file
type Parser struct {
	file    *File
	binders []Binder
	v       *viper.Viper

	configured bool
}

// Configure reads back all the binders. It must be called after
// cobra has parsed the command line, typically from PreRunE
func (p *Parser) Configure() error {
	if p.configured {
		return ErrAlreadyConfigured
	}

	// file goes first so that its values are visible to the other
	// binders as defaults
	if err := p.file.Configure(p.v); err != nil {
		return err
	}

	for _, b := range p.binders {
		if err := b.Configure(p.v); err != nil {
			return err
		}
	}

	p.configured = true
	return nil
}

// Viper returns the underlying viper instance
func (p *Parser) Viper() *viper.Viper {
	return p.v
}

// Generate binds the flags of all binders to cmd and returns a
// parser ready to be configured once the flags are parsed
func Generate(cmd *cobra.Command, binders ...Binder) (*Parser, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	file := &File{}
	all := append([]Binder{file}, binders...)
	for _, b := range all {
		if err := b.Bind(v, cmd); err != nil {
			return nil, errors.Wrap(err, "failed to bind flags")
		}
	}

	if err := v.BindPFlags(cmd.PersistentFlags()); err != nil {
		return nil, errors.Wrap(err, "failed to bind flags")
	}

	return &Parser{file: file, binders: binders, v: v}, nil
}
