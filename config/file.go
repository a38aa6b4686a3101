package config

import (
	"os"
	"path"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const cfgConfigPath = "config.path"

var fileExtensions = []string{"toml", "yaml", "yml", "json"}

// File is the optional configuration file. Values read from it
// act as defaults for flags and environment variables
type File struct {
	Path string
}

func (f *File) Bind(v *viper.Viper, cmd *cobra.Command) error {
	cmd.PersistentFlags().String(cfgConfigPath, "", "sets the configuration file")
	return nil
}

func (f *File) Configure(v *viper.Viper) error {
	f.Path = v.GetString(cfgConfigPath)
	if len(f.Path) == 0 {
		return nil
	}

	ext := strings.TrimPrefix(path.Ext(f.Path), ".")
	if !contains(fileExtensions, ext) {
		return ErrInvalidValue{Key: cfgConfigPath, InvalidValue: f.Path, Values: fileExtensions}
	}
	if ext == "yml" {
		ext = "yaml"
	}

	file, err := os.Open(f.Path)
	if err != nil {
		return ErrReadFile{Path: f.Path, Cause: err}
	}

	defer func() { _ = file.Close() }()
	v.SetConfigType(ext)
	if err := v.ReadConfig(file); err != nil {
		return ErrReadFile{Path: f.Path, Cause: err}
	}

	return nil
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}

	return false
}
