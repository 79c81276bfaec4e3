package config

import (
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

type Option func(options *Params)

func WithFileName(name string) Option {
	return func(options *Params) {
		options.FileName = name
	}
}

func WithFileType(ftype string) Option {
	return func(options *Params) {
		options.FileType = ftype
	}
}

func WithDefaultConfig(cfg Config) Option {
	return func(options *Params) {
		options.DefaultConfig = cfg
	}
}

func WithFileHandler(handler func(name string) error) Option {
	return func(options *Params) {
		options.FileHandler = handler
	}
}

// WithDotEnvFile sets the .env file to load. An empty name disables .env loading.
func WithDotEnvFile(name string) Option {
	return func(options *Params) {
		options.DotEnvFile = name
	}
}

func NoopConfigHandler(filename string) error {
	return nil
}

func WriteConfigHandler(fileName string) error {
	cfg, err := Get()
	if err != nil {
		return err
	}

	cfgBytes, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(fileName, cfgBytes, os.FileMode(0o644)); err != nil { //nolint:gomnd
		return err
	}

	// read the config we wrote into viper, setting its values as the defaults used for configuration
	viper.SetConfigFile(fileName)
	return viper.ReadInConfig()
}

func ReadConfigHandler(fileName string) error {
	if _, err := os.Stat(fileName); os.IsNotExist(err) {
		// if the config file doesn't exist that's fine, we will just use default configuration values
		return nil
	} else if err != nil {
		return err
	}
	viper.SetConfigFile(fileName)
	return viper.ReadInConfig()
}
