package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	environmentVariablePrefix = "AIP_OTEL"
	inferConfigTypes          = false
	automaticEnvVar           = true

	dotEnvFileName = ".env"
)

var environmentVariableReplace = strings.NewReplacer(".", "_")

const (
	configType = "yaml"
	configName = "config"
)

// Load resolves the configuration from, in increasing precedence: defaults, the config file in
// path, a .env file in the working directory, environment variables and bound flags.
// A missing config file is not an error.
func Load(path string, opts ...Option) (Config, error) {
	return initConfig(path, append([]Option{WithFileHandler(ReadConfigHandler)}, opts...)...)
}

// Init writes the resolved configuration to the config file in path and returns it.
func Init(path string, opts ...Option) (Config, error) {
	if err := os.MkdirAll(path, os.FileMode(0o755)); err != nil { //nolint:gomnd
		return Config{}, errors.Wrapf(err, "failed to create config directory %s", path)
	}
	return initConfig(path, append([]Option{WithFileHandler(WriteConfigHandler)}, opts...)...)
}

type Params struct {
	FileName      string
	FileType      string
	FileHandler   func(fileName string) error
	DefaultConfig Config
	DotEnvFile    string
}

func initConfig(path string, opts ...Option) (Config, error) {
	params := &Params{
		FileName:      configName,
		FileType:      configType,
		FileHandler:   NoopConfigHandler,
		DefaultConfig: Default,
		DotEnvFile:    dotEnvFileName,
	}

	for _, opt := range opts {
		opt(params)
	}

	if err := loadDotEnv(params.DotEnvFile); err != nil {
		return Config{}, err
	}

	viper.AddConfigPath(path)
	viper.SetConfigName(params.FileName)
	viper.SetConfigType(params.FileType)
	viper.SetEnvPrefix(environmentVariablePrefix)
	viper.SetTypeByDefaultValue(inferConfigTypes)
	viper.SetEnvKeyReplacer(environmentVariableReplace)
	SetDefault(params.DefaultConfig)

	if automaticEnvVar {
		viper.AutomaticEnv()
	}

	if err := params.FileHandler(filepath.Join(path, params.FileName+"."+params.FileType)); err != nil {
		return Config{}, errors.Wrap(err, "failed to handle config file")
	}

	return Get()
}

// Get returns the configuration currently resolved by viper.
func Get() (Config, error) {
	var out Config
	if err := viper.Unmarshal(&out, DecoderHook); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode configuration")
	}
	return out, nil
}

// loadDotEnv exports the variables of fileName into the process environment without overriding
// variables that are already set.
func loadDotEnv(fileName string) error {
	if fileName == "" {
		return nil
	}
	if _, err := os.Stat(fileName); os.IsNotExist(err) {
		return nil
	}
	return errors.Wrapf(godotenv.Load(fileName), "failed to load %s", fileName)
}

// Reset clears all configuration, useful for testing.
func Reset() {
	viper.Reset()
}

// Getenv wraps os.Getenv and retrieves the value of the environment variable named by the config key.
// It returns the value, which will be empty if the variable is not present.
func Getenv(key string) string {
	return os.Getenv(KeyAsEnvVar(key))
}

// KeyAsEnvVar returns the environment variable corresponding to a config key
func KeyAsEnvVar(key string) string {
	return strings.ToUpper(environmentVariablePrefix + "_" + environmentVariableReplace.Replace(key))
}
