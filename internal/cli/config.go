package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	envPrefix = "ROLODEX"
)

// Config keys.
const (
	cfgKeyBackend      = "backend"
	cfgKeyDataDir      = "data_dir"
	cfgKeySeed         = "seed"
	cfgKeySeedFile     = "seed_file"
	cfgKeyStrictFields = "strict_fields"
	cfgKeyLogLevel     = "log_level"
	cfgKeyLogFormat    = "log_format"
)

// envKeys are the config keys that ROLODEX_<KEY> may override. data_dir is
// left out: its environment override sits below config.yaml and is applied
// by paths.ResolveDataDir.
var envKeys = []string{
	cfgKeyBackend,
	cfgKeySeed,
	cfgKeySeedFile,
	cfgKeyStrictFields,
	cfgKeyLogLevel,
	cfgKeyLogFormat,
}

// configFile holds the structure written to config.yaml by init.
type configFile struct {
	Backend      string `yaml:"backend"`
	DataDir      string `yaml:"data_dir,omitempty"`
	Seed         bool   `yaml:"seed"`
	SeedFile     string `yaml:"seed_file,omitempty"`
	StrictFields bool   `yaml:"strict_fields"`
	LogLevel     string `yaml:"log_level"`
	LogFormat    string `yaml:"log_format"`
}

// defaultConfigFile is the content init writes on first run.
func defaultConfigFile() configFile {
	return configFile{
		Backend:   types.BackendMemory,
		Seed:      true,
		LogLevel:  "warn",
		LogFormat: logFormatText,
	}
}

// settings is the resolved configuration for one CLI run.
type settings struct {
	Backend      string
	DataDir      string
	Seed         bool
	SeedFile     string
	StrictFields bool
	LogLevel     string
	LogFormat    string
}

// loadConfig reads config.yaml from configDir with Viper. A missing config
// directory or file is not an error; defaults apply.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	def := defaultConfigFile()
	v.SetDefault(cfgKeyBackend, def.Backend)
	v.SetDefault(cfgKeySeed, def.Seed)
	v.SetDefault(cfgKeyStrictFields, def.StrictFields)
	v.SetDefault(cfgKeyLogLevel, def.LogLevel)
	v.SetDefault(cfgKeyLogFormat, def.LogFormat)

	for _, key := range envKeys {
		if err := v.BindEnv(key, envPrefix+"_"+strings.ToUpper(key)); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// settingsFrom extracts settings from v.
func settingsFrom(v *viper.Viper) settings {
	return settings{
		Backend:      v.GetString(cfgKeyBackend),
		DataDir:      v.GetString(cfgKeyDataDir),
		Seed:         v.GetBool(cfgKeySeed),
		SeedFile:     v.GetString(cfgKeySeedFile),
		StrictFields: v.GetBool(cfgKeyStrictFields),
		LogLevel:     v.GetString(cfgKeyLogLevel),
		LogFormat:    v.GetString(cfgKeyLogFormat),
	}
}

// storeConfig converts settings into the backend configuration.
func (s settings) storeConfig(dataDir string) types.Config {
	return types.Config{
		Backend:      s.Backend,
		DataDir:      dataDir,
		StrictFields: s.StrictFields,
	}
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. If it already exists, the function returns nil (idempotent).
func writeConfigIfMissing(path, dataDir string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	cfg := defaultConfigFile()
	cfg.DataDir = dataDir

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	data = append([]byte("# rolodex CLI configuration\n"), data...)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("create config directory: %w", err)
	}
	return true, os.WriteFile(path, data, 0o644)
}
