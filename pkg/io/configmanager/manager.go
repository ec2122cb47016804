// Package configmanager loads envedit configuration from files, environment
// variables, and command line flags.
package configmanager

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/devantler-tech/envedit/pkg/apis/envedit/v1alpha1"
	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ConfigFileName is the base name of the envedit configuration file.
const ConfigFileName = "envedit"

// EnvPrefix namespaces environment variable overrides (ENVEDIT_SPEC_EDITOR
// overrides spec.editor).
const EnvPrefix = "ENVEDIT"

// ConfigManager loads v1alpha1.EnvEdit configurations.
// Configuration priority: defaults < config file < environment variables < flags.
type ConfigManager struct {
	Viper     *viper.Viper
	Config    *v1alpha1.EnvEdit
	selectors []FieldSelector
	loaded    bool
}

// NewConfigManager creates a new configuration manager with the specified
// field selectors. Initializes Viper with config paths and environment
// handling.
func NewConfigManager(selectors ...FieldSelector) *ConfigManager {
	manager := &ConfigManager{
		Viper:     initializeViper(),
		Config:    v1alpha1.NewEnvEdit(),
		selectors: selectors,
	}

	// Registering a default makes the key known to Viper, which is what lets
	// AutomaticEnv surface ENVEDIT_* overrides during Unmarshal even when no
	// command flags are attached.
	for _, selector := range manager.selectors {
		manager.Viper.SetDefault(selector.Key, selector.defaultValue)
	}

	return manager
}

// NewCommandConfigManager constructs a ConfigManager bound to the provided
// Cobra command. It registers the supplied field selectors and binds one flag
// per selector on the command.
func NewCommandConfigManager(cmd *cobra.Command, selectors ...FieldSelector) *ConfigManager {
	manager := NewConfigManager(selectors...)
	manager.AddFlags(cmd)

	return manager
}

// initializeViper configures a Viper instance to read envedit.yaml from the
// working directory or the user config directory, with ENVEDIT_* environment
// overrides.
func initializeViper() *viper.Viper {
	viperInstance := viper.New()
	viperInstance.SetConfigName(ConfigFileName)
	viperInstance.SetConfigType("yaml")
	viperInstance.AddConfigPath(".")

	configDir, err := os.UserConfigDir()
	if err == nil {
		viperInstance.AddConfigPath(filepath.Join(configDir, "envedit"))
	}

	viperInstance.SetEnvPrefix(EnvPrefix)
	viperInstance.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viperInstance.AutomaticEnv()

	return viperInstance
}

// AddFlags registers one flag per field selector on the command and binds it
// to the matching configuration key.
func (m *ConfigManager) AddFlags(cmd *cobra.Command) {
	for _, selector := range m.selectors {
		selector.registerFlag(cmd.Flags())

		// The flag was registered on the line above, so the binding cannot fail.
		_ = m.Viper.BindPFlag(selector.Key, cmd.Flags().Lookup(selector.Flag))
	}
}

// Load reads the config file (when present), applies environment and flag
// overrides, expands ${VAR} placeholders, and validates the result. The
// loaded config is cached; subsequent calls return the cached config.
func (m *ConfigManager) Load() (*v1alpha1.EnvEdit, error) {
	if m.loaded {
		return m.Config, nil
	}

	err := m.Viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	err = m.Viper.Unmarshal(m.Config, func(config *mapstructure.DecoderConfig) {
		// The API types carry json tags only.
		config.TagName = "json"
	})
	if err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	m.Config.ExpandEnvVars()

	err = m.Config.Validate()
	if err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	m.loaded = true

	return m.Config, nil
}
