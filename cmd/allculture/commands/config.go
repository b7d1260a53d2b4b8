package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/allculture/internal/constants"
)

// ConfigDirName is the directory under $HOME holding the CLI config file.
const ConfigDirName = ".allculture"

// Config represents the persisted CLI configuration.
type Config struct {
	API            string `json:"api,omitempty"             yaml:"api,omitempty"`
	UploadsURL     string `json:"uploads_url,omitempty"     yaml:"uploads_url,omitempty"`
	Output         string `json:"output,omitempty"          yaml:"output,omitempty"`
	Columns        string `json:"columns,omitempty"         yaml:"columns,omitempty"`
	ConnectTimeout string `json:"connect_timeout,omitempty" yaml:"connect_timeout,omitempty"`
	Timeout        string `json:"timeout,omitempty"         yaml:"timeout,omitempty"`
	RetryMax       int    `json:"retry_max,omitempty"       yaml:"retry_max,omitempty"`
}

// configKey describes one settable key.
type configKey struct {
	set   func(c *Config, value string) error
	unset func(c *Config)
}

func durationSetter(field func(c *Config) *string) func(*Config, string) error {
	return func(c *Config, value string) error {
		_, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("%w: %q is not a duration: %w", constants.ErrInvalidConfigValue, value, err)
		}

		*field(c) = value

		return nil
	}
}

func stringSetter(field func(c *Config) *string) func(*Config, string) error {
	return func(c *Config, value string) error {
		*field(c) = value

		return nil
	}
}

var configKeys = map[string]configKey{
	"api": {
		set:   stringSetter(func(c *Config) *string { return &c.API }),
		unset: func(c *Config) { c.API = "" },
	},
	"uploads_url": {
		set:   stringSetter(func(c *Config) *string { return &c.UploadsURL }),
		unset: func(c *Config) { c.UploadsURL = "" },
	},
	"output": {
		set: func(c *Config, value string) error {
			switch value {
			case OutputFormatAuto, OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
				c.Output = value

				return nil
			default:
				return fmt.Errorf("%w: %s", constants.ErrUnknownOutput, value)
			}
		},
		unset: func(c *Config) { c.Output = "" },
	},
	"columns": {
		set:   stringSetter(func(c *Config) *string { return &c.Columns }),
		unset: func(c *Config) { c.Columns = "" },
	},
	"connect_timeout": {
		set:   durationSetter(func(c *Config) *string { return &c.ConnectTimeout }),
		unset: func(c *Config) { c.ConnectTimeout = "" },
	},
	"timeout": {
		set:   durationSetter(func(c *Config) *string { return &c.Timeout }),
		unset: func(c *Config) { c.Timeout = "" },
	},
	"retry_max": {
		set: func(c *Config, value string) error {
			retries, err := strconv.Atoi(value)
			if err != nil || retries < 0 {
				return fmt.Errorf("%w: retry_max must be a non-negative integer", constants.ErrInvalidConfigValue)
			}

			c.RetryMax = retries

			return nil
		},
		unset: func(c *Config) { c.RetryMax = 0 },
	},
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and change the settings stored in ~/" + ConfigDirName + "/config.yml",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective CLI configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			format, err := resolveOutputFormat()
			if err != nil {
				return err
			}

			switch format {
			case OutputFormatJSON:
				return StandardJSONRenderer(cmd.OutOrStdout(), config)
			case OutputFormatYAML:
				return StandardYAMLRenderer(cmd.OutOrStdout(), config)
			default:
				return displayConfigTable(cmd.OutOrStdout(), config)
			}
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value. Keys: " + joinConfigKeys(),
		Args:  cobra.ExactArgs(2), //nolint:mnd // key and value
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]

			handler, ok := configKeys[key]
			if !ok {
				return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
			}

			config := loadConfig()

			err := handler.set(config, value)
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Set %s to %s\n", key, value)

			return err
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Long:  "Remove a configuration value so its default applies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			handler, ok := configKeys[key]
			if !ok {
				return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
			}

			config := loadConfig()
			handler.unset(config)

			err := saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Unset %s\n", key)

			return err
		},
	}
}

// loadConfig reads the persisted file directly. Flags and environment
// variables are ignored so that set/unset never persist one-off overrides.
func loadConfig() *Config {
	config := &Config{}

	path := configFilePath()
	if path == "" {
		return config
	}

	// path is derived from the --config flag or the user's home directory.
	data, err := os.ReadFile(path) // #nosec G304
	if err != nil {
		return config
	}

	_ = yaml.Unmarshal(data, config)

	return config
}

// saveConfigStruct writes config to the config file, creating its directory.
func saveConfigStruct(config *Config) error {
	path := configFilePath()
	if path == "" {
		return fmt.Errorf("%w: no config file location", constants.ErrInvalidConfigValue)
	}

	err := os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(path, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// configFilePath returns the file in use, the --config flag, or the default
// location under the home directory.
func configFilePath() string {
	if used := viper.ConfigFileUsed(); used != "" {
		return used
	}

	if flag := viper.GetString("config"); flag != "" {
		return flag
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ConfigDirName, "config.yml")
}

func displayConfigTable(w io.Writer, config *Config) error {
	rows := [][]string{
		{"API", formatConfigValue(config.API, constants.DefaultBaseURL)},
		{"Uploads URL", formatConfigValue(config.UploadsURL, constants.DefaultUploadsURL)},
		{"Output", formatConfigValue(config.Output, OutputFormatAuto)},
		{"Columns", formatConfigValue(config.Columns, constants.DefaultColumns)},
		{"Connect Timeout", formatConfigValue(config.ConnectTimeout, constants.DefaultConnectTimeout.String())},
		{"Timeout", formatConfigValue(config.Timeout, constants.ShortHTTPTimeout.String())},
		{"Retry Max", strconv.Itoa(config.RetryMax)},
	}

	return renderPropertyTable(w, rows)
}

func formatConfigValue(value, fallback string) string {
	if value == "" {
		return fallback + " (default)"
	}

	return value
}

func joinConfigKeys() string {
	keys := make([]string, 0, len(configKeys))
	for key := range configKeys {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return strings.Join(keys, ", ")
}
