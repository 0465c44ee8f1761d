package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/omise-client/internal/constants"
)

// Configuration keys, shared by the config file, OMISE_* environment
// variables and global flags.
const (
	keySecretKey     = "secret_key"
	keyPublicKey     = "public_key"
	keyAPIEndpoint   = "api_endpoint"
	keyVaultEndpoint = "vault_endpoint"
	keyAPIVersion    = "api_version"
	keyOutput        = "output"
)

// Config represents the CLI configuration file.
type Config struct {
	SecretKey     string `json:"secret_key,omitempty"     yaml:"secret_key,omitempty"`
	PublicKey     string `json:"public_key,omitempty"     yaml:"public_key,omitempty"`
	APIEndpoint   string `json:"api_endpoint,omitempty"   yaml:"api_endpoint,omitempty"`
	VaultEndpoint string `json:"vault_endpoint,omitempty" yaml:"vault_endpoint,omitempty"`
	APIVersion    string `json:"api_version,omitempty"    yaml:"api_version,omitempty"`
	Output        string `json:"output,omitempty"         yaml:"output,omitempty"`
}

// configField binds a configuration key to its field.
type configField struct {
	secret bool
	field  func(*Config) *string
}

var configFields = map[string]configField{
	keySecretKey:     {secret: true, field: func(c *Config) *string { return &c.SecretKey }},
	keyPublicKey:     {secret: true, field: func(c *Config) *string { return &c.PublicKey }},
	keyAPIEndpoint:   {field: func(c *Config) *string { return &c.APIEndpoint }},
	keyVaultEndpoint: {field: func(c *Config) *string { return &c.VaultEndpoint }},
	keyAPIVersion:    {field: func(c *Config) *string { return &c.APIVersion }},
	keyOutput:        {field: func(c *Config) *string { return &c.Output }},
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and change the keys, endpoints and defaults stored in the CLI configuration file",
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
		Long:  "Display the effective configuration with keys masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := effectiveConfig()
			config.SecretKey = maskSecret(config.SecretKey)
			config.PublicKey = maskSecret(config.PublicKey)

			out := cmd.OutOrStdout()

			switch outputFormat() {
			case constants.FormatJSON:
				return writeJSON(out, config)
			case constants.FormatYAML:
				return writeYAML(out, config)
			default:
				return displayConfigTable(out, config)
			}
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY [VALUE]",
		Short: "Set a configuration value",
		Long: `Set a configuration value. Keys: secret_key, public_key, api_endpoint,
vault_endpoint, api_version, output. Keys are prompted for without echo when
VALUE is omitted.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			field, ok := configFields[key]
			if !ok {
				return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
			}

			var value string

			switch {
			case len(args) == 2:
				value = args[1]
			case field.secret:
				prompted, err := promptSecret(cmd.ErrOrStderr(), key)
				if err != nil {
					return err
				}

				value = prompted
			default:
				return fmt.Errorf("%w: %s", constants.ErrConfigValueRequired, key)
			}

			if key == keyOutput && !slices.Contains(outputFormats, value) {
				return constants.ErrInvalidOutputFormat
			}

			return updateConfigFile(cmd.OutOrStdout(), "Set", key, func(config *Config) {
				*field.field(config) = value
			})
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Long:  "Remove a configuration value from the configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			field, ok := configFields[key]
			if !ok {
				return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
			}

			return updateConfigFile(cmd.OutOrStdout(), "Unset", key, func(config *Config) {
				*field.field(config) = ""
			})
		},
	}
}

// effectiveConfig merges flags, environment and the config file.
func effectiveConfig() *Config {
	config := &Config{}
	for key, field := range configFields {
		*field.field(config) = viper.GetString(key)
	}

	return config
}

func updateConfigFile(out io.Writer, action, key string, apply func(*Config)) error {
	path, err := configFilePath()
	if err != nil {
		return err
	}

	config, err := readConfigFile(path)
	if err != nil {
		return err
	}

	apply(config)

	if err := writeConfigFile(path, config); err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "%s %s in %s\n", action, key, path)

	return err
}

// configFilePath returns the file in use, or ~/.omise/config.yml.
func configFilePath() (string, error) {
	if configFile := viper.ConfigFileUsed(); configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, ".omise", "config.yml"), nil
}

func readConfigFile(path string) (*Config, error) {
	config := &Config{}

	// #nosec G304 -- path comes from the --config flag or the home directory
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

func writeConfigFile(path string, config *Config) error {
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

func promptSecret(out io.Writer, key string) (string, error) {
	fd := int(os.Stdin.Fd()) //nolint:gosec // file descriptors fit in int
	if !term.IsTerminal(fd) {
		return "", constants.ErrSecretInputRequired
	}

	_, _ = fmt.Fprintf(out, "%s: ", key)

	secret, err := term.ReadPassword(fd)
	_, _ = io.WriteString(out, "\n")

	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", key, err)
	}

	return strings.TrimSpace(string(secret)), nil
}

// maskSecret hides all but the last few characters of a key.
func maskSecret(secret string) string {
	if secret == "" {
		return ""
	}

	if len(secret) <= constants.MaskVisibleChars {
		return constants.MaskedSecret
	}

	return constants.MaskedSecret + secret[len(secret)-constants.MaskVisibleChars:]
}

func displayConfigTable(out io.Writer, config *Config) error {
	table := tablewriter.NewWriter(out)
	table.Header("Property", "Value")

	rows := [][]string{
		{"Secret Key", config.SecretKey},
		{"Public Key", config.PublicKey},
		{"API Endpoint", config.APIEndpoint},
		{"Vault Endpoint", config.VaultEndpoint},
		{"API Version", config.APIVersion},
		{"Output", config.Output},
	}

	for _, row := range rows {
		if row[1] == "" {
			row[1] = constants.NotAvailable
		}

		_ = table.Append(row)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}
