package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/HelixLauncher/ferinth/internal/constants"
)

// Config represents the CLI configuration persisted to
// ~/.ferinth/config.yml.
type Config struct {
	API    string `json:"api,omitempty"   yaml:"api,omitempty"`
	Token  string `json:"token,omitempty" yaml:"token,omitempty"`
	Output string `json:"output"          yaml:"output"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Manage ferinth CLI configuration including the API endpoint and output settings",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the current CLI configuration with secrets masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			// Never print the token itself
			display := *config
			if display.Token != "" {
				display.Token = constants.MaskedSecret
			}

			output := viper.GetString("output")
			switch output {
			case constants.FormatJSON:
				return StandardJSONRenderer(display)
			case constants.FormatYAML:
				return StandardYAMLRenderer(display)
			default:
				endpoint := display.API
				if endpoint == "" {
					endpoint = constants.DefaultAPIEndpoint
				}

				token := display.Token
				if token == "" {
					token = constants.NotAvailable
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("API", endpoint)
				_ = table.Append("Token", token)
				_ = table.Append("Output", display.Output)

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value (api, token, or output) and persist it",
		Args:  cobra.ExactArgs(constants.TwoArgumentsRequired),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			value := args[1]

			config := loadConfig()

			switch key {
			case "api":
				config.API = value
			case "token":
				config.Token = value
			case "output":
				if value != constants.FormatJSON && value != constants.FormatYAML && value != constants.FormatTable {
					return fmt.Errorf("%w: %s", constants.ErrInvalidOutputFormat, value)
				}

				config.Output = value
			default:
				return fmt.Errorf("%w: %s (expected api, token, or output)", ErrUnknownConfigKey, key)
			}

			if err := saveConfigStruct(config); err != nil {
				return err
			}

			displayValue := value
			if key == "token" {
				displayValue = constants.MaskedSecret
			}

			fmt.Printf("Set %s to %s\n", key, displayValue)

			return nil
		},
	}
}

// loadConfig builds the configuration from the effective viper state.
func loadConfig() *Config {
	output := viper.GetString("output")
	if output == "" {
		output = constants.FormatTable
	}

	return &Config{
		API:    viper.GetString("api"),
		Token:  viper.GetString("token"),
		Output: output,
	}
}

// saveConfigStruct persists the configuration to the active config file,
// creating ~/.ferinth/config.yml when none is in use yet.
func saveConfigStruct(config *Config) error {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get user home directory: %w", err)
		}

		configDir := filepath.Join(home, ".ferinth")

		err = os.MkdirAll(configDir, constants.ConfigDirPerm)
		if err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}

		configFile = filepath.Join(configDir, "config.yml")
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// saveConfig persists the current viper state.
func saveConfig() error {
	return saveConfigStruct(loadConfig())
}
