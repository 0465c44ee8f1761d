package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/omise-client/internal/constants"
)

// NewRootCommand creates the omise command with every subcommand attached.
func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "omise",
		Short: "Omise payment API CLI",
		Long: `A command-line interface for the Omise payment API.

Keys are read from --secret-key/--public-key, OMISE_SECRET_KEY/OMISE_PUBLIC_KEY
or the configuration file ($HOME/.omise/config.yml).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "config file (default is $HOME/.omise/config.yml)")
	flags.String("secret-key", "", "secret key for the API host")
	flags.String("public-key", "", "public key for the vault host")
	flags.String("api-endpoint", "", "API host URL (default "+constants.DefaultAPIEndpoint+")")
	flags.String("vault-endpoint", "", "vault host URL (default "+constants.DefaultVaultEndpoint+")")
	flags.String("api-version", "", "value for the Omise-Version header")
	flags.StringP("output", "o", "", "output format (table, json, yaml)")
	flags.Duration("timeout", 0, "timeout of a single HTTP attempt (default "+constants.DefaultHTTPTimeout.String()+")")
	flags.Int("retries", 0, "retries on connection errors, 429 and 5xx responses")
	flags.BoolP("verbose", "v", false, "log HTTP requests and responses")

	bindings := map[string]string{
		keySecretKey:     "secret-key",
		keyPublicKey:     "public-key",
		keyAPIEndpoint:   "api-endpoint",
		keyVaultEndpoint: "vault-endpoint",
		keyAPIVersion:    "api-version",
		keyOutput:        "output",
		"timeout":        "timeout",
		"retries":        "retries",
		"verbose":        "verbose",
	}

	for key, flag := range bindings {
		_ = viper.BindPFlag(key, flags.Lookup(flag))
	}

	rootCmd.AddCommand(NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(NewConfigCommand())
	rootCmd.AddCommand(NewAccountCommand())
	rootCmd.AddCommand(NewBalanceCommand())
	rootCmd.AddCommand(NewTokensCommand())
	rootCmd.AddCommand(NewChargesCommand())
	rootCmd.AddCommand(NewCustomersCommand())
	rootCmd.AddCommand(NewCardsCommand())
	rootCmd.AddCommand(NewTransfersCommand())
	rootCmd.AddCommand(NewTransactionsCommand())

	return rootCmd
}

func initConfig(cmd *cobra.Command) error {
	cfgFile, _ := cmd.Flags().GetString("config")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get user home directory: %w", err)
		}

		viper.AddConfigPath(filepath.Join(home, ".omise"))
		viper.SetConfigType("yml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("OMISE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Using config file:", viper.ConfigFileUsed())
		}
	}

	return nil
}
