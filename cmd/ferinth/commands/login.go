package commands

import (
	"context"
	"fmt"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/HelixLauncher/ferinth/internal/constants"
	"github.com/HelixLauncher/ferinth/pkg/ferinth"
	"github.com/HelixLauncher/ferinth/pkg/modrinth"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var (
		apiEndpoint string
		token       string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to Modrinth",
		Long:  "Store a personal access token and verify it against the Modrinth API",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Get API endpoint
			if apiEndpoint == "" {
				apiEndpoint = viper.GetString("api")
			}

			// Get token from flag, environment, or hidden prompt
			if token == "" {
				token = viper.GetString("token")
			}

			if token == "" {
				fmt.Print("Personal access token: ")

				byteToken, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read token: %w", err)
				}

				token = strings.TrimSpace(string(byteToken))

				fmt.Println()
			}

			if token == "" {
				return ErrTokenRequired
			}

			// Create client and verify the token by fetching the
			// authenticated user. A single probe request gets the
			// short timeout.
			client, err := ferinth.New(&modrinth.Config{
				APIEndpoint: apiEndpoint,
				Token:       token,
				AppName:     "ferinth-cli",
				AppContact:  "github.com/HelixLauncher/ferinth",
				HTTPTimeout: constants.ShortHTTPTimeout,
			})
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			ctx := context.Background()

			user, err := client.Users().GetCurrent(ctx)
			if err != nil {
				if modrinth.IsUnauthorized(err) {
					return fmt.Errorf("token was rejected by the API: %w", err)
				}

				return fmt.Errorf("failed to verify token: %w", err)
			}

			// Persist endpoint and token
			viper.Set("token", token)

			if apiEndpoint != "" {
				viper.Set("api", apiEndpoint)
			}

			if err := saveConfig(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Printf("Successfully logged in as %s\n", user.Username)

			return nil
		},
	}

	// Add flags
	cmd.Flags().StringVarP(&apiEndpoint, "api", "a", "", "API endpoint URL")
	cmd.Flags().StringVarP(&token, "token", "t", "", "personal access token")

	return cmd
}

// NewLogoutCommand creates the logout command
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Logout from Modrinth",
		Long:  "Clear the stored personal access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			viper.Set("token", "")

			if err := saveConfig(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Println("Successfully logged out")

			return nil
		},
	}
}
