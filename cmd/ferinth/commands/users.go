package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/HelixLauncher/ferinth/internal/constants"
	"github.com/HelixLauncher/ferinth/pkg/modrinth"
)

// NewUsersCommand creates the users command group.
func NewUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "Manage users",
		Long:    "Look up Modrinth users, their projects, notifications, and followed projects",
	}

	cmd.AddCommand(newUsersGetCommand())
	cmd.AddCommand(newUsersCurrentCommand())
	cmd.AddCommand(newUsersProjectsCommand())
	cmd.AddCommand(newUsersNotificationsCommand())
	cmd.AddCommand(newUsersFollowsCommand())

	return cmd
}

func newUsersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get USER_ID_OR_USERNAME...",
		Short: "Get user details",
		Long:  "Display one user, or several users in a single request when more than one ID is given",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUsersGetCommand(args)
		},
	}
}

func runUsersGetCommand(ids []string) error {
	client, err := createClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	if len(ids) == 1 {
		user, err := client.Users().Get(ctx, ids[0])
		if err != nil {
			return fmt.Errorf("failed to get user: %w", err)
		}

		return outputUserDetails(user)
	}

	users, err := client.Users().GetMultiple(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to get users: %w", err)
	}

	return outputUsers(users)
}

func newUsersCurrentCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "current",
		Aliases: []string{"me"},
		Short:   "Get the authenticated user",
		Long:    "Display the user the configured token belongs to",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUsersCurrentCommand()
		},
	}
}

func runUsersCurrentCommand() error {
	err := requireAuth()
	if err != nil {
		return err
	}

	client, err := createClient()
	if err != nil {
		return err
	}

	user, err := client.Users().GetCurrent(context.Background())
	if err != nil {
		return fmt.Errorf("failed to get current user: %w", err)
	}

	return outputUserDetails(user)
}

func newUsersProjectsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "projects USER_ID_OR_USERNAME",
		Short: "List a user's projects",
		Long:  "List all projects owned by a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUsersProjectsCommand(args[0])
		},
	}
}

func runUsersProjectsCommand(id string) error {
	client, err := createClient()
	if err != nil {
		return err
	}

	projects, err := client.Users().ListProjects(context.Background(), id)
	if err != nil {
		return fmt.Errorf("failed to list user projects: %w", err)
	}

	return outputProjects(projects)
}

func newUsersNotificationsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "notifications USER_ID_OR_USERNAME",
		Short: "List a user's notifications",
		Long:  "List the notifications of a user (requires authentication as that user)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUsersNotificationsCommand(args[0])
		},
	}
}

func runUsersNotificationsCommand(id string) error {
	err := requireAuth()
	if err != nil {
		return err
	}

	client, err := createClient()
	if err != nil {
		return err
	}

	notifications, err := client.Users().ListNotifications(context.Background(), id)
	if err != nil {
		return fmt.Errorf("failed to list notifications: %w", err)
	}

	return outputNotifications(notifications)
}

func newUsersFollowsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "follows USER_ID_OR_USERNAME",
		Aliases: []string{"followed"},
		Short:   "List a user's followed projects",
		Long:    "List the projects a user follows (requires authentication as that user)",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUsersFollowsCommand(args[0])
		},
	}
}

func runUsersFollowsCommand(id string) error {
	err := requireAuth()
	if err != nil {
		return err
	}

	client, err := createClient()
	if err != nil {
		return err
	}

	projects, err := client.Users().ListFollowedProjects(context.Background(), id)
	if err != nil {
		return fmt.Errorf("failed to list followed projects: %w", err)
	}

	return outputProjects(projects)
}

func outputUserDetails(user *modrinth.User) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(user)
	case OutputFormatYAML:
		return StandardYAMLRenderer(user)
	default:
		return renderUserDetailsTable(user)
	}
}

func renderUserDetailsTable(user *modrinth.User) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("Username", user.Username)
	_ = table.Append("ID", user.ID)
	_ = table.Append("Name", stringOrNA(user.Name))
	_ = table.Append("Role", string(user.Role))
	_ = table.Append("Email", stringOrNA(user.Email))
	_ = table.Append("Bio", stringOrNA(user.Bio))
	_ = table.Append("GitHub ID", githubIDOrNA(user.GitHubID))
	_ = table.Append("Created", formatTime(user.Created))

	_ = table.Render()

	return nil
}

func githubIDOrNA(id *int64) string {
	if id == nil {
		return constants.NotAvailable
	}

	return strconv.FormatInt(*id, 10)
}

func outputUsers(users []modrinth.User) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(users)
	case OutputFormatYAML:
		return StandardYAMLRenderer(users)
	default:
		return renderUsersTable(users)
	}
}

func renderUsersTable(users []modrinth.User) error {
	if len(users) == 0 {
		_, _ = os.Stdout.WriteString("No users found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Username", "ID", "Name", "Role", "Created")

	for _, user := range users {
		_ = table.Append(user.Username, user.ID, stringOrNA(user.Name),
			string(user.Role), formatTime(user.Created))
	}

	_ = table.Render()

	return nil
}

func outputNotifications(notifications []modrinth.Notification) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(notifications)
	case OutputFormatYAML:
		return StandardYAMLRenderer(notifications)
	default:
		return renderNotificationsTable(notifications)
	}
}

func renderNotificationsTable(notifications []modrinth.Notification) error {
	if len(notifications) == 0 {
		_, _ = os.Stdout.WriteString("No notifications found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Title", "Type", "Read", "Created")

	for _, notification := range notifications {
		_ = table.Append(notification.Title, stringOrNA(notification.Type),
			yesNo(notification.Read), formatTime(notification.Created))
	}

	_ = table.Render()

	return nil
}
