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

// NewVersionsCommand creates the versions command group.
func NewVersionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "versions",
		Aliases: []string{"ver"},
		Short:   "Manage project versions",
		Long:    "List and inspect the versions of Modrinth projects",
	}

	cmd.AddCommand(newVersionsListCommand())
	cmd.AddCommand(newVersionsGetCommand())

	return cmd
}

func newVersionsListCommand() *cobra.Command {
	var (
		loaders      []string
		gameVersions []string
		featured     string
	)

	cmd := &cobra.Command{
		Use:   "list PROJECT_ID_OR_SLUG",
		Short: "List project versions",
		Long:  "List the versions of a project, optionally filtered by loader, game version, or featured status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVersionsListCommand(args[0], loaders, gameVersions, featured)
		},
	}

	cmd.Flags().StringSliceVar(&loaders, "loaders", nil, "filter by loader (e.g. fabric,quilt)")
	cmd.Flags().StringSliceVar(&gameVersions, "game-versions", nil, "filter by game version (e.g. 1.20.1)")
	cmd.Flags().StringVar(&featured, "featured", "", "filter by featured status (true or false)")

	return cmd
}

func runVersionsListCommand(projectID string, loaders, gameVersions []string, featured string) error {
	filter, err := buildVersionFilter(loaders, gameVersions, featured)
	if err != nil {
		return err
	}

	client, err := createClient()
	if err != nil {
		return err
	}

	versions, err := client.Versions().ListForProject(context.Background(), projectID, filter)
	if err != nil {
		return fmt.Errorf("failed to list versions: %w", err)
	}

	return outputVersions(versions)
}

func buildVersionFilter(loaders, gameVersions []string, featured string) (*modrinth.VersionFilter, error) {
	if len(loaders) == 0 && len(gameVersions) == 0 && featured == "" {
		return nil, nil
	}

	filter := &modrinth.VersionFilter{
		Loaders:      loaders,
		GameVersions: gameVersions,
	}

	if featured != "" {
		value, err := strconv.ParseBool(featured)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidFeaturedFlag, featured)
		}

		filter.Featured = &value
	}

	return filter, nil
}

func newVersionsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get VERSION_ID...",
		Short: "Get version details",
		Long:  "Display one version, or several versions in a single request when more than one ID is given",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVersionsGetCommand(args)
		},
	}
}

func runVersionsGetCommand(ids []string) error {
	client, err := createClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	if len(ids) == 1 {
		version, err := client.Versions().Get(ctx, ids[0])
		if err != nil {
			return fmt.Errorf("failed to get version: %w", err)
		}

		return outputVersionDetails(version)
	}

	versions, err := client.Versions().GetMultiple(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to get versions: %w", err)
	}

	return outputVersions(versions)
}

func outputVersionDetails(version *modrinth.Version) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(version)
	case OutputFormatYAML:
		return StandardYAMLRenderer(version)
	default:
		return renderVersionDetailsTable(version)
	}
}

func renderVersionDetailsTable(version *modrinth.Version) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("Name", version.Name)
	_ = table.Append("ID", version.ID)
	_ = table.Append("Project ID", version.ProjectID)
	_ = table.Append("Version", version.VersionNumber)
	_ = table.Append("Channel", string(version.VersionType))
	_ = table.Append("Featured", yesNo(version.Featured))
	_ = table.Append("Loaders", joinOrNA(version.Loaders))
	_ = table.Append("Game versions", joinOrNA(version.GameVersions))
	_ = table.Append("Downloads", strconv.Itoa(version.Downloads))
	_ = table.Append("Published", formatTime(version.DatePublished))

	_ = table.Render()

	if len(version.Files) > 0 {
		_, _ = os.Stdout.WriteString("\nFiles:\n")

		fileTable := tablewriter.NewWriter(os.Stdout)
		fileTable.Header("Filename", "Primary", "Size", "SHA1")

		for _, file := range version.Files {
			_ = fileTable.Append(file.Filename, yesNo(file.Primary),
				strconv.Itoa(file.Size), file.Hashes.SHA1)
		}

		_ = fileTable.Render()
	}

	return nil
}

func outputVersions(versions []modrinth.Version) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(versions)
	case OutputFormatYAML:
		return StandardYAMLRenderer(versions)
	default:
		return renderVersionsTable(versions)
	}
}

func renderVersionsTable(versions []modrinth.Version) error {
	if len(versions) == 0 {
		_, _ = os.Stdout.WriteString("No versions found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Name", "Version", "Channel", "Loaders", "Game versions", "Featured", "Downloads")

	for _, version := range versions {
		_ = table.Append(truncate(version.Name, constants.TitleDisplayLength),
			version.VersionNumber, string(version.VersionType),
			joinOrNA(version.Loaders), joinOrNA(version.GameVersions),
			yesNo(version.Featured), strconv.Itoa(version.Downloads))
	}

	_ = table.Render()

	return nil
}
