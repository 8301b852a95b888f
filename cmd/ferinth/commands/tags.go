package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/HelixLauncher/ferinth/pkg/modrinth"
)

// NewTagsCommand creates the tags command group.
func NewTagsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tags",
		Aliases: []string{"tag"},
		Short:   "List platform tags",
		Long:    "List the categories, loaders, game versions, licenses, donation platforms, and report types the platform knows about",
	}

	cmd.AddCommand(newTagsCategoriesCommand())
	cmd.AddCommand(newTagsLoadersCommand())
	cmd.AddCommand(newTagsGameVersionsCommand())
	cmd.AddCommand(newTagsLicensesCommand())
	cmd.AddCommand(newTagsDonationPlatformsCommand())
	cmd.AddCommand(newTagsReportTypesCommand())

	return cmd
}

func newTagsCategoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List project categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTagsCategoriesCommand()
		},
	}
}

func runTagsCategoriesCommand() error {
	client, err := createClient()
	if err != nil {
		return err
	}

	categories, err := client.Tags().ListCategories(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list categories: %w", err)
	}

	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(categories)
	case OutputFormatYAML:
		return StandardYAMLRenderer(categories)
	default:
		return renderCategoriesTable(categories)
	}
}

func renderCategoriesTable(categories []modrinth.Category) error {
	if len(categories) == 0 {
		_, _ = os.Stdout.WriteString("No categories found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Name", "Project type", "Header")

	for _, category := range categories {
		_ = table.Append(category.Name, string(category.ProjectType), category.Header)
	}

	_ = table.Render()

	return nil
}

func newTagsLoadersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "loaders",
		Short: "List loaders",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTagsLoadersCommand()
		},
	}
}

func runTagsLoadersCommand() error {
	client, err := createClient()
	if err != nil {
		return err
	}

	loaders, err := client.Tags().ListLoaders(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list loaders: %w", err)
	}

	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(loaders)
	case OutputFormatYAML:
		return StandardYAMLRenderer(loaders)
	default:
		return renderLoadersTable(loaders)
	}
}

func renderLoadersTable(loaders []modrinth.Loader) error {
	if len(loaders) == 0 {
		_, _ = os.Stdout.WriteString("No loaders found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Name", "Supported project types")

	for _, loader := range loaders {
		_ = table.Append(loader.Name, joinOrNA(loader.SupportedProjectTypes))
	}

	_ = table.Render()

	return nil
}

func newTagsGameVersionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "game-versions",
		Short: "List game versions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTagsGameVersionsCommand()
		},
	}
}

func runTagsGameVersionsCommand() error {
	client, err := createClient()
	if err != nil {
		return err
	}

	gameVersions, err := client.Tags().ListGameVersions(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list game versions: %w", err)
	}

	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(gameVersions)
	case OutputFormatYAML:
		return StandardYAMLRenderer(gameVersions)
	default:
		return renderGameVersionsTable(gameVersions)
	}
}

func renderGameVersionsTable(gameVersions []modrinth.GameVersionTag) error {
	if len(gameVersions) == 0 {
		_, _ = os.Stdout.WriteString("No game versions found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Version", "Type", "Major", "Released")

	for _, gameVersion := range gameVersions {
		_ = table.Append(gameVersion.Version, gameVersion.VersionType,
			yesNo(gameVersion.Major), formatTime(gameVersion.Date))
	}

	_ = table.Render()

	return nil
}

func newTagsLicensesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "licenses",
		Short: "List licenses",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTagsLicensesCommand()
		},
	}
}

func runTagsLicensesCommand() error {
	client, err := createClient()
	if err != nil {
		return err
	}

	licenses, err := client.Tags().ListLicenses(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list licenses: %w", err)
	}

	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(licenses)
	case OutputFormatYAML:
		return StandardYAMLRenderer(licenses)
	default:
		return renderShortNameTable("No licenses found", licensesToRows(licenses))
	}
}

func licensesToRows(licenses []modrinth.LicenseTag) [][]string {
	rows := make([][]string, 0, len(licenses))
	for _, license := range licenses {
		rows = append(rows, []string{license.Short, license.Name})
	}

	return rows
}

func newTagsDonationPlatformsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "donation-platforms",
		Short: "List donation platforms",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTagsDonationPlatformsCommand()
		},
	}
}

func runTagsDonationPlatformsCommand() error {
	client, err := createClient()
	if err != nil {
		return err
	}

	platforms, err := client.Tags().ListDonationPlatforms(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list donation platforms: %w", err)
	}

	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(platforms)
	case OutputFormatYAML:
		return StandardYAMLRenderer(platforms)
	default:
		return renderShortNameTable("No donation platforms found", platformsToRows(platforms))
	}
}

func platformsToRows(platforms []modrinth.DonationPlatformTag) [][]string {
	rows := make([][]string, 0, len(platforms))
	for _, platform := range platforms {
		rows = append(rows, []string{platform.Short, platform.Name})
	}

	return rows
}

// renderShortNameTable renders tag listings that are plain short/name
// pairs, like licenses and donation platforms.
func renderShortNameTable(emptyMessage string, rows [][]string) error {
	if len(rows) == 0 {
		_, _ = os.Stdout.WriteString(emptyMessage + "\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Short", "Name")

	for _, row := range rows {
		_ = table.Append(row[0], row[1])
	}

	_ = table.Render()

	return nil
}

func newTagsReportTypesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "report-types",
		Short: "List report types",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTagsReportTypesCommand()
		},
	}
}

func runTagsReportTypesCommand() error {
	client, err := createClient()
	if err != nil {
		return err
	}

	reportTypes, err := client.Tags().ListReportTypes(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list report types: %w", err)
	}

	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(reportTypes)
	case OutputFormatYAML:
		return StandardYAMLRenderer(reportTypes)
	default:
		return renderReportTypesTable(reportTypes)
	}
}

func renderReportTypesTable(reportTypes []string) error {
	if len(reportTypes) == 0 {
		_, _ = os.Stdout.WriteString("No report types found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Type")

	for _, reportType := range reportTypes {
		_ = table.Append(reportType)
	}

	_ = table.Render()

	return nil
}
