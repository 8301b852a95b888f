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

// NewProjectsCommand creates the projects command group.
func NewProjectsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "projects",
		Aliases: []string{"project"},
		Short:   "Manage projects",
		Long:    "Look up Modrinth projects, their dependencies, and follow them",
	}

	cmd.AddCommand(newProjectsGetCommand())
	cmd.AddCommand(newProjectsDependenciesCommand())
	cmd.AddCommand(newProjectsCheckCommand())
	cmd.AddCommand(newProjectsFollowCommand())

	return cmd
}

func newProjectsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PROJECT_ID_OR_SLUG...",
		Short: "Get project details",
		Long:  "Display one project, or several projects in a single request when more than one ID is given",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProjectsGetCommand(args)
		},
	}
}

func runProjectsGetCommand(ids []string) error {
	client, err := createClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	if len(ids) == 1 {
		project, err := client.Projects().Get(ctx, ids[0])
		if err != nil {
			return fmt.Errorf("failed to get project: %w", err)
		}

		return outputProjectDetails(project)
	}

	projects, err := client.Projects().GetMultiple(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to get projects: %w", err)
	}

	return outputProjects(projects)
}

func newProjectsDependenciesCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "dependencies PROJECT_ID_OR_SLUG",
		Aliases: []string{"deps"},
		Short:   "List project dependencies",
		Long:    "List the projects and versions a project depends on",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProjectsDependenciesCommand(args[0])
		},
	}
}

func runProjectsDependenciesCommand(id string) error {
	client, err := createClient()
	if err != nil {
		return err
	}

	dependencies, err := client.Projects().ListDependencies(context.Background(), id)
	if err != nil {
		return fmt.Errorf("failed to list project dependencies: %w", err)
	}

	return outputProjectDependencies(dependencies)
}

func newProjectsCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check PROJECT_ID_OR_SLUG",
		Short: "Check a project identifier",
		Long:  "Check whether a project ID or slug exists and print the canonical project ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProjectsCheckCommand(args[0])
		},
	}
}

func runProjectsCheckCommand(id string) error {
	client, err := createClient()
	if err != nil {
		return err
	}

	identifier, err := client.Projects().CheckValidity(context.Background(), id)
	if err != nil {
		return fmt.Errorf("failed to check project: %w", err)
	}

	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(identifier)
	case OutputFormatYAML:
		return StandardYAMLRenderer(identifier)
	default:
		_, _ = fmt.Fprintf(os.Stdout, "Project '%s' resolves to ID %s\n", id, identifier.ID)

		return nil
	}
}

func newProjectsFollowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "follow PROJECT_ID_OR_SLUG",
		Short: "Follow a project",
		Long:  "Follow a project to receive update notifications",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProjectsFollowCommand(args[0])
		},
	}
}

func runProjectsFollowCommand(id string) error {
	err := requireAuth()
	if err != nil {
		return err
	}

	client, err := createClient()
	if err != nil {
		return err
	}

	err = client.Projects().Follow(context.Background(), id)
	if err != nil {
		return fmt.Errorf("failed to follow project: %w", err)
	}

	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(map[string]string{"project": id, "status": "followed"})
	case OutputFormatYAML:
		return StandardYAMLRenderer(map[string]string{"project": id, "status": "followed"})
	default:
		_, _ = fmt.Fprintf(os.Stdout, "Successfully followed project '%s'\n", id)

		return nil
	}
}

func outputProjectDetails(project *modrinth.Project) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(project)
	case OutputFormatYAML:
		return StandardYAMLRenderer(project)
	default:
		return renderProjectDetailsTable(project)
	}
}

func renderProjectDetailsTable(project *modrinth.Project) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("Title", project.Title)
	_ = table.Append("ID", project.ID)
	_ = table.Append("Slug", project.Slug)
	_ = table.Append("Type", string(project.ProjectType))
	_ = table.Append("Status", string(project.Status))
	_ = table.Append("Description", truncate(project.Description, constants.DescriptionDisplayLength))
	_ = table.Append("Categories", joinOrNA(project.Categories))
	_ = table.Append("Client side", string(project.ClientSide))
	_ = table.Append("Server side", string(project.ServerSide))
	_ = table.Append("License", project.License.Name)
	_ = table.Append("Downloads", strconv.Itoa(project.Downloads))
	_ = table.Append("Followers", strconv.Itoa(project.Followers))
	_ = table.Append("Source", stringOrNA(project.SourceURL))
	_ = table.Append("Published", formatTime(project.Published))
	_ = table.Append("Updated", formatTime(project.Updated))

	_ = table.Render()

	return nil
}

func outputProjects(projects []modrinth.Project) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(projects)
	case OutputFormatYAML:
		return StandardYAMLRenderer(projects)
	default:
		return renderProjectsTable(projects)
	}
}

func renderProjectsTable(projects []modrinth.Project) error {
	if len(projects) == 0 {
		_, _ = os.Stdout.WriteString("No projects found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Title", "Slug", "Type", "Description", "Downloads", "Status")

	for _, project := range projects {
		_ = table.Append(truncate(project.Title, constants.TitleDisplayLength),
			project.Slug, string(project.ProjectType),
			truncate(project.Description, constants.DescriptionDisplayLength),
			strconv.Itoa(project.Downloads), string(project.Status))
	}

	_ = table.Render()

	return nil
}

func outputProjectDependencies(dependencies *modrinth.ProjectDependencies) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(dependencies)
	case OutputFormatYAML:
		return StandardYAMLRenderer(dependencies)
	default:
		return renderProjectDependenciesTables(dependencies)
	}
}

func renderProjectDependenciesTables(dependencies *modrinth.ProjectDependencies) error {
	if len(dependencies.Projects) == 0 && len(dependencies.Versions) == 0 {
		_, _ = os.Stdout.WriteString("No dependencies found\n")

		return nil
	}

	if len(dependencies.Projects) > 0 {
		_, _ = os.Stdout.WriteString("Dependency projects:\n")

		err := renderProjectsTable(dependencies.Projects)
		if err != nil {
			return err
		}
	}

	if len(dependencies.Versions) > 0 {
		_, _ = os.Stdout.WriteString("\nDependency versions:\n")

		err := renderVersionsTable(dependencies.Versions)
		if err != nil {
			return err
		}
	}

	return nil
}
