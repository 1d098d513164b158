package cli

import (
	"github.com/spf13/cobra"

	"sewerlink/internal/config"
)

// CommandType represents the type of CLI command
type CommandType int

// Command type values
const (
	CommandRun CommandType = iota
	CommandRobots
	CommandMissions
	CommandInit
	CommandVersion
	CommandHelp
)

// Options contains the parsed command-line arguments
type Options struct {
	Type     CommandType
	Fixtures string
	All      bool
	Force    bool
	DryRun   bool
}

// rootFlags holds flag values for the root command
type rootFlags struct {
	version bool
}

// Parse parses command-line args and returns a Options struct
func Parse(args []string) (*Options, error) {
	result := &Options{
		Type: CommandRun,
	}

	var flags rootFlags

	root := buildRootCommand(result, &flags)
	root.AddCommand(
		buildRunCommand(result),
		buildRobotsCommand(result),
		buildMissionsCommand(result),
		buildInitCommand(result),
		buildVersionCommand(result),
	)

	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		return nil, err
	}

	if flags.version {
		result.Type = CommandVersion
	}

	return result, nil
}

// buildRootCommand creates the root cobra command
func buildRootCommand(result *Options, flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   config.AppName,
		Short: "Terminal teleoperation console for sewage-inspection robots",
		Long: `Sewerlink is a terminal console for connecting to sewage-inspection
robots, watching their live telemetry and reviewing past missions.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandRun
		},
	}

	cmd.PersistentFlags().StringVarP(&result.Fixtures, "fixtures", "f", "", "Use the given fixtures file instead of the configured one")
	cmd.Flags().BoolVarP(&flags.version, "version", "v", false, "Show version information")

	cmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		result.Type = CommandHelp
	})

	return cmd
}

// buildRunCommand creates the run subcommand
func buildRunCommand(result *Options) *cobra.Command {
	return &cobra.Command{
		Use:     "run",
		Aliases: []string{"r"},
		Short:   "Open the console",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandRun
		},
	}
}

// buildRobotsCommand creates the robots subcommand
func buildRobotsCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "robots",
		Aliases: []string{"ls"},
		Short:   "List robots and whether they can be connected to",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandRobots
		},
	}

	cmd.Flags().BoolVarP(&result.All, "all", "a", false, "Ignore the configured fleet filter")

	return cmd
}

// buildMissionsCommand creates the missions subcommand
func buildMissionsCommand(result *Options) *cobra.Command {
	return &cobra.Command{
		Use:     "missions",
		Aliases: []string{"m"},
		Short:   "List past missions",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandMissions
		},
	}
}

// buildInitCommand creates the init subcommand
func buildInitCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "init",
		Aliases: []string{"i"},
		Short:   "Generate sewerlink.yaml and fixtures.yaml",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandInit
		},
	}

	cmd.Flags().BoolVar(&result.Force, "force", false, "Overwrite existing files")
	cmd.Flags().BoolVar(&result.DryRun, "dry-run", false, "Print the files instead of writing them")

	return cmd
}

// buildVersionCommand creates the version subcommand
func buildVersionCommand(result *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandVersion
		},
	}
}
