//go:generate mockgen -source=cli.go -destination=cli_mock.go -package=cli
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/x/term"
	"github.com/muesli/reflow/truncate"
	"go.uber.org/fx"

	"sewerlink/internal/app/archive"
	"sewerlink/internal/app/bus"
	"sewerlink/internal/app/colors"
	"sewerlink/internal/app/errors"
	"sewerlink/internal/app/fleet"
	"sewerlink/internal/app/generator"
	"sewerlink/internal/app/ui/wire"
	"sewerlink/internal/config"
	"sewerlink/internal/config/logger"
)

const (
	defaultWidth = 80
	minWidth     = 40
	statusWidth  = 14
	rowPadding   = 20
	minNameWidth = 8
)

// CLI defines the interface for cli operations
type CLI interface {
	Execute() (exitCode int, err error)
}

// Params contains the dependencies of the cli
type Params struct {
	fx.In

	Options   *Options
	Config    *config.Config
	UI        wire.UI
	Bus       bus.Bus
	Fleet     fleet.Source
	Filter    fleet.Filter
	Archive   archive.Archive
	Generator generator.Generator
	Logger    logger.Logger
}

// cli represents the command-line interface for the application
type cli struct {
	opts      *Options
	cfg       *config.Config
	ui        wire.UI
	bus       bus.Bus
	fleet     fleet.Source
	filter    fleet.Filter
	archive   archive.Archive
	generator generator.Generator
	out       io.Writer
	errOut    io.Writer
	width     func() int
	log       logger.Logger
}

// NewCLI creates a new cli instance
func NewCLI(p Params) CLI {
	return &cli{
		opts:      p.Options,
		cfg:       p.Config,
		ui:        p.UI,
		bus:       p.Bus,
		fleet:     p.Fleet,
		filter:    p.Filter,
		archive:   p.Archive,
		generator: p.Generator,
		out:       os.Stdout,
		errOut:    os.Stderr,
		width:     terminalWidth,
		log:       p.Logger.WithComponent("CLI"),
	}
}

// Execute runs the parsed command and returns the process exit code
func (c *cli) Execute() (int, error) {
	ctx := context.Background()

	var err error

	switch c.opts.Type {
	case CommandRobots:
		err = c.handleRobots(ctx)
	case CommandMissions:
		err = c.handleMissions(ctx)
	case CommandInit:
		err = c.handleInit()
	case CommandVersion:
		c.handleVersion()
	case CommandHelp:
		c.handleHelp()
	case CommandRun:
		err = c.handleRun(ctx)
	default:
		err = errors.ErrUnknownCommand
	}

	if err != nil {
		c.log.Error().Err(err).Msg("Command failed")
		fmt.Fprintf(c.errOut, "%s %v\n", colors.Error("Error:"), err)

		return 1, err
	}

	return 0, nil
}

// handleRobots prints the robot list, marking the ones that can be connected to
func (c *cli) handleRobots(ctx context.Context) error {
	robots, err := c.fleet.Robots(ctx)
	if err != nil {
		return fmt.Errorf("failed to list robots: %w", err)
	}

	total := len(robots)
	if !c.opts.All {
		robots = c.filter.Apply(robots)
	}

	c.log.Debug().Msgf("Listing %d of %d robots", len(robots), total)

	fmt.Fprintf(c.out, "\n%s\n", colors.Subtitle("ROBOTS"))

	if len(robots) == 0 {
		fmt.Fprintf(c.out, "  %s\n\n", colors.Muted("No robots available"))
		return nil
	}

	nameWidth := c.nameWidth(robots)
	connectable := 0

	for _, r := range robots {
		name := truncate.StringWithTail(r.Name, uint(nameWidth), "…")
		pad := strings.Repeat(" ", max(nameWidth-len([]rune(name)), 0))
		label := r.Status.String()
		statusPad := strings.Repeat(" ", max(statusWidth-len(label), 1))

		line := fmt.Sprintf("  %s %s%s  %s%s", colors.RobotSymbol(r.Status), name, pad, colors.RobotStatus(r.Status), statusPad)
		if r.Connectable() {
			connectable++
			line += colors.Success("connectable")
		}

		fmt.Fprintln(c.out, strings.TrimRight(line, " "))
	}

	summary := fmt.Sprintf("%d of %d connectable", connectable, len(robots))
	if !c.opts.All && len(robots) < total {
		summary += fmt.Sprintf(", %d hidden by fleet filter", total-len(robots))
	}

	fmt.Fprintf(c.out, "\n%s\n\n", colors.Muted(summary))

	return nil
}

// nameWidth fits the name column to the longest name and the terminal
func (c *cli) nameWidth(robots []fleet.Robot) int {
	longest := 0
	for _, r := range robots {
		longest = max(longest, len([]rune(r.Name)))
	}

	available := max(c.width()-rowPadding-statusWidth, minNameWidth)

	return min(longest, available)
}

// handleMissions prints the archived missions as a tree
func (c *cli) handleMissions(ctx context.Context) error {
	missions, err := c.archive.Missions(ctx)
	if err != nil {
		return fmt.Errorf("failed to list missions: %w", err)
	}

	fmt.Fprintf(c.out, "\n%s\n", colors.Subtitle("PAST MISSIONS"))

	if len(missions) == 0 {
		fmt.Fprintf(c.out, "  %s\n\n", colors.Muted("No past missions"))
		return nil
	}

	for i, m := range missions {
		fmt.Fprintf(c.out, "  %s %s %s\n", colors.Muted(colors.Branch(i, len(missions))), colors.Primary(m.ID), m.Date)
		fmt.Fprintf(c.out, "     %s\n", colors.Muted(m.Duration+", "+m.Distance))
	}

	fmt.Fprintln(c.out)

	return nil
}

// handleInit writes the starter configuration and fixtures
func (c *cli) handleInit() error {
	opts := generator.DefaultOptions()
	if c.opts.Fixtures != "" {
		opts.FixturesFile = c.opts.Fixtures
	}

	if err := c.generator.Generate(opts, c.opts.Force, c.opts.DryRun); err != nil {
		return err
	}

	if !c.opts.DryRun {
		fmt.Fprintf(c.out, "%s Generated %s and %s\n", colors.Success(colors.StatusOnline), config.ConfigFile, opts.FixturesFile)
	}

	return nil
}

// handleVersion displays version information
func (c *cli) handleVersion() {
	c.log.Debug().Msg("Displaying version information")
	fmt.Fprintf(c.out, "\n%s %s\n", colors.Title(config.AppName), colors.Success("v"+config.Version))
	fmt.Fprintf(c.out, "%s\n\n", colors.Muted(config.AppDescription))
}

// handleHelp displays help information
func (c *cli) handleHelp() {
	c.log.Debug().Msg("Displaying help information")
	fmt.Fprint(c.out, renderHelp())
}

// terminalWidth returns the stdout width, falling back when it is not a terminal
func terminalWidth() int {
	width, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || width < minWidth {
		return defaultWidth
	}

	return width
}
