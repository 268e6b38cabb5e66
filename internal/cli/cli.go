// Package cli implements the framer command-line interface.
//
// Every command works on a painting preset, built in or loaded from a TOML
// file with --presets, and a moulding cross-section given by --stock-width
// and --stock-height:
//   - presets: list the known paintings
//   - layout: print the four layout boundaries
//   - parts: print the cut list for the four frame members
//   - render: write the schematic as SVG, PNG, PDF, DOT or JSON
//
// Settings resolve from flags, then FRAMER_* environment variables, then
// $XDG_CONFIG_HOME/framer/config.toml. Loggers travel in the command context;
// --verbose switches them to debug level.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/matzehuels/framer/pkg/buildinfo"
	"github.com/matzehuels/framer/pkg/frame"
	"github.com/matzehuels/framer/pkg/preset"
)

const appName = "framer"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	v      *viper.Viper
}

// New creates a CLI that logs to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		v:      newViper(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:   appName,
		Short: "Framer lays out picture frames around paintings",
		Long: `Framer computes the geometry of a picture frame from a painting's measured
size range, the depth the frame lip should hide on each edge, and the width
of the moulding. It prints the layout and the cut list and draws a
dimensioned schematic.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return c.readConfig(configFile)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&configFile, "config", "", "config file (default: $XDG_CONFIG_HOME/framer/config.toml)")
	c.bindFlags(root.PersistentFlags())

	root.AddCommand(c.presetsCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.partsCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// catalog returns the built-in presets, extended by the --presets file.
func (c *CLI) catalog(ctx context.Context, s settings) (*preset.Catalog, error) {
	if s.presets == "" {
		return preset.Builtin(), nil
	}
	cat, err := preset.Load(s.presets)
	if err != nil {
		return nil, err
	}
	loggerFromContext(ctx).Debugf("Loaded %s: %d presets", s.presets, cat.Len())
	return cat, nil
}

// buildPlan resolves settings and the preset named by args (default ruby)
// and computes its layout and cut list.
func (c *CLI) buildPlan(ctx context.Context, args []string) (string, frame.Plan, settings, error) {
	s, err := c.settings()
	if err != nil {
		return "", frame.Plan{}, s, err
	}
	cat, err := c.catalog(ctx, s)
	if err != nil {
		return "", frame.Plan{}, s, err
	}

	key := preset.DefaultKey
	if len(args) > 0 {
		key = args[0]
	}
	spec, err := cat.Get(key)
	if err != nil {
		return "", frame.Plan{}, s, err
	}

	plan, err := frame.Build(spec, s.stock)
	if err != nil {
		return "", frame.Plan{}, s, err
	}
	loggerFromContext(ctx).Debugf("Built %s on %g\" stock: exterior %.2f x %.2f cm",
		key, s.stock.WidthIn, plan.Layout.Exterior.Width(), plan.Layout.Exterior.Height())
	return key, plan, s, nil
}

// completePresets offers built-in preset keys for shell completion.
func (c *CLI) completePresets(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return preset.Builtin().Keys(), cobra.ShellCompDirectiveNoFileComp
}
