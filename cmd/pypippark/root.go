package main

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/conn-castle/pypippark/internal/config"
	"github.com/conn-castle/pypippark/internal/dispatch"
	"github.com/conn-castle/pypippark/internal/logging"
	"github.com/conn-castle/pypippark/internal/messages"
	"github.com/conn-castle/pypippark/internal/terminal"
)

var (
	getenv        = os.Getenv
	defaultLocate = config.DefaultLocator
)

// globalFlags holds the persistent flags shared by every verb.
type globalFlags struct {
	config   string
	venv     string
	location string
	python   string
	quiet    bool
	verbose  bool
	noColor  bool
}

func (g *globalFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&g.config, "config", "", messages.FlagConfig)
	fs.StringVar(&g.venv, "venv", "", messages.FlagVenv)
	fs.StringVar(&g.location, "location", "", messages.FlagLocation)
	fs.StringVar(&g.python, "python", "", messages.FlagPython)
	fs.BoolVarP(&g.quiet, "quiet", "q", false, messages.FlagQuiet)
	fs.BoolVarP(&g.verbose, "verbose", "v", false, messages.FlagVerbose)
	fs.BoolVar(&g.noColor, "no-color", false, messages.FlagNoColor)
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags.register(cmd.PersistentFlags())
	cmd.Flags().Bool("version", false, messages.RootVersionFlag)

	cmd.AddCommand(
		newInstallCmd(flags),
		newListCmd(flags),
		newRemoveCmd(flags),
		newUpdateCmd(flags),
		newRunCmd(flags),
		newShellCmd(flags),
		newPathCmd(flags),
		newDoctorCmd(flags),
	)
	return cmd
}

// loadConfig resolves the config file and applies environment and flag overrides.
func loadConfig(g *globalFlags, logger *log.Logger) (*config.Config, error) {
	path := strings.TrimSpace(g.config)
	explicit := path != ""
	if explicit {
		expanded, err := config.ExpandPath(path)
		if err != nil {
			return nil, err
		}
		path = expanded
	} else {
		var err error
		path, explicit, err = config.DefaultPath(getenv)
		if err != nil {
			return nil, err
		}
	}

	cfg, err := config.Load(path, explicit)
	if err != nil {
		return nil, err
	}
	if cfg.Source != "" {
		logger.Debug(messages.ConfigLoadedMsg, "path", cfg.Source)
	} else {
		logger.Debug(messages.ConfigDefaultsMsg, "path", path)
	}

	overrides := config.Overrides{Venv: g.venv, Location: g.location, Python: g.python}
	if err := cfg.ApplyOverrides(overrides, getenv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyColor sets the global colour switch. auto disables colour when out is
// not a terminal and otherwise keeps fatih/color's own detection.
func applyColor(mode string, noColor bool, out io.Writer) {
	switch {
	case noColor || mode == config.ColorNever:
		color.NoColor = true
	case mode == config.ColorAlways:
		color.NoColor = false
	case !terminal.IsTerminal(out):
		color.NoColor = true
	}
}

// newDispatcher builds a Dispatcher from the flags and the command's streams.
func newDispatcher(cmd *cobra.Command, g *globalFlags) (*dispatch.Dispatcher, error) {
	logger := logging.New(cmd.ErrOrStderr(), g.verbose, g.quiet)
	cfg, err := loadConfig(g, logger)
	if err != nil {
		return nil, err
	}
	applyColor(cfg.Output.Color, g.noColor, cmd.OutOrStdout())
	root, err := cfg.VenvRoot(defaultLocate())
	if err != nil {
		return nil, err
	}
	logger.Debug(messages.VenvResolvedMsg, "location", cfg.Venv.Location, "root", root)

	var status io.Writer = cmd.OutOrStdout()
	if g.quiet {
		status = io.Discard
	}
	return dispatch.New(cfg, dispatch.Options{
		Root:   root,
		Status: status,
		Stdin:  cmd.InOrStdin(),
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
		Logger: logger,
	})
}
