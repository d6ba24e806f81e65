package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idilsaglam/homework/internal/cli"
	"github.com/idilsaglam/homework/internal/config"
	"github.com/idilsaglam/homework/internal/logging"
	"github.com/idilsaglam/homework/internal/store/jsonstore"
	"github.com/idilsaglam/homework/internal/tui"
	"github.com/idilsaglam/homework/internal/ui"
)

// app carries root flags and the state PersistentPreRunE builds from them.
type app struct {
	configPath string
	dataPath   string
	themeName  string
	plain      bool
	verbose    bool

	cfg    *config.Config
	theme  ui.Theme
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "homework",
		Short: "Terminal homework tracker",
		Long: `homework keeps your classes and their assignments in a local JSON file.

Run without arguments to start the interactive prompt. Type h inside it for
the command reference.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInteractive(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (default: user config dir/homework_organizer/config.yaml)")
	root.PersistentFlags().StringVar(&a.dataPath, "data", "", "Data file (overrides config and HOMEWORK_DATA)")
	root.PersistentFlags().StringVar(&a.themeName, "theme", "", "Theme: classic, neon or mono")
	root.PersistentFlags().BoolVar(&a.plain, "plain", false, "Use the line-mode prompt instead of the full-screen UI")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Write debug logs beside the data file")

	root.AddCommand(newLsCmd(a), newExecCmd(a), newExportCmd(a))
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	path := a.configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("data") {
		if cfg.DataPath, err = config.ExpandHome(a.dataPath); err != nil {
			return err
		}
	}
	if flags.Changed("theme") {
		cfg.Theme = a.themeName
	}
	if flags.Changed("plain") {
		cfg.Plain = a.plain
	}
	a.cfg = cfg
	a.theme = ui.ThemeByName(cfg.Theme)

	a.logger, err = logging.New(logging.Options{
		Level:   cfg.Logging.Level,
		File:    cfg.Logging.File,
		Verbose: a.verbose,
		DataDir: filepath.Dir(cfg.DataPath),
	})
	if err != nil {
		return err
	}
	a.logger.Debug("config loaded",
		zap.String("config", path),
		zap.String("data", cfg.DataPath),
		zap.String("theme", cfg.Theme))
	return nil
}

func (a *app) open() (*cli.Session, error) {
	return cli.Open(jsonstore.New(a.cfg.DataPath), a.logger)
}

func (a *app) runInteractive(cmd *cobra.Command) error {
	s, err := a.open()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if a.cfg.Plain || !ui.IsTerminal(out) {
		return cli.Loop(cmd.InOrStdin(), out, s, a.theme)
	}
	return tui.Run(s, a.theme)
}

// userError turns a dispatcher failure into the message the prompt would show.
func userError(err error) error {
	if err == nil || cli.IsFatal(err) {
		return err
	}
	return fmt.Errorf("%s", cli.Message(err))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		ui.Fail(stderr, ui.ThemeByName("classic"), err.Error())
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
