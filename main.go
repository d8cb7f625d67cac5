package main

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/kemilad/dashapp/internal/logging"
	"github.com/kemilad/dashapp/internal/tui"
)

var version = "dev"

const banner = `
  ╭───────────────────────────╮
  │  d a s h a p p            │
  ╰───────────────────────────╯
`

// options are the flags of the root command.
type options struct {
	logFile  string
	logLevel string
	noMouse  bool
	inline   bool
}

func main() {
	runtime.GOMAXPROCS(2)
	debug.SetMemoryLimit(128 << 20)

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:   "dashapp",
		Short: "Dashboard, login and sign-up screens in your terminal",
		Long: banner + `  A three screen UI: dashboard, login and sign-up.

  Tab moves between fields and buttons, Enter or a mouse click taps.
  Nothing typed is stored or sent anywhere.

  Examples:
    dashapp                               open the dashboard
    dashapp --log-file /tmp/dashapp.log   log navigation to a file
    dashapp --inline --no-mouse
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "write logs to this file (default: no logging)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error (default: $LOG_LEVEL or info)")
	root.Flags().BoolVar(&opts.noMouse, "no-mouse", false, "disable mouse input")
	root.Flags().BoolVar(&opts.inline, "inline", false, "render in the normal screen buffer instead of the alternate screen")
	root.SilenceUsage = true

	root.AddCommand(versionCmd())
	return root
}

func runTUI(opts options) error {
	level, err := logging.ParseLevel(opts.logLevel)
	if err != nil {
		return err
	}
	logger, closeLog, err := logging.Setup(opts.logFile, level)
	if err != nil {
		return err
	}
	defer closeLog()

	logger.Info("starting", "version", version)
	m := tui.NewModel(tui.Config{Logger: logger})

	var progOpts []tea.ProgramOption
	if !opts.inline {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	if !opts.noMouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}

	final, err := tea.NewProgram(m, progOpts...).Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(*tui.Model); ok && fm.Err() != nil {
		return fm.Err()
	}
	logger.Info("exiting", "screen", m.Current())
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print dashapp version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "  dashapp %s\n", version)
		},
	}
}
