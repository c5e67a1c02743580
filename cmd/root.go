package cmd

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/trine-editor/trine/internal/app"
	"github.com/trine-editor/trine/internal/clipboard"
	"github.com/trine-editor/trine/internal/config"
	"github.com/trine-editor/trine/internal/logger"
)

var (
	debugMode             bool
	quietMode             bool
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "trine [file...]",
	Short: "Terminal text editor with split panes",
	Long: `Trine is a terminal text editor. It opens documents in tabs spread
across up to three side-by-side panes, with a file explorer sidebar and
mouse support for selecting, reordering and dragging tabs between panes.

Files named on the command line are opened after the previous session
is restored.`,
	Args:          cobra.ArbitraryArgs,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initLogging)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging to "+logger.DefaultLogPath)
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
}

func initLogging() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("trine %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("trine %s\n", version)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	defer logger.Close()

	// Clipboard failures degrade copy/paste, not the editor
	if err := clipboard.Init(); err != nil {
		logger.Log("CLI: clipboard unavailable: %v", err)
	}

	m := app.New(cfg, version, args)
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
