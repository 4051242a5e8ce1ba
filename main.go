package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/truj/midica-sub006/config"
	"github.com/truj/midica-sub006/logging"
)

// Version is set at build time.
var Version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "midimsg [flags] <file.csv|file.json>...",
		Short: "Browse, filter and sort MIDI message tables",
		Long: `midimsg shows the messages of one or more MIDI message tables in a
terminal table grouped by track. Rows can be filtered by text, channel,
tick range, track and message type, and sorted by any column.`,
		Version:      Version,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}

	flags := cmd.Flags()
	flags.StringP("config", "c", "", "config file (default is $XDG_CONFIG_HOME/midimsg/config.yaml)")
	flags.String("debug", "", "write debug logs to file")
	flags.String("level", "", "log level (debug, info, warn, error)")
	flags.String("charset", "", "charset of CSV input, e.g. windows-1252")
	flags.String("delimiter", "", "field delimiter of CSV input")
	return cmd
}

// bindings maps command line flags to config keys.
var bindings = map[string]string{
	"debug":     "logging.file",
	"level":     "logging.level",
	"charset":   "input.charset",
	"delimiter": "input.delimiter",
}

func run(cmd *cobra.Command, args []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	v := config.New(cfgFile)
	for name, key := range bindings {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return err
		}
	}
	// --debug alone implies debug level
	if cmd.Flags().Changed("debug") && !cmd.Flags().Changed("level") {
		v.Set("logging.level", "debug")
	}

	if err := config.Read(v); err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	cleanup, err := logging.SetupLogging(cfg.Logging.File, logging.ParseLevel(cfg.Logging.Level))
	if err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}
	defer cleanup()

	logging.Infof("midimsg %s: started with %d file(s)", Version, len(args))

	table, err := loadTables(args, cfg.Input)
	if err != nil {
		logging.Errorf("load failed: %v", err)
		return err
	}

	m := newModel(table, cfg, args[0])
	var opts []tea.ProgramOption
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		logging.Errorf("Tea program error: %v", err)
		return err
	}
	return nil
}
