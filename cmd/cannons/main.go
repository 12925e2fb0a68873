package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"cannons/internal/config"
	"cannons/internal/raster"
	"cannons/internal/tui"
)


const longHelp = `cannons plays a cannon dodging game on a braille canvas. Given a WKT,
GeoJSON, KML or CSV file it opens the shape gallery instead.

Set CANNONS_DEBUG to any value to log as with --debug.`

var (
	configPath string
	debug      bool
	debugLog   = "cannons-debug.log"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "cannons [shape-file]",
		Short:        "Dodge cannonballs in the terminal, or rasterize shapes",
		Long:         longHelp,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         runPlay,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "TOML configuration file")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "write rasterizer debug logs to "+debugLog)
	root.AddCommand(renderCmd(), snapshotCmd(), configCmd())
	return root
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if debug || os.Getenv("CANNONS_DEBUG") != "" {
		f, err := tea.LogToFile(debugLog, "cannons")
		if err != nil {
			return fmt.Errorf("debug log: %w", err)
		}
		defer f.Close()
		raster.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	var m tea.Model
	if len(args) > 0 {
		m = tui.NewWithPath(cfg, time.Now(), args[0])
	} else {
		m = tui.New(cfg, time.Now())
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

func configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			b, err := cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
}
