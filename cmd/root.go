package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pbruna/todotui/internal/app"
	"github.com/pbruna/todotui/internal/config"
	"github.com/pbruna/todotui/internal/logging"
	"github.com/pbruna/todotui/internal/tui"
)

var (
	flagServer string
	flagConfig string
)

var rootCmd = &cobra.Command{
	Use:   "todotui",
	Short: "todotui - a terminal todo list backed by a REST API",
	Long: `todotui is a terminal todo list manager. It keeps no local state:
every change is written to a remote todos API and the list is reloaded
from the server after each mutation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := logging.Init(); err != nil {
			return fmt.Errorf("init logging: %w", err)
		}

		cfg, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if flagServer != "" {
			cfg.Server.BaseURL = flagServer
		}

		a := app.New(cfg)
		model := tui.InitialModel(a.TodoService, cfg)

		p := tea.NewProgram(model, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("run program: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&flagServer, "server", "", "base URL of the todos API (overrides config)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "path to the config file")
}

func Execute() error {
	return rootCmd.Execute()
}
