package main

import (
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/aaronzipp/mun-display/internal/committee"
	"github.com/aaronzipp/mun-display/internal/conference"
	"github.com/aaronzipp/mun-display/internal/config"
	"github.com/aaronzipp/mun-display/internal/console"
)

// pickCommittee asks for a committee when none was given on the command line
func pickCommittee(committees committee.Provider, fallback string) (string, error) {
	code := committee.Normalize(fallback)
	options := make([]huh.Option[string], 0, len(committees.Codes()))
	for _, c := range committees.Codes() {
		rec, _ := committees.Lookup(c)
		options = append(options, huh.NewOption(rec.DisplayName, c))
	}
	if err := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Committee").
			Options(options...).
			Value(&code),
	)).Run(); err != nil {
		return "", err
	}
	return code, nil
}

func consoleCommand() *cobra.Command {
	var code string
	cmd := &cobra.Command{
		Use:   "console",
		Short: "Run a committee session in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.FromContext(cmd.Context())
			if cfg == nil {
				return fmt.Errorf("no config found in context")
			}
			// stdout belongs to the TUI
			slog.SetDefault(slog.New(slog.NewJSONHandler(io.Discard, nil)))

			committees, err := loadCommittees(cfg)
			if err != nil {
				return err
			}
			if code == "" {
				if code, err = pickCommittee(committees, cfg.DefaultCommittee); err != nil {
					return err
				}
			}
			session, err := conference.New(committees, code)
			if err != nil {
				return err
			}

			p := tea.NewProgram(console.New(session, committees, cfg.TickInterval), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}
	cmd.Flags().StringVarP(&code, "committee", "c", "", "committee code, prompted for when empty")
	return cmd
}
