package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/msto63/textx/core/config"
	"github.com/msto63/textx/internal/play"
	"github.com/spf13/cobra"
)

var watch bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Startet den interaktiven Spielplatz",
	Long: `Startet den Terminal-Spielplatz von textx.

Alle Funktionen werden bei jeder Eingabe neu ausgewertet. Mit --watch
wird die Config-Datei überwacht und der Vergleich bei Änderungen
übernommen.

Navigation:
  Tab       - Nächstes Feld
  Shift+Tab - Vorheriges Feld
  Ctrl+O    - Vergleich umschalten (ignore_case/ordinal)
  Ctrl+N    - Source als null behandeln
  Esc       - Beenden`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&watch, "watch", false, "Config-Datei überwachen")
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	p := tea.NewProgram(
		play.NewModel(comparison(), logger),
		tea.WithAltScreen(),
	)

	if watch && cfg.Source() != "" {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		w, err := config.Watch(ctx, cfg.Source(), logger, func(c *config.Config) {
			if !ordinal {
				p.Send(play.ComparisonMsg(c.Text.Comparison))
			}
		})
		if err != nil {
			return err
		}
		defer w.Close()
	}

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "TUI Fehler: %v\n", err)
		return err
	}

	return nil
}
