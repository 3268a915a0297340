package cmd

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/msto63/textx/core/config"
	txerror "github.com/msto63/textx/core/error"
	"github.com/msto63/textx/core/log"
	"github.com/msto63/textx/utils/textx"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	ordinal bool

	cfg    = config.Default()
	logger = log.Discard()
)

var rootCmd = &cobra.Command{
	Use:   "textx",
	Short: "textx - null-sichere Text-Werkzeuge",
	Long: `textx bündelt null- und grenzsichere Textfunktionen als Kommandozeile.

Befehle:
  has      - Enthält SOURCE den Wert FIND?
  equal    - Vergleich ohne Groß-/Kleinschreibung
  substr   - Teilstring ab START, optional mit LENGTH
  trim     - Leerraum an den Rändern entfernen
  after    - Text nach dem ersten Vorkommen von FIND
  before   - Text vor dem ersten Vorkommen von FIND
  base64   - Ist SOURCE gültiges Base64?
  play     - Interaktiver Spielplatz (TUI)`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command and reports a failure on stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		logger.LogError(err)
		printError(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: ./textx.toml, $"+config.EnvConfigPath+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")
	rootCmd.PersistentFlags().BoolVar(&ordinal, "ordinal", false, "Groß-/Kleinschreibung beachten")
}

func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Discover(cfgFile)
	if err != nil {
		return err
	}
	if verbose {
		loaded.General.LogLevel = "debug"
	}

	cfg = loaded
	logger = cfg.LoggerTo(cmd.ErrOrStderr()).WithCorrelationID(uuid.NewString())
	logger.Debug("configuration loaded", log.Fields{
		"source":     cfg.Source(),
		"comparison": comparison().String(),
	})
	return nil
}

// comparison is the configured mode unless --ordinal overrides it
func comparison() textx.Comparison {
	if ordinal {
		return textx.Ordinal
	}
	return cfg.Text.Comparison
}

func printError(err error) {
	w := rootCmd.ErrOrStderr()
	errColor := color.New(color.FgRed, color.Bold)
	if code := txerror.GetCode(err); code != txerror.CodeUnknown {
		errColor.Fprintf(w, "Fehler [%s]: ", code)
	} else {
		errColor.Fprint(w, "Fehler: ")
	}
	fmt.Fprintln(w, err)

	if cfgFile != "" && txerror.HasCode(err, txerror.CodeNotFound) {
		fmt.Fprintf(w, "Hinweis: --config %s existiert nicht\n", cfgFile)
	}
	if verbose {
		var e *txerror.Error
		if errors.As(err, &e) && e.RootCause() != error(e) {
			fmt.Fprintf(w, "Ursache: %v\n", e.RootCause())
		}
	}
}
