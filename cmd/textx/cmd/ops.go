package cmd

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	txerror "github.com/msto63/textx/core/error"
	"github.com/msto63/textx/core/log"
	"github.com/msto63/textx/utils/textx"
	"github.com/spf13/cobra"
)

var (
	strict  bool
	runeArg bool
)

var hasCmd = &cobra.Command{
	Use:   "has SOURCE FIND",
	Short: "Prüft, ob SOURCE den Wert FIND enthält",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		result := textx.HasValue(&args[0], &args[1], comparison())
		return emit(cmd, "has", result)
	},
}

var equalCmd = &cobra.Command{
	Use:   "equal A B",
	Short: "Vergleicht A und B ohne Groß-/Kleinschreibung",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return emit(cmd, "equal", textx.EqualsIgnoreCase(&args[0], &args[1]))
	},
}

var substrCmd = &cobra.Command{
	Use:   "substr SOURCE START [LENGTH]",
	Short: "Teilstring ab START (Zeichen), optional LENGTH Zeichen lang",
	Long: `Liefert den Teilstring ab der Zeichenposition START.

Ungültige Grenzen ergeben einen leeren String; mit --strict werden sie
als Fehler gemeldet.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runSubstr,
}

var trimCmd = &cobra.Command{
	Use:   "trim SOURCE",
	Short: "Entfernt führenden und abschließenden Leerraum",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return emit(cmd, "trim", *textx.SafeTrim(&args[0]))
	},
}

var afterCmd = &cobra.Command{
	Use:   "after SOURCE FIND",
	Short: "Text nach dem ersten Vorkommen von FIND",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDelimiter(cmd, "after", args, textx.SubstringAfterValue, textx.SubstringAfterRune)
	},
}

var beforeCmd = &cobra.Command{
	Use:   "before SOURCE FIND",
	Short: "Text vor dem ersten Vorkommen von FIND",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDelimiter(cmd, "before", args, textx.SubstringBeforeValue, textx.SubstringBeforeRune)
	},
}

var base64Cmd = &cobra.Command{
	Use:   "base64 SOURCE",
	Short: "Prüft, ob SOURCE gültiges Base64 ist",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return emit(cmd, "base64", textx.IsBase64(&args[0]))
	},
}

func init() {
	substrCmd.Flags().BoolVar(&strict, "strict", false, "Ungültige Grenzen als Fehler melden")
	afterCmd.Flags().BoolVar(&runeArg, "rune", false, "FIND als einzelnes Zeichen behandeln")
	beforeCmd.Flags().BoolVar(&runeArg, "rune", false, "FIND als einzelnes Zeichen behandeln")

	rootCmd.AddCommand(hasCmd, equalCmd, substrCmd, trimCmd, afterCmd, beforeCmd, base64Cmd)
}

func runSubstr(cmd *cobra.Command, args []string) error {
	start, err := intArg("substr", "start", args[1])
	if err != nil {
		return err
	}

	if len(args) == 2 {
		if strict {
			// the strict form needs an explicit length
			n := utf8.RuneCountInString(args[0]) - start
			if n < 0 {
				n = 0
			}
			result, err := textx.SubstringWithValidation(&args[0], start, n)
			if err != nil {
				return err
			}
			return emit(cmd, "substr", result)
		}
		return emit(cmd, "substr", textx.SubstringOrEmpty(&args[0], start))
	}

	length, err := intArg("substr", "length", args[2])
	if err != nil {
		return err
	}
	if strict {
		result, err := textx.SubstringWithValidation(&args[0], start, length)
		if err != nil {
			return err
		}
		return emit(cmd, "substr", result)
	}
	return emit(cmd, "substr", textx.SubstringOrEmptyLen(&args[0], start, length))
}

func runDelimiter(
	cmd *cobra.Command,
	op string,
	args []string,
	byValue func(source, find *string, cmp textx.Comparison) string,
	byRune func(source *string, find rune, cmp textx.Comparison) string,
) error {
	if !runeArg {
		return emit(cmd, op, byValue(&args[0], &args[1], comparison()))
	}

	r, size := utf8.DecodeRuneInString(args[1])
	if size == 0 || size != len(args[1]) {
		return txerror.InvalidInput("cmd", op, args[1], "exactly one character")
	}
	return emit(cmd, op, byRune(&args[0], r, comparison()))
}

func intArg(op, name, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, txerror.Wrap(err, "invalid "+name).
			WithCode(txerror.CodeInvalidInput).
			WithOperation("cmd." + op).
			WithDetail("input", value)
	}
	return n, nil
}

// emit prints a result and records it at debug level
func emit(cmd *cobra.Command, op string, result interface{}) error {
	logger.Debug("operation completed", log.Fields{
		"op":         op,
		"comparison": comparison().String(),
		"result":     result,
	})
	_, err := fmt.Fprintln(cmd.OutOrStdout(), result)
	return err
}
