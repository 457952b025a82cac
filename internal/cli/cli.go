// Package cli implements the porcus command-line interface.
//
// The root command is a plain filter: it reads all of standard input,
// transforms it to pig latin with the configured suffixes, and writes the
// result to standard output. The only error surfaces are the argument
// parser and undecodable input; the transform itself never fails.
//
// All commands support --verbose for debug-level logging to stderr, so a
// normal pipe run emits nothing besides the transformed text.
package cli

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/porcus/pkg/buildinfo"
	"github.com/matzehuels/porcus/pkg/errors"
	"github.com/matzehuels/porcus/pkg/piglatin"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "porcus"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	stdin  io.Reader
	stdout io.Writer
}

// New creates a new CLI instance with a default logger writing to w.
// Input and output default to os.Stdin and os.Stdout.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
		stdin:  os.Stdin,
		stdout: os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// SetStreams overrides the input and output streams. Used by tests.
func (c *CLI) SetStreams(in io.Reader, out io.Writer) {
	c.stdin = in
	c.stdout = out
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var (
		consonantSuffix string
		vowelSuffix     string
	)

	root := &cobra.Command{
		Use:   appName,
		Short: "Porcus transforms standard input to pig latin",
		Long: `Porcus is a pig latin filter for the whole Latin script, including
diacritics, ligatures, and IPA symbols. It reads text from standard input,
moves each word's leading consonant cluster to the end with a suffix (or
appends a different suffix to vowel-led words), and writes the result to
standard output. Everything between words passes through unchanged.`,
		Version: buildinfo.Version,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return usageError(cmd, err)
			}
			return nil
		},
		// Suppresses usage for runtime errors only; argument errors get
		// their usage from usageError.
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTransform(piglatin.New(consonantSuffix, vowelSuffix))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.Flags().StringVarP(&consonantSuffix, "consonant", "c", piglatin.DefaultConsonantSuffix,
		"suffix for words starting with a consonant")
	root.Flags().StringVarP(&vowelSuffix, "vowel", "v", piglatin.DefaultVowelSuffix,
		"suffix for words starting with a vowel")
	// The vowel flag owns -v, so the version flag takes -V and --verbose
	// (registered in main) has no shorthand.
	root.Flags().BoolP("version", "V", false, "print version information")
	root.SetFlagErrorFunc(usageError)

	root.AddCommand(c.tuiCommand())

	return root
}

// usageError reports a malformed or unrecognized argument: the usage text
// goes to the command's error stream before any input is read, and the
// returned error carries the INVALID_INPUT code and a non-zero exit.
func usageError(cmd *cobra.Command, err error) error {
	fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
	return errors.Wrap(errors.ErrCodeInvalidInput, err, "parsing arguments")
}

// =============================================================================
// Transform Runner
// =============================================================================

// runTransform reads all of stdin, validates it as UTF-8, transforms it
// once, and writes the result to stdout. Either the whole input transforms
// or no output is produced.
func (c *CLI) runTransform(t *piglatin.Transformer) error {
	c.Logger.Debugf("%s %s", appName, buildinfo.String())
	p := newProgress(c.Logger)

	data, err := io.ReadAll(c.stdin)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "reading standard input")
	}
	if !utf8.Valid(data) {
		return errors.New(errors.ErrCodeInvalidEncoding, "standard input is not valid UTF-8 text")
	}
	c.Logger.Debugf("read %d bytes from stdin", len(data))

	out := t.Transform(string(data))

	if _, err := io.WriteString(c.stdout, out); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "writing standard output")
	}
	p.done("transformed %d bytes", len(data))
	return nil
}
