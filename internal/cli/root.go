// Package cli parses and validates the ytresumen command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nguyentantai21042004/ytresumen/internal/language"
	"github.com/spf13/cobra"
)

const defaultConfigPath = "config.yaml"

// Runner does the actual work once the command line is valid
type Runner interface {
	Run(ctx context.Context, opts Options) error
	Watch(ctx context.Context, inbox string, opts Options) error
}

// longFlags may also be written with a single dash, e.g. -language es
var longFlags = map[string]bool{
	"language": true,
	"output":   true,
	"help":     true,
	"docx":     true,
	"config":   true,
	"fetcher":  true,
	"provider": true,
	"model":    true,
}

// NewRootCmd creates the root command. Help goes to out, errors and usage after them to errOut.
func NewRootCmd(table language.Table, runner Runner, out, errOut io.Writer) *cobra.Command {
	opts := &Options{}

	rootCmd := &cobra.Command{
		Use:           "ytresumen [flags] <url>",
		Short:         "Summarize the audio of a video",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.URL = args[0]
			}
			if err := Validate(*opts, table); err != nil {
				return err
			}
			return runner.Run(cmd.Context(), *opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.Language, "language", "l", language.Default, "transcription language code, or auto")
	flags.StringVarP(&opts.OutputDir, "output", "o", "", "destination folder")
	flags.BoolVarP(&opts.Help, "help", "h", false, "show this help")
	flags.BoolVar(&opts.Docx, "docx", false, "also write resumen.docx")
	flags.StringVar(&opts.ConfigPath, "config", defaultConfigPath, "configuration file")
	flags.StringVar(&opts.Fetcher, "fetcher", "", "audio downloader: ytdlp | youtube")
	flags.StringVar(&opts.Provider, "provider", "", "summary provider: groq | openai | gemini")
	flags.StringVar(&opts.Model, "model", "", "summary model")

	rootCmd.SetHelpFunc(func(cmd *cobra.Command, _ []string) {
		PrintUsage(out, table)
	})
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.AddCommand(newWatchCmd(table, runner, opts))

	return rootCmd
}

func newWatchCmd(table language.Table, runner Runner, opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <inbox>",
		Short: "Summarize every URL list dropped into an inbox folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateLanguage(opts.Language, table); err != nil {
				return err
			}
			return runner.Watch(cmd.Context(), args[0], *opts)
		},
	}
}

// Execute parses args, runs the command and reports failures on errOut.
// A validation failure is followed by the usage text.
func Execute(ctx context.Context, args []string, table language.Table, runner Runner, out, errOut io.Writer) error {
	cmd := NewRootCmd(table, runner, out, errOut)
	cmd.SetArgs(normalizeArgs(args))

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return nil
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		fmt.Fprintf(errOut, "Error: %v\n\n", err)
		PrintUsage(errOut, table)
		return err
	}

	// cobra's own argument and flag errors are user input errors too
	if isUsageError(err) {
		fmt.Fprintf(errOut, "Error: %v\n\n", err)
		PrintUsage(errOut, table)
		return &ValidationError{Msg: err.Error()}
	}

	fmt.Fprintf(errOut, "Error: %v\n", err)
	return err
}

// normalizeArgs rewrites single-dash long flags (-language) to their double-dash form
func normalizeArgs(args []string) []string {
	normalized := make([]string, 0, len(args))
	for i, arg := range args {
		if arg == "--" {
			return append(normalized, args[i:]...)
		}
		if strings.HasPrefix(arg, "-") && !strings.HasPrefix(arg, "--") {
			name, _, _ := strings.Cut(arg[1:], "=")
			if longFlags[name] {
				arg = "-" + arg
			}
		}
		normalized = append(normalized, arg)
	}
	return normalized
}

func isUsageError(err error) bool {
	msg := err.Error()
	for _, prefix := range []string{"unknown flag", "unknown shorthand flag", "flag needs an argument", "invalid argument", "accepts ", "unknown command"} {
		if strings.HasPrefix(msg, prefix) {
			return true
		}
	}
	return false
}
