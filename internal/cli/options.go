package cli

import (
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/ytresumen/internal/language"
)

// Options holds everything parsed from the command line
type Options struct {
	URL       string
	Language  string
	OutputDir string
	Help      bool

	Docx       bool
	ConfigPath string
	Fetcher    string
	Provider   string
	Model      string
}

// ValidationError reports bad command line input. No work is started when it is returned.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// Validate checks that a URL is present and the language is auto or a key of table
func Validate(opts Options, table language.Table) error {
	if strings.TrimSpace(opts.URL) == "" {
		return &ValidationError{Msg: "a video URL is required"}
	}
	return validateLanguage(opts.Language, table)
}

func validateLanguage(code string, table language.Table) error {
	if !table.Valid(code) {
		return &ValidationError{Msg: fmt.Sprintf("language %q is not supported", code)}
	}
	return nil
}
