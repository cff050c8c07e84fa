package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/nguyentantai21042004/ytresumen/internal/language"
	"github.com/nguyentantai21042004/ytresumen/internal/pipeline"
	"github.com/nguyentantai21042004/ytresumen/internal/summarizer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	runs    []Options
	watches []string
	err     error
}

func (f *fakeRunner) Run(ctx context.Context, opts Options) error {
	f.runs = append(f.runs, opts)
	return f.err
}

func (f *fakeRunner) Watch(ctx context.Context, inbox string, opts Options) error {
	f.watches = append(f.watches, inbox)
	f.runs = append(f.runs, opts)
	return f.err
}

func execute(t *testing.T, runner *fakeRunner, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := Execute(context.Background(), args, language.Supported, runner, &out, &errOut)
	return out.String(), errOut.String(), err
}

func TestExecute_Defaults(t *testing.T) {
	runner := &fakeRunner{}

	_, _, err := execute(t, runner, "https://youtu.be/abc")
	require.NoError(t, err)

	require.Len(t, runner.runs, 1)
	opts := runner.runs[0]
	assert.Equal(t, "https://youtu.be/abc", opts.URL)
	assert.Equal(t, "es", opts.Language)
	assert.Empty(t, opts.OutputDir)
	assert.Equal(t, "config.yaml", opts.ConfigPath)
	assert.False(t, opts.Docx)
}

func TestExecute_FlagForms(t *testing.T) {
	tcs := map[string][]string{
		"short":       {"-l", "en", "-o", "/tmp/out", "https://youtu.be/abc"},
		"single dash": {"-language", "en", "-output", "/tmp/out", "https://youtu.be/abc"},
		"double dash": {"--language", "en", "--output", "/tmp/out", "https://youtu.be/abc"},
		"equals":      {"-language=en", "-output=/tmp/out", "https://youtu.be/abc"},
		"url first":   {"https://youtu.be/abc", "-l", "en", "-o", "/tmp/out"},
	}

	for name, args := range tcs {
		t.Run(name, func(t *testing.T) {
			runner := &fakeRunner{}

			_, _, err := execute(t, runner, args...)
			require.NoError(t, err)
			require.Len(t, runner.runs, 1)
			assert.Equal(t, "en", runner.runs[0].Language)
			assert.Equal(t, "/tmp/out", runner.runs[0].OutputDir)
			assert.Equal(t, "https://youtu.be/abc", runner.runs[0].URL)
		})
	}
}

func TestExecute_SupplementalFlags(t *testing.T) {
	runner := &fakeRunner{}

	_, _, err := execute(t, runner, "-docx", "-config", "alt.yaml", "-fetcher", "youtube", "-provider", "gemini", "-model", "gemini-2.5-pro", "-l", "auto", "https://youtu.be/abc")
	require.NoError(t, err)

	require.Len(t, runner.runs, 1)
	assert.Equal(t, Options{
		URL:        "https://youtu.be/abc",
		Language:   "auto",
		Docx:       true,
		ConfigPath: "alt.yaml",
		Fetcher:    "youtube",
		Provider:   "gemini",
		Model:      "gemini-2.5-pro",
	}, runner.runs[0])
}

func TestExecute_Help(t *testing.T) {
	for _, flag := range []string{"-help", "--help", "-h"} {
		t.Run(flag, func(t *testing.T) {
			runner := &fakeRunner{}

			out, _, err := execute(t, runner, flag)
			require.NoError(t, err)
			assert.Empty(t, runner.runs)

			assert.Contains(t, out, "Usage:")
			assert.Contains(t, out, "auto  Detección automática")
			assert.Contains(t, out, "es    Español")
			assert.Contains(t, out, "Examples:")
		})
	}
}

func TestExecute_InvalidLanguage(t *testing.T) {
	runner := &fakeRunner{}

	_, errOut, err := execute(t, runner, "-l", "xx", "https://youtu.be/abc")
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, err.Error(), `"xx"`)
	assert.Empty(t, runner.runs)

	assert.Contains(t, errOut, `"xx"`)
	assert.Contains(t, errOut, "Usage:")
	assert.Equal(t, ExitValidation, ExitCode(err))
}

func TestExecute_MissingURL(t *testing.T) {
	runner := &fakeRunner{}

	_, errOut, err := execute(t, runner, "-l", "en")
	require.Error(t, err)

	assert.Equal(t, ExitValidation, ExitCode(err))
	assert.Contains(t, errOut, "URL is required")
	assert.Contains(t, errOut, "Usage:")
	assert.Empty(t, runner.runs)
}

func TestExecute_UnknownFlag(t *testing.T) {
	runner := &fakeRunner{}

	_, errOut, err := execute(t, runner, "--bogus", "https://youtu.be/abc")
	require.Error(t, err)

	assert.Equal(t, ExitValidation, ExitCode(err))
	assert.Contains(t, errOut, "Usage:")
	assert.Empty(t, runner.runs)
}

func TestExecute_RunnerError(t *testing.T) {
	runner := &fakeRunner{err: &pipeline.StageError{Stage: pipeline.StageFetch, Err: errors.New("yt-dlp failed")}}

	_, errOut, err := execute(t, runner, "https://youtu.be/abc")
	require.Error(t, err)

	assert.Equal(t, ExitFetch, ExitCode(err))
	assert.Contains(t, errOut, "fetch: yt-dlp failed")
	assert.NotContains(t, errOut, "Usage:")
}

func TestExecute_Watch(t *testing.T) {
	runner := &fakeRunner{}

	_, _, err := execute(t, runner, "watch", "-l", "auto", "-docx", "/srv/inbox")
	require.NoError(t, err)

	assert.Equal(t, []string{"/srv/inbox"}, runner.watches)
	require.Len(t, runner.runs, 1)
	assert.Equal(t, "auto", runner.runs[0].Language)
	assert.True(t, runner.runs[0].Docx)
}

func TestExecute_WatchInvalidLanguage(t *testing.T) {
	runner := &fakeRunner{}

	_, _, err := execute(t, runner, "watch", "-language", "zz", "/srv/inbox")
	assert.Equal(t, ExitValidation, ExitCode(err))
	assert.Empty(t, runner.watches)
}

func TestValidate(t *testing.T) {
	table := language.Table{"es": "Español", "en": "Inglés"}

	tcs := map[string]struct {
		opts    Options
		wantErr string
	}{
		"valid":          {opts: Options{URL: "u", Language: "es"}},
		"auto":           {opts: Options{URL: "u", Language: "auto"}},
		"missing url":    {opts: Options{Language: "es"}, wantErr: "URL is required"},
		"blank url":      {opts: Options{URL: "  ", Language: "es"}, wantErr: "URL is required"},
		"not in table":   {opts: Options{URL: "u", Language: "fr"}, wantErr: `"fr"`},
		"empty language": {opts: Options{URL: "u"}, wantErr: `""`},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			err := Validate(tc.opts, table)
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestNormalizeArgs(t *testing.T) {
	got := normalizeArgs([]string{"-language", "en", "-o", "x", "-docx", "-output=y", "-lfr", "--model", "m", "--", "-help"})
	assert.Equal(t, []string{"--language", "en", "-o", "x", "--docx", "--output=y", "-lfr", "--model", "m", "--", "-help"}, got)
}

func TestExitCode(t *testing.T) {
	tcs := map[string]struct {
		err  error
		want int
	}{
		"nil":            {err: nil, want: ExitOK},
		"validation":     {err: &ValidationError{Msg: "bad"}, want: ExitValidation},
		"fetch":          {err: &pipeline.StageError{Stage: pipeline.StageFetch, Err: errors.New("x")}, want: ExitFetch},
		"transcode":      {err: &pipeline.StageError{Stage: pipeline.StageTranscode, Err: errors.New("x")}, want: ExitTranscode},
		"transcribe":     {err: &pipeline.StageError{Stage: pipeline.StageTranscribe, Err: errors.New("x")}, want: ExitTranscribe},
		"summarize":      {err: &pipeline.StageError{Stage: pipeline.StageSummarize, Err: errors.New("x")}, want: ExitSummarize},
		"output":         {err: &pipeline.StageError{Stage: pipeline.StageOutput, Err: errors.New("x")}, want: ExitError},
		"non convergent": {err: &pipeline.StageError{Stage: pipeline.StageSummarize, Err: summarizer.ErrNonConvergent}, want: ExitNonConvergent},
		"interrupted":    {err: &pipeline.StageError{Stage: pipeline.StageTranscribe, Err: context.Canceled}, want: ExitInterrupted},
		"wrapped":        {err: fmt.Errorf("run: %w", &ValidationError{Msg: "bad"}), want: ExitValidation},
		"other":          {err: errors.New("config broken"), want: ExitError},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExitCode(tc.err))
		})
	}
}
