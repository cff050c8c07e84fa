package cli

import (
	"context"
	"errors"

	"github.com/nguyentantai21042004/ytresumen/internal/pipeline"
	"github.com/nguyentantai21042004/ytresumen/internal/summarizer"
)

// Process exit codes
const (
	ExitOK            = 0
	ExitError         = 1
	ExitValidation    = 2
	ExitFetch         = 3
	ExitTranscode     = 4
	ExitTranscribe    = 5
	ExitSummarize     = 6
	ExitNonConvergent = 7
	ExitInterrupted   = 130
)

// ExitCode maps an error returned by Execute to the process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return ExitValidation
	}
	if errors.Is(err, context.Canceled) {
		return ExitInterrupted
	}
	if errors.Is(err, summarizer.ErrNonConvergent) {
		return ExitNonConvergent
	}

	var stageErr *pipeline.StageError
	if errors.As(err, &stageErr) {
		switch stageErr.Stage {
		case pipeline.StageFetch:
			return ExitFetch
		case pipeline.StageTranscode:
			return ExitTranscode
		case pipeline.StageTranscribe:
			return ExitTranscribe
		case pipeline.StageSummarize:
			return ExitSummarize
		}
	}
	return ExitError
}
