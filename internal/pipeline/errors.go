package pipeline

import "fmt"

// Stage names a pipeline step for error reporting
type Stage string

const (
	StageOutput     Stage = "output"
	StageFetch      Stage = "fetch"
	StageTranscode  Stage = "transcode"
	StageTranscribe Stage = "transcribe"
	StageSummarize  Stage = "summarize"
)

// StageError is returned when a step fails; the remaining steps are skipped.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func stageErr(stage Stage, err error) error {
	return &StageError{Stage: stage, Err: err}
}
