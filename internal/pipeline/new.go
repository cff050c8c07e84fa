package pipeline

import (
	"github.com/nguyentantai21042004/ytresumen/internal/fetcher"
	"github.com/nguyentantai21042004/ytresumen/internal/logger"
	"github.com/nguyentantai21042004/ytresumen/internal/report"
	"github.com/nguyentantai21042004/ytresumen/internal/summarizer"
	"github.com/nguyentantai21042004/ytresumen/internal/transcoder"
	"github.com/nguyentantai21042004/ytresumen/internal/transcriber"
)

// Stages are the external collaborators driven by the pipeline, in run order.
// Report is only needed for requests asking for a docx.
type Stages struct {
	Fetcher     fetcher.Fetcher
	Transcoder  transcoder.Transcoder
	Transcriber transcriber.Transcriber
	Summarizer  summarizer.Summarizer
	Report      report.Writer
}

type implPipeline struct {
	stages   Stages
	tempRoot string
	logger   logger.Logger
}

// New creates a new Pipeline instance. Intermediate files live in a fresh
// directory under tempRoot (the system temp dir when empty).
func New(stages Stages, tempRoot string, log logger.Logger) Pipeline {
	return &implPipeline{
		stages:   stages,
		tempRoot: tempRoot,
		logger:   log,
	}
}
