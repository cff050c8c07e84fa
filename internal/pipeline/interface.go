package pipeline

import "context"

// Request describes one download/transcribe/summarize run
type Request struct {
	URL       string
	Language  string
	OutputDir string
	// Docx also writes the summary as a Word document
	Docx bool
}

// Result lists the durable outputs of a run
type Result struct {
	SummaryPath string
	DocxPath    string
}

// Pipeline defines the interface for the end-to-end summarization run
type Pipeline interface {
	Run(ctx context.Context, req Request) (Result, error)
}
