package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/nguyentantai21042004/ytresumen/internal/logger"
	"github.com/nguyentantai21042004/ytresumen/internal/report"
	"github.com/nguyentantai21042004/ytresumen/internal/transcoder"
	"github.com/nguyentantai21042004/ytresumen/internal/transcriber"
)

// Run orchestrates download, conversion, transcription and summarization.
// Every step requires the previous one to have succeeded. Intermediate
// files are removed once consumed, and the workspace on every return path.
func (p *implPipeline) Run(ctx context.Context, req Request) (Result, error) {
	startTime := time.Now()
	if logger.RunID(ctx) == "" {
		ctx = logger.WithRunID(ctx, uuid.NewString()[:8])
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting: %s", req.URL)
	p.logger.Info(ctx, "========================================")

	if err := os.MkdirAll(req.OutputDir, 0755); err != nil {
		return Result{}, stageErr(StageOutput, fmt.Errorf("create output dir: %w", err))
	}

	ws, err := newWorkspace(p.tempRoot)
	if err != nil {
		return Result{}, stageErr(StageOutput, err)
	}
	defer p.release(ctx, ws)

	// Step 1: Download audio
	audioPath, err := p.stages.Fetcher.Fetch(ctx, req.URL, ws.dir)
	if err != nil {
		return Result{}, stageErr(StageFetch, err)
	}
	p.logger.Info(ctx, "[1/4] Download completed")

	// Step 2: Convert to mono 16kHz
	wavPath, err := p.stages.Transcoder.Normalize(ctx, audioPath, ws.path(transcoder.DefaultOutputName))
	if err != nil {
		return Result{}, stageErr(StageTranscode, err)
	}
	p.cleanupTempFile(ctx, audioPath)
	p.logger.Info(ctx, "[2/4] Audio converted")

	// Step 3: Transcribe
	transcriptPath, err := transcriber.ToFile(ctx, p.stages.Transcriber, wavPath, req.Language, ws.path(TranscriptName))
	if err != nil {
		return Result{}, stageErr(StageTranscribe, err)
	}
	p.cleanupTempFile(ctx, wavPath)
	p.logger.Info(ctx, "[3/4] Transcription completed, audio files removed")

	// Step 4: Summarize into the output folder
	summaryPath, err := p.stages.Summarizer.SummarizeFile(ctx, transcriptPath, filepath.Join(req.OutputDir, SummaryName))
	if err != nil {
		return Result{}, stageErr(StageSummarize, err)
	}
	p.cleanupTempFile(ctx, transcriptPath)
	p.logger.Info(ctx, "[4/4] Summary completed, transcript removed")

	result := Result{SummaryPath: summaryPath}

	if req.Docx {
		docxPath, err := p.writeDocx(ctx, req, summaryPath)
		if err != nil {
			p.logger.Warn(ctx, "Failed to write docx summary: %v", err)
		} else {
			result.DocxPath = docxPath
		}
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing completed successfully!")
	p.logger.Info(ctx, "Summary saved to: %s", result.SummaryPath)
	if result.DocxPath != "" {
		p.logger.Info(ctx, "Docx saved to: %s", result.DocxPath)
	}
	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime).Round(time.Second))
	p.logger.Info(ctx, "========================================")

	return result, nil
}

// writeDocx renders the saved summary with the run's URL and date in the header
func (p *implPipeline) writeDocx(ctx context.Context, req Request, summaryPath string) (string, error) {
	if p.stages.Report == nil {
		return "", fmt.Errorf("no docx writer configured")
	}

	content, err := os.ReadFile(summaryPath)
	if err != nil {
		return "", fmt.Errorf("read summary: %w", err)
	}

	header := report.Header{Title: ReportTitle, Source: req.URL, Date: time.Now()}
	docxPath := filepath.Join(req.OutputDir, DocxName)
	if err := p.stages.Report.Write(ctx, header, string(content), docxPath); err != nil {
		return "", err
	}
	return docxPath, nil
}
