package transcriber

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/ytresumen/internal/config"
	"github.com/nguyentantai21042004/ytresumen/internal/logger"
	"github.com/nguyentantai21042004/ytresumen/pkg/executor"
)

type implWhisperCLI struct {
	cfg      config.WhisperConfig
	executor executor.Executor
	logger   logger.Logger
}

// NewWhisperCLI creates a Transcriber backed by the whisper.cpp command line tool.
// A quantized base model (q8_0) gives the reduced-precision inference.
func NewWhisperCLI(cfg config.WhisperConfig, exec executor.Executor, log logger.Logger) Transcriber {
	return &implWhisperCLI{cfg: cfg, executor: exec, logger: log}
}

// whisperJSON is the document written by whisper.cpp with -oj
type whisperJSON struct {
	Transcription []struct {
		Offsets struct {
			From int64 `json:"from"`
			To   int64 `json:"to"`
		} `json:"offsets"`
		Text string `json:"text"`
	} `json:"transcription"`
}

func (w *implWhisperCLI) Transcribe(ctx context.Context, audioPath, lang string) ([]Segment, error) {
	// Whisper appends .json to the prefix
	outputPrefix := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))
	jsonPath := outputPrefix + ".json"
	defer os.Remove(jsonPath)

	// whisper.cpp defaults to English; "auto" is its detection switch
	if lang == "" {
		lang = "auto"
	}

	w.logger.Info(ctx, "Starting transcription with %d threads (language: %s): %s", w.cfg.Threads, lang, audioPath)

	// -oj: JSON output with per-segment offsets
	// -np: No progress/timing prints
	args := []string{
		"-m", w.cfg.ModelPath,
		"-f", audioPath,
		"-l", lang,
		"-t", strconv.Itoa(w.cfg.Threads),
		"-oj",
		"-np",
		"-of", outputPrefix,
	}

	if _, err := w.executor.Execute(ctx, w.cfg.BinaryPath, args...); err != nil {
		return nil, fmt.Errorf("whisper transcribe: %w", err)
	}

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("read whisper output: %w", err)
	}

	var doc whisperJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode whisper output: %w", err)
	}

	segments := make([]Segment, len(doc.Transcription))
	for i, s := range doc.Transcription {
		segments[i] = Segment{
			Start: float64(s.Offsets.From) / 1000,
			End:   float64(s.Offsets.To) / 1000,
			Text:  s.Text,
		}
	}

	w.logger.Info(ctx, "Transcription completed: %d segments", len(segments))
	return segments, nil
}
