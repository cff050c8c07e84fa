// Package transcoder normalizes downloaded audio into the format Whisper expects.
package transcoder

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/nguyentantai21042004/ytresumen/internal/config"
	"github.com/nguyentantai21042004/ytresumen/internal/logger"
	"github.com/nguyentantai21042004/ytresumen/pkg/executor"
)

// DefaultOutputName is the normalized artifact written next to the input when no output is given
const DefaultOutputName = "converted_audio.wav"

// Transcoder converts media files to mono 16kHz audio
type Transcoder interface {
	Normalize(ctx context.Context, inputPath, outputPath string) (string, error)
}

type implTranscoder struct {
	cfg      config.FFmpegConfig
	executor executor.Executor
	logger   logger.Logger
}

// New creates a new Transcoder instance
func New(cfg config.FFmpegConfig, exec executor.Executor, log logger.Logger) Transcoder {
	return &implTranscoder{cfg: cfg, executor: exec, logger: log}
}

// Normalize converts inputPath to single-channel audio at the configured sample rate,
// overwriting outputPath. An empty outputPath writes DefaultOutputName beside the input.
func (t *implTranscoder) Normalize(ctx context.Context, inputPath, outputPath string) (string, error) {
	if outputPath == "" {
		outputPath = filepath.Join(filepath.Dir(inputPath), DefaultOutputName)
	}

	binary := t.cfg.BinaryPath
	if binary == "" {
		binary = "ffmpeg"
	}
	channels, sampleRate := t.cfg.Channels, t.cfg.SampleRate
	if channels == 0 {
		channels = 1
	}
	if sampleRate == 0 {
		sampleRate = 16000
	}

	t.logger.Info(ctx, "Converting audio to %d channel(s), %d Hz: %s", channels, sampleRate, inputPath)

	// -y: Overwrite output file if exists
	// -ac: channel count
	// -ar: sample rate
	args := []string{
		"-y",
		"-i", inputPath,
		"-ac", strconv.Itoa(channels),
		"-ar", strconv.Itoa(sampleRate),
		outputPath,
	}

	if _, err := t.executor.Execute(ctx, binary, args...); err != nil {
		return "", fmt.Errorf("ffmpeg convert audio: %w", err)
	}

	t.logger.Info(ctx, "Audio converted successfully: %s", outputPath)
	return outputPath, nil
}
