package fetcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nguyentantai21042004/ytresumen/internal/logger"
	"github.com/nguyentantai21042004/ytresumen/pkg/executor"
)

type implYTDLP struct {
	binary      string
	audioFormat string
	executor    executor.Executor
	logger      logger.Logger
}

// NewYTDLP creates a Fetcher that shells out to yt-dlp
func NewYTDLP(binary, audioFormat string, exec executor.Executor, log logger.Logger) Fetcher {
	if binary == "" {
		binary = "yt-dlp"
	}
	if audioFormat == "" {
		audioFormat = "mp3"
	}
	return &implYTDLP{
		binary:      binary,
		audioFormat: audioFormat,
		executor:    exec,
		logger:      log,
	}
}

// Fetch downloads audio only, converted by yt-dlp to the configured format
func (f *implYTDLP) Fetch(ctx context.Context, url, dir string) (string, error) {
	audioPath := filepath.Join(dir, AudioBaseName+"."+f.audioFormat)

	f.logger.Info(ctx, "Downloading audio: %s", url)

	// yt-dlp picks the extension itself; the template keeps the base name fixed
	args := []string{
		"--extract-audio",
		"--audio-format", f.audioFormat,
		"--no-playlist",
		"--no-progress",
		"-o", AudioBaseName + ".%(ext)s",
		url,
	}

	if _, err := f.executor.ExecuteInDir(ctx, dir, f.binary, args...); err != nil {
		return "", fmt.Errorf("yt-dlp download: %w", err)
	}

	if _, err := os.Stat(audioPath); err != nil {
		return "", fmt.Errorf("yt-dlp produced no audio file: %w", err)
	}

	f.logger.Info(ctx, "Download completed: %s", audioPath)
	return audioPath, nil
}
