package fetcher

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kkdai/youtube/v2"
	"github.com/nguyentantai21042004/ytresumen/internal/logger"
)

// videoClient is the subset of youtube.Client used for downloads
type videoClient interface {
	GetVideoContext(ctx context.Context, url string) (*youtube.Video, error)
	GetStreamContext(ctx context.Context, video *youtube.Video, format *youtube.Format) (io.ReadCloser, int64, error)
}

type implYouTube struct {
	client videoClient
	logger logger.Logger
}

// NewYouTube creates a Fetcher that downloads the best audio-only stream
// directly, without external tools. The stream is stored in its original
// container; the transcoder takes care of the conversion.
func NewYouTube(client videoClient, log logger.Logger) Fetcher {
	return &implYouTube{client: client, logger: log}
}

func (f *implYouTube) Fetch(ctx context.Context, url, dir string) (string, error) {
	f.logger.Info(ctx, "Resolving video: %s", url)

	video, err := f.client.GetVideoContext(ctx, url)
	if err != nil {
		return "", fmt.Errorf("get video: %w", err)
	}

	format, err := bestAudioFormat(video.Formats)
	if err != nil {
		return "", fmt.Errorf("video %q: %w", video.Title, err)
	}

	f.logger.Info(ctx, "Downloading audio stream of %q (%s, %d bps)", video.Title, format.MimeType, format.Bitrate)

	stream, _, err := f.client.GetStreamContext(ctx, video, format)
	if err != nil {
		return "", fmt.Errorf("get stream: %w", err)
	}
	defer stream.Close()

	audioPath := filepath.Join(dir, AudioBaseName+extensionFor(format.MimeType))
	file, err := os.Create(audioPath)
	if err != nil {
		return "", fmt.Errorf("create audio file: %w", err)
	}

	if _, err := io.Copy(file, stream); err != nil {
		file.Close()
		return "", fmt.Errorf("save audio stream: %w", err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("close audio file: %w", err)
	}

	f.logger.Info(ctx, "Download completed: %s", audioPath)
	return audioPath, nil
}

// bestAudioFormat picks the audio-only format with the highest bitrate
func bestAudioFormat(formats youtube.FormatList) (*youtube.Format, error) {
	var best *youtube.Format
	for i := range formats {
		f := &formats[i]
		if !strings.HasPrefix(f.MimeType, "audio/") {
			continue
		}
		if best == nil || f.Bitrate > best.Bitrate {
			best = f
		}
	}
	if best == nil {
		return nil, fmt.Errorf("no audio-only format available")
	}
	return best, nil
}

func extensionFor(mimeType string) string {
	switch {
	case strings.HasPrefix(mimeType, "audio/mp4"):
		return ".m4a"
	case strings.HasPrefix(mimeType, "audio/webm"):
		return ".webm"
	default:
		return ".audio"
	}
}
