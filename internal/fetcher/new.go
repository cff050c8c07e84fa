package fetcher

import (
	"fmt"
	"net/http"

	"github.com/kkdai/youtube/v2"
	"github.com/nguyentantai21042004/ytresumen/internal/config"
	"github.com/nguyentantai21042004/ytresumen/internal/logger"
	"github.com/nguyentantai21042004/ytresumen/pkg/executor"
)

// AudioBaseName is the fixed name (without extension) of the downloaded audio artifact
const AudioBaseName = "audio"

// New creates the Fetcher selected by cfg.Backend
func New(cfg config.FetcherConfig, exec executor.Executor, log logger.Logger) (Fetcher, error) {
	switch cfg.Backend {
	case "ytdlp", "":
		return NewYTDLP(cfg.BinaryPath, cfg.AudioFormat, exec, log), nil
	case "youtube":
		return NewYouTube(&youtube.Client{HTTPClient: http.DefaultClient}, log), nil
	default:
		return nil, fmt.Errorf("unknown fetcher backend %q", cfg.Backend)
	}
}
