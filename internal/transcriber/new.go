package transcriber

import (
	"fmt"
	"net/http"

	"github.com/nguyentantai21042004/ytresumen/internal/config"
	"github.com/nguyentantai21042004/ytresumen/internal/logger"
	"github.com/nguyentantai21042004/ytresumen/pkg/executor"
)

// New creates the Transcriber selected by cfg.Backend
func New(cfg config.WhisperConfig, exec executor.Executor, log logger.Logger) (Transcriber, error) {
	switch cfg.Backend {
	case "cli", "":
		return NewWhisperCLI(cfg, exec, log), nil
	case "server":
		return NewWhisperServer(cfg, &http.Client{Timeout: cfg.Timeout}, log), nil
	default:
		return nil, fmt.Errorf("unknown whisper backend %q", cfg.Backend)
	}
}
