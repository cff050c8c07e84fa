package watcher

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/ytresumen/internal/logger"
)

// DefaultSettleDelay is how long a new file is left alone before it is read
const DefaultSettleDelay = 500 * time.Millisecond

// New creates a new Watcher on inboxDir. Files are handed to handler one at a time.
func New(inboxDir string, handler EventHandler, log logger.Logger, settleDelay time.Duration) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(inboxDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if settleDelay <= 0 {
		settleDelay = DefaultSettleDelay
	}

	return &implWatcher{
		inboxDir:    inboxDir,
		handler:     handler,
		logger:      log,
		watcher:     watcher,
		settleDelay: settleDelay,
	}, nil
}
