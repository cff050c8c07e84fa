package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Fixed artifact names inside the run workspace
const (
	TranscriptName = "transcripcion.txt"
	SummaryName    = "resumen.txt"
	DocxName       = "resumen.docx"
)

// ReportTitle heads the rendered summary document
const ReportTitle = "Resumen"

// workspace is the run-scoped directory holding every intermediate artifact
type workspace struct {
	dir string
}

func newWorkspace(root string) (*workspace, error) {
	if root != "" {
		if err := os.MkdirAll(root, 0755); err != nil {
			return nil, fmt.Errorf("create temp root: %w", err)
		}
	}
	dir, err := os.MkdirTemp(root, "ytresumen-*")
	if err != nil {
		return nil, fmt.Errorf("create workspace: %w", err)
	}
	return &workspace{dir: dir}, nil
}

func (w *workspace) path(name string) string {
	return filepath.Join(w.dir, name)
}

// release removes the workspace and whatever is left in it
func (p *implPipeline) release(ctx context.Context, w *workspace) {
	if err := os.RemoveAll(w.dir); err != nil {
		p.logger.Warn(ctx, "Failed to remove workspace %s: %v", w.dir, err)
	} else {
		p.logger.Debug(ctx, "Removed workspace: %s", w.dir)
	}
}

// cleanupTempFile removes a consumed artifact, logs warning if fails
func (p *implPipeline) cleanupTempFile(ctx context.Context, filePath string) {
	if err := os.Remove(filePath); err != nil {
		p.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", filePath, err)
	} else {
		p.logger.Debug(ctx, "Cleaned up temp file: %s", filePath)
	}
}
