// Package report renders a finished summary into a document for sharing.
package report

import (
	"context"
	"time"
)

// Header is printed above the summary body
type Header struct {
	Title string
	// Source is the URL the summary was made from
	Source string
	Date   time.Time
}

// Writer renders a markdown summary to outputPath
type Writer interface {
	Write(ctx context.Context, header Header, summary, outputPath string) error
}
