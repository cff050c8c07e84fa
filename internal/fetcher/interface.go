package fetcher

import "context"

// Fetcher downloads the audio track of a remote video into a local file
type Fetcher interface {
	// Fetch stores the audio of url under dir and returns the file path
	Fetch(ctx context.Context, url, dir string) (string, error)
}
