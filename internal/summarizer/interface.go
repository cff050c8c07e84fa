package summarizer

import "context"

// Summarizer condenses arbitrarily long text through repeated chunk/summarize/merge passes.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
	SummarizeFile(ctx context.Context, inputPath, outputPath string) (string, error)
}

// Completer sends one prompt to a chat-completion backend and returns the first completion.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
