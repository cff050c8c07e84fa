package summarizer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"golang.org/x/sync/errgroup"
)

// Summarize reduces text below the word ceiling pass by pass, then returns
// one final summary of the result. Text already under the ceiling still gets
// exactly one summarization call.
func (s *implSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	words := WordCount(text)

	for pass := 1; words > s.opts.MaxWords; pass++ {
		if pass > s.opts.MaxPasses {
			return "", fmt.Errorf("%w: still %d words after %d passes", ErrNonConvergent, words, s.opts.MaxPasses)
		}

		fragments := Split(text, s.opts.ChunkWords)
		s.logger.Info(ctx, "Pass %d: %d words over the %d-word ceiling, summarizing %d fragments",
			pass, words, s.opts.MaxWords, len(fragments))

		partials, err := s.summarizeAll(ctx, fragments)
		if err != nil {
			return "", fmt.Errorf("pass %d: %w", pass, err)
		}

		merged := strings.Join(partials, "\n")
		mergedWords := WordCount(merged)
		if mergedWords >= words {
			return "", fmt.Errorf("%w: pass %d went from %d to %d words", ErrNonConvergent, pass, words, mergedWords)
		}

		text, words = merged, mergedWords
	}

	s.logger.Info(ctx, "Final summary over %d words", words)
	return s.summarizeOne(ctx, text)
}

// SummarizeFile reads inputPath, summarizes it and writes the summary to outputPath
func (s *implSummarizer) SummarizeFile(ctx context.Context, inputPath, outputPath string) (string, error) {
	content, err := os.ReadFile(inputPath)
	if err != nil {
		return "", fmt.Errorf("read transcript: %w", err)
	}

	summary, err := s.Summarize(ctx, string(content))
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(outputPath, []byte(summary), 0644); err != nil {
		return "", fmt.Errorf("write summary: %w", err)
	}

	s.logger.Info(ctx, "Summary saved to: %s", outputPath)
	return outputPath, nil
}

// summarizeAll summarizes fragments independently, at most Concurrency at a time,
// and returns the partial summaries in fragment order.
func (s *implSummarizer) summarizeAll(ctx context.Context, fragments []string) ([]string, error) {
	partials := make([]string, len(fragments))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Concurrency)

	for i, fragment := range fragments {
		g.Go(func() error {
			s.logger.Debug(gctx, "[%d/%d] Summarizing fragment (%d words)", i+1, len(fragments), WordCount(fragment))

			summary, err := s.summarizeOne(gctx, fragment)
			if err != nil {
				return fmt.Errorf("fragment %d/%d: %w", i+1, len(fragments), err)
			}
			partials[i] = summary
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return partials, nil
}

// summarizeOne issues a single summarization request, retrying transient failures
func (s *implSummarizer) summarizeOne(ctx context.Context, text string) (string, error) {
	prompt := renderPrompt(s.opts.Prompt, s.opts.Language, text)

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = s.opts.RetryInitial

	return backoff.Retry(ctx, func() (string, error) {
		if err := s.limiter.Wait(ctx); err != nil {
			return "", backoff.Permanent(err)
		}

		summary, err := s.completer.Complete(ctx, prompt)
		if err != nil {
			if errors.Is(err, ErrRejected) || ctx.Err() != nil {
				return "", backoff.Permanent(err)
			}
			return "", err
		}
		if strings.TrimSpace(summary) == "" {
			return "", ErrEmptyCompletion
		}
		return summary, nil
	},
		backoff.WithBackOff(policy),
		backoff.WithMaxTries(uint(s.opts.MaxRetries+1)),
		backoff.WithNotify(func(err error, next time.Duration) {
			s.logger.Warn(ctx, "Summarization request failed, retrying in %s: %v", next.Round(time.Millisecond), err)
		}),
	)
}
