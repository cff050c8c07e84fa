package summarizer

import (
	"time"

	"github.com/nguyentantai21042004/ytresumen/internal/config"
	"github.com/nguyentantai21042004/ytresumen/internal/logger"
	"golang.org/x/time/rate"
)

// Options tunes the multi-pass loop. Zero values fall back to the defaults below.
type Options struct {
	// MaxWords is the ceiling above which the text is split and re-summarized
	MaxWords int
	// ChunkWords is the size of each fragment when splitting
	ChunkWords int
	// MaxPasses bounds the number of split/merge passes
	MaxPasses         int
	Concurrency       int
	RequestsPerMinute int
	MaxRetries        int
	RetryInitial      time.Duration
	Language          string
	Prompt            string
}

const (
	DefaultMaxWords   = 4000
	DefaultChunkWords = 5800
	DefaultMaxPasses  = 8
	DefaultMaxRetries = 3
)

// OptionsFromConfig maps the summarizer section of the config file
func OptionsFromConfig(cfg config.SummarizerConfig) Options {
	opts := Options{
		MaxWords:          cfg.MaxWords,
		ChunkWords:        cfg.ChunkWords,
		MaxPasses:         cfg.MaxPasses,
		Concurrency:       cfg.Concurrency,
		RequestsPerMinute: cfg.RequestsPerMinute,
		MaxRetries:        DefaultMaxRetries,
		Language:          cfg.Language,
		Prompt:            cfg.Prompt,
	}
	if cfg.MaxRetries != nil {
		opts.MaxRetries = *cfg.MaxRetries
	}
	return opts
}

func (o *Options) applyDefaults() {
	if o.MaxWords <= 0 {
		o.MaxWords = DefaultMaxWords
	}
	if o.ChunkWords <= 0 {
		o.ChunkWords = DefaultChunkWords
	}
	if o.MaxPasses <= 0 {
		o.MaxPasses = DefaultMaxPasses
	}
	if o.Concurrency <= 0 {
		o.Concurrency = 1
	}
	if o.MaxRetries < 0 {
		o.MaxRetries = 0
	}
	if o.RetryInitial <= 0 {
		o.RetryInitial = time.Second
	}
	if o.Language == "" {
		o.Language = DefaultLanguage
	}
	if o.Prompt == "" {
		o.Prompt = DefaultPrompt
	}
}

type implSummarizer struct {
	completer Completer
	opts      Options
	limiter   *rate.Limiter
	logger    logger.Logger
}

// New creates a Summarizer that sends every fragment through completer
func New(completer Completer, opts Options, log logger.Logger) Summarizer {
	opts.applyDefaults()

	limit := rate.Inf
	if opts.RequestsPerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(opts.RequestsPerMinute))
	}

	return &implSummarizer{
		completer: completer,
		opts:      opts,
		limiter:   rate.NewLimiter(limit, 1),
		logger:    log,
	}
}
