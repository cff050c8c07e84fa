package main

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/nguyentantai21042004/ytresumen/internal/cli"
	"github.com/nguyentantai21042004/ytresumen/internal/config"
	"github.com/nguyentantai21042004/ytresumen/internal/fetcher"
	"github.com/nguyentantai21042004/ytresumen/internal/logger"
	"github.com/nguyentantai21042004/ytresumen/internal/pipeline"
	"github.com/nguyentantai21042004/ytresumen/internal/report"
	"github.com/nguyentantai21042004/ytresumen/internal/summarizer"
	"github.com/nguyentantai21042004/ytresumen/internal/transcoder"
	"github.com/nguyentantai21042004/ytresumen/internal/transcriber"
	"github.com/nguyentantai21042004/ytresumen/internal/watcher"
	"github.com/nguyentantai21042004/ytresumen/pkg/executor"
)

// app wires configuration and stages together for the cli package
type app struct {
	envFile string
}

func (a *app) Run(ctx context.Context, opts cli.Options) error {
	cfg, log, pipe, err := a.setup(ctx, opts)
	if err != nil {
		return err
	}

	_, err = pipe.Run(ctx, request(cfg, opts))
	if err != nil {
		log.Error(ctx, "Processing failed: %v", err)
	}
	return err
}

func (a *app) Watch(ctx context.Context, inbox string, opts cli.Options) error {
	cfg, log, pipe, err := a.setup(ctx, opts)
	if err != nil {
		return err
	}

	base := request(cfg, opts)
	handler := func(ctx context.Context, listPath string) error {
		return pipeline.RunList(ctx, pipe, log, listPath, base)
	}

	w, err := watcher.New(inbox, handler, log, cfg.Watch.SettleDelay)
	if err != nil {
		return err
	}
	defer w.Stop()

	log.Info(ctx, "Output: %s", base.OutputDir)
	log.Info(ctx, "Press Ctrl+C to stop")

	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Info(ctx, "Watcher stopped")
	return nil
}

// setup loads configuration and builds every stage of the pipeline
func (a *app) setup(ctx context.Context, opts cli.Options) (*config.Config, logger.Logger, pipeline.Pipeline, error) {
	if err := config.LoadEnv(a.envFile); err != nil {
		return nil, nil, nil, err
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}
	if err := applyOverrides(cfg, opts); err != nil {
		return nil, nil, nil, err
	}
	if err := cfg.ResolveAPIKeys(); err != nil {
		return nil, nil, nil, err
	}

	log := logger.New(cfg.Logging.Level)
	log.Debug(ctx, "System: %s/%s, CPU cores: %d", runtime.GOOS, runtime.GOARCH, runtime.NumCPU())
	log.Debug(ctx, "Fetcher: %s, Whisper: %s, Provider: %s (%s)", cfg.Fetcher.Backend, cfg.Whisper.Backend, cfg.Summarizer.Provider, cfg.Summarizer.Model)

	exec := executor.New()

	fetch, err := fetcher.New(cfg.Fetcher, exec, log)
	if err != nil {
		return nil, nil, nil, err
	}
	transcribe, err := transcriber.New(cfg.Whisper, exec, log)
	if err != nil {
		return nil, nil, nil, err
	}
	completer, err := summarizer.NewCompleter(cfg.Summarizer, log)
	if err != nil {
		return nil, nil, nil, err
	}

	pipe := pipeline.New(pipeline.Stages{
		Fetcher:     fetch,
		Transcoder:  transcoder.New(cfg.FFmpeg, exec, log),
		Transcriber: transcribe,
		Summarizer:  summarizer.New(completer, summarizer.OptionsFromConfig(cfg.Summarizer), log),
		Report:      report.NewDocx(log),
	}, cfg.Paths.Temp, log)

	return cfg, log, pipe, nil
}

// applyOverrides lets command line flags win over the config file
func applyOverrides(cfg *config.Config, opts cli.Options) error {
	if opts.Fetcher != "" {
		cfg.Fetcher.Backend = opts.Fetcher
	}
	if opts.Provider != "" && opts.Provider != cfg.Summarizer.Provider {
		cfg.Summarizer.Provider = opts.Provider
		// the configured model belongs to the previous provider
		cfg.Summarizer.Model = ""
		cfg.Summarizer.BaseURL = ""
	}
	if opts.Model != "" {
		cfg.Summarizer.Model = opts.Model
	}
	return cfg.Validate()
}

func request(cfg *config.Config, opts cli.Options) pipeline.Request {
	// the shell leaves ~ alone in -o=~/dir
	outputDir := config.ExpandHome(opts.OutputDir)
	if outputDir == "" {
		outputDir = cfg.Paths.Output
	}
	return pipeline.Request{
		URL:       opts.URL,
		Language:  opts.Language,
		OutputDir: outputDir,
		Docx:      opts.Docx,
	}
}
