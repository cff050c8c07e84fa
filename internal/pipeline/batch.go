package pipeline

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/ytresumen/internal/logger"
)

// ReadURLList reads one URL per line, skipping blank lines and # comments
func ReadURLList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open url list: %w", err)
	}
	defer f.Close()

	var urls []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read url list: %w", err)
	}
	return urls, nil
}

// RunList runs p for every URL in the list file, one after another. Each
// summary goes to <base.OutputDir>/<list name>, numbered when the list holds
// several URLs. A failed URL does not stop the rest of the list.
func RunList(ctx context.Context, p Pipeline, log logger.Logger, listPath string, base Request) error {
	urls, err := ReadURLList(listPath)
	if err != nil {
		return err
	}
	if len(urls) == 0 {
		log.Warn(ctx, "No URLs found in %s", listPath)
		return nil
	}

	stem := strings.TrimSuffix(filepath.Base(listPath), filepath.Ext(listPath))

	var errs []error
	for i, url := range urls {
		if ctx.Err() != nil {
			return errors.Join(append(errs, ctx.Err())...)
		}

		req := base
		req.URL = url
		req.OutputDir = filepath.Join(base.OutputDir, stem)
		if len(urls) > 1 {
			req.OutputDir = filepath.Join(base.OutputDir, fmt.Sprintf("%s-%d", stem, i+1))
		}

		log.Info(ctx, "[%d/%d] %s -> %s", i+1, len(urls), url, req.OutputDir)
		if _, err := p.Run(ctx, req); err != nil {
			log.Error(ctx, "Failed to process %s: %v", url, err)
			errs = append(errs, fmt.Errorf("%s: %w", url, err))
		}
	}

	return errors.Join(errs...)
}
