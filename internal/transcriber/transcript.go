package transcriber

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/nguyentantai21042004/ytresumen/internal/language"
)

// Join concatenates segment texts in order, separated by single spaces
func Join(segments []Segment) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		if text := strings.TrimSpace(s.Text); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}

// ToFile transcribes audioPath in the given language code and writes the flat
// transcript to outputPath. The code "auto" is passed to t as no hint.
func ToFile(ctx context.Context, t Transcriber, audioPath, code, outputPath string) (string, error) {
	segments, err := t.Transcribe(ctx, audioPath, language.Hint(code))
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(outputPath, []byte(Join(segments)), 0644); err != nil {
		return "", fmt.Errorf("write transcript: %w", err)
	}
	return outputPath, nil
}
