package transcriber

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/ytresumen/internal/config"
	"github.com/nguyentantai21042004/ytresumen/internal/logger"
)

type implWhisperServer struct {
	cfg    config.WhisperConfig
	client *http.Client
	logger logger.Logger
}

// NewWhisperServer creates a Transcriber that posts audio to a faster-whisper HTTP sidecar
func NewWhisperServer(cfg config.WhisperConfig, client *http.Client, log logger.Logger) Transcriber {
	return &implWhisperServer{cfg: cfg, client: client, logger: log}
}

type serverResponse struct {
	Text     string    `json:"text"`
	Segments []Segment `json:"segments"`
	Language string    `json:"language"`
}

func (w *implWhisperServer) Transcribe(ctx context.Context, audioPath, lang string) ([]Segment, error) {
	audio, err := os.Open(audioPath)
	if err != nil {
		return nil, fmt.Errorf("open audio file: %w", err)
	}
	defer audio.Close()

	// Stream the form so long recordings are never held in memory
	body, writer := io.Pipe()
	form := multipart.NewWriter(writer)
	go func() {
		writer.CloseWithError(w.writeForm(form, audio, filepath.Base(audioPath), lang))
	}()
	defer body.Close()

	url := strings.TrimSuffix(w.cfg.ServerURL, "/") + "/transcribe"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	w.logger.Info(ctx, "Sending audio to whisper server %s (model %s, %s)", w.cfg.ServerURL, w.cfg.Model, w.cfg.ComputeType)

	resp, err := w.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("whisper request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("whisper error (status %d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var result serverResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode whisper response: %w", err)
	}

	// Some servers only fill the flat text
	if len(result.Segments) == 0 && result.Text != "" {
		result.Segments = []Segment{{Text: result.Text}}
	}

	w.logger.Info(ctx, "Transcription completed: %d segments (detected language: %s)", len(result.Segments), result.Language)
	return result.Segments, nil
}

// writeForm writes the audio part and the model fields, then closes the form
func (w *implWhisperServer) writeForm(form *multipart.Writer, audio io.Reader, fileName, lang string) error {
	part, err := form.CreateFormFile("audio", fileName)
	if err != nil {
		return fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, audio); err != nil {
		return fmt.Errorf("write audio data: %w", err)
	}

	fields := [][2]string{{"model", w.cfg.Model}, {"compute_type", w.cfg.ComputeType}}
	if lang != "" {
		fields = append(fields, [2]string{"language", lang})
	}
	for _, f := range fields {
		if err := form.WriteField(f[0], f[1]); err != nil {
			return fmt.Errorf("write field %s: %w", f[0], err)
		}
	}

	if err := form.Close(); err != nil {
		return fmt.Errorf("close form: %w", err)
	}
	return nil
}
