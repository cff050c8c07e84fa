package transcriber

import "context"

// Segment is one time-aligned piece of a transcript
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Transcriber runs speech recognition on normalized audio.
// An empty language requests automatic detection.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath, language string) ([]Segment, error)
}
