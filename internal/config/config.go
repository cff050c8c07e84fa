package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Fetcher    FetcherConfig    `yaml:"fetcher"`
	FFmpeg     FFmpegConfig     `yaml:"ffmpeg"`
	Whisper    WhisperConfig    `yaml:"whisper"`
	Summarizer SummarizerConfig `yaml:"summarizer"`
	Paths      PathsConfig      `yaml:"paths"`
	Logging    LoggingConfig    `yaml:"logging"`
	Watch      WatchConfig      `yaml:"watch"`
}

type FetcherConfig struct {
	Backend     string `yaml:"backend" validate:"oneof=ytdlp youtube"`
	BinaryPath  string `yaml:"binary_path"`
	AudioFormat string `yaml:"audio_format"`
}

type FFmpegConfig struct {
	BinaryPath string `yaml:"binary_path"`
	SampleRate int    `yaml:"sample_rate" validate:"gt=0"`
	Channels   int    `yaml:"channels" validate:"gt=0"`
}

type WhisperConfig struct {
	Backend     string        `yaml:"backend" validate:"oneof=cli server"`
	BinaryPath  string        `yaml:"binary_path"`
	ModelPath   string        `yaml:"model_path"`
	ServerURL   string        `yaml:"server_url" validate:"omitempty,url"`
	Model       string        `yaml:"model"`
	ComputeType string        `yaml:"compute_type"`
	Threads     int           `yaml:"threads" validate:"gte=0"`
	Timeout     time.Duration `yaml:"timeout"`
}

// SummarizerConfig configures the multi-pass summary. MaxRetries is nil when
// unset so that an explicit 0 can disable retries.
type SummarizerConfig struct {
	Provider          string   `yaml:"provider" validate:"oneof=groq openai gemini"`
	Model             string   `yaml:"model"`
	BaseURL           string   `yaml:"base_url" validate:"omitempty,url"`
	Language          string   `yaml:"language"`
	Prompt            string   `yaml:"prompt"`
	MaxWords          int      `yaml:"max_words" validate:"gt=0"`
	ChunkWords        int      `yaml:"chunk_words" validate:"gt=0"`
	MaxPasses         int      `yaml:"max_passes" validate:"gt=0"`
	Concurrency       int      `yaml:"concurrency" validate:"gt=0"`
	RequestsPerMinute int      `yaml:"requests_per_minute" validate:"gte=0"`
	MaxRetries        *int     `yaml:"max_retries" validate:"omitempty,gte=0"`
	APIKeys           []string `yaml:"-"`
}

type PathsConfig struct {
	Output string `yaml:"output"`
	Temp   string `yaml:"temp"`
}

type LoggingConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
}

type WatchConfig struct {
	SettleDelay time.Duration `yaml:"settle_delay"`
}

// Default returns a Config with every default applied and no file loaded
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Validate fills in defaults and checks the resulting configuration
func (c *Config) Validate() error {
	c.applyDefaults()

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Whisper.Backend == "cli" && c.Whisper.ModelPath == "" {
		return fmt.Errorf("whisper.model_path is required for the cli backend")
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Fetcher.Backend == "" {
		c.Fetcher.Backend = "ytdlp"
	}
	if c.Fetcher.BinaryPath == "" {
		c.Fetcher.BinaryPath = "yt-dlp"
	}
	if c.Fetcher.AudioFormat == "" {
		c.Fetcher.AudioFormat = "mp3"
	}

	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.FFmpeg.SampleRate == 0 {
		c.FFmpeg.SampleRate = 16000
	}
	if c.FFmpeg.Channels == 0 {
		c.FFmpeg.Channels = 1
	}

	if c.Whisper.Backend == "" {
		c.Whisper.Backend = "cli"
	}
	if c.Whisper.BinaryPath == "" {
		c.Whisper.BinaryPath = "whisper-cli"
	}
	if c.Whisper.ModelPath == "" {
		c.Whisper.ModelPath = "models/ggml-base-q8_0.bin"
	}
	if c.Whisper.ServerURL == "" {
		c.Whisper.ServerURL = "http://localhost:8387"
	}
	if c.Whisper.Model == "" {
		c.Whisper.Model = "base"
	}
	if c.Whisper.ComputeType == "" {
		c.Whisper.ComputeType = "int8"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 4
	}
	if c.Whisper.Timeout == 0 {
		c.Whisper.Timeout = 30 * time.Minute
	}

	if c.Summarizer.Provider == "" {
		c.Summarizer.Provider = "groq"
	}
	if c.Summarizer.Model == "" {
		c.Summarizer.Model = defaultModel(c.Summarizer.Provider)
	}
	if c.Summarizer.Language == "" {
		c.Summarizer.Language = "español"
	}
	if c.Summarizer.MaxWords == 0 {
		c.Summarizer.MaxWords = 4000
	}
	if c.Summarizer.ChunkWords == 0 {
		c.Summarizer.ChunkWords = 5800
	}
	if c.Summarizer.MaxPasses == 0 {
		c.Summarizer.MaxPasses = 8
	}
	if c.Summarizer.Concurrency == 0 {
		c.Summarizer.Concurrency = 1
	}
	if c.Summarizer.MaxRetries == nil {
		retries := 3
		c.Summarizer.MaxRetries = &retries
	}

	if c.Paths.Output == "" {
		c.Paths.Output = defaultOutputDir()
	}
	c.Paths.Output = ExpandHome(c.Paths.Output)
	c.Paths.Temp = ExpandHome(c.Paths.Temp)
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Watch.SettleDelay == 0 {
		c.Watch.SettleDelay = 500 * time.Millisecond
	}
}

func defaultModel(provider string) string {
	switch provider {
	case "gemini":
		return "gemini-2.5-flash"
	case "openai":
		return "gpt-4o-mini"
	default:
		return "llama-3.3-70b-versatile"
	}
}

func defaultOutputDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, "Downloads")
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// APIKeyEnv returns the environment variable names holding keys for provider,
// the plural form listing several comma separated keys.
func APIKeyEnv(provider string) (single, plural string) {
	prefix := strings.ToUpper(provider)
	return prefix + "_API_KEY", prefix + "_API_KEYS"
}
