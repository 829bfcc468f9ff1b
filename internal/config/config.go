// Package config assembles the process configuration once, at startup.
// Business logic never reads the environment directly.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

type Config struct {
	ListenAddr    string
	TranscriptDir string
	HistoryCSV    string
	WorkDir       string

	LlamaBaseURL        string
	LlamaModel          string
	LlamaFallbackModels []string
	LlamaToken          string

	BertURL    string
	BertAPIKey string

	ASRBaseURL       string
	TranslateBaseURL string

	YtdlpPath  string
	FFmpegPath string
}

// FromEnv reads the configuration from the process environment. Call
// godotenv.Load first when a .env file should participate.
func FromEnv() Config {
	return Config{
		ListenAddr:    getenvDefault("LISTEN_ADDR", ":8000"),
		TranscriptDir: getenvDefault("TRANSCRIPT_DIR", "data/transcripts"),
		HistoryCSV:    getenvDefault("HISTORY_CSV", "data/history.csv"),
		WorkDir:       getenvDefault("WORK_DIR", os.TempDir()),

		LlamaBaseURL:        getenvDefault("LLAMA_API_URL", "http://localhost:30080/api"),
		LlamaModel:          getenvDefault("LLAMA_MODEL_ID", "llama3.2:3b"),
		LlamaFallbackModels: splitList(os.Getenv("LLAMA_FALLBACK_MODELS")),
		LlamaToken:          os.Getenv("LLAMA_TOKEN"),

		BertURL:    os.Getenv("BERT_API_URL"),
		BertAPIKey: os.Getenv("BERT_API_KEY"),

		ASRBaseURL:       getenvDefault("ASR_API_URL", "http://localhost:9000"),
		TranslateBaseURL: getenvDefault("TRANSLATE_API_URL", "http://localhost:9100"),

		YtdlpPath:  os.Getenv("YTDLP_PATH"),
		FFmpegPath: os.Getenv("FFMPEG_PATH"),
	}
}

func (c Config) Validate() error {
	if c.LlamaBaseURL == "" {
		return errors.New("LLAMA_API_URL is required")
	}
	if c.LlamaModel == "" {
		return errors.New("LLAMA_MODEL_ID is required")
	}
	if c.BertURL == "" {
		return errors.New("BERT_API_URL is required")
	}
	if c.TranscriptDir == "" {
		return fmt.Errorf("transcript dir is empty")
	}
	return nil
}

func getenvDefault(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
