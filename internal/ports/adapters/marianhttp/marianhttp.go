// Package marianhttp translates text to English through a service hosting the
// opus-mt model family, one checkpoint per source language.
package marianhttp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
)

// checkpoints maps each supported source language to its translation model.
// The vocabulary of supported languages is small and fixed.
var checkpoints = map[string]string{
	"de": "opus-mt-de-en",
	"nl": "opus-mt-nl-en",
	"fr": "opus-mt-fr-en",
	"es": "opus-mt-es-en",
}

// Model is a loaded translation-model handle.
type Model struct {
	Lang       string
	Checkpoint string
}

// Cache hands out model handles per source language. Injected into the
// translator so tests can substitute a fake.
type Cache interface {
	GetOrLoad(lang string) (*Model, error)
}

// ModelCache is the process-wide cache: populated lazily, never evicted.
type ModelCache struct {
	mu     sync.Mutex
	loaded map[string]*Model
}

func NewModelCache() *ModelCache {
	return &ModelCache{loaded: make(map[string]*Model)}
}

func (c *ModelCache) GetOrLoad(lang string) (*Model, error) {
	ckpt, ok := checkpoints[lang]
	if !ok {
		return nil, fmt.Errorf("no translation model for language %q", lang)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if m, ok := c.loaded[lang]; ok {
		return m, nil
	}
	m := &Model{Lang: lang, Checkpoint: ckpt}
	c.loaded[lang] = m
	return m, nil
}

// Supported reports whether text in lang can be translated at all.
func Supported(lang string) bool {
	_, ok := checkpoints[lang]
	return ok
}

type Adapter struct {
	baseURL string
	cache   Cache
	client  *http.Client
}

func New(baseURL string, cache Cache) *Adapter {
	if cache == nil {
		cache = NewModelCache()
	}
	return &Adapter{
		baseURL: strings.TrimRight(baseURL, "/"),
		cache:   cache,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type translateRequest struct {
	Text  string `json:"text"`
	Model string `json:"model"`
}

type translateResponse struct {
	Translation string `json:"translation"`
}

// Translate converts text from srcLang to English. English and unsupported
// languages pass through unchanged. On failure the original text is returned
// alongside the error so callers may degrade instead of aborting.
func (a *Adapter) Translate(ctx context.Context, text, srcLang string) (string, error) {
	if srcLang == "en" || !Supported(srcLang) {
		return text, nil
	}

	m, err := a.cache.GetOrLoad(srcLang)
	if err != nil {
		return text, err
	}

	body, err := json.Marshal(translateRequest{Text: text, Model: m.Checkpoint})
	if err != nil {
		return text, fmt.Errorf("marshal translate request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/translate", bytes.NewReader(body))
	if err != nil {
		return text, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return text, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return text, fmt.Errorf("translate %s: %s", resp.Status, string(b))
	}

	var out translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return text, fmt.Errorf("translate decode: %w", err)
	}
	return out.Translation, nil
}
