// Package whisperhttp uploads audio to a Whisper-style transcription service
// and returns the detected language plus timestamped segments.
package whisperhttp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MichonGoddijn231849/emotion-mvp/internal/types"
)

type Adapter struct {
	baseURL string
	client  *http.Client
}

func New(baseURL string) *Adapter {
	return &Adapter{
		baseURL: strings.TrimRight(baseURL, "/"),
		// Transcription of long audio is slow; the cap is generous on purpose.
		client: &http.Client{Timeout: 30 * time.Minute},
	}
}

func (a *Adapter) Transcribe(ctx context.Context, path, modelSize string) (types.Transcript, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	fw, err := w.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return types.Transcript{}, err
	}
	fd, err := os.Open(path)
	if err != nil {
		return types.Transcript{}, err
	}
	defer fd.Close()
	if _, err := io.Copy(fw, fd); err != nil {
		return types.Transcript{}, err
	}
	if modelSize != "" {
		if err := w.WriteField("model", modelSize); err != nil {
			return types.Transcript{}, err
		}
	}
	if err := w.Close(); err != nil {
		return types.Transcript{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/transcribe", &body)
	if err != nil {
		return types.Transcript{}, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := a.client.Do(req)
	if err != nil {
		return types.Transcript{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return types.Transcript{}, fmt.Errorf("asr %s: %s", resp.Status, string(b))
	}

	var out types.Transcript
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return types.Transcript{}, fmt.Errorf("asr decode: %w", err)
	}
	for i := range out.Segments {
		out.Segments[i].Text = strings.TrimSpace(out.Segments[i].Text)
	}
	return out, nil
}
