// Package bertscore calls the remote 28-class encoder classifier. The adapter
// absorbs every failure: the pipeline must keep producing rows even when the
// scoring endpoint is down, so a failed call yields the sentinel label plus a
// DegradedError the caller can inspect.
package bertscore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/sirupsen/logrus"

	"github.com/MichonGoddijn231849/emotion-mvp/internal/domain/emotions"
	"github.com/MichonGoddijn231849/emotion-mvp/internal/types"
)

const (
	maxRetries     = 3
	retryWaitMin   = 500 * time.Millisecond
	requestTimeout = 30 * time.Second
)

// DegradedError reports that the scoring endpoint could not be used and the
// sentinel label was substituted.
type DegradedError struct {
	cause error
}

func (e *DegradedError) Error() string {
	return fmt.Sprintf("bert scoring degraded: %v", e.cause)
}

func (e *DegradedError) Unwrap() error { return e.cause }

type Adapter struct {
	url    string
	apiKey string
	client *retryablehttp.Client
	log    *logrus.Logger
}

// New builds an adapter for the scoring endpoint. Retries are bounded and
// POST-only: exponential backoff, up to three attempts, on 429 and transient
// 5xx statuses (the retryablehttp default policy).
func New(scoreURL, apiKey string, log *logrus.Logger) *Adapter {
	if log == nil {
		log = logrus.StandardLogger()
	}
	c := retryablehttp.NewClient()
	c.RetryMax = maxRetries
	c.RetryWaitMin = retryWaitMin
	c.HTTPClient.Timeout = requestTimeout
	c.Logger = nil
	return &Adapter{url: scoreURL, apiKey: apiKey, client: c, log: log}
}

type scoreRequest struct {
	Inputs []string `json:"inputs"`
}

// Classify scores one sentence. For the basic tier the 28-class label is
// collapsed into the 7-label set. Intensity is not supported by this backend.
// On any failure the sentinel label is returned together with a DegradedError.
func (a *Adapter) Classify(ctx context.Context, text string, tier emotions.Tier, wantIntensity bool) (types.Classification, error) {
	_ = wantIntensity // the encoder backend has no intensity head

	label, err := a.score(ctx, text)
	if err != nil {
		a.log.WithError(err).Error("remote bert scoring failed")
		return types.Classification{Emotion: emotions.Sentinel}, &DegradedError{cause: err}
	}

	if tier == emotions.TierBasic {
		label = emotions.CollapseBasic(label)
	}
	a.log.WithField("emotion", label).Debug("bert classification")
	return types.Classification{Emotion: label}, nil
}

func (a *Adapter) score(ctx context.Context, text string) (string, error) {
	body, err := json.Marshal(scoreRequest{Inputs: []string{text}})
	if err != nil {
		return "", fmt.Errorf("marshal score request: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, a.url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if a.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+a.apiKey)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("score endpoint %s: %s", resp.Status, string(b))
	}

	idx, err := parsePrediction(resp.Body)
	if err != nil {
		return "", err
	}
	label, ok := emotions.ClassIndex[idx]
	if !ok {
		return "", fmt.Errorf("score endpoint returned unknown class %d", idx)
	}
	return label, nil
}

// parsePrediction handles the endpoint's response shapes: a JSON object with
// a "predictions" (or "prediction") array or scalar, sometimes double-encoded
// as a JSON string.
func parsePrediction(r io.Reader) (int, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		raw = []byte(asString)
	}

	var obj struct {
		Predictions json.RawMessage `json:"predictions"`
		Prediction  json.RawMessage `json:"prediction"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return 0, fmt.Errorf("decode score response: %w", err)
	}
	preds := obj.Predictions
	if preds == nil {
		preds = obj.Prediction
	}
	if preds == nil {
		return 0, fmt.Errorf("score response has no predictions")
	}

	var list []float64
	if err := json.Unmarshal(preds, &list); err == nil {
		if len(list) == 0 {
			return 0, fmt.Errorf("score response predictions empty")
		}
		return int(list[0]), nil
	}
	var scalar float64
	if err := json.Unmarshal(preds, &scalar); err != nil {
		return 0, fmt.Errorf("decode predictions: %w", err)
	}
	return int(scalar), nil
}
