// Package llamachat classifies emotions through a chat-completion API. One
// logical request may be served by any of several configured backends: the
// primary model is tried first, then each fallback, and only when every
// backend has failed does the adapter give up.
package llamachat

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"

	"github.com/MichonGoddijn231849/emotion-mvp/internal/domain/emotions"
	"github.com/MichonGoddijn231849/emotion-mvp/internal/types"
)

const (
	requestTimeout = 15 * time.Second
	temperature    = 0.5
)

// Backend is one chat-completion endpoint/model pair.
type Backend struct {
	BaseURL string
	Model   string
}

// AllBackendsError reports that every configured backend failed for one call.
type AllBackendsError struct {
	Models []string
	last   error
}

func (e *AllBackendsError) Error() string {
	return fmt.Sprintf("no available chat backends among %v: %v", e.Models, e.last)
}

func (e *AllBackendsError) Unwrap() error { return e.last }

type Adapter struct {
	backends []Backend
	clients  []*openai.Client
	log      *logrus.Logger
}

// New builds an adapter over the given backends. The token is shared across
// backends, matching how the upstream endpoints are deployed.
func New(token string, backends []Backend, log *logrus.Logger) *Adapter {
	if log == nil {
		log = logrus.StandardLogger()
	}
	httpClient := &http.Client{Timeout: requestTimeout}
	clients := make([]*openai.Client, 0, len(backends))
	for _, b := range backends {
		cfg := openai.DefaultConfig(token)
		cfg.BaseURL = strings.TrimRight(b.BaseURL, "/")
		cfg.HTTPClient = httpClient
		clients = append(clients, openai.NewClientWithConfig(cfg))
	}
	return &Adapter{backends: backends, clients: clients, log: log}
}

// complete tries each backend in order and returns the first reply.
func (a *Adapter) complete(ctx context.Context, userPrompt string) (string, error) {
	var last error
	for i, b := range a.backends {
		resp, err := a.clients[i].CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model: b.Model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
				{Role: openai.ChatMessageRoleUser, Content: userPrompt},
			},
			Temperature: temperature,
		})
		if err != nil {
			a.log.WithFields(logrus.Fields{"model": b.Model, "base_url": b.BaseURL}).
				Warnf("chat backend failed: %v", err)
			last = err
			continue
		}
		if len(resp.Choices) == 0 {
			last = fmt.Errorf("chat backend %s: empty choices", b.Model)
			continue
		}
		return resp.Choices[0].Message.Content, nil
	}
	models := make([]string, 0, len(a.backends))
	for _, b := range a.backends {
		models = append(models, b.Model)
	}
	return "", &AllBackendsError{Models: models, last: last}
}

var (
	answerRE    = regexp.MustCompile(`(?i)Answer:\s*([a-z]+)`)
	intensityRE = regexp.MustCompile(`(?i)Intensity:\s*([a-z]+)`)
)

// extractEmotion pulls the "Answer: <label>" token out of a reply, or falls
// back to the whole trimmed reply when the model skipped the format.
func extractEmotion(reply string) string {
	if m := answerRE.FindStringSubmatch(reply); m != nil {
		return strings.ToLower(m[1])
	}
	return strings.ToLower(strings.TrimSpace(reply))
}

func extractIntensity(reply string) *float64 {
	m := intensityRE.FindStringSubmatch(reply)
	if m == nil {
		return nil
	}
	score := emotions.IntensityScore(strings.ToLower(m[1]))
	return &score
}

// Classify runs the first-pass prompt. Labels outside the tier vocabulary
// are coerced to neutral.
func (a *Adapter) Classify(ctx context.Context, text string, tier emotions.Tier, wantIntensity bool) (types.Classification, error) {
	reply, err := a.complete(ctx, buildPrompt(text, tier, wantIntensity))
	if err != nil {
		return types.Classification{}, err
	}

	emo := extractEmotion(reply)
	if !emotions.Allowed(tier, emo) {
		emo = "neutral"
	}

	out := types.Classification{Emotion: emo}
	if wantIntensity {
		out.Intensity = extractIntensity(reply)
	}
	a.log.WithField("emotion", emo).Debug("llama classification")
	return out, nil
}

// Review runs the second-pass prompt over a prior prediction and a ground
// truth. Out-of-vocabulary replies fall back to the prior prediction.
func (a *Adapter) Review(ctx context.Context, text, predicted, actual string, tier emotions.Tier, wantIntensity bool) (types.Classification, error) {
	reply, err := a.complete(ctx, buildReviewPrompt(text, predicted, actual, tier, wantIntensity))
	if err != nil {
		return types.Classification{}, err
	}

	emo := extractEmotion(reply)
	if !emotions.Allowed(tier, emo) {
		emo = predicted
	}

	out := types.Classification{Emotion: emo}
	if wantIntensity {
		out.Intensity = extractIntensity(reply)
	}
	return out, nil
}
