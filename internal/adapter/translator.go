package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

const (
	// DefaultTranslatorBaseURL is the OpenAI-compatible endpoint used when none is configured.
	DefaultTranslatorBaseURL = "https://models.github.ai/inference"
	// DefaultTranslatorModel is the chat model used when none is configured.
	DefaultTranslatorModel = "openai/gpt-4o"

	translatorMaxAttempts = 3
	maxErrorBodyBytes     = 512
)

// Translator translates the values of a key/text mapping into a target language.
type Translator interface {
	Translate(ctx context.Context, texts map[string]string, targetLang string) (map[string]string, error)
}

// ChatTranslatorConfig configures a ChatTranslator.
type ChatTranslatorConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
	// Backoff is the delay unit between retries; attempt n waits n*Backoff.
	Backoff time.Duration
}

// ChatTranslator talks to an OpenAI-compatible chat-completions API and asks
// for a JSON object with the same keys back.
type ChatTranslator struct {
	apiKey     string
	baseURL    string
	model      string
	backoff    time.Duration
	httpClient *http.Client
}

// NewChatTranslator creates a translator, filling unset fields with defaults.
func NewChatTranslator(cfg ChatTranslatorConfig) *ChatTranslator {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultTranslatorBaseURL
	}

	if cfg.Model == "" {
		cfg.Model = DefaultTranslatorModel
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = 120 * time.Second
	}

	if cfg.Backoff <= 0 {
		cfg.Backoff = 2 * time.Second
	}

	return &ChatTranslator{
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		model:      cfg.Model,
		backoff:    cfg.Backoff,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string             `json:"model"`
	Messages       []chatMessage      `json:"messages"`
	ResponseFormat chatResponseFormat `json:"response_format"`
}

// errPermanent marks failures that a retry cannot fix.
type errPermanent struct{ err error }

func (e errPermanent) Error() string { return e.err.Error() }
func (e errPermanent) Unwrap() error { return e.err }

// Translate sends all texts in one request. Keys missing from the reply are
// left out of the result.
func (t *ChatTranslator) Translate(ctx context.Context, texts map[string]string, targetLang string) (map[string]string, error) {
	if len(texts) == 0 {
		return map[string]string{}, nil
	}

	payload, err := json.Marshal(texts)
	if err != nil {
		return nil, fmt.Errorf("marshal texts: %w", err)
	}

	body, err := json.Marshal(chatRequest{
		Model: t.model,
		Messages: []chatMessage{
			{
				Role: "system",
				Content: fmt.Sprintf("You are a professional translator. Translate the following JSON object values to %s. "+
					"Keep keys exactly the same. Return ONLY valid JSON.", targetLang),
			},
			{Role: "user", Content: string(payload)},
		},
		ResponseFormat: chatResponseFormat{Type: "json_object"},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal translation request: %w", err)
	}

	var lastErr error

	for attempt := 0; attempt < translatorMaxAttempts; attempt++ {
		if attempt > 0 {
			wait := time.Duration(attempt) * t.backoff
			slog.Warn("retrying translation", "lang", targetLang, "attempt", attempt+1, "backoff", wait)

			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(wait):
			}
		}

		content, err := t.doRequest(ctx, body)
		if err == nil {
			return parseTranslation(content, texts)
		}

		lastErr = err

		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		var permanent errPermanent
		if errors.As(err, &permanent) {
			return nil, permanent.err
		}
	}

	return nil, fmt.Errorf("translation failed after %d attempts: %w", translatorMaxAttempts, lastErr)
}

func (t *ChatTranslator) doRequest(ctx context.Context, body []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", errPermanent{fmt.Errorf("create request: %w", err)}
	}

	req.Header.Set("Content-Type", "application/json")

	if t.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+t.apiKey)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}

	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		msg := gjson.GetBytes(data, "error.message").String()
		if msg == "" {
			msg = truncate(string(data), maxErrorBodyBytes)
		}

		err := fmt.Errorf("provider returned %d: %s", resp.StatusCode, msg)
		if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
			return "", errPermanent{err}
		}

		return "", err
	}

	content := gjson.GetBytes(data, "choices.0.message.content")
	if !content.Exists() || content.String() == "" {
		return "", errPermanent{errors.New("no content in provider response")}
	}

	return content.String(), nil
}

func parseTranslation(content string, requested map[string]string) (map[string]string, error) {
	if !gjson.Valid(content) {
		return nil, fmt.Errorf("provider returned invalid JSON: %s", truncate(content, maxErrorBodyBytes))
	}

	parsed := gjson.Parse(content)
	if !parsed.IsObject() {
		return nil, errors.New("provider returned a non-object JSON value")
	}

	out := make(map[string]string, len(requested))

	parsed.ForEach(func(key, value gjson.Result) bool {
		if _, ok := requested[key.String()]; ok {
			out[key.String()] = value.String()
		}

		return true
	})

	return out, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}

	return s[:n] + "..."
}
