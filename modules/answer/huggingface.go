package answer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultHuggingFaceURL   = "https://api-inference.huggingface.co/models"
	defaultHuggingFaceModel = "google/flan-t5-base"
)

// HuggingFaceGenerator calls the Hugging Face Inference API.
type HuggingFaceGenerator struct {
	httpClient *http.Client
	apiKey     string
	endpoint   string
	model      string
}

type hfParameters struct {
	MaxNewTokens int     `json:"max_new_tokens"`
	Temperature  float64 `json:"temperature"`
	DoSample     bool    `json:"do_sample"`
}

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
}

type hfGenerated struct {
	GeneratedText string `json:"generated_text"`
}

// NewHuggingFaceGenerator creates a generator for model. baseURL replaces
// the public inference endpoint when set.
func NewHuggingFaceGenerator(apiKey, model, baseURL string, timeout time.Duration) *HuggingFaceGenerator {
	if model == "" {
		model = defaultHuggingFaceModel
	}
	if baseURL == "" {
		baseURL = defaultHuggingFaceURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HuggingFaceGenerator{
		httpClient: &http.Client{Timeout: timeout},
		apiKey:     apiKey,
		endpoint:   strings.TrimRight(baseURL, "/") + "/" + model,
		model:      model,
	}
}

// Name implements Generator.
func (g *HuggingFaceGenerator) Name() string {
	return ProviderHuggingFace
}

// Generate implements Generator.
func (g *HuggingFaceGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(hfRequest{
		Inputs: prompt,
		Parameters: hfParameters{
			MaxNewTokens: 10,
			Temperature:  0.3,
			DoSample:     false,
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("hugging face request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("hugging face API error: %d - %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return parseHuggingFaceResponse(body)
}

// parseHuggingFaceResponse accepts [{"generated_text": ...}], ["..."],
// {"generated_text": ...} or a bare JSON string.
func parseHuggingFaceResponse(body []byte) (string, error) {
	var list []json.RawMessage
	if err := json.Unmarshal(body, &list); err == nil {
		if len(list) == 0 {
			return "", ErrUnexpectedResponse
		}
		return parseHuggingFaceItem(list[0])
	}
	return parseHuggingFaceItem(body)
}

func parseHuggingFaceItem(raw json.RawMessage) (string, error) {
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return text, nil
	}

	var obj hfGenerated
	if err := json.Unmarshal(raw, &obj); err == nil && obj.GeneratedText != "" {
		return obj.GeneratedText, nil
	}
	return "", ErrUnexpectedResponse
}
