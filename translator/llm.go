package translator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// llmSystemPrompt instructs an OpenAI-compatible model to behave like
// a translation service: one string in, one string out.
const llmSystemPrompt = `You are a professional translator specializing in software and product localization. You are translating UI strings for email campaign templates.

IMPORTANT TRANSLATION PRINCIPLES:
- Translate for NATURALNESS and FLUENCY in the target language, not word-for-word.
- Preserve placeholder markers like {0}, {1} exactly as-is.
- Preserve inline HTML markup such as <strong>...</strong> exactly as-is.
- Keep brand names and proper nouns unchanged.

TECHNICAL REQUIREMENTS:
- Return ONLY the translated string, no explanations, no quotes, no markdown.`

// llmService calls any OpenAI-compatible chat completions endpoint.
type llmService struct {
	prov   Provider
	client *http.Client
}

type llmChatRequest struct {
	Model       string       `json:"model"`
	Messages    []llmMessage `json:"messages"`
	Temperature float64      `json:"temperature"`
}

type llmMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type llmChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (l *llmService) Translate(ctx context.Context, text, sourceLanguage, targetCode string) (string, error) {
	baseURL := strings.TrimRight(l.prov.BaseURL, "/")
	endpoint := baseURL
	if !strings.HasSuffix(baseURL, "/chat/completions") {
		endpoint = baseURL + "/chat/completions"
	}

	user := fmt.Sprintf("Translate from %s to the language with code %q:\n%s",
		sourceLanguage, targetCode, text)
	body, err := json.Marshal(llmChatRequest{
		Model: l.prov.Model,
		Messages: []llmMessage{
			{Role: "system", Content: llmSystemPrompt},
			{Role: "user", Content: user},
		},
		Temperature: 0.3,
	})
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if l.prov.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+l.prov.APIKey)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("LLM request: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("LLM endpoint returned status %d: %s",
			resp.StatusCode, truncate(string(respBody), 500))
	}

	var parsed llmChatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("invalid JSON response: %w", err)
	}
	if parsed.Error.Message != "" {
		return "", fmt.Errorf("LLM API error: %s", parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("LLM returned no choices: %s", truncate(string(respBody), 500))
	}
	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}
