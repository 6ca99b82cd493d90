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

// deeplService calls the DeepL v2 REST API.
type deeplService struct {
	prov   Provider
	client *http.Client
}

// deeplRequest is the v2 /translate request body.
type deeplRequest struct {
	Text       []string `json:"text"`
	SourceLang string   `json:"source_lang,omitempty"`
	TargetLang string   `json:"target_lang"`
}

// deeplResponse is the v2 /translate response envelope.
type deeplResponse struct {
	Translations []struct {
		Text string `json:"text"`
	} `json:"translations"`
	Message string `json:"message"`
}

// deeplTarget converts a service language code to DeepL's form:
// uppercase, region kept only where DeepL distinguishes it.
func deeplTarget(code string) string {
	switch code {
	case "zh-CN", "zh-TW":
		return "ZH"
	case "pt":
		return "PT-PT"
	}
	return strings.ToUpper(code)
}

func (d *deeplService) Translate(ctx context.Context, text, sourceLanguage, targetCode string) (string, error) {
	endpoint := strings.TrimRight(d.prov.BaseURL, "/") + "/v2/translate"

	payload := deeplRequest{
		Text:       []string{text},
		TargetLang: deeplTarget(targetCode),
	}
	if src := wireSource(sourceLanguage); src != "" {
		payload.SourceLang = strings.ToUpper(src)
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if d.prov.APIKey != "" {
		req.Header.Set("Authorization", "DeepL-Auth-Key "+d.prov.APIKey)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("deepl request: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("deepl returned status %d: %s",
			resp.StatusCode, truncate(string(respBody), 500))
	}

	var parsed deeplResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("invalid JSON response: %w", err)
	}
	if len(parsed.Translations) == 0 {
		if parsed.Message != "" {
			return "", fmt.Errorf("deepl API error: %s", parsed.Message)
		}
		return "", fmt.Errorf("deepl returned no translations: %s",
			truncate(string(respBody), 500))
	}
	return parsed.Translations[0].Text, nil
}
