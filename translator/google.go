package translator

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// googleService calls the Google Cloud Translation v2 REST API.
type googleService struct {
	prov   Provider
	client *http.Client
}

// googleResponse is the v2 response envelope.
type googleResponse struct {
	Data struct {
		Translations []struct {
			TranslatedText string `json:"translatedText"`
		} `json:"translations"`
	} `json:"data"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (g *googleService) Translate(ctx context.Context, text, sourceLanguage, targetCode string) (string, error) {
	endpoint := strings.TrimRight(g.prov.BaseURL, "/") + "/language/translate/v2"

	form := url.Values{}
	form.Set("q", text)
	form.Set("target", targetCode)
	form.Set("format", "text")
	if src := wireSource(sourceLanguage); src != "" {
		form.Set("source", src)
	}
	if g.prov.APIKey != "" {
		form.Set("key", g.prov.APIKey)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", endpoint,
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("google translate request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("google translate returned status %d: %s",
			resp.StatusCode, truncate(string(body), 500))
	}

	var parsed googleResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("invalid JSON response: %w", err)
	}
	if parsed.Error.Message != "" {
		return "", fmt.Errorf("google translate API error: %s", parsed.Error.Message)
	}
	if len(parsed.Data.Translations) == 0 {
		return "", fmt.Errorf("google translate returned no translations: %s",
			truncate(string(body), 500))
	}
	return parsed.Data.Translations[0].TranslatedText, nil
}
