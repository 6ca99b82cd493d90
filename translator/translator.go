// Package translator implements the external machine-translation
// service clients: Google Cloud Translation v2, DeepL v2, and any
// OpenAI-compatible chat endpoint for LLM translation.
//
// The pipeline depends only on the Service contract — one synchronous
// call per value, no retries, no caching. A failed call propagates to
// the caller and aborts the current locale's processing.
package translator

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Service is the translation contract the pipeline consumes.
// sourceLanguage is a provider-facing language name ("ENGLISH");
// targetCode is the service language code from the locale table.
type Service interface {
	Translate(ctx context.Context, text, sourceLanguage, targetCode string) (string, error)
}

// ---------------------------------------------------------------------------
// Provider configuration
// ---------------------------------------------------------------------------

const (
	ProviderGoogle = "google"
	ProviderDeepL  = "deepl"
	ProviderLLM    = "llm"
)

// Provider holds the configuration for a translation service.
type Provider struct {
	// ID is the provider identifier (google, deepl, llm).
	ID string
	// Name is the display name.
	Name string
	// BaseURL is the API base URL.
	BaseURL string
	// APIKey is the authentication key.
	APIKey string
	// Model is the model identifier (LLM provider only).
	Model string
	// Proxy is an optional HTTP/HTTPS proxy URL.
	Proxy string
	// Timeout is the request timeout.
	Timeout time.Duration
}

// DefaultProviders returns the pre-configured provider definitions.
func DefaultProviders() map[string]Provider {
	return map[string]Provider{
		ProviderGoogle: {
			ID:      ProviderGoogle,
			Name:    "Google Cloud Translation",
			BaseURL: "https://translation.googleapis.com",
			Timeout: 60 * time.Second,
		},
		ProviderDeepL: {
			ID:      ProviderDeepL,
			Name:    "DeepL",
			BaseURL: "https://api.deepl.com",
			Timeout: 60 * time.Second,
		},
		ProviderLLM: {
			ID:      ProviderLLM,
			Name:    "OpenAI-compatible LLM",
			Timeout: 120 * time.Second,
		},
	}
}

// New returns the Service implementation for a provider configuration.
// An unrecognized provider ID is a configuration error.
func New(prov Provider) (Service, error) {
	switch prov.ID {
	case ProviderGoogle:
		return &googleService{prov: prov, client: makeHTTPClient(prov.Proxy, prov.Timeout)}, nil
	case ProviderDeepL:
		return &deeplService{prov: prov, client: makeHTTPClient(prov.Proxy, prov.Timeout)}, nil
	case ProviderLLM:
		return &llmService{prov: prov, client: makeHTTPClient(prov.Proxy, prov.Timeout)}, nil
	default:
		return nil, fmt.Errorf("unknown translation provider %q", prov.ID)
	}
}

// makeHTTPClient builds an HTTP client honoring an explicit proxy URL
// or the HTTP_PROXY/HTTPS_PROXY environment variables.
func makeHTTPClient(proxyURL string, timeout time.Duration) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()

	if proxyURL != "" {
		if parsed, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(parsed)
		}
	} else {
		transport.Proxy = http.ProxyFromEnvironment
	}

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
}

// ---------------------------------------------------------------------------
// Language name resolution
// ---------------------------------------------------------------------------

// sourceNames maps provider-facing source language names to wire
// codes. The pipeline always sends "ENGLISH"; anything else falls back
// to service-side auto-detection (empty source code).
var sourceNames = map[string]string{
	"ENGLISH": "en",
}

// wireSource resolves a source language name to its wire code.
func wireSource(name string) string {
	return sourceNames[strings.ToUpper(strings.TrimSpace(name))]
}

// truncate shortens s for error messages.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
