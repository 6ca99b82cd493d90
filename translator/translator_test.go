package translator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNew_UnknownProvider(t *testing.T) {
	_, err := New(Provider{ID: "bing"})
	if err == nil {
		t.Fatal("expected error for unknown provider ID")
	}
}

func TestWireSource(t *testing.T) {
	if got := wireSource("ENGLISH"); got != "en" {
		t.Errorf("wireSource(ENGLISH) = %q, want en", got)
	}
	if got := wireSource(" english "); got != "en" {
		t.Errorf("wireSource(' english ') = %q, want en", got)
	}
	if got := wireSource("KLINGON"); got != "" {
		t.Errorf("wireSource(KLINGON) = %q, want empty (auto-detect)", got)
	}
}

func TestGoogleTranslate(t *testing.T) {
	var gotTarget, gotSource, gotQ string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/language/translate/v2" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatal(err)
		}
		gotTarget = r.PostForm.Get("target")
		gotSource = r.PostForm.Get("source")
		gotQ = r.PostForm.Get("q")
		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"translations": []map[string]string{{"translatedText": "Bonjour"}},
			},
		})
	}))
	defer srv.Close()

	svc, err := New(Provider{ID: ProviderGoogle, BaseURL: srv.URL, APIKey: "k", Timeout: 5 * time.Second})
	if err != nil {
		t.Fatal(err)
	}
	got, err := svc.Translate(context.Background(), "Hello", "ENGLISH", "fr")
	if err != nil {
		t.Fatal(err)
	}
	if got != "Bonjour" {
		t.Errorf("got %q, want Bonjour", got)
	}
	if gotTarget != "fr" || gotSource != "en" || gotQ != "Hello" {
		t.Errorf("request: q=%q source=%q target=%q", gotQ, gotSource, gotTarget)
	}
}

func TestGoogleTranslate_ErrorStatusPropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"quota exceeded"}}`, http.StatusForbidden)
	}))
	defer srv.Close()

	svc, _ := New(Provider{ID: ProviderGoogle, BaseURL: srv.URL, Timeout: 5 * time.Second})
	_, err := svc.Translate(context.Background(), "Hello", "ENGLISH", "fr")
	if err == nil {
		t.Fatal("expected error for non-200 response")
	}
}

func TestDeepLTranslate(t *testing.T) {
	var gotReq deeplRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/translate" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "DeepL-Auth-Key secret" {
			t.Errorf("Authorization = %q", auth)
		}
		json.NewDecoder(r.Body).Decode(&gotReq)
		json.NewEncoder(w).Encode(map[string]any{
			"translations": []map[string]string{{"text": "Hallo"}},
		})
	}))
	defer srv.Close()

	svc, _ := New(Provider{ID: ProviderDeepL, BaseURL: srv.URL, APIKey: "secret", Timeout: 5 * time.Second})
	got, err := svc.Translate(context.Background(), "Hello", "ENGLISH", "de")
	if err != nil {
		t.Fatal(err)
	}
	if got != "Hallo" {
		t.Errorf("got %q, want Hallo", got)
	}
	if gotReq.TargetLang != "DE" || gotReq.SourceLang != "EN" {
		t.Errorf("request: source=%q target=%q", gotReq.SourceLang, gotReq.TargetLang)
	}
}

func TestDeepLTarget(t *testing.T) {
	cases := []struct{ in, want string }{
		{"fr", "FR"},
		{"pt", "PT-PT"},
		{"zh-CN", "ZH"},
		{"zh-TW", "ZH"},
	}
	for _, c := range cases {
		if got := deeplTarget(c.in); got != c.want {
			t.Errorf("deeplTarget(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestLLMTranslate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %s", r.URL.Path)
		}
		var req llmChatRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.Model != "test-model" {
			t.Errorf("model = %q", req.Model)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" {
			t.Errorf("messages = %+v", req.Messages)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"content": "  Ciao  "}},
			},
		})
	}))
	defer srv.Close()

	svc, _ := New(Provider{ID: ProviderLLM, BaseURL: srv.URL, Model: "test-model", Timeout: 5 * time.Second})
	got, err := svc.Translate(context.Background(), "Hello", "ENGLISH", "it")
	if err != nil {
		t.Fatal(err)
	}
	if got != "Ciao" {
		t.Errorf("got %q, want Ciao (trimmed)", got)
	}
}
