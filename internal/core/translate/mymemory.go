// Package translate implements domain.Translator against the MyMemory
// public translation API.
package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// DefaultTimeout bounds a single translation request end to end.
const DefaultTimeout = 4 * time.Second

// langPair fixes the translation direction to Simplified Chinese → English.
const langPair = "zh-CN|en-US"

// MyMemoryClient calls the MyMemory /get endpoint. It makes exactly one
// attempt per call and reports every failure mode as a missing translation
// rather than an error, so a slow or broken provider degrades the lookup
// feature instead of failing requests.
type MyMemoryClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewMyMemoryClient creates a client for the given base URL
// (e.g. "https://api.mymemory.translated.net"). A non-positive timeout
// falls back to DefaultTimeout.
func NewMyMemoryClient(baseURL string, timeout time.Duration) *MyMemoryClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &MyMemoryClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// myMemoryResponse is the subset of the MyMemory payload we read.
type myMemoryResponse struct {
	ResponseData struct {
		TranslatedText string `json:"translatedText"`
	} `json:"responseData"`
}

// Translate fetches an English translation for text. The request carries
// ctx, so a torn-down request abandons the call; the client timeout bounds
// it regardless. No retries.
func (c *MyMemoryClient) Translate(ctx context.Context, text string) (string, bool) {
	endpoint := fmt.Sprintf("%s/get?q=%s&langpair=%s",
		c.baseURL, url.QueryEscape(text), url.QueryEscape(langPair))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", false
	}

	var payload myMemoryResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", false
	}

	if payload.ResponseData.TranslatedText == "" {
		return "", false
	}

	return payload.ResponseData.TranslatedText, true
}
