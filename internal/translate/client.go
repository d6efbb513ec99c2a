// Package translate wraps the remote text-translation service.
package translate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"

	"github.com/averin/Lingua/internal/domain"
)

var (
	ErrUnsupportedLanguage = errors.New("unsupported target language")
	ErrProviderFailure     = errors.New("translation provider failure")
)

// Result is one successful translation.
type Result struct {
	Text             string
	DetectedLanguage string
}

// Translator is the router-facing contract.
type Translator interface {
	Translate(ctx context.Context, text, target string) (Result, error)
}

// Client talks to a LibreTranslate-compatible endpoint.
type Client struct {
	http *resty.Client
	url  string
}

func NewClient(url string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		http: resty.New().SetTimeout(timeout),
		url:  url,
	}
}

type translateRequest struct {
	Query  string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
}

type translateResponse struct {
	TranslatedText   string `json:"translatedText"`
	DetectedLanguage struct {
		Language string `json:"language"`
	} `json:"detectedLanguage"`
}

// Translate sends text to the provider for translation into target.
// Target codes outside the registry are rejected before any network call.
func (c *Client) Translate(ctx context.Context, text, target string) (Result, error) {
	if !domain.SupportedLanguage(target) {
		return Result{}, ErrUnsupportedLanguage
	}

	var out translateResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(translateRequest{Query: text, Source: "auto", Target: target, Format: "text"}).
		SetResult(&out).
		Post(c.url)
	if err != nil {
		log.Error().Err(err).Str("module", "translate").Msg("provider request failed")
		return Result{}, fmt.Errorf("%w: %v", ErrProviderFailure, err)
	}
	if resp.IsError() {
		log.Error().Str("module", "translate").Int("status", resp.StatusCode()).Msg("provider rejected request")
		return Result{}, fmt.Errorf("%w: status %d", ErrProviderFailure, resp.StatusCode())
	}
	if out.TranslatedText == "" {
		return Result{}, fmt.Errorf("%w: empty translation", ErrProviderFailure)
	}

	return Result{Text: out.TranslatedText, DetectedLanguage: out.DetectedLanguage.Language}, nil
}
