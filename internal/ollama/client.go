// Package ollama is the client for the local Ollama-compatible generate API.
// See https://github.com/ollama/ollama/blob/main/docs/api.md
package ollama

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"guardian-verdict/internal/common/config"
	apperrors "guardian-verdict/internal/common/errors"
	commonhttp "guardian-verdict/internal/common/http"
	"guardian-verdict/internal/common/logger"
)

type Client struct {
	apiURL  string
	rootURL string
	model   string
	http    *commonhttp.Client
	logger  logger.Logger
}

// NewClient validates the endpoint URL up front so a misconfigured Guardian
// host short-circuits before any work is attempted.
func NewClient(cfg config.OllamaConfig, log logger.Logger) (*Client, error) {
	u, err := url.Parse(cfg.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, apperrors.Wrap(apperrors.ErrCodeOllamaUnavailable,
			fmt.Sprintf("invalid endpoint URL %q", cfg.APIURL), err)
	}

	return &Client{
		apiURL:  cfg.APIURL,
		rootURL: u.Scheme + "://" + u.Host + "/",
		model:   cfg.Model,
		http:    commonhttp.NewClient(),
		logger: log.WithFields(map[string]interface{}{
			"endpoint": cfg.APIURL,
			"model":    cfg.Model,
		}),
	}, nil
}

// Ping checks that the server is reachable at all. Ollama answers its root
// path with a plain "Ollama is running"; any 2xx counts as available. The
// verdict run path never calls this — one verdict costs exactly one HTTP
// call — it exists for the live smoke tests to decide whether to skip.
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.http.Get(ctx, c.rootURL)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeOllamaUnavailable, "endpoint unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apperrors.New(apperrors.ErrCodeOllamaUnavailable,
			fmt.Sprintf("endpoint returned status %d", resp.StatusCode))
	}
	return nil
}

// Generate sends the prompt and returns the trimmed verdict text. A response
// carrying neither known text field yields an empty string with no error; the
// caller treats that the same as "the model had nothing to say".
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	body := generateRequest{
		Model:  c.model,
		Prompt: prompt,
		Stream: false,
	}

	resp, err := c.http.PostJSON(ctx, c.apiURL, body)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", apperrors.Wrap(apperrors.ErrCodeOllamaTimeout, "generate timed out", err)
		}
		return "", apperrors.Wrap(apperrors.ErrCodeOllamaRequestFailed, "generate request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", apperrors.New(apperrors.ErrCodeOllamaRequestFailed,
			fmt.Sprintf("generate returned status %d", resp.StatusCode))
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", apperrors.Wrap(apperrors.ErrCodeOllamaBadResponse, "decode generate response", err)
	}

	text := out.Response
	if text == "" {
		text = out.Text
	}
	text = strings.TrimSpace(text)

	c.logger.Debug("generate completed", map[string]interface{}{
		"verdictLength": len(text),
	})

	return text, nil
}
