// Package llm talks to the Gemini text-generation API and turns its output
// into structured meal plans.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ksabhilash-bot/Mdplanner-sub000/pkg/errs"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

// Client is a thin request/response wrapper around the Gemini REST API.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

type geminiRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content content `json:"content"`
}

// NewClient builds a Gemini client. The timeout bounds the whole request;
// generation is the only long-latency call in the system.
func NewClient(apiKey, model string, timeout time.Duration) *Client {
	return &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Generate sends a prompt and returns the raw text of the first candidate.
// A timeout is reported as a GenerationError so callers can tell the user
// to retry.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	requestBody := geminiRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}

	jsonData, err := json.Marshal(requestBody)
	if err != nil {
		return "", fmt.Errorf("error marshaling request: %v", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("error creating request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			return "", &errs.GenerationError{Reason: "generation service timed out", Err: err}
		}
		return "", &errs.GenerationError{Reason: "generation service unreachable", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", &errs.GenerationError{
			Reason: fmt.Sprintf("generation service returned status %d: %s", resp.StatusCode, string(body)),
		}
	}

	var response geminiResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", &errs.GenerationError{Reason: "unexpected response envelope", Err: err}
	}

	if len(response.Candidates) == 0 || len(response.Candidates[0].Content.Parts) == 0 {
		return "", &errs.GenerationError{Reason: "no candidates in response"}
	}

	return response.Candidates[0].Content.Parts[0].Text, nil
}

func isTimeout(err error) bool {
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
