// Package summarize produces short summaries of note text. The remote
// implementation is a best-effort external collaborator; callers must
// always be prepared to fall back to the local extractive summary.
package summarize

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"regexp"
	"strings"
)

var ErrNotConfigured = errors.New("summarizer endpoint not configured")

// Summarizer condenses text into a short summary.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// maxInputChars bounds how much text is sent to the remote model.
const maxInputChars = 1024

// Remote calls an external inference endpoint. The endpoint and token
// come from configuration; nothing is hardcoded or persisted here.
type Remote struct {
	endpoint string
	token    string
	client   *http.Client
}

// NewRemote creates a remote summarizer. An empty endpoint yields a
// summarizer that always reports ErrNotConfigured, which callers treat
// as "use the fallback".
func NewRemote(endpoint, token string) *Remote {
	return &Remote{
		endpoint: endpoint,
		token:    token,
		client:   http.DefaultClient,
	}
}

type request struct {
	Inputs     string `json:"inputs"`
	Parameters struct {
		MaxLength int `json:"max_length"`
		MinLength int `json:"min_length"`
	} `json:"parameters"`
}

type response []struct {
	SummaryText string `json:"summary_text"`
}

// Summarize posts the leading text to the endpoint and returns the
// model's summary.
func (r *Remote) Summarize(ctx context.Context, text string) (string, error) {
	if r.endpoint == "" {
		return "", ErrNotConfigured
	}

	input := text
	if len(input) > maxInputChars {
		input = input[:maxInputChars]
	}
	var payload request
	payload.Inputs = input
	payload.Parameters.MaxLength = 150
	payload.Parameters.MinLength = 50

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("summarization request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("summarization endpoint returned %s", resp.Status)
	}

	var result response
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(result) == 0 || result[0].SummaryText == "" {
		return "", errors.New("empty summary in response")
	}
	return result[0].SummaryText, nil
}

var sentenceRe = regexp.MustCompile(`[^.!?]+[.!?]+`)

// Extractive is the local fallback: the leading max(2, ceil(0.3*n))
// sentences of the text, where n is the sentence count. Text with no
// sentence boundaries yields the empty string.
func Extractive(text string) string {
	sentences := sentenceRe.FindAllString(text, -1)
	if len(sentences) == 0 {
		return ""
	}

	keep := int(math.Ceil(float64(len(sentences)) * 0.3))
	if keep < 2 {
		keep = 2
	}
	if keep > len(sentences) {
		keep = len(sentences)
	}
	return strings.TrimSpace(strings.Join(sentences[:keep], ""))
}

// Best returns the remote summary when the summarizer succeeds, and
// degrades to the extractive fallback on any failure. It never returns
// an error.
func Best(ctx context.Context, s Summarizer, text string) string {
	if s != nil {
		if summary, err := s.Summarize(ctx, text); err == nil {
			return summary
		}
	}
	return Extractive(text)
}
