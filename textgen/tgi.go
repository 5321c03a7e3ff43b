package textgen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pingcap/errors"
)

// DefaultMaxNewTokens keeps generated cell values short.
const DefaultMaxNewTokens = 32

// TGIClient calls a text-generation-inference style HTTP endpoint:
//	POST {"inputs": "...", "parameters": {"max_new_tokens": N}}
// and accepts either [{"generated_text": "..."}] or {"generated_text": "..."}.
type TGIClient struct {
	URL          string
	MaxNewTokens int
	HTTPClient   *http.Client
}

// NewTGIClient returns a client posting to url.
func NewTGIClient(url string, maxNewTokens int) *TGIClient {
	if maxNewTokens <= 0 {
		maxNewTokens = DefaultMaxNewTokens
	}
	return &TGIClient{URL: url, MaxNewTokens: maxNewTokens, HTTPClient: http.DefaultClient}
}

type tgiRequest struct {
	Inputs     string        `json:"inputs"`
	Parameters tgiParameters `json:"parameters"`
}

type tgiParameters struct {
	MaxNewTokens   int  `json:"max_new_tokens"`
	ReturnFullText bool `json:"return_full_text"`
}

type tgiResponse struct {
	GeneratedText string `json:"generated_text"`
}

func (c *TGIClient) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(tgiRequest{
		Inputs:     prompt,
		Parameters: tgiParameters{MaxNewTokens: c.MaxNewTokens},
	})
	if err != nil {
		return "", errors.Trace(err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(body))
	if err != nil {
		return "", errors.Trace(err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", errors.Trace(err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", errors.Trace(err)
	}
	if resp.StatusCode/100 != 2 {
		return "", errors.Errorf("text generator returned status=%v body=%v", resp.StatusCode, truncate(string(payload), 200))
	}
	return decodeTGIResponse(payload)
}

func decodeTGIResponse(payload []byte) (string, error) {
	payload = bytes.TrimSpace(payload)
	if len(payload) > 0 && payload[0] == '[' {
		var rs []tgiResponse
		if err := json.Unmarshal(payload, &rs); err != nil {
			return "", errors.Annotate(err, "malformed text generator response")
		}
		if len(rs) == 0 {
			return "", errors.New("text generator returned no candidates")
		}
		return rs[0].GeneratedText, nil
	}
	var r tgiResponse
	if err := json.Unmarshal(payload, &r); err != nil {
		return "", errors.Annotate(err, "malformed text generator response")
	}
	return r.GeneratedText, nil
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return fmt.Sprintf("%s...", s[:n])
}
