package analyzer

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/dermasight/internal/common"
	"github.com/dmitrijs2005/dermasight/internal/logging"
	"github.com/dmitrijs2005/dermasight/internal/models"
)

// Gemini REST wire types.

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generationConfig struct {
	ResponseMimeType string  `json:"responseMimeType,omitempty"`
	Temperature      float64 `json:"temperature"`
}

type generateContentRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content      content `json:"content"`
		FinishReason string  `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback *struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback"`
}

type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// Options configures a GeminiClient.
type Options struct {
	APIKey      string
	Model       string
	BaseURL     string
	Temperature float64
	HTTPClient  *http.Client
}

// GeminiClient calls the generateContent endpoint. It applies no timeout or
// retry of its own; cancellation comes from the caller's context.
type GeminiClient struct {
	http        *http.Client
	apiKey      string
	model       string
	baseURL     string
	temperature float64
	log         logging.Logger
}

func NewGeminiClient(opts Options, log logging.Logger) *GeminiClient {
	hc := opts.HTTPClient
	if hc == nil {
		hc = http.DefaultClient
	}
	return &GeminiClient{
		http:        hc,
		apiKey:      opts.APIKey,
		model:       opts.Model,
		baseURL:     strings.TrimRight(opts.BaseURL, "/"),
		temperature: opts.Temperature,
		log:         log.With("module", "analyzer"),
	}
}

func (c *GeminiClient) endpoint() string {
	return fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, url.PathEscape(c.model))
}

func remoteErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", common.ErrRemoteAnalysis, fmt.Sprintf(format, args...))
}

func (c *GeminiClient) Analyze(ctx context.Context, req Request) (*models.Prediction, error) {
	prompt, err := buildPrompt(req)
	if err != nil {
		return nil, remoteErr("build prompt: %v", err)
	}

	body, err := json.Marshal(generateContentRequest{
		Contents: []content{{
			Role: "user",
			Parts: []part{
				{InlineData: &inlineData{MimeType: req.MIMEType, Data: base64.StdEncoding.EncodeToString(req.Image)}},
				{Text: prompt},
			},
		}},
		GenerationConfig: generationConfig{ResponseMimeType: "application/json", Temperature: c.temperature},
	})
	if err != nil {
		return nil, remoteErr("encode request: %v", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(body))
	if err != nil {
		return nil, remoteErr("build request: %v", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.log.Error(ctx, "analyzer request failed", "error", err)
		return nil, remoteErr("request failed: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, remoteErr("read response: %v", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var ae apiError
		msg := strings.TrimSpace(string(raw))
		if json.Unmarshal(raw, &ae) == nil && ae.Error.Message != "" {
			msg = ae.Error.Message
		}
		c.log.Error(ctx, "analyzer returned error status", "status", resp.StatusCode, "message", msg)
		return nil, remoteErr("status %d: %s", resp.StatusCode, msg)
	}

	var gr generateContentResponse
	if err := json.Unmarshal(raw, &gr); err != nil {
		return nil, remoteErr("decode response: %v", err)
	}

	text := responseText(&gr)
	if text == "" {
		if gr.PromptFeedback != nil && gr.PromptFeedback.BlockReason != "" {
			return nil, remoteErr("request blocked: %s", gr.PromptFeedback.BlockReason)
		}
		return nil, remoteErr("empty model output")
	}

	p, err := ParsePrediction(text)
	if err != nil {
		c.log.Error(ctx, "analyzer output rejected", "error", err)
		return nil, err
	}

	c.log.Debug(ctx, "analysis complete", "case_id", p.DoctorDashboard.CaseID)
	return p, nil
}

func responseText(gr *generateContentResponse) string {
	if len(gr.Candidates) == 0 {
		return ""
	}
	var b strings.Builder
	for _, p := range gr.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	return strings.TrimSpace(b.String())
}
