// Package genai is a lightweight facade over the Gemini generateContent API,
// covering only what the background-removal pipeline needs: send one image
// plus an editing instruction, get one image back.
package genai

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
	"time"

	"github.com/rs/zerolog"

	"github.com/xpmourad/cutout/internal/imageref"
	"github.com/xpmourad/cutout/internal/infra"
)

// Options controls how the Gemini client is configured.
type Options struct {
	APIKey     string
	BaseURL    string
	Model      string
	HTTPClient *http.Client
	Logger     *infra.Logger
}

// Client issues generateContent calls against the Gemini image model. Every
// call is single-shot: no retry, no rate limiting, no timeout beyond the
// caller's context and the underlying HTTP client.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
	logger     *infra.Logger
}

// EditedImage is the raw image returned by an edit call.
type EditedImage struct {
	Data []byte
	MIME string
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts,omitempty"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mimeType,omitempty"`
	Data     string `json:"data,omitempty"`
}

type geminiGenerationConfig struct {
	ResponseModalities []string `json:"responseModalities,omitempty"`
}

type geminiGenerateContentRequest struct {
	Contents         []geminiContent         `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiCandidate struct {
	Content      geminiContent `json:"content"`
	FinishReason string        `json:"finishReason,omitempty"`
}

type geminiPromptFeedback struct {
	BlockReason string `json:"blockReason,omitempty"`
}

type geminiGenerateContentResponse struct {
	Candidates     []geminiCandidate     `json:"candidates"`
	PromptFeedback *geminiPromptFeedback `json:"promptFeedback,omitempty"`
}

type geminiErrorResponse struct {
	Error struct {
		Code    int    `json:"code,omitempty"`
		Message string `json:"message,omitempty"`
		Status  string `json:"status,omitempty"`
	} `json:"error"`
}

// NewClient constructs a Gemini client with sane defaults. Callers may provide
// a nil HTTP client; a reusable one with a generous timeout will be created.
func NewClient(opts Options) *Client {
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 120 * time.Second}
	}

	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com/v1beta"
	}

	model := opts.Model
	if model == "" {
		model = "gemini-2.5-flash-image-preview"
	}

	var logger *infra.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	} else {
		discard := infra.Logger(zerolog.New(io.Discard))
		logger = &discard
	}

	return &Client{
		apiKey:     strings.TrimSpace(opts.APIKey),
		baseURL:    baseURL,
		model:      model,
		httpClient: client,
		logger:     logger,
	}
}

// Model returns the configured Gemini model identifier.
func (c *Client) Model() string {
	return c.model
}

// EditImage sends the referenced image and the editing instruction to the
// model and returns the first image the response carries. A response with no
// image parts yields a nil EditedImage and a nil error; the caller decides
// how to treat an absent result.
func (c *Client) EditImage(ctx context.Context, ref imageref.Ref, instruction string) (*EditedImage, error) {
	inline, err := c.inlinePart(ctx, ref)
	if err != nil {
		return nil, err
	}

	payload := geminiGenerateContentRequest{
		Contents: []geminiContent{{
			Role: "user",
			Parts: []geminiPart{
				{Text: instruction},
				{InlineData: inline},
			},
		}},
		GenerationConfig: &geminiGenerationConfig{
			ResponseModalities: []string{"IMAGE"},
		},
	}

	var response geminiGenerateContentResponse
	path := fmt.Sprintf("/models/%s:generateContent", url.PathEscape(c.model))
	if err := c.invoke(ctx, path, payload, &response); err != nil {
		return nil, err
	}

	if fb := response.PromptFeedback; fb != nil && fb.BlockReason != "" {
		return nil, fmt.Errorf("gemini: request blocked due to safety (%s)", fb.BlockReason)
	}

	for _, candidate := range response.Candidates {
		if strings.EqualFold(candidate.FinishReason, "SAFETY") ||
			strings.EqualFold(candidate.FinishReason, "IMAGE_SAFETY") {
			return nil, fmt.Errorf("gemini: response blocked due to safety (%s)", candidate.FinishReason)
		}
		for _, part := range candidate.Content.Parts {
			if part.InlineData == nil || part.InlineData.Data == "" {
				continue
			}
			data, err := base64.StdEncoding.DecodeString(part.InlineData.Data)
			if err != nil {
				return nil, fmt.Errorf("gemini: decode inline data: %w", err)
			}
			mime := part.InlineData.MimeType
			if mime == "" {
				mime = "image/png"
			}
			c.logger.Debug().
				Str("model", c.model).
				Int("bytes", len(data)).
				Msg("genai: received edited image")
			return &EditedImage{Data: data, MIME: mime}, nil
		}
	}

	c.logger.Debug().
		Str("model", c.model).
		Msg("genai: response carried no image parts")
	return nil, nil
}

// inlinePart converts the image reference into an inlineData part. Data URIs
// are decoded locally; URL references are fetched first so the model always
// receives the bytes inline.
func (c *Client) inlinePart(ctx context.Context, ref imageref.Ref) (*geminiInlineData, error) {
	if ref.IsDataURI() {
		data, mime, err := imageref.DecodeDataURI(ref)
		if err != nil {
			return nil, fmt.Errorf("gemini: read image reference: %w", err)
		}
		return &geminiInlineData{
			MimeType: mime,
			Data:     base64.StdEncoding.EncodeToString(data),
		}, nil
	}

	data, mime, err := c.fetchImage(ctx, string(ref))
	if err != nil {
		return nil, err
	}
	return &geminiInlineData{
		MimeType: mime,
		Data:     base64.StdEncoding.EncodeToString(data),
	}, nil
}

func (c *Client) invoke(ctx context.Context, path string, payload any, out any) error {
	endpoint := c.baseURL + path
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	q := req.URL.Query()
	if c.apiKey != "" {
		q.Set("key", c.apiKey)
	}
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("invoke gemini: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr geminiErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error.Message != "" {
			if apiErr.Error.Status != "" {
				return fmt.Errorf("gemini status %d (%s): %s", resp.StatusCode, apiErr.Error.Status, apiErr.Error.Message)
			}
			return fmt.Errorf("gemini status %d: %s", resp.StatusCode, apiErr.Error.Message)
		}
		data, _ := io.ReadAll(resp.Body)
		if len(data) > 0 {
			return fmt.Errorf("gemini status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
		}
		return fmt.Errorf("gemini status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode gemini response: %w", err)
	}
	return nil
}

// fetchImage downloads a URL-referenced image so it can be inlined. The body
// is capped slightly above the inline ceiling to avoid slurping arbitrarily
// large remote files.
func (c *Client) fetchImage(ctx context.Context, target string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, "", fmt.Errorf("gemini: create image fetch: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("gemini: fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, "", fmt.Errorf("gemini: fetch image status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, imageref.MaxBytes+1))
	if err != nil {
		return nil, "", fmt.Errorf("gemini: read image body: %w", err)
	}
	if len(data) > imageref.MaxBytes {
		return nil, "", fmt.Errorf("gemini: remote image exceeds %d bytes", imageref.MaxBytes)
	}

	mime := resp.Header.Get("Content-Type")
	if idx := strings.IndexByte(mime, ';'); idx >= 0 {
		mime = mime[:idx]
	}
	mime = strings.TrimSpace(mime)
	if mime == "" {
		mime = http.DetectContentType(data)
	}
	return data, mime, nil
}
