// Package captioning asks a Responses-style model endpoint to describe an
// image of a collection piece in Brazilian Portuguese.
package captioning

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/ACORDE/memorial-acervo/src/config"
	"github.com/ACORDE/memorial-acervo/src/logger"
	"github.com/gabriel-vasile/mimetype"
)

const (
	SystemPrompt = "Você é um especialista em descrição de peças museológicas. " +
		"Forneça uma descrição detalhada, clara e em português brasileiro da imagem fornecida, " +
		"destacando materiais, características visuais marcantes, estado e contexto histórico " +
		"quando possível. Utilize frases completas e objetivas."
	UserPrompt = "Descreva a peça apresentada na imagem em português brasileiro."

	fallbackMimeType = "application/octet-stream"
)

// Describer produces a textual description of an image given as a data URI.
type Describer interface {
	Describe(ctx context.Context, apiKey, imageDataURL string) (string, error)
}

type Client struct {
	cfg        config.CaptionConfig
	httpClient *http.Client
	log        *logger.Logger
}

func NewClient(cfg config.CaptionConfig, log *logger.Logger) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        log,
	}
}

type contentPart struct {
	Type     string `json:"type"`
	Text     string `json:"text,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

type inputMessage struct {
	Role    string        `json:"role"`
	Content []contentPart `json:"content"`
}

type responsesRequest struct {
	Model           string         `json:"model"`
	Input           []inputMessage `json:"input"`
	MaxOutputTokens int            `json:"max_output_tokens"`
}

type responsesResponse struct {
	Output []struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	} `json:"output"`
}

func (c *Client) newRequest(imageDataURL string) responsesRequest {
	return responsesRequest{
		Model: c.cfg.Model,
		Input: []inputMessage{
			{Role: "system", Content: []contentPart{{Type: "input_text", Text: SystemPrompt}}},
			{Role: "user", Content: []contentPart{
				{Type: "input_text", Text: UserPrompt},
				{Type: "input_image", ImageURL: imageDataURL},
			}},
		},
		MaxOutputTokens: c.cfg.MaxOutputTokens,
	}
}

// Describe sends one request and returns the concatenated output text, untrimmed.
// Failures are *TransportError, *HTTPError, *InvalidResponseError or
// *EmptyResponseError.
func (c *Client) Describe(ctx context.Context, apiKey, imageDataURL string) (string, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(c.newRequest(imageDataURL)); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, &buf)
	if err != nil {
		return "", &TransportError{Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("caption request failed", "error", err)
		return "", &TransportError{Err: err}
	}
	raw, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if readErr != nil {
		return "", &TransportError{Err: readErr}
	}

	if resp.StatusCode >= 400 {
		c.log.Warn("caption endpoint returned an error", "status", resp.StatusCode)
		return "", newHTTPError(resp.StatusCode, raw)
	}

	var payload responsesResponse
	if err := json.Unmarshal(raw, &payload); err != nil {
		return "", &InvalidResponseError{Body: string(raw)}
	}

	var text strings.Builder
	for _, item := range payload.Output {
		for _, part := range item.Content {
			if part.Type == "output_text" {
				text.WriteString(part.Text)
			}
		}
	}
	if text.Len() == 0 {
		var generic interface{}
		_ = json.Unmarshal(raw, &generic)
		return "", &EmptyResponseError{Payload: generic}
	}
	return text.String(), nil
}

// DataURL encodes content as a base64 data URI. The MIME type comes from the
// file extension, then from the content itself.
func DataURL(name string, content []byte) string {
	return "data:" + MimeType(name, content) + ";base64," + base64.StdEncoding.EncodeToString(content)
}

func MimeType(name string, content []byte) string {
	if t := mime.TypeByExtension(strings.ToLower(filepath.Ext(name))); t != "" {
		if i := strings.IndexByte(t, ';'); i >= 0 {
			t = strings.TrimSpace(t[:i])
		}
		return t
	}
	if len(content) > 0 {
		if detected := mimetype.Detect(content); detected != nil {
			return detected.String()
		}
	}
	return fallbackMimeType
}

var _ Describer = (*Client)(nil)
