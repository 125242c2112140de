package claude

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/liushuangls/go-anthropic/v2"
	"github.com/shopspring/decimal"
	"github.com/vbonduro/cashdrop/internal/labelreader"
)

// Reader asks a Claude model for the total printed on a label photo.
type Reader struct {
	client *anthropic.Client
	model  string
}

type Option func(*options)

type options struct {
	baseURL string
}

// WithBaseURL points the client at another Messages API endpoint.
func WithBaseURL(url string) Option {
	return func(o *options) { o.baseURL = url }
}

func New(apiKey, model string, opts ...Option) *Reader {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var clientOpts []anthropic.ClientOption
	if o.baseURL != "" {
		clientOpts = append(clientOpts, anthropic.WithBaseURL(o.baseURL))
	}
	return &Reader{
		client: anthropic.NewClient(apiKey, clientOpts...),
		model:  model,
	}
}

func (r *Reader) ReadTotal(ctx context.Context, img io.Reader, mimeType string) (decimal.Decimal, error) {
	data, err := io.ReadAll(img)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to read image: %w", err)
	}

	resp, err := r.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model: anthropic.Model(r.model),
		Messages: []anthropic.Message{{
			Role: anthropic.RoleUser,
			Content: []anthropic.MessageContent{
				anthropic.NewImageMessageContent(anthropic.NewMessageContentSource(
					anthropic.MessagesContentSourceTypeBase64,
					normaliseMIME(mimeType),
					base64.StdEncoding.EncodeToString(data),
				)),
				anthropic.NewTextMessageContent(labelreader.Prompt),
			},
		}},
		// A label total is a single short number.
		MaxTokens: 32,
	})
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to call claude: %w", err)
	}
	if len(resp.Content) == 0 {
		return decimal.Zero, labelreader.ErrNoAmount
	}

	return labelreader.ParseAmount(resp.Content[0].GetText())
}

// normaliseMIME maps upload MIME types to the image types the API accepts.
func normaliseMIME(mimeType string) string {
	switch mimeType {
	case "image/png", "image/gif", "image/webp":
		return mimeType
	default:
		return "image/jpeg"
	}
}
