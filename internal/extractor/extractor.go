package extractor

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"

	"github.com/olegmish/quickmeet/pkg/models"
)

// systemPrompt is the fixed instruction contract: strict JSON, absolute
// dates, 24-hour times, relative dates resolved by the model itself.
const systemPrompt = `You are an event parser for my calendar. Extract meeting information and return strict JSON.
You understand both Russian and English languages.

Format:
{
  "title": "",
  "date": "YYYY-MM-DD",
  "time": "HH:MM",
  "description": "",
  "duration_minutes": 60
}

Rules:
- Date format: YYYY-MM-DD
- Time format: HH:MM (24-hour format)
- If duration is not specified — set 60 minutes
- If description is missing — duplicate the title
- Return only JSON, no additional text
- Understand relative dates like "tomorrow", "завтра", "after tomorrow", "послезавтра", "today", "сегодня"

User text:
`

type Config struct {
	APIKey  string
	Model   string
	BaseURL string // empty means the default OpenAI endpoint
	Timeout time.Duration
}

// Client asks the language model to turn free text into an EventDraft.
type Client struct {
	log     *logrus.Entry
	api     *openai.Client
	model   string
	timeout time.Duration
}

func New(log *logrus.Logger, cfg Config) *Client {
	apiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = cfg.BaseURL
	}
	return &Client{
		log:     log.WithField("component", "extractor"),
		api:     openai.NewClientWithConfig(apiCfg),
		model:   cfg.Model,
		timeout: cfg.Timeout,
	}
}

// Extract sends the text with the fixed instruction and parses the reply.
// Temperature 0 keeps repeated identical input close to deterministic,
// which is best effort on the model's side, not a guarantee.
func (c *Client) Extract(ctx context.Context, text string) (models.EventDraft, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		// The temperature field is marshalled with omitempty, so a literal 0
		// never reaches the wire; the smallest nonzero float is how an
		// explicit zero temperature is encoded.
		Temperature: math.SmallestNonzeroFloat32,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
	})
	if err != nil {
		c.log.Errorf("err calling extraction service: %v", err)
		return models.EventDraft{}, fmt.Errorf("%w: %v", models.ErrServiceError, err)
	}
	if len(resp.Choices) == 0 {
		c.log.Error("extraction response has no choices")
		return models.EventDraft{}, fmt.Errorf("%w: empty choices", models.ErrMalformedResponse)
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	var draft models.EventDraft
	if err = json.Unmarshal([]byte(content), &draft); err != nil {
		c.log.WithField("body", content).Errorf("err parsing extraction response: %v", err)
		return models.EventDraft{}, fmt.Errorf("%w: %v", models.ErrMalformedResponse, err)
	}
	return draft, nil
}
