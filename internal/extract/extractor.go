package extract

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/vertex-gestao/prestacao/internal/resilience"
	"github.com/vertex-gestao/prestacao/pkg/anthropic"
)

const systemPrompt = "Você é um assistente especializado em extrair dados estruturados de documentos. Sempre retorne JSON válido."

// Extractor runs the document extraction flows against the inference backend.
type Extractor struct {
	client    anthropic.Client
	model     string
	maxTokens int64
	baseDelay time.Duration
	now       func() time.Time
}

// Opts configures an Extractor.
type Opts struct {
	Model     string
	MaxTokens int64
	// BaseRetryDelay is the linear backoff unit between attempts.
	BaseRetryDelay time.Duration
	// Now overrides the clock, for tests.
	Now func() time.Time
}

// New creates an Extractor over the given client.
func New(client anthropic.Client, opts Opts) *Extractor {
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = 1024
	}
	if opts.BaseRetryDelay <= 0 {
		opts.BaseRetryDelay = time.Second
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Extractor{
		client:    client,
		model:     opts.Model,
		maxTokens: opts.MaxTokens,
		baseDelay: opts.BaseRetryDelay,
		now:       opts.Now,
	}
}

// extract sends one prompt per attempt and requires valid JSON back. Empty
// content and unparseable responses count as failed attempts. Exhaustion
// returns a *resilience.ExhaustedError wrapping the last failure.
func (e *Extractor) extract(ctx context.Context, task, prompt, imageURL string, maxAttempts int) (map[string]any, error) {
	cfg := resilience.RetryConfig{
		MaxAttempts: maxAttempts,
		BaseDelay:   e.baseDelay,
		OnRetry:     resilience.RetryLogger("anthropic", task),
	}

	return resilience.DoVal(ctx, cfg, func(ctx context.Context) (map[string]any, error) {
		resp, err := e.client.CreateMessage(ctx, anthropic.MessageRequest{
			Model:     e.model,
			MaxTokens: e.maxTokens,
			System:    systemPrompt,
			Messages: []anthropic.Message{
				{Role: "user", Content: prompt, ImageURL: imageURL},
			},
			Temperature: floatPtr(0.1),
		})
		if err != nil {
			return nil, err
		}

		text := resp.Text()
		if text == "" {
			return nil, eris.New("resposta vazia do modelo")
		}

		var parsed map[string]any
		if err := json.Unmarshal([]byte(cleanJSON(text)), &parsed); err != nil {
			return nil, eris.Wrap(err, "extract: parse response")
		}

		resp.Usage.LogCost(e.model, task)
		return parsed, nil
	})
}

func floatPtr(v float64) *float64 { return &v }

func logRecovered(task string, err error) {
	zap.L().Warn("extraction failed, returning defaults",
		zap.String("task", task),
		zap.Error(err),
	)
}
