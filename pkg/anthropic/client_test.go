package anthropic

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageResponse_Text(t *testing.T) {
	t.Parallel()

	resp := &MessageResponse{Content: []ContentBlock{
		{Type: "text", Text: "primeira parte "},
		{Type: "tool_use", Text: "ignorado"},
		{Type: "text", Text: "segunda parte"},
	}}

	assert.Equal(t, "primeira parte segunda parte", resp.Text())
}

func TestTokenUsage_EstimateCost(t *testing.T) {
	t.Parallel()

	usage := TokenUsage{InputTokens: 1_000_000, OutputTokens: 500_000}

	t.Run("known model", func(t *testing.T) {
		t.Parallel()
		// 1M input at $0.80 plus 0.5M output at $4.00.
		assert.InDelta(t, 2.80, usage.EstimateCost("claude-haiku-4-5-20251001"), 1e-9)
	})

	t.Run("unknown model", func(t *testing.T) {
		t.Parallel()
		assert.Zero(t, usage.EstimateCost("claude-unknown"))
	})
}

type countingClient struct {
	calls int
}

func (c *countingClient) CreateMessage(_ context.Context, _ MessageRequest) (*MessageResponse, error) {
	c.calls++
	return &MessageResponse{}, nil
}

func TestNewRateLimited_PassThroughWhenDisabled(t *testing.T) {
	t.Parallel()

	inner := &countingClient{}
	assert.Same(t, Client(inner), NewRateLimited(inner, 0))
}

func TestNewRateLimited_Throttles(t *testing.T) {
	t.Parallel()

	inner := &countingClient{}
	// 6000 req/min = 100 req/s; burst of one means the second call must wait
	// roughly 10ms.
	client := NewRateLimited(inner, 6000)

	start := time.Now()
	for i := 0; i < 2; i++ {
		_, err := client.CreateMessage(context.Background(), MessageRequest{})
		require.NoError(t, err)
	}

	assert.Equal(t, 2, inner.calls)
	assert.GreaterOrEqual(t, time.Since(start), 9*time.Millisecond)
}

func TestNewRateLimited_HonorsContext(t *testing.T) {
	t.Parallel()

	inner := &countingClient{}
	client := NewRateLimited(inner, 1)

	// First call consumes the burst token.
	_, err := client.CreateMessage(context.Background(), MessageRequest{})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err = client.CreateMessage(ctx, MessageRequest{})
	require.Error(t, err)
	assert.Equal(t, 1, inner.calls)
}
