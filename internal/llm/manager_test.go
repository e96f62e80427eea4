package llm

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobbuddy-utils/internal/config"
)

// fakeProvider chunks its canned response so streaming and blocking calls
// can be compared.
type fakeProvider struct {
	response  string
	chunkSize int
	healthErr error
}

func (p *fakeProvider) Complete(ctx context.Context, req ChatRequest) (string, error) {
	return p.response, nil
}

func (p *fakeProvider) Stream(ctx context.Context, req ChatRequest) (<-chan Chunk, error) {
	out := make(chan Chunk)
	go func() {
		defer close(out)
		text := p.response
		for len(text) > 0 {
			n := p.chunkSize
			if n > len(text) {
				n = len(text)
			}
			select {
			case out <- Chunk{Text: text[:n]}:
				text = text[n:]
			case <-ctx.Done():
				out <- Chunk{Err: ctx.Err()}
				return
			}
		}
	}()
	return out, nil
}

func (p *fakeProvider) IsHealthy(ctx context.Context) error { return p.healthErr }
func (p *fakeProvider) GetProviderName() string             { return "fake" }

type fakeFactory struct {
	provider  Provider
	createErr error
}

func (f *fakeFactory) CreateProvider(ctx context.Context) (Provider, error) {
	return f.provider, f.createErr
}

func (f *fakeFactory) GetSupportedProviders() []string { return []string{"fake"} }

func managerConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LLM.Provider = "fake"
	cfg.LLM.Timeout = 5 * time.Second
	return cfg
}

func TestManagerStreamMatchesComplete(t *testing.T) {
	provider := &fakeProvider{
		response:  "The interviewer asks about your experience with Go services.",
		chunkSize: 7,
	}
	m := NewManager(managerConfig(), &fakeFactory{provider: provider})
	require.NoError(t, m.Start(context.Background()))

	req := ChatRequest{
		Messages: []Message{
			{Role: RoleSystem, Content: "persona"},
			{Role: RoleUser, Content: "question"},
		},
	}

	blocking, err := m.Complete(context.Background(), req)
	require.NoError(t, err)

	chunks, err := m.Stream(context.Background(), req)
	require.NoError(t, err)

	var streamed strings.Builder
	for chunk := range chunks {
		require.NoError(t, chunk.Err)
		streamed.WriteString(chunk.Text)
	}

	assert.Equal(t, blocking, streamed.String(),
		"concatenated stream must equal the blocking response for identical requests")
}

// stallingProvider emits one fragment and then hangs until the call
// deadline expires, reporting the expiry the way real providers do.
type stallingProvider struct{}

func (p *stallingProvider) Complete(ctx context.Context, req ChatRequest) (string, error) {
	return "", &ProviderError{Provider: "fake", Op: "complete", Err: context.DeadlineExceeded}
}

func (p *stallingProvider) Stream(ctx context.Context, req ChatRequest) (<-chan Chunk, error) {
	out := make(chan Chunk)
	go func() {
		defer close(out)
		select {
		case out <- Chunk{Text: "partial "}:
		case <-ctx.Done():
		}
		<-ctx.Done()
		out <- Chunk{Err: &ProviderError{Provider: "fake", Op: "stream", Err: ctx.Err()}}
	}()
	return out, nil
}

func (p *stallingProvider) IsHealthy(ctx context.Context) error { return nil }
func (p *stallingProvider) GetProviderName() string             { return "fake" }

func TestManagerStreamTimeoutDeliversProviderError(t *testing.T) {
	cfg := managerConfig()
	cfg.LLM.Timeout = 20 * time.Millisecond
	m := NewManager(cfg, &fakeFactory{provider: &stallingProvider{}})
	require.NoError(t, m.Start(context.Background()))

	// The caller deadline and the terminal error chunk become ready at the
	// same moment; repeat so a dropped chunk cannot slip through.
	for i := 0; i < 20; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)

		chunks, err := m.Stream(ctx, ChatRequest{})
		require.NoError(t, err)

		var last Chunk
		for chunk := range chunks {
			last = chunk
		}
		cancel()

		require.Error(t, last.Err, "a timed-out stream must end with an error chunk")
		var provErr *ProviderError
		require.ErrorAs(t, last.Err, &provErr)
		assert.True(t, provErr.Timeout())
	}
}

func TestManagerNotStarted(t *testing.T) {
	m := NewManager(managerConfig(), &fakeFactory{provider: &fakeProvider{}})

	_, err := m.Complete(context.Background(), ChatRequest{})
	assert.Error(t, err)

	_, err = m.Stream(context.Background(), ChatRequest{})
	assert.Error(t, err)
}

func TestManagerStartsDegradedOnFailedHealthCheck(t *testing.T) {
	provider := &fakeProvider{response: "ok", chunkSize: 2, healthErr: ErrEmptyResponse}
	m := NewManager(managerConfig(), &fakeFactory{provider: provider})

	require.NoError(t, m.Start(context.Background()), "a failed health check must not block startup")
	assert.False(t, m.IsHealthy())

	// Requests still route to the provider; health only affects reporting.
	text, err := m.Complete(context.Background(), ChatRequest{})
	require.NoError(t, err)
	assert.Equal(t, "ok", text)
}
