package services

import (
	"context"
	"github.com/deanjroach84/DreamTales/application/ports/outbound"
	"github.com/deanjroach84/DreamTales/infrastructure/adapters"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"io"
	"sync"
	"testing"
)

type fakeTextGenerator struct {
	mu      sync.Mutex
	reply   string
	err     error
	block   bool
	prompts []outbound.Prompt
}

func (f *fakeTextGenerator) Name() string { return "fake" }

func (f *fakeTextGenerator) Complete(ctx context.Context, prompt outbound.Prompt) (string, error) {
	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	f.mu.Unlock()

	if f.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return f.reply, f.err
}

func (f *fakeTextGenerator) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}

func newTestLogger() outbound.LoggerPort {
	return adapters.NewZerologWrapperWithWriter(io.Discard, zerolog.Disabled)
}

func newTestPool(t *testing.T) *ants.Pool {
	t.Helper()
	pool, err := ants.NewPool(4)
	require.NoError(t, err)
	t.Cleanup(pool.Release)
	return pool
}
