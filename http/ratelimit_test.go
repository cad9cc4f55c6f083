package http_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wikihttp "github.com/WhiteElephant-abc/minecraft-wiki-fetch-api/http"
)

func TestDomainLimiter_Wait(t *testing.T) {
	t.Parallel()

	l := wikihttp.NewDomainLimiter(1000)

	start := time.Now()
	for i := 0; i < 5; i++ {
		require.NoError(t, l.Wait(context.Background(), "minecraft.wiki"))
	}
	assert.Less(t, time.Since(start), time.Second)
}

func TestDomainLimiter_Wait_IndependentDomains(t *testing.T) {
	t.Parallel()

	// 1 rps: the second request to the same domain would block, but a
	// different domain has its own bucket and proceeds immediately.
	l := wikihttp.NewDomainLimiter(1)

	require.NoError(t, l.Wait(context.Background(), "minecraft.wiki"))

	start := time.Now()
	require.NoError(t, l.Wait(context.Background(), "cdn.minecraft.wiki"))
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestDomainLimiter_Wait_CanceledContext(t *testing.T) {
	t.Parallel()

	l := wikihttp.NewDomainLimiter(0.001)
	require.NoError(t, l.Wait(context.Background(), "minecraft.wiki"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, l.Wait(ctx, "minecraft.wiki"))
}
