package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReplaceDeliveryDisplacesStaleSet(t *testing.T) {
	ch := make(chan []string, 1)

	replaceDelivery(ch, []string{"stale"})
	replaceDelivery(ch, []string{"fresh-1", "fresh-2"})

	assert.Equal(t, []string{"fresh-1", "fresh-2"}, <-ch)

	select {
	case extra := <-ch:
		t.Fatalf("unexpected second delivery: %v", extra)
	default:
	}
}

func TestReplaceDeliveryOnEmptyChannel(t *testing.T) {
	ch := make(chan []int, 1)

	replaceDelivery(ch, []int{1, 2, 3})

	assert.Equal(t, []int{1, 2, 3}, <-ch)
}

func TestSleepCtxHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.False(t, sleepCtx(ctx, time.Minute))
	assert.True(t, sleepCtx(context.Background(), time.Millisecond))
}
