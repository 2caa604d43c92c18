package feed_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/helmy2/go-hijri-picker/internal/feed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

type recordingPublisher struct {
	mu      sync.Mutex
	updates [][]byte
}

func (p *recordingPublisher) Update(data []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.updates = append(p.updates, data)
}

func (p *recordingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.updates)
}

func TestWorker_PublishesUntilCancelled(t *testing.T) {
	pub := &recordingPublisher{}
	w := &feed.Worker{
		Generator: newGenerator(t, ramadanFirst, language.English),
		Publisher: pub,
		Window:    feed.Window{},
		Interval:  20 * time.Millisecond,
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return pub.count() >= 2 }, 2*time.Second, 10*time.Millisecond,
		"Worker must publish immediately and on every tick")

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Worker did not stop after cancellation")
	}

	pub.mu.Lock()
	defer pub.mu.Unlock()
	assert.Contains(t, string(pub.updates[0]), "BEGIN:VCALENDAR")
}

func TestWorker_CancelledBeforeStart(t *testing.T) {
	pub := &recordingPublisher{}
	w := &feed.Worker{
		Generator: newGenerator(t, ramadanFirst, language.English),
		Publisher: pub,
		Window:    feed.DefaultWindow(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	w.Run(ctx)

	assert.Zero(t, pub.count(), "Nothing is published for a cancelled context")
}
